// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"encoding/hex"
	"testing"
)

func TestKeccak256KnownVector(t *testing.T) {
	// Keccak-256("") per the legacy (pre-NIST) variant go-ethereum uses.
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a47"
	got := keccak256(nil)
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("keccak256(\"\") = %x, want %s", got, want)
	}
}

func TestMethodIDBaz(t *testing.T) {
	s, err := ParseSignature("baz(uint32,bool)")
	if err != nil {
		t.Fatal(err)
	}
	id := MethodID(s)
	want := "cdcd77c0"
	if hex.EncodeToString(id[:]) != want {
		t.Fatalf("MethodID(baz(uint32,bool)) = %x, want %s", id, want)
	}
}

func TestMethodIDIgnoresOutputs(t *testing.T) {
	item := map[string]any{
		"type": "function",
		"name": "transfer",
		"inputs": []any{
			map[string]any{"name": "to", "type": "address"},
			map[string]any{"name": "value", "type": "uint256"},
		},
		"outputs":         []any{map[string]any{"name": "", "type": "bool"}},
		"stateMutability": "nonpayable",
	}
	s, ok, err := ParseJSONItem(item)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected item to be recognized")
	}
	if !s.HasOutputs {
		t.Fatal("expected selector to carry declared outputs")
	}
	id := MethodID(s)
	want := "a9059cbb"
	if hex.EncodeToString(id[:]) != want {
		t.Fatalf("MethodID(transfer with outputs) = %x, want %s", id, want)
	}
	if got := Canonical(s); got != "transfer(address,uint256)" {
		t.Fatalf("Canonical() leaked outputs into the hash input: %q", got)
	}
}

func TestWithHasherOverride(t *testing.T) {
	s, err := ParseSignature("baz(uint32,bool)")
	if err != nil {
		t.Fatal(err)
	}
	called := false
	stub := HasherFunc(func(data []byte) [32]byte {
		called = true
		return keccak256(data)
	})
	id := MethodID(s, WithHasher(stub))
	if !called {
		t.Fatal("custom hasher was not invoked")
	}
	want := MethodID(s)
	if id != want {
		t.Fatalf("custom hasher produced different digest: %x != %x", id, want)
	}
}
