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
	"math/big"
	"strings"
	"testing"
)

const sampleJSONABI = `[
	{"type":"function","name":"transfer","inputs":[
		{"name":"to","type":"address"},
		{"name":"value","type":"uint256"}
	],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"balanceOf","inputs":[
		{"name":"who","type":"address"}
	],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"value","type":"uint256","indexed":false}
	]},
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}]}
]`

func TestParseJSONBuildsCollections(t *testing.T) {
	a, err := ParseJSON(strings.NewReader(sampleJSONABI))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(a.Methods))
	}
	if len(a.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(a.Events))
	}
	if len(a.Constructor.Inputs) != 1 {
		t.Fatalf("expected constructor to be parsed, got %+v", a.Constructor)
	}
}

func TestABIPackUnpackByName(t *testing.T) {
	a, err := ParseJSON(strings.NewReader(sampleJSONABI))
	if err != nil {
		t.Fatal(err)
	}
	data, err := a.Pack("transfer", []Value{
		NewAddress([20]byte{1, 2, 3}),
		NewUInt(big.NewInt(500)),
	})
	if err != nil {
		t.Fatal(err)
	}
	vs, err := a.Unpack("transfer", data)
	if err != nil {
		t.Fatal(err)
	}
	if vs[0].Address != ([20]byte{1, 2, 3}) || vs[1].Int.Int64() != 500 {
		t.Fatalf("unexpected unpacked values: %+v", vs)
	}
}

func TestABIMethodByID(t *testing.T) {
	a, err := ParseJSON(strings.NewReader(sampleJSONABI))
	if err != nil {
		t.Fatal(err)
	}
	s := a.Methods["transfer"]
	id := MethodID(s)
	found, err := a.MethodByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if found.Name != "transfer" {
		t.Fatalf("expected to find transfer, got %+v", found)
	}
}

func TestUnpackRevertErrorString(t *testing.T) {
	s := mustParse(t, "Error(string)")
	data, err := Encode([]Value{NewString("insufficient balance")}, s)
	if err != nil {
		t.Fatal(err)
	}
	reason, err := UnpackRevert(data)
	if err != nil {
		t.Fatal(err)
	}
	if reason != "insufficient balance" {
		t.Fatalf("unexpected revert reason: %q", reason)
	}
}

func TestUnpackRevertPanic(t *testing.T) {
	s := mustParse(t, "Panic(uint256)")
	data, err := Encode([]Value{NewUInt(big.NewInt(0x11))}, s)
	if err != nil {
		t.Fatal(err)
	}
	reason, err := UnpackRevert(data)
	if err != nil {
		t.Fatal(err)
	}
	if reason != "arithmetic underflow or overflow" {
		t.Fatalf("unexpected panic reason: %q", reason)
	}
}
