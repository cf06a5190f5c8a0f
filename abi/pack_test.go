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
	"math/big"
	"testing"
)

func mustParse(t *testing.T, sig string) Selector {
	t.Helper()
	s, err := ParseSignature(sig)
	if err != nil {
		t.Fatalf("ParseSignature(%q): %v", sig, err)
	}
	return s
}

func word32(hexTail string) string {
	return fmt32Zeros[:64-len(hexTail)] + hexTail
}

const fmt32Zeros = "0000000000000000000000000000000000000000000000000000000000000000"

func TestEncodeBazUint32Bool(t *testing.T) {
	s := mustParse(t, "baz(uint32,bool)")
	got, err := Encode([]Value{NewUInt(big.NewInt(69)), NewBool(true)}, s)
	if err != nil {
		t.Fatal(err)
	}
	want := "cdcd77c0" + word32("45") + word32("1")
	if hex.EncodeToString(got) != want {
		t.Fatalf("Encode() = %s, want %s", hex.EncodeToString(got), want)
	}
}

func TestEncodePriceString(t *testing.T) {
	s := mustParse(t, "price(string)")
	got, err := Encode([]Value{NewString("BAT")}, s)
	if err != nil {
		t.Fatal(err)
	}
	want := "fe2c6198" + word32("20") + word32("3") +
		"4241540000000000000000000000000000000000000000000000000000000000"
	if hex.EncodeToString(got) != want {
		t.Fatalf("Encode() = %s, want %s", hex.EncodeToString(got), want)
	}
}

func TestEncodeNestedStaticTupleInlined(t *testing.T) {
	inner := Tuple([]Field{{Type: Uint(256)}, {Type: Uint(256)}})
	outer := Tuple([]Field{{Type: Uint(256)}, {Type: inner}})
	types := []Type{outer, String()}

	values := []Value{
		NewTuple([]Value{
			NewUInt(big.NewInt(0x11)),
			NewTuple([]Value{NewUInt(big.NewInt(0x22)), NewUInt(big.NewInt(0x33))}),
		}),
		NewString("Ether Token"),
	}

	got, err := EncodeRaw(values, types)
	if err != nil {
		t.Fatal(err)
	}
	// Head: 0x11, 0x22, 0x33 inlined (3 words), then the string offset (0x80 = 128).
	if len(got) < 128 {
		t.Fatalf("encoded output too short: %d bytes", len(got))
	}
	wantHead := word32("11") + word32("22") + word32("33") + word32("80")
	if hex.EncodeToString(got[:128]) != wantHead {
		t.Fatalf("head = %s, want %s", hex.EncodeToString(got[:128]), wantHead)
	}
	tail := got[128:]
	wantLen := word32("b")
	if hex.EncodeToString(tail[:32]) != wantLen {
		t.Fatalf("string length word = %s", hex.EncodeToString(tail[:32]))
	}
	if string(tail[32:32+11]) != "Ether Token" {
		t.Fatalf("string payload = %q", tail[32:32+11])
	}
}

func TestEncodeUint8Overflow(t *testing.T) {
	s := mustParse(t, "baz(uint8)")
	_, err := Encode([]Value{NewUInt(big.NewInt(9999))}, s)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	ee, ok := err.(*EncodeError)
	if !ok || ee.Kind != ErrOverflow {
		t.Fatalf("expected EncodeError{Kind: ErrOverflow}, got %#v", err)
	}
}

func TestEncodeDecodeRoundTripDynamicArray(t *testing.T) {
	typ := DynArray(Address())
	values := []Value{NewArray([]Value{
		NewAddress([20]byte{1}),
		NewAddress([20]byte{2}),
	})}
	enc, err := EncodeRaw(values, []Type{typ})
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecodeRaw(enc, []Type{typ})
	if err != nil {
		t.Fatal(err)
	}
	if len(dec[0].Values) != 2 || dec[0].Values[1].Address[0] != 2 {
		t.Fatalf("round trip mismatch: %+v", dec[0])
	}
}

func TestEncodeFixedArrayZeroLength(t *testing.T) {
	typ := FixedArray(String(), 0)
	enc, err := EncodeRaw([]Value{NewArray(nil)}, []Type{typ})
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 0 {
		t.Fatalf("FixedArray(T,0) should encode to the empty string, got %d bytes", len(enc))
	}
}

func TestEncodeArgumentCountMismatch(t *testing.T) {
	_, err := EncodeRaw([]Value{NewBool(true)}, []Type{Bool(), Bool()})
	if err == nil {
		t.Fatal("expected argument count mismatch error")
	}
}
