// Copyright 2016 The go-ethereum Authors
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
	"testing"
)

func transferSelector(t *testing.T) Selector {
	t.Helper()
	return mustParse(t, "Transfer(address indexed from, address indexed to, uint256 amount)")
}

func addressTopic(a [20]byte) [32]byte {
	var w [32]byte
	copy(w[12:], a[:])
	return w
}

func TestDecodeEventWithSignatureCheck(t *testing.T) {
	s := transferSelector(t)
	from := [20]byte{0xb2, 0xb7}
	to := [20]byte{0x77, 0x95}
	amount := big.NewInt(20_000_000_000)

	data, err := EncodeRaw([]Value{NewUInt(amount)}, []Type{Uint(256)})
	if err != nil {
		t.Fatal(err)
	}
	topics := [][32]byte{Topic0(s), addressTopic(from), addressTopic(to)}

	name, fields, err := DecodeEvent(s, data, topics)
	if err != nil {
		t.Fatal(err)
	}
	if name != "Transfer" {
		t.Fatalf("unexpected name %q", name)
	}
	if fields["from"].Address != from || fields["to"].Address != to {
		t.Fatalf("unexpected indexed fields: %+v", fields)
	}
	if fields["amount"].Int.Cmp(amount) != 0 {
		t.Fatalf("unexpected amount: %s", fields["amount"].Int)
	}
}

func TestDecodeEventSignatureMismatch(t *testing.T) {
	s := transferSelector(t)
	data, err := EncodeRaw([]Value{NewUInt(big.NewInt(1))}, []Type{Uint(256)})
	if err != nil {
		t.Fatal(err)
	}
	var wrong [32]byte
	wrong[0] = 0xff
	topics := [][32]byte{wrong, addressTopic([20]byte{1}), addressTopic([20]byte{2})}

	_, _, err = DecodeEvent(s, data, topics)
	if err == nil {
		t.Fatal("expected topic-0 mismatch error")
	}
	ee, ok := err.(*EventError)
	if !ok || ee.Kind != ErrTopicSignatureMismatch {
		t.Fatalf("expected EventError{Kind: ErrTopicSignatureMismatch}, got %#v", err)
	}
}

func TestDecodeEventWithoutSignatureCheck(t *testing.T) {
	s := transferSelector(t)
	data, err := EncodeRaw([]Value{NewUInt(big.NewInt(1))}, []Type{Uint(256)})
	if err != nil {
		t.Fatal(err)
	}
	topics := [][32]byte{addressTopic([20]byte{1}), addressTopic([20]byte{2})}

	_, fields, err := DecodeEvent(s, data, topics, WithoutSignatureCheck())
	if err != nil {
		t.Fatal(err)
	}
	if fields["from"].Address[0] != 1 || fields["to"].Address[0] != 2 {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestDecodeEventTopicCountMismatch(t *testing.T) {
	s := transferSelector(t)
	_, _, err := DecodeEvent(s, nil, [][32]byte{Topic0(s)})
	if err == nil {
		t.Fatal("expected topic count mismatch error")
	}
	ee, ok := err.(*EventError)
	if !ok || ee.Kind != ErrTopicCountMismatch {
		t.Fatalf("expected EventError{Kind: ErrTopicCountMismatch}, got %#v", err)
	}
}

func TestDecodeEventIndexedDynamicReturnsRawTopic(t *testing.T) {
	s := mustParse(t, "Log(string indexed tag, uint256 value)")
	data, err := EncodeRaw([]Value{NewUInt(big.NewInt(7))}, []Type{Uint(256)})
	if err != nil {
		t.Fatal(err)
	}
	var tagHash [32]byte
	tagHash[0] = 0xaa
	topics := [][32]byte{Topic0(s), tagHash}

	_, fields, err := DecodeEvent(s, data, topics)
	if err != nil {
		t.Fatal(err)
	}
	if fields["tag"].Kind != VBytes || fields["tag"].Bytes[0] != 0xaa {
		t.Fatalf("expected raw topic bytes for indexed dynamic field, got %+v", fields["tag"])
	}
}
