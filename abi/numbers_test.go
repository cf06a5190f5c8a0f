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

func TestCheckUintFits(t *testing.T) {
	if !checkUintFits(big.NewInt(255), 8) {
		t.Error("255 should fit in uint8")
	}
	if checkUintFits(big.NewInt(256), 8) {
		t.Error("256 should not fit in uint8")
	}
	if checkUintFits(big.NewInt(-1), 8) {
		t.Error("negative value should never fit a uintN")
	}
}

func TestCheckIntFits(t *testing.T) {
	if !checkIntFits(big.NewInt(127), 8) {
		t.Error("127 should fit in int8")
	}
	if checkIntFits(big.NewInt(128), 8) {
		t.Error("128 should not fit in int8")
	}
	if !checkIntFits(big.NewInt(-128), 8) {
		t.Error("-128 should fit in int8")
	}
	if checkIntFits(big.NewInt(-129), 8) {
		t.Error("-129 should not fit in int8")
	}
}

func TestPackReadInt256RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 1000000, -1000000} {
		word := packInt256(big.NewInt(v))
		got := readInt256(word[:], 256)
		if got.Int64() != v {
			t.Errorf("round trip of %d produced %s", v, got)
		}
	}
}

func TestReadInt256NarrowWidth(t *testing.T) {
	word := packInt256(big.NewInt(-1))
	got := readInt256(word[:], 8)
	if got.Int64() != -1 {
		t.Errorf("readInt256(-1, 8) = %s, want -1", got)
	}
}

func TestPackUint256RoundTrip(t *testing.T) {
	v := new(big.Int).SetUint64(69)
	word := packUint256(v)
	got := readUint256(word[:], 256)
	if got.Cmp(v) != 0 {
		t.Errorf("round trip of %s produced %s", v, got)
	}
}
