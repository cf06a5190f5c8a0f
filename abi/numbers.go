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

import "math/big"

// bigFromInt is a small convenience wrapper for building offset/length/count
// words from a plain int during encoding.
func bigFromInt(n int) *big.Int { return big.NewInt(int64(n)) }

// MaxUint256 is the maximum value representable by a uint256.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// maxUintN, maxIntN and minIntN return the inclusive bounds a Uint/Int type
// of the given bit width may hold.
func maxUintN(bits int) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1))
}

func maxIntN(bits int) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)), big.NewInt(1))
}

func minIntN(bits int) *big.Int {
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
}

// checkUintFits reports whether v is a non-negative integer that fits in
// bits.
func checkUintFits(v *big.Int, bits int) bool {
	if v.Sign() < 0 {
		return false
	}
	return v.Cmp(maxUintN(bits)) <= 0
}

// checkIntFits reports whether v fits in a two's-complement integer of the
// given bit width.
func checkIntFits(v *big.Int, bits int) bool {
	return v.Cmp(minIntN(bits)) >= 0 && v.Cmp(maxIntN(bits)) <= 0
}

// packUint256 renders v as a 32-byte big-endian word for a non-negative
// integer.
func packUint256(v *big.Int) [32]byte {
	var out [32]byte
	b := v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

// packInt256 renders v (which may be negative) as a 32-byte
// two's-complement big-endian word.
func packInt256(v *big.Int) [32]byte {
	if v.Sign() >= 0 {
		return packUint256(v)
	}
	// Two's complement of a negative n in 256 bits is 2^256 + n.
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	twos := new(big.Int).Add(mod, v)
	return packUint256(twos)
}

// readUint256 interprets a 32-byte word as a non-negative integer, taking
// the right-most n bits.
func readUint256(word []byte, bits int) *big.Int {
	v := new(big.Int).SetBytes(word)
	if bits < 256 {
		v.And(v, maxUintN(bits))
	}
	return v
}

// readInt256 interprets a 32-byte word as a two's-complement integer of
// the given bit width, sign-extending from bit (bits-1) if set.
func readInt256(word []byte, bits int) *big.Int {
	v := new(big.Int).SetBytes(word)
	if bits >= 256 {
		if v.Bit(255) == 1 {
			mod := new(big.Int).Lsh(big.NewInt(1), 256)
			v.Sub(v, mod)
		}
		return v
	}
	v.And(v, maxUintN(bits))
	if v.Bit(bits-1) == 1 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		v.Sub(v, full)
	}
	return v
}
