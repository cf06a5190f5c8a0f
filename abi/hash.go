// Copyright 2014 The go-ethereum Authors
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

import "golang.org/x/crypto/sha3"

// Hasher computes the HASH primitive this codec treats as an external
// collaborator: a byte slice in, a 32-byte digest out. The package-level
// default is legacy Keccak-256, the Ethereum variant predating NIST
// SHA3-256 standardization — not the same function as
// golang.org/x/crypto/sha3.Sum256.
type Hasher interface {
	Hash(data []byte) [32]byte
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(data []byte) [32]byte

func (f HasherFunc) Hash(data []byte) [32]byte { return f(data) }

// keccak256 is the default Hasher: sha3.NewLegacyKeccak256, not
// sha3.New256.
func keccak256(data []byte) [32]byte {
	var out [32]byte
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	d.Sum(out[:0])
	return out
}

// DefaultHasher is the package-wide Keccak-256 provider used whenever a
// caller does not supply its own via WithHasher.
var DefaultHasher Hasher = HasherFunc(keccak256)

// hashOpts is the shared functional-options carrier for the small set of
// operations that need a configurable Hasher (Canonical-derived IDs,
// event topic-0 verification). It is read once at the call site and
// never mutated afterward.
type hashOpts struct {
	hasher Hasher
}

func newHashOpts() *hashOpts { return &hashOpts{hasher: DefaultHasher} }

// HashOption configures the Hasher used by a single call.
type HashOption func(*hashOpts)

// WithHasher overrides the HASH provider for a single call.
func WithHasher(h Hasher) HashOption {
	return func(o *hashOpts) { o.hasher = h }
}
