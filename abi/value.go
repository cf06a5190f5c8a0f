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
	"fmt"
	"math/big"
)

// ValueKind mirrors Kind for the decoded-value side of the codec. It is
// a separate enumeration from Kind because a Value never needs to
// distinguish Fixed/UFixed (out of scope for encoding) or Struct from
// Tuple (both decode to the same shape).
type ValueKind byte

const (
	VUInt ValueKind = iota
	VInt
	VBool
	VBytes
	VString
	VAddress
	VArray
	VTuple
)

// Value is the tagged union produced by Decode and consumed by Encode.
// It intentionally does not deserialize into schemaed host structs —
// callers that want that build it themselves on top of Value.
type Value struct {
	Kind ValueKind

	Int     *big.Int // VUInt, VInt
	Bool    bool     // VBool
	Bytes   []byte   // VBytes, VString (raw bytes; String() decodes as UTF-8)
	Address [20]byte // VAddress
	Values  []Value  // VArray, VTuple
}

func NewUInt(v *big.Int) Value { return Value{Kind: VUInt, Int: v} }
func NewInt(v *big.Int) Value  { return Value{Kind: VInt, Int: v} }
func NewBool(v bool) Value     { return Value{Kind: VBool, Bool: v} }
func NewBytes(v []byte) Value  { return Value{Kind: VBytes, Bytes: v} }
func NewString(v string) Value { return Value{Kind: VString, Bytes: []byte(v)} }
func NewAddress(v [20]byte) Value {
	return Value{Kind: VAddress, Address: v}
}
func NewArray(v []Value) Value { return Value{Kind: VArray, Values: v} }
func NewTuple(v []Value) Value { return Value{Kind: VTuple, Values: v} }

// String renders a human-readable form of v, used in error messages and
// convenient for debugging; it is not part of the wire format.
func (v Value) String() string {
	switch v.Kind {
	case VUInt, VInt:
		return v.Int.String()
	case VBool:
		return fmt.Sprintf("%t", v.Bool)
	case VBytes:
		return fmt.Sprintf("0x%x", v.Bytes)
	case VString:
		return string(v.Bytes)
	case VAddress:
		return fmt.Sprintf("0x%x", v.Address)
	case VArray, VTuple:
		return fmt.Sprintf("%v", v.Values)
	default:
		return "<invalid value>"
	}
}
