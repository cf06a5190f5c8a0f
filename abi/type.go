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
	"strings"
)

// Kind enumerates the elementary and composite ABI type tags.
type Kind byte

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindBytesN
	KindBytes
	KindString
	KindFunction
	KindFixed
	KindUFixed
	KindFixedArray
	KindDynArray
	KindTuple
	KindStruct
)

// Type is the tagged type tree described by the ABI signature grammar. A
// zero Type is not valid; use one of the constructors below (Uint, Bool,
// Bytes, FixedArray, Tuple, ...).
type Type struct {
	Kind Kind

	// Size holds the bit-width for Uint/Int, the byte length for BytesN,
	// and the integer part width (M) for Fixed/UFixed.
	Size int
	// Frac holds the fractional digit count (N) for Fixed/UFixed.
	Frac int

	// Elem is the element type for FixedArray and DynArray.
	Elem *Type
	// Length is the array length for FixedArray.
	Length int

	// Fields holds the ordered component list for Tuple and Struct.
	Fields []Field
	// StructName is the source-level struct name for Struct; empty for Tuple.
	StructName string
}

// Field is a single component of a tuple: its type, an optional name, and
// (for event inputs only) whether it is indexed.
type Field struct {
	Type    Type
	Name    string
	Indexed bool
}

// Elementary type constructors.

func Uint(bits int) Type   { return Type{Kind: KindUint, Size: bits} }
func Int(bits int) Type    { return Type{Kind: KindInt, Size: bits} }
func Bool() Type           { return Type{Kind: KindBool} }
func Address() Type        { return Type{Kind: KindAddress, Size: 160} }
func BytesN(n int) Type    { return Type{Kind: KindBytesN, Size: n} }
func Bytes() Type          { return Type{Kind: KindBytes} }
func String() Type         { return Type{Kind: KindString} }
func Function() Type       { return Type{Kind: KindFunction, Size: 24} }
func Fixed(m, n int) Type  { return Type{Kind: KindFixed, Size: m, Frac: n} }
func UFixed(m, n int) Type { return Type{Kind: KindUFixed, Size: m, Frac: n} }

// FixedArray builds a [k]T array type. k == 0 is legal and is static
// regardless of the element type (it encodes to the empty string).
func FixedArray(elem Type, k int) Type {
	e := elem
	return Type{Kind: KindFixedArray, Elem: &e, Length: k}
}

// DynArray builds a T[] slice type, always dynamic.
func DynArray(elem Type) Type {
	e := elem
	return Type{Kind: KindDynArray, Elem: &e}
}

// Tuple builds an unnamed (T1,...,Tk) type from its ordered fields.
func Tuple(fields []Field) Type {
	return Type{Kind: KindTuple, Fields: fields}
}

// Struct builds a named tuple. Its canonical rendering is identical to the
// equivalent Tuple; the name is retained only for documentation/binding use.
func Struct(name string, fields []Field) Type {
	return Type{Kind: KindStruct, Fields: fields, StructName: name}
}

// Dyn reports whether t is a dynamic type per the ABI spec:
//
//	dyn(bytes) = dyn(string) = dyn(T[]) = true
//	dyn(T[k])  = k>0 && dyn(T)
//	dyn((T1,...,Tk)) = exists i. dyn(Ti)
//
// All other leaves are static.
func (t Type) Dyn() bool {
	switch t.Kind {
	case KindBytes, KindString, KindDynArray:
		return true
	case KindFixedArray:
		return t.Length > 0 && t.Elem.Dyn()
	case KindTuple, KindStruct:
		for _, f := range t.Fields {
			if f.Type.Dyn() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headSize returns the number of head bytes t occupies inside its
// enclosing tuple. Every slot is 32 bytes, whether it holds a static value
// or a dynamic offset pointer, with one exception: a static Tuple/Struct is
// inlined and contributes the recursive sum of its fields' head sizes, and
// a static FixedArray likewise contributes Length times its element's head
// size. This rule must be applied at every nesting level.
func (t Type) headSize() int {
	if (t.Kind == KindTuple || t.Kind == KindStruct) && !t.Dyn() {
		total := 0
		for _, f := range t.Fields {
			total += f.Type.headSize()
		}
		return total
	}
	if t.Kind == KindFixedArray && !t.Dyn() {
		return t.Length * t.Elem.headSize()
	}
	return 32
}

// String renders the type using the canonical signature grammar (widened
// uint/int, indexed/name-less). See canonical.go for selector-level
// rendering that can additionally inject "indexed"/name tokens.
func (t Type) String() string {
	switch t.Kind {
	case KindUint:
		return fmt.Sprintf("uint%d", t.Size)
	case KindInt:
		return fmt.Sprintf("int%d", t.Size)
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindBytesN:
		return fmt.Sprintf("bytes%d", t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindFixed:
		return fmt.Sprintf("fixed%dx%d", t.Size, t.Frac)
	case KindUFixed:
		return fmt.Sprintf("ufixed%dx%d", t.Size, t.Frac)
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Length)
	case KindDynArray:
		return fmt.Sprintf("%s[]", t.Elem.String())
	case KindTuple, KindStruct:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Type.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return "<invalid>"
	}
}
