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

// Encode packs values against s's Inputs, prepending a 4-byte method-ID
// when s is a function selector.
func Encode(values []Value, s Selector, opts ...HashOption) ([]byte, error) {
	body, err := EncodeRaw(values, fieldTypes(s.Inputs))
	if err != nil {
		return nil, err
	}
	if !s.hasSelectorPrefix() {
		return body, nil
	}
	id := MethodID(s, opts...)
	out := make([]byte, 0, 4+len(body))
	out = append(out, id[:]...)
	out = append(out, body...)
	return out, nil
}

// EncodeRaw packs values against types using the head/tail discipline:
// every top-level slot contributes headSize() bytes to the head; dynamic
// slots write a 32-byte offset (relative to the start of this argument
// list) into their head slot and append their payload to the tail,
// which is walked with a running cursor.
func EncodeRaw(values []Value, types []Type) ([]byte, error) {
	if len(values) != len(types) {
		return nil, &EncodeError{Kind: ErrArgumentCount, Detail: "value count does not match type count"}
	}
	headLen := 0
	for _, t := range types {
		headLen += t.headSize()
	}
	var head, tail []byte
	cursor := headLen
	for i, t := range types {
		if t.Dyn() {
			offsetWord := packUint256(bigFromInt(cursor))
			head = append(head, offsetWord[:]...)
			enc, err := encodeValue(values[i], t)
			if err != nil {
				return nil, err
			}
			tail = append(tail, enc...)
			cursor += len(enc)
		} else {
			enc, err := encodeStaticInline(values[i], t)
			if err != nil {
				return nil, err
			}
			head = append(head, enc...)
		}
	}
	return append(head, tail...), nil
}

// encodeStaticInline encodes a static value directly into the head: a
// plain leaf occupies one 32-byte word; a static Tuple/Struct or
// FixedArray recurses and inlines its own head with no offset pointer.
func encodeStaticInline(v Value, t Type) ([]byte, error) {
	switch t.Kind {
	case KindTuple, KindStruct:
		if v.Kind != VTuple {
			return nil, valueKindErr(t, v)
		}
		return EncodeRaw(v.Values, fieldTypesOf(t.Fields))
	case KindFixedArray:
		if v.Kind != VArray {
			return nil, valueKindErr(t, v)
		}
		if len(v.Values) != t.Length {
			return nil, &EncodeError{Kind: ErrArgumentCount, Type: t.String(), Detail: "fixed array length mismatch"}
		}
		elemTypes := make([]Type, t.Length)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		return EncodeRaw(v.Values, elemTypes)
	default:
		return encodeLeaf(v, t)
	}
}

// encodeValue encodes a value that sits in the tail: a dynamic Tuple,
// FixedArray, DynArray, bytes, or string.
func encodeValue(v Value, t Type) ([]byte, error) {
	switch t.Kind {
	case KindTuple, KindStruct:
		if v.Kind != VTuple {
			return nil, valueKindErr(t, v)
		}
		return EncodeRaw(v.Values, fieldTypesOf(t.Fields))
	case KindFixedArray:
		if v.Kind != VArray {
			return nil, valueKindErr(t, v)
		}
		if len(v.Values) != t.Length {
			return nil, &EncodeError{Kind: ErrArgumentCount, Type: t.String(), Detail: "fixed array length mismatch"}
		}
		elemTypes := make([]Type, t.Length)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		return EncodeRaw(v.Values, elemTypes)
	case KindDynArray:
		if v.Kind != VArray {
			return nil, valueKindErr(t, v)
		}
		n := len(v.Values)
		countWord := packUint256(bigFromInt(n))
		out := append([]byte{}, countWord[:]...)
		elemTypes := make([]Type, n)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		body, err := EncodeRaw(v.Values, elemTypes)
		if err != nil {
			return nil, err
		}
		return append(out, body...), nil
	case KindBytes:
		if v.Kind != VBytes {
			return nil, valueKindErr(t, v)
		}
		return encodeDynBytes(v.Bytes), nil
	case KindString:
		if v.Kind != VString {
			return nil, valueKindErr(t, v)
		}
		return encodeDynBytes(v.Bytes), nil
	default:
		return encodeLeaf(v, t)
	}
}

// encodeDynBytes lays out a length-prefixed, right-padded byte string:
// one word holding the byte count, followed by ceil(len/32) words of
// payload padded with zero. A zero-length string encodes as just the
// count word.
func encodeDynBytes(b []byte) []byte {
	countWord := packUint256(bigFromInt(len(b)))
	out := append([]byte{}, countWord[:]...)
	padded := (len(b) + 31) / 32 * 32
	buf := make([]byte, padded)
	copy(buf, b)
	return append(out, buf...)
}

// encodeLeaf encodes a single 32-byte-word elementary value.
func encodeLeaf(v Value, t Type) ([]byte, error) {
	switch t.Kind {
	case KindUint:
		if v.Kind != VUInt {
			return nil, valueKindErr(t, v)
		}
		if !checkUintFits(v.Int, t.Size) {
			return nil, &EncodeError{Kind: ErrOverflow, Type: t.String(), Detail: "value does not fit in " + t.String()}
		}
		w := packUint256(v.Int)
		return w[:], nil
	case KindInt:
		if v.Kind != VInt {
			return nil, valueKindErr(t, v)
		}
		if !checkIntFits(v.Int, t.Size) {
			return nil, &EncodeError{Kind: ErrOverflow, Type: t.String(), Detail: "value does not fit in " + t.String()}
		}
		w := packInt256(v.Int)
		return w[:], nil
	case KindBool:
		if v.Kind != VBool {
			return nil, valueKindErr(t, v)
		}
		var w [32]byte
		if v.Bool {
			w[31] = 1
		}
		return w[:], nil
	case KindAddress:
		if v.Kind != VAddress {
			return nil, valueKindErr(t, v)
		}
		var w [32]byte
		copy(w[12:], v.Address[:])
		return w[:], nil
	case KindFunction:
		if v.Kind != VBytes || len(v.Bytes) != 24 {
			return nil, &EncodeError{Kind: ErrSizeMismatch, Type: t.String(), Detail: "function value must be 24 bytes"}
		}
		var w [32]byte
		copy(w[:24], v.Bytes)
		return w[:], nil
	case KindBytesN:
		if v.Kind != VBytes {
			return nil, valueKindErr(t, v)
		}
		if len(v.Bytes) > t.Size {
			return nil, &EncodeError{Kind: ErrSizeMismatch, Type: t.String(), Detail: "value longer than declared width"}
		}
		var w [32]byte
		copy(w[:], v.Bytes)
		return w[:], nil
	default:
		return nil, &EncodeError{Kind: ErrUnsupported, Type: t.String(), Detail: "type cannot be encoded as a leaf"}
	}
}

func valueKindErr(t Type, v Value) error {
	return &EncodeError{Kind: ErrUnsupported, Type: t.String(), Detail: "value kind does not match declared type"}
}

func fieldTypes(fields []Field) []Type {
	out := make([]Type, len(fields))
	for i, f := range fields {
		out[i] = f.Type
	}
	return out
}

func fieldTypesOf(fields []Field) []Type { return fieldTypes(fields) }
