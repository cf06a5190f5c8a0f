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

import "bytes"

// maxDecodeDepth bounds the nesting depth a decode may reach, guarding
// against adversarially deep tuple/array nesting the same way
// maxParseDepth guards the signature parser.
const maxDecodeDepth = 256

// decodeOpts carries per-call decode behavior through the recursive
// descent without changing every internal function's signature whenever
// a new knob is added.
type decodeOpts struct {
	truncateStrings bool
}

// DecodeOption tweaks DecodeRaw.
type DecodeOption func(*decodeOpts)

// WithoutStringTruncation disables the legacy NUL-truncation DecodeRaw
// otherwise applies to String values. The trim-at-first-NUL behavior is
// preserved as the default for compatibility with older encoders; this
// is the opt-out for callers that want the full byte range. Decode takes
// no DecodeOption and always truncates.
func WithoutStringTruncation() DecodeOption {
	return func(o *decodeOpts) { o.truncateStrings = false }
}

type decodeCtx struct {
	depth int
	opts  decodeOpts
}

// Decode unpacks data against s's Inputs, stripping and verifying a
// leading 4-byte method-ID first when s carries one. Call DecodeRaw
// directly against s.Outputs to decode a return value instead.
func Decode(data []byte, s Selector, opts ...HashOption) ([]Value, error) {
	if s.hasSelectorPrefix() {
		if len(data) < 4 {
			return nil, &DecodeError{Kind: ErrTruncated, Detail: "buffer shorter than method-ID"}
		}
		id := MethodID(s, opts...)
		if !bytes.Equal(data[:4], id[:]) {
			return nil, &DecodeError{Kind: ErrBadOffset, Detail: "method-ID does not match selector"}
		}
		data = data[4:]
	}
	return DecodeRaw(data, fieldTypes(s.Inputs))
}

// DecodeRaw unpacks a raw ABI-encoded argument list against types, the
// dual of EncodeRaw: it walks the head slot by slot, following dynamic
// offsets into the tail as it goes. Offsets are validated against the
// buffer length before use.
func DecodeRaw(data []byte, types []Type, opts ...DecodeOption) ([]Value, error) {
	ctx := decodeCtx{opts: decodeOpts{truncateStrings: true}}
	for _, opt := range opts {
		opt(&ctx.opts)
	}
	return decodeArgs(data, types, ctx)
}

// decodeArgs decodes types against the argument-list slice starting at
// offset 0 of data (data is the *argument list*, not the outer buffer).
// ctx.depth is bumped on every descent into a tuple/array element and
// checked against maxDecodeDepth, bounding stack growth the way
// parser.go's explicit-stack parseFields bounds parse depth — here a
// depth-checked recursive descent suffices because, unlike the
// signature grammar, a decode's branching factor and per-level cost are
// both small and already bounded by the buffer length.
func decodeArgs(data []byte, types []Type, ctx decodeCtx) ([]Value, error) {
	if ctx.depth > maxDecodeDepth {
		return nil, &DecodeError{Kind: ErrTruncated, Detail: "maximum nesting depth exceeded"}
	}
	values := make([]Value, len(types))
	headOff := 0
	for i, t := range types {
		hs := t.headSize()
		if headOff+hs > len(data) {
			return nil, &DecodeError{Kind: ErrTruncated, Detail: "buffer too short for argument head"}
		}
		if t.Dyn() {
			off, err := readOffset(data[headOff:headOff+32], len(data))
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(data[off:], t, ctx)
			if err != nil {
				return nil, err
			}
			values[i] = v
		} else {
			v, err := decodeStaticInline(data[headOff:headOff+hs], t, ctx)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		headOff += hs
	}
	return values, nil
}

func readOffset(word []byte, bufLen int) (int, error) {
	v := readUint256(word, 256)
	if v.Cmp(bigFromInt(bufLen)) > 0 {
		return 0, &DecodeError{Kind: ErrBadOffset, Detail: "dynamic offset points outside buffer"}
	}
	return int(v.Int64()), nil
}

// decodeStaticInline decodes a static value from exactly t.headSize()
// bytes: a leaf word, or the recursively-inlined body of a static
// Tuple/Struct/FixedArray.
func decodeStaticInline(word []byte, t Type, ctx decodeCtx) (Value, error) {
	switch t.Kind {
	case KindTuple, KindStruct:
		vs, err := decodeArgs(word, fieldTypesOf(t.Fields), decodeCtx{ctx.depth + 1, ctx.opts})
		if err != nil {
			return Value{}, err
		}
		return NewTuple(vs), nil
	case KindFixedArray:
		elemTypes := make([]Type, t.Length)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		vs, err := decodeArgs(word, elemTypes, decodeCtx{ctx.depth + 1, ctx.opts})
		if err != nil {
			return Value{}, err
		}
		return NewArray(vs), nil
	default:
		return decodeLeaf(word, t)
	}
}

// decodeValue decodes a value living in the tail: buf starts exactly at
// the value's payload (past any offset indirection).
func decodeValue(buf []byte, t Type, ctx decodeCtx) (Value, error) {
	switch t.Kind {
	case KindTuple, KindStruct:
		vs, err := decodeArgs(buf, fieldTypesOf(t.Fields), decodeCtx{ctx.depth + 1, ctx.opts})
		if err != nil {
			return Value{}, err
		}
		return NewTuple(vs), nil
	case KindFixedArray:
		elemTypes := make([]Type, t.Length)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		vs, err := decodeArgs(buf, elemTypes, decodeCtx{ctx.depth + 1, ctx.opts})
		if err != nil {
			return Value{}, err
		}
		return NewArray(vs), nil
	case KindDynArray:
		if len(buf) < 32 {
			return Value{}, &DecodeError{Kind: ErrTruncated, Detail: "truncated array length"}
		}
		count := readUint256(buf[:32], 256)
		maxElems := bigFromInt((len(buf) - 32) / 32)
		if count.Cmp(maxElems) > 0 {
			return Value{}, &DecodeError{Kind: ErrTruncated, Detail: "array length exceeds remaining buffer"}
		}
		n := int(count.Int64())
		elemTypes := make([]Type, n)
		for i := range elemTypes {
			elemTypes[i] = *t.Elem
		}
		vs, err := decodeArgs(buf[32:], elemTypes, decodeCtx{ctx.depth + 1, ctx.opts})
		if err != nil {
			return Value{}, err
		}
		return NewArray(vs), nil
	case KindBytes:
		b, err := decodeDynBytes(buf)
		if err != nil {
			return Value{}, err
		}
		return NewBytes(b), nil
	case KindString:
		b, err := decodeDynBytes(buf)
		if err != nil {
			return Value{}, err
		}
		if ctx.opts.truncateStrings {
			if i := bytes.IndexByte(b, 0); i >= 0 {
				b = b[:i]
			}
		}
		return NewString(string(b)), nil
	default:
		if len(buf) < 32 {
			return Value{}, &DecodeError{Kind: ErrTruncated, Detail: "truncated leaf"}
		}
		return decodeLeaf(buf[:32], t)
	}
}

// decodeDynBytes reads a length-prefixed, zero-padded byte string in
// full, with no truncation; NUL-truncation (legacy-only, String values
// only) is applied by decodeValue's String case, not here, since Bytes
// values are never truncated.
func decodeDynBytes(buf []byte) ([]byte, error) {
	if len(buf) < 32 {
		return nil, &DecodeError{Kind: ErrTruncated, Detail: "truncated byte-string length"}
	}
	length := readUint256(buf[:32], 256)
	maxLen := bigFromInt(len(buf) - 32)
	if length.Cmp(maxLen) > 0 {
		return nil, &DecodeError{Kind: ErrTruncated, Detail: "byte-string length exceeds remaining buffer"}
	}
	n := int(length.Int64())
	padded := (n + 31) / 32 * 32
	if len(buf) < 32+padded {
		return nil, &DecodeError{Kind: ErrTruncated, Detail: "truncated byte-string payload"}
	}
	out := make([]byte, n)
	copy(out, buf[32:32+n])
	return out, nil
}

func decodeLeaf(word []byte, t Type) (Value, error) {
	switch t.Kind {
	case KindUint:
		return NewUInt(readUint256(word, t.Size)), nil
	case KindInt:
		return NewInt(readInt256(word, t.Size)), nil
	case KindBool:
		switch {
		case isZero(word[:31]) && word[31] == 0:
			return NewBool(false), nil
		case isZero(word[:31]) && word[31] == 1:
			return NewBool(true), nil
		default:
			return Value{}, &DecodeError{Kind: ErrBadBool, Detail: "bool slot held neither 0 nor 1"}
		}
	case KindAddress:
		var a [20]byte
		copy(a[:], word[12:32])
		return NewAddress(a), nil
	case KindFunction:
		b := make([]byte, 24)
		copy(b, word[:24])
		return NewBytes(b), nil
	case KindBytesN:
		b := make([]byte, t.Size)
		copy(b, word[:t.Size])
		return NewBytes(b), nil
	default:
		return Value{}, &DecodeError{Kind: ErrTruncated, Detail: "type cannot be decoded as a leaf"}
	}
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
