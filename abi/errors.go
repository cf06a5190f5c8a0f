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

import "fmt"

// ParseError is returned by the signature lexer/parser when the input does
// not conform to the selector grammar. Pos is the byte offset of the
// offending token in the original signature string.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("abi: parse error at position %d: %s", e.Pos, e.Msg)
}

// EncodeErrorKind classifies an EncodeError.
type EncodeErrorKind byte

const (
	// ErrOverflow indicates a numeric value does not fit the declared width.
	ErrOverflow EncodeErrorKind = iota
	// ErrSizeMismatch indicates a fixed-size byte value is longer than its type allows.
	ErrSizeMismatch
	// ErrMissingField indicates a keyed input was missing a required field.
	ErrMissingField
	// ErrUnsupported indicates an attempt to encode a type this codec does not support.
	ErrUnsupported
	// ErrArgumentCount indicates the value count does not match the type count.
	ErrArgumentCount
)

// EncodeError is returned by Encode/EncodeRaw when a value cannot be packed
// against its declared type.
type EncodeError struct {
	Kind   EncodeErrorKind
	Type   string
	Detail string
}

func (e *EncodeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("abi: encode error: %s", e.Detail)
	}
	return fmt.Sprintf("abi: encode error for type %s: %s", e.Type, e.Detail)
}

// DecodeErrorKind classifies a DecodeError.
type DecodeErrorKind byte

const (
	// ErrTruncated indicates the input buffer ended before a read completed.
	// It is also returned when the nesting depth limit is exceeded and when
	// a type has no leaf decoding (fixed/ufixed).
	ErrTruncated DecodeErrorKind = iota
	// ErrBadBool indicates a boolean slot held neither 0 nor 1.
	ErrBadBool
	// ErrBadOffset indicates a dynamic offset pointed outside the buffer, or
	// (from Decode) a leading method-ID that does not match the selector.
	ErrBadOffset
)

// DecodeError is returned by Decode/DecodeRaw when a byte buffer cannot be
// parsed against its declared type.
type DecodeError struct {
	Kind   DecodeErrorKind
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("abi: decode error: %s", e.Detail)
}

// EventErrorKind classifies an EventError.
type EventErrorKind byte

const (
	// ErrTopicCountMismatch indicates the number of supplied topics does not
	// match the number of indexed fields (plus topic-0, if checked).
	ErrTopicCountMismatch EventErrorKind = iota
	// ErrTopicSignatureMismatch indicates topic-0 did not equal the event's
	// canonical signature hash.
	ErrTopicSignatureMismatch
)

// EventError is returned by DecodeEvent when topic bookkeeping fails.
type EventError struct {
	Kind        EventErrorKind
	Got         int
	Expected    int
	GotHex      string
	ExpectedHex string
}

func (e *EventError) Error() string {
	switch e.Kind {
	case ErrTopicCountMismatch:
		return fmt.Sprintf("abi: topic count mismatch: got %d, expected %d (pass WithoutSignatureCheck if topic-0 is absent)", e.Got, e.Expected)
	case ErrTopicSignatureMismatch:
		return fmt.Sprintf("abi: topic-0 signature mismatch: got %s, expected %s", e.GotHex, e.ExpectedHex)
	default:
		return "abi: event error"
	}
}
