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

import "strings"

// canonOpts controls how Canonical renders a Selector.
type canonOpts struct {
	withNames   bool
	withIndexed bool
	withOutputs bool
}

// CanonicalOption tweaks Canonical's output. The default rendering (no
// options) is the strict "name(type,type,...)" form used to derive a
// method-ID or topic-0: it never includes outputs, since the HASH input
// is defined purely in terms of the argument types.
type CanonicalOption func(*canonOpts)

// WithFieldNames renders each field's name alongside its type, the way a
// human-readable ABI signature (rather than a hash-input signature) is
// usually displayed.
func WithFieldNames() CanonicalOption {
	return func(o *canonOpts) { o.withNames = true }
}

// WithIndexedMarkers renders the "indexed" keyword on every field whose
// Indexed flag is set, whatever the selector's kind; normally only event
// inputs carry that flag.
func WithIndexedMarkers() CanonicalOption {
	return func(o *canonOpts) { o.withIndexed = true }
}

// WithOutputs appends " -> type,type,..." for selectors that declare
// outputs; combined with WithFieldNames the list is parenthesized as
// " -> (type name,...)". This is purely a display option for human-readable
// signatures: MethodID and Topic0 never set it, since the hashed
// signature never includes outputs.
func WithOutputs() CanonicalOption {
	return func(o *canonOpts) { o.withOutputs = true }
}

// Canonical renders s back into its canonical signature string. With no
// options this is exactly the string HASHed to derive a method-ID or
// topic-0: the bare name followed by a parenthesized, comma-joined list
// of argument types with tuples spelled out recursively as
// "(t1,t2,...)" and no argument names, "indexed" keywords, or outputs.
func Canonical(s Selector, opts ...CanonicalOption) string {
	o := &canonOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	writeFieldList(&b, s.Inputs, o)
	b.WriteByte(')')
	if o.withOutputs && s.HasOutputs {
		b.WriteString(" -> ")
		if o.withNames {
			b.WriteByte('(')
			writeFieldList(&b, s.Outputs, o)
			b.WriteByte(')')
		} else {
			writeFieldList(&b, s.Outputs, o)
		}
	}
	return b.String()
}

func writeFieldList(b *strings.Builder, fields []Field, o *canonOpts) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeFieldType(b, f.Type)
		if o.withIndexed && f.Indexed {
			b.WriteString(" indexed")
		}
		if o.withNames && f.Name != "" {
			b.WriteByte(' ')
			b.WriteString(f.Name)
		}
	}
}

// writeFieldType renders a Type using its own String(), which already
// spells tuples out recursively as "(t1,t2,...)" (type.go).
func writeFieldType(b *strings.Builder, t Type) {
	b.WriteString(t.String())
}

// MethodID returns the 4-byte selector prefix used by the function-call
// wire format: the leading bytes of HASH applied to the strict
// canonical signature.
func MethodID(s Selector, opts ...HashOption) [4]byte {
	ho := newHashOpts()
	for _, opt := range opts {
		opt(ho)
	}
	digest := ho.hasher.Hash([]byte(Canonical(s)))
	var out [4]byte
	copy(out[:], digest[:4])
	return out
}

// Topic0 returns the full 32-byte HASH of the strict canonical signature,
// used as the first entry of an event log's topics.
func Topic0(s Selector, opts ...HashOption) [32]byte {
	ho := newHashOpts()
	for _, opt := range opts {
		opt(ho)
	}
	return ho.hasher.Hash([]byte(Canonical(s)))
}
