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

// SelectorKind distinguishes the seven flavors of ABI entry a Selector can
// describe.
type SelectorKind byte

const (
	SelectorFunction SelectorKind = iota
	SelectorConstructor
	SelectorFallback
	SelectorReceive
	SelectorEvent
	SelectorError
	SelectorUnnamed
)

// Mutability records a function's declared state mutability. For entries
// where mutability does not apply (events, errors) it holds the zero
// value, NonPayable.
type Mutability byte

const (
	NonPayable Mutability = iota
	Pure
	View
	Payable
)

// Selector is the normalized descriptor produced by parsing either a
// human-readable signature (parser.go) or a JSON-ABI item (loader.go). It
// is immutable once constructed and freely shareable.
type Selector struct {
	Name       string
	Kind       SelectorKind
	Mutability Mutability
	Inputs     []Field
	Outputs    []Field
	// HasOutputs distinguishes "declared to return nothing" (Outputs == nil,
	// HasOutputs == true) from "outputs not applicable to this kind"
	// (HasOutputs == false).
	HasOutputs bool
	// Anonymous marks an event declared without a topic-0 signature slot.
	Anonymous bool
}

// valid reports whether the selector satisfies its own invariants: Name
// may only be empty for Fallback, Receive, or Unnamed kinds.
func (s Selector) valid() bool {
	if s.Name == "" {
		switch s.Kind {
		case SelectorFallback, SelectorReceive, SelectorUnnamed:
			return true
		default:
			return false
		}
	}
	return true
}

// hasSelectorPrefix reports whether encoding this selector prepends a
// 4-byte method-ID (functions only; constructors, fallback, receive, and
// unnamed tuples never carry one).
func (s Selector) hasSelectorPrefix() bool {
	return s.Kind == SelectorFunction
}
