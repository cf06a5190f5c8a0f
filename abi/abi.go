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
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ABI is a whole parsed JSON-ABI document: a constructor, and the three
// name-keyed collections a contract exposes.
type ABI struct {
	Constructor Selector
	Methods     map[string]Selector
	Events      map[string]Selector
	Errors      map[string]Selector
	Fallback    *Selector
	Receive     *Selector
}

// ParseJSON parses a whole JSON-ABI document from r, resolving
// overloaded names with ResolveNameConflict as it populates the
// Methods/Events/Errors maps.
func ParseJSON(r io.Reader) (ABI, error) {
	var items []map[string]any
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return ABI{}, fmt.Errorf("abi: invalid JSON-ABI document: %w", err)
	}

	out := ABI{
		Methods: make(map[string]Selector),
		Events:  make(map[string]Selector),
		Errors:  make(map[string]Selector),
	}
	for _, item := range items {
		s, ok, err := ParseJSONItem(item)
		if err != nil {
			return ABI{}, err
		}
		if !ok {
			continue
		}
		switch s.Kind {
		case SelectorConstructor:
			out.Constructor = s
		case SelectorFallback:
			f := s
			out.Fallback = &f
		case SelectorReceive:
			rc := s
			out.Receive = &rc
		case SelectorFunction:
			name := ResolveNameConflict(s.Name, func(n string) bool { _, ok := out.Methods[n]; return ok })
			out.Methods[name] = s
		case SelectorEvent:
			name := ResolveNameConflict(s.Name, func(n string) bool { _, ok := out.Events[n]; return ok })
			out.Events[name] = s
		case SelectorError:
			name := ResolveNameConflict(s.Name, func(n string) bool { _, ok := out.Errors[n]; return ok })
			out.Errors[name] = s
		}
	}
	return out, nil
}

// selectorByName resolves name against the constructor and the three
// name-keyed collections.
func (a ABI) selectorByName(name string) (Selector, error) {
	if name == "" {
		return a.Constructor, nil
	}
	if s, ok := a.Methods[name]; ok {
		return s, nil
	}
	if s, ok := a.Events[name]; ok {
		return s, nil
	}
	if s, ok := a.Errors[name]; ok {
		return s, nil
	}
	return Selector{}, fmt.Errorf("abi: no method, event, or error named %q", name)
}

// Pack encodes values against the entry named name (an empty name means
// the constructor), prepending a method-ID when applicable.
func (a ABI) Pack(name string, values []Value, opts ...HashOption) ([]byte, error) {
	s, err := a.selectorByName(name)
	if err != nil {
		return nil, err
	}
	return Encode(values, s, opts...)
}

// Unpack decodes data against the entry named name's Inputs.
func (a ABI) Unpack(name string, data []byte, opts ...HashOption) ([]Value, error) {
	s, err := a.selectorByName(name)
	if err != nil {
		return nil, err
	}
	return Decode(data, s, opts...)
}

// MethodByID scans Methods for the one whose MethodID equals id.
func (a ABI) MethodByID(id [4]byte, opts ...HashOption) (Selector, error) {
	for _, s := range a.Methods {
		if MethodID(s, opts...) == id {
			return s, nil
		}
	}
	return Selector{}, fmt.Errorf("abi: no method with id 0x%x", id)
}

// EventByID scans Events for the one whose Topic0 equals id.
func (a ABI) EventByID(id [32]byte, opts ...HashOption) (Selector, error) {
	for _, s := range a.Events {
		if Topic0(s, opts...) == id {
			return s, nil
		}
	}
	return Selector{}, fmt.Errorf("abi: no event with id 0x%x", id)
}

// revertSelector and panicSelector are the fixed 4-byte prefixes Solidity
// emits for its two built-in revert encodings, so UnpackRevert works
// without a caller-supplied ABI document.
var (
	revertSelector = mustMethodID("Error(string)")
	panicSelector  = mustMethodID("Panic(uint256)")
)

func mustMethodID(sig string) [4]byte {
	s, err := ParseSignature(sig)
	if err != nil {
		panic(err)
	}
	return MethodID(s)
}

// panicReasons maps the well-known Solidity panic codes to their
// human-readable descriptions.
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytes",
	0x41: "out of memory",
	0x51: "uninitialized function pointer",
}

// UnpackRevert decodes the standard Solidity revert encodings: a
// require()/revert("msg") Error(string) payload, or an assert-style
// Panic(uint256) code.
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", errors.New("abi: invalid data for unpacking revert")
	}
	var id [4]byte
	copy(id[:], data[:4])
	switch id {
	case revertSelector:
		typ := String()
		vs, err := DecodeRaw(data[4:], []Type{typ})
		if err != nil {
			return "", err
		}
		return vs[0].String(), nil
	case panicSelector:
		typ := Uint(256)
		vs, err := DecodeRaw(data[4:], []Type{typ})
		if err != nil {
			return "", err
		}
		code := vs[0].Int.Uint64()
		if reason, ok := panicReasons[code]; ok {
			return reason, nil
		}
		return fmt.Sprintf("unknown panic code: 0x%x", code), nil
	default:
		return "", errors.New("abi: unknown revert selector")
	}
}
