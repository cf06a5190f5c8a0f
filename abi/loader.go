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
	"regexp"
	"strconv"
	"strings"
)

var jsonArraySuffix = regexp.MustCompile(`^(.*)\[(\d*)\]$`)

// ParseJSONItem translates a single decoded JSON-ABI object (already
// unmarshaled into the generic map[string]any/[]any tree that
// encoding/json produces, since a JSON parser is an out-of-scope
// external collaborator this codec only consumes) into a Selector.
//
// It reports false, not an error, when "type" holds a value this codec
// does not recognize: the loader drops unknown entries, logging a Debug
// breadcrumb instead of failing the whole document over one
// unrecognized item.
func ParseJSONItem(item map[string]any) (Selector, bool, error) {
	typ, _ := item["type"].(string)

	var kind SelectorKind
	switch typ {
	case "function", "":
		kind = SelectorFunction
	case "constructor":
		kind = SelectorConstructor
	case "fallback":
		kind = SelectorFallback
	case "receive":
		kind = SelectorReceive
	case "event":
		kind = SelectorEvent
	case "error":
		kind = SelectorError
	default:
		logDebug("abi: dropping unrecognized JSON-ABI item", "type", typ)
		return Selector{}, false, nil
	}

	name, _ := item["name"].(string)

	inputs, err := buildFieldsFromItem(item["inputs"])
	if err != nil {
		return Selector{}, false, fmt.Errorf("abi: %s: inputs: %w", name, err)
	}

	var outputs []Field
	hasOutputs := false
	if raw, ok := item["outputs"]; ok {
		outputs, err = buildFieldsFromItem(raw)
		if err != nil {
			return Selector{}, false, fmt.Errorf("abi: %s: outputs: %w", name, err)
		}
		hasOutputs = true
	}

	anonymous, _ := item["anonymous"].(bool)

	s := Selector{
		Name:       name,
		Kind:       kind,
		Mutability: mutabilityOf(item),
		Inputs:     inputs,
		Outputs:    outputs,
		HasOutputs: hasOutputs,
		Anonymous:  anonymous,
	}
	if !s.valid() {
		return Selector{}, false, fmt.Errorf("abi: item of kind %d requires a name", kind)
	}
	return s, true, nil
}

// mutabilityOf reads stateMutability, falling back to the legacy
// "constant"/"payable" boolean fields older JSON-ABI documents use.
func mutabilityOf(item map[string]any) Mutability {
	if sm, ok := item["stateMutability"].(string); ok {
		switch sm {
		case "pure":
			return Pure
		case "view":
			return View
		case "payable":
			return Payable
		default:
			return NonPayable
		}
	}
	if payable, ok := item["payable"].(bool); ok && payable {
		return Payable
	}
	if constant, ok := item["constant"].(bool); ok && constant {
		return View
	}
	return NonPayable
}

func buildFieldsFromItem(raw any) ([]Field, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	fields := make([]Field, len(list))
	for i, entry := range list {
		comp, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("component %d is not an object", i)
		}
		f, err := jsonComponentToField(comp, i)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}

// jsonComponentToField builds one Field from a JSON-ABI input/output/
// component object. A component with an empty "name" is given the
// synthetic name "varN" (N its index in the enclosing list) so that
// map-keyed value packing always has something to key on.
func jsonComponentToField(comp map[string]any, idx int) (Field, error) {
	name, _ := comp["name"].(string)
	if name == "" {
		name = fmt.Sprintf("var%d", idx)
	}
	typeStr, _ := comp["type"].(string)
	internalType, _ := comp["internalType"].(string)
	indexed, _ := comp["indexed"].(bool)
	components, _ := comp["components"].([]any)

	t, err := buildJSONType(typeStr, internalType, components)
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}
	return Field{Type: t, Name: name, Indexed: indexed}, nil
}

// buildJSONType resolves a JSON-ABI "type" string (with its optional
// array suffixes) plus, for tuples, its "components" list and
// "internalType" struct-name hint, into a Type. Trailing "[]"/"[N]"
// suffixes are stripped right to left and re-applied innermost first,
// mirroring parser.go's parseSuffixes for the signature-string grammar.
func buildJSONType(typeStr, internalType string, components []any) (Type, error) {
	base := typeStr
	var suffixes []int // -1 marks a dynamic "[]"; >=0 is a fixed "[N]"
	for {
		m := jsonArraySuffix.FindStringSubmatch(base)
		if m == nil {
			break
		}
		base = m[1]
		if m[2] == "" {
			suffixes = append(suffixes, -1)
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Type{}, err
		}
		suffixes = append(suffixes, n)
	}

	var elem Type
	var err error
	if base == "tuple" {
		elem, err = buildTupleType(internalType, components)
	} else {
		elem, err = parseBaseTypeWord(base, 0)
	}
	if err != nil {
		return Type{}, err
	}

	for i := len(suffixes) - 1; i >= 0; i-- {
		if suffixes[i] < 0 {
			elem = DynArray(elem)
		} else {
			elem = FixedArray(elem, suffixes[i])
		}
	}
	return elem, nil
}

// buildTupleType builds a Tuple, or a Struct when internalType carries
// the "struct " prefix Solidity's compiler emits.
func buildTupleType(internalType string, components []any) (Type, error) {
	fields := make([]Field, len(components))
	for i, c := range components {
		comp, ok := c.(map[string]any)
		if !ok {
			return Type{}, fmt.Errorf("tuple component %d is not an object", i)
		}
		f, err := jsonComponentToField(comp, i)
		if err != nil {
			return Type{}, err
		}
		fields[i] = f
	}

	structName := strings.TrimPrefix(internalType, "struct ")
	if structName == internalType || structName == "" {
		return Tuple(fields), nil
	}
	// internalType may itself carry trailing array suffixes ("struct Foo.Bar[2]");
	// those are already accounted for by buildJSONType's own suffix loop, so
	// strip them again here from the name.
	for {
		m := jsonArraySuffix.FindStringSubmatch(structName)
		if m == nil {
			break
		}
		structName = m[1]
	}
	return Struct(structName, fields), nil
}
