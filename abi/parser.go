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
	"regexp"
	"strconv"
)

// baseTypeRegexp splits a lexer word like "uint256" or "fixed128x18" into
// its letter base, optional size, and optional fractional-size groups.
// This exploits the fact the grammar never puts whitespace between a
// keyword and its trailing digits.
var baseTypeRegexp = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)?(?:x([0-9]+))?$`)

// maxParseDepth bounds how deeply tuples may nest before the parser gives
// up, guarding against unbounded memory growth on adversarial input while
// keeping the parser itself allocation-iterative rather than recursive.
const maxParseDepth = 256

// ParseSignature parses a human-readable signature such as
// "transfer(address,uint256)" or "Transfer(address indexed from, address
// indexed to, uint256 amount)" into a Selector. A leading name is optional
// only when the caller intends an Unnamed selector (a bare "(...)" tuple).
func ParseSignature(sig string) (Selector, error) {
	toks, err := lex(sig)
	if err != nil {
		return Selector{}, err
	}
	pos := 0
	name := ""
	if toks[pos].kind == tokWord {
		name = toks[pos].text
		pos++
	}
	if toks[pos].kind != tokLParen {
		return Selector{}, &ParseError{Pos: toks[pos].pos, Msg: "expected '('"}
	}
	pos++
	inputs, pos, err := parseFields(toks, pos, tokRParen)
	if err != nil {
		return Selector{}, err
	}
	// parseFields leaves pos at the terminator token; consume it.
	pos++

	var outputs []Field
	hasOutputs := false
	if toks[pos].kind == tokArrow {
		pos++
		hasOutputs = true
		outputs, pos, err = parseFields(toks, pos, tokEOF)
		if err != nil {
			return Selector{}, err
		}
	}
	if toks[pos].kind != tokEOF {
		return Selector{}, &ParseError{Pos: toks[pos].pos, Msg: "unexpected trailing input '" + toks[pos].text + "'"}
	}

	kind := SelectorFunction
	if name == "" {
		kind = SelectorUnnamed
	}
	sel := Selector{Name: name, Kind: kind, Inputs: inputs}
	if hasOutputs {
		sel.Outputs = outputs
		sel.HasOutputs = true
	}
	return sel, nil
}

// ParseType parses a single type token (e.g. "uint256", "(uint256,bool)[]")
// in isolation. The JSON-ABI loader does not go through it: it strips
// array suffixes itself and calls parseBaseTypeWord directly.
func ParseType(s string) (Type, error) {
	toks, err := lex(s)
	if err != nil {
		return Type{}, err
	}
	typ, pos, err := parseAtomicWithSuffixes(toks, 0, 0)
	if err != nil {
		return Type{}, err
	}
	if toks[pos].kind != tokEOF {
		return Type{}, &ParseError{Pos: toks[pos].pos, Msg: "unexpected trailing input '" + toks[pos].text + "'"}
	}
	return typ, nil
}

// argFrame accumulates the fields of one arglist while it is open. term is
// the token kind that closes this frame (tokRParen for every nested tuple
// and for a parenthesized top-level input list; tokEOF for the unparenthesized
// output arglist permitted by the grammar).
type argFrame struct {
	term   tokenKind
	fields []Field
}

// parseFields parses a comma-separated arglist iteratively: nested tuples
// push a new frame onto an explicit stack instead of recursing, so parser
// depth is bounded by maxParseDepth rather than by the Go call stack.
// An adversarial deeply-nested tuple signature must fail with a
// ParseError instead of overflowing the stack.
func parseFields(toks []token, pos int, term tokenKind) ([]Field, int, error) {
	stack := []*argFrame{{term: term}}

	for {
		if len(stack) == 0 {
			return nil, pos, &ParseError{Pos: toks[pos].pos, Msg: "internal parser error: empty frame stack"}
		}
		top := stack[len(stack)-1]
		tk := toks[pos]

		if tk.kind == top.term {
			fields := top.fields
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return fields, pos, nil
			}
			// This frame was a nested tuple type; finish building it as the
			// current arg of the parent frame (apply suffixes, indexed, name).
			typ := Type{Kind: KindTuple, Fields: fields}
			pos++ // consume the ')' that closed the nested tuple
			var err error
			var field Field
			field, pos, err = finishArg(toks, pos, typ)
			if err != nil {
				return nil, pos, err
			}
			parent := stack[len(stack)-1]
			parent.fields = append(parent.fields, field)
			if err = expectCommaOrTerm(toks, &pos, parent.term); err != nil {
				return nil, pos, err
			}
			continue
		}

		switch tk.kind {
		case tokLParen:
			if len(stack) >= maxParseDepth {
				return nil, pos, &ParseError{Pos: tk.pos, Msg: "tuple nesting too deep"}
			}
			pos++
			stack = append(stack, &argFrame{term: tokRParen})
		case tokWord:
			base, err := parseBaseTypeWord(tk.text, tk.pos)
			if err != nil {
				return nil, pos, err
			}
			pos++
			field, newPos, err := finishArg(toks, pos, base)
			if err != nil {
				return nil, pos, err
			}
			pos = newPos
			top.fields = append(top.fields, field)
			if err = expectCommaOrTerm(toks, &pos, top.term); err != nil {
				return nil, pos, err
			}
		default:
			return nil, pos, &ParseError{Pos: tk.pos, Msg: "unexpected token '" + tk.text + "'"}
		}
	}
}

// expectCommaOrTerm consumes a separating comma (rejecting a trailing comma
// immediately before the terminator) and otherwise leaves pos untouched so
// the caller's loop can observe the terminator itself.
func expectCommaOrTerm(toks []token, pos *int, term tokenKind) error {
	tk := toks[*pos]
	if tk.kind == tokComma {
		*pos++
		if toks[*pos].kind == term {
			return &ParseError{Pos: toks[*pos].pos, Msg: "unexpected trailing comma"}
		}
		return nil
	}
	if tk.kind == term {
		return nil
	}
	return &ParseError{Pos: tk.pos, Msg: "expected ',' or closing delimiter, got '" + tk.text + "'"}
}

// finishArg parses the suffix/indexed/name tail of a single arg, given its
// already-parsed base type.
func finishArg(toks []token, pos int, typ Type) (Field, int, error) {
	typ, pos, err := parseSuffixes(toks, pos, typ)
	if err != nil {
		return Field{}, pos, err
	}
	indexed := false
	if toks[pos].kind == tokWord && toks[pos].text == "indexed" {
		indexed = true
		pos++
	}
	name := ""
	if toks[pos].kind == tokWord {
		name = toks[pos].text
		pos++
		if !isValidName(name) {
			return Field{}, pos, &ParseError{Pos: toks[pos-1].pos, Msg: "invalid argument name '" + name + "'"}
		}
	}
	return Field{Type: typ, Name: name, Indexed: indexed}, pos, nil
}

// parseAtomicWithSuffixes parses a single top-level type expression (used by
// ParseType for lone type strings, which never carry names or the
// "indexed" keyword). depth guards nested-tuple recursion the same way
// parseFields' explicit stack does, but ParseType's grammar (a lone type,
// not an arglist) is naturally tail-recursive in Go and small in practice,
// so a depth-checked recursive descent is used here instead of a second
// iterative engine.
func parseAtomicWithSuffixes(toks []token, pos int, depth int) (Type, int, error) {
	if depth >= maxParseDepth {
		return Type{}, pos, &ParseError{Pos: toks[pos].pos, Msg: "tuple nesting too deep"}
	}
	tk := toks[pos]
	var typ Type
	var err error
	switch tk.kind {
	case tokLParen:
		pos++
		var fields []Field
		if toks[pos].kind != tokRParen {
			for {
				var f Type
				f, pos, err = parseAtomicWithSuffixes(toks, pos, depth+1)
				if err != nil {
					return Type{}, pos, err
				}
				fields = append(fields, Field{Type: f})
				if toks[pos].kind == tokComma {
					pos++
					continue
				}
				break
			}
		}
		if toks[pos].kind != tokRParen {
			return Type{}, pos, &ParseError{Pos: toks[pos].pos, Msg: "expected ')'"}
		}
		pos++
		typ = Type{Kind: KindTuple, Fields: fields}
	case tokWord:
		typ, err = parseBaseTypeWord(tk.text, tk.pos)
		if err != nil {
			return Type{}, pos, err
		}
		pos++
	default:
		return Type{}, pos, &ParseError{Pos: tk.pos, Msg: "unexpected token '" + tk.text + "'"}
	}
	return parseSuffixes(toks, pos, typ)
}

// parseSuffixes consumes zero or more "[" [digits] "]" array suffixes,
// wrapping typ from the innermost outward (so "uint256[2][]" is a DynArray
// of FixedArray(Uint256, 2)).
func parseSuffixes(toks []token, pos int, typ Type) (Type, int, error) {
	for toks[pos].kind == tokLBracket {
		pos++
		if toks[pos].kind == tokInt {
			n, err := strconv.Atoi(toks[pos].text)
			if err != nil {
				return Type{}, pos, &ParseError{Pos: toks[pos].pos, Msg: "invalid array size"}
			}
			pos++
			if toks[pos].kind != tokRBracket {
				return Type{}, pos, &ParseError{Pos: toks[pos].pos, Msg: "expected ']'"}
			}
			pos++
			typ = FixedArray(typ, n)
		} else {
			if toks[pos].kind != tokRBracket {
				return Type{}, pos, &ParseError{Pos: toks[pos].pos, Msg: "expected ']' or array size"}
			}
			pos++
			typ = DynArray(typ)
		}
	}
	return typ, pos, nil
}

var baseTypeKeywords = map[string]bool{
	"uint": true, "int": true, "address": true, "bool": true,
	"fixed": true, "ufixed": true, "bytes": true, "function": true, "string": true,
}

// parseBaseTypeWord splits a lexer word into its keyword and digit groups
// and builds the corresponding elementary Type. Bare "uint"/"int" widen
// to 256 unconditionally on input.
func parseBaseTypeWord(word string, pos int) (Type, error) {
	m := baseTypeRegexp.FindStringSubmatch(word)
	if m == nil {
		return Type{}, &ParseError{Pos: pos, Msg: "invalid type token '" + word + "'"}
	}
	base, sizeStr, fracStr := m[1], m[2], m[3]
	if !baseTypeKeywords[base] {
		return Type{}, &ParseError{Pos: pos, Msg: "unknown type '" + base + "'"}
	}
	switch base {
	case "uint", "int":
		size := 256
		if sizeStr != "" {
			n, err := strconv.Atoi(sizeStr)
			if err != nil {
				return Type{}, &ParseError{Pos: pos, Msg: "invalid width in '" + word + "'"}
			}
			size = n
		}
		if size <= 0 || size > 256 || size%8 != 0 {
			return Type{}, &ParseError{Pos: pos, Msg: "invalid integer width in '" + word + "'"}
		}
		if base == "uint" {
			return Uint(size), nil
		}
		return Int(size), nil
	case "address":
		if sizeStr != "" {
			return Type{}, &ParseError{Pos: pos, Msg: "address takes no width"}
		}
		return Address(), nil
	case "bool":
		if sizeStr != "" {
			return Type{}, &ParseError{Pos: pos, Msg: "bool takes no width"}
		}
		return Bool(), nil
	case "bytes":
		if sizeStr == "" {
			return Bytes(), nil
		}
		n, err := strconv.Atoi(sizeStr)
		if err != nil || n < 1 || n > 32 {
			return Type{}, &ParseError{Pos: pos, Msg: "invalid bytes width in '" + word + "'"}
		}
		return BytesN(n), nil
	case "string":
		if sizeStr != "" {
			return Type{}, &ParseError{Pos: pos, Msg: "string takes no width"}
		}
		return String(), nil
	case "function":
		if sizeStr != "" {
			return Type{}, &ParseError{Pos: pos, Msg: "function takes no width"}
		}
		return Function(), nil
	case "fixed", "ufixed":
		if sizeStr == "" || fracStr == "" {
			return Type{}, &ParseError{Pos: pos, Msg: "fixed/ufixed require MxN, e.g. fixed128x18"}
		}
		m64, err1 := strconv.Atoi(sizeStr)
		n64, err2 := strconv.Atoi(fracStr)
		if err1 != nil || err2 != nil {
			return Type{}, &ParseError{Pos: pos, Msg: "invalid fixed/ufixed width in '" + word + "'"}
		}
		if base == "fixed" {
			return Fixed(m64, n64), nil
		}
		return UFixed(m64, n64), nil
	}
	return Type{}, &ParseError{Pos: pos, Msg: "unknown type '" + base + "'"}
}

// isValidName reports whether s is a valid parameter/method identifier:
// letters, digits, and underscores, not starting with a digit.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 0 && isDigit(c) {
			return false
		}
		if !isLetter(c) && !isDigit(c) {
			return false
		}
	}
	return true
}
