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

// tokenKind enumerates the lexical categories of the signature grammar.
// Words absorb both the letter-only and letter+digit forms
// ("uint", "uint256", "fixed128x18", "indexed", a name) because the
// grammar never separates a base-type keyword from its trailing digits by
// whitespace; the parser re-splits a word into base/size/frac with a
// small regexp when it needs to.
type tokenKind byte

const (
	tokWord tokenKind = iota
	tokInt
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokArrow
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex tokenizes a signature string. It never recurses and never fails on
// well-formed punctuation; unrecognized characters produce a *ParseError at
// the point they are encountered.
func lex(s string) ([]token, error) {
	var toks []token
	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		case c == '[':
			toks = append(toks, token{tokLBracket, "[", i})
			i++
		case c == ']':
			toks = append(toks, token{tokRBracket, "]", i})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ",", i})
			i++
		case c == '-' && i+1 < n && s[i+1] == '>':
			toks = append(toks, token{tokArrow, "->", i})
			i += 2
		case isDigit(c):
			start := i
			for i < n && isDigit(s[i]) {
				i++
			}
			toks = append(toks, token{tokInt, s[start:i], start})
		case isLetter(c):
			start := i
			for i < n && (isLetter(s[i]) || isDigit(s[i])) {
				i++
			}
			toks = append(toks, token{tokWord, s[start:i], start})
		default:
			return nil, &ParseError{Pos: i, Msg: "unexpected character '" + string(c) + "'"}
		}
	}
	toks = append(toks, token{tokEOF, "", n})
	return toks, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
