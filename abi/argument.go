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

import "strconv"

// ResolveNameConflict returns the given name if it is not already used by
// the predicate, appending increasing numeric suffixes (name0, name1, ...)
// until a free one is found. Used to disambiguate overloaded method/event
// names when populating a name-keyed collection.
func ResolveNameConflict(name string, used func(string) bool) string {
	if !used(name) {
		return name
	}
	for i := 0; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !used(candidate) {
			return candidate
		}
	}
}
