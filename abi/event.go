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

import (
	"bytes"
	"encoding/hex"
)

// eventOpts controls DecodeEvent's topic-0 bookkeeping.
type eventOpts struct {
	checkSignature bool
	hash           hashOpts
}

// EventOption tweaks DecodeEvent.
type EventOption func(*eventOpts)

// WithoutSignatureCheck skips the topic-0-equals-Topic0(s) verification,
// for logs captured from an anonymous event or a source that has already
// verified the signature out of band.
func WithoutSignatureCheck() EventOption {
	return func(o *eventOpts) { o.checkSignature = false }
}

// WithEventHasher overrides the HASH provider used to derive topic-0 for
// signature verification.
func WithEventHasher(h Hasher) EventOption {
	return func(o *eventOpts) { o.hash.hasher = h }
}

// DecodeEvent unpacks an event log's data buffer and topic list against
// s. Non-indexed fields come from dataBuf via the ordinary head/tail
// codec; indexed fields come from topics in declaration order. A
// dynamic indexed field's topic slot holds HASH of its encoded value,
// not the value itself, and is returned to the caller as that raw
// 32-byte digest since the original value is not recoverable from a
// topic alone.
//
// By default the leading topic (topic-0) must equal Topic0(s); the check
// is off by default when s.Anonymous is set. Pass WithoutSignatureCheck
// to skip it for any other selector, e.g. for logs already verified.
func DecodeEvent(s Selector, dataBuf []byte, topics [][32]byte, opts ...EventOption) (string, map[string]Value, error) {
	o := &eventOpts{checkSignature: !s.Anonymous}
	o.hash = *newHashOpts()
	for _, opt := range opts {
		opt(o)
	}

	indexed := make([]Field, 0, len(s.Inputs))
	nonIndexed := make([]Field, 0, len(s.Inputs))
	for _, f := range s.Inputs {
		if f.Indexed {
			indexed = append(indexed, f)
		} else {
			nonIndexed = append(nonIndexed, f)
		}
	}

	wantTopics := len(indexed)
	gotTopics := len(topics)
	if o.checkSignature {
		wantTopics++
	}
	if gotTopics != wantTopics {
		return "", nil, &EventError{Kind: ErrTopicCountMismatch, Got: gotTopics, Expected: wantTopics}
	}

	topicIdx := 0
	if o.checkSignature {
		want := o.hash.hasher.Hash([]byte(Canonical(s)))
		if !bytes.Equal(topics[0][:], want[:]) {
			return "", nil, &EventError{
				Kind:        ErrTopicSignatureMismatch,
				GotHex:      "0x" + hex.EncodeToString(topics[0][:]),
				ExpectedHex: "0x" + hex.EncodeToString(want[:]),
			}
		}
		topicIdx = 1
	}

	result := make(map[string]Value, len(s.Inputs))
	for _, f := range indexed {
		topic := topics[topicIdx]
		topicIdx++
		if f.Type.Dyn() {
			result[f.Name] = NewBytes(append([]byte{}, topic[:]...))
			continue
		}
		v, err := decodeStaticInline(topic[:], f.Type, decodeCtx{opts: decodeOpts{truncateStrings: true}})
		if err != nil {
			return "", nil, err
		}
		result[f.Name] = v
	}

	nonIndexedValues, err := DecodeRaw(dataBuf, fieldTypesOf(nonIndexed))
	if err != nil {
		return "", nil, err
	}
	for i, f := range nonIndexed {
		result[f.Name] = nonIndexedValues[i]
	}

	return s.Name, result, nil
}
