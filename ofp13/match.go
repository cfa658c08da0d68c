/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package ofp13

import (
	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

var matchSpec = tlvSpec("match", MatchTypeOXM, tlvHeaderLen, false)

// Match is an OXM match set. Its wire length excludes the trailing padding
// to a multiple of 8 bytes.
type Match struct {
	fields wire.List[MatchField]
	pad    []byte
}

// NewMatch builds a match from fields in the given order without checking
// for duplicates.
func NewMatch(fields ...MatchField) Match {
	return Match{fields: append(wire.List[MatchField]{}, fields...)}
}

// CreateMatch is NewMatch rejecting two fields of the same type.
func CreateMatch(fields ...MatchField) (Match, error) {
	m := NewMatch(fields...)
	if f, dup := m.duplicate(); dup {
		return Match{}, errors.Errorf("match: duplicate field %s", f.Field())
	}
	return m, nil
}

func (m Match) duplicate() (MatchField, bool) {
	seen := make(map[uint32]bool, len(m.fields))
	for _, f := range m.fields {
		if seen[f.Type()] {
			return f, true
		}
		seen[f.Type()] = true
	}
	return MatchField{}, false
}

// IsValidSet reports whether no field type appears twice.
func (m Match) IsValidSet() bool {
	_, dup := m.duplicate()
	return !dup
}

// Fields returns the fields in wire order.
func (m Match) Fields() []MatchField {
	return m.fields.Clone()
}

func (m Match) Len() int {
	return len(m.fields)
}

// Field returns the field of type f, if present.
func (m Match) Field(f OXMField) (MatchField, bool) {
	for _, field := range m.fields {
		if field.Field() == f {
			return field, true
		}
	}
	return MatchField{}, false
}

// With returns a copy of m with field added, replacing a field of the same
// type.
func (m Match) With(field MatchField) Match {
	fields := make(wire.List[MatchField], 0, len(m.fields)+1)
	replaced := false
	for _, f := range m.fields {
		if f.Type() == field.Type() {
			f, replaced = field, true
		}
		fields = append(fields, f)
	}
	if !replaced {
		fields = append(fields, field)
	}
	return Match{fields: fields}
}

func (m Match) Length() int {
	return tlvHeaderLen + m.fields.Length()
}

func (m Match) ByteLength() int {
	return wire.Align8(m.Length())
}

func (m Match) Encode(b []byte) []byte {
	b = wire.Append(b, &ofpTLVHeader{Type: MatchTypeOXM, Len: uint16(m.Length())})
	b = m.fields.Encode(b)
	return append(b, padding(m.pad, m.Length())...)
}

func (m Match) Equal(o Match) bool {
	return m.fields.Equal(o.fields) && padEqual(m.pad, o.pad, m.Length())
}

// Equivalent compares the fields pairwise in order.
func (m Match) Equivalent(o Match) bool {
	return m.fields.Equivalent(o.fields)
}

// EquivalentAsSet compares two valid match sets regardless of field order.
// A field missing from one side is equivalent to a fully wildcarded one.
func (m Match) EquivalentAsSet(o Match) bool {
	if !m.IsValidSet() || !o.IsValidSet() {
		return false
	}
	other := make(map[uint32]MatchField, len(o.fields))
	for _, f := range o.fields {
		other[f.Type()] = f
	}
	for _, f := range m.fields {
		g, ok := other[f.Type()]
		delete(other, f.Type())
		if !ok {
			if !f.IsWildcard() {
				return false
			}
			continue
		}
		if !f.Equivalent(g) {
			return false
		}
	}
	for _, g := range other {
		if !g.IsWildcard() {
			return false
		}
	}
	return true
}

// equivalentTo compares valid sets regardless of order and anything else
// pairwise.
func (m Match) equivalentTo(o Match) bool {
	if m.IsValidSet() && o.IsValidSet() {
		return m.EquivalentAsSet(o)
	}
	return m.Equivalent(o)
}

func (m Match) String() string {
	s := ""
	for i, f := range m.fields {
		if i > 0 {
			s += ","
		}
		s += f.String()
	}
	return s
}

// DecodeMatch decodes an OXM match and its padding.
func DecodeMatch(d *wire.Decoder) (Match, error) {
	body, pad, err := openTLV(d, matchFamily, matchSpec, true)
	if err != nil {
		return Match{}, err
	}
	if err := body.Skip(tlvHeaderLen); err != nil {
		return Match{}, matchFamily.Truncated(tlvHeaderLen, body.Len())
	}
	fields, err := oxms.DecodeList(body)
	if err != nil {
		return Match{}, err
	}
	m := Match{fields: fields, pad: pad}
	if f, dup := m.duplicate(); dup {
		return Match{}, wire.NewError(CodeDuplicateField, "duplicate oxm field %s", f.Field())
	}
	return m, nil
}
