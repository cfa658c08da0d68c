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
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_MatchEncode(t *testing.T) {
	tests := []struct {
		name  string
		match Match
		want  []byte
	}{
		{
			name:  "empty",
			match: NewMatch(),
			want:  []byte{0x00, 0x01, 0x00, 0x04, 0, 0, 0, 0},
		},
		{
			name:  "in_port",
			match: NewMatch(NewInPort(1)),
			want: []byte{
				0x00, 0x01, 0x00, 0x0c,
				0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01,
				0, 0, 0, 0,
			},
		},
		{
			name:  "in_port and eth_type",
			match: NewMatch(NewInPort(2), NewEthType(0x0800)),
			want: []byte{
				0x00, 0x01, 0x00, 0x12,
				0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x02,
				0x80, 0x00, 0x0a, 0x02, 0x08, 0x00,
				0, 0, 0, 0, 0, 0,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.match.Encode(nil)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
			}
			if test.match.ByteLength() != len(test.want) {
				t.Errorf("ByteLength: got %d, want %d", test.match.ByteLength(), len(test.want))
			}

			d := wire.NewDecoder(got)
			decoded, err := DecodeMatch(d)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if !decoded.Equal(test.match) {
				t.Errorf("decoded %s, want %s", decoded, test.match)
			}
			if d.Len() != 0 {
				t.Errorf("%d bytes left after decode", d.Len())
			}
		})
	}
}

func Test_MatchPadding(t *testing.T) {
	m := NewMatch(NewInPort(1))
	raw := m.Encode(nil)
	raw[15] = 0x5a

	got, err := DecodeMatch(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Equal(m) {
		t.Errorf("captured padding must make the matches unequal")
	}
	if !got.Equivalent(m) {
		t.Errorf("padding must not affect equivalence")
	}
	if diff := cmp.Diff(raw, got.Encode(nil)); diff != "" {
		t.Errorf("padding must be re-encoded verbatim (-want +got):\n%s", diff)
	}
}

func Test_DecodeMatchErrors(t *testing.T) {
	dup := NewMatch(NewInPort(1), NewInPort(2)).Encode(nil)

	tests := []struct {
		name string
		raw  []byte
		want wire.Code
	}{
		{
			name: "duplicate field",
			raw:  dup,
			want: CodeDuplicateField,
		},
		{
			name: "standard match type",
			raw:  []byte{0x00, 0x00, 0x00, 0x04, 0, 0, 0, 0},
			want: wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadType},
		},
		{
			name: "length shorter than the header",
			raw:  []byte{0x00, 0x01, 0x00, 0x02, 0, 0, 0, 0},
			want: wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadLen},
		},
		{
			name: "padding missing",
			raw:  []byte{0x00, 0x01, 0x00, 0x04},
			want: wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadLen},
		},
		{
			name: "unknown oxm field",
			raw:  []byte{0x00, 0x01, 0x00, 0x0c, 0x80, 0x00, 0x50, 0x04, 0, 0, 0, 0, 0, 0, 0, 0},
			want: CodeBadMatchField,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeMatch(wire.NewDecoder(test.raw))
			if !wire.IsError(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func Test_CreateMatchDuplicate(t *testing.T) {
	if _, err := CreateMatch(NewTCPSrc(1), NewTCPSrc(2)); err == nil {
		t.Errorf("expected duplicate tcp_src to be rejected")
	}
	m, err := CreateMatch(NewTCPSrc(1), NewTCPDst(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsValidSet() || m.Len() != 2 {
		t.Errorf("got %s, want a valid set of two fields", m)
	}
}

func Test_MatchEquivalentAsSet(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Match
		ordered bool
		set     bool
	}{
		{
			name:    "same order",
			a:       NewMatch(NewInPort(1), NewEthType(0x0800)),
			b:       NewMatch(NewInPort(1), NewEthType(0x0800)),
			ordered: true,
			set:     true,
		},
		{
			name: "different order",
			a:    NewMatch(NewInPort(1), NewEthType(0x0800)),
			b:    NewMatch(NewEthType(0x0800), NewInPort(1)),
			set:  true,
		},
		{
			name: "wildcard field on one side",
			a:    NewMatch(NewInPort(1)),
			b:    NewMatch(NewInPort(1), NewMetadataMasked(0, 0)),
			set:  true,
		},
		{
			name: "field missing on one side",
			a:    NewMatch(NewInPort(1)),
			b:    NewMatch(NewInPort(1), NewEthType(0x86dd)),
		},
		{
			name: "different values",
			a:    NewMatch(NewIPv4Src(net.ParseIP("10.0.0.1"))),
			b:    NewMatch(NewIPv4Src(net.ParseIP("10.0.0.2"))),
		},
		{
			name:    "duplicates are never a set",
			a:       NewMatch(NewInPort(1), NewInPort(1)),
			b:       NewMatch(NewInPort(1), NewInPort(1)),
			ordered: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equivalent(test.b); got != test.ordered {
				t.Errorf("Equivalent: got %v, want %v", got, test.ordered)
			}
			if got := test.a.EquivalentAsSet(test.b); got != test.set {
				t.Errorf("EquivalentAsSet: got %v, want %v", got, test.set)
			}
			if test.a.EquivalentAsSet(test.b) != test.b.EquivalentAsSet(test.a) {
				t.Errorf("EquivalentAsSet is not symmetric")
			}
		})
	}
}

func Test_MatchWith(t *testing.T) {
	m := NewMatch(NewInPort(1), NewEthType(0x0800))
	m = m.With(NewInPort(5)).With(NewIPProto(6))

	want := NewMatch(NewInPort(5), NewEthType(0x0800), NewIPProto(6))
	if !m.Equal(want) {
		t.Errorf("got %s, want %s", m, want)
	}
	f, ok := m.Field(OXMInPort)
	if !ok || f.Uint() != 5 {
		t.Errorf("in_port: got %v %v, want 5", f, ok)
	}
	if _, ok := m.Field(OXMTCPSrc); ok {
		t.Errorf("tcp_src must be absent")
	}
}
