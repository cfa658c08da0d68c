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

package ofp10

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_MatchEncode(t *testing.T) {
	want := append([]byte{0x00, 0x3f, 0xff, 0xfe, 0x00, 0x01}, make([]byte, 34)...)

	m := NewMatch().WithInPort(1)
	raw := m.Encode(nil)
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}

	d := wire.NewDecoder(raw)
	got, err := DecodeMatch(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(m) {
		t.Errorf("decoded %s, want %s", got, m)
	}
	if d.Len() != 0 {
		t.Errorf("%d bytes left after decode", d.Len())
	}
}

func Test_DecodeMatchTruncated(t *testing.T) {
	raw := NewMatch().Encode(nil)
	if _, err := DecodeMatch(wire.NewDecoder(raw[:39])); err == nil {
		t.Errorf("expected an error for a 39 byte match")
	}
}

func Test_MatchEquivalent(t *testing.T) {
	garbage := func(m Match, offset int) Match {
		raw := m.Encode(nil)
		raw[offset] ^= 0x5a
		got, err := DecodeMatch(wire.NewDecoder(raw))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return got
	}

	tests := []struct {
		name       string
		a, b       Match
		equal      bool
		equivalent bool
	}{
		{
			name:       "identical",
			a:          testMatch(),
			b:          testMatch(),
			equal:      true,
			equivalent: true,
		},
		{
			name:       "address bits outside the prefix",
			a:          NewMatch().WithNwSrc(net.ParseIP("10.0.0.1"), 8),
			b:          NewMatch().WithNwSrc(net.ParseIP("10.9.9.9"), 8),
			equivalent: true,
		},
		{
			name:       "value of a wildcarded field",
			a:          garbage(NewMatch().WithDlType(0x0800), 5),
			b:          NewMatch().WithDlType(0x0800),
			equivalent: true,
		},
		{
			name:       "padding",
			a:          garbage(testMatch(), 21),
			b:          testMatch(),
			equivalent: true,
		},
		{
			name:       "ignored nw_src bit counts of 32 and 63",
			a:          NewMatch().WithNwSrc(net.ParseIP("192.168.1.1"), 0),
			b:          NewMatch(),
			equivalent: true,
		},
		{
			name:       "unused wildcard bits",
			a:          garbage(NewMatch(), 0),
			b:          NewMatch(),
			equivalent: true,
		},
		{
			name: "different prefixes",
			a:    NewMatch().WithNwDst(net.ParseIP("10.0.0.0"), 8),
			b:    NewMatch().WithNwDst(net.ParseIP("10.0.0.0"), 16),
		},
		{
			name: "matched field differs",
			a:    NewMatch().WithTpDst(80),
			b:    NewMatch().WithTpDst(443),
		},
		{
			name: "wildcarded and matched",
			a:    NewMatch().WithInPort(0),
			b:    NewMatch(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.equal {
				t.Errorf("Equal: got %v, want %v", got, test.equal)
			}
			if got := test.a.Equivalent(test.b); got != test.equivalent {
				t.Errorf("Equivalent: got %v, want %v", got, test.equivalent)
			}
			if test.a.Equivalent(test.b) != test.b.Equivalent(test.a) {
				t.Errorf("Equivalent is not symmetric")
			}
		})
	}
}

func Test_MatchPrefix(t *testing.T) {
	m := NewMatch().WithNwSrc(net.ParseIP("10.1.0.0"), 16).WithNwDst(net.ParseIP("10.2.3.4"), 40)
	if m.NwSrcPrefix() != 16 {
		t.Errorf("NwSrcPrefix: got %d, want 16", m.NwSrcPrefix())
	}
	if m.NwDstPrefix() != 32 {
		t.Errorf("NwDstPrefix: got %d, want 32", m.NwDstPrefix())
	}
	if NewMatch().NwSrcPrefix() != 0 {
		t.Errorf("an all wildcard match has no nw_src prefix")
	}
	if !m.NwSrc().Equal(net.ParseIP("10.1.0.0")) {
		t.Errorf("NwSrc: got %s", m.NwSrc())
	}
}

func Test_MatchString(t *testing.T) {
	if got := NewMatch().String(); got != "any" {
		t.Errorf("got %q, want %q", got, "any")
	}

	m := NewMatch().WithInPort(3).WithDlType(0x0800).WithNwSrc(net.ParseIP("10.0.0.0"), 8).WithTpDst(22)
	want := "in_port=3,dl_type=0x0800,nw_src=10.0.0.0/8,tp_dst=22"
	if got := m.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func Test_MatchIsAll(t *testing.T) {
	if !NewMatch().IsAll() {
		t.Errorf("a new match selects every packet")
	}
	if NewMatch().WithDlVlan(10).IsAll() {
		t.Errorf("a dl_vlan match does not select every packet")
	}
	if !NewMatch().Wildcarded(WildcardDlSrc | WildcardDlDst) {
		t.Errorf("a new match wildcards both ethernet addresses")
	}
}
