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
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_ValidateActionHeader(t *testing.T) {
	tests := []struct {
		name     string
		expected ActionType
		raw      []byte
		want     string
	}{
		{
			name:     "valid output",
			expected: ActionOutput,
			raw:      NewOutput(1, 0).Encode(nil),
		},
		{
			name:     "output one byte short",
			expected: ActionOutput,
			raw:      []byte{0x00, 0x00, 0x00, 0x07},
			want:     "invalid action length",
		},
		{
			name:     "type one past output",
			expected: ActionOutput,
			raw:      []byte{0x00, 0x01, 0x00, 0x08},
			want:     "invalid action type",
		},
		{
			name:     "fixed output longer than its size",
			expected: ActionOutput,
			raw:      []byte{0x00, 0x00, 0x00, 0x10},
			want:     "invalid action length",
		},
		{
			name:     "valid set_dl_src",
			expected: ActionSetDlSrc,
			raw:      NewSetDlSrc(testMAC).Encode(nil),
		},
		{
			name:     "set_dl_src of the short size",
			expected: ActionSetDlSrc,
			raw:      []byte{0x00, 0x04, 0x00, 0x08},
			want:     "invalid action length",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateActionHeader(test.expected, test.raw)
			if test.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != test.want {
				t.Errorf("got %v, want %q", err, test.want)
			}
		})
	}
}

func Test_DecodeActionErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want wire.Code
	}{
		{
			name: "unknown type",
			raw:  []byte{0xff, 0x00, 0x00, 0x08, 0, 0, 0, 0},
			want: CodeBadActionType,
		},
		{
			name: "enqueue with short length",
			raw:  []byte{0x00, 0x0b, 0x00, 0x08, 0, 1, 0, 0},
			want: CodeBadActionLen,
		},
		{
			name: "length past the end",
			raw:  []byte{0x00, 0x00, 0x00, 0x10, 0, 1, 0, 0},
			want: CodeBadActionLen,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeAction(wire.NewDecoder(test.raw))
			if !wire.IsError(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func Test_ActionListRoundTrip(t *testing.T) {
	list := ActionList{
		NewOutput(PortController, 128),
		NewSetVlanVid(100),
		NewSetVlanPcp(5),
		NewStripVlan(),
		NewSetDlSrc(testMAC),
		NewSetDlDst(net.HardwareAddr{0x02, 0, 0, 0, 0, 0x02}),
		NewSetNwSrc(net.ParseIP("10.0.0.1")),
		NewSetNwDst(net.ParseIP("10.0.0.2")),
		NewSetNwTos(0x28),
		NewSetTpSrc(1024),
		NewSetTpDst(80),
		NewEnqueue(1, 2),
	}

	raw := list.Encode(nil)
	if len(raw) != list.ByteLength() {
		t.Fatalf("encoded %d bytes, ByteLength is %d", len(raw), list.ByteLength())
	}

	got, err := DecodeActions(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(list) {
		t.Errorf("decoded list differs from the encoded one")
	}
	for i := range list {
		if got[i].Type() != list[i].Type() {
			t.Errorf("action %d: got %s, want %s", i, got[i].Type(), list[i].Type())
		}
	}
	if diff := cmp.Diff(raw, got.Encode(nil)); diff != "" {
		t.Errorf("re-encoding differs (-want +got):\n%s", diff)
	}
}

func Test_SharedLayoutActions(t *testing.T) {
	if NewSetTpSrc(80).Equal(NewSetTpDst(80)) {
		t.Errorf("set_tp_src and set_tp_dst must differ")
	}
	if NewSetDlSrc(testMAC).Equivalent(NewSetDlDst(testMAC)) {
		t.Errorf("set_dl_src and set_dl_dst must not be equivalent")
	}
}

func Test_ActionPaddingEquivalence(t *testing.T) {
	raw := NewStripVlan().Encode(nil)
	raw[7] = 0xaa

	a, err := DecodeAction(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Equal(NewStripVlan()) {
		t.Errorf("captured padding must make the actions unequal")
	}
	if !a.Equivalent(NewStripVlan()) {
		t.Errorf("padding must not affect equivalence")
	}
	if diff := cmp.Diff(raw, a.Encode(nil)); diff != "" {
		t.Errorf("padding must be re-encoded verbatim (-want +got):\n%s", diff)
	}
}

func Test_CreateActions(t *testing.T) {
	if _, err := CreateOutput(0, 0); err == nil {
		t.Errorf("port 0 must be rejected")
	}
	if _, err := CreateOutput(PortNone, 0); err == nil {
		t.Errorf("the none port must be rejected")
	}
	if _, err := CreateOutput(PortMax+1, 0); err == nil {
		t.Errorf("ports between max and in_port must be rejected")
	}
	if _, err := CreateOutput(PortFlood, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := CreateSetVlanVid(0x1000); err == nil {
		t.Errorf("vlan ids above 0xfff must be rejected")
	}
	if _, err := CreateSetVlanPcp(8); err == nil {
		t.Errorf("priorities above 7 must be rejected")
	}
	if _, err := CreateSetNwTos(0x29); err == nil {
		t.Errorf("ecn bits must be rejected")
	}
	if _, err := CreateEnqueue(PortFlood, 1); err == nil {
		t.Errorf("enqueue on flood must be rejected")
	}
	if _, err := CreateEnqueue(1, QueueAll); err == nil {
		t.Errorf("enqueue on every queue must be rejected")
	}
	if _, err := CreateEnqueue(PortInPort, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_CastAction(t *testing.T) {
	var a Action = NewEnqueue(3, 9)

	q, err := wire.Cast[Enqueue](a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Port() != 3 || q.QueueID() != 9 {
		t.Errorf("got port %d queue %d, want 3 and 9", q.Port(), q.QueueID())
	}
	if _, err := wire.Cast[Output](a); !errors.Is(err, wire.ErrBadVariantAccess) {
		t.Errorf("got %v, want ErrBadVariantAccess", err)
	}
	if wire.As[Output](a) != nil {
		t.Errorf("As must return nil for another alternative")
	}
}

func Test_NwAddrAction(t *testing.T) {
	a := NewSetNwDst(net.ParseIP("192.168.0.1"))
	if !a.Addr().Equal(net.ParseIP("192.168.0.1")) {
		t.Errorf("got %s, want 192.168.0.1", a.Addr())
	}
	b := NewSetDlSrc(testMAC)
	if diff := cmp.Diff(testMAC, b.Addr()); diff != "" {
		t.Errorf("unexpected address (-want +got):\n%s", diff)
	}
}
