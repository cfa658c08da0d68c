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
	"errors"
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
			raw:      []byte{0x00, 0x00, 0x00, 0x0f},
			want:     "invalid action length",
		},
		{
			name:     "type one past output",
			expected: ActionOutput,
			raw:      []byte{0x00, 0x01, 0x00, 0x10},
			want:     "invalid action type",
		},
		{
			name:     "fixed action longer than its size",
			expected: ActionPopVlan,
			raw:      []byte{0x00, 0x12, 0x00, 0x10},
			want:     "invalid action length",
		},
		{
			name:     "valid set_field",
			expected: ActionSetField,
			raw:      NewSetField(NewInPort(3)).Encode(nil),
		},
		{
			name:     "set_field with unknown oxm field",
			expected: ActionSetField,
			raw:      []byte{0x00, 0x19, 0x00, 0x10, 0x80, 0x00, 0x50, 0x04},
			want:     "invalid oxm field",
		},
		{
			name:     "set_field length disagrees with oxm",
			expected: ActionSetField,
			raw:      []byte{0x00, 0x19, 0x00, 0x18, 0x80, 0x00, 0x00, 0x04},
			want:     "invalid set_field length",
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
			name: "output with short length",
			raw:  []byte{0x00, 0x00, 0x00, 0x08, 0, 0, 0, 1},
			want: CodeBadActionLen,
		},
		{
			name: "length past the end",
			raw:  []byte{0x00, 0x00, 0x00, 0x10, 0, 0, 0, 1},
			want: CodeBadActionLen,
		},
		{
			name: "set_field with unknown oxm field",
			raw:  []byte{0x00, 0x19, 0x00, 0x10, 0x80, 0x00, 0x50, 0x04, 0, 0, 0, 0, 0, 0, 0, 0},
			want: wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadSetType},
		},
		{
			name: "set_field length disagrees with oxm",
			raw: []byte{
				0x00, 0x19, 0x00, 0x18, 0x80, 0x00, 0x00, 0x04,
				0, 0, 0, 1, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			want: wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadSetLen},
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
		NewOutput(PortController, ControllerNoBuffer),
		NewCopyTTLOut(),
		NewCopyTTLIn(),
		NewSetMplsTTL(64),
		NewDecMplsTTL(),
		NewPushVlan(0x8100),
		NewPopVlan(),
		NewPushMpls(0x8847),
		NewPopMpls(0x0800),
		NewSetQueue(3),
		NewGroup(7),
		NewSetNwTTL(32),
		NewDecNwTTL(),
		NewSetField(NewVlanVid(100)),
		NewPushPbb(0x88e7),
		NewPopPbb(),
	}

	raw := list.Encode(nil)
	if len(raw) != list.ByteLength() {
		t.Fatalf("encoded %d bytes, ByteLength is %d", len(raw), list.ByteLength())
	}

	d := wire.NewDecoder(raw)
	got, err := DecodeActions(d)
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

func Test_ActionPaddingEquivalence(t *testing.T) {
	raw := NewPopVlan().Encode(nil)
	raw[7] = 0xaa

	a, err := DecodeAction(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Equal(NewPopVlan()) {
		t.Errorf("captured padding must make the actions unequal")
	}
	if !a.Equivalent(NewPopVlan()) {
		t.Errorf("padding must not affect equivalence")
	}
	if diff := cmp.Diff(raw, a.Encode(nil)); diff != "" {
		t.Errorf("padding must be re-encoded verbatim (-want +got):\n%s", diff)
	}
}

func Test_SetFieldPadding(t *testing.T) {
	a := NewSetField(NewEthType(0x86dd))
	if a.Length() != 10 || a.ByteLength() != 16 {
		t.Fatalf("got length %d and byte length %d, want 10 and 16", a.Length(), a.ByteLength())
	}

	raw := a.Encode(nil)
	want := []byte{
		0x00, 0x19, 0x00, 0x10,
		0x80, 0x00, 0x0a, 0x02, 0x86, 0xdd,
		0, 0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}

	raw[15] = 1
	got, err := DecodeAction(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Equal(a) || !got.Equivalent(a) {
		t.Errorf("padded set_field: want unequal but equivalent")
	}
}

func Test_CreateActions(t *testing.T) {
	if _, err := CreateOutput(0, 0); err == nil {
		t.Errorf("port 0 must be rejected")
	}
	if _, err := CreateOutput(PortAny, 0); err == nil {
		t.Errorf("the any port must be rejected")
	}
	if _, err := CreateOutput(1, ControllerMaxLen+1); err == nil {
		t.Errorf("max_len above the controller maximum must be rejected")
	}
	if _, err := CreateOutput(PortController, ControllerNoBuffer); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := CreatePushVlan(0x0800); err == nil {
		t.Errorf("push_vlan must reject a non vlan ethertype")
	}
	if _, err := CreatePushVlan(0x88a8); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := CreateSetField(NewMetadataMasked(1, 1)); err == nil {
		t.Errorf("set_field must reject masked fields")
	}
	if _, err := CreateGroup(GroupAny); err == nil {
		t.Errorf("group must reject reserved group ids")
	}
}

func Test_CastAction(t *testing.T) {
	var a Action = NewSetQueue(9)

	q, err := wire.Cast[SetQueue](a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.QueueID() != 9 {
		t.Errorf("got queue %d, want 9", q.QueueID())
	}
	if _, err := wire.Cast[Output](a); !errors.Is(err, wire.ErrBadVariantAccess) {
		t.Errorf("got %v, want ErrBadVariantAccess", err)
	}
	if wire.As[Output](a) != nil {
		t.Errorf("As must return nil for another alternative")
	}
}
