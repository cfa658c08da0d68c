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
	"testing"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_ValidateTableFeaturePropertyHeader(t *testing.T) {
	actions := NewTableFeatureActions(TablePropApplyActions, ActionOutput, ActionGroup).Encode(nil)
	nextTables := NewTableFeatureNextTables(TablePropNextTables, 1, 2, 3).Encode(nil)
	// an instructions property declaring half an id
	halfID := []byte{0x00, 0x00, 0x00, 0x06, 0x00, 0x01, 0x00, 0x00}

	tests := []struct {
		name     string
		expected TableFeaturePropType
		raw      []byte
		want     string
	}{
		{
			name:     "valid actions",
			expected: TablePropApplyActions,
			raw:      actions,
		},
		{
			name:     "valid next tables",
			expected: TablePropNextTables,
			raw:      nextTables,
		},
		{
			name:     "shorter than a header",
			expected: TablePropApplyActions,
			raw:      actions[:3],
			want:     "invalid table_feature_property length",
		},
		{
			name:     "type mismatch",
			expected: TablePropWriteActions,
			raw:      actions,
			want:     "invalid table_feature_property type",
		},
		{
			name:     "unassigned type",
			expected: TableFeaturePropType(9),
			raw:      []byte{0x00, 0x09, 0x00, 0x04, 0, 0, 0, 0},
			want:     "invalid table_feature_property type",
		},
		{
			name:     "declared shorter than a header",
			expected: TablePropApplyActions,
			raw:      withLength(actions, 2),
			want:     "invalid table_feature_property length",
		},
		{
			name:     "partial id",
			expected: TablePropInstructions,
			raw:      halfID,
			want:     "invalid table_feature_property length",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateTableFeaturePropertyHeader(test.expected, test.raw)
			if test.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if _, ok := err.(*wire.ValidationError); !ok {
				t.Fatalf("got %T (%v), want *wire.ValidationError", err, err)
			}
			if err.Error() != test.want {
				t.Errorf("got %q, want %q", err.Error(), test.want)
			}
		})
	}
}

func Test_DecodeTableFeatureProperties(t *testing.T) {
	nextTables := NewTableFeatureNextTables(TablePropNextTables, 1, 2, 3)
	unknown := []byte{0x00, 0x09, 0x00, 0x06, 0xaa, 0xbb, 0x00, 0x00}

	raw := append(append([]byte{}, unknown...), nextTables.Encode(nil)...)
	got, err := DecodeTableFeatureProperties(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(nextTables) {
		t.Errorf("got %#v, want only %#v", got, nextTables)
	}
}

func Test_DecodeTableFeaturePropertiesErrors(t *testing.T) {
	instructions := NewTableFeatureInstructions(TablePropInstructions, InstructionGotoTable).Encode(nil)

	tests := []struct {
		name string
		raw  []byte
		want wire.Code
		msg  string
	}{
		{
			name: "unknown property declared shorter than a header",
			raw:  []byte{0x00, 0x09, 0x00, 0x02, 0, 0, 0, 0},
			want: CodeBadLen,
			msg:  "invalid table_feature_property length",
		},
		{
			name: "known property declared shorter than a header",
			raw:  withLength(instructions, 3),
			want: CodeBadLen,
			msg:  "invalid table_feature_property length",
		},
		{
			name: "partial instruction id",
			raw:  withLength(instructions, 6),
			want: CodeBadLen,
			msg:  "invalid table_feature_property length",
		},
		{
			name: "declared past the end",
			raw:  withLength(instructions, 16),
			want: CodeBadLen,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeTableFeatureProperties(wire.NewDecoder(test.raw))
			if !wire.IsError(err, test.want) {
				t.Fatalf("got %v, want %v", err, test.want)
			}
			if test.msg == "" {
				return
			}
			if e, _ := wire.AsError(err); e.Msg != test.msg {
				t.Errorf("got message %q, want %q", e.Msg, test.msg)
			}
		})
	}
}
