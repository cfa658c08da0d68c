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
	"testing"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_MinRateEquivalent(t *testing.T) {
	tests := []struct {
		name       string
		a, b       uint16
		equivalent bool
	}{
		{"same rate", 500, 500, true},
		{"both above the maximum", 1001, 1002, true},
		{"maximum and above", 1000, 1001, false},
		{"below the maximum", 999, 1000, false},
		{"disabled and maximum", RateDisabled, 1000, false},
		{"disabled and above the maximum", RateDisabled, 1001, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, b := NewMinRate(test.a), NewMinRate(test.b)
			if got := a.Equivalent(b); got != test.equivalent {
				t.Errorf("Equivalent: got %v, want %v", got, test.equivalent)
			}
			if a.Equal(b) != (test.a == test.b) {
				t.Errorf("Equal must compare the rates exactly")
			}
		})
	}
}

func Test_PacketQueueRoundTrip(t *testing.T) {
	queues := PacketQueueList{
		NewPacketQueue(1, NewMinRate(100)),
		NewPacketQueue(2),
	}
	raw := queues.Encode(nil)
	if len(raw) != 8+16+8 {
		t.Fatalf("encoded %d bytes, want 32", len(raw))
	}

	got, err := DecodePacketQueues(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(queues) {
		t.Errorf("decoded queues differ from the encoded ones")
	}
	if got[0].QueueID() != 1 || len(got[0].Properties()) != 1 {
		t.Errorf("unexpected first queue %d with %d properties", got[0].QueueID(), len(got[0].Properties()))
	}
}

func Test_UnknownQueuePropertySkipped(t *testing.T) {
	raw := NewPacketQueue(7, NewMinRate(10)).Encode(nil)
	raw = append(raw, 0x00, 0x09, 0x00, 0x08, 0, 0, 0, 0)
	raw[5] = byte(len(raw))

	q, err := DecodePacketQueue(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	props := q.Properties()
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	if _, err := wire.Cast[MinRate](props[0]); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
