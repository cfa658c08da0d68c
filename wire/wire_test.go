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

package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testHeader struct {
	Version uint8
	Type    uint8
	Length  uint16
	Xid     uint32
}

type testPadded struct {
	Type  uint16
	Len   uint16
	Port  uint32
	Max   uint16
	Pad   [6]uint8
	Name  [4]uint8
	Count uint64
}

func Test_Align8(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{20, 24},
		{64, 64},
	}

	for _, test := range tests {
		if got := Align8(test.in); got != test.want {
			t.Errorf("Align8(%d): got %d, want %d", test.in, got, test.want)
		}
	}
}

func Test_AppendUnpack(t *testing.T) {
	h := testHeader{Version: 0x01, Type: 0x12, Length: 8, Xid: 0x12345678}
	buf := Append([]byte{0xaa}, &h)

	want := []byte{0xaa, 0x01, 0x12, 0x00, 0x08, 0x12, 0x34, 0x56, 0x78}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}

	d := NewDecoder(buf[1:])
	var got testHeader
	if err := Unpack(d, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
	if d.Len() != 0 {
		t.Errorf("expected decoder to be exhausted, %d bytes left", d.Len())
	}
}

func Test_AppendKeepsByteArrays(t *testing.T) {
	p := testPadded{
		Type:  0x0102,
		Len:   32,
		Port:  0x0a0b0c0d,
		Max:   0xffe5,
		Pad:   [6]uint8{1, 2, 3, 4, 5, 6},
		Name:  [4]uint8{'e', 't', 'h', '0'},
		Count: 0x0102030405060708,
	}

	buf := Append(nil, &p)
	want := []byte{
		0x01, 0x02, 0x00, 0x20, 0x0a, 0x0b, 0x0c, 0x0d,
		0xff, 0xe5, 1, 2, 3, 4, 5, 6,
		'e', 't', 'h', '0',
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
	}

	var got testPadded
	if err := Unpack(NewDecoder(buf), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}
}

func Test_Sizeof(t *testing.T) {
	if n := Sizeof(&testHeader{}); n != 8 {
		t.Errorf("header: got %d, want 8", n)
	}
	if n := Sizeof(&testPadded{}); n != 28 {
		t.Errorf("padded: got %d, want 28", n)
	}
}

func Test_UnpackTruncated(t *testing.T) {
	var h testHeader
	err := Unpack(NewDecoder([]byte{1, 2, 3}), &h)
	if err != ErrTruncated {
		t.Errorf("got %v, want ErrTruncated", err)
	}
}

func Test_Decoder(t *testing.T) {
	d := NewDecoder([]byte{0x00, 0x01, 0x00, 0x10, 0xde, 0xad, 0xbe, 0xef})

	v16, err := d.PeekUint16(2)
	if err != nil || v16 != 0x10 {
		t.Fatalf("PeekUint16: got %#x, %v", v16, err)
	}
	v32, err := d.PeekUint32(4)
	if err != nil || v32 != 0xdeadbeef {
		t.Fatalf("PeekUint32: got %#x, %v", v32, err)
	}
	if d.Offset() != 0 {
		t.Fatalf("peeks must not consume, offset is %d", d.Offset())
	}

	sub, err := d.Sub(4)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if sub.Len() != 4 || d.Len() != 4 {
		t.Errorf("Sub: got sub len %d and parent len %d", sub.Len(), d.Len())
	}
	if _, err := sub.Next(5); err != ErrTruncated {
		t.Errorf("sub decoder must stop at its own end, got %v", err)
	}

	rest := d.Rest()
	if diff := cmp.Diff([]byte{0xde, 0xad, 0xbe, 0xef}, rest); diff != "" {
		t.Errorf("Rest (-want +got):\n%s", diff)
	}
	if _, err := d.PeekUint8(0); err != ErrTruncated {
		t.Errorf("expected truncated error on an exhausted decoder, got %v", err)
	}
}

func Test_TruncateName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		capacity int
		want     string
	}{
		{
			name:     "fits",
			in:       "eth0",
			capacity: 16,
			want:     "eth0",
		},
		{
			name:     "exactly capacity minus one",
			in:       "123456789012345",
			capacity: 16,
			want:     "123456789012345",
		},
		{
			name:     "29 characters into 16 bytes",
			in:       "a-very-long-table-name-abcdef",
			capacity: 16,
			want:     "a-very-long-tab",
		},
		{
			name:     "zero capacity",
			in:       "x",
			capacity: 0,
			want:     "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := TruncateName(test.in, test.capacity)
			if got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func Test_PutName(t *testing.T) {
	var field [16]uint8
	for i := range field {
		field[i] = 0xff
	}

	PutName(field[:], "a-very-long-table-name-abcdef")
	if got := Name(field[:]); got != "a-very-long-tab" {
		t.Errorf("got %q", got)
	}
	if field[15] != 0 {
		t.Errorf("last byte must be the terminator, got %#x", field[15])
	}
}

func Test_SaturatedEqual(t *testing.T) {
	tests := []struct {
		a, b uint16
		want bool
	}{
		{1000, 1000, true},
		{1000, 1001, false},
		{1001, 1002, true},
		{999, 1000, false},
		{0xffff, 1001, true},
		{10, 10, true},
	}

	for _, test := range tests {
		if got := SaturatedEqual(test.a, test.b, 1000); got != test.want {
			t.Errorf("SaturatedEqual(%d, %d): got %v, want %v", test.a, test.b, got, test.want)
		}
		if got := SaturatedEqual(test.b, test.a, 1000); got != test.want {
			t.Errorf("SaturatedEqual(%d, %d) is not symmetric", test.b, test.a)
		}
	}
}
