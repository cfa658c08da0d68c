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
	"github.com/pkg/errors"
)

type elemDesc struct {
	Type  uint16
	Len   uint16
	Value uint16
	Pad   [2]uint8
}

type elem struct {
	d elemDesc
}

var (
	elemSpec   = HeaderSpec{Kind: "elem", Type: 1, MinLength: 8, Fixed: true}
	elemFamily = Family{
		Kind:    "elem",
		BadType: Code{Type: 2, Code: 0},
		BadLen:  Code{Type: 2, Code: 1},
	}
)

func newElem(v uint16) elem {
	return elem{d: elemDesc{Type: 1, Len: 8, Value: v}}
}

func (e elem) Length() int            { return 8 }
func (e elem) ByteLength() int        { return 8 }
func (e elem) Encode(b []byte) []byte { return Append(b, &e.d) }
func (e elem) Equal(o elem) bool      { return e.d == o.d }
func (e elem) Equivalent(o elem) bool {
	p, q := e.d, o.d
	p.Pad, q.Pad = [2]uint8{}, [2]uint8{}
	return p == q
}

func decodeElem(d *Decoder) (elem, error) {
	var e elem
	typ, _ := d.PeekUint16(0)
	length, _ := d.PeekUint16(2)
	if err := elemFamily.Check(elemSpec, typ, int(length)); err != nil {
		return e, err
	}
	if err := Unpack(d, &e.d); err != nil {
		return e, err
	}
	return e, nil
}

func elemHeader(d *Decoder) (uint32, int, error) {
	typ, err := d.PeekUint16(0)
	if err != nil {
		return 0, 0, err
	}
	length, err := d.PeekUint16(2)
	if err != nil {
		return 0, 0, err
	}
	return uint32(typ), int(length), nil
}

func newElemRegistry(skip bool) *Registry[elem] {
	f := elemFamily
	f.SkipUnknown = skip
	return NewRegistry[elem](f, 4, elemHeader, map[uint32]DecodeFunc[elem]{
		1: decodeElem,
	})
}

func Test_HeaderSpecValidate(t *testing.T) {
	action := HeaderSpec{Kind: "action", Type: 0, MinLength: 16, Fixed: true}
	setField := HeaderSpec{Kind: "action", Type: 25, MinLength: 8}

	tests := []struct {
		name   string
		spec   HeaderSpec
		typ    uint16
		length int
		want   string
	}{
		{
			name:   "valid fixed",
			spec:   action,
			typ:    0,
			length: 16,
		},
		{
			name:   "short",
			spec:   action,
			typ:    0,
			length: 15,
			want:   "invalid action length",
		},
		{
			name:   "fixed but long",
			spec:   action,
			typ:    0,
			length: 24,
			want:   "invalid action length",
		},
		{
			name:   "wrong type",
			spec:   action,
			typ:    1,
			length: 16,
			want:   "invalid action type",
		},
		{
			name:   "type is checked before length",
			spec:   action,
			typ:    1,
			length: 2,
			want:   "invalid action type",
		},
		{
			name:   "variable may be longer",
			spec:   setField,
			typ:    25,
			length: 24,
		},
		{
			name:   "variable still has a minimum",
			spec:   setField,
			typ:    25,
			length: 4,
			want:   "invalid action length",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.spec.Validate(test.typ, test.length)
			if test.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got no error", test.want)
			}
			if err.Error() != test.want {
				t.Errorf("got %q, want %q", err.Error(), test.want)
			}
		})
	}
}

func Test_HeaderSpecValidateMessage(t *testing.T) {
	barrier := HeaderSpec{Kind: "message", Type: 18, Version: 1, MinLength: 8, Fixed: true}

	if err := barrier.ValidateMessage(1, 18, 8); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := barrier.ValidateMessage(4, 18, 8); err == nil || err.Error() != "invalid version" {
		t.Errorf("got %v, want invalid version", err)
	}
	if err := barrier.ValidateMessage(4, 19, 8); err == nil || err.Error() != "invalid message type" {
		t.Errorf("got %v, want invalid message type", err)
	}
	if err := barrier.ValidateMessage(1, 18, 12); err == nil || err.Error() != "invalid message length" {
		t.Errorf("got %v, want invalid message length", err)
	}
}

func Test_FamilyReject(t *testing.T) {
	f := Family{
		Kind:       "message",
		BadType:    Code{1, 1},
		BadLen:     Code{1, 6},
		BadVersion: Code{1, 0},
	}

	tests := []struct {
		err  error
		want Code
	}{
		{Invalid("message", WhatType), Code{1, 1}},
		{Invalid("message", WhatLength), Code{1, 6}},
		{Invalid("", WhatVersion), Code{1, 0}},
		{Invalid("oxm", WhatClass), Code{1, 1}},
	}

	for _, test := range tests {
		err := f.Reject(test.err)
		if !IsError(err, test.want) {
			t.Errorf("%v: got %v, want %v", test.err, err, test.want)
		}
	}

	plain := errors.New("boom")
	if got := f.Reject(plain); got != plain {
		t.Errorf("non validation errors must pass through, got %v", got)
	}
}

func Test_RegistryDecodeList(t *testing.T) {
	var buf []byte
	buf = newElem(1).Encode(buf)
	buf = newElem(2).Encode(buf)

	l, err := newElemRegistry(false).DecodeList(NewDecoder(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := List[elem]{newElem(1), newElem(2)}
	if !l.Equal(want) {
		t.Errorf("got %+v, want %+v", l, want)
	}
	if l.Length() != 16 || l.ByteLength() != 16 {
		t.Errorf("unexpected lengths %d/%d", l.Length(), l.ByteLength())
	}
	if diff := cmp.Diff(buf, l.Encode(nil)); diff != "" {
		t.Errorf("re-encoding differs (-want +got):\n%s", diff)
	}
}

func Test_RegistryEmptyRange(t *testing.T) {
	l, err := newElemRegistry(false).DecodeList(NewDecoder(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("expected an empty list, got %d elements", len(l))
	}
}

func Test_RegistryUnknown(t *testing.T) {
	unknown := []byte{0xff, 0x00, 0x00, 0x08, 0, 0, 0, 0}

	_, err := newElemRegistry(false).Decode(NewDecoder(unknown))
	if !IsError(err, Code{2, 0}) {
		t.Errorf("got %v, want bad type", err)
	}

	buf := append(append([]byte{}, unknown...), newElem(7).Encode(nil)...)
	l, err := newElemRegistry(true).DecodeList(NewDecoder(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Equal(List[elem]{newElem(7)}) {
		t.Errorf("unknown element was not skipped: %+v", l)
	}
}

func Test_RegistryBadLength(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{
			name: "short header",
			buf:  []byte{0x00, 0x01},
		},
		{
			name: "declared past end",
			buf:  []byte{0x00, 0x01, 0x00, 0x10, 0, 0, 0, 0},
		},
		{
			name: "declared shorter than header",
			buf:  []byte{0x00, 0x01, 0x00, 0x02, 0, 0, 0, 0},
		},
		{
			name: "fixed element declared longer",
			buf:  []byte{0x00, 0x01, 0x00, 0x0a, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := newElemRegistry(true).Decode(NewDecoder(test.buf))
			if !IsError(err, Code{2, 1}) {
				t.Errorf("got %v, want bad length", err)
			}
		})
	}
}

func Test_RegistryUnknownShortLength(t *testing.T) {
	// unknown elements are only skipped when their length is sane
	buf := []byte{0xff, 0x00, 0x00, 0x03, 0, 0, 0, 0}

	_, err := newElemRegistry(true).Decode(NewDecoder(buf))
	e, ok := AsError(err)
	if !ok || e.Pair() != (Code{2, 1}) {
		t.Fatalf("got %v, want bad length", err)
	}
	if e.Msg != "invalid elem length" {
		t.Errorf("got message %q, want %q", e.Msg, "invalid elem length")
	}
}

func Test_Dispatcher(t *testing.T) {
	d := NewDispatcher[elem](elemFamily, map[uint32]DecodeFunc[elem]{
		1: decodeElem,
	})

	if _, ok := d.Lookup(1); !ok {
		t.Error("no decoder for tag 1")
	}
	if _, ok := d.Lookup(2); ok {
		t.Error("unexpected decoder for tag 2")
	}

	got, err := d.Dispatch(1, NewDecoder(newElem(7).Encode(nil)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(newElem(7)) {
		t.Errorf("got %+v, want %+v", got, newElem(7))
	}

	// the family skips unknown elements, a dispatcher still rejects them
	f := elemFamily
	f.SkipUnknown = true
	_, err = NewDispatcher[elem](f, nil).Dispatch(2, NewDecoder(newElem(7).Encode(nil)))
	if !IsError(err, Code{2, 0}) {
		t.Errorf("got %v, want bad type", err)
	}
}

func Test_ListPartialProgress(t *testing.T) {
	buf := newElem(1).Encode(nil)
	buf = append(buf, 0xff, 0x00, 0x00, 0x08, 0, 0, 0, 0)

	d := NewDecoder(buf)
	if _, err := newElemRegistry(false).DecodeList(d); err == nil {
		t.Fatal("expected an error")
	}
	if d.Offset() != 8 {
		t.Errorf("the first element was decoded, offset should be 8, got %d", d.Offset())
	}
}

func Test_EqualAndEquivalent(t *testing.T) {
	a := newElem(5)
	b := newElem(5)
	b.d.Pad = [2]uint8{0xde, 0xad}

	if !a.Equal(a) || !a.Equivalent(a) {
		t.Error("relations must be reflexive")
	}
	if a.Equal(b) {
		t.Error("padding differs, values must not be equal")
	}
	if !a.Equivalent(b) || !b.Equivalent(a) {
		t.Error("padding differs only, values must be equivalent")
	}

	l1 := List[elem]{a, newElem(6)}
	l2 := List[elem]{b, newElem(6)}
	if l1.Equal(l2) || !l1.Equivalent(l2) {
		t.Error("list relations must follow the element relations")
	}
	if l1.Equivalent(List[elem]{newElem(6), a}) {
		t.Error("lists are ordered")
	}
	if l1.Equal(l1[:1]) {
		t.Error("lists of different sizes must not be equal")
	}
}

func Test_CastAs(t *testing.T) {
	var v interface{} = newElem(3)

	e, err := Cast[elem](v)
	if err != nil || e.d.Value != 3 {
		t.Fatalf("Cast: got %+v, %v", e, err)
	}
	if _, err := Cast[testHeader](v); !errors.Is(err, ErrBadVariantAccess) {
		t.Errorf("Cast to the wrong type: got %v", err)
	}
	if p := As[elem](v); p == nil || p.d.Value != 3 {
		t.Errorf("As: got %v", p)
	}
	if p := As[testHeader](v); p != nil {
		t.Errorf("As to the wrong type must be nil, got %v", p)
	}
}
