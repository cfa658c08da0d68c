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
	"bytes"

	"github.com/k-vswitch/ofproto/wire"
)

// tlvHeaderLen is the size of the type and length pair that starts every
// action, instruction, meter band, queue property, hello element and table
// feature property.
const tlvHeaderLen = 4

func peekTLV(d *wire.Decoder) (uint16, int, error) {
	typ, err := d.PeekUint16(0)
	if err != nil {
		return 0, 0, err
	}
	length, err := d.PeekUint16(2)
	if err != nil {
		return 0, 0, err
	}
	return typ, int(length), nil
}

// tlvHeader reports the declared length, which includes any padding.
func tlvHeader(d *wire.Decoder) (uint32, int, error) {
	typ, length, err := peekTLV(d)
	return uint32(typ), length, err
}

// tlvHeaderAligned reports the declared length rounded up to 8, for the
// families whose length field excludes the trailing padding. A length
// shorter than the header is reported as is.
func tlvHeaderAligned(d *wire.Decoder) (uint32, int, error) {
	typ, length, err := peekTLV(d)
	if err != nil || length < tlvHeaderLen {
		return uint32(typ), length, err
	}
	return uint32(typ), wire.Align8(length), nil
}

func tlvSpec(kind string, typ uint16, length int, fixed bool) wire.HeaderSpec {
	return wire.HeaderSpec{Kind: kind, Type: typ, MinLength: length, Fixed: fixed}
}

// openTLV validates the element header at d against spec, consumes the
// element and returns a decoder over its declared bytes. When aligned is set
// the declared length excludes padding; the padding is consumed too and
// returned verbatim.
func openTLV(d *wire.Decoder, f wire.Family, spec wire.HeaderSpec, aligned bool) (*wire.Decoder, []byte, error) {
	typ, length, err := peekTLV(d)
	if err != nil {
		return nil, nil, f.Truncated(tlvHeaderLen, d.Len())
	}
	if err := f.Check(spec, typ, length); err != nil {
		return nil, nil, err
	}
	n := length
	if aligned {
		n = wire.Align8(length)
	}
	b, err := d.Next(n)
	if err != nil {
		return nil, nil, f.Truncated(n, d.Len())
	}
	return wire.NewDecoder(b[:length]), wire.CloneBytes(b[length:]), nil
}

// decodeFixed decodes a fixed size element into desc.
func decodeFixed(d *wire.Decoder, f wire.Family, spec wire.HeaderSpec, desc interface{}) error {
	body, _, err := openTLV(d, f, spec, false)
	if err != nil {
		return err
	}
	return wire.Unpack(body, desc)
}

// decodeStruct decodes a structure that has no header of its own.
func decodeStruct(d *wire.Decoder, desc interface{}) error {
	if err := wire.Unpack(d, desc); err != nil {
		return structFamily.Truncated(wire.Sizeof(desc), d.Len())
	}
	return nil
}

// padding returns the alignment bytes an element of the given length is
// followed by: the captured ones when they fit, zeros otherwise.
func padding(captured []byte, length int) []byte {
	n := wire.Align8(length) - length
	if len(captured) == n {
		return captured
	}
	return make([]byte, n)
}

func padEqual(a, b []byte, length int) bool {
	return bytes.Equal(padding(a, length), padding(b, length))
}

// openRecord consumes a structure without a type field whose 16-bit length
// sits at offset off, and returns a decoder over its declared bytes.
func openRecord(d *wire.Decoder, kind string, off, minLen int) (*wire.Decoder, error) {
	length, err := d.PeekUint16(off)
	if err != nil {
		return nil, structFamily.Truncated(minLen, d.Len())
	}
	if int(length) < minLen {
		return nil, structFamily.Reject(wire.Invalid(kind, wire.WhatLength))
	}
	body, err := d.Sub(int(length))
	if err != nil {
		return nil, structFamily.Truncated(int(length), d.Len())
	}
	return body, nil
}
