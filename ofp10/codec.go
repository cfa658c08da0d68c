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
	"github.com/k-vswitch/ofproto/wire"
)

// tlvHeaderLen is the size of the type and length pair that starts every
// action and queue property.
const tlvHeaderLen = 4

type ofpTLVHeader struct {
	Type uint16
	Len  uint16
}

// tlvHeader reports the declared length, which includes any padding.
func tlvHeader(d *wire.Decoder) (uint32, int, error) {
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

func tlvSpec(kind string, typ uint16, length int, fixed bool) wire.HeaderSpec {
	return wire.HeaderSpec{Kind: kind, Type: typ, MinLength: length, Fixed: fixed}
}

// decodeFixed validates the element header at d against spec, consumes the
// element and unpacks it into desc.
func decodeFixed(d *wire.Decoder, f wire.Family, spec wire.HeaderSpec, desc interface{}) error {
	typ, length, err := tlvHeader(d)
	if err != nil {
		return f.Truncated(tlvHeaderLen, d.Len())
	}
	if err := f.Check(spec, uint16(typ), length); err != nil {
		return err
	}
	body, err := d.Sub(length)
	if err != nil {
		return f.Truncated(length, d.Len())
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
