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
	"encoding/binary"

	"github.com/k-vswitch/ofproto/wire"
)

type HelloElementType uint16

const HelloElementVersionBitmap HelloElementType = 1

var versionBitmapSpec = tlvSpec(helloElementFamily.Kind, uint16(HelloElementVersionBitmap), tlvHeaderLen, false)

type HelloElement interface {
	Type() HelloElementType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other HelloElement) bool
	Equivalent(other HelloElement) bool
	isHelloElement()
}

type HelloElementList = wire.List[HelloElement]

var helloElements = wire.NewRegistry[HelloElement](helloElementFamily, tlvHeaderLen, tlvHeaderAligned, map[uint32]wire.DecodeFunc[HelloElement]{
	uint32(HelloElementVersionBitmap): decodeVersionBitmap,
})

func DecodeHelloElements(d *wire.Decoder) (HelloElementList, error) {
	return helloElements.DecodeList(d)
}

// VersionBitmap advertises every protocol version a peer supports. Bit n of
// the bitmap stands for wire version n.
type VersionBitmap struct {
	bitmaps []uint32
	pad     []byte
}

func NewVersionBitmap(versions ...uint8) VersionBitmap {
	var bitmaps []uint32
	for _, v := range versions {
		i := int(v) / 32
		for len(bitmaps) <= i {
			bitmaps = append(bitmaps, 0)
		}
		bitmaps[i] |= 1 << (v % 32)
	}
	return VersionBitmap{bitmaps: bitmaps}
}

func (v VersionBitmap) Bitmaps() []uint32 {
	return append([]uint32{}, v.bitmaps...)
}

func (v VersionBitmap) Supports(version uint8) bool {
	i := int(version) / 32
	return i < len(v.bitmaps) && v.bitmaps[i]&(1<<(version%32)) != 0
}

// Versions lists the advertised versions in increasing order.
func (v VersionBitmap) Versions() []uint8 {
	var versions []uint8
	for i := 0; i < len(v.bitmaps)*32 && i < 256; i++ {
		if v.Supports(uint8(i)) {
			versions = append(versions, uint8(i))
		}
	}
	return versions
}

// Highest returns the highest advertised version, or false if there is none.
func (v VersionBitmap) Highest() (uint8, bool) {
	versions := v.Versions()
	if len(versions) == 0 {
		return 0, false
	}
	return versions[len(versions)-1], true
}

func (v VersionBitmap) Type() HelloElementType { return HelloElementVersionBitmap }
func (v VersionBitmap) Length() int            { return tlvHeaderLen + 4*len(v.bitmaps) }
func (v VersionBitmap) ByteLength() int        { return wire.Align8(v.Length()) }

func (v VersionBitmap) Encode(b []byte) []byte {
	b = wire.Append(b, &ofpTLVHeader{Type: uint16(HelloElementVersionBitmap), Len: uint16(v.Length())})
	for _, bm := range v.bitmaps {
		b = binary.BigEndian.AppendUint32(b, bm)
	}
	return append(b, padding(v.pad, v.Length())...)
}

func (v VersionBitmap) Equal(o HelloElement) bool {
	x, ok := o.(VersionBitmap)
	return ok && v.Equivalent(x) && padEqual(v.pad, x.pad, v.Length())
}

func (v VersionBitmap) Equivalent(o HelloElement) bool {
	x, ok := o.(VersionBitmap)
	if !ok || len(v.bitmaps) != len(x.bitmaps) {
		return false
	}
	for i := range v.bitmaps {
		if v.bitmaps[i] != x.bitmaps[i] {
			return false
		}
	}
	return true
}

func (VersionBitmap) isHelloElement() {}

func decodeVersionBitmap(d *wire.Decoder) (HelloElement, error) {
	body, pad, err := openTLV(d, helloElementFamily, versionBitmapSpec, true)
	if err != nil {
		return nil, err
	}
	if err := body.Skip(tlvHeaderLen); err != nil {
		return nil, helloElementFamily.Truncated(tlvHeaderLen, body.Len())
	}
	if body.Len()%4 != 0 {
		return nil, helloElementFamily.Reject(wire.Invalid(helloElementFamily.Kind, wire.WhatLength))
	}
	v := VersionBitmap{bitmaps: make([]uint32, 0, body.Len()/4), pad: pad}
	for body.Len() > 0 {
		bm, err := body.Next(4)
		if err != nil {
			return nil, helloElementFamily.Truncated(4, body.Len())
		}
		v.bitmaps = append(v.bitmaps, binary.BigEndian.Uint32(bm))
	}
	return v, nil
}
