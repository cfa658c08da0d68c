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

type MeterBandType uint16

const (
	MeterBandTypeDrop         MeterBandType = 1
	MeterBandTypeDscpRemark   MeterBandType = 2
	MeterBandTypeExperimenter MeterBandType = 0xffff
)

var meterBandSpecs = map[MeterBandType]wire.HeaderSpec{
	MeterBandTypeDrop:       tlvSpec(meterBandFamily.Kind, uint16(MeterBandTypeDrop), 16, true),
	MeterBandTypeDscpRemark: tlvSpec(meterBandFamily.Kind, uint16(MeterBandTypeDscpRemark), 16, true),
}

// ValidateMeterBandHeader checks the header of the meter band encoded in b
// against the expected band type.
func ValidateMeterBandHeader(expected MeterBandType, b []byte) error {
	if len(b) < tlvHeaderLen {
		return wire.Invalid(meterBandFamily.Kind, wire.WhatLength)
	}
	spec, ok := meterBandSpecs[expected]
	if !ok {
		return wire.Invalid(meterBandFamily.Kind, wire.WhatType)
	}
	return spec.Validate(binary.BigEndian.Uint16(b), int(binary.BigEndian.Uint16(b[2:])))
}

// MeterBand is a rate band of a meter.
type MeterBand interface {
	Type() MeterBandType
	Rate() uint32
	BurstSize() uint32
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other MeterBand) bool
	Equivalent(other MeterBand) bool
	isMeterBand()
}

type MeterBandList = wire.List[MeterBand]

var meterBands = wire.NewRegistry[MeterBand](meterBandFamily, tlvHeaderLen, tlvHeader, map[uint32]wire.DecodeFunc[MeterBand]{
	uint32(MeterBandTypeDrop):       decodeMeterBandDrop,
	uint32(MeterBandTypeDscpRemark): decodeMeterBandDscpRemark,
})

func DecodeMeterBands(d *wire.Decoder) (MeterBandList, error) {
	return meterBands.DecodeList(d)
}

type ofpMeterBandDrop struct {
	Type      uint16
	Len       uint16
	Rate      uint32
	BurstSize uint32
	Pad       [4]uint8
}

type MeterBandDrop struct {
	d ofpMeterBandDrop
}

func NewMeterBandDrop(rate, burstSize uint32) MeterBandDrop {
	return MeterBandDrop{d: ofpMeterBandDrop{
		Type:      uint16(MeterBandTypeDrop),
		Len:       16,
		Rate:      rate,
		BurstSize: burstSize,
	}}
}

func (b MeterBandDrop) Type() MeterBandType      { return MeterBandTypeDrop }
func (b MeterBandDrop) Rate() uint32             { return b.d.Rate }
func (b MeterBandDrop) BurstSize() uint32        { return b.d.BurstSize }
func (b MeterBandDrop) Length() int              { return 16 }
func (b MeterBandDrop) ByteLength() int          { return 16 }
func (b MeterBandDrop) Encode(buf []byte) []byte { return wire.Append(buf, &b.d) }

func (b MeterBandDrop) Equal(o MeterBand) bool {
	x, ok := o.(MeterBandDrop)
	return ok && b.d == x.d
}

func (b MeterBandDrop) Equivalent(o MeterBand) bool {
	x, ok := o.(MeterBandDrop)
	return ok && b.d.Rate == x.d.Rate && b.d.BurstSize == x.d.BurstSize
}

func (MeterBandDrop) isMeterBand() {}

func decodeMeterBandDrop(d *wire.Decoder) (MeterBand, error) {
	var b MeterBandDrop
	if err := decodeFixed(d, meterBandFamily, meterBandSpecs[MeterBandTypeDrop], &b.d); err != nil {
		return nil, err
	}
	return b, nil
}

type ofpMeterBandDscpRemark struct {
	Type      uint16
	Len       uint16
	Rate      uint32
	BurstSize uint32
	PrecLevel uint8
	Pad       [3]uint8
}

// MeterBandDscpRemark lowers the drop precedence of the DSCP field.
type MeterBandDscpRemark struct {
	d ofpMeterBandDscpRemark
}

func NewMeterBandDscpRemark(rate, burstSize uint32, precLevel uint8) MeterBandDscpRemark {
	return MeterBandDscpRemark{d: ofpMeterBandDscpRemark{
		Type:      uint16(MeterBandTypeDscpRemark),
		Len:       16,
		Rate:      rate,
		BurstSize: burstSize,
		PrecLevel: precLevel,
	}}
}

func (b MeterBandDscpRemark) Type() MeterBandType      { return MeterBandTypeDscpRemark }
func (b MeterBandDscpRemark) Rate() uint32             { return b.d.Rate }
func (b MeterBandDscpRemark) BurstSize() uint32        { return b.d.BurstSize }
func (b MeterBandDscpRemark) PrecLevel() uint8         { return b.d.PrecLevel }
func (b MeterBandDscpRemark) Length() int              { return 16 }
func (b MeterBandDscpRemark) ByteLength() int          { return 16 }
func (b MeterBandDscpRemark) Encode(buf []byte) []byte { return wire.Append(buf, &b.d) }

func (b MeterBandDscpRemark) Equal(o MeterBand) bool {
	x, ok := o.(MeterBandDscpRemark)
	return ok && b.d == x.d
}

func (b MeterBandDscpRemark) Equivalent(o MeterBand) bool {
	x, ok := o.(MeterBandDscpRemark)
	if !ok {
		return false
	}
	p, q := b.d, x.d
	p.Pad, q.Pad = [3]uint8{}, [3]uint8{}
	return p == q
}

func (MeterBandDscpRemark) isMeterBand() {}

func decodeMeterBandDscpRemark(d *wire.Decoder) (MeterBand, error) {
	var b MeterBandDscpRemark
	if err := decodeFixed(d, meterBandFamily, meterBandSpecs[MeterBandTypeDscpRemark], &b.d); err != nil {
		return nil, err
	}
	return b, nil
}
