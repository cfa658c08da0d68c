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
	"github.com/k-vswitch/ofproto/wire"
)

type QueuePropertyType uint16

const (
	QueuePropertyMinRate      QueuePropertyType = 1
	QueuePropertyMaxRate      QueuePropertyType = 2
	QueuePropertyExperimenter QueuePropertyType = 0xffff
)

// RateDisabled marks a queue rate that is not configured. Rates are in
// tenths of a percent, so anything above 1000 means disabled.
const RateDisabled uint16 = 0xffff

const maxRate uint16 = 1000

var queuePropertySpecs = map[QueuePropertyType]wire.HeaderSpec{
	QueuePropertyMinRate: tlvSpec(queuePropertyFamily.Kind, uint16(QueuePropertyMinRate), 16, true),
	QueuePropertyMaxRate: tlvSpec(queuePropertyFamily.Kind, uint16(QueuePropertyMaxRate), 16, true),
}

type QueueProperty interface {
	Type() QueuePropertyType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other QueueProperty) bool
	Equivalent(other QueueProperty) bool
	isQueueProperty()
}

type QueuePropertyList = wire.List[QueueProperty]

var queueProperties = wire.NewRegistry[QueueProperty](queuePropertyFamily, tlvHeaderLen, tlvHeader, map[uint32]wire.DecodeFunc[QueueProperty]{
	uint32(QueuePropertyMinRate): decodeQueueRate(QueuePropertyMinRate, func(d ofpQueuePropRate) QueueProperty {
		return MinRate{d}
	}),
	uint32(QueuePropertyMaxRate): decodeQueueRate(QueuePropertyMaxRate, func(d ofpQueuePropRate) QueueProperty {
		return MaxRate{d}
	}),
})

// DecodeQueueProperties decodes queue properties until d is exhausted,
// skipping unknown ones.
func DecodeQueueProperties(d *wire.Decoder) (QueuePropertyList, error) {
	return queueProperties.DecodeList(d)
}

type ofpQueuePropRate struct {
	Property uint16
	Len      uint16
	Pad      [4]uint8
	Rate     uint16
	Pad2     [6]uint8
}

func (d ofpQueuePropRate) equivalent(o ofpQueuePropRate) bool {
	return d.Property == o.Property && wire.SaturatedEqual(d.Rate, o.Rate, maxRate)
}

func newQueuePropRate(t QueuePropertyType, rate uint16) ofpQueuePropRate {
	return ofpQueuePropRate{Property: uint16(t), Len: 16, Rate: rate}
}

func decodeQueueRate(t QueuePropertyType, wrap func(ofpQueuePropRate) QueueProperty) wire.DecodeFunc[QueueProperty] {
	spec := queuePropertySpecs[t]
	return func(d *wire.Decoder) (QueueProperty, error) {
		var desc ofpQueuePropRate
		if err := decodeFixed(d, queuePropertyFamily, spec, &desc); err != nil {
			return nil, err
		}
		return wrap(desc), nil
	}
}

// MinRate is the guaranteed rate of a queue in tenths of a percent.
type MinRate struct {
	d ofpQueuePropRate
}

func NewMinRate(rate uint16) MinRate {
	return MinRate{d: newQueuePropRate(QueuePropertyMinRate, rate)}
}

func (p MinRate) Rate() uint16            { return p.d.Rate }
func (p MinRate) Type() QueuePropertyType { return QueuePropertyMinRate }
func (p MinRate) Length() int             { return 16 }
func (p MinRate) ByteLength() int         { return 16 }
func (p MinRate) Encode(b []byte) []byte  { return wire.Append(b, &p.d) }
func (MinRate) isQueueProperty()          {}

func (p MinRate) Equal(o QueueProperty) bool {
	x, ok := o.(MinRate)
	return ok && p.d == x.d
}

// Equivalent treats every disabled rate as the same rate.
func (p MinRate) Equivalent(o QueueProperty) bool {
	x, ok := o.(MinRate)
	return ok && p.d.equivalent(x.d)
}

// MaxRate is the rate limit of a queue in tenths of a percent.
type MaxRate struct {
	d ofpQueuePropRate
}

func NewMaxRate(rate uint16) MaxRate {
	return MaxRate{d: newQueuePropRate(QueuePropertyMaxRate, rate)}
}

func (p MaxRate) Rate() uint16            { return p.d.Rate }
func (p MaxRate) Type() QueuePropertyType { return QueuePropertyMaxRate }
func (p MaxRate) Length() int             { return 16 }
func (p MaxRate) ByteLength() int         { return 16 }
func (p MaxRate) Encode(b []byte) []byte  { return wire.Append(b, &p.d) }
func (MaxRate) isQueueProperty()          {}

func (p MaxRate) Equal(o QueueProperty) bool {
	x, ok := o.(MaxRate)
	return ok && p.d == x.d
}

func (p MaxRate) Equivalent(o QueueProperty) bool {
	x, ok := o.(MaxRate)
	return ok && p.d.equivalent(x.d)
}

type ofpPacketQueue struct {
	QueueID uint32
	Port    uint32
	Len     uint16
	Pad     [6]uint8
}

const packetQueueLen = 16

// PacketQueue describes one queue of a port and its properties.
type PacketQueue struct {
	d          ofpPacketQueue
	properties QueuePropertyList
}

func NewPacketQueue(queueID, port uint32, properties ...QueueProperty) PacketQueue {
	return PacketQueue{
		d:          ofpPacketQueue{QueueID: queueID, Port: port},
		properties: append(QueuePropertyList{}, properties...),
	}
}

func (q PacketQueue) QueueID() uint32               { return q.d.QueueID }
func (q PacketQueue) Port() uint32                  { return q.d.Port }
func (q PacketQueue) Properties() QueuePropertyList { return q.properties.Clone() }
func (q PacketQueue) Length() int                   { return packetQueueLen + q.properties.ByteLength() }
func (q PacketQueue) ByteLength() int               { return q.Length() }

func (q PacketQueue) Encode(b []byte) []byte {
	d := q.d
	d.Len = uint16(q.Length())
	b = wire.Append(b, &d)
	return q.properties.Encode(b)
}

func (q PacketQueue) Equal(o PacketQueue) bool {
	p, r := q.d, o.d
	p.Len, r.Len = 0, 0
	return p == r && q.properties.Equal(o.properties)
}

func (q PacketQueue) Equivalent(o PacketQueue) bool {
	return q.d.QueueID == o.d.QueueID && q.d.Port == o.d.Port &&
		q.properties.Equivalent(o.properties)
}

// DecodePacketQueue decodes one queue description and its properties.
func DecodePacketQueue(d *wire.Decoder) (PacketQueue, error) {
	var q PacketQueue
	length, err := d.PeekUint16(8)
	if err != nil {
		return q, structFamily.Truncated(packetQueueLen, d.Len())
	}
	if int(length) < packetQueueLen {
		return q, wire.NewError(structFamily.BadLen, "packet queue length %d is too short", length)
	}
	body, err := d.Sub(int(length))
	if err != nil {
		return q, structFamily.Truncated(int(length), d.Len())
	}
	if err := decodeStruct(body, &q.d); err != nil {
		return q, err
	}
	if q.properties, err = queueProperties.DecodeList(body); err != nil {
		return PacketQueue{}, err
	}
	return q, nil
}

type PacketQueueList = wire.List[PacketQueue]

// DecodePacketQueues decodes queue descriptions until d is exhausted.
func DecodePacketQueues(d *wire.Decoder) (PacketQueueList, error) {
	return wire.DecodeList[PacketQueue](d, DecodePacketQueue)
}
