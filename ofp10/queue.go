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

type QueuePropertyType uint16

const (
	QueuePropertyNone    QueuePropertyType = 0
	QueuePropertyMinRate QueuePropertyType = 1
)

// RateDisabled marks a min_rate that is not configured. Rates are in
// tenths of a percent, so anything above 1000 means disabled.
const RateDisabled uint16 = 0xffff

const maxRate uint16 = 1000

var minRateSpec = tlvSpec(queuePropertyFamily.Kind, uint16(QueuePropertyMinRate), 16, true)

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
	uint32(QueuePropertyMinRate): decodeMinRate,
})

// DecodeQueueProperties decodes queue properties until d is exhausted,
// skipping unknown ones.
func DecodeQueueProperties(d *wire.Decoder) (QueuePropertyList, error) {
	return queueProperties.DecodeList(d)
}

type ofpQueuePropMinRate struct {
	Property uint16
	Len      uint16
	Pad      [4]uint8
	Rate     uint16
	Pad2     [6]uint8
}

// MinRate is the guaranteed rate of a queue in tenths of a percent.
type MinRate struct {
	d ofpQueuePropMinRate
}

func NewMinRate(rate uint16) MinRate {
	return MinRate{d: ofpQueuePropMinRate{Property: uint16(QueuePropertyMinRate), Len: 16, Rate: rate}}
}

func decodeMinRate(d *wire.Decoder) (QueueProperty, error) {
	var p MinRate
	if err := decodeFixed(d, queuePropertyFamily, minRateSpec, &p.d); err != nil {
		return nil, err
	}
	return p, nil
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
	return ok && wire.SaturatedEqual(p.d.Rate, x.d.Rate, maxRate)
}

type ofpPacketQueue struct {
	QueueID uint32
	Len     uint16
	Pad     [2]uint8
}

const packetQueueLen = 8

// PacketQueue describes a queue and its properties.
type PacketQueue struct {
	d          ofpPacketQueue
	properties QueuePropertyList
}

func NewPacketQueue(queueID uint32, properties ...QueueProperty) PacketQueue {
	q := PacketQueue{properties: QueuePropertyList(properties).Clone()}
	q.d = ofpPacketQueue{QueueID: queueID, Len: uint16(q.Length())}
	return q
}

func (q PacketQueue) QueueID() uint32               { return q.d.QueueID }
func (q PacketQueue) Properties() QueuePropertyList { return q.properties.Clone() }
func (q PacketQueue) Length() int                   { return packetQueueLen + q.properties.ByteLength() }
func (q PacketQueue) ByteLength() int               { return q.Length() }

func (q PacketQueue) Encode(b []byte) []byte {
	b = wire.Append(b, &q.d)
	return q.properties.Encode(b)
}

func (q PacketQueue) Equal(o PacketQueue) bool {
	return q.d == o.d && q.properties.Equal(o.properties)
}

func (q PacketQueue) Equivalent(o PacketQueue) bool {
	return q.d.QueueID == o.d.QueueID && q.properties.Equivalent(o.properties)
}

func DecodePacketQueue(d *wire.Decoder) (PacketQueue, error) {
	body, err := openRecord(d, "packet queue", 4, packetQueueLen)
	if err != nil {
		return PacketQueue{}, err
	}
	var q PacketQueue
	if err := wire.Unpack(body, &q.d); err != nil {
		return PacketQueue{}, structFamily.Truncated(packetQueueLen, body.Len())
	}
	if q.properties, err = DecodeQueueProperties(body); err != nil {
		return PacketQueue{}, err
	}
	return q, nil
}

type PacketQueueList = wire.List[PacketQueue]

func DecodePacketQueues(d *wire.Decoder) (PacketQueueList, error) {
	return wire.DecodeList[PacketQueue](d, DecodePacketQueue)
}
