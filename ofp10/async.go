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
	"bytes"

	"github.com/k-vswitch/ofproto/wire"
)

type ofpPacketIn struct {
	BufferID uint32
	TotalLen uint16
	InPort   uint16
	Reason   uint8
	Pad      uint8
}

const packetInLen = HeaderLen + 10

// PacketIn carries a packet sent to the controller.
type PacketIn struct {
	xid  uint32
	d    ofpPacketIn
	data []byte
}

func NewPacketIn(xid, bufferID uint32, totalLen, inPort uint16, reason uint8, data []byte) PacketIn {
	return PacketIn{
		xid: xid,
		d: ofpPacketIn{
			BufferID: bufferID,
			TotalLen: totalLen,
			InPort:   inPort,
			Reason:   reason,
		},
		data: wire.CloneBytes(data),
	}
}

func (m PacketIn) BufferID() uint32  { return m.d.BufferID }
func (m PacketIn) TotalLen() uint16  { return m.d.TotalLen }
func (m PacketIn) InPort() uint16    { return m.d.InPort }
func (m PacketIn) Reason() uint8     { return m.d.Reason }
func (m PacketIn) Data() []byte      { return wire.CloneBytes(m.data) }
func (m PacketIn) Type() MessageType { return TypePacketIn }
func (m PacketIn) Xid() uint32       { return m.xid }
func (m PacketIn) Length() int       { return packetInLen + len(m.data) }
func (m PacketIn) ByteLength() int   { return m.Length() }

func (m PacketIn) Encode(b []byte) []byte {
	b = appendHeader(b, TypePacketIn, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return append(b, m.data...)
}

func (m PacketIn) Equal(o Message) bool {
	x, ok := o.(PacketIn)
	return ok && m.xid == x.xid && m.d == x.d && bytes.Equal(m.data, x.data)
}

func (m PacketIn) Equivalent(o Message) bool {
	x, ok := o.(PacketIn)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = 0, 0
	return m.xid == x.xid && p == q && bytes.Equal(m.data, x.data)
}

func (PacketIn) isMessage() {}

func decodePacketIn(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypePacketIn)
	if err != nil {
		return nil, err
	}
	m := PacketIn{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(packetInLen, HeaderLen+body.Len())
	}
	m.data = body.Rest()
	return m, nil
}

type ofpFlowRemoved struct {
	Match        ofpMatch
	Cookie       uint64
	Priority     uint16
	Reason       uint8
	Pad          uint8
	DurationSec  uint32
	DurationNsec uint32
	IdleTimeout  uint16
	Pad2         [2]uint8
	PacketCount  uint64
	ByteCount    uint64
}

const flowRemovedLen = 88

// FlowRemoved reports a flow entry that timed out or was deleted.
type FlowRemoved struct {
	xid uint32
	d   ofpFlowRemoved
}

// FlowCounters are the lifetime statistics of a flow entry.
type FlowCounters struct {
	DurationSec  uint32
	DurationNsec uint32
	PacketCount  uint64
	ByteCount    uint64
}

func NewFlowRemoved(xid uint32, match Match, cookie uint64, priority uint16, reason uint8, idleTimeout uint16, counters FlowCounters) FlowRemoved {
	return FlowRemoved{xid: xid, d: ofpFlowRemoved{
		Match:        match.d,
		Cookie:       cookie,
		Priority:     priority,
		Reason:       reason,
		DurationSec:  counters.DurationSec,
		DurationNsec: counters.DurationNsec,
		IdleTimeout:  idleTimeout,
		PacketCount:  counters.PacketCount,
		ByteCount:    counters.ByteCount,
	}}
}

func (m FlowRemoved) Match() Match        { return Match{m.d.Match} }
func (m FlowRemoved) Cookie() uint64      { return m.d.Cookie }
func (m FlowRemoved) Priority() uint16    { return m.d.Priority }
func (m FlowRemoved) Reason() uint8       { return m.d.Reason }
func (m FlowRemoved) IdleTimeout() uint16 { return m.d.IdleTimeout }
func (m FlowRemoved) Type() MessageType   { return TypeFlowRemoved }
func (m FlowRemoved) Xid() uint32         { return m.xid }
func (m FlowRemoved) Length() int         { return flowRemovedLen }
func (m FlowRemoved) ByteLength() int     { return flowRemovedLen }

func (m FlowRemoved) Counters() FlowCounters {
	return FlowCounters{
		DurationSec:  m.d.DurationSec,
		DurationNsec: m.d.DurationNsec,
		PacketCount:  m.d.PacketCount,
		ByteCount:    m.d.ByteCount,
	}
}

func (m FlowRemoved) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFlowRemoved, flowRemovedLen, m.xid)
	return wire.Append(b, &m.d)
}

func (m FlowRemoved) Equal(o Message) bool {
	x, ok := o.(FlowRemoved)
	return ok && m == x
}

func (m FlowRemoved) Equivalent(o Message) bool {
	x, ok := o.(FlowRemoved)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = 0, 0
	p.Pad2, q.Pad2 = [2]uint8{}, [2]uint8{}
	p.Match, q.Match = p.Match.normalize(), q.Match.normalize()
	return m.xid == x.xid && p == q
}

func (FlowRemoved) isMessage() {}

type ofpPortStatus struct {
	Reason uint8
	Pad    [7]uint8
	Desc   ofpPhyPort
}

// PortStatus reports a port that was added, removed or modified.
type PortStatus struct {
	xid uint32
	d   ofpPortStatus
}

func NewPortStatus(xid uint32, reason uint8, port PhyPort) PortStatus {
	return PortStatus{xid: xid, d: ofpPortStatus{Reason: reason, Desc: port.d}}
}

func (m PortStatus) Reason() uint8     { return m.d.Reason }
func (m PortStatus) Port() PhyPort     { return PhyPort{m.d.Desc} }
func (m PortStatus) Type() MessageType { return TypePortStatus }
func (m PortStatus) Xid() uint32       { return m.xid }
func (m PortStatus) Length() int       { return 64 }
func (m PortStatus) ByteLength() int   { return 64 }

func (m PortStatus) Encode(b []byte) []byte {
	b = appendHeader(b, TypePortStatus, 64, m.xid)
	return wire.Append(b, &m.d)
}

func (m PortStatus) Equal(o Message) bool {
	x, ok := o.(PortStatus)
	return ok && m == x
}

func (m PortStatus) Equivalent(o Message) bool {
	x, ok := o.(PortStatus)
	return ok && m.xid == x.xid && m.d.Reason == x.d.Reason && m.Port().Equivalent(x.Port())
}

func (PortStatus) isMessage() {}
