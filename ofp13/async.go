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

type ofpPacketIn struct {
	BufferID uint32
	TotalLen uint16
	Reason   uint8
	TableID  uint8
	Cookie   uint64
}

const packetInLen = HeaderLen + 16

// PacketIn carries a packet sent to the controller. The match holds the
// pipeline fields of the packet.
type PacketIn struct {
	xid   uint32
	d     ofpPacketIn
	match Match
	pad   [2]uint8
	data  []byte
}

func NewPacketIn(xid, bufferID uint32, totalLen uint16, reason, tableID uint8, cookie uint64, match Match, data []byte) PacketIn {
	return PacketIn{
		xid: xid,
		d: ofpPacketIn{
			BufferID: bufferID,
			TotalLen: totalLen,
			Reason:   reason,
			TableID:  tableID,
			Cookie:   cookie,
		},
		match: match,
		data:  wire.CloneBytes(data),
	}
}

func (m PacketIn) BufferID() uint32  { return m.d.BufferID }
func (m PacketIn) TotalLen() uint16  { return m.d.TotalLen }
func (m PacketIn) Reason() uint8     { return m.d.Reason }
func (m PacketIn) TableID() uint8    { return m.d.TableID }
func (m PacketIn) Cookie() uint64    { return m.d.Cookie }
func (m PacketIn) Match() Match      { return m.match }
func (m PacketIn) Data() []byte      { return wire.CloneBytes(m.data) }
func (m PacketIn) Type() MessageType { return TypePacketIn }
func (m PacketIn) Xid() uint32       { return m.xid }
func (m PacketIn) Length() int       { return packetInLen + m.match.ByteLength() + 2 + len(m.data) }
func (m PacketIn) ByteLength() int   { return m.Length() }

func (m PacketIn) Encode(b []byte) []byte {
	b = appendHeader(b, TypePacketIn, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	b = m.match.Encode(b)
	b = append(b, m.pad[:]...)
	return append(b, m.data...)
}

func (m PacketIn) Equal(o Message) bool {
	x, ok := o.(PacketIn)
	return ok && m.xid == x.xid && m.d == x.d && m.match.Equal(x.match) &&
		m.pad == x.pad && bytes.Equal(m.data, x.data)
}

func (m PacketIn) Equivalent(o Message) bool {
	x, ok := o.(PacketIn)
	return ok && m.xid == x.xid && m.d == x.d && m.match.Equivalent(x.match) &&
		bytes.Equal(m.data, x.data)
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
	if m.match, err = DecodeMatch(body); err != nil {
		return nil, err
	}
	pad, err := body.Next(2)
	if err != nil {
		return nil, messageFamily.Truncated(2, body.Len())
	}
	copy(m.pad[:], pad)
	m.data = body.Rest()
	return m, nil
}

type ofpFlowRemoved struct {
	Cookie       uint64
	Priority     uint16
	Reason       uint8
	TableID      uint8
	DurationSec  uint32
	DurationNsec uint32
	IdleTimeout  uint16
	HardTimeout  uint16
	PacketCount  uint64
	ByteCount    uint64
}

const flowRemovedLen = HeaderLen + 40

// FlowRemoved reports a flow entry leaving a table.
type FlowRemoved struct {
	xid   uint32
	d     ofpFlowRemoved
	match Match
}

// FlowRemovedStats are the counters of a removed flow.
type FlowRemovedStats struct {
	DurationSec  uint32
	DurationNsec uint32
	PacketCount  uint64
	ByteCount    uint64
}

func NewFlowRemoved(xid uint32, cookie uint64, priority uint16, reason, tableID uint8, idleTimeout, hardTimeout uint16, stats FlowRemovedStats, match Match) FlowRemoved {
	return FlowRemoved{
		xid: xid,
		d: ofpFlowRemoved{
			Cookie:       cookie,
			Priority:     priority,
			Reason:       reason,
			TableID:      tableID,
			DurationSec:  stats.DurationSec,
			DurationNsec: stats.DurationNsec,
			IdleTimeout:  idleTimeout,
			HardTimeout:  hardTimeout,
			PacketCount:  stats.PacketCount,
			ByteCount:    stats.ByteCount,
		},
		match: match,
	}
}

func (m FlowRemoved) Cookie() uint64      { return m.d.Cookie }
func (m FlowRemoved) Priority() uint16    { return m.d.Priority }
func (m FlowRemoved) Reason() uint8       { return m.d.Reason }
func (m FlowRemoved) TableID() uint8      { return m.d.TableID }
func (m FlowRemoved) IdleTimeout() uint16 { return m.d.IdleTimeout }
func (m FlowRemoved) HardTimeout() uint16 { return m.d.HardTimeout }
func (m FlowRemoved) Match() Match        { return m.match }
func (m FlowRemoved) Type() MessageType   { return TypeFlowRemoved }
func (m FlowRemoved) Xid() uint32         { return m.xid }
func (m FlowRemoved) Length() int         { return flowRemovedLen + m.match.ByteLength() }
func (m FlowRemoved) ByteLength() int     { return m.Length() }

func (m FlowRemoved) Stats() FlowRemovedStats {
	return FlowRemovedStats{
		DurationSec:  m.d.DurationSec,
		DurationNsec: m.d.DurationNsec,
		PacketCount:  m.d.PacketCount,
		ByteCount:    m.d.ByteCount,
	}
}

func (m FlowRemoved) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFlowRemoved, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.match.Encode(b)
}

func (m FlowRemoved) Equal(o Message) bool {
	x, ok := o.(FlowRemoved)
	return ok && m.xid == x.xid && m.d == x.d && m.match.Equal(x.match)
}

func (m FlowRemoved) Equivalent(o Message) bool {
	x, ok := o.(FlowRemoved)
	return ok && m.xid == x.xid && m.d == x.d && m.match.Equivalent(x.match)
}

func (FlowRemoved) isMessage() {}

func decodeFlowRemoved(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeFlowRemoved)
	if err != nil {
		return nil, err
	}
	m := FlowRemoved{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(flowRemovedLen, HeaderLen+body.Len())
	}
	if m.match, err = DecodeMatch(body); err != nil {
		return nil, err
	}
	if body.Len() != 0 {
		return nil, messageFamily.Reject(wire.Invalid(messageFamily.Kind, wire.WhatLength))
	}
	return m, nil
}

type ofpPortStatus struct {
	Reason uint8
	Pad    [7]uint8
}

// PortStatus reports a port being added, removed or modified.
type PortStatus struct {
	xid  uint32
	d    ofpPortStatus
	desc Port
}

func NewPortStatus(xid uint32, reason uint8, desc Port) PortStatus {
	return PortStatus{xid: xid, d: ofpPortStatus{Reason: reason}, desc: desc}
}

func (m PortStatus) Reason() uint8     { return m.d.Reason }
func (m PortStatus) Desc() Port        { return m.desc }
func (m PortStatus) Type() MessageType { return TypePortStatus }
func (m PortStatus) Xid() uint32       { return m.xid }
func (m PortStatus) Length() int       { return HeaderLen + 8 + portLen }
func (m PortStatus) ByteLength() int   { return m.Length() }

func (m PortStatus) Encode(b []byte) []byte {
	b = appendHeader(b, TypePortStatus, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.desc.Encode(b)
}

func (m PortStatus) Equal(o Message) bool {
	x, ok := o.(PortStatus)
	return ok && m == x
}

func (m PortStatus) Equivalent(o Message) bool {
	x, ok := o.(PortStatus)
	return ok && m.xid == x.xid && m.d.Reason == x.d.Reason && m.desc.Equivalent(x.desc)
}

func (PortStatus) isMessage() {}

func decodePortStatus(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypePortStatus)
	if err != nil {
		return nil, err
	}
	m := PortStatus{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(HeaderLen+8, HeaderLen+body.Len())
	}
	if m.desc, err = DecodePort(body); err != nil {
		return nil, err
	}
	return m, nil
}
