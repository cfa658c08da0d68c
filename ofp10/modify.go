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
	"net"

	"github.com/k-vswitch/ofproto/wire"
)

type ofpPacketOut struct {
	BufferID   uint32
	InPort     uint16
	ActionsLen uint16
}

const packetOutLen = HeaderLen + 8

// PacketOut sends a packet, or a buffered one, through a list of actions.
type PacketOut struct {
	xid     uint32
	d       ofpPacketOut
	actions ActionList
	data    []byte
}

func NewPacketOut(xid, bufferID uint32, inPort uint16, actions []Action, data []byte) PacketOut {
	return PacketOut{
		xid:     xid,
		d:       ofpPacketOut{BufferID: bufferID, InPort: inPort},
		actions: append(ActionList{}, actions...),
		data:    wire.CloneBytes(data),
	}
}

func (m PacketOut) BufferID() uint32    { return m.d.BufferID }
func (m PacketOut) InPort() uint16      { return m.d.InPort }
func (m PacketOut) Actions() ActionList { return m.actions.Clone() }
func (m PacketOut) Data() []byte        { return wire.CloneBytes(m.data) }
func (m PacketOut) Type() MessageType   { return TypePacketOut }
func (m PacketOut) Xid() uint32         { return m.xid }
func (m PacketOut) Length() int         { return packetOutLen + m.actions.ByteLength() + len(m.data) }
func (m PacketOut) ByteLength() int     { return m.Length() }

func (m PacketOut) Encode(b []byte) []byte {
	b = appendHeader(b, TypePacketOut, m.Length(), m.xid)
	d := m.d
	d.ActionsLen = uint16(m.actions.ByteLength())
	b = wire.Append(b, &d)
	b = m.actions.Encode(b)
	return append(b, m.data...)
}

func (m PacketOut) Equal(o Message) bool {
	x, ok := o.(PacketOut)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.ActionsLen, q.ActionsLen = 0, 0
	return m.xid == x.xid && p == q && m.actions.Equal(x.actions) && bytes.Equal(m.data, x.data)
}

func (m PacketOut) Equivalent(o Message) bool {
	x, ok := o.(PacketOut)
	return ok && m.xid == x.xid && m.d.BufferID == x.d.BufferID && m.d.InPort == x.d.InPort &&
		m.actions.Equivalent(x.actions) && bytes.Equal(m.data, x.data)
}

func (PacketOut) isMessage() {}

func decodePacketOut(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypePacketOut)
	if err != nil {
		return nil, err
	}
	m := PacketOut{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(packetOutLen, HeaderLen+body.Len())
	}
	list, err := body.Sub(int(m.d.ActionsLen))
	if err != nil {
		return nil, actionFamily.Truncated(int(m.d.ActionsLen), body.Len())
	}
	if m.actions, err = actions.DecodeList(list); err != nil {
		return nil, err
	}
	m.data = body.Rest()
	return m, nil
}

type ofpFlowMod struct {
	Match       ofpMatch
	Cookie      uint64
	Command     uint16
	IdleTimeout uint16
	HardTimeout uint16
	Priority    uint16
	BufferID    uint32
	OutPort     uint16
	Flags       uint16
}

const flowModLen = HeaderLen + 64

// DefaultPriority is the priority of a flow mod built by NewFlowMod.
const DefaultPriority uint16 = 0x8000

// FlowMod adds, modifies or deletes flow entries. The With methods return
// modified copies.
type FlowMod struct {
	xid     uint32
	d       ofpFlowMod
	actions ActionList
}

// NewFlowMod returns a flow mod matching every packet at the default
// priority, with no buffer and out_port set to none.
func NewFlowMod(xid uint32, command FlowModCommand) FlowMod {
	return FlowMod{
		xid: xid,
		d: ofpFlowMod{
			Match:    NewMatch().d,
			Command:  uint16(command),
			Priority: DefaultPriority,
			BufferID: NoBuffer,
			OutPort:  PortNone,
		},
		actions: ActionList{},
	}
}

func (m FlowMod) WithMatch(match Match) FlowMod {
	m.d.Match = match.d
	return m
}

func (m FlowMod) WithCookie(cookie uint64) FlowMod {
	m.d.Cookie = cookie
	return m
}

func (m FlowMod) WithTimeouts(idle, hard uint16) FlowMod {
	m.d.IdleTimeout, m.d.HardTimeout = idle, hard
	return m
}

func (m FlowMod) WithPriority(priority uint16) FlowMod {
	m.d.Priority = priority
	return m
}

func (m FlowMod) WithBufferID(bufferID uint32) FlowMod {
	m.d.BufferID = bufferID
	return m
}

func (m FlowMod) WithOutPort(port uint16) FlowMod {
	m.d.OutPort = port
	return m
}

func (m FlowMod) WithFlags(flags uint16) FlowMod {
	m.d.Flags = flags
	return m
}

func (m FlowMod) WithActions(actions ...Action) FlowMod {
	m.actions = append(ActionList{}, actions...)
	return m
}

func (m FlowMod) Match() Match            { return Match{m.d.Match} }
func (m FlowMod) Cookie() uint64          { return m.d.Cookie }
func (m FlowMod) Command() FlowModCommand { return FlowModCommand(m.d.Command) }
func (m FlowMod) IdleTimeout() uint16     { return m.d.IdleTimeout }
func (m FlowMod) HardTimeout() uint16     { return m.d.HardTimeout }
func (m FlowMod) Priority() uint16        { return m.d.Priority }
func (m FlowMod) BufferID() uint32        { return m.d.BufferID }
func (m FlowMod) OutPort() uint16         { return m.d.OutPort }
func (m FlowMod) Flags() uint16           { return m.d.Flags }
func (m FlowMod) Actions() ActionList     { return m.actions.Clone() }
func (m FlowMod) Type() MessageType       { return TypeFlowMod }
func (m FlowMod) Xid() uint32             { return m.xid }
func (m FlowMod) Length() int             { return flowModLen + m.actions.ByteLength() }
func (m FlowMod) ByteLength() int         { return m.Length() }

func (m FlowMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFlowMod, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.actions.Encode(b)
}

func (m FlowMod) Equal(o Message) bool {
	x, ok := o.(FlowMod)
	return ok && m.xid == x.xid && m.d == x.d && m.actions.Equal(x.actions)
}

// Equivalent ignores match fields that are wildcarded.
func (m FlowMod) Equivalent(o Message) bool {
	x, ok := o.(FlowMod)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Match, q.Match = p.Match.normalize(), q.Match.normalize()
	return m.xid == x.xid && p == q && m.actions.Equivalent(x.actions)
}

func (FlowMod) isMessage() {}

func decodeFlowMod(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeFlowMod)
	if err != nil {
		return nil, err
	}
	m := FlowMod{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(flowModLen, HeaderLen+body.Len())
	}
	if m.actions, err = actions.DecodeList(body); err != nil {
		return nil, err
	}
	return m, nil
}

type ofpPortMod struct {
	PortNo    uint16
	HwAddr    [6]uint8
	Config    uint32
	Mask      uint32
	Advertise uint32
	Pad       [4]uint8
}

// PortMod changes the behavior of a port. Only config bits set in mask are
// changed; an advertise of zero leaves the advertised features unchanged.
type PortMod struct {
	xid uint32
	d   ofpPortMod
}

func NewPortMod(xid uint32, portNo uint16, hwAddr net.HardwareAddr, config, mask, advertise uint32) PortMod {
	m := PortMod{xid: xid, d: ofpPortMod{PortNo: portNo, Config: config, Mask: mask, Advertise: advertise}}
	copy(m.d.HwAddr[:], hwAddr)
	return m
}

func (m PortMod) PortNo() uint16           { return m.d.PortNo }
func (m PortMod) HwAddr() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(m.d.HwAddr[:])) }
func (m PortMod) Config() uint32           { return m.d.Config }
func (m PortMod) Mask() uint32             { return m.d.Mask }
func (m PortMod) Advertise() uint32        { return m.d.Advertise }
func (m PortMod) Type() MessageType        { return TypePortMod }
func (m PortMod) Xid() uint32              { return m.xid }
func (m PortMod) Length() int              { return 32 }
func (m PortMod) ByteLength() int          { return 32 }

func (m PortMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypePortMod, 32, m.xid)
	return wire.Append(b, &m.d)
}

func (m PortMod) Equal(o Message) bool {
	x, ok := o.(PortMod)
	return ok && m == x
}

func (m PortMod) Equivalent(o Message) bool {
	x, ok := o.(PortMod)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = [4]uint8{}, [4]uint8{}
	return m.xid == x.xid && p == q
}

func (PortMod) isMessage() {}
