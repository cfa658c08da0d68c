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
	"net"

	"github.com/k-vswitch/ofproto/wire"
)

type ofpPacketOut struct {
	BufferID   uint32
	InPort     uint32
	ActionsLen uint16
	Pad        [6]uint8
}

const packetOutLen = HeaderLen + 16

// PacketOut sends a packet, or a buffered one, through a list of actions.
type PacketOut struct {
	xid     uint32
	d       ofpPacketOut
	actions ActionList
	data    []byte
}

func NewPacketOut(xid, bufferID, inPort uint32, actions []Action, data []byte) PacketOut {
	return PacketOut{
		xid:     xid,
		d:       ofpPacketOut{BufferID: bufferID, InPort: inPort},
		actions: append(ActionList{}, actions...),
		data:    wire.CloneBytes(data),
	}
}

func (m PacketOut) BufferID() uint32    { return m.d.BufferID }
func (m PacketOut) InPort() uint32      { return m.d.InPort }
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
	Cookie      uint64
	CookieMask  uint64
	TableID     uint8
	Command     uint8
	IdleTimeout uint16
	HardTimeout uint16
	Priority    uint16
	BufferID    uint32
	OutPort     uint32
	OutGroup    uint32
	Flags       uint16
	Pad         [2]uint8
}

const flowModLen = HeaderLen + 40

// FlowMod adds, modifies or deletes flow entries. The With methods return
// modified copies.
type FlowMod struct {
	xid          uint32
	d            ofpFlowMod
	match        Match
	instructions InstructionList
}

// NewFlowMod returns a flow mod for table 0 with an empty match, no buffer,
// and out_port and out_group set to any.
func NewFlowMod(xid uint32, command FlowModCommand) FlowMod {
	return FlowMod{
		xid: xid,
		d: ofpFlowMod{
			Command:  uint8(command),
			BufferID: NoBuffer,
			OutPort:  PortAny,
			OutGroup: GroupAny,
		},
		match:        NewMatch(),
		instructions: InstructionList{},
	}
}

func (m FlowMod) WithCookie(cookie, mask uint64) FlowMod {
	m.d.Cookie, m.d.CookieMask = cookie, mask
	return m
}

func (m FlowMod) WithTable(tableID uint8) FlowMod {
	m.d.TableID = tableID
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

func (m FlowMod) WithOutPort(port uint32) FlowMod {
	m.d.OutPort = port
	return m
}

func (m FlowMod) WithOutGroup(group uint32) FlowMod {
	m.d.OutGroup = group
	return m
}

func (m FlowMod) WithFlags(flags uint16) FlowMod {
	m.d.Flags = flags
	return m
}

func (m FlowMod) WithMatch(match Match) FlowMod {
	m.match = match
	return m
}

func (m FlowMod) WithInstructions(instructions ...Instruction) FlowMod {
	m.instructions = append(InstructionList{}, instructions...)
	return m
}

func (m FlowMod) Command() FlowModCommand       { return FlowModCommand(m.d.Command) }
func (m FlowMod) Cookie() uint64                { return m.d.Cookie }
func (m FlowMod) CookieMask() uint64            { return m.d.CookieMask }
func (m FlowMod) TableID() uint8                { return m.d.TableID }
func (m FlowMod) IdleTimeout() uint16           { return m.d.IdleTimeout }
func (m FlowMod) HardTimeout() uint16           { return m.d.HardTimeout }
func (m FlowMod) Priority() uint16              { return m.d.Priority }
func (m FlowMod) BufferID() uint32              { return m.d.BufferID }
func (m FlowMod) OutPort() uint32               { return m.d.OutPort }
func (m FlowMod) OutGroup() uint32              { return m.d.OutGroup }
func (m FlowMod) Flags() uint16                 { return m.d.Flags }
func (m FlowMod) Match() Match                  { return m.match }
func (m FlowMod) Instructions() InstructionList { return m.instructions.Clone() }
func (m FlowMod) Type() MessageType             { return TypeFlowMod }
func (m FlowMod) Xid() uint32                   { return m.xid }
func (m FlowMod) ByteLength() int               { return m.Length() }

func (m FlowMod) Length() int {
	return flowModLen + m.match.ByteLength() + m.instructions.ByteLength()
}

func (m FlowMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFlowMod, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	b = m.match.Encode(b)
	return m.instructions.Encode(b)
}

func (m FlowMod) Equal(o Message) bool {
	x, ok := o.(FlowMod)
	return ok && m.xid == x.xid && m.d == x.d && m.match.Equal(x.match) &&
		m.instructions.Equal(x.instructions)
}

// Equivalent compares match sets regardless of field order.
func (m FlowMod) Equivalent(o Message) bool {
	x, ok := o.(FlowMod)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = [2]uint8{}, [2]uint8{}
	return m.xid == x.xid && p == q && m.match.equivalentTo(x.match) &&
		m.instructions.Equivalent(x.instructions)
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
	if m.match, err = DecodeMatch(body); err != nil {
		return nil, err
	}
	if m.instructions, err = instructions.DecodeList(body); err != nil {
		return nil, err
	}
	return m, nil
}

type ofpBucket struct {
	Len        uint16
	Weight     uint16
	WatchPort  uint32
	WatchGroup uint32
	Pad        [4]uint8
}

const bucketLen = 16

// Bucket is one action set of a group.
type Bucket struct {
	d       ofpBucket
	actions ActionList
}

func NewBucket(weight uint16, watchPort, watchGroup uint32, actions ...Action) Bucket {
	return Bucket{
		d:       ofpBucket{Weight: weight, WatchPort: watchPort, WatchGroup: watchGroup},
		actions: append(ActionList{}, actions...),
	}
}

func (b Bucket) Weight() uint16      { return b.d.Weight }
func (b Bucket) WatchPort() uint32   { return b.d.WatchPort }
func (b Bucket) WatchGroup() uint32  { return b.d.WatchGroup }
func (b Bucket) Actions() ActionList { return b.actions.Clone() }
func (b Bucket) Length() int         { return bucketLen + b.actions.ByteLength() }
func (b Bucket) ByteLength() int     { return b.Length() }

func (b Bucket) Encode(buf []byte) []byte {
	d := b.d
	d.Len = uint16(b.Length())
	buf = wire.Append(buf, &d)
	return b.actions.Encode(buf)
}

func (b Bucket) Equal(o Bucket) bool {
	p, q := b.d, o.d
	p.Len, q.Len = 0, 0
	return p == q && b.actions.Equal(o.actions)
}

func (b Bucket) Equivalent(o Bucket) bool {
	return b.d.Weight == o.d.Weight && b.d.WatchPort == o.d.WatchPort &&
		b.d.WatchGroup == o.d.WatchGroup && b.actions.Equivalent(o.actions)
}

func DecodeBucket(d *wire.Decoder) (Bucket, error) {
	var b Bucket
	body, err := openRecord(d, "bucket", 0, bucketLen)
	if err != nil {
		return b, err
	}
	if err := decodeStruct(body, &b.d); err != nil {
		return b, err
	}
	if b.actions, err = actions.DecodeList(body); err != nil {
		return Bucket{}, err
	}
	return b, nil
}

type BucketList = wire.List[Bucket]

func DecodeBuckets(d *wire.Decoder) (BucketList, error) {
	return wire.DecodeList[Bucket](d, DecodeBucket)
}

type ofpGroupMod struct {
	Command uint16
	Type    uint8
	Pad     uint8
	GroupID uint32
}

type GroupMod struct {
	xid     uint32
	d       ofpGroupMod
	buckets BucketList
}

func NewGroupMod(xid uint32, command uint16, groupType uint8, groupID uint32, buckets ...Bucket) GroupMod {
	return GroupMod{
		xid:     xid,
		d:       ofpGroupMod{Command: command, Type: groupType, GroupID: groupID},
		buckets: append(BucketList{}, buckets...),
	}
}

func (m GroupMod) Command() uint16     { return m.d.Command }
func (m GroupMod) GroupType() uint8    { return m.d.Type }
func (m GroupMod) GroupID() uint32     { return m.d.GroupID }
func (m GroupMod) Buckets() BucketList { return m.buckets.Clone() }
func (m GroupMod) Type() MessageType   { return TypeGroupMod }
func (m GroupMod) Xid() uint32         { return m.xid }
func (m GroupMod) Length() int         { return HeaderLen + 8 + m.buckets.ByteLength() }
func (m GroupMod) ByteLength() int     { return m.Length() }

func (m GroupMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypeGroupMod, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.buckets.Encode(b)
}

func (m GroupMod) Equal(o Message) bool {
	x, ok := o.(GroupMod)
	return ok && m.xid == x.xid && m.d == x.d && m.buckets.Equal(x.buckets)
}

func (m GroupMod) Equivalent(o Message) bool {
	x, ok := o.(GroupMod)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = 0, 0
	return m.xid == x.xid && p == q && m.buckets.Equivalent(x.buckets)
}

func (GroupMod) isMessage() {}

func decodeGroupMod(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeGroupMod)
	if err != nil {
		return nil, err
	}
	m := GroupMod{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(HeaderLen+8, HeaderLen+body.Len())
	}
	if m.buckets, err = DecodeBuckets(body); err != nil {
		return nil, err
	}
	return m, nil
}

type ofpPortMod struct {
	PortNo    uint32
	Pad       [4]uint8
	HwAddr    [6]uint8
	Pad2      [2]uint8
	Config    uint32
	Mask      uint32
	Advertise uint32
	Pad3      [4]uint8
}

type PortMod struct {
	xid uint32
	d   ofpPortMod
}

func NewPortMod(xid, portNo uint32, hwAddr net.HardwareAddr, config, mask, advertise uint32) PortMod {
	m := PortMod{xid: xid, d: ofpPortMod{PortNo: portNo, Config: config, Mask: mask, Advertise: advertise}}
	copy(m.d.HwAddr[:], hwAddr)
	return m
}

func (m PortMod) PortNo() uint32           { return m.d.PortNo }
func (m PortMod) HwAddr() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(m.d.HwAddr[:])) }
func (m PortMod) Config() uint32           { return m.d.Config }
func (m PortMod) Mask() uint32             { return m.d.Mask }
func (m PortMod) Advertise() uint32        { return m.d.Advertise }
func (m PortMod) Type() MessageType        { return TypePortMod }
func (m PortMod) Xid() uint32              { return m.xid }
func (m PortMod) Length() int              { return 40 }
func (m PortMod) ByteLength() int          { return 40 }

func (m PortMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypePortMod, 40, m.xid)
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
	p.Pad, p.Pad2, p.Pad3 = [4]uint8{}, [2]uint8{}, [4]uint8{}
	q.Pad, q.Pad2, q.Pad3 = [4]uint8{}, [2]uint8{}, [4]uint8{}
	return m.xid == x.xid && p == q
}

func (PortMod) isMessage() {}

type ofpTableMod struct {
	TableID uint8
	Pad     [3]uint8
	Config  uint32
}

type TableMod struct {
	xid uint32
	d   ofpTableMod
}

func NewTableMod(xid uint32, tableID uint8, config uint32) TableMod {
	return TableMod{xid: xid, d: ofpTableMod{TableID: tableID, Config: config}}
}

func (m TableMod) TableID() uint8    { return m.d.TableID }
func (m TableMod) Config() uint32    { return m.d.Config }
func (m TableMod) Type() MessageType { return TypeTableMod }
func (m TableMod) Xid() uint32       { return m.xid }
func (m TableMod) Length() int       { return 16 }
func (m TableMod) ByteLength() int   { return 16 }

func (m TableMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypeTableMod, 16, m.xid)
	return wire.Append(b, &m.d)
}

func (m TableMod) Equal(o Message) bool {
	x, ok := o.(TableMod)
	return ok && m == x
}

func (m TableMod) Equivalent(o Message) bool {
	x, ok := o.(TableMod)
	return ok && m.xid == x.xid && m.d.TableID == x.d.TableID && m.d.Config == x.d.Config
}

func (TableMod) isMessage() {}

type ofpMeterMod struct {
	Command uint16
	Flags   uint16
	MeterID uint32
}

type MeterMod struct {
	xid   uint32
	d     ofpMeterMod
	bands MeterBandList
}

func NewMeterMod(xid uint32, command, flags uint16, meterID uint32, bands ...MeterBand) MeterMod {
	return MeterMod{
		xid:   xid,
		d:     ofpMeterMod{Command: command, Flags: flags, MeterID: meterID},
		bands: append(MeterBandList{}, bands...),
	}
}

func (m MeterMod) Command() uint16      { return m.d.Command }
func (m MeterMod) Flags() uint16        { return m.d.Flags }
func (m MeterMod) MeterID() uint32      { return m.d.MeterID }
func (m MeterMod) Bands() MeterBandList { return m.bands.Clone() }
func (m MeterMod) Type() MessageType    { return TypeMeterMod }
func (m MeterMod) Xid() uint32          { return m.xid }
func (m MeterMod) Length() int          { return HeaderLen + 8 + m.bands.ByteLength() }
func (m MeterMod) ByteLength() int      { return m.Length() }

func (m MeterMod) Encode(b []byte) []byte {
	b = appendHeader(b, TypeMeterMod, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.bands.Encode(b)
}

func (m MeterMod) Equal(o Message) bool {
	x, ok := o.(MeterMod)
	return ok && m.xid == x.xid && m.d == x.d && m.bands.Equal(x.bands)
}

func (m MeterMod) Equivalent(o Message) bool {
	x, ok := o.(MeterMod)
	return ok && m.xid == x.xid && m.d == x.d && m.bands.Equivalent(x.bands)
}

func (MeterMod) isMessage() {}

func decodeMeterMod(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeMeterMod)
	if err != nil {
		return nil, err
	}
	m := MeterMod{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(HeaderLen+8, HeaderLen+body.Len())
	}
	if m.bands, err = meterBands.DecodeList(body); err != nil {
		return nil, err
	}
	return m, nil
}

type ofpQueueGetConfig struct {
	Port uint32
	Pad  [4]uint8
}

type QueueGetConfigRequest struct {
	xid uint32
	d   ofpQueueGetConfig
}

func NewQueueGetConfigRequest(xid, port uint32) QueueGetConfigRequest {
	return QueueGetConfigRequest{xid: xid, d: ofpQueueGetConfig{Port: port}}
}

func (m QueueGetConfigRequest) Port() uint32      { return m.d.Port }
func (m QueueGetConfigRequest) Type() MessageType { return TypeQueueGetConfigRequest }
func (m QueueGetConfigRequest) Xid() uint32       { return m.xid }
func (m QueueGetConfigRequest) Length() int       { return 16 }
func (m QueueGetConfigRequest) ByteLength() int   { return 16 }

func (m QueueGetConfigRequest) Encode(b []byte) []byte {
	b = appendHeader(b, TypeQueueGetConfigRequest, 16, m.xid)
	return wire.Append(b, &m.d)
}

func (m QueueGetConfigRequest) Equal(o Message) bool {
	x, ok := o.(QueueGetConfigRequest)
	return ok && m == x
}

func (m QueueGetConfigRequest) Equivalent(o Message) bool {
	x, ok := o.(QueueGetConfigRequest)
	return ok && m.xid == x.xid && m.d.Port == x.d.Port
}

func (QueueGetConfigRequest) isMessage() {}

type QueueGetConfigReply struct {
	xid    uint32
	d      ofpQueueGetConfig
	queues PacketQueueList
}

func NewQueueGetConfigReply(xid, port uint32, queues ...PacketQueue) QueueGetConfigReply {
	return QueueGetConfigReply{
		xid:    xid,
		d:      ofpQueueGetConfig{Port: port},
		queues: append(PacketQueueList{}, queues...),
	}
}

func (m QueueGetConfigReply) Port() uint32            { return m.d.Port }
func (m QueueGetConfigReply) Queues() PacketQueueList { return m.queues.Clone() }
func (m QueueGetConfigReply) Type() MessageType       { return TypeQueueGetConfigReply }
func (m QueueGetConfigReply) Xid() uint32             { return m.xid }
func (m QueueGetConfigReply) Length() int             { return 16 + m.queues.ByteLength() }
func (m QueueGetConfigReply) ByteLength() int         { return m.Length() }

func (m QueueGetConfigReply) Encode(b []byte) []byte {
	b = appendHeader(b, TypeQueueGetConfigReply, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.queues.Encode(b)
}

func (m QueueGetConfigReply) Equal(o Message) bool {
	x, ok := o.(QueueGetConfigReply)
	return ok && m.xid == x.xid && m.d == x.d && m.queues.Equal(x.queues)
}

func (m QueueGetConfigReply) Equivalent(o Message) bool {
	x, ok := o.(QueueGetConfigReply)
	return ok && m.xid == x.xid && m.d.Port == x.d.Port && m.queues.Equivalent(x.queues)
}

func (QueueGetConfigReply) isMessage() {}

func decodeQueueGetConfigReply(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeQueueGetConfigReply)
	if err != nil {
		return nil, err
	}
	m := QueueGetConfigReply{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(16, HeaderLen+body.Len())
	}
	if m.queues, err = DecodePacketQueues(body); err != nil {
		return nil, err
	}
	return m, nil
}
