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

type ofpDesc struct {
	MfrDesc   [DescStrLen]uint8
	HwDesc    [DescStrLen]uint8
	SwDesc    [DescStrLen]uint8
	SerialNum [SerialNumLen]uint8
	DpDesc    [DescStrLen]uint8
}

const descLen = 4*DescStrLen + SerialNumLen

// Desc describes the switch. Longer strings are truncated to fit.
type Desc struct {
	MfrDesc   string
	HwDesc    string
	SwDesc    string
	SerialNum string
	DpDesc    string
}

type DescReply struct {
	d ofpDesc
}

func NewDescReply(desc Desc) DescReply {
	var r DescReply
	wire.PutName(r.d.MfrDesc[:], desc.MfrDesc)
	wire.PutName(r.d.HwDesc[:], desc.HwDesc)
	wire.PutName(r.d.SwDesc[:], desc.SwDesc)
	wire.PutName(r.d.SerialNum[:], desc.SerialNum)
	wire.PutName(r.d.DpDesc[:], desc.DpDesc)
	return r
}

func (r DescReply) Desc() Desc {
	return Desc{
		MfrDesc:   wire.Name(r.d.MfrDesc[:]),
		HwDesc:    wire.Name(r.d.HwDesc[:]),
		SwDesc:    wire.Name(r.d.SwDesc[:]),
		SerialNum: wire.Name(r.d.SerialNum[:]),
		DpDesc:    wire.Name(r.d.DpDesc[:]),
	}
}

func (r DescReply) MultipartType() MultipartType { return MultipartDesc }
func (r DescReply) Length() int                  { return descLen }
func (r DescReply) ByteLength() int              { return descLen }
func (r DescReply) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r DescReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(DescReply)
	return ok && r == x
}

// Equivalent ignores whatever follows the terminating NUL of each string.
func (r DescReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(DescReply)
	return ok && r.Desc() == x.Desc()
}

func (DescReply) isMultipartReplyBody() {}

func decodeDescReply(d *wire.Decoder) (MultipartReplyBody, error) {
	var r DescReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, multipartFamily.Truncated(descLen, d.Len())
	}
	return r, nil
}

type ofpFlowStats struct {
	Length       uint16
	TableID      uint8
	Pad          uint8
	DurationSec  uint32
	DurationNsec uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Flags        uint16
	Pad2         [4]uint8
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
}

const flowStatsLen = 48

// FlowStats is one flow entry of a flow stats reply.
type FlowStats struct {
	d            ofpFlowStats
	match        Match
	instructions InstructionList
}

// FlowCounters are the age and counters of a flow entry.
type FlowCounters struct {
	DurationSec  uint32
	DurationNsec uint32
	PacketCount  uint64
	ByteCount    uint64
}

func NewFlowStats(tableID uint8, priority, idleTimeout, hardTimeout, flags uint16, cookie uint64, counters FlowCounters, match Match, instructions ...Instruction) FlowStats {
	return FlowStats{
		d: ofpFlowStats{
			TableID:      tableID,
			DurationSec:  counters.DurationSec,
			DurationNsec: counters.DurationNsec,
			Priority:     priority,
			IdleTimeout:  idleTimeout,
			HardTimeout:  hardTimeout,
			Flags:        flags,
			Cookie:       cookie,
			PacketCount:  counters.PacketCount,
			ByteCount:    counters.ByteCount,
		},
		match:        match,
		instructions: append(InstructionList{}, instructions...),
	}
}

func (s FlowStats) TableID() uint8                { return s.d.TableID }
func (s FlowStats) Priority() uint16              { return s.d.Priority }
func (s FlowStats) IdleTimeout() uint16           { return s.d.IdleTimeout }
func (s FlowStats) HardTimeout() uint16           { return s.d.HardTimeout }
func (s FlowStats) Flags() uint16                 { return s.d.Flags }
func (s FlowStats) Cookie() uint64                { return s.d.Cookie }
func (s FlowStats) Match() Match                  { return s.match }
func (s FlowStats) Instructions() InstructionList { return s.instructions.Clone() }
func (s FlowStats) ByteLength() int               { return s.Length() }

func (s FlowStats) Counters() FlowCounters {
	return FlowCounters{
		DurationSec:  s.d.DurationSec,
		DurationNsec: s.d.DurationNsec,
		PacketCount:  s.d.PacketCount,
		ByteCount:    s.d.ByteCount,
	}
}

func (s FlowStats) Length() int {
	return flowStatsLen + s.match.ByteLength() + s.instructions.ByteLength()
}

func (s FlowStats) Encode(b []byte) []byte {
	d := s.d
	d.Length = uint16(s.Length())
	b = wire.Append(b, &d)
	b = s.match.Encode(b)
	return s.instructions.Encode(b)
}

func (s FlowStats) clean() ofpFlowStats {
	d := s.d
	d.Length, d.Pad, d.Pad2 = 0, 0, [4]uint8{}
	return d
}

func (s FlowStats) Equal(o FlowStats) bool {
	p, q := s.d, o.d
	p.Length, q.Length = 0, 0
	return p == q && s.match.Equal(o.match) && s.instructions.Equal(o.instructions)
}

func (s FlowStats) Equivalent(o FlowStats) bool {
	return s.clean() == o.clean() && s.match.equivalentTo(o.match) &&
		s.instructions.Equivalent(o.instructions)
}

func DecodeFlowStats(d *wire.Decoder) (FlowStats, error) {
	var s FlowStats
	body, err := openRecord(d, "flow_stats", 0, flowStatsLen)
	if err != nil {
		return s, err
	}
	if err := decodeStruct(body, &s.d); err != nil {
		return s, err
	}
	if s.match, err = DecodeMatch(body); err != nil {
		return FlowStats{}, err
	}
	if s.instructions, err = instructions.DecodeList(body); err != nil {
		return FlowStats{}, err
	}
	return s, nil
}

type FlowStatsList = wire.List[FlowStats]

type FlowStatsReply struct {
	stats FlowStatsList
}

func NewFlowStatsReply(stats ...FlowStats) FlowStatsReply {
	return FlowStatsReply{append(FlowStatsList{}, stats...)}
}

func (r FlowStatsReply) Stats() FlowStatsList         { return r.stats.Clone() }
func (r FlowStatsReply) MultipartType() MultipartType { return MultipartFlow }
func (r FlowStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r FlowStatsReply) ByteLength() int              { return r.Length() }
func (r FlowStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r FlowStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(FlowStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r FlowStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(FlowStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (FlowStatsReply) isMultipartReplyBody() {}

func decodeFlowStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[FlowStats](d, DecodeFlowStats)
	if err != nil {
		return nil, err
	}
	return FlowStatsReply{stats}, nil
}

type ofpAggregateStats struct {
	PacketCount uint64
	ByteCount   uint64
	FlowCount   uint32
	Pad         [4]uint8
}

type AggregateStatsReply struct {
	d ofpAggregateStats
}

func NewAggregateStatsReply(packetCount, byteCount uint64, flowCount uint32) AggregateStatsReply {
	return AggregateStatsReply{ofpAggregateStats{PacketCount: packetCount, ByteCount: byteCount, FlowCount: flowCount}}
}

func (r AggregateStatsReply) PacketCount() uint64          { return r.d.PacketCount }
func (r AggregateStatsReply) ByteCount() uint64            { return r.d.ByteCount }
func (r AggregateStatsReply) FlowCount() uint32            { return r.d.FlowCount }
func (r AggregateStatsReply) MultipartType() MultipartType { return MultipartAggregate }
func (r AggregateStatsReply) Length() int                  { return 24 }
func (r AggregateStatsReply) ByteLength() int              { return 24 }
func (r AggregateStatsReply) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r AggregateStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(AggregateStatsReply)
	return ok && r == x
}

func (r AggregateStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(AggregateStatsReply)
	return ok && r.d.PacketCount == x.d.PacketCount && r.d.ByteCount == x.d.ByteCount &&
		r.d.FlowCount == x.d.FlowCount
}

func (AggregateStatsReply) isMultipartReplyBody() {}

func decodeAggregateStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	var r AggregateStatsReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, multipartFamily.Truncated(24, d.Len())
	}
	return r, nil
}

type ofpTableStats struct {
	TableID      uint8
	Pad          [3]uint8
	ActiveCount  uint32
	LookupCount  uint64
	MatchedCount uint64
}

type TableStats struct {
	d ofpTableStats
}

func NewTableStats(tableID uint8, activeCount uint32, lookupCount, matchedCount uint64) TableStats {
	return TableStats{ofpTableStats{
		TableID:      tableID,
		ActiveCount:  activeCount,
		LookupCount:  lookupCount,
		MatchedCount: matchedCount,
	}}
}

func (s TableStats) TableID() uint8          { return s.d.TableID }
func (s TableStats) ActiveCount() uint32     { return s.d.ActiveCount }
func (s TableStats) LookupCount() uint64     { return s.d.LookupCount }
func (s TableStats) MatchedCount() uint64    { return s.d.MatchedCount }
func (s TableStats) Length() int             { return 24 }
func (s TableStats) ByteLength() int         { return 24 }
func (s TableStats) Encode(b []byte) []byte  { return wire.Append(b, &s.d) }
func (s TableStats) Equal(o TableStats) bool { return s == o }

func (s TableStats) Equivalent(o TableStats) bool {
	p, q := s.d, o.d
	p.Pad, q.Pad = [3]uint8{}, [3]uint8{}
	return p == q
}

func DecodeTableStats(d *wire.Decoder) (TableStats, error) {
	var s TableStats
	if err := decodeStruct(d, &s.d); err != nil {
		return TableStats{}, err
	}
	return s, nil
}

type TableStatsList = wire.List[TableStats]

type TableStatsReply struct {
	stats TableStatsList
}

func NewTableStatsReply(stats ...TableStats) TableStatsReply {
	return TableStatsReply{append(TableStatsList{}, stats...)}
}

func (r TableStatsReply) Stats() TableStatsList        { return r.stats.Clone() }
func (r TableStatsReply) MultipartType() MultipartType { return MultipartTable }
func (r TableStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r TableStatsReply) ByteLength() int              { return r.Length() }
func (r TableStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r TableStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(TableStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r TableStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(TableStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (TableStatsReply) isMultipartReplyBody() {}

func decodeTableStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[TableStats](d, DecodeTableStats)
	if err != nil {
		return nil, err
	}
	return TableStatsReply{stats}, nil
}

// PortCounters are the counters of a port stats entry.
type PortCounters struct {
	RxPackets  uint64
	TxPackets  uint64
	RxBytes    uint64
	TxBytes    uint64
	RxDropped  uint64
	TxDropped  uint64
	RxErrors   uint64
	TxErrors   uint64
	RxFrameErr uint64
	RxOverErr  uint64
	RxCrcErr   uint64
	Collisions uint64
}

type ofpPortStats struct {
	PortNo       uint32
	Pad          [4]uint8
	Counters     PortCounters
	DurationSec  uint32
	DurationNsec uint32
}

type PortStats struct {
	d ofpPortStats
}

func NewPortStats(portNo uint32, counters PortCounters, durationSec, durationNsec uint32) PortStats {
	return PortStats{ofpPortStats{
		PortNo:       portNo,
		Counters:     counters,
		DurationSec:  durationSec,
		DurationNsec: durationNsec,
	}}
}

func (s PortStats) PortNo() uint32         { return s.d.PortNo }
func (s PortStats) Counters() PortCounters { return s.d.Counters }
func (s PortStats) DurationSec() uint32    { return s.d.DurationSec }
func (s PortStats) DurationNsec() uint32   { return s.d.DurationNsec }
func (s PortStats) Length() int            { return 112 }
func (s PortStats) ByteLength() int        { return 112 }
func (s PortStats) Encode(b []byte) []byte { return wire.Append(b, &s.d) }
func (s PortStats) Equal(o PortStats) bool { return s == o }

func (s PortStats) Equivalent(o PortStats) bool {
	p, q := s.d, o.d
	p.Pad, q.Pad = [4]uint8{}, [4]uint8{}
	return p == q
}

func DecodePortStats(d *wire.Decoder) (PortStats, error) {
	var s PortStats
	if err := decodeStruct(d, &s.d); err != nil {
		return PortStats{}, err
	}
	return s, nil
}

type PortStatsList = wire.List[PortStats]

type PortStatsReply struct {
	stats PortStatsList
}

func NewPortStatsReply(stats ...PortStats) PortStatsReply {
	return PortStatsReply{append(PortStatsList{}, stats...)}
}

func (r PortStatsReply) Stats() PortStatsList         { return r.stats.Clone() }
func (r PortStatsReply) MultipartType() MultipartType { return MultipartPortStats }
func (r PortStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r PortStatsReply) ByteLength() int              { return r.Length() }
func (r PortStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r PortStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(PortStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r PortStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(PortStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (PortStatsReply) isMultipartReplyBody() {}

func decodePortStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[PortStats](d, DecodePortStats)
	if err != nil {
		return nil, err
	}
	return PortStatsReply{stats}, nil
}

type ofpQueueStats struct {
	PortNo       uint32
	QueueID      uint32
	TxBytes      uint64
	TxPackets    uint64
	TxErrors     uint64
	DurationSec  uint32
	DurationNsec uint32
}

type QueueStats struct {
	d ofpQueueStats
}

func NewQueueStats(portNo, queueID uint32, txBytes, txPackets, txErrors uint64, durationSec, durationNsec uint32) QueueStats {
	return QueueStats{ofpQueueStats{
		PortNo:       portNo,
		QueueID:      queueID,
		TxBytes:      txBytes,
		TxPackets:    txPackets,
		TxErrors:     txErrors,
		DurationSec:  durationSec,
		DurationNsec: durationNsec,
	}}
}

func (s QueueStats) PortNo() uint32               { return s.d.PortNo }
func (s QueueStats) QueueID() uint32              { return s.d.QueueID }
func (s QueueStats) TxBytes() uint64              { return s.d.TxBytes }
func (s QueueStats) TxPackets() uint64            { return s.d.TxPackets }
func (s QueueStats) TxErrors() uint64             { return s.d.TxErrors }
func (s QueueStats) DurationSec() uint32          { return s.d.DurationSec }
func (s QueueStats) DurationNsec() uint32         { return s.d.DurationNsec }
func (s QueueStats) Length() int                  { return 40 }
func (s QueueStats) ByteLength() int              { return 40 }
func (s QueueStats) Encode(b []byte) []byte       { return wire.Append(b, &s.d) }
func (s QueueStats) Equal(o QueueStats) bool      { return s == o }
func (s QueueStats) Equivalent(o QueueStats) bool { return s == o }

func DecodeQueueStats(d *wire.Decoder) (QueueStats, error) {
	var s QueueStats
	if err := decodeStruct(d, &s.d); err != nil {
		return QueueStats{}, err
	}
	return s, nil
}

type QueueStatsList = wire.List[QueueStats]

type QueueStatsReply struct {
	stats QueueStatsList
}

func NewQueueStatsReply(stats ...QueueStats) QueueStatsReply {
	return QueueStatsReply{append(QueueStatsList{}, stats...)}
}

func (r QueueStatsReply) Stats() QueueStatsList        { return r.stats.Clone() }
func (r QueueStatsReply) MultipartType() MultipartType { return MultipartQueue }
func (r QueueStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r QueueStatsReply) ByteLength() int              { return r.Length() }
func (r QueueStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r QueueStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(QueueStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r QueueStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(QueueStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (QueueStatsReply) isMultipartReplyBody() {}

func decodeQueueStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[QueueStats](d, DecodeQueueStats)
	if err != nil {
		return nil, err
	}
	return QueueStatsReply{stats}, nil
}

// BucketCounter counts the traffic handled by one group bucket.
type BucketCounter struct {
	PacketCount uint64
	ByteCount   uint64
}

func (c BucketCounter) Length() int                     { return 16 }
func (c BucketCounter) ByteLength() int                 { return 16 }
func (c BucketCounter) Encode(b []byte) []byte          { return wire.Append(b, &c) }
func (c BucketCounter) Equal(o BucketCounter) bool      { return c == o }
func (c BucketCounter) Equivalent(o BucketCounter) bool { return c == o }

func DecodeBucketCounter(d *wire.Decoder) (BucketCounter, error) {
	var c BucketCounter
	if err := decodeStruct(d, &c); err != nil {
		return BucketCounter{}, err
	}
	return c, nil
}

type BucketCounterList = wire.List[BucketCounter]

type ofpGroupStats struct {
	Length       uint16
	Pad          [2]uint8
	GroupID      uint32
	RefCount     uint32
	Pad2         [4]uint8
	PacketCount  uint64
	ByteCount    uint64
	DurationSec  uint32
	DurationNsec uint32
}

const groupStatsLen = 40

type GroupStats struct {
	d        ofpGroupStats
	counters BucketCounterList
}

func NewGroupStats(groupID, refCount uint32, packetCount, byteCount uint64, durationSec, durationNsec uint32, counters ...BucketCounter) GroupStats {
	return GroupStats{
		d: ofpGroupStats{
			GroupID:      groupID,
			RefCount:     refCount,
			PacketCount:  packetCount,
			ByteCount:    byteCount,
			DurationSec:  durationSec,
			DurationNsec: durationNsec,
		},
		counters: append(BucketCounterList{}, counters...),
	}
}

func (s GroupStats) GroupID() uint32                { return s.d.GroupID }
func (s GroupStats) RefCount() uint32               { return s.d.RefCount }
func (s GroupStats) PacketCount() uint64            { return s.d.PacketCount }
func (s GroupStats) ByteCount() uint64              { return s.d.ByteCount }
func (s GroupStats) DurationSec() uint32            { return s.d.DurationSec }
func (s GroupStats) DurationNsec() uint32           { return s.d.DurationNsec }
func (s GroupStats) BucketStats() BucketCounterList { return s.counters.Clone() }
func (s GroupStats) Length() int                    { return groupStatsLen + s.counters.ByteLength() }
func (s GroupStats) ByteLength() int                { return s.Length() }

func (s GroupStats) Encode(b []byte) []byte {
	d := s.d
	d.Length = uint16(s.Length())
	b = wire.Append(b, &d)
	return s.counters.Encode(b)
}

func (s GroupStats) Equal(o GroupStats) bool {
	p, q := s.d, o.d
	p.Length, q.Length = 0, 0
	return p == q && s.counters.Equal(o.counters)
}

func (s GroupStats) Equivalent(o GroupStats) bool {
	p, q := s.d, o.d
	p.Length, p.Pad, p.Pad2 = 0, [2]uint8{}, [4]uint8{}
	q.Length, q.Pad, q.Pad2 = 0, [2]uint8{}, [4]uint8{}
	return p == q && s.counters.Equivalent(o.counters)
}

func DecodeGroupStats(d *wire.Decoder) (GroupStats, error) {
	var s GroupStats
	body, err := openRecord(d, "group_stats", 0, groupStatsLen)
	if err != nil {
		return s, err
	}
	if err := decodeStruct(body, &s.d); err != nil {
		return s, err
	}
	if s.counters, err = wire.DecodeList[BucketCounter](body, DecodeBucketCounter); err != nil {
		return GroupStats{}, err
	}
	return s, nil
}

type GroupStatsList = wire.List[GroupStats]

type GroupStatsReply struct {
	stats GroupStatsList
}

func NewGroupStatsReply(stats ...GroupStats) GroupStatsReply {
	return GroupStatsReply{append(GroupStatsList{}, stats...)}
}

func (r GroupStatsReply) Stats() GroupStatsList        { return r.stats.Clone() }
func (r GroupStatsReply) MultipartType() MultipartType { return MultipartGroup }
func (r GroupStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r GroupStatsReply) ByteLength() int              { return r.Length() }
func (r GroupStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r GroupStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(GroupStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r GroupStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(GroupStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (GroupStatsReply) isMultipartReplyBody() {}

func decodeGroupStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[GroupStats](d, DecodeGroupStats)
	if err != nil {
		return nil, err
	}
	return GroupStatsReply{stats}, nil
}

type ofpGroupDesc struct {
	Length  uint16
	Type    uint8
	Pad     uint8
	GroupID uint32
}

const groupDescLen = 8

type GroupDesc struct {
	d       ofpGroupDesc
	buckets BucketList
}

func NewGroupDesc(groupType uint8, groupID uint32, buckets ...Bucket) GroupDesc {
	return GroupDesc{
		d:       ofpGroupDesc{Type: groupType, GroupID: groupID},
		buckets: append(BucketList{}, buckets...),
	}
}

func (g GroupDesc) GroupType() uint8    { return g.d.Type }
func (g GroupDesc) GroupID() uint32     { return g.d.GroupID }
func (g GroupDesc) Buckets() BucketList { return g.buckets.Clone() }
func (g GroupDesc) Length() int         { return groupDescLen + g.buckets.ByteLength() }
func (g GroupDesc) ByteLength() int     { return g.Length() }

func (g GroupDesc) Encode(b []byte) []byte {
	d := g.d
	d.Length = uint16(g.Length())
	b = wire.Append(b, &d)
	return g.buckets.Encode(b)
}

func (g GroupDesc) Equal(o GroupDesc) bool {
	p, q := g.d, o.d
	p.Length, q.Length = 0, 0
	return p == q && g.buckets.Equal(o.buckets)
}

func (g GroupDesc) Equivalent(o GroupDesc) bool {
	return g.d.Type == o.d.Type && g.d.GroupID == o.d.GroupID && g.buckets.Equivalent(o.buckets)
}

func DecodeGroupDesc(d *wire.Decoder) (GroupDesc, error) {
	var g GroupDesc
	body, err := openRecord(d, "group_desc", 0, groupDescLen)
	if err != nil {
		return g, err
	}
	if err := decodeStruct(body, &g.d); err != nil {
		return g, err
	}
	if g.buckets, err = DecodeBuckets(body); err != nil {
		return GroupDesc{}, err
	}
	return g, nil
}

type GroupDescList = wire.List[GroupDesc]

type GroupDescReply struct {
	groups GroupDescList
}

func NewGroupDescReply(groups ...GroupDesc) GroupDescReply {
	return GroupDescReply{append(GroupDescList{}, groups...)}
}

func (r GroupDescReply) Groups() GroupDescList        { return r.groups.Clone() }
func (r GroupDescReply) MultipartType() MultipartType { return MultipartGroupDesc }
func (r GroupDescReply) Length() int                  { return r.groups.ByteLength() }
func (r GroupDescReply) ByteLength() int              { return r.Length() }
func (r GroupDescReply) Encode(b []byte) []byte       { return r.groups.Encode(b) }

func (r GroupDescReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(GroupDescReply)
	return ok && r.groups.Equal(x.groups)
}

func (r GroupDescReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(GroupDescReply)
	return ok && r.groups.Equivalent(x.groups)
}

func (GroupDescReply) isMultipartReplyBody() {}

func decodeGroupDescReply(d *wire.Decoder) (MultipartReplyBody, error) {
	groups, err := wire.DecodeList[GroupDesc](d, DecodeGroupDesc)
	if err != nil {
		return nil, err
	}
	return GroupDescReply{groups}, nil
}

// GroupFeatures lists the group types and capabilities of a switch. The
// arrays are indexed by group type.
type GroupFeatures struct {
	Types        uint32
	Capabilities uint32
	MaxGroups    [4]uint32
	Actions      [4]uint32
}

type GroupFeaturesReply struct {
	d GroupFeatures
}

func NewGroupFeaturesReply(features GroupFeatures) GroupFeaturesReply {
	return GroupFeaturesReply{features}
}

func (r GroupFeaturesReply) Features() GroupFeatures      { return r.d }
func (r GroupFeaturesReply) MultipartType() MultipartType { return MultipartGroupFeatures }
func (r GroupFeaturesReply) Length() int                  { return 40 }
func (r GroupFeaturesReply) ByteLength() int              { return 40 }
func (r GroupFeaturesReply) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r GroupFeaturesReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(GroupFeaturesReply)
	return ok && r == x
}

func (r GroupFeaturesReply) Equivalent(o MultipartReplyBody) bool { return r.Equal(o) }
func (GroupFeaturesReply) isMultipartReplyBody()                  {}

func decodeGroupFeaturesReply(d *wire.Decoder) (MultipartReplyBody, error) {
	var r GroupFeaturesReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, multipartFamily.Truncated(40, d.Len())
	}
	return r, nil
}

// MeterBandStats counts the traffic handled by one meter band.
type MeterBandStats struct {
	PacketBandCount uint64
	ByteBandCount   uint64
}

func (c MeterBandStats) Length() int                      { return 16 }
func (c MeterBandStats) ByteLength() int                  { return 16 }
func (c MeterBandStats) Encode(b []byte) []byte           { return wire.Append(b, &c) }
func (c MeterBandStats) Equal(o MeterBandStats) bool      { return c == o }
func (c MeterBandStats) Equivalent(o MeterBandStats) bool { return c == o }

func DecodeMeterBandStats(d *wire.Decoder) (MeterBandStats, error) {
	var c MeterBandStats
	if err := decodeStruct(d, &c); err != nil {
		return MeterBandStats{}, err
	}
	return c, nil
}

type MeterBandStatsList = wire.List[MeterBandStats]

type ofpMeterStats struct {
	MeterID       uint32
	Len           uint16
	Pad           [6]uint8
	FlowCount     uint32
	PacketInCount uint64
	ByteInCount   uint64
	DurationSec   uint32
	DurationNsec  uint32
}

const meterStatsLen = 40

type MeterStats struct {
	d     ofpMeterStats
	bands MeterBandStatsList
}

func NewMeterStats(meterID, flowCount uint32, packetInCount, byteInCount uint64, durationSec, durationNsec uint32, bands ...MeterBandStats) MeterStats {
	return MeterStats{
		d: ofpMeterStats{
			MeterID:       meterID,
			FlowCount:     flowCount,
			PacketInCount: packetInCount,
			ByteInCount:   byteInCount,
			DurationSec:   durationSec,
			DurationNsec:  durationNsec,
		},
		bands: append(MeterBandStatsList{}, bands...),
	}
}

func (s MeterStats) MeterID() uint32               { return s.d.MeterID }
func (s MeterStats) FlowCount() uint32             { return s.d.FlowCount }
func (s MeterStats) PacketInCount() uint64         { return s.d.PacketInCount }
func (s MeterStats) ByteInCount() uint64           { return s.d.ByteInCount }
func (s MeterStats) DurationSec() uint32           { return s.d.DurationSec }
func (s MeterStats) DurationNsec() uint32          { return s.d.DurationNsec }
func (s MeterStats) BandStats() MeterBandStatsList { return s.bands.Clone() }
func (s MeterStats) Length() int                   { return meterStatsLen + s.bands.ByteLength() }
func (s MeterStats) ByteLength() int               { return s.Length() }

func (s MeterStats) Encode(b []byte) []byte {
	d := s.d
	d.Len = uint16(s.Length())
	b = wire.Append(b, &d)
	return s.bands.Encode(b)
}

func (s MeterStats) Equal(o MeterStats) bool {
	p, q := s.d, o.d
	p.Len, q.Len = 0, 0
	return p == q && s.bands.Equal(o.bands)
}

func (s MeterStats) Equivalent(o MeterStats) bool {
	p, q := s.d, o.d
	p.Len, p.Pad = 0, [6]uint8{}
	q.Len, q.Pad = 0, [6]uint8{}
	return p == q && s.bands.Equivalent(o.bands)
}

func DecodeMeterStats(d *wire.Decoder) (MeterStats, error) {
	var s MeterStats
	body, err := openRecord(d, "meter_stats", 4, meterStatsLen)
	if err != nil {
		return s, err
	}
	if err := decodeStruct(body, &s.d); err != nil {
		return s, err
	}
	if s.bands, err = wire.DecodeList[MeterBandStats](body, DecodeMeterBandStats); err != nil {
		return MeterStats{}, err
	}
	return s, nil
}

type MeterStatsList = wire.List[MeterStats]

type MeterStatsReply struct {
	stats MeterStatsList
}

func NewMeterStatsReply(stats ...MeterStats) MeterStatsReply {
	return MeterStatsReply{append(MeterStatsList{}, stats...)}
}

func (r MeterStatsReply) Stats() MeterStatsList        { return r.stats.Clone() }
func (r MeterStatsReply) MultipartType() MultipartType { return MultipartMeter }
func (r MeterStatsReply) Length() int                  { return r.stats.ByteLength() }
func (r MeterStatsReply) ByteLength() int              { return r.Length() }
func (r MeterStatsReply) Encode(b []byte) []byte       { return r.stats.Encode(b) }

func (r MeterStatsReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(MeterStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r MeterStatsReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(MeterStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (MeterStatsReply) isMultipartReplyBody() {}

func decodeMeterStatsReply(d *wire.Decoder) (MultipartReplyBody, error) {
	stats, err := wire.DecodeList[MeterStats](d, DecodeMeterStats)
	if err != nil {
		return nil, err
	}
	return MeterStatsReply{stats}, nil
}

type ofpMeterConfig struct {
	Length  uint16
	Flags   uint16
	MeterID uint32
}

const meterConfigLen = 8

type MeterConfig struct {
	d     ofpMeterConfig
	bands MeterBandList
}

func NewMeterConfig(flags uint16, meterID uint32, bands ...MeterBand) MeterConfig {
	return MeterConfig{
		d:     ofpMeterConfig{Flags: flags, MeterID: meterID},
		bands: append(MeterBandList{}, bands...),
	}
}

func (c MeterConfig) Flags() uint16        { return c.d.Flags }
func (c MeterConfig) MeterID() uint32      { return c.d.MeterID }
func (c MeterConfig) Bands() MeterBandList { return c.bands.Clone() }
func (c MeterConfig) Length() int          { return meterConfigLen + c.bands.ByteLength() }
func (c MeterConfig) ByteLength() int      { return c.Length() }

func (c MeterConfig) Encode(b []byte) []byte {
	d := c.d
	d.Length = uint16(c.Length())
	b = wire.Append(b, &d)
	return c.bands.Encode(b)
}

func (c MeterConfig) Equal(o MeterConfig) bool {
	return c.d.Flags == o.d.Flags && c.d.MeterID == o.d.MeterID && c.bands.Equal(o.bands)
}

func (c MeterConfig) Equivalent(o MeterConfig) bool {
	return c.d.Flags == o.d.Flags && c.d.MeterID == o.d.MeterID && c.bands.Equivalent(o.bands)
}

func DecodeMeterConfig(d *wire.Decoder) (MeterConfig, error) {
	var c MeterConfig
	body, err := openRecord(d, "meter_config", 0, meterConfigLen)
	if err != nil {
		return c, err
	}
	if err := decodeStruct(body, &c.d); err != nil {
		return c, err
	}
	if c.bands, err = meterBands.DecodeList(body); err != nil {
		return MeterConfig{}, err
	}
	return c, nil
}

type MeterConfigList = wire.List[MeterConfig]

type MeterConfigReply struct {
	configs MeterConfigList
}

func NewMeterConfigReply(configs ...MeterConfig) MeterConfigReply {
	return MeterConfigReply{append(MeterConfigList{}, configs...)}
}

func (r MeterConfigReply) Configs() MeterConfigList     { return r.configs.Clone() }
func (r MeterConfigReply) MultipartType() MultipartType { return MultipartMeterConfig }
func (r MeterConfigReply) Length() int                  { return r.configs.ByteLength() }
func (r MeterConfigReply) ByteLength() int              { return r.Length() }
func (r MeterConfigReply) Encode(b []byte) []byte       { return r.configs.Encode(b) }

func (r MeterConfigReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(MeterConfigReply)
	return ok && r.configs.Equal(x.configs)
}

func (r MeterConfigReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(MeterConfigReply)
	return ok && r.configs.Equivalent(x.configs)
}

func (MeterConfigReply) isMultipartReplyBody() {}

func decodeMeterConfigReply(d *wire.Decoder) (MultipartReplyBody, error) {
	configs, err := wire.DecodeList[MeterConfig](d, DecodeMeterConfig)
	if err != nil {
		return nil, err
	}
	return MeterConfigReply{configs}, nil
}

type ofpMeterFeatures struct {
	MaxMeter     uint32
	BandTypes    uint32
	Capabilities uint32
	MaxBands     uint8
	MaxColor     uint8
	Pad          [2]uint8
}

type MeterFeaturesReply struct {
	d ofpMeterFeatures
}

func NewMeterFeaturesReply(maxMeter, bandTypes, capabilities uint32, maxBands, maxColor uint8) MeterFeaturesReply {
	return MeterFeaturesReply{ofpMeterFeatures{
		MaxMeter:     maxMeter,
		BandTypes:    bandTypes,
		Capabilities: capabilities,
		MaxBands:     maxBands,
		MaxColor:     maxColor,
	}}
}

func (r MeterFeaturesReply) MaxMeter() uint32             { return r.d.MaxMeter }
func (r MeterFeaturesReply) BandTypes() uint32            { return r.d.BandTypes }
func (r MeterFeaturesReply) Capabilities() uint32         { return r.d.Capabilities }
func (r MeterFeaturesReply) MaxBands() uint8              { return r.d.MaxBands }
func (r MeterFeaturesReply) MaxColor() uint8              { return r.d.MaxColor }
func (r MeterFeaturesReply) MultipartType() MultipartType { return MultipartMeterFeatures }
func (r MeterFeaturesReply) Length() int                  { return 16 }
func (r MeterFeaturesReply) ByteLength() int              { return 16 }
func (r MeterFeaturesReply) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r MeterFeaturesReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(MeterFeaturesReply)
	return ok && r == x
}

func (r MeterFeaturesReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(MeterFeaturesReply)
	if !ok {
		return false
	}
	p, q := r.d, x.d
	p.Pad, q.Pad = [2]uint8{}, [2]uint8{}
	return p == q
}

func (MeterFeaturesReply) isMultipartReplyBody() {}

func decodeMeterFeaturesReply(d *wire.Decoder) (MultipartReplyBody, error) {
	var r MeterFeaturesReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, multipartFamily.Truncated(16, d.Len())
	}
	return r, nil
}

type TableFeaturesReply struct {
	features TableFeaturesList
}

func NewTableFeaturesReply(features ...TableFeatures) TableFeaturesReply {
	return TableFeaturesReply{append(TableFeaturesList{}, features...)}
}

func (r TableFeaturesReply) Features() TableFeaturesList  { return r.features.Clone() }
func (r TableFeaturesReply) MultipartType() MultipartType { return MultipartTableFeatures }
func (r TableFeaturesReply) Length() int                  { return r.features.ByteLength() }
func (r TableFeaturesReply) ByteLength() int              { return r.Length() }
func (r TableFeaturesReply) Encode(b []byte) []byte       { return r.features.Encode(b) }

func (r TableFeaturesReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(TableFeaturesReply)
	return ok && r.features.Equal(x.features)
}

func (r TableFeaturesReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(TableFeaturesReply)
	return ok && r.features.Equivalent(x.features)
}

func (TableFeaturesReply) isMultipartReplyBody() {}

func decodeTableFeaturesReply(d *wire.Decoder) (MultipartReplyBody, error) {
	features, err := DecodeTableFeaturesList(d)
	if err != nil {
		return nil, err
	}
	return TableFeaturesReply{features}, nil
}

type PortDescReply struct {
	ports PortList
}

func NewPortDescReply(ports ...Port) PortDescReply {
	return PortDescReply{append(PortList{}, ports...)}
}

func (r PortDescReply) Ports() PortList              { return r.ports.Clone() }
func (r PortDescReply) MultipartType() MultipartType { return MultipartPortDesc }
func (r PortDescReply) Length() int                  { return r.ports.ByteLength() }
func (r PortDescReply) ByteLength() int              { return r.Length() }
func (r PortDescReply) Encode(b []byte) []byte       { return r.ports.Encode(b) }

func (r PortDescReply) Equal(o MultipartReplyBody) bool {
	x, ok := o.(PortDescReply)
	return ok && r.ports.Equal(x.ports)
}

func (r PortDescReply) Equivalent(o MultipartReplyBody) bool {
	x, ok := o.(PortDescReply)
	return ok && r.ports.Equivalent(x.ports)
}

func (PortDescReply) isMultipartReplyBody() {}

func decodePortDescReply(d *wire.Decoder) (MultipartReplyBody, error) {
	ports, err := DecodePorts(d)
	if err != nil {
		return nil, err
	}
	return PortDescReply{ports}, nil
}
