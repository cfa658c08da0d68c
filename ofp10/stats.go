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
	"fmt"

	"github.com/k-vswitch/ofproto/wire"
)

type StatsType uint16

const (
	StatsDesc      StatsType = 0
	StatsFlow      StatsType = 1
	StatsAggregate StatsType = 2
	StatsTable     StatsType = 3
	StatsPort      StatsType = 4
	StatsQueue     StatsType = 5
	StatsVendor    StatsType = 0xffff
)

var statsTypeNames = map[StatsType]string{
	StatsDesc:      "desc",
	StatsFlow:      "flow",
	StatsAggregate: "aggregate",
	StatsTable:     "table",
	StatsPort:      "port",
	StatsQueue:     "queue",
	StatsVendor:    "vendor",
}

func (t StatsType) String() string {
	if name, ok := statsTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("stats(%#x)", uint16(t))
}

type StatsRequestBody interface {
	StatsType() StatsType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other StatsRequestBody) bool
	Equivalent(other StatsRequestBody) bool
	isStatsRequestBody()
}

type StatsReplyBody interface {
	StatsType() StatsType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other StatsReplyBody) bool
	Equivalent(other StatsReplyBody) bool
	isStatsReplyBody()
}

var (
	statsRequests = wire.NewDispatcher[StatsRequestBody](statsFamily, map[uint32]wire.DecodeFunc[StatsRequestBody]{
		uint32(StatsDesc):      emptyRequestDecoder(StatsDesc),
		uint32(StatsFlow):      decodeFlowStatsRequest,
		uint32(StatsAggregate): decodeAggregateStatsRequest,
		uint32(StatsTable):     emptyRequestDecoder(StatsTable),
		uint32(StatsPort):      decodePortStatsRequest,
		uint32(StatsQueue):     decodeQueueStatsRequest,
	})

	statsReplies = wire.NewDispatcher[StatsReplyBody](statsFamily, map[uint32]wire.DecodeFunc[StatsReplyBody]{
		uint32(StatsDesc):      decodeDescReply,
		uint32(StatsFlow):      decodeFlowStatsReply,
		uint32(StatsAggregate): decodeAggregateStatsReply,
		uint32(StatsTable):     decodeTableStatsReply,
		uint32(StatsPort):      decodePortStatsReply,
		uint32(StatsQueue):     decodeQueueStatsReply,
	})
)

type ofpStatsHeader struct {
	Type  uint16
	Flags uint16
}

const statsLen = HeaderLen + 4

type statsHeader struct {
	xid uint32
	d   ofpStatsHeader
}

func (m statsHeader) Xid() uint32          { return m.xid }
func (m statsHeader) Flags() uint16        { return m.d.Flags }
func (m statsHeader) StatsType() StatsType { return StatsType(m.d.Type) }

func openStats(d *wire.Decoder, t MessageType) (statsHeader, *wire.Decoder, error) {
	xid, body, err := openMessage(d, t)
	if err != nil {
		return statsHeader{}, nil, err
	}
	m := statsHeader{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return statsHeader{}, nil, messageFamily.Truncated(statsLen, HeaderLen+body.Len())
	}
	return m, body, nil
}

func checkConsumed(body *wire.Decoder, t StatsType) error {
	if body.Len() != 0 {
		return wire.NewError(statsFamily.BadLen, "%d bytes follow the %s body", body.Len(), t)
	}
	return nil
}

type StatsRequest struct {
	statsHeader
	body StatsRequestBody
}

func NewStatsRequest(xid uint32, flags uint16, body StatsRequestBody) StatsRequest {
	return StatsRequest{
		statsHeader: statsHeader{xid: xid, d: ofpStatsHeader{Type: uint16(body.StatsType()), Flags: flags}},
		body:  body,
	}
}

func (m StatsRequest) Body() StatsRequestBody { return m.body }
func (m StatsRequest) Type() MessageType      { return TypeStatsRequest }
func (m StatsRequest) Length() int            { return statsLen + m.body.ByteLength() }
func (m StatsRequest) ByteLength() int        { return m.Length() }

func (m StatsRequest) Encode(b []byte) []byte {
	b = appendHeader(b, TypeStatsRequest, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.body.Encode(b)
}

func (m StatsRequest) Equal(o Message) bool {
	x, ok := o.(StatsRequest)
	return ok && m.statsHeader == x.statsHeader && m.body.Equal(x.body)
}

func (m StatsRequest) Equivalent(o Message) bool {
	x, ok := o.(StatsRequest)
	return ok && m.statsHeader == x.statsHeader && m.body.Equivalent(x.body)
}

func (StatsRequest) isMessage() {}

func decodeStatsRequest(d *wire.Decoder) (Message, error) {
	st, body, err := openStats(d, TypeStatsRequest)
	if err != nil {
		return nil, err
	}
	m := StatsRequest{statsHeader: st}
	if m.body, err = statsRequests.Dispatch(uint32(st.d.Type), body); err != nil {
		return nil, err
	}
	if err := checkConsumed(body, st.StatsType()); err != nil {
		return nil, err
	}
	return m, nil
}

type StatsReply struct {
	statsHeader
	body StatsReplyBody
}

func NewStatsReply(xid uint32, flags uint16, body StatsReplyBody) StatsReply {
	return StatsReply{
		statsHeader: statsHeader{xid: xid, d: ofpStatsHeader{Type: uint16(body.StatsType()), Flags: flags}},
		body:  body,
	}
}

func (m StatsReply) Body() StatsReplyBody { return m.body }
func (m StatsReply) More() bool           { return m.d.Flags&StatsReplyMore != 0 }
func (m StatsReply) Type() MessageType    { return TypeStatsReply }
func (m StatsReply) Length() int          { return statsLen + m.body.ByteLength() }
func (m StatsReply) ByteLength() int      { return m.Length() }

func (m StatsReply) Encode(b []byte) []byte {
	b = appendHeader(b, TypeStatsReply, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.body.Encode(b)
}

func (m StatsReply) Equal(o Message) bool {
	x, ok := o.(StatsReply)
	return ok && m.statsHeader == x.statsHeader && m.body.Equal(x.body)
}

func (m StatsReply) Equivalent(o Message) bool {
	x, ok := o.(StatsReply)
	return ok && m.statsHeader == x.statsHeader && m.body.Equivalent(x.body)
}

func (StatsReply) isMessage() {}

func decodeStatsReply(d *wire.Decoder) (Message, error) {
	st, body, err := openStats(d, TypeStatsReply)
	if err != nil {
		return nil, err
	}
	m := StatsReply{statsHeader: st}
	if m.body, err = statsReplies.Dispatch(uint32(st.d.Type), body); err != nil {
		return nil, err
	}
	if err := checkConsumed(body, st.StatsType()); err != nil {
		return nil, err
	}
	return m, nil
}

// EmptyRequest is the body of the desc and table requests.
type EmptyRequest struct {
	typ StatsType
}

func NewDescRequest() EmptyRequest       { return EmptyRequest{StatsDesc} }
func NewTableStatsRequest() EmptyRequest { return EmptyRequest{StatsTable} }

func (r EmptyRequest) StatsType() StatsType   { return r.typ }
func (r EmptyRequest) Length() int            { return 0 }
func (r EmptyRequest) ByteLength() int        { return 0 }
func (r EmptyRequest) Encode(b []byte) []byte { return b }

func (r EmptyRequest) Equal(o StatsRequestBody) bool {
	x, ok := o.(EmptyRequest)
	return ok && r == x
}

func (r EmptyRequest) Equivalent(o StatsRequestBody) bool { return r.Equal(o) }
func (EmptyRequest) isStatsRequestBody()                  {}

func emptyRequestDecoder(t StatsType) wire.DecodeFunc[StatsRequestBody] {
	return func(d *wire.Decoder) (StatsRequestBody, error) {
		return EmptyRequest{t}, nil
	}
}

type ofpFlowStatsRequest struct {
	Match   ofpMatch
	TableID uint8
	Pad     uint8
	OutPort uint16
}

// flowQuery is the selection shared by flow and aggregate requests.
type flowQuery struct {
	d ofpFlowStatsRequest
}

func newFlowQuery(match Match, tableID uint8, outPort uint16) flowQuery {
	return flowQuery{ofpFlowStatsRequest{Match: match.d, TableID: tableID, OutPort: outPort}}
}

func (q flowQuery) Match() Match           { return Match{q.d.Match} }
func (q flowQuery) TableID() uint8         { return q.d.TableID }
func (q flowQuery) OutPort() uint16        { return q.d.OutPort }
func (q flowQuery) Length() int            { return 44 }
func (q flowQuery) ByteLength() int        { return 44 }
func (q flowQuery) Encode(b []byte) []byte { return wire.Append(b, &q.d) }

func (q flowQuery) equivalent(o flowQuery) bool {
	p, r := q.d, o.d
	p.Pad, r.Pad = 0, 0
	p.Match, r.Match = p.Match.normalize(), r.Match.normalize()
	return p == r
}

func decodeFlowQuery(d *wire.Decoder) (flowQuery, error) {
	var q flowQuery
	if err := wire.Unpack(d, &q.d); err != nil {
		return q, statsFamily.Truncated(44, d.Len())
	}
	return q, nil
}

type FlowStatsRequest struct{ flowQuery }

// NewFlowStatsRequest selects the flows of tableID, or of every table with
// TableAll, that match and output to outPort, or to any port with PortNone.
func NewFlowStatsRequest(match Match, tableID uint8, outPort uint16) FlowStatsRequest {
	return FlowStatsRequest{newFlowQuery(match, tableID, outPort)}
}

func (r FlowStatsRequest) StatsType() StatsType { return StatsFlow }

func (r FlowStatsRequest) Equal(o StatsRequestBody) bool {
	x, ok := o.(FlowStatsRequest)
	return ok && r == x
}

func (r FlowStatsRequest) Equivalent(o StatsRequestBody) bool {
	x, ok := o.(FlowStatsRequest)
	return ok && r.equivalent(x.flowQuery)
}

func (FlowStatsRequest) isStatsRequestBody() {}

func decodeFlowStatsRequest(d *wire.Decoder) (StatsRequestBody, error) {
	q, err := decodeFlowQuery(d)
	if err != nil {
		return nil, err
	}
	return FlowStatsRequest{q}, nil
}

type AggregateStatsRequest struct{ flowQuery }

func NewAggregateStatsRequest(match Match, tableID uint8, outPort uint16) AggregateStatsRequest {
	return AggregateStatsRequest{newFlowQuery(match, tableID, outPort)}
}

func (r AggregateStatsRequest) StatsType() StatsType { return StatsAggregate }

func (r AggregateStatsRequest) Equal(o StatsRequestBody) bool {
	x, ok := o.(AggregateStatsRequest)
	return ok && r == x
}

func (r AggregateStatsRequest) Equivalent(o StatsRequestBody) bool {
	x, ok := o.(AggregateStatsRequest)
	return ok && r.equivalent(x.flowQuery)
}

func (AggregateStatsRequest) isStatsRequestBody() {}

func decodeAggregateStatsRequest(d *wire.Decoder) (StatsRequestBody, error) {
	q, err := decodeFlowQuery(d)
	if err != nil {
		return nil, err
	}
	return AggregateStatsRequest{q}, nil
}

type ofpPortStatsRequest struct {
	PortNo uint16
	Pad    [6]uint8
}

type PortStatsRequest struct {
	d ofpPortStatsRequest
}

// NewPortStatsRequest selects one port, or every port with PortNone.
func NewPortStatsRequest(portNo uint16) PortStatsRequest {
	return PortStatsRequest{ofpPortStatsRequest{PortNo: portNo}}
}

func (r PortStatsRequest) PortNo() uint16         { return r.d.PortNo }
func (r PortStatsRequest) StatsType() StatsType   { return StatsPort }
func (r PortStatsRequest) Length() int            { return 8 }
func (r PortStatsRequest) ByteLength() int        { return 8 }
func (r PortStatsRequest) Encode(b []byte) []byte { return wire.Append(b, &r.d) }

func (r PortStatsRequest) Equal(o StatsRequestBody) bool {
	x, ok := o.(PortStatsRequest)
	return ok && r == x
}

func (r PortStatsRequest) Equivalent(o StatsRequestBody) bool {
	x, ok := o.(PortStatsRequest)
	return ok && r.d.PortNo == x.d.PortNo
}

func (PortStatsRequest) isStatsRequestBody() {}

func decodePortStatsRequest(d *wire.Decoder) (StatsRequestBody, error) {
	var r PortStatsRequest
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, statsFamily.Truncated(8, d.Len())
	}
	return r, nil
}

type ofpQueueStatsRequest struct {
	PortNo  uint16
	Pad     [2]uint8
	QueueID uint32
}

type QueueStatsRequest struct {
	d ofpQueueStatsRequest
}

// NewQueueStatsRequest selects a queue of a port. PortAll and QueueAll
// widen the selection.
func NewQueueStatsRequest(portNo uint16, queueID uint32) QueueStatsRequest {
	return QueueStatsRequest{ofpQueueStatsRequest{PortNo: portNo, QueueID: queueID}}
}

func (r QueueStatsRequest) PortNo() uint16         { return r.d.PortNo }
func (r QueueStatsRequest) QueueID() uint32        { return r.d.QueueID }
func (r QueueStatsRequest) StatsType() StatsType   { return StatsQueue }
func (r QueueStatsRequest) Length() int            { return 8 }
func (r QueueStatsRequest) ByteLength() int        { return 8 }
func (r QueueStatsRequest) Encode(b []byte) []byte { return wire.Append(b, &r.d) }

func (r QueueStatsRequest) Equal(o StatsRequestBody) bool {
	x, ok := o.(QueueStatsRequest)
	return ok && r == x
}

func (r QueueStatsRequest) Equivalent(o StatsRequestBody) bool {
	x, ok := o.(QueueStatsRequest)
	return ok && r.d.PortNo == x.d.PortNo && r.d.QueueID == x.d.QueueID
}

func (QueueStatsRequest) isStatsRequestBody() {}

func decodeQueueStatsRequest(d *wire.Decoder) (StatsRequestBody, error) {
	var r QueueStatsRequest
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, statsFamily.Truncated(8, d.Len())
	}
	return r, nil
}

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

func (r DescReply) StatsType() StatsType   { return StatsDesc }
func (r DescReply) Length() int            { return descLen }
func (r DescReply) ByteLength() int        { return descLen }
func (r DescReply) Encode(b []byte) []byte { return wire.Append(b, &r.d) }

func (r DescReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(DescReply)
	return ok && r == x
}

func (r DescReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(DescReply)
	return ok && r.Desc() == x.Desc()
}

func (DescReply) isStatsReplyBody() {}

func decodeDescReply(d *wire.Decoder) (StatsReplyBody, error) {
	var r DescReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, statsFamily.Truncated(descLen, d.Len())
	}
	return r, nil
}

type ofpFlowStats struct {
	Length       uint16
	TableID      uint8
	Pad          uint8
	Match        ofpMatch
	DurationSec  uint32
	DurationNsec uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Pad2         [6]uint8
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
}

const flowStatsLen = 88

// FlowStats is one flow entry of a flow stats reply.
type FlowStats struct {
	d       ofpFlowStats
	actions ActionList
}

func NewFlowStats(tableID uint8, match Match, priority, idleTimeout, hardTimeout uint16, cookie uint64, counters FlowCounters, actions ...Action) FlowStats {
	return FlowStats{
		d: ofpFlowStats{
			TableID:      tableID,
			Match:        match.d,
			DurationSec:  counters.DurationSec,
			DurationNsec: counters.DurationNsec,
			Priority:     priority,
			IdleTimeout:  idleTimeout,
			HardTimeout:  hardTimeout,
			Cookie:       cookie,
			PacketCount:  counters.PacketCount,
			ByteCount:    counters.ByteCount,
		},
		actions: append(ActionList{}, actions...),
	}
}

func (s FlowStats) TableID() uint8      { return s.d.TableID }
func (s FlowStats) Match() Match        { return Match{s.d.Match} }
func (s FlowStats) Priority() uint16    { return s.d.Priority }
func (s FlowStats) IdleTimeout() uint16 { return s.d.IdleTimeout }
func (s FlowStats) HardTimeout() uint16 { return s.d.HardTimeout }
func (s FlowStats) Cookie() uint64      { return s.d.Cookie }
func (s FlowStats) Actions() ActionList { return s.actions.Clone() }
func (s FlowStats) Length() int         { return flowStatsLen + s.actions.ByteLength() }
func (s FlowStats) ByteLength() int     { return s.Length() }

func (s FlowStats) Counters() FlowCounters {
	return FlowCounters{
		DurationSec:  s.d.DurationSec,
		DurationNsec: s.d.DurationNsec,
		PacketCount:  s.d.PacketCount,
		ByteCount:    s.d.ByteCount,
	}
}

func (s FlowStats) Encode(b []byte) []byte {
	d := s.d
	d.Length = uint16(s.Length())
	b = wire.Append(b, &d)
	return s.actions.Encode(b)
}

func (s FlowStats) Equal(o FlowStats) bool {
	p, q := s.d, o.d
	p.Length, q.Length = 0, 0
	return p == q && s.actions.Equal(o.actions)
}

func (s FlowStats) Equivalent(o FlowStats) bool {
	p, q := s.d, o.d
	p.Length, p.Pad, p.Pad2, p.Match = 0, 0, [6]uint8{}, p.Match.normalize()
	q.Length, q.Pad, q.Pad2, q.Match = 0, 0, [6]uint8{}, q.Match.normalize()
	return p == q && s.actions.Equivalent(o.actions)
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
	if s.actions, err = actions.DecodeList(body); err != nil {
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

func (r FlowStatsReply) Stats() FlowStatsList   { return r.stats.Clone() }
func (r FlowStatsReply) StatsType() StatsType   { return StatsFlow }
func (r FlowStatsReply) Length() int            { return r.stats.ByteLength() }
func (r FlowStatsReply) ByteLength() int        { return r.Length() }
func (r FlowStatsReply) Encode(b []byte) []byte { return r.stats.Encode(b) }

func (r FlowStatsReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(FlowStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r FlowStatsReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(FlowStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (FlowStatsReply) isStatsReplyBody() {}

func decodeFlowStatsReply(d *wire.Decoder) (StatsReplyBody, error) {
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

func (r AggregateStatsReply) PacketCount() uint64    { return r.d.PacketCount }
func (r AggregateStatsReply) ByteCount() uint64      { return r.d.ByteCount }
func (r AggregateStatsReply) FlowCount() uint32      { return r.d.FlowCount }
func (r AggregateStatsReply) StatsType() StatsType   { return StatsAggregate }
func (r AggregateStatsReply) Length() int            { return 24 }
func (r AggregateStatsReply) ByteLength() int        { return 24 }
func (r AggregateStatsReply) Encode(b []byte) []byte { return wire.Append(b, &r.d) }

func (r AggregateStatsReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(AggregateStatsReply)
	return ok && r == x
}

func (r AggregateStatsReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(AggregateStatsReply)
	return ok && r.d.PacketCount == x.d.PacketCount && r.d.ByteCount == x.d.ByteCount &&
		r.d.FlowCount == x.d.FlowCount
}

func (AggregateStatsReply) isStatsReplyBody() {}

func decodeAggregateStatsReply(d *wire.Decoder) (StatsReplyBody, error) {
	var r AggregateStatsReply
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, statsFamily.Truncated(24, d.Len())
	}
	return r, nil
}

type ofpTableStats struct {
	TableID      uint8
	Pad          [3]uint8
	Name         [MaxTableNameLen]uint8
	Wildcards    uint32
	MaxEntries   uint32
	ActiveCount  uint32
	LookupCount  uint64
	MatchedCount uint64
}

const tableStatsLen = 64

type TableStats struct {
	d ofpTableStats
}

// NewTableStats truncates name to fit the 32 byte name field. wildcards
// are the match fields the table can wildcard.
func NewTableStats(tableID uint8, name string, wildcards, maxEntries, activeCount uint32, lookupCount, matchedCount uint64) TableStats {
	s := TableStats{ofpTableStats{
		TableID:      tableID,
		Wildcards:    wildcards,
		MaxEntries:   maxEntries,
		ActiveCount:  activeCount,
		LookupCount:  lookupCount,
		MatchedCount: matchedCount,
	}}
	wire.PutName(s.d.Name[:], name)
	return s
}

func (s TableStats) TableID() uint8          { return s.d.TableID }
func (s TableStats) Name() string            { return wire.Name(s.d.Name[:]) }
func (s TableStats) Wildcards() uint32       { return s.d.Wildcards }
func (s TableStats) MaxEntries() uint32      { return s.d.MaxEntries }
func (s TableStats) ActiveCount() uint32     { return s.d.ActiveCount }
func (s TableStats) LookupCount() uint64     { return s.d.LookupCount }
func (s TableStats) MatchedCount() uint64    { return s.d.MatchedCount }
func (s TableStats) Length() int             { return tableStatsLen }
func (s TableStats) ByteLength() int         { return tableStatsLen }
func (s TableStats) Encode(b []byte) []byte  { return wire.Append(b, &s.d) }
func (s TableStats) Equal(o TableStats) bool { return s == o }

func (s TableStats) Equivalent(o TableStats) bool {
	p, q := s.d, o.d
	p.Pad, q.Pad = [3]uint8{}, [3]uint8{}
	p.Name, q.Name = [MaxTableNameLen]uint8{}, [MaxTableNameLen]uint8{}
	return p == q && s.Name() == o.Name()
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

func (r TableStatsReply) Stats() TableStatsList  { return r.stats.Clone() }
func (r TableStatsReply) StatsType() StatsType   { return StatsTable }
func (r TableStatsReply) Length() int            { return r.stats.ByteLength() }
func (r TableStatsReply) ByteLength() int        { return r.Length() }
func (r TableStatsReply) Encode(b []byte) []byte { return r.stats.Encode(b) }

func (r TableStatsReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(TableStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r TableStatsReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(TableStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (TableStatsReply) isStatsReplyBody() {}

func decodeTableStatsReply(d *wire.Decoder) (StatsReplyBody, error) {
	stats, err := wire.DecodeList[TableStats](d, DecodeTableStats)
	if err != nil {
		return nil, err
	}
	return TableStatsReply{stats}, nil
}

// PortCounters are the counters of a port. Counters a switch does not
// support are all ones.
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
	PortNo   uint16
	Pad      [6]uint8
	Counters PortCounters
}

const portStatsLen = 104

type PortStats struct {
	d ofpPortStats
}

func NewPortStats(portNo uint16, counters PortCounters) PortStats {
	return PortStats{ofpPortStats{PortNo: portNo, Counters: counters}}
}

func (s PortStats) PortNo() uint16         { return s.d.PortNo }
func (s PortStats) Counters() PortCounters { return s.d.Counters }
func (s PortStats) Length() int            { return portStatsLen }
func (s PortStats) ByteLength() int        { return portStatsLen }
func (s PortStats) Encode(b []byte) []byte { return wire.Append(b, &s.d) }
func (s PortStats) Equal(o PortStats) bool { return s == o }

func (s PortStats) Equivalent(o PortStats) bool {
	return s.d.PortNo == o.d.PortNo && s.d.Counters == o.d.Counters
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

func (r PortStatsReply) Stats() PortStatsList   { return r.stats.Clone() }
func (r PortStatsReply) StatsType() StatsType   { return StatsPort }
func (r PortStatsReply) Length() int            { return r.stats.ByteLength() }
func (r PortStatsReply) ByteLength() int        { return r.Length() }
func (r PortStatsReply) Encode(b []byte) []byte { return r.stats.Encode(b) }

func (r PortStatsReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(PortStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r PortStatsReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(PortStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (PortStatsReply) isStatsReplyBody() {}

func decodePortStatsReply(d *wire.Decoder) (StatsReplyBody, error) {
	stats, err := wire.DecodeList[PortStats](d, DecodePortStats)
	if err != nil {
		return nil, err
	}
	return PortStatsReply{stats}, nil
}

type ofpQueueStats struct {
	PortNo    uint16
	Pad       [2]uint8
	QueueID   uint32
	TxBytes   uint64
	TxPackets uint64
	TxErrors  uint64
}

const queueStatsLen = 32

type QueueStats struct {
	d ofpQueueStats
}

func NewQueueStats(portNo uint16, queueID uint32, txBytes, txPackets, txErrors uint64) QueueStats {
	return QueueStats{ofpQueueStats{
		PortNo:    portNo,
		QueueID:   queueID,
		TxBytes:   txBytes,
		TxPackets: txPackets,
		TxErrors:  txErrors,
	}}
}

func (s QueueStats) PortNo() uint16          { return s.d.PortNo }
func (s QueueStats) QueueID() uint32         { return s.d.QueueID }
func (s QueueStats) TxBytes() uint64         { return s.d.TxBytes }
func (s QueueStats) TxPackets() uint64       { return s.d.TxPackets }
func (s QueueStats) TxErrors() uint64        { return s.d.TxErrors }
func (s QueueStats) Length() int             { return queueStatsLen }
func (s QueueStats) ByteLength() int         { return queueStatsLen }
func (s QueueStats) Encode(b []byte) []byte  { return wire.Append(b, &s.d) }
func (s QueueStats) Equal(o QueueStats) bool { return s == o }

func (s QueueStats) Equivalent(o QueueStats) bool {
	p, q := s.d, o.d
	p.Pad, q.Pad = [2]uint8{}, [2]uint8{}
	return p == q
}

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

func (r QueueStatsReply) Stats() QueueStatsList  { return r.stats.Clone() }
func (r QueueStatsReply) StatsType() StatsType   { return StatsQueue }
func (r QueueStatsReply) Length() int            { return r.stats.ByteLength() }
func (r QueueStatsReply) ByteLength() int        { return r.Length() }
func (r QueueStatsReply) Encode(b []byte) []byte { return r.stats.Encode(b) }

func (r QueueStatsReply) Equal(o StatsReplyBody) bool {
	x, ok := o.(QueueStatsReply)
	return ok && r.stats.Equal(x.stats)
}

func (r QueueStatsReply) Equivalent(o StatsReplyBody) bool {
	x, ok := o.(QueueStatsReply)
	return ok && r.stats.Equivalent(x.stats)
}

func (QueueStatsReply) isStatsReplyBody() {}

func decodeQueueStatsReply(d *wire.Decoder) (StatsReplyBody, error) {
	stats, err := wire.DecodeList[QueueStats](d, DecodeQueueStats)
	if err != nil {
		return nil, err
	}
	return QueueStatsReply{stats}, nil
}
