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
	"fmt"

	"github.com/k-vswitch/ofproto/wire"
)

type MultipartType uint16

const (
	MultipartDesc MultipartType = iota
	MultipartFlow
	MultipartAggregate
	MultipartTable
	MultipartPortStats
	MultipartQueue
	MultipartGroup
	MultipartGroupDesc
	MultipartGroupFeatures
	MultipartMeter
	MultipartMeterConfig
	MultipartMeterFeatures
	MultipartTableFeatures
	MultipartPortDesc
	MultipartExperimenter MultipartType = 0xffff
)

var multipartTypeNames = map[MultipartType]string{
	MultipartDesc:          "desc",
	MultipartFlow:          "flow",
	MultipartAggregate:     "aggregate",
	MultipartTable:         "table",
	MultipartPortStats:     "port_stats",
	MultipartQueue:         "queue",
	MultipartGroup:         "group",
	MultipartGroupDesc:     "group_desc",
	MultipartGroupFeatures: "group_features",
	MultipartMeter:         "meter",
	MultipartMeterConfig:   "meter_config",
	MultipartMeterFeatures: "meter_features",
	MultipartTableFeatures: "table_features",
	MultipartPortDesc:      "port_desc",
	MultipartExperimenter:  "experimenter",
}

func (t MultipartType) String() string {
	if name, ok := multipartTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("multipart(%#x)", uint16(t))
}

// MultipartRequestBody is the body of a multipart request.
type MultipartRequestBody interface {
	MultipartType() MultipartType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other MultipartRequestBody) bool
	Equivalent(other MultipartRequestBody) bool
	isMultipartRequestBody()
}

// MultipartReplyBody is the body of a multipart reply.
type MultipartReplyBody interface {
	MultipartType() MultipartType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other MultipartReplyBody) bool
	Equivalent(other MultipartReplyBody) bool
	isMultipartReplyBody()
}

// The discriminant of a body lives in the multipart header.
var (
	multipartRequests = wire.NewDispatcher[MultipartRequestBody](multipartFamily, map[uint32]wire.DecodeFunc[MultipartRequestBody]{
		uint32(MultipartDesc):          emptyRequestDecoder(MultipartDesc),
		uint32(MultipartFlow):          decodeFlowStatsRequest,
		uint32(MultipartAggregate):     decodeAggregateStatsRequest,
		uint32(MultipartTable):         emptyRequestDecoder(MultipartTable),
		uint32(MultipartPortStats):     idRequestDecoder(MultipartPortStats),
		uint32(MultipartQueue):         decodeQueueStatsRequest,
		uint32(MultipartGroup):         idRequestDecoder(MultipartGroup),
		uint32(MultipartGroupDesc):     emptyRequestDecoder(MultipartGroupDesc),
		uint32(MultipartGroupFeatures): emptyRequestDecoder(MultipartGroupFeatures),
		uint32(MultipartMeter):         idRequestDecoder(MultipartMeter),
		uint32(MultipartMeterConfig):   idRequestDecoder(MultipartMeterConfig),
		uint32(MultipartMeterFeatures): emptyRequestDecoder(MultipartMeterFeatures),
		uint32(MultipartTableFeatures): decodeTableFeaturesRequest,
		uint32(MultipartPortDesc):      emptyRequestDecoder(MultipartPortDesc),
	})

	multipartReplies = wire.NewDispatcher[MultipartReplyBody](multipartFamily, map[uint32]wire.DecodeFunc[MultipartReplyBody]{
		uint32(MultipartDesc):          decodeDescReply,
		uint32(MultipartFlow):          decodeFlowStatsReply,
		uint32(MultipartAggregate):     decodeAggregateStatsReply,
		uint32(MultipartTable):         decodeTableStatsReply,
		uint32(MultipartPortStats):     decodePortStatsReply,
		uint32(MultipartQueue):         decodeQueueStatsReply,
		uint32(MultipartGroup):         decodeGroupStatsReply,
		uint32(MultipartGroupDesc):     decodeGroupDescReply,
		uint32(MultipartGroupFeatures): decodeGroupFeaturesReply,
		uint32(MultipartMeter):         decodeMeterStatsReply,
		uint32(MultipartMeterConfig):   decodeMeterConfigReply,
		uint32(MultipartMeterFeatures): decodeMeterFeaturesReply,
		uint32(MultipartTableFeatures): decodeTableFeaturesReply,
		uint32(MultipartPortDesc):      decodePortDescReply,
	})
)

type ofpMultipartHeader struct {
	Type  uint16
	Flags uint16
	Pad   [4]uint8
}

const multipartLen = HeaderLen + 8

// multipart is the state shared by requests and replies.
type multipart struct {
	xid uint32
	d   ofpMultipartHeader
}

func (m multipart) Xid() uint32                  { return m.xid }
func (m multipart) Flags() uint16                { return m.d.Flags }
func (m multipart) MultipartType() MultipartType { return MultipartType(m.d.Type) }

func (m multipart) equivalent(o multipart) bool {
	return m.xid == o.xid && m.d.Type == o.d.Type && m.d.Flags == o.d.Flags
}

// ValidateMultipartHeader checks the multipart request or reply encoded in
// b, starting at its message header, against the expected body type.
func ValidateMultipartHeader(expected MultipartType, b []byte) error {
	kind := multipartFamily.Kind
	if len(b) < multipartLen {
		return wire.Invalid(kind, wire.WhatLength)
	}
	if t := MessageType(b[1]); t != TypeMultipartRequest && t != TypeMultipartReply {
		return wire.Invalid(kind, wire.WhatType)
	}
	if _, ok := multipartTypeNames[expected]; !ok || expected == MultipartExperimenter {
		return wire.Invalid(kind, wire.WhatType)
	}
	if MultipartType(binary.BigEndian.Uint16(b[HeaderLen:])) != expected {
		return wire.Invalid(kind, wire.WhatType)
	}
	if int(binary.BigEndian.Uint16(b[2:])) < multipartLen {
		return wire.Invalid(kind, wire.WhatLength)
	}
	return nil
}

// openMultipart decodes the multipart header of a message of type t.
func openMultipart(d *wire.Decoder, t MessageType) (multipart, *wire.Decoder, error) {
	raw := d.Bytes()
	xid, body, err := openMessage(d, t)
	if err != nil {
		return multipart{}, nil, err
	}
	m := multipart{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return multipart{}, nil, messageFamily.Truncated(multipartLen, HeaderLen+body.Len())
	}
	if err := ValidateMultipartHeader(m.MultipartType(), raw); err != nil {
		return multipart{}, nil, multipartFamily.Reject(err)
	}
	return m, body, nil
}

func checkConsumed(body *wire.Decoder, t MultipartType) error {
	if body.Len() != 0 {
		return wire.NewError(multipartFamily.BadLen, "%d bytes follow the %s body", body.Len(), t)
	}
	return nil
}

type MultipartRequest struct {
	multipart
	body MultipartRequestBody
}

func NewMultipartRequest(xid uint32, flags uint16, body MultipartRequestBody) MultipartRequest {
	return MultipartRequest{
		multipart: multipart{xid: xid, d: ofpMultipartHeader{Type: uint16(body.MultipartType()), Flags: flags}},
		body:      body,
	}
}

func (m MultipartRequest) Body() MultipartRequestBody { return m.body }
func (m MultipartRequest) Type() MessageType          { return TypeMultipartRequest }
func (m MultipartRequest) Length() int                { return multipartLen + m.body.ByteLength() }
func (m MultipartRequest) ByteLength() int            { return m.Length() }

func (m MultipartRequest) Encode(b []byte) []byte {
	b = appendHeader(b, TypeMultipartRequest, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.body.Encode(b)
}

func (m MultipartRequest) Equal(o Message) bool {
	x, ok := o.(MultipartRequest)
	return ok && m.multipart == x.multipart && m.body.Equal(x.body)
}

func (m MultipartRequest) Equivalent(o Message) bool {
	x, ok := o.(MultipartRequest)
	return ok && m.equivalent(x.multipart) && m.body.Equivalent(x.body)
}

func (MultipartRequest) isMessage() {}

func decodeMultipartRequest(d *wire.Decoder) (Message, error) {
	mp, body, err := openMultipart(d, TypeMultipartRequest)
	if err != nil {
		return nil, err
	}
	m := MultipartRequest{multipart: mp}
	if m.body, err = multipartRequests.Dispatch(uint32(mp.d.Type), body); err != nil {
		return nil, err
	}
	if err := checkConsumed(body, mp.MultipartType()); err != nil {
		return nil, err
	}
	return m, nil
}

type MultipartReply struct {
	multipart
	body MultipartReplyBody
}

func NewMultipartReply(xid uint32, flags uint16, body MultipartReplyBody) MultipartReply {
	return MultipartReply{
		multipart: multipart{xid: xid, d: ofpMultipartHeader{Type: uint16(body.MultipartType()), Flags: flags}},
		body:      body,
	}
}

func (m MultipartReply) Body() MultipartReplyBody { return m.body }
func (m MultipartReply) More() bool               { return m.d.Flags&MultipartReplyMore != 0 }
func (m MultipartReply) Type() MessageType        { return TypeMultipartReply }
func (m MultipartReply) Length() int              { return multipartLen + m.body.ByteLength() }
func (m MultipartReply) ByteLength() int          { return m.Length() }

func (m MultipartReply) Encode(b []byte) []byte {
	b = appendHeader(b, TypeMultipartReply, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.body.Encode(b)
}

func (m MultipartReply) Equal(o Message) bool {
	x, ok := o.(MultipartReply)
	return ok && m.multipart == x.multipart && m.body.Equal(x.body)
}

func (m MultipartReply) Equivalent(o Message) bool {
	x, ok := o.(MultipartReply)
	return ok && m.equivalent(x.multipart) && m.body.Equivalent(x.body)
}

func (MultipartReply) isMessage() {}

func decodeMultipartReply(d *wire.Decoder) (Message, error) {
	mp, body, err := openMultipart(d, TypeMultipartReply)
	if err != nil {
		return nil, err
	}
	m := MultipartReply{multipart: mp}
	if m.body, err = multipartReplies.Dispatch(uint32(mp.d.Type), body); err != nil {
		return nil, err
	}
	if err := checkConsumed(body, mp.MultipartType()); err != nil {
		return nil, err
	}
	return m, nil
}

// EmptyRequest is the body of the requests that carry nothing: desc,
// table, group_desc, group_features, meter_features and port_desc.
type EmptyRequest struct {
	typ MultipartType
}

func NewDescRequest() EmptyRequest          { return EmptyRequest{MultipartDesc} }
func NewTableStatsRequest() EmptyRequest    { return EmptyRequest{MultipartTable} }
func NewGroupDescRequest() EmptyRequest     { return EmptyRequest{MultipartGroupDesc} }
func NewGroupFeaturesRequest() EmptyRequest { return EmptyRequest{MultipartGroupFeatures} }
func NewMeterFeaturesRequest() EmptyRequest { return EmptyRequest{MultipartMeterFeatures} }
func NewPortDescRequest() EmptyRequest      { return EmptyRequest{MultipartPortDesc} }

func (r EmptyRequest) MultipartType() MultipartType { return r.typ }
func (r EmptyRequest) Length() int                  { return 0 }
func (r EmptyRequest) ByteLength() int              { return 0 }
func (r EmptyRequest) Encode(b []byte) []byte       { return b }

func (r EmptyRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(EmptyRequest)
	return ok && r == x
}

func (r EmptyRequest) Equivalent(o MultipartRequestBody) bool { return r.Equal(o) }
func (EmptyRequest) isMultipartRequestBody()                  {}

func emptyRequestDecoder(t MultipartType) wire.DecodeFunc[MultipartRequestBody] {
	return func(d *wire.Decoder) (MultipartRequestBody, error) {
		return EmptyRequest{t}, nil
	}
}

type ofpIDRequest struct {
	ID  uint32
	Pad [4]uint8
}

// IDRequest selects a port, group or meter by number in port_stats, group,
// meter and meter_config requests.
type IDRequest struct {
	typ MultipartType
	d   ofpIDRequest
}

func NewPortStatsRequest(portNo uint32) IDRequest {
	return IDRequest{MultipartPortStats, ofpIDRequest{ID: portNo}}
}

func NewGroupStatsRequest(groupID uint32) IDRequest {
	return IDRequest{MultipartGroup, ofpIDRequest{ID: groupID}}
}

func NewMeterStatsRequest(meterID uint32) IDRequest {
	return IDRequest{MultipartMeter, ofpIDRequest{ID: meterID}}
}

func NewMeterConfigRequest(meterID uint32) IDRequest {
	return IDRequest{MultipartMeterConfig, ofpIDRequest{ID: meterID}}
}

func (r IDRequest) ID() uint32                   { return r.d.ID }
func (r IDRequest) MultipartType() MultipartType { return r.typ }
func (r IDRequest) Length() int                  { return 8 }
func (r IDRequest) ByteLength() int              { return 8 }
func (r IDRequest) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r IDRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(IDRequest)
	return ok && r == x
}

func (r IDRequest) Equivalent(o MultipartRequestBody) bool {
	x, ok := o.(IDRequest)
	return ok && r.typ == x.typ && r.d.ID == x.d.ID
}

func (IDRequest) isMultipartRequestBody() {}

func idRequestDecoder(t MultipartType) wire.DecodeFunc[MultipartRequestBody] {
	return func(d *wire.Decoder) (MultipartRequestBody, error) {
		r := IDRequest{typ: t}
		if err := wire.Unpack(d, &r.d); err != nil {
			return nil, multipartFamily.Truncated(8, d.Len())
		}
		return r, nil
	}
}

type ofpFlowStatsRequest struct {
	TableID    uint8
	Pad        [3]uint8
	OutPort    uint32
	OutGroup   uint32
	Pad2       [4]uint8
	Cookie     uint64
	CookieMask uint64
}

// flowQuery is the selection shared by flow and aggregate requests.
type flowQuery struct {
	d     ofpFlowStatsRequest
	match Match
}

func newFlowQuery(tableID uint8, outPort, outGroup uint32, cookie, cookieMask uint64, match Match) flowQuery {
	return flowQuery{
		d: ofpFlowStatsRequest{
			TableID:    tableID,
			OutPort:    outPort,
			OutGroup:   outGroup,
			Cookie:     cookie,
			CookieMask: cookieMask,
		},
		match: match,
	}
}

func (q flowQuery) TableID() uint8     { return q.d.TableID }
func (q flowQuery) OutPort() uint32    { return q.d.OutPort }
func (q flowQuery) OutGroup() uint32   { return q.d.OutGroup }
func (q flowQuery) Cookie() uint64     { return q.d.Cookie }
func (q flowQuery) CookieMask() uint64 { return q.d.CookieMask }
func (q flowQuery) Match() Match       { return q.match }
func (q flowQuery) Length() int        { return 32 + q.match.ByteLength() }
func (q flowQuery) ByteLength() int    { return q.Length() }

func (q flowQuery) Encode(b []byte) []byte {
	b = wire.Append(b, &q.d)
	return q.match.Encode(b)
}

func (q flowQuery) equal(o flowQuery) bool {
	return q.d == o.d && q.match.Equal(o.match)
}

func (q flowQuery) equivalent(o flowQuery) bool {
	p, r := q.d, o.d
	p.Pad, p.Pad2 = [3]uint8{}, [4]uint8{}
	r.Pad, r.Pad2 = [3]uint8{}, [4]uint8{}
	return p == r && q.match.equivalentTo(o.match)
}

func decodeFlowQuery(d *wire.Decoder) (flowQuery, error) {
	var q flowQuery
	if err := wire.Unpack(d, &q.d); err != nil {
		return q, multipartFamily.Truncated(32, d.Len())
	}
	m, err := DecodeMatch(d)
	if err != nil {
		return flowQuery{}, err
	}
	q.match = m
	return q, nil
}

type FlowStatsRequest struct{ flowQuery }

func NewFlowStatsRequest(tableID uint8, outPort, outGroup uint32, cookie, cookieMask uint64, match Match) FlowStatsRequest {
	return FlowStatsRequest{newFlowQuery(tableID, outPort, outGroup, cookie, cookieMask, match)}
}

func (r FlowStatsRequest) MultipartType() MultipartType { return MultipartFlow }

func (r FlowStatsRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(FlowStatsRequest)
	return ok && r.equal(x.flowQuery)
}

func (r FlowStatsRequest) Equivalent(o MultipartRequestBody) bool {
	x, ok := o.(FlowStatsRequest)
	return ok && r.equivalent(x.flowQuery)
}

func (FlowStatsRequest) isMultipartRequestBody() {}

func decodeFlowStatsRequest(d *wire.Decoder) (MultipartRequestBody, error) {
	q, err := decodeFlowQuery(d)
	if err != nil {
		return nil, err
	}
	return FlowStatsRequest{q}, nil
}

type AggregateStatsRequest struct{ flowQuery }

func NewAggregateStatsRequest(tableID uint8, outPort, outGroup uint32, cookie, cookieMask uint64, match Match) AggregateStatsRequest {
	return AggregateStatsRequest{newFlowQuery(tableID, outPort, outGroup, cookie, cookieMask, match)}
}

func (r AggregateStatsRequest) MultipartType() MultipartType { return MultipartAggregate }

func (r AggregateStatsRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(AggregateStatsRequest)
	return ok && r.equal(x.flowQuery)
}

func (r AggregateStatsRequest) Equivalent(o MultipartRequestBody) bool {
	x, ok := o.(AggregateStatsRequest)
	return ok && r.equivalent(x.flowQuery)
}

func (AggregateStatsRequest) isMultipartRequestBody() {}

func decodeAggregateStatsRequest(d *wire.Decoder) (MultipartRequestBody, error) {
	q, err := decodeFlowQuery(d)
	if err != nil {
		return nil, err
	}
	return AggregateStatsRequest{q}, nil
}

type ofpQueueStatsRequest struct {
	PortNo  uint32
	QueueID uint32
}

type QueueStatsRequest struct {
	d ofpQueueStatsRequest
}

func NewQueueStatsRequest(portNo, queueID uint32) QueueStatsRequest {
	return QueueStatsRequest{ofpQueueStatsRequest{PortNo: portNo, QueueID: queueID}}
}

func (r QueueStatsRequest) PortNo() uint32               { return r.d.PortNo }
func (r QueueStatsRequest) QueueID() uint32              { return r.d.QueueID }
func (r QueueStatsRequest) MultipartType() MultipartType { return MultipartQueue }
func (r QueueStatsRequest) Length() int                  { return 8 }
func (r QueueStatsRequest) ByteLength() int              { return 8 }
func (r QueueStatsRequest) Encode(b []byte) []byte       { return wire.Append(b, &r.d) }

func (r QueueStatsRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(QueueStatsRequest)
	return ok && r == x
}

func (r QueueStatsRequest) Equivalent(o MultipartRequestBody) bool { return r.Equal(o) }
func (QueueStatsRequest) isMultipartRequestBody()                  {}

func decodeQueueStatsRequest(d *wire.Decoder) (MultipartRequestBody, error) {
	var r QueueStatsRequest
	if err := wire.Unpack(d, &r.d); err != nil {
		return nil, multipartFamily.Truncated(8, d.Len())
	}
	return r, nil
}

// TableFeaturesRequest either queries the tables, with no entries, or sets
// their features.
type TableFeaturesRequest struct {
	features TableFeaturesList
}

func NewTableFeaturesRequest(features ...TableFeatures) TableFeaturesRequest {
	return TableFeaturesRequest{append(TableFeaturesList{}, features...)}
}

func (r TableFeaturesRequest) Features() TableFeaturesList  { return r.features.Clone() }
func (r TableFeaturesRequest) MultipartType() MultipartType { return MultipartTableFeatures }
func (r TableFeaturesRequest) Length() int                  { return r.features.ByteLength() }
func (r TableFeaturesRequest) ByteLength() int              { return r.Length() }
func (r TableFeaturesRequest) Encode(b []byte) []byte       { return r.features.Encode(b) }

func (r TableFeaturesRequest) Equal(o MultipartRequestBody) bool {
	x, ok := o.(TableFeaturesRequest)
	return ok && r.features.Equal(x.features)
}

func (r TableFeaturesRequest) Equivalent(o MultipartRequestBody) bool {
	x, ok := o.(TableFeaturesRequest)
	return ok && r.features.Equivalent(x.features)
}

func (TableFeaturesRequest) isMultipartRequestBody() {}

func decodeTableFeaturesRequest(d *wire.Decoder) (MultipartRequestBody, error) {
	features, err := DecodeTableFeaturesList(d)
	if err != nil {
		return nil, err
	}
	return TableFeaturesRequest{features}, nil
}
