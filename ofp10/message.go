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
	"encoding/binary"

	"github.com/k-vswitch/ofproto/wire"
)

// HeaderLen is the size of the header every message starts with.
const HeaderLen = 8

type ofpHeader struct {
	Version uint8
	Type    uint8
	Length  uint16
	Xid     uint32
}

// Header is the common header of a message.
type Header struct {
	Version uint8
	Type    MessageType
	Length  uint16
	Xid     uint32
}

// PeekHeader reads the message header at the start of b.
func PeekHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, messageFamily.Truncated(HeaderLen, len(b))
	}
	return Header{
		Version: b[0],
		Type:    MessageType(b[1]),
		Length:  binary.BigEndian.Uint16(b[2:]),
		Xid:     binary.BigEndian.Uint32(b[4:]),
	}, nil
}

// Message is one of the OpenFlow 1.0 messages defined in this package.
type Message interface {
	Type() MessageType
	Xid() uint32
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other Message) bool
	Equivalent(other Message) bool
	isMessage()
}

func appendHeader(b []byte, t MessageType, length int, xid uint32) []byte {
	return wire.Append(b, &ofpHeader{
		Version: Version,
		Type:    uint8(t),
		Length:  uint16(length),
		Xid:     xid,
	})
}

func messageSpec(t MessageType, length int, fixed bool) wire.HeaderSpec {
	return wire.HeaderSpec{
		Kind:      messageFamily.Kind,
		Type:      uint16(t),
		Version:   Version,
		MinLength: length,
		Fixed:     fixed,
	}
}

var messageSpecs = map[MessageType]wire.HeaderSpec{
	TypeHello:                 messageSpec(TypeHello, HeaderLen, false),
	TypeError:                 messageSpec(TypeError, 12, false),
	TypeEchoRequest:           messageSpec(TypeEchoRequest, HeaderLen, false),
	TypeEchoReply:             messageSpec(TypeEchoReply, HeaderLen, false),
	TypeVendor:                messageSpec(TypeVendor, 12, false),
	TypeFeaturesRequest:       messageSpec(TypeFeaturesRequest, HeaderLen, true),
	TypeFeaturesReply:         messageSpec(TypeFeaturesReply, 32, false),
	TypeGetConfigRequest:      messageSpec(TypeGetConfigRequest, HeaderLen, true),
	TypeGetConfigReply:        messageSpec(TypeGetConfigReply, 12, true),
	TypeSetConfig:             messageSpec(TypeSetConfig, 12, true),
	TypePacketIn:              messageSpec(TypePacketIn, 18, false),
	TypeFlowRemoved:           messageSpec(TypeFlowRemoved, 88, true),
	TypePortStatus:            messageSpec(TypePortStatus, 64, true),
	TypePacketOut:             messageSpec(TypePacketOut, 16, false),
	TypeFlowMod:               messageSpec(TypeFlowMod, 72, false),
	TypePortMod:               messageSpec(TypePortMod, 32, true),
	TypeStatsRequest:          messageSpec(TypeStatsRequest, 12, false),
	TypeStatsReply:            messageSpec(TypeStatsReply, 12, false),
	TypeBarrierRequest:        messageSpec(TypeBarrierRequest, HeaderLen, true),
	TypeBarrierReply:          messageSpec(TypeBarrierReply, HeaderLen, true),
	TypeQueueGetConfigRequest: messageSpec(TypeQueueGetConfigRequest, 12, true),
	TypeQueueGetConfigReply:   messageSpec(TypeQueueGetConfigReply, 16, false),
}

// ValidateHeader checks a message header against the layout of type t.
func ValidateHeader(t MessageType, h Header) error {
	spec, ok := messageSpecs[t]
	if !ok {
		return wire.Invalid(messageFamily.Kind, wire.WhatType)
	}
	return spec.ValidateMessage(h.Version, uint16(h.Type), int(h.Length))
}

// openMessage validates the header of a message of type t, consumes the
// message and returns its xid and a decoder over the body.
func openMessage(d *wire.Decoder, t MessageType) (uint32, *wire.Decoder, error) {
	h, err := PeekHeader(d.Bytes())
	if err != nil {
		return 0, nil, err
	}
	if err := ValidateHeader(t, h); err != nil {
		return 0, nil, messageFamily.Reject(err)
	}
	body, err := d.Sub(int(h.Length))
	if err != nil {
		return 0, nil, messageFamily.Truncated(int(h.Length), d.Len())
	}
	if err := body.Skip(HeaderLen); err != nil {
		return 0, nil, messageFamily.Truncated(HeaderLen, body.Len())
	}
	return h.Xid, body, nil
}

func messageHeader(d *wire.Decoder) (uint32, int, error) {
	t, err := d.PeekUint8(1)
	if err != nil {
		return 0, 0, err
	}
	length, err := d.PeekUint16(2)
	if err != nil {
		return 0, 0, err
	}
	return uint32(t), int(length), nil
}

var messages = wire.NewRegistry[Message](messageFamily, HeaderLen, messageHeader, map[uint32]wire.DecodeFunc[Message]{
	uint32(TypeHello):                 decodeHello,
	uint32(TypeError):                 decodeErrorMsg,
	uint32(TypeEchoRequest):           echoDecoder(TypeEchoRequest, func(e echo) Message { return EchoRequest{e} }),
	uint32(TypeEchoReply):             echoDecoder(TypeEchoReply, func(e echo) Message { return EchoReply{e} }),
	uint32(TypeVendor):                decodeVendor,
	uint32(TypeFeaturesRequest):       headerOnly(TypeFeaturesRequest, func(xid uint32) Message { return NewFeaturesRequest(xid) }),
	uint32(TypeFeaturesReply):         decodeFeaturesReply,
	uint32(TypeGetConfigRequest):      headerOnly(TypeGetConfigRequest, func(xid uint32) Message { return NewGetConfigRequest(xid) }),
	uint32(TypeGetConfigReply):        fixedMessage(TypeGetConfigReply, func(xid uint32, d ofpSwitchConfig) Message { return GetConfigReply{switchConfig{xid, d}} }),
	uint32(TypeSetConfig):             fixedMessage(TypeSetConfig, func(xid uint32, d ofpSwitchConfig) Message { return SetConfig{switchConfig{xid, d}} }),
	uint32(TypePacketIn):              decodePacketIn,
	uint32(TypeFlowRemoved):           fixedMessage(TypeFlowRemoved, func(xid uint32, d ofpFlowRemoved) Message { return FlowRemoved{xid, d} }),
	uint32(TypePortStatus):            fixedMessage(TypePortStatus, func(xid uint32, d ofpPortStatus) Message { return PortStatus{xid, d} }),
	uint32(TypePacketOut):             decodePacketOut,
	uint32(TypeFlowMod):               decodeFlowMod,
	uint32(TypePortMod):               fixedMessage(TypePortMod, func(xid uint32, d ofpPortMod) Message { return PortMod{xid, d} }),
	uint32(TypeStatsRequest):          decodeStatsRequest,
	uint32(TypeStatsReply):            decodeStatsReply,
	uint32(TypeBarrierRequest):        headerOnly(TypeBarrierRequest, func(xid uint32) Message { return NewBarrierRequest(xid) }),
	uint32(TypeBarrierReply):          headerOnly(TypeBarrierReply, func(xid uint32) Message { return NewBarrierReply(xid) }),
	uint32(TypeQueueGetConfigRequest): fixedMessage(TypeQueueGetConfigRequest, func(xid uint32, d ofpQueueGetConfigRequest) Message { return QueueGetConfigRequest{xid, d} }),
	uint32(TypeQueueGetConfigReply):   decodeQueueGetConfigReply,
})

// DecodeMessage decodes exactly one message held in b.
func DecodeMessage(b []byte) (Message, error) {
	d := wire.NewDecoder(b)
	m, err := messages.Decode(d)
	if err != nil {
		return nil, err
	}
	if d.Len() != 0 {
		return nil, wire.NewError(messageFamily.BadLen, "%d bytes follow the %s message", d.Len(), m.Type())
	}
	return m, nil
}

// DecodeMessageFrom decodes the message at the decoder position and leaves
// the decoder after it.
func DecodeMessageFrom(d *wire.Decoder) (Message, error) {
	return messages.Decode(d)
}

func headerOnly(t MessageType, wrap func(xid uint32) Message) wire.DecodeFunc[Message] {
	return func(d *wire.Decoder) (Message, error) {
		xid, _, err := openMessage(d, t)
		if err != nil {
			return nil, err
		}
		return wrap(xid), nil
	}
}

// fixedMessage returns the decoder of a message whose body is exactly the
// descriptor D.
func fixedMessage[D any](t MessageType, wrap func(xid uint32, desc D) Message) wire.DecodeFunc[Message] {
	return func(d *wire.Decoder) (Message, error) {
		xid, body, err := openMessage(d, t)
		if err != nil {
			return nil, err
		}
		var desc D
		if err := wire.Unpack(body, &desc); err != nil {
			return nil, messageFamily.Truncated(HeaderLen+wire.Sizeof(&desc), HeaderLen+body.Len())
		}
		return wrap(xid, desc), nil
	}
}

type headerMessage struct {
	xid uint32
}

func (m headerMessage) Xid() uint32     { return m.xid }
func (m headerMessage) Length() int     { return HeaderLen }
func (m headerMessage) ByteLength() int { return HeaderLen }
func (m headerMessage) encode(b []byte, t MessageType) []byte {
	return appendHeader(b, t, HeaderLen, m.xid)
}

// payload is the state of the messages whose body is opaque bytes.
type payload struct {
	xid  uint32
	data []byte
}

func (m payload) Data() []byte    { return wire.CloneBytes(m.data) }
func (m payload) Xid() uint32     { return m.xid }
func (m payload) Length() int     { return HeaderLen + len(m.data) }
func (m payload) ByteLength() int { return m.Length() }

func (m payload) encode(b []byte, t MessageType) []byte {
	b = appendHeader(b, t, m.Length(), m.xid)
	return append(b, m.data...)
}

func (m payload) equal(o payload) bool {
	return m.xid == o.xid && bytes.Equal(m.data, o.data)
}

// Hello opens a connection. OpenFlow 1.0 defines no hello body; any bytes
// a newer peer sends are kept verbatim.
type Hello struct{ payload }

func NewHello(xid uint32) Hello {
	return Hello{payload{xid: xid}}
}

func (m Hello) Type() MessageType      { return TypeHello }
func (m Hello) Encode(b []byte) []byte { return m.encode(b, TypeHello) }

func (m Hello) Equal(o Message) bool {
	x, ok := o.(Hello)
	return ok && m.equal(x.payload)
}

func (m Hello) Equivalent(o Message) bool { return m.Equal(o) }
func (Hello) isMessage()                  {}

func decodeHello(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeHello)
	if err != nil {
		return nil, err
	}
	return Hello{payload{xid: xid, data: body.Rest()}}, nil
}

type ofpErrorMsg struct {
	Type uint16
	Code uint16
}

// ErrorMsg reports a failure to the peer. Data holds at least 64 bytes of
// the offending message.
type ErrorMsg struct {
	xid  uint32
	d    ofpErrorMsg
	data []byte
}

func NewErrorMsg(xid uint32, errType, code uint16, data []byte) ErrorMsg {
	return ErrorMsg{xid: xid, d: ofpErrorMsg{Type: errType, Code: code}, data: wire.CloneBytes(data)}
}

// NewErrorReply builds the error message answering a message that failed to
// decode with err.
func NewErrorReply(xid uint32, err *wire.Error, data []byte) ErrorMsg {
	return NewErrorMsg(xid, err.Type, err.Code, data)
}

func (m ErrorMsg) ErrType() uint16   { return m.d.Type }
func (m ErrorMsg) Code() uint16      { return m.d.Code }
func (m ErrorMsg) Pair() wire.Code   { return wire.Code{Type: m.d.Type, Code: m.d.Code} }
func (m ErrorMsg) Data() []byte      { return wire.CloneBytes(m.data) }
func (m ErrorMsg) Type() MessageType { return TypeError }
func (m ErrorMsg) Xid() uint32       { return m.xid }
func (m ErrorMsg) Length() int       { return 12 + len(m.data) }
func (m ErrorMsg) ByteLength() int   { return m.Length() }

func (m ErrorMsg) Encode(b []byte) []byte {
	b = appendHeader(b, TypeError, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return append(b, m.data...)
}

func (m ErrorMsg) Equal(o Message) bool {
	x, ok := o.(ErrorMsg)
	return ok && m.xid == x.xid && m.d == x.d && bytes.Equal(m.data, x.data)
}

func (m ErrorMsg) Equivalent(o Message) bool { return m.Equal(o) }
func (ErrorMsg) isMessage()                  {}

func decodeErrorMsg(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeError)
	if err != nil {
		return nil, err
	}
	m := ErrorMsg{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(12, HeaderLen+body.Len())
	}
	m.data = body.Rest()
	return m, nil
}

type echo = payload

func echoDecoder(t MessageType, wrap func(echo) Message) wire.DecodeFunc[Message] {
	return func(d *wire.Decoder) (Message, error) {
		xid, body, err := openMessage(d, t)
		if err != nil {
			return nil, err
		}
		return wrap(echo{xid: xid, data: body.Rest()}), nil
	}
}

type EchoRequest struct{ payload }

func NewEchoRequest(xid uint32, data []byte) EchoRequest {
	return EchoRequest{payload{xid: xid, data: wire.CloneBytes(data)}}
}

// Reply answers an echo request with the same xid and payload.
func (m EchoRequest) Reply() EchoReply {
	return NewEchoReply(m.xid, m.data)
}

func (m EchoRequest) Type() MessageType      { return TypeEchoRequest }
func (m EchoRequest) Encode(b []byte) []byte { return m.encode(b, TypeEchoRequest) }

func (m EchoRequest) Equal(o Message) bool {
	x, ok := o.(EchoRequest)
	return ok && m.equal(x.payload)
}

func (m EchoRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (EchoRequest) isMessage()                  {}

type EchoReply struct{ payload }

func NewEchoReply(xid uint32, data []byte) EchoReply {
	return EchoReply{payload{xid: xid, data: wire.CloneBytes(data)}}
}

func (m EchoReply) Type() MessageType      { return TypeEchoReply }
func (m EchoReply) Encode(b []byte) []byte { return m.encode(b, TypeEchoReply) }

func (m EchoReply) Equal(o Message) bool {
	x, ok := o.(EchoReply)
	return ok && m.equal(x.payload)
}

func (m EchoReply) Equivalent(o Message) bool { return m.Equal(o) }
func (EchoReply) isMessage()                  {}

// Vendor carries a vendor extension identified by its IEEE OUI.
type Vendor struct {
	xid    uint32
	vendor uint32
	data   []byte
}

func NewVendor(xid, vendor uint32, data []byte) Vendor {
	return Vendor{xid: xid, vendor: vendor, data: wire.CloneBytes(data)}
}

func (m Vendor) Vendor() uint32    { return m.vendor }
func (m Vendor) Data() []byte      { return wire.CloneBytes(m.data) }
func (m Vendor) Type() MessageType { return TypeVendor }
func (m Vendor) Xid() uint32       { return m.xid }
func (m Vendor) Length() int       { return 12 + len(m.data) }
func (m Vendor) ByteLength() int   { return m.Length() }

func (m Vendor) Encode(b []byte) []byte {
	b = appendHeader(b, TypeVendor, m.Length(), m.xid)
	b = binary.BigEndian.AppendUint32(b, m.vendor)
	return append(b, m.data...)
}

func (m Vendor) Equal(o Message) bool {
	x, ok := o.(Vendor)
	return ok && m.xid == x.xid && m.vendor == x.vendor && bytes.Equal(m.data, x.data)
}

func (m Vendor) Equivalent(o Message) bool { return m.Equal(o) }
func (Vendor) isMessage()                  {}

func decodeVendor(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeVendor)
	if err != nil {
		return nil, err
	}
	vendor, err := body.Next(4)
	if err != nil {
		return nil, messageFamily.Truncated(12, HeaderLen+body.Len())
	}
	return Vendor{xid: xid, vendor: binary.BigEndian.Uint32(vendor), data: body.Rest()}, nil
}

type FeaturesRequest struct{ headerMessage }

func NewFeaturesRequest(xid uint32) FeaturesRequest {
	return FeaturesRequest{headerMessage{xid}}
}

func (m FeaturesRequest) Type() MessageType      { return TypeFeaturesRequest }
func (m FeaturesRequest) Encode(b []byte) []byte { return m.encode(b, TypeFeaturesRequest) }

func (m FeaturesRequest) Equal(o Message) bool {
	x, ok := o.(FeaturesRequest)
	return ok && m == x
}

func (m FeaturesRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (FeaturesRequest) isMessage()                  {}

type ofpSwitchFeatures struct {
	DatapathID   uint64
	NBuffers     uint32
	NTables      uint8
	Pad          [3]uint8
	Capabilities uint32
	Actions      uint32
}

// FeaturesReply describes a switch. Its port list runs to the end of the
// message.
type FeaturesReply struct {
	xid   uint32
	d     ofpSwitchFeatures
	ports PhyPortList
}

// NewFeaturesReply builds a features reply. actions is the bitmap of the
// supported action types, bit n set for ActionType n.
func NewFeaturesReply(xid uint32, datapathID uint64, nBuffers uint32, nTables uint8, capabilities, actions uint32, ports ...PhyPort) FeaturesReply {
	return FeaturesReply{
		xid: xid,
		d: ofpSwitchFeatures{
			DatapathID:   datapathID,
			NBuffers:     nBuffers,
			NTables:      nTables,
			Capabilities: capabilities,
			Actions:      actions,
		},
		ports: PhyPortList(ports).Clone(),
	}
}

func (m FeaturesReply) DatapathID() uint64   { return m.d.DatapathID }
func (m FeaturesReply) NBuffers() uint32     { return m.d.NBuffers }
func (m FeaturesReply) NTables() uint8       { return m.d.NTables }
func (m FeaturesReply) Capabilities() uint32 { return m.d.Capabilities }
func (m FeaturesReply) Actions() uint32      { return m.d.Actions }
func (m FeaturesReply) Ports() PhyPortList   { return m.ports.Clone() }
func (m FeaturesReply) Type() MessageType    { return TypeFeaturesReply }
func (m FeaturesReply) Xid() uint32          { return m.xid }
func (m FeaturesReply) Length() int          { return 32 + m.ports.ByteLength() }
func (m FeaturesReply) ByteLength() int      { return m.Length() }

// SupportsAction reports whether the switch advertises action type t.
func (m FeaturesReply) SupportsAction(t ActionType) bool {
	return t < 32 && m.d.Actions&(1<<uint(t)) != 0
}

func (m FeaturesReply) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFeaturesReply, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return m.ports.Encode(b)
}

func (m FeaturesReply) Equal(o Message) bool {
	x, ok := o.(FeaturesReply)
	return ok && m.xid == x.xid && m.d == x.d && m.ports.Equal(x.ports)
}

func (m FeaturesReply) Equivalent(o Message) bool {
	x, ok := o.(FeaturesReply)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = [3]uint8{}, [3]uint8{}
	return m.xid == x.xid && p == q && m.ports.Equivalent(x.ports)
}

func (FeaturesReply) isMessage() {}

func decodeFeaturesReply(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeFeaturesReply)
	if err != nil {
		return nil, err
	}
	m := FeaturesReply{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(32, HeaderLen+body.Len())
	}
	if body.Len()%phyPortLen != 0 {
		return nil, wire.NewError(messageFamily.BadLen, "features_reply port list of %d bytes", body.Len())
	}
	if m.ports, err = DecodePhyPorts(body); err != nil {
		return nil, err
	}
	return m, nil
}

type GetConfigRequest struct{ headerMessage }

func NewGetConfigRequest(xid uint32) GetConfigRequest {
	return GetConfigRequest{headerMessage{xid}}
}

func (m GetConfigRequest) Type() MessageType      { return TypeGetConfigRequest }
func (m GetConfigRequest) Encode(b []byte) []byte { return m.encode(b, TypeGetConfigRequest) }

func (m GetConfigRequest) Equal(o Message) bool {
	x, ok := o.(GetConfigRequest)
	return ok && m == x
}

func (m GetConfigRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (GetConfigRequest) isMessage()                  {}

type ofpSwitchConfig struct {
	Flags       uint16
	MissSendLen uint16
}

// switchConfig is the state of get_config_reply and set_config.
type switchConfig struct {
	xid uint32
	d   ofpSwitchConfig
}

func (m switchConfig) Flags() uint16       { return m.d.Flags }
func (m switchConfig) MissSendLen() uint16 { return m.d.MissSendLen }
func (m switchConfig) Xid() uint32         { return m.xid }
func (m switchConfig) Length() int         { return 12 }
func (m switchConfig) ByteLength() int     { return 12 }

func (m switchConfig) encode(b []byte, t MessageType) []byte {
	b = appendHeader(b, t, 12, m.xid)
	return wire.Append(b, &m.d)
}

type GetConfigReply struct{ switchConfig }

func NewGetConfigReply(xid uint32, flags, missSendLen uint16) GetConfigReply {
	return GetConfigReply{switchConfig{xid, ofpSwitchConfig{flags, missSendLen}}}
}

func (m GetConfigReply) Type() MessageType      { return TypeGetConfigReply }
func (m GetConfigReply) Encode(b []byte) []byte { return m.encode(b, TypeGetConfigReply) }

func (m GetConfigReply) Equal(o Message) bool {
	x, ok := o.(GetConfigReply)
	return ok && m == x
}

func (m GetConfigReply) Equivalent(o Message) bool { return m.Equal(o) }
func (GetConfigReply) isMessage()                  {}

type SetConfig struct{ switchConfig }

func NewSetConfig(xid uint32, flags, missSendLen uint16) SetConfig {
	return SetConfig{switchConfig{xid, ofpSwitchConfig{flags, missSendLen}}}
}

func (m SetConfig) Type() MessageType      { return TypeSetConfig }
func (m SetConfig) Encode(b []byte) []byte { return m.encode(b, TypeSetConfig) }

func (m SetConfig) Equal(o Message) bool {
	x, ok := o.(SetConfig)
	return ok && m == x
}

func (m SetConfig) Equivalent(o Message) bool { return m.Equal(o) }
func (SetConfig) isMessage()                  {}

type BarrierRequest struct{ headerMessage }

func NewBarrierRequest(xid uint32) BarrierRequest {
	return BarrierRequest{headerMessage{xid}}
}

func (m BarrierRequest) Type() MessageType      { return TypeBarrierRequest }
func (m BarrierRequest) Encode(b []byte) []byte { return m.encode(b, TypeBarrierRequest) }

func (m BarrierRequest) Equal(o Message) bool {
	x, ok := o.(BarrierRequest)
	return ok && m == x
}

func (m BarrierRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (BarrierRequest) isMessage()                  {}

type BarrierReply struct{ headerMessage }

func NewBarrierReply(xid uint32) BarrierReply {
	return BarrierReply{headerMessage{xid}}
}

func (m BarrierReply) Type() MessageType      { return TypeBarrierReply }
func (m BarrierReply) Encode(b []byte) []byte { return m.encode(b, TypeBarrierReply) }

func (m BarrierReply) Equal(o Message) bool {
	x, ok := o.(BarrierReply)
	return ok && m == x
}

func (m BarrierReply) Equivalent(o Message) bool { return m.Equal(o) }
func (BarrierReply) isMessage()                  {}

type ofpQueueGetConfigRequest struct {
	Port uint16
	Pad  [2]uint8
}

type QueueGetConfigRequest struct {
	xid uint32
	d   ofpQueueGetConfigRequest
}

func NewQueueGetConfigRequest(xid uint32, port uint16) QueueGetConfigRequest {
	return QueueGetConfigRequest{xid: xid, d: ofpQueueGetConfigRequest{Port: port}}
}

func (m QueueGetConfigRequest) Port() uint16      { return m.d.Port }
func (m QueueGetConfigRequest) Type() MessageType { return TypeQueueGetConfigRequest }
func (m QueueGetConfigRequest) Xid() uint32       { return m.xid }
func (m QueueGetConfigRequest) Length() int       { return 12 }
func (m QueueGetConfigRequest) ByteLength() int   { return 12 }

func (m QueueGetConfigRequest) Encode(b []byte) []byte {
	b = appendHeader(b, TypeQueueGetConfigRequest, 12, m.xid)
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

type ofpQueueGetConfigReply struct {
	Port uint16
	Pad  [6]uint8
}

type QueueGetConfigReply struct {
	xid    uint32
	d      ofpQueueGetConfigReply
	queues PacketQueueList
}

func NewQueueGetConfigReply(xid uint32, port uint16, queues ...PacketQueue) QueueGetConfigReply {
	return QueueGetConfigReply{
		xid:    xid,
		d:      ofpQueueGetConfigReply{Port: port},
		queues: PacketQueueList(queues).Clone(),
	}
}

func (m QueueGetConfigReply) Port() uint16            { return m.d.Port }
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
