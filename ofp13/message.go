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

// Message is one of the OpenFlow 1.3 messages defined in this package.
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
	TypeExperimenter:          messageSpec(TypeExperimenter, 16, false),
	TypeFeaturesRequest:       messageSpec(TypeFeaturesRequest, HeaderLen, true),
	TypeFeaturesReply:         messageSpec(TypeFeaturesReply, 32, true),
	TypeGetConfigRequest:      messageSpec(TypeGetConfigRequest, HeaderLen, true),
	TypeGetConfigReply:        messageSpec(TypeGetConfigReply, 12, true),
	TypeSetConfig:             messageSpec(TypeSetConfig, 12, true),
	TypePacketIn:              messageSpec(TypePacketIn, 34, false),
	TypeFlowRemoved:           messageSpec(TypeFlowRemoved, 56, false),
	TypePortStatus:            messageSpec(TypePortStatus, 80, true),
	TypePacketOut:             messageSpec(TypePacketOut, 24, false),
	TypeFlowMod:               messageSpec(TypeFlowMod, 56, false),
	TypeGroupMod:              messageSpec(TypeGroupMod, 16, false),
	TypePortMod:               messageSpec(TypePortMod, 40, true),
	TypeTableMod:              messageSpec(TypeTableMod, 16, true),
	TypeMultipartRequest:      messageSpec(TypeMultipartRequest, 16, false),
	TypeMultipartReply:        messageSpec(TypeMultipartReply, 16, false),
	TypeBarrierRequest:        messageSpec(TypeBarrierRequest, HeaderLen, true),
	TypeBarrierReply:          messageSpec(TypeBarrierReply, HeaderLen, true),
	TypeQueueGetConfigRequest: messageSpec(TypeQueueGetConfigRequest, 16, true),
	TypeQueueGetConfigReply:   messageSpec(TypeQueueGetConfigReply, 16, false),
	TypeRoleRequest:           messageSpec(TypeRoleRequest, 24, true),
	TypeRoleReply:             messageSpec(TypeRoleReply, 24, true),
	TypeGetAsyncRequest:       messageSpec(TypeGetAsyncRequest, HeaderLen, true),
	TypeGetAsyncReply:         messageSpec(TypeGetAsyncReply, 32, true),
	TypeSetAsync:              messageSpec(TypeSetAsync, 32, true),
	TypeMeterMod:              messageSpec(TypeMeterMod, 16, false),
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
	uint32(TypeExperimenter):          decodeExperimenter,
	uint32(TypeFeaturesRequest):       headerOnly(TypeFeaturesRequest, func(xid uint32) Message { return NewFeaturesRequest(xid) }),
	uint32(TypeFeaturesReply):         fixedMessage(TypeFeaturesReply, func(xid uint32, d ofpSwitchFeatures) Message { return FeaturesReply{xid, d} }),
	uint32(TypeGetConfigRequest):      headerOnly(TypeGetConfigRequest, func(xid uint32) Message { return NewGetConfigRequest(xid) }),
	uint32(TypeGetConfigReply):        fixedMessage(TypeGetConfigReply, func(xid uint32, d ofpSwitchConfig) Message { return GetConfigReply{switchConfig{xid, d}} }),
	uint32(TypeSetConfig):             fixedMessage(TypeSetConfig, func(xid uint32, d ofpSwitchConfig) Message { return SetConfig{switchConfig{xid, d}} }),
	uint32(TypePacketIn):              decodePacketIn,
	uint32(TypeFlowRemoved):           decodeFlowRemoved,
	uint32(TypePortStatus):            decodePortStatus,
	uint32(TypePacketOut):             decodePacketOut,
	uint32(TypeFlowMod):               decodeFlowMod,
	uint32(TypeGroupMod):              decodeGroupMod,
	uint32(TypePortMod):               fixedMessage(TypePortMod, func(xid uint32, d ofpPortMod) Message { return PortMod{xid, d} }),
	uint32(TypeTableMod):              fixedMessage(TypeTableMod, func(xid uint32, d ofpTableMod) Message { return TableMod{xid, d} }),
	uint32(TypeMultipartRequest):      decodeMultipartRequest,
	uint32(TypeMultipartReply):        decodeMultipartReply,
	uint32(TypeBarrierRequest):        headerOnly(TypeBarrierRequest, func(xid uint32) Message { return NewBarrierRequest(xid) }),
	uint32(TypeBarrierReply):          headerOnly(TypeBarrierReply, func(xid uint32) Message { return NewBarrierReply(xid) }),
	uint32(TypeQueueGetConfigRequest): fixedMessage(TypeQueueGetConfigRequest, func(xid uint32, d ofpQueueGetConfig) Message { return QueueGetConfigRequest{xid, d} }),
	uint32(TypeQueueGetConfigReply):   decodeQueueGetConfigReply,
	uint32(TypeRoleRequest):           fixedMessage(TypeRoleRequest, func(xid uint32, d ofpRole) Message { return RoleRequest{role{xid, d}} }),
	uint32(TypeRoleReply):             fixedMessage(TypeRoleReply, func(xid uint32, d ofpRole) Message { return RoleReply{role{xid, d}} }),
	uint32(TypeGetAsyncRequest):       headerOnly(TypeGetAsyncRequest, func(xid uint32) Message { return NewGetAsyncRequest(xid) }),
	uint32(TypeGetAsyncReply):         fixedMessage(TypeGetAsyncReply, func(xid uint32, d ofpAsyncConfig) Message { return GetAsyncReply{asyncConfig{xid, d}} }),
	uint32(TypeSetAsync):              fixedMessage(TypeSetAsync, func(xid uint32, d ofpAsyncConfig) Message { return SetAsync{asyncConfig{xid, d}} }),
	uint32(TypeMeterMod):              decodeMeterMod,
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

// headerMessage is the state of the messages that have no body.
type headerMessage struct {
	xid uint32
}

func (m headerMessage) Xid() uint32     { return m.xid }
func (m headerMessage) Length() int     { return HeaderLen }
func (m headerMessage) ByteLength() int { return HeaderLen }
func (m headerMessage) encode(b []byte, t MessageType) []byte {
	return appendHeader(b, t, HeaderLen, m.xid)
}

type Hello struct {
	xid      uint32
	elements HelloElementList
}

func NewHello(xid uint32, elements ...HelloElement) Hello {
	return Hello{xid: xid, elements: append(HelloElementList{}, elements...)}
}

func (m Hello) Elements() HelloElementList { return m.elements.Clone() }
func (m Hello) Type() MessageType          { return TypeHello }
func (m Hello) Xid() uint32                { return m.xid }
func (m Hello) Length() int                { return HeaderLen + m.elements.ByteLength() }
func (m Hello) ByteLength() int            { return m.Length() }

// VersionBitmap returns the first version bitmap element, if any.
func (m Hello) VersionBitmap() (VersionBitmap, bool) {
	for _, e := range m.elements {
		if v, ok := e.(VersionBitmap); ok {
			return v, true
		}
	}
	return VersionBitmap{}, false
}

func (m Hello) Encode(b []byte) []byte {
	b = appendHeader(b, TypeHello, m.Length(), m.xid)
	return m.elements.Encode(b)
}

func (m Hello) Equal(o Message) bool {
	x, ok := o.(Hello)
	return ok && m.xid == x.xid && m.elements.Equal(x.elements)
}

func (m Hello) Equivalent(o Message) bool {
	x, ok := o.(Hello)
	return ok && m.xid == x.xid && m.elements.Equivalent(x.elements)
}

func (Hello) isMessage() {}

func decodeHello(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeHello)
	if err != nil {
		return nil, err
	}
	elements, err := helloElements.DecodeList(body)
	if err != nil {
		return nil, err
	}
	return Hello{xid: xid, elements: elements}, nil
}

type ofpErrorMsg struct {
	Type uint16
	Code uint16
}

// ErrorMsg reports a failure to the peer. Data usually holds the beginning
// of the offending message.
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

func (m ErrorMsg) Equivalent(o Message) bool {
	return m.Equal(o)
}

func (ErrorMsg) isMessage() {}

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

// echo is the state of echo requests and replies.
type echo struct {
	xid  uint32
	data []byte
}

func (m echo) Data() []byte    { return wire.CloneBytes(m.data) }
func (m echo) Xid() uint32     { return m.xid }
func (m echo) Length() int     { return HeaderLen + len(m.data) }
func (m echo) ByteLength() int { return m.Length() }

func (m echo) encode(b []byte, t MessageType) []byte {
	b = appendHeader(b, t, m.Length(), m.xid)
	return append(b, m.data...)
}

func (m echo) equal(o echo) bool {
	return m.xid == o.xid && bytes.Equal(m.data, o.data)
}

func echoDecoder(t MessageType, wrap func(echo) Message) wire.DecodeFunc[Message] {
	return func(d *wire.Decoder) (Message, error) {
		xid, body, err := openMessage(d, t)
		if err != nil {
			return nil, err
		}
		return wrap(echo{xid: xid, data: body.Rest()}), nil
	}
}

type EchoRequest struct{ echo }

func NewEchoRequest(xid uint32, data []byte) EchoRequest {
	return EchoRequest{echo{xid: xid, data: wire.CloneBytes(data)}}
}

func (m EchoRequest) Type() MessageType      { return TypeEchoRequest }
func (m EchoRequest) Encode(b []byte) []byte { return m.encode(b, TypeEchoRequest) }

func (m EchoRequest) Equal(o Message) bool {
	x, ok := o.(EchoRequest)
	return ok && m.equal(x.echo)
}

func (m EchoRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (EchoRequest) isMessage()                  {}

type EchoReply struct{ echo }

func NewEchoReply(xid uint32, data []byte) EchoReply {
	return EchoReply{echo{xid: xid, data: wire.CloneBytes(data)}}
}

// Reply answers an echo request with the same xid and payload.
func (m EchoRequest) Reply() EchoReply {
	return NewEchoReply(m.xid, m.data)
}

func (m EchoReply) Type() MessageType      { return TypeEchoReply }
func (m EchoReply) Encode(b []byte) []byte { return m.encode(b, TypeEchoReply) }

func (m EchoReply) Equal(o Message) bool {
	x, ok := o.(EchoReply)
	return ok && m.equal(x.echo)
}

func (m EchoReply) Equivalent(o Message) bool { return m.Equal(o) }
func (EchoReply) isMessage()                  {}

type ofpExperimenter struct {
	Experimenter uint32
	ExpType      uint32
}

type Experimenter struct {
	xid  uint32
	d    ofpExperimenter
	data []byte
}

func NewExperimenter(xid, experimenter, expType uint32, data []byte) Experimenter {
	return Experimenter{
		xid:  xid,
		d:    ofpExperimenter{Experimenter: experimenter, ExpType: expType},
		data: wire.CloneBytes(data),
	}
}

func (m Experimenter) Experimenter() uint32 { return m.d.Experimenter }
func (m Experimenter) ExpType() uint32      { return m.d.ExpType }
func (m Experimenter) Data() []byte         { return wire.CloneBytes(m.data) }
func (m Experimenter) Type() MessageType    { return TypeExperimenter }
func (m Experimenter) Xid() uint32          { return m.xid }
func (m Experimenter) Length() int          { return 16 + len(m.data) }
func (m Experimenter) ByteLength() int      { return m.Length() }

func (m Experimenter) Encode(b []byte) []byte {
	b = appendHeader(b, TypeExperimenter, m.Length(), m.xid)
	b = wire.Append(b, &m.d)
	return append(b, m.data...)
}

func (m Experimenter) Equal(o Message) bool {
	x, ok := o.(Experimenter)
	return ok && m.xid == x.xid && m.d == x.d && bytes.Equal(m.data, x.data)
}

func (m Experimenter) Equivalent(o Message) bool { return m.Equal(o) }
func (Experimenter) isMessage()                  {}

func decodeExperimenter(d *wire.Decoder) (Message, error) {
	xid, body, err := openMessage(d, TypeExperimenter)
	if err != nil {
		return nil, err
	}
	m := Experimenter{xid: xid}
	if err := wire.Unpack(body, &m.d); err != nil {
		return nil, messageFamily.Truncated(16, HeaderLen+body.Len())
	}
	m.data = body.Rest()
	return m, nil
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
	AuxiliaryID  uint8
	Pad          [2]uint8
	Capabilities uint32
	Reserved     uint32
}

type FeaturesReply struct {
	xid uint32
	d   ofpSwitchFeatures
}

func NewFeaturesReply(xid uint32, datapathID uint64, nBuffers uint32, nTables, auxiliaryID uint8, capabilities uint32) FeaturesReply {
	return FeaturesReply{xid: xid, d: ofpSwitchFeatures{
		DatapathID:   datapathID,
		NBuffers:     nBuffers,
		NTables:      nTables,
		AuxiliaryID:  auxiliaryID,
		Capabilities: capabilities,
	}}
}

func (m FeaturesReply) DatapathID() uint64   { return m.d.DatapathID }
func (m FeaturesReply) NBuffers() uint32     { return m.d.NBuffers }
func (m FeaturesReply) NTables() uint8       { return m.d.NTables }
func (m FeaturesReply) AuxiliaryID() uint8   { return m.d.AuxiliaryID }
func (m FeaturesReply) Capabilities() uint32 { return m.d.Capabilities }
func (m FeaturesReply) Type() MessageType    { return TypeFeaturesReply }
func (m FeaturesReply) Xid() uint32          { return m.xid }
func (m FeaturesReply) Length() int          { return 32 }
func (m FeaturesReply) ByteLength() int      { return 32 }

func (m FeaturesReply) Encode(b []byte) []byte {
	b = appendHeader(b, TypeFeaturesReply, 32, m.xid)
	return wire.Append(b, &m.d)
}

func (m FeaturesReply) Equal(o Message) bool {
	x, ok := o.(FeaturesReply)
	return ok && m == x
}

func (m FeaturesReply) Equivalent(o Message) bool {
	x, ok := o.(FeaturesReply)
	if !ok {
		return false
	}
	p, q := m.d, x.d
	p.Pad, q.Pad = [2]uint8{}, [2]uint8{}
	p.Reserved, q.Reserved = 0, 0
	return m.xid == x.xid && p == q
}

func (FeaturesReply) isMessage() {}

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
	return GetConfigReply{switchConfig{xid, ofpSwitchConfig{Flags: flags, MissSendLen: missSendLen}}}
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
	return SetConfig{switchConfig{xid, ofpSwitchConfig{Flags: flags, MissSendLen: missSendLen}}}
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

type ofpRole struct {
	Role         uint32
	Pad          [4]uint8
	GenerationID uint64
}

// role is the state of role requests and replies.
type role struct {
	xid uint32
	d   ofpRole
}

func (m role) Role() uint32         { return m.d.Role }
func (m role) GenerationID() uint64 { return m.d.GenerationID }
func (m role) Xid() uint32          { return m.xid }
func (m role) Length() int          { return 24 }
func (m role) ByteLength() int      { return 24 }

func (m role) encode(b []byte, t MessageType) []byte {
	b = appendHeader(b, t, 24, m.xid)
	return wire.Append(b, &m.d)
}

func (m role) equivalent(o role) bool {
	return m.xid == o.xid && m.d.Role == o.d.Role && m.d.GenerationID == o.d.GenerationID
}

type RoleRequest struct{ role }

func NewRoleRequest(xid, r uint32, generationID uint64) RoleRequest {
	return RoleRequest{role{xid, ofpRole{Role: r, GenerationID: generationID}}}
}

func (m RoleRequest) Type() MessageType      { return TypeRoleRequest }
func (m RoleRequest) Encode(b []byte) []byte { return m.encode(b, TypeRoleRequest) }

func (m RoleRequest) Equal(o Message) bool {
	x, ok := o.(RoleRequest)
	return ok && m == x
}

func (m RoleRequest) Equivalent(o Message) bool {
	x, ok := o.(RoleRequest)
	return ok && m.equivalent(x.role)
}

func (RoleRequest) isMessage() {}

type RoleReply struct{ role }

func NewRoleReply(xid, r uint32, generationID uint64) RoleReply {
	return RoleReply{role{xid, ofpRole{Role: r, GenerationID: generationID}}}
}

func (m RoleReply) Type() MessageType      { return TypeRoleReply }
func (m RoleReply) Encode(b []byte) []byte { return m.encode(b, TypeRoleReply) }

func (m RoleReply) Equal(o Message) bool {
	x, ok := o.(RoleReply)
	return ok && m == x
}

func (m RoleReply) Equivalent(o Message) bool {
	x, ok := o.(RoleReply)
	return ok && m.equivalent(x.role)
}

func (RoleReply) isMessage() {}

type GetAsyncRequest struct{ headerMessage }

func NewGetAsyncRequest(xid uint32) GetAsyncRequest {
	return GetAsyncRequest{headerMessage{xid}}
}

func (m GetAsyncRequest) Type() MessageType      { return TypeGetAsyncRequest }
func (m GetAsyncRequest) Encode(b []byte) []byte { return m.encode(b, TypeGetAsyncRequest) }

func (m GetAsyncRequest) Equal(o Message) bool {
	x, ok := o.(GetAsyncRequest)
	return ok && m == x
}

func (m GetAsyncRequest) Equivalent(o Message) bool { return m.Equal(o) }
func (GetAsyncRequest) isMessage()                  {}

type ofpAsyncConfig struct {
	PacketInMaster    uint32
	PacketInSlave     uint32
	PortStatusMaster  uint32
	PortStatusSlave   uint32
	FlowRemovedMaster uint32
	FlowRemovedSlave  uint32
}

// AsyncMasks selects the asynchronous messages sent to a controller, per
// role: index 0 applies to master and equal, index 1 to slave.
type AsyncMasks struct {
	PacketIn    [2]uint32
	PortStatus  [2]uint32
	FlowRemoved [2]uint32
}

// asyncConfig is the state of get_async_reply and set_async.
type asyncConfig struct {
	xid uint32
	d   ofpAsyncConfig
}

func newAsyncConfig(xid uint32, m AsyncMasks) asyncConfig {
	return asyncConfig{xid: xid, d: ofpAsyncConfig{
		PacketInMaster:    m.PacketIn[0],
		PacketInSlave:     m.PacketIn[1],
		PortStatusMaster:  m.PortStatus[0],
		PortStatusSlave:   m.PortStatus[1],
		FlowRemovedMaster: m.FlowRemoved[0],
		FlowRemovedSlave:  m.FlowRemoved[1],
	}}
}

func (m asyncConfig) Masks() AsyncMasks {
	return AsyncMasks{
		PacketIn:    [2]uint32{m.d.PacketInMaster, m.d.PacketInSlave},
		PortStatus:  [2]uint32{m.d.PortStatusMaster, m.d.PortStatusSlave},
		FlowRemoved: [2]uint32{m.d.FlowRemovedMaster, m.d.FlowRemovedSlave},
	}
}

func (m asyncConfig) Xid() uint32     { return m.xid }
func (m asyncConfig) Length() int     { return 32 }
func (m asyncConfig) ByteLength() int { return 32 }

func (m asyncConfig) encode(b []byte, t MessageType) []byte {
	b = appendHeader(b, t, 32, m.xid)
	return wire.Append(b, &m.d)
}

type GetAsyncReply struct{ asyncConfig }

func NewGetAsyncReply(xid uint32, masks AsyncMasks) GetAsyncReply {
	return GetAsyncReply{newAsyncConfig(xid, masks)}
}

func (m GetAsyncReply) Type() MessageType      { return TypeGetAsyncReply }
func (m GetAsyncReply) Encode(b []byte) []byte { return m.encode(b, TypeGetAsyncReply) }

func (m GetAsyncReply) Equal(o Message) bool {
	x, ok := o.(GetAsyncReply)
	return ok && m == x
}

func (m GetAsyncReply) Equivalent(o Message) bool { return m.Equal(o) }
func (GetAsyncReply) isMessage()                  {}

type SetAsync struct{ asyncConfig }

func NewSetAsync(xid uint32, masks AsyncMasks) SetAsync {
	return SetAsync{newAsyncConfig(xid, masks)}
}

func (m SetAsync) Type() MessageType      { return TypeSetAsync }
func (m SetAsync) Encode(b []byte) []byte { return m.encode(b, TypeSetAsync) }

func (m SetAsync) Equal(o Message) bool {
	x, ok := o.(SetAsync)
	return ok && m == x
}

func (m SetAsync) Equivalent(o Message) bool { return m.Equal(o) }
func (SetAsync) isMessage()                  {}
