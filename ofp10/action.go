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
	"encoding/binary"
	"fmt"
	"net"

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

type ActionType uint16

const (
	ActionOutput     ActionType = 0
	ActionSetVlanVid ActionType = 1
	ActionSetVlanPcp ActionType = 2
	ActionStripVlan  ActionType = 3
	ActionSetDlSrc   ActionType = 4
	ActionSetDlDst   ActionType = 5
	ActionSetNwSrc   ActionType = 6
	ActionSetNwDst   ActionType = 7
	ActionSetNwTos   ActionType = 8
	ActionSetTpSrc   ActionType = 9
	ActionSetTpDst   ActionType = 10
	ActionEnqueue    ActionType = 11
	ActionVendor     ActionType = 0xffff
)

var actionNames = map[ActionType]string{
	ActionOutput:     "output",
	ActionSetVlanVid: "set_vlan_vid",
	ActionSetVlanPcp: "set_vlan_pcp",
	ActionStripVlan:  "strip_vlan",
	ActionSetDlSrc:   "set_dl_src",
	ActionSetDlDst:   "set_dl_dst",
	ActionSetNwSrc:   "set_nw_src",
	ActionSetNwDst:   "set_nw_dst",
	ActionSetNwTos:   "set_nw_tos",
	ActionSetTpSrc:   "set_tp_src",
	ActionSetTpDst:   "set_tp_dst",
	ActionEnqueue:    "enqueue",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("action(%#x)", uint16(t))
}

const actionKind = "action"

var actionSpecs = map[ActionType]wire.HeaderSpec{
	ActionOutput:     tlvSpec(actionKind, uint16(ActionOutput), 8, true),
	ActionSetVlanVid: tlvSpec(actionKind, uint16(ActionSetVlanVid), 8, true),
	ActionSetVlanPcp: tlvSpec(actionKind, uint16(ActionSetVlanPcp), 8, true),
	ActionStripVlan:  tlvSpec(actionKind, uint16(ActionStripVlan), 8, true),
	ActionSetDlSrc:   tlvSpec(actionKind, uint16(ActionSetDlSrc), 16, true),
	ActionSetDlDst:   tlvSpec(actionKind, uint16(ActionSetDlDst), 16, true),
	ActionSetNwSrc:   tlvSpec(actionKind, uint16(ActionSetNwSrc), 8, true),
	ActionSetNwDst:   tlvSpec(actionKind, uint16(ActionSetNwDst), 8, true),
	ActionSetNwTos:   tlvSpec(actionKind, uint16(ActionSetNwTos), 8, true),
	ActionSetTpSrc:   tlvSpec(actionKind, uint16(ActionSetTpSrc), 8, true),
	ActionSetTpDst:   tlvSpec(actionKind, uint16(ActionSetTpDst), 8, true),
	ActionEnqueue:    tlvSpec(actionKind, uint16(ActionEnqueue), 16, true),
}

// Action is one of the OpenFlow 1.0 actions defined in this package.
type Action interface {
	Type() ActionType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other Action) bool
	Equivalent(other Action) bool
	isAction()
}

type ActionList = wire.List[Action]

// ValidateActionHeader checks the header of the action encoded in b against
// the expected action type.
func ValidateActionHeader(expected ActionType, b []byte) error {
	if len(b) < tlvHeaderLen {
		return wire.Invalid(actionKind, wire.WhatLength)
	}
	spec, ok := actionSpecs[expected]
	if !ok {
		return wire.Invalid(actionKind, wire.WhatType)
	}
	return spec.Validate(binary.BigEndian.Uint16(b), int(binary.BigEndian.Uint16(b[2:])))
}

var actions = wire.NewRegistry[Action](actionFamily, tlvHeaderLen, tlvHeader, map[uint32]wire.DecodeFunc[Action]{
	uint32(ActionOutput):     fixedAction(ActionOutput, func(d ofpActionOutput) Action { return Output{action[ofpActionOutput]{d}} }),
	uint32(ActionSetVlanVid): fixedAction(ActionSetVlanVid, func(d ofpActionU16) Action { return SetVlanVid{action[ofpActionU16]{d}} }),
	uint32(ActionSetVlanPcp): fixedAction(ActionSetVlanPcp, func(d ofpActionU8) Action { return SetVlanPcp{action[ofpActionU8]{d}} }),
	uint32(ActionStripVlan):  fixedAction(ActionStripVlan, func(d ofpActionHeader) Action { return StripVlan{action[ofpActionHeader]{d}} }),
	uint32(ActionSetDlSrc):   fixedAction(ActionSetDlSrc, func(d ofpActionDlAddr) Action { return SetDlSrc{dlAddrAction{action[ofpActionDlAddr]{d}}} }),
	uint32(ActionSetDlDst):   fixedAction(ActionSetDlDst, func(d ofpActionDlAddr) Action { return SetDlDst{dlAddrAction{action[ofpActionDlAddr]{d}}} }),
	uint32(ActionSetNwSrc):   fixedAction(ActionSetNwSrc, func(d ofpActionNwAddr) Action { return SetNwSrc{nwAddrAction{action[ofpActionNwAddr]{d}}} }),
	uint32(ActionSetNwDst):   fixedAction(ActionSetNwDst, func(d ofpActionNwAddr) Action { return SetNwDst{nwAddrAction{action[ofpActionNwAddr]{d}}} }),
	uint32(ActionSetNwTos):   fixedAction(ActionSetNwTos, func(d ofpActionU8) Action { return SetNwTos{action[ofpActionU8]{d}} }),
	uint32(ActionSetTpSrc):   fixedAction(ActionSetTpSrc, func(d ofpActionU16) Action { return SetTpSrc{action[ofpActionU16]{d}} }),
	uint32(ActionSetTpDst):   fixedAction(ActionSetTpDst, func(d ofpActionU16) Action { return SetTpDst{action[ofpActionU16]{d}} }),
	uint32(ActionEnqueue):    fixedAction(ActionEnqueue, func(d ofpActionEnqueue) Action { return Enqueue{action[ofpActionEnqueue]{d}} }),
})

// DecodeAction decodes the action at the decoder position.
func DecodeAction(d *wire.Decoder) (Action, error) {
	return actions.Decode(d)
}

// DecodeActions decodes actions until d is exhausted.
func DecodeActions(d *wire.Decoder) (ActionList, error) {
	return actions.DecodeList(d)
}

func fixedAction[D any](typ ActionType, wrap func(D) Action) wire.DecodeFunc[Action] {
	spec := actionSpecs[typ]
	return func(d *wire.Decoder) (Action, error) {
		var desc D
		if err := decodeFixed(d, actionFamily, spec, &desc); err != nil {
			return nil, err
		}
		return wrap(desc), nil
	}
}

// actionDesc is a fixed size action descriptor. clean returns the
// descriptor with its padding zeroed.
type actionDesc[D any] interface {
	comparable
	header() ofpTLVHeader
	clean() D
}

// action holds the descriptor of a fixed size action. Its type and length
// live in the descriptor, so two actions of different types never compare
// equal even though they share a descriptor layout.
type action[D actionDesc[D]] struct {
	d D
}

func (a action[D]) desc() D                { return a.d }
func (a action[D]) Type() ActionType       { return ActionType(a.d.header().Type) }
func (a action[D]) Length() int            { return int(a.d.header().Len) }
func (a action[D]) ByteLength() int        { return int(a.d.header().Len) }
func (a action[D]) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a action[D]) Equal(o Action) bool {
	x, ok := o.(interface{ desc() D })
	return ok && a.d == x.desc()
}

func (a action[D]) Equivalent(o Action) bool {
	x, ok := o.(interface{ desc() D })
	return ok && a.d.clean() == x.desc().clean()
}

func (action[D]) isAction() {}

type ofpActionHeader struct {
	Type uint16
	Len  uint16
	Pad  [4]uint8
}

func (d ofpActionHeader) header() ofpTLVHeader { return ofpTLVHeader{d.Type, d.Len} }

func (d ofpActionHeader) clean() ofpActionHeader {
	d.Pad = [4]uint8{}
	return d
}

type ofpActionOutput struct {
	Type   uint16
	Len    uint16
	Port   uint16
	MaxLen uint16
}

func (d ofpActionOutput) header() ofpTLVHeader   { return ofpTLVHeader{d.Type, d.Len} }
func (d ofpActionOutput) clean() ofpActionOutput { return d }

// Output sends packets to a port. MaxLen bounds the bytes sent to the
// controller.
type Output struct{ action[ofpActionOutput] }

func NewOutput(port, maxLen uint16) Output {
	return Output{action[ofpActionOutput]{ofpActionOutput{
		Type:   uint16(ActionOutput),
		Len:    8,
		Port:   port,
		MaxLen: maxLen,
	}}}
}

// CreateOutput is NewOutput rejecting port 0, the none port and ports
// between PortMax and the reserved range.
func CreateOutput(port, maxLen uint16) (Output, error) {
	if port == 0 || port == PortNone || (port > PortMax && port < PortInPort) {
		return Output{}, errors.Errorf("output: invalid port %#x", port)
	}
	return NewOutput(port, maxLen), nil
}

func (a Output) Port() uint16   { return a.d.Port }
func (a Output) MaxLen() uint16 { return a.d.MaxLen }

type ofpActionU16 struct {
	Type  uint16
	Len   uint16
	Value uint16
	Pad   [2]uint8
}

func (d ofpActionU16) header() ofpTLVHeader { return ofpTLVHeader{d.Type, d.Len} }

func (d ofpActionU16) clean() ofpActionU16 {
	d.Pad = [2]uint8{}
	return d
}

func newU16(t ActionType, v uint16) action[ofpActionU16] {
	return action[ofpActionU16]{ofpActionU16{Type: uint16(t), Len: 8, Value: v}}
}

type ofpActionU8 struct {
	Type  uint16
	Len   uint16
	Value uint8
	Pad   [3]uint8
}

func (d ofpActionU8) header() ofpTLVHeader { return ofpTLVHeader{d.Type, d.Len} }

func (d ofpActionU8) clean() ofpActionU8 {
	d.Pad = [3]uint8{}
	return d
}

func newU8(t ActionType, v uint8) action[ofpActionU8] {
	return action[ofpActionU8]{ofpActionU8{Type: uint16(t), Len: 8, Value: v}}
}

// SetVlanVid sets the 802.1q VLAN id, pushing a tag if there is none.
type SetVlanVid struct{ action[ofpActionU16] }

func NewSetVlanVid(vid uint16) SetVlanVid { return SetVlanVid{newU16(ActionSetVlanVid, vid)} }

// CreateSetVlanVid rejects ids above 12 bits.
func CreateSetVlanVid(vid uint16) (SetVlanVid, error) {
	if vid > 0x0fff {
		return SetVlanVid{}, errors.Errorf("set_vlan_vid: invalid vlan id %#x", vid)
	}
	return NewSetVlanVid(vid), nil
}

func (a SetVlanVid) VlanVid() uint16 { return a.d.Value }

// SetVlanPcp sets the 802.1q priority.
type SetVlanPcp struct{ action[ofpActionU8] }

func NewSetVlanPcp(pcp uint8) SetVlanPcp { return SetVlanPcp{newU8(ActionSetVlanPcp, pcp)} }

// CreateSetVlanPcp rejects priorities above 7.
func CreateSetVlanPcp(pcp uint8) (SetVlanPcp, error) {
	if pcp > 7 {
		return SetVlanPcp{}, errors.Errorf("set_vlan_pcp: invalid priority %d", pcp)
	}
	return NewSetVlanPcp(pcp), nil
}

func (a SetVlanPcp) VlanPcp() uint8 { return a.d.Value }

// StripVlan removes the 802.1q header.
type StripVlan struct{ action[ofpActionHeader] }

func NewStripVlan() StripVlan {
	return StripVlan{action[ofpActionHeader]{ofpActionHeader{Type: uint16(ActionStripVlan), Len: 8}}}
}

type ofpActionDlAddr struct {
	Type uint16
	Len  uint16
	Addr [6]uint8
	Pad  [6]uint8
}

func (d ofpActionDlAddr) header() ofpTLVHeader { return ofpTLVHeader{d.Type, d.Len} }

func (d ofpActionDlAddr) clean() ofpActionDlAddr {
	d.Pad = [6]uint8{}
	return d
}

type dlAddrAction struct{ action[ofpActionDlAddr] }

func newDlAddr(t ActionType, addr net.HardwareAddr) dlAddrAction {
	a := dlAddrAction{action[ofpActionDlAddr]{ofpActionDlAddr{Type: uint16(t), Len: 16}}}
	copy(a.d.Addr[:], addr)
	return a
}

func (a dlAddrAction) Addr() net.HardwareAddr {
	return net.HardwareAddr(wire.CloneBytes(a.d.Addr[:]))
}

// SetDlSrc sets the Ethernet source address.
type SetDlSrc struct{ dlAddrAction }

func NewSetDlSrc(addr net.HardwareAddr) SetDlSrc { return SetDlSrc{newDlAddr(ActionSetDlSrc, addr)} }

// SetDlDst sets the Ethernet destination address.
type SetDlDst struct{ dlAddrAction }

func NewSetDlDst(addr net.HardwareAddr) SetDlDst { return SetDlDst{newDlAddr(ActionSetDlDst, addr)} }

type ofpActionNwAddr struct {
	Type uint16
	Len  uint16
	Addr uint32
}

func (d ofpActionNwAddr) header() ofpTLVHeader   { return ofpTLVHeader{d.Type, d.Len} }
func (d ofpActionNwAddr) clean() ofpActionNwAddr { return d }

type nwAddrAction struct{ action[ofpActionNwAddr] }

func newNwAddr(t ActionType, ip net.IP) nwAddrAction {
	return nwAddrAction{action[ofpActionNwAddr]{ofpActionNwAddr{Type: uint16(t), Len: 8, Addr: ipv4(ip)}}}
}

func (a nwAddrAction) Addr() net.IP { return ipFromUint32(a.d.Addr) }

// SetNwSrc sets the IPv4 source address.
type SetNwSrc struct{ nwAddrAction }

func NewSetNwSrc(ip net.IP) SetNwSrc { return SetNwSrc{newNwAddr(ActionSetNwSrc, ip)} }

// SetNwDst sets the IPv4 destination address.
type SetNwDst struct{ nwAddrAction }

func NewSetNwDst(ip net.IP) SetNwDst { return SetNwDst{newNwAddr(ActionSetNwDst, ip)} }

// SetNwTos sets the IP ToS DSCP bits.
type SetNwTos struct{ action[ofpActionU8] }

func NewSetNwTos(tos uint8) SetNwTos { return SetNwTos{newU8(ActionSetNwTos, tos)} }

// CreateSetNwTos rejects values with the two ECN bits set.
func CreateSetNwTos(tos uint8) (SetNwTos, error) {
	if tos&0x03 != 0 {
		return SetNwTos{}, errors.Errorf("set_nw_tos: invalid tos %#x", tos)
	}
	return NewSetNwTos(tos), nil
}

func (a SetNwTos) NwTos() uint8 { return a.d.Value }

// SetTpSrc sets the TCP or UDP source port.
type SetTpSrc struct{ action[ofpActionU16] }

func NewSetTpSrc(port uint16) SetTpSrc { return SetTpSrc{newU16(ActionSetTpSrc, port)} }

func (a SetTpSrc) TpPort() uint16 { return a.d.Value }

// SetTpDst sets the TCP or UDP destination port.
type SetTpDst struct{ action[ofpActionU16] }

func NewSetTpDst(port uint16) SetTpDst { return SetTpDst{newU16(ActionSetTpDst, port)} }

func (a SetTpDst) TpPort() uint16 { return a.d.Value }

type ofpActionEnqueue struct {
	Type    uint16
	Len     uint16
	Port    uint16
	Pad     [6]uint8
	QueueID uint32
}

func (d ofpActionEnqueue) header() ofpTLVHeader { return ofpTLVHeader{d.Type, d.Len} }

func (d ofpActionEnqueue) clean() ofpActionEnqueue {
	d.Pad = [6]uint8{}
	return d
}

// Enqueue outputs to a queue of a port.
type Enqueue struct{ action[ofpActionEnqueue] }

func NewEnqueue(port uint16, queueID uint32) Enqueue {
	return Enqueue{action[ofpActionEnqueue]{ofpActionEnqueue{
		Type:    uint16(ActionEnqueue),
		Len:     16,
		Port:    port,
		QueueID: queueID,
	}}}
}

// CreateEnqueue rejects ports that are neither physical nor in_port, and
// the all queues id.
func CreateEnqueue(port uint16, queueID uint32) (Enqueue, error) {
	if port == 0 || (port > PortMax && port != PortInPort) {
		return Enqueue{}, errors.Errorf("enqueue: invalid port %#x", port)
	}
	if queueID == QueueAll {
		return Enqueue{}, errors.Errorf("enqueue: invalid queue %#x", queueID)
	}
	return NewEnqueue(port, queueID), nil
}

func (a Enqueue) Port() uint16    { return a.d.Port }
func (a Enqueue) QueueID() uint32 { return a.d.QueueID }
