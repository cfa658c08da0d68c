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

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

type ActionType uint16

const (
	ActionOutput       ActionType = 0
	ActionCopyTTLOut   ActionType = 11
	ActionCopyTTLIn    ActionType = 12
	ActionSetMplsTTL   ActionType = 15
	ActionDecMplsTTL   ActionType = 16
	ActionPushVlan     ActionType = 17
	ActionPopVlan      ActionType = 18
	ActionPushMpls     ActionType = 19
	ActionPopMpls      ActionType = 20
	ActionSetQueue     ActionType = 21
	ActionGroup        ActionType = 22
	ActionSetNwTTL     ActionType = 23
	ActionDecNwTTL     ActionType = 24
	ActionSetField     ActionType = 25
	ActionPushPbb      ActionType = 26
	ActionPopPbb       ActionType = 27
	ActionExperimenter ActionType = 0xffff
)

var actionNames = map[ActionType]string{
	ActionOutput:     "output",
	ActionCopyTTLOut: "copy_ttl_out",
	ActionCopyTTLIn:  "copy_ttl_in",
	ActionSetMplsTTL: "set_mpls_ttl",
	ActionDecMplsTTL: "dec_mpls_ttl",
	ActionPushVlan:   "push_vlan",
	ActionPopVlan:    "pop_vlan",
	ActionPushMpls:   "push_mpls",
	ActionPopMpls:    "pop_mpls",
	ActionSetQueue:   "set_queue",
	ActionGroup:      "group",
	ActionSetNwTTL:   "set_nw_ttl",
	ActionDecNwTTL:   "dec_nw_ttl",
	ActionSetField:   "set_field",
	ActionPushPbb:    "push_pbb",
	ActionPopPbb:     "pop_pbb",
}

func (t ActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("action(%#x)", uint16(t))
}

const actionKind = "action"

var actionSpecs = map[ActionType]wire.HeaderSpec{
	ActionOutput:     tlvSpec(actionKind, uint16(ActionOutput), 16, true),
	ActionCopyTTLOut: tlvSpec(actionKind, uint16(ActionCopyTTLOut), 8, true),
	ActionCopyTTLIn:  tlvSpec(actionKind, uint16(ActionCopyTTLIn), 8, true),
	ActionSetMplsTTL: tlvSpec(actionKind, uint16(ActionSetMplsTTL), 8, true),
	ActionDecMplsTTL: tlvSpec(actionKind, uint16(ActionDecMplsTTL), 8, true),
	ActionPushVlan:   tlvSpec(actionKind, uint16(ActionPushVlan), 8, true),
	ActionPopVlan:    tlvSpec(actionKind, uint16(ActionPopVlan), 8, true),
	ActionPushMpls:   tlvSpec(actionKind, uint16(ActionPushMpls), 8, true),
	ActionPopMpls:    tlvSpec(actionKind, uint16(ActionPopMpls), 8, true),
	ActionSetQueue:   tlvSpec(actionKind, uint16(ActionSetQueue), 8, true),
	ActionGroup:      tlvSpec(actionKind, uint16(ActionGroup), 8, true),
	ActionSetNwTTL:   tlvSpec(actionKind, uint16(ActionSetNwTTL), 8, true),
	ActionDecNwTTL:   tlvSpec(actionKind, uint16(ActionDecNwTTL), 8, true),
	ActionSetField:   tlvSpec(actionKind, uint16(ActionSetField), 8, false),
	ActionPushPbb:    tlvSpec(actionKind, uint16(ActionPushPbb), 8, true),
	ActionPopPbb:     tlvSpec(actionKind, uint16(ActionPopPbb), 8, true),
}

// Action is one of the OpenFlow 1.3 actions defined in this package.
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
// the expected action type. For set_field the embedded OXM header is checked
// as well.
func ValidateActionHeader(expected ActionType, b []byte) error {
	if len(b) < tlvHeaderLen {
		return wire.Invalid(actionKind, wire.WhatLength)
	}
	spec, ok := actionSpecs[expected]
	if !ok {
		return wire.Invalid(actionKind, wire.WhatType)
	}
	length := int(binary.BigEndian.Uint16(b[2:]))
	if err := spec.Validate(binary.BigEndian.Uint16(b), length); err != nil {
		return err
	}
	if expected != ActionSetField {
		return nil
	}
	if len(b) < 2*tlvHeaderLen {
		return wire.Invalid(setFieldFamily.Kind, wire.WhatLength)
	}
	return ValidateSetFieldHeader(binary.BigEndian.Uint32(b[4:]), length)
}

// ValidateSetFieldHeader checks the OXM header embedded in a set_field
// action, then the action length against it.
func ValidateSetFieldHeader(oxm uint32, actionLen int) error {
	if err := ValidateOXMHeader(oxm); err != nil {
		return err
	}
	if actionLen != wire.Align8(tlvHeaderLen+oxmHeaderLen+int(oxm&0xff)) {
		return wire.Invalid(setFieldFamily.Kind, wire.WhatLength)
	}
	return nil
}

var actions = wire.NewRegistry[Action](actionFamily, tlvHeaderLen, tlvHeader, map[uint32]wire.DecodeFunc[Action]{
	uint32(ActionOutput): fixedAction(ActionOutput, func(d ofpActionOutput) Action { return Output{d} }),
	uint32(ActionCopyTTLOut): fixedAction(ActionCopyTTLOut, func(d ofpActionHeader) Action {
		return CopyTTLOut{headerAction{d}}
	}),
	uint32(ActionCopyTTLIn): fixedAction(ActionCopyTTLIn, func(d ofpActionHeader) Action {
		return CopyTTLIn{headerAction{d}}
	}),
	uint32(ActionSetMplsTTL): fixedAction(ActionSetMplsTTL, func(d ofpActionTTL) Action { return SetMplsTTL{d} }),
	uint32(ActionDecMplsTTL): fixedAction(ActionDecMplsTTL, func(d ofpActionHeader) Action {
		return DecMplsTTL{headerAction{d}}
	}),
	uint32(ActionPushVlan): fixedAction(ActionPushVlan, func(d ofpActionPush) Action { return PushVlan{pushAction{d}} }),
	uint32(ActionPopVlan): fixedAction(ActionPopVlan, func(d ofpActionHeader) Action {
		return PopVlan{headerAction{d}}
	}),
	uint32(ActionPushMpls): fixedAction(ActionPushMpls, func(d ofpActionPush) Action { return PushMpls{pushAction{d}} }),
	uint32(ActionPopMpls):  fixedAction(ActionPopMpls, func(d ofpActionPush) Action { return PopMpls{pushAction{d}} }),
	uint32(ActionSetQueue): fixedAction(ActionSetQueue, func(d ofpActionID) Action { return SetQueue{d} }),
	uint32(ActionGroup):    fixedAction(ActionGroup, func(d ofpActionID) Action { return Group{d} }),
	uint32(ActionSetNwTTL): fixedAction(ActionSetNwTTL, func(d ofpActionTTL) Action { return SetNwTTL{d} }),
	uint32(ActionDecNwTTL): fixedAction(ActionDecNwTTL, func(d ofpActionHeader) Action {
		return DecNwTTL{headerAction{d}}
	}),
	uint32(ActionSetField): decodeSetField,
	uint32(ActionPushPbb):  fixedAction(ActionPushPbb, func(d ofpActionPush) Action { return PushPbb{pushAction{d}} }),
	uint32(ActionPopPbb): fixedAction(ActionPopPbb, func(d ofpActionHeader) Action {
		return PopPbb{headerAction{d}}
	}),
})

// DecodeAction decodes the action at the decoder position.
func DecodeAction(d *wire.Decoder) (Action, error) {
	return actions.Decode(d)
}

// DecodeActions decodes actions until d is exhausted.
func DecodeActions(d *wire.Decoder) (ActionList, error) {
	return actions.DecodeList(d)
}

// fixedAction returns the decoder of a fixed size action whose whole state
// is its descriptor D.
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

type ofpActionHeader struct {
	Type uint16
	Len  uint16
	Pad  [4]uint8
}

func (d ofpActionHeader) clean() ofpActionHeader {
	d.Pad = [4]uint8{}
	return d
}

// headerAction is the state of the actions that carry no argument.
type headerAction struct {
	d ofpActionHeader
}

func newHeaderAction(t ActionType) headerAction {
	return headerAction{d: ofpActionHeader{Type: uint16(t), Len: 8}}
}

func (a headerAction) Type() ActionType       { return ActionType(a.d.Type) }
func (a headerAction) Length() int            { return 8 }
func (a headerAction) ByteLength() int        { return 8 }
func (a headerAction) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

type ofpActionOutput struct {
	Type   uint16
	Len    uint16
	Port   uint32
	MaxLen uint16
	Pad    [6]uint8
}

func (d ofpActionOutput) clean() ofpActionOutput {
	d.Pad = [6]uint8{}
	return d
}

// Output sends packets to a port.
type Output struct {
	d ofpActionOutput
}

func NewOutput(port uint32, maxLen uint16) Output {
	return Output{d: ofpActionOutput{
		Type:   uint16(ActionOutput),
		Len:    16,
		Port:   port,
		MaxLen: maxLen,
	}}
}

// CreateOutput is NewOutput rejecting ports that cannot be output to and
// controller lengths above ControllerMaxLen other than ControllerNoBuffer.
func CreateOutput(port uint32, maxLen uint16) (Output, error) {
	if port == 0 || port == PortAny || (port > PortMax && port < PortInPort) {
		return Output{}, errors.Errorf("output: invalid port %#x", port)
	}
	if maxLen > ControllerMaxLen && maxLen != ControllerNoBuffer {
		return Output{}, errors.Errorf("output: invalid max_len %#x", maxLen)
	}
	return NewOutput(port, maxLen), nil
}

func (a Output) Port() uint32           { return a.d.Port }
func (a Output) MaxLen() uint16         { return a.d.MaxLen }
func (a Output) Type() ActionType       { return ActionOutput }
func (a Output) Length() int            { return 16 }
func (a Output) ByteLength() int        { return 16 }
func (a Output) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a Output) Equal(o Action) bool {
	x, ok := o.(Output)
	return ok && a.d == x.d
}

func (a Output) Equivalent(o Action) bool {
	x, ok := o.(Output)
	return ok && a.d.clean() == x.d.clean()
}

func (Output) isAction() {}

// CopyTTLOut copies the TTL from the next-to-outermost header outwards.
type CopyTTLOut struct{ headerAction }

func NewCopyTTLOut() CopyTTLOut { return CopyTTLOut{newHeaderAction(ActionCopyTTLOut)} }

func (a CopyTTLOut) Equal(o Action) bool {
	x, ok := o.(CopyTTLOut)
	return ok && a.d == x.d
}

func (a CopyTTLOut) Equivalent(o Action) bool {
	x, ok := o.(CopyTTLOut)
	return ok && a.d.clean() == x.d.clean()
}

func (CopyTTLOut) isAction() {}

// CopyTTLIn copies the TTL from the outermost header inwards.
type CopyTTLIn struct{ headerAction }

func NewCopyTTLIn() CopyTTLIn { return CopyTTLIn{newHeaderAction(ActionCopyTTLIn)} }

func (a CopyTTLIn) Equal(o Action) bool {
	x, ok := o.(CopyTTLIn)
	return ok && a.d == x.d
}

func (a CopyTTLIn) Equivalent(o Action) bool {
	x, ok := o.(CopyTTLIn)
	return ok && a.d.clean() == x.d.clean()
}

func (CopyTTLIn) isAction() {}

type ofpActionTTL struct {
	Type uint16
	Len  uint16
	TTL  uint8
	Pad  [3]uint8
}

func (d ofpActionTTL) clean() ofpActionTTL {
	d.Pad = [3]uint8{}
	return d
}

type SetMplsTTL struct {
	d ofpActionTTL
}

func NewSetMplsTTL(ttl uint8) SetMplsTTL {
	return SetMplsTTL{d: ofpActionTTL{Type: uint16(ActionSetMplsTTL), Len: 8, TTL: ttl}}
}

func (a SetMplsTTL) TTL() uint8             { return a.d.TTL }
func (a SetMplsTTL) Type() ActionType       { return ActionSetMplsTTL }
func (a SetMplsTTL) Length() int            { return 8 }
func (a SetMplsTTL) ByteLength() int        { return 8 }
func (a SetMplsTTL) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a SetMplsTTL) Equal(o Action) bool {
	x, ok := o.(SetMplsTTL)
	return ok && a.d == x.d
}

func (a SetMplsTTL) Equivalent(o Action) bool {
	x, ok := o.(SetMplsTTL)
	return ok && a.d.clean() == x.d.clean()
}

func (SetMplsTTL) isAction() {}

type DecMplsTTL struct{ headerAction }

func NewDecMplsTTL() DecMplsTTL { return DecMplsTTL{newHeaderAction(ActionDecMplsTTL)} }

func (a DecMplsTTL) Equal(o Action) bool {
	x, ok := o.(DecMplsTTL)
	return ok && a.d == x.d
}

func (a DecMplsTTL) Equivalent(o Action) bool {
	x, ok := o.(DecMplsTTL)
	return ok && a.d.clean() == x.d.clean()
}

func (DecMplsTTL) isAction() {}

type ofpActionPush struct {
	Type      uint16
	Len       uint16
	Ethertype uint16
	Pad       [2]uint8
}

func (d ofpActionPush) clean() ofpActionPush {
	d.Pad = [2]uint8{}
	return d
}

// pushAction is the state of the actions carrying an ethertype.
type pushAction struct {
	d ofpActionPush
}

func newPushAction(t ActionType, ethertype uint16) pushAction {
	return pushAction{d: ofpActionPush{Type: uint16(t), Len: 8, Ethertype: ethertype}}
}

func (a pushAction) Ethertype() uint16      { return a.d.Ethertype }
func (a pushAction) Type() ActionType       { return ActionType(a.d.Type) }
func (a pushAction) Length() int            { return 8 }
func (a pushAction) ByteLength() int        { return 8 }
func (a pushAction) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

// PushVlan pushes a new VLAN tag with the given TPID.
type PushVlan struct{ pushAction }

func NewPushVlan(ethertype uint16) PushVlan {
	return PushVlan{newPushAction(ActionPushVlan, ethertype)}
}

// CreatePushVlan only accepts the 802.1Q and 802.1ad TPIDs.
func CreatePushVlan(ethertype uint16) (PushVlan, error) {
	if ethertype != 0x8100 && ethertype != 0x88a8 {
		return PushVlan{}, errors.Errorf("push_vlan: invalid ethertype %#04x", ethertype)
	}
	return NewPushVlan(ethertype), nil
}

func (a PushVlan) Equal(o Action) bool {
	x, ok := o.(PushVlan)
	return ok && a.d == x.d
}

func (a PushVlan) Equivalent(o Action) bool {
	x, ok := o.(PushVlan)
	return ok && a.d.clean() == x.d.clean()
}

func (PushVlan) isAction() {}

type PopVlan struct{ headerAction }

func NewPopVlan() PopVlan { return PopVlan{newHeaderAction(ActionPopVlan)} }

func (a PopVlan) Equal(o Action) bool {
	x, ok := o.(PopVlan)
	return ok && a.d == x.d
}

func (a PopVlan) Equivalent(o Action) bool {
	x, ok := o.(PopVlan)
	return ok && a.d.clean() == x.d.clean()
}

func (PopVlan) isAction() {}

type PushMpls struct{ pushAction }

func NewPushMpls(ethertype uint16) PushMpls {
	return PushMpls{newPushAction(ActionPushMpls, ethertype)}
}

// CreatePushMpls only accepts the MPLS unicast and multicast ethertypes.
func CreatePushMpls(ethertype uint16) (PushMpls, error) {
	if ethertype != 0x8847 && ethertype != 0x8848 {
		return PushMpls{}, errors.Errorf("push_mpls: invalid ethertype %#04x", ethertype)
	}
	return NewPushMpls(ethertype), nil
}

func (a PushMpls) Equal(o Action) bool {
	x, ok := o.(PushMpls)
	return ok && a.d == x.d
}

func (a PushMpls) Equivalent(o Action) bool {
	x, ok := o.(PushMpls)
	return ok && a.d.clean() == x.d.clean()
}

func (PushMpls) isAction() {}

// PopMpls pops the outer MPLS shim; the ethertype is the one of the payload.
type PopMpls struct{ pushAction }

func NewPopMpls(ethertype uint16) PopMpls {
	return PopMpls{newPushAction(ActionPopMpls, ethertype)}
}

func (a PopMpls) Equal(o Action) bool {
	x, ok := o.(PopMpls)
	return ok && a.d == x.d
}

func (a PopMpls) Equivalent(o Action) bool {
	x, ok := o.(PopMpls)
	return ok && a.d.clean() == x.d.clean()
}

func (PopMpls) isAction() {}

type ofpActionID struct {
	Type uint16
	Len  uint16
	ID   uint32
}

type SetQueue struct {
	d ofpActionID
}

func NewSetQueue(queueID uint32) SetQueue {
	return SetQueue{d: ofpActionID{Type: uint16(ActionSetQueue), Len: 8, ID: queueID}}
}

func (a SetQueue) QueueID() uint32        { return a.d.ID }
func (a SetQueue) Type() ActionType       { return ActionSetQueue }
func (a SetQueue) Length() int            { return 8 }
func (a SetQueue) ByteLength() int        { return 8 }
func (a SetQueue) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a SetQueue) Equal(o Action) bool {
	x, ok := o.(SetQueue)
	return ok && a.d == x.d
}

func (a SetQueue) Equivalent(o Action) bool {
	return a.Equal(o)
}

func (SetQueue) isAction() {}

type Group struct {
	d ofpActionID
}

func NewGroup(groupID uint32) Group {
	return Group{d: ofpActionID{Type: uint16(ActionGroup), Len: 8, ID: groupID}}
}

// CreateGroup rejects the reserved group numbers.
func CreateGroup(groupID uint32) (Group, error) {
	if groupID > GroupMax {
		return Group{}, errors.Errorf("group: invalid group id %#x", groupID)
	}
	return NewGroup(groupID), nil
}

func (a Group) GroupID() uint32        { return a.d.ID }
func (a Group) Type() ActionType       { return ActionGroup }
func (a Group) Length() int            { return 8 }
func (a Group) ByteLength() int        { return 8 }
func (a Group) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a Group) Equal(o Action) bool {
	x, ok := o.(Group)
	return ok && a.d == x.d
}

func (a Group) Equivalent(o Action) bool {
	return a.Equal(o)
}

func (Group) isAction() {}

type SetNwTTL struct {
	d ofpActionTTL
}

func NewSetNwTTL(ttl uint8) SetNwTTL {
	return SetNwTTL{d: ofpActionTTL{Type: uint16(ActionSetNwTTL), Len: 8, TTL: ttl}}
}

func (a SetNwTTL) TTL() uint8             { return a.d.TTL }
func (a SetNwTTL) Type() ActionType       { return ActionSetNwTTL }
func (a SetNwTTL) Length() int            { return 8 }
func (a SetNwTTL) ByteLength() int        { return 8 }
func (a SetNwTTL) Encode(b []byte) []byte { return wire.Append(b, &a.d) }

func (a SetNwTTL) Equal(o Action) bool {
	x, ok := o.(SetNwTTL)
	return ok && a.d == x.d
}

func (a SetNwTTL) Equivalent(o Action) bool {
	x, ok := o.(SetNwTTL)
	return ok && a.d.clean() == x.d.clean()
}

func (SetNwTTL) isAction() {}

type DecNwTTL struct{ headerAction }

func NewDecNwTTL() DecNwTTL { return DecNwTTL{newHeaderAction(ActionDecNwTTL)} }

func (a DecNwTTL) Equal(o Action) bool {
	x, ok := o.(DecNwTTL)
	return ok && a.d == x.d
}

func (a DecNwTTL) Equivalent(o Action) bool {
	x, ok := o.(DecNwTTL)
	return ok && a.d.clean() == x.d.clean()
}

func (DecNwTTL) isAction() {}

// SetField rewrites one header field. The action is padded to a multiple of
// 8 bytes.
type SetField struct {
	field MatchField
	pad   []byte
}

func NewSetField(field MatchField) SetField {
	return SetField{field: field}
}

// CreateSetField rejects masked fields, which OpenFlow 1.3 cannot set.
func CreateSetField(field MatchField) (SetField, error) {
	if field.HasMask() {
		return SetField{}, errors.Errorf("set_field: %s must not be masked", field.Field())
	}
	return NewSetField(field), nil
}

func (a SetField) Field() MatchField { return a.field }
func (a SetField) Type() ActionType  { return ActionSetField }
func (a SetField) Length() int       { return tlvHeaderLen + a.field.Length() }
func (a SetField) ByteLength() int   { return wire.Align8(a.Length()) }

func (a SetField) Encode(b []byte) []byte {
	b = wire.Append(b, &ofpTLVHeader{Type: uint16(ActionSetField), Len: uint16(a.ByteLength())})
	b = a.field.Encode(b)
	return append(b, padding(a.pad, a.Length())...)
}

func (a SetField) Equal(o Action) bool {
	x, ok := o.(SetField)
	return ok && a.field.Equal(x.field) && padEqual(a.pad, x.pad, a.Length())
}

func (a SetField) Equivalent(o Action) bool {
	x, ok := o.(SetField)
	return ok && a.field.Equivalent(x.field)
}

func (SetField) isAction() {}

func decodeSetField(d *wire.Decoder) (Action, error) {
	typ, length, err := peekTLV(d)
	if err != nil {
		return nil, actionFamily.Truncated(tlvHeaderLen, d.Len())
	}
	if err := actionFamily.Check(actionSpecs[ActionSetField], typ, length); err != nil {
		return nil, err
	}
	b, err := d.Next(length)
	if err != nil {
		return nil, actionFamily.Truncated(length, d.Len())
	}
	if err := ValidateSetFieldHeader(binary.BigEndian.Uint32(b[tlvHeaderLen:]), length); err != nil {
		return nil, setFieldFamily.Reject(err)
	}

	body := wire.NewDecoder(b[tlvHeaderLen:])
	field, err := decodeMatchField(body)
	if err != nil {
		return nil, err
	}
	return SetField{field: field, pad: body.Rest()}, nil
}

type ofpTLVHeader struct {
	Type uint16
	Len  uint16
}

type PushPbb struct{ pushAction }

func NewPushPbb(ethertype uint16) PushPbb {
	return PushPbb{newPushAction(ActionPushPbb, ethertype)}
}

func (a PushPbb) Equal(o Action) bool {
	x, ok := o.(PushPbb)
	return ok && a.d == x.d
}

func (a PushPbb) Equivalent(o Action) bool {
	x, ok := o.(PushPbb)
	return ok && a.d.clean() == x.d.clean()
}

func (PushPbb) isAction() {}

type PopPbb struct{ headerAction }

func NewPopPbb() PopPbb { return PopPbb{newHeaderAction(ActionPopPbb)} }

func (a PopPbb) Equal(o Action) bool {
	x, ok := o.(PopPbb)
	return ok && a.d == x.d
}

func (a PopPbb) Equivalent(o Action) bool {
	x, ok := o.(PopPbb)
	return ok && a.d.clean() == x.d.clean()
}

func (PopPbb) isAction() {}
