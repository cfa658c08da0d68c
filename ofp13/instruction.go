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
	"fmt"

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

type InstructionType uint16

const (
	InstructionGotoTable     InstructionType = 1
	InstructionWriteMetadata InstructionType = 2
	InstructionWriteActions  InstructionType = 3
	InstructionApplyActions  InstructionType = 4
	InstructionClearActions  InstructionType = 5
	InstructionMeter         InstructionType = 6
	InstructionExperimenter  InstructionType = 0xffff
)

var instructionNames = map[InstructionType]string{
	InstructionGotoTable:     "goto_table",
	InstructionWriteMetadata: "write_metadata",
	InstructionWriteActions:  "write_actions",
	InstructionApplyActions:  "apply_actions",
	InstructionClearActions:  "clear_actions",
	InstructionMeter:         "meter",
}

func (t InstructionType) String() string {
	if name, ok := instructionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("instruction(%#x)", uint16(t))
}

const instructionKind = "instruction"

var instructionSpecs = map[InstructionType]wire.HeaderSpec{
	InstructionGotoTable:     tlvSpec(instructionKind, uint16(InstructionGotoTable), 8, true),
	InstructionWriteMetadata: tlvSpec(instructionKind, uint16(InstructionWriteMetadata), 24, true),
	InstructionWriteActions:  tlvSpec(instructionKind, uint16(InstructionWriteActions), 8, false),
	InstructionApplyActions:  tlvSpec(instructionKind, uint16(InstructionApplyActions), 8, false),
	InstructionClearActions:  tlvSpec(instructionKind, uint16(InstructionClearActions), 8, true),
	InstructionMeter:         tlvSpec(instructionKind, uint16(InstructionMeter), 8, true),
}

type Instruction interface {
	Type() InstructionType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other Instruction) bool
	Equivalent(other Instruction) bool
	isInstruction()
}

type InstructionList = wire.List[Instruction]

var instructions = wire.NewRegistry[Instruction](instructionFamily, tlvHeaderLen, tlvHeader, map[uint32]wire.DecodeFunc[Instruction]{
	uint32(InstructionGotoTable): fixedInstruction(InstructionGotoTable, func(d ofpInstructionGotoTable) Instruction {
		return GotoTable{d}
	}),
	uint32(InstructionWriteMetadata): fixedInstruction(InstructionWriteMetadata, func(d ofpInstructionWriteMetadata) Instruction {
		return WriteMetadata{d}
	}),
	uint32(InstructionWriteActions): actionsInstructionDecoder(func(i actionsInstruction) Instruction {
		return WriteActions{i}
	}),
	uint32(InstructionApplyActions): actionsInstructionDecoder(func(i actionsInstruction) Instruction {
		return ApplyActions{i}
	}),
	uint32(InstructionClearActions): fixedInstruction(InstructionClearActions, func(d ofpInstructionHeader) Instruction {
		return ClearActions{d}
	}),
	uint32(InstructionMeter): fixedInstruction(InstructionMeter, func(d ofpInstructionMeter) Instruction {
		return Meter{d}
	}),
})

func DecodeInstruction(d *wire.Decoder) (Instruction, error) {
	return instructions.Decode(d)
}

func DecodeInstructions(d *wire.Decoder) (InstructionList, error) {
	return instructions.DecodeList(d)
}

func fixedInstruction[D any](typ InstructionType, wrap func(D) Instruction) wire.DecodeFunc[Instruction] {
	spec := instructionSpecs[typ]
	return func(d *wire.Decoder) (Instruction, error) {
		var desc D
		if err := decodeFixed(d, instructionFamily, spec, &desc); err != nil {
			return nil, err
		}
		return wrap(desc), nil
	}
}

type ofpInstructionGotoTable struct {
	Type    uint16
	Len     uint16
	TableID uint8
	Pad     [3]uint8
}

type GotoTable struct {
	d ofpInstructionGotoTable
}

func NewGotoTable(tableID uint8) GotoTable {
	return GotoTable{d: ofpInstructionGotoTable{
		Type:    uint16(InstructionGotoTable),
		Len:     8,
		TableID: tableID,
	}}
}

// CreateGotoTable rejects OFPTT_ALL, which is not a table.
func CreateGotoTable(tableID uint8) (GotoTable, error) {
	if tableID > TableMax {
		return GotoTable{}, errors.Errorf("goto_table: invalid table id %d", tableID)
	}
	return NewGotoTable(tableID), nil
}

func (i GotoTable) TableID() uint8         { return i.d.TableID }
func (i GotoTable) Type() InstructionType  { return InstructionGotoTable }
func (i GotoTable) Length() int            { return 8 }
func (i GotoTable) ByteLength() int        { return 8 }
func (i GotoTable) Encode(b []byte) []byte { return wire.Append(b, &i.d) }

func (i GotoTable) Equal(o Instruction) bool {
	x, ok := o.(GotoTable)
	return ok && i.d == x.d
}

func (i GotoTable) Equivalent(o Instruction) bool {
	x, ok := o.(GotoTable)
	return ok && i.d.TableID == x.d.TableID
}

func (GotoTable) isInstruction() {}

type ofpInstructionWriteMetadata struct {
	Type         uint16
	Len          uint16
	Pad          [4]uint8
	Metadata     uint64
	MetadataMask uint64
}

type WriteMetadata struct {
	d ofpInstructionWriteMetadata
}

func NewWriteMetadata(metadata, mask uint64) WriteMetadata {
	return WriteMetadata{d: ofpInstructionWriteMetadata{
		Type:         uint16(InstructionWriteMetadata),
		Len:          24,
		Metadata:     metadata,
		MetadataMask: mask,
	}}
}

func (i WriteMetadata) Metadata() uint64       { return i.d.Metadata }
func (i WriteMetadata) MetadataMask() uint64   { return i.d.MetadataMask }
func (i WriteMetadata) Type() InstructionType  { return InstructionWriteMetadata }
func (i WriteMetadata) Length() int            { return 24 }
func (i WriteMetadata) ByteLength() int        { return 24 }
func (i WriteMetadata) Encode(b []byte) []byte { return wire.Append(b, &i.d) }

func (i WriteMetadata) Equal(o Instruction) bool {
	x, ok := o.(WriteMetadata)
	return ok && i.d == x.d
}

// Equivalent compares the metadata bits the mask selects.
func (i WriteMetadata) Equivalent(o Instruction) bool {
	x, ok := o.(WriteMetadata)
	return ok && i.d.MetadataMask == x.d.MetadataMask &&
		i.d.Metadata&i.d.MetadataMask == x.d.Metadata&x.d.MetadataMask
}

func (WriteMetadata) isInstruction() {}

type ofpInstructionHeader struct {
	Type uint16
	Len  uint16
	Pad  [4]uint8
}

// actionsInstruction is the state of write_actions and apply_actions.
type actionsInstruction struct {
	d       ofpInstructionHeader
	actions ActionList
}

func newActionsInstruction(t InstructionType, actions []Action) actionsInstruction {
	i := actionsInstruction{
		d:       ofpInstructionHeader{Type: uint16(t)},
		actions: append(ActionList{}, actions...),
	}
	i.d.Len = uint16(i.Length())
	return i
}

// Actions returns a copy of the action list.
func (i actionsInstruction) Actions() ActionList   { return i.actions.Clone() }
func (i actionsInstruction) Type() InstructionType { return InstructionType(i.d.Type) }
func (i actionsInstruction) Length() int           { return 8 + i.actions.ByteLength() }
func (i actionsInstruction) ByteLength() int       { return i.Length() }

func (i actionsInstruction) Encode(b []byte) []byte {
	d := i.d
	d.Len = uint16(i.Length())
	b = wire.Append(b, &d)
	return i.actions.Encode(b)
}

func (i actionsInstruction) equal(o actionsInstruction) bool {
	return i.d == o.d && i.actions.Equal(o.actions)
}

func (i actionsInstruction) equivalent(o actionsInstruction) bool {
	return i.actions.Equivalent(o.actions)
}

func actionsInstructionDecoder(wrap func(actionsInstruction) Instruction) wire.DecodeFunc[Instruction] {
	return func(d *wire.Decoder) (Instruction, error) {
		typ, _, err := peekTLV(d)
		if err != nil {
			return nil, instructionFamily.Truncated(tlvHeaderLen, d.Len())
		}
		spec, ok := instructionSpecs[InstructionType(typ)]
		if !ok {
			return nil, instructionFamily.Unknown(uint32(typ))
		}
		body, _, err := openTLV(d, instructionFamily, spec, false)
		if err != nil {
			return nil, err
		}
		var i actionsInstruction
		if err := wire.Unpack(body, &i.d); err != nil {
			return nil, instructionFamily.Truncated(8, body.Len())
		}
		if i.actions, err = actions.DecodeList(body); err != nil {
			return nil, err
		}
		return wrap(i), nil
	}
}

// WriteActions merges actions into the action set.
type WriteActions struct{ actionsInstruction }

func NewWriteActions(actions ...Action) WriteActions {
	return WriteActions{newActionsInstruction(InstructionWriteActions, actions)}
}

func (i WriteActions) Equal(o Instruction) bool {
	x, ok := o.(WriteActions)
	return ok && i.equal(x.actionsInstruction)
}

func (i WriteActions) Equivalent(o Instruction) bool {
	x, ok := o.(WriteActions)
	return ok && i.equivalent(x.actionsInstruction)
}

func (WriteActions) isInstruction() {}

// ApplyActions applies actions immediately, in order.
type ApplyActions struct{ actionsInstruction }

func NewApplyActions(actions ...Action) ApplyActions {
	return ApplyActions{newActionsInstruction(InstructionApplyActions, actions)}
}

func (i ApplyActions) Equal(o Instruction) bool {
	x, ok := o.(ApplyActions)
	return ok && i.equal(x.actionsInstruction)
}

func (i ApplyActions) Equivalent(o Instruction) bool {
	x, ok := o.(ApplyActions)
	return ok && i.equivalent(x.actionsInstruction)
}

func (ApplyActions) isInstruction() {}

type ClearActions struct {
	d ofpInstructionHeader
}

func NewClearActions() ClearActions {
	return ClearActions{d: ofpInstructionHeader{Type: uint16(InstructionClearActions), Len: 8}}
}

func (i ClearActions) Type() InstructionType  { return InstructionClearActions }
func (i ClearActions) Length() int            { return 8 }
func (i ClearActions) ByteLength() int        { return 8 }
func (i ClearActions) Encode(b []byte) []byte { return wire.Append(b, &i.d) }

func (i ClearActions) Equal(o Instruction) bool {
	x, ok := o.(ClearActions)
	return ok && i.d == x.d
}

func (i ClearActions) Equivalent(o Instruction) bool {
	_, ok := o.(ClearActions)
	return ok
}

func (ClearActions) isInstruction() {}

type ofpInstructionMeter struct {
	Type    uint16
	Len     uint16
	MeterID uint32
}

type Meter struct {
	d ofpInstructionMeter
}

func NewMeter(meterID uint32) Meter {
	return Meter{d: ofpInstructionMeter{Type: uint16(InstructionMeter), Len: 8, MeterID: meterID}}
}

func (i Meter) MeterID() uint32        { return i.d.MeterID }
func (i Meter) Type() InstructionType  { return InstructionMeter }
func (i Meter) Length() int            { return 8 }
func (i Meter) ByteLength() int        { return 8 }
func (i Meter) Encode(b []byte) []byte { return wire.Append(b, &i.d) }

func (i Meter) Equal(o Instruction) bool {
	x, ok := o.(Meter)
	return ok && i.d == x.d
}

func (i Meter) Equivalent(o Instruction) bool {
	return i.Equal(o)
}

func (Meter) isInstruction() {}
