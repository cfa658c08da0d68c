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

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

type TableFeaturePropType uint16

const (
	TablePropInstructions      TableFeaturePropType = 0
	TablePropInstructionsMiss  TableFeaturePropType = 1
	TablePropNextTables        TableFeaturePropType = 2
	TablePropNextTablesMiss    TableFeaturePropType = 3
	TablePropWriteActions      TableFeaturePropType = 4
	TablePropWriteActionsMiss  TableFeaturePropType = 5
	TablePropApplyActions      TableFeaturePropType = 6
	TablePropApplyActionsMiss  TableFeaturePropType = 7
	TablePropMatch             TableFeaturePropType = 8
	TablePropWildcards         TableFeaturePropType = 10
	TablePropWriteSetfield     TableFeaturePropType = 12
	TablePropWriteSetfieldMiss TableFeaturePropType = 13
	TablePropApplySetfield     TableFeaturePropType = 14
	TablePropApplySetfieldMiss TableFeaturePropType = 15
	TablePropExperimenter      TableFeaturePropType = 0xfffe
	TablePropExperimenterMiss  TableFeaturePropType = 0xffff
)

// TableFeatureProperty is one capability list of a flow table. The wire
// length of a property excludes its padding to a multiple of 8 bytes.
type TableFeatureProperty interface {
	Type() TableFeaturePropType
	Length() int
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other TableFeatureProperty) bool
	Equivalent(other TableFeatureProperty) bool
	isTableFeatureProperty()
}

type TableFeaturePropertyList = wire.List[TableFeatureProperty]

// id sizes on the wire
const (
	idHeaderLen = 4
	tableIDLen  = 1
	oxmIDLen    = 4
)

// tableFeaturePropUnits is the size of one id in the list of each known
// property type.
var tableFeaturePropUnits = map[TableFeaturePropType]int{
	TablePropInstructions:      idHeaderLen,
	TablePropInstructionsMiss:  idHeaderLen,
	TablePropNextTables:        tableIDLen,
	TablePropNextTablesMiss:    tableIDLen,
	TablePropWriteActions:      idHeaderLen,
	TablePropWriteActionsMiss:  idHeaderLen,
	TablePropApplyActions:      idHeaderLen,
	TablePropApplyActionsMiss:  idHeaderLen,
	TablePropMatch:             oxmIDLen,
	TablePropWildcards:         oxmIDLen,
	TablePropWriteSetfield:     oxmIDLen,
	TablePropWriteSetfieldMiss: oxmIDLen,
	TablePropApplySetfield:     oxmIDLen,
	TablePropApplySetfieldMiss: oxmIDLen,
}

var tableFeatureProperties = wire.NewRegistry[TableFeatureProperty](tableFeaturePropertyFamily, tlvHeaderLen, tlvHeaderAligned, map[uint32]wire.DecodeFunc[TableFeatureProperty]{
	uint32(TablePropInstructions):      tableFeaturePropDecoder(wrapInstructions),
	uint32(TablePropInstructionsMiss):  tableFeaturePropDecoder(wrapInstructions),
	uint32(TablePropNextTables):        tableFeaturePropDecoder(wrapNextTables),
	uint32(TablePropNextTablesMiss):    tableFeaturePropDecoder(wrapNextTables),
	uint32(TablePropWriteActions):      tableFeaturePropDecoder(wrapActions),
	uint32(TablePropWriteActionsMiss):  tableFeaturePropDecoder(wrapActions),
	uint32(TablePropApplyActions):      tableFeaturePropDecoder(wrapActions),
	uint32(TablePropApplyActionsMiss):  tableFeaturePropDecoder(wrapActions),
	uint32(TablePropMatch):             tableFeaturePropDecoder(wrapOXM),
	uint32(TablePropWildcards):         tableFeaturePropDecoder(wrapOXM),
	uint32(TablePropWriteSetfield):     tableFeaturePropDecoder(wrapOXM),
	uint32(TablePropWriteSetfieldMiss): tableFeaturePropDecoder(wrapOXM),
	uint32(TablePropApplySetfield):     tableFeaturePropDecoder(wrapOXM),
	uint32(TablePropApplySetfieldMiss): tableFeaturePropDecoder(wrapOXM),
})

// DecodeTableFeatureProperties decodes properties until d is exhausted,
// skipping unknown ones.
func DecodeTableFeatureProperties(d *wire.Decoder) (TableFeaturePropertyList, error) {
	return tableFeatureProperties.DecodeList(d)
}

// ValidateTableFeaturePropertyHeader checks the header of the table feature
// property encoded in b against the expected property type. The declared
// length must cover a whole number of ids.
func ValidateTableFeaturePropertyHeader(expected TableFeaturePropType, b []byte) error {
	kind := tableFeaturePropertyFamily.Kind
	if len(b) < tlvHeaderLen {
		return wire.Invalid(kind, wire.WhatLength)
	}
	unit, ok := tableFeaturePropUnits[expected]
	if !ok {
		return wire.Invalid(kind, wire.WhatType)
	}
	length := int(binary.BigEndian.Uint16(b[2:]))
	spec := tlvSpec(kind, uint16(expected), tlvHeaderLen, false)
	if err := spec.Validate(binary.BigEndian.Uint16(b), length); err != nil {
		return err
	}
	if (length-tlvHeaderLen)%unit != 0 {
		return wire.Invalid(kind, wire.WhatLength)
	}
	return nil
}

func tableFeaturePropDecoder(wrap func(tableFeatureProp) TableFeatureProperty) wire.DecodeFunc[TableFeatureProperty] {
	return func(d *wire.Decoder) (TableFeatureProperty, error) {
		typ, _, err := peekTLV(d)
		if err != nil {
			return nil, tableFeaturePropertyFamily.Truncated(tlvHeaderLen, d.Len())
		}
		if err := ValidateTableFeaturePropertyHeader(TableFeaturePropType(typ), d.Bytes()); err != nil {
			return nil, tableFeaturePropertyFamily.Reject(err)
		}
		spec := tlvSpec(tableFeaturePropertyFamily.Kind, typ, tlvHeaderLen, false)
		body, pad, err := openTLV(d, tableFeaturePropertyFamily, spec, true)
		if err != nil {
			return nil, err
		}
		if err := body.Skip(tlvHeaderLen); err != nil {
			return nil, tableFeaturePropertyFamily.Truncated(tlvHeaderLen, body.Len())
		}
		return wrap(tableFeatureProp{typ: TableFeaturePropType(typ), payload: body.Rest(), pad: pad}), nil
	}
}

// tableFeatureProp keeps the id list of a property as it is on the wire.
type tableFeatureProp struct {
	typ     TableFeaturePropType
	payload []byte
	pad     []byte
}

func (p tableFeatureProp) Type() TableFeaturePropType { return p.typ }
func (p tableFeatureProp) Length() int                { return tlvHeaderLen + len(p.payload) }
func (p tableFeatureProp) ByteLength() int            { return wire.Align8(p.Length()) }

func (p tableFeatureProp) Encode(b []byte) []byte {
	b = wire.Append(b, &ofpTLVHeader{Type: uint16(p.typ), Len: uint16(p.Length())})
	b = append(b, p.payload...)
	return append(b, padding(p.pad, p.Length())...)
}

func (p tableFeatureProp) equal(o tableFeatureProp) bool {
	return p.equivalent(o) && padEqual(p.pad, o.pad, p.Length())
}

func (p tableFeatureProp) equivalent(o tableFeatureProp) bool {
	return p.typ == o.typ && bytes.Equal(p.payload, o.payload)
}

// headerIDs walks a list of type/length headers, as used for instruction
// and action ids.
func (p tableFeatureProp) headerIDs() []uint16 {
	var ids []uint16
	for b := p.payload; len(b) >= idHeaderLen; {
		ids = append(ids, binary.BigEndian.Uint16(b))
		n := int(binary.BigEndian.Uint16(b[2:]))
		if n < idHeaderLen || n > len(b) {
			break
		}
		b = b[n:]
	}
	return ids
}

func headerIDPayload(ids []uint16) []byte {
	b := make([]byte, 0, len(ids)*idHeaderLen)
	for _, id := range ids {
		b = wire.Append(b, &ofpTLVHeader{Type: id, Len: idHeaderLen})
	}
	return b
}

func checkPropType(t TableFeaturePropType, allowed ...TableFeaturePropType) error {
	for _, a := range allowed {
		if t == a {
			return nil
		}
	}
	return errors.Errorf("table feature property type %d does not fit this id list", t)
}

// TableFeatureInstructions lists the instructions a table supports.
type TableFeatureInstructions struct{ tableFeatureProp }

func wrapInstructions(p tableFeatureProp) TableFeatureProperty {
	return TableFeatureInstructions{p}
}

func NewTableFeatureInstructions(t TableFeaturePropType, ids ...InstructionType) TableFeatureInstructions {
	raw := make([]uint16, len(ids))
	for i, id := range ids {
		raw[i] = uint16(id)
	}
	return TableFeatureInstructions{tableFeatureProp{typ: t, payload: headerIDPayload(raw)}}
}

// CreateTableFeatureInstructions only accepts the instructions and
// instructions_miss property types.
func CreateTableFeatureInstructions(t TableFeaturePropType, ids ...InstructionType) (TableFeatureInstructions, error) {
	if err := checkPropType(t, TablePropInstructions, TablePropInstructionsMiss); err != nil {
		return TableFeatureInstructions{}, err
	}
	return NewTableFeatureInstructions(t, ids...), nil
}

func (p TableFeatureInstructions) IDs() []InstructionType {
	raw := p.headerIDs()
	ids := make([]InstructionType, len(raw))
	for i, id := range raw {
		ids[i] = InstructionType(id)
	}
	return ids
}

func (p TableFeatureInstructions) Equal(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureInstructions)
	return ok && p.equal(x.tableFeatureProp)
}

func (p TableFeatureInstructions) Equivalent(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureInstructions)
	return ok && p.equivalent(x.tableFeatureProp)
}

func (TableFeatureInstructions) isTableFeatureProperty() {}

// TableFeatureNextTables lists the tables goto_table may point at.
type TableFeatureNextTables struct{ tableFeatureProp }

func wrapNextTables(p tableFeatureProp) TableFeatureProperty {
	return TableFeatureNextTables{p}
}

func NewTableFeatureNextTables(t TableFeaturePropType, tableIDs ...uint8) TableFeatureNextTables {
	return TableFeatureNextTables{tableFeatureProp{typ: t, payload: wire.CloneBytes(tableIDs)}}
}

func CreateTableFeatureNextTables(t TableFeaturePropType, tableIDs ...uint8) (TableFeatureNextTables, error) {
	if err := checkPropType(t, TablePropNextTables, TablePropNextTablesMiss); err != nil {
		return TableFeatureNextTables{}, err
	}
	return NewTableFeatureNextTables(t, tableIDs...), nil
}

func (p TableFeatureNextTables) IDs() []uint8 {
	return wire.CloneBytes(p.payload)
}

func (p TableFeatureNextTables) Equal(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureNextTables)
	return ok && p.equal(x.tableFeatureProp)
}

func (p TableFeatureNextTables) Equivalent(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureNextTables)
	return ok && p.equivalent(x.tableFeatureProp)
}

func (TableFeatureNextTables) isTableFeatureProperty() {}

// TableFeatureActions lists the actions of write_actions or apply_actions.
type TableFeatureActions struct{ tableFeatureProp }

func wrapActions(p tableFeatureProp) TableFeatureProperty {
	return TableFeatureActions{p}
}

func NewTableFeatureActions(t TableFeaturePropType, ids ...ActionType) TableFeatureActions {
	raw := make([]uint16, len(ids))
	for i, id := range ids {
		raw[i] = uint16(id)
	}
	return TableFeatureActions{tableFeatureProp{typ: t, payload: headerIDPayload(raw)}}
}

func CreateTableFeatureActions(t TableFeaturePropType, ids ...ActionType) (TableFeatureActions, error) {
	err := checkPropType(t, TablePropWriteActions, TablePropWriteActionsMiss,
		TablePropApplyActions, TablePropApplyActionsMiss)
	if err != nil {
		return TableFeatureActions{}, err
	}
	return NewTableFeatureActions(t, ids...), nil
}

func (p TableFeatureActions) IDs() []ActionType {
	raw := p.headerIDs()
	ids := make([]ActionType, len(raw))
	for i, id := range raw {
		ids[i] = ActionType(id)
	}
	return ids
}

func (p TableFeatureActions) Equal(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureActions)
	return ok && p.equal(x.tableFeatureProp)
}

func (p TableFeatureActions) Equivalent(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureActions)
	return ok && p.equivalent(x.tableFeatureProp)
}

func (TableFeatureActions) isTableFeatureProperty() {}

// OXMID is the OXM header naming field f in a table feature property.
func OXMID(f OXMField, hasMask bool) uint32 {
	var m MatchField
	if hasMask {
		m = newMaskedField(f, nil, nil)
	} else {
		m = newField(f, nil)
	}
	return m.Header()
}

// TableFeatureOXM lists OXM headers: matchable, wildcardable or settable
// fields.
type TableFeatureOXM struct{ tableFeatureProp }

func wrapOXM(p tableFeatureProp) TableFeatureProperty {
	return TableFeatureOXM{p}
}

func NewTableFeatureOXM(t TableFeaturePropType, ids ...uint32) TableFeatureOXM {
	b := make([]byte, len(ids)*oxmIDLen)
	for i, id := range ids {
		binary.BigEndian.PutUint32(b[i*oxmIDLen:], id)
	}
	return TableFeatureOXM{tableFeatureProp{typ: t, payload: b}}
}

func CreateTableFeatureOXM(t TableFeaturePropType, ids ...uint32) (TableFeatureOXM, error) {
	err := checkPropType(t, TablePropMatch, TablePropWildcards,
		TablePropWriteSetfield, TablePropWriteSetfieldMiss,
		TablePropApplySetfield, TablePropApplySetfieldMiss)
	if err != nil {
		return TableFeatureOXM{}, err
	}
	return NewTableFeatureOXM(t, ids...), nil
}

func (p TableFeatureOXM) IDs() []uint32 {
	ids := make([]uint32, len(p.payload)/oxmIDLen)
	for i := range ids {
		ids[i] = binary.BigEndian.Uint32(p.payload[i*oxmIDLen:])
	}
	return ids
}

func (p TableFeatureOXM) Equal(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureOXM)
	return ok && p.equal(x.tableFeatureProp)
}

func (p TableFeatureOXM) Equivalent(o TableFeatureProperty) bool {
	x, ok := o.(TableFeatureOXM)
	return ok && p.equivalent(x.tableFeatureProp)
}

func (TableFeatureOXM) isTableFeatureProperty() {}

type ofpTableFeatures struct {
	Length        uint16
	TableID       uint8
	Pad           [5]uint8
	Name          [MaxTableNameLen]uint8
	MetadataMatch uint64
	MetadataWrite uint64
	Config        uint32
	MaxEntries    uint32
}

const tableFeaturesLen = 64

// TableFeatures describes one flow table and its capabilities.
type TableFeatures struct {
	d          ofpTableFeatures
	properties TableFeaturePropertyList
}

// NewTableFeatures truncates name to fit the 32 byte name field.
func NewTableFeatures(tableID uint8, name string, metadataMatch, metadataWrite uint64, config, maxEntries uint32, properties ...TableFeatureProperty) TableFeatures {
	t := TableFeatures{
		d: ofpTableFeatures{
			TableID:       tableID,
			MetadataMatch: metadataMatch,
			MetadataWrite: metadataWrite,
			Config:        config,
			MaxEntries:    maxEntries,
		},
		properties: append(TableFeaturePropertyList{}, properties...),
	}
	wire.PutName(t.d.Name[:], name)
	return t
}

func (t TableFeatures) TableID() uint8                       { return t.d.TableID }
func (t TableFeatures) Name() string                         { return wire.Name(t.d.Name[:]) }
func (t TableFeatures) MetadataMatch() uint64                { return t.d.MetadataMatch }
func (t TableFeatures) MetadataWrite() uint64                { return t.d.MetadataWrite }
func (t TableFeatures) Config() uint32                       { return t.d.Config }
func (t TableFeatures) MaxEntries() uint32                   { return t.d.MaxEntries }
func (t TableFeatures) Properties() TableFeaturePropertyList { return t.properties.Clone() }
func (t TableFeatures) Length() int                          { return tableFeaturesLen + t.properties.ByteLength() }
func (t TableFeatures) ByteLength() int                      { return t.Length() }

func (t TableFeatures) Encode(b []byte) []byte {
	d := t.d
	d.Length = uint16(t.Length())
	b = wire.Append(b, &d)
	return t.properties.Encode(b)
}

func (t TableFeatures) Equal(o TableFeatures) bool {
	p, q := t.d, o.d
	p.Length, q.Length = 0, 0
	return p == q && t.properties.Equal(o.properties)
}

func (t TableFeatures) Equivalent(o TableFeatures) bool {
	p, q := t.d, o.d
	p.Length, q.Length = 0, 0
	p.Pad, q.Pad = [5]uint8{}, [5]uint8{}
	return p == q && t.properties.Equivalent(o.properties)
}

func DecodeTableFeatures(d *wire.Decoder) (TableFeatures, error) {
	var t TableFeatures
	length, err := d.PeekUint16(0)
	if err != nil {
		return t, structFamily.Truncated(tableFeaturesLen, d.Len())
	}
	if int(length) < tableFeaturesLen {
		return t, tableFeaturePropertyFamily.Reject(wire.Invalid("table features", wire.WhatLength))
	}
	body, err := d.Sub(int(length))
	if err != nil {
		return t, structFamily.Truncated(int(length), d.Len())
	}
	if err := decodeStruct(body, &t.d); err != nil {
		return t, err
	}
	if t.properties, err = tableFeatureProperties.DecodeList(body); err != nil {
		return TableFeatures{}, err
	}
	return t, nil
}

type TableFeaturesList = wire.List[TableFeatures]

func DecodeTableFeaturesList(d *wire.Decoder) (TableFeaturesList, error) {
	return wire.DecodeList[TableFeatures](d, DecodeTableFeatures)
}
