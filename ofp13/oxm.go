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
	"fmt"
	"math/bits"
	"net"

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/wire"
)

type OXMClass uint16

const (
	OXMClassNXM0          OXMClass = 0x0000
	OXMClassNXM1          OXMClass = 0x0001
	OXMClassOpenFlowBasic OXMClass = 0x8000
	OXMClassExperimenter  OXMClass = 0xffff
)

// OXMField identifies a field of the OpenFlow basic OXM class.
type OXMField uint8

const (
	OXMInPort OXMField = iota
	OXMInPhyPort
	OXMMetadata
	OXMEthDst
	OXMEthSrc
	OXMEthType
	OXMVlanVid
	OXMVlanPcp
	OXMIPDscp
	OXMIPEcn
	OXMIPProto
	OXMIPv4Src
	OXMIPv4Dst
	OXMTCPSrc
	OXMTCPDst
	OXMUDPSrc
	OXMUDPDst
	OXMSCTPSrc
	OXMSCTPDst
	OXMICMPv4Type
	OXMICMPv4Code
	OXMArpOp
	OXMArpSpa
	OXMArpTpa
	OXMArpSha
	OXMArpTha
	OXMIPv6Src
	OXMIPv6Dst
	OXMIPv6Flabel
	OXMICMPv6Type
	OXMICMPv6Code
	OXMIPv6NDTarget
	OXMIPv6NDSll
	OXMIPv6NDTll
	OXMMplsLabel
	OXMMplsTC
	OXMMplsBos
	OXMPbbIsid
	OXMTunnelID
	OXMIPv6Exthdr
)

const (
	oxmHeaderLen = 4
	maxOXMSize   = 16
)

type oxmInfo struct {
	name     string
	size     int
	maskable bool
	// significant bits of the value; nil when every bit counts
	bits []byte
}

var oxmInfos = [...]oxmInfo{
	OXMInPort:       {"in_port", 4, false, nil},
	OXMInPhyPort:    {"in_phy_port", 4, false, nil},
	OXMMetadata:     {"metadata", 8, true, nil},
	OXMEthDst:       {"eth_dst", 6, true, nil},
	OXMEthSrc:       {"eth_src", 6, true, nil},
	OXMEthType:      {"eth_type", 2, false, nil},
	OXMVlanVid:      {"vlan_vid", 2, true, []byte{0x1f, 0xff}},
	OXMVlanPcp:      {"vlan_pcp", 1, false, []byte{0x07}},
	OXMIPDscp:       {"ip_dscp", 1, false, []byte{0x3f}},
	OXMIPEcn:        {"ip_ecn", 1, false, []byte{0x03}},
	OXMIPProto:      {"ip_proto", 1, false, nil},
	OXMIPv4Src:      {"ipv4_src", 4, true, nil},
	OXMIPv4Dst:      {"ipv4_dst", 4, true, nil},
	OXMTCPSrc:       {"tcp_src", 2, false, nil},
	OXMTCPDst:       {"tcp_dst", 2, false, nil},
	OXMUDPSrc:       {"udp_src", 2, false, nil},
	OXMUDPDst:       {"udp_dst", 2, false, nil},
	OXMSCTPSrc:      {"sctp_src", 2, false, nil},
	OXMSCTPDst:      {"sctp_dst", 2, false, nil},
	OXMICMPv4Type:   {"icmpv4_type", 1, false, nil},
	OXMICMPv4Code:   {"icmpv4_code", 1, false, nil},
	OXMArpOp:        {"arp_op", 2, false, nil},
	OXMArpSpa:       {"arp_spa", 4, true, nil},
	OXMArpTpa:       {"arp_tpa", 4, true, nil},
	OXMArpSha:       {"arp_sha", 6, true, nil},
	OXMArpTha:       {"arp_tha", 6, true, nil},
	OXMIPv6Src:      {"ipv6_src", 16, true, nil},
	OXMIPv6Dst:      {"ipv6_dst", 16, true, nil},
	OXMIPv6Flabel:   {"ipv6_flabel", 4, true, []byte{0x00, 0x0f, 0xff, 0xff}},
	OXMICMPv6Type:   {"icmpv6_type", 1, false, nil},
	OXMICMPv6Code:   {"icmpv6_code", 1, false, nil},
	OXMIPv6NDTarget: {"ipv6_nd_target", 16, false, nil},
	OXMIPv6NDSll:    {"ipv6_nd_sll", 6, false, nil},
	OXMIPv6NDTll:    {"ipv6_nd_tll", 6, false, nil},
	OXMMplsLabel:    {"mpls_label", 4, false, []byte{0x00, 0x0f, 0xff, 0xff}},
	OXMMplsTC:       {"mpls_tc", 1, false, []byte{0x07}},
	OXMMplsBos:      {"mpls_bos", 1, false, []byte{0x01}},
	OXMPbbIsid:      {"pbb_isid", 3, true, nil},
	OXMTunnelID:     {"tunnel_id", 8, true, nil},
	OXMIPv6Exthdr:   {"ipv6_exthdr", 2, true, []byte{0x01, 0xff}},
}

func (f OXMField) valid() bool {
	return int(f) < len(oxmInfos)
}

func (f OXMField) String() string {
	if f.valid() {
		return oxmInfos[f].name
	}
	return fmt.Sprintf("oxm(%d)", uint8(f))
}

// Size is the length of the field value in bytes.
func (f OXMField) Size() int {
	if f.valid() {
		return oxmInfos[f].size
	}
	return 0
}

func (f OXMField) Maskable() bool {
	return f.valid() && oxmInfos[f].maskable
}

// oxmType is the class and field part of an OXM header, i.e. the header
// without the mask bit and length.
func oxmType(class OXMClass, f OXMField) uint32 {
	return uint32(class)<<7 | uint32(f)
}

type ofpOXMHeader struct {
	Class  uint16
	Field  uint8
	Length uint8
}

// MatchField is a single OXM TLV of the OpenFlow basic class.
type MatchField struct {
	field   OXMField
	hasMask bool
	value   [maxOXMSize]uint8
	mask    [maxOXMSize]uint8
}

func newField(f OXMField, value []byte) MatchField {
	m := MatchField{field: f}
	copy(m.value[:f.Size()], value)
	return m
}

func newMaskedField(f OXMField, value, mask []byte) MatchField {
	m := newField(f, value)
	m.hasMask = true
	copy(m.mask[:f.Size()], mask)
	return m
}

func uintBytes(v uint64, size int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b[8-size:]
}

func newUintField(f OXMField, v uint64) MatchField {
	return newField(f, uintBytes(v, f.Size()))
}

func newUintMaskedField(f OXMField, v, mask uint64) MatchField {
	return newMaskedField(f, uintBytes(v, f.Size()), uintBytes(mask, f.Size()))
}

func ipBytes(ip net.IP, size int) []byte {
	if size == net.IPv4len {
		return ip.To4()
	}
	return ip.To16()
}

func newIPField(f OXMField, ip net.IP) MatchField {
	return newField(f, ipBytes(ip, f.Size()))
}

func newIPMaskedField(f OXMField, ip net.IP, mask net.IPMask) MatchField {
	return newMaskedField(f, ipBytes(ip, f.Size()), mask)
}

func createPrefixedField(f OXMField, ip net.IP, prefix int) (MatchField, error) {
	size := f.Size()
	addr := ipBytes(ip, size)
	if addr == nil {
		return MatchField{}, errors.Errorf("%s: %v is not a %d byte address", f, ip, size)
	}
	if prefix < 0 || prefix > size*8 {
		return MatchField{}, errors.Errorf("%s: invalid prefix length %d", f, prefix)
	}
	if prefix == size*8 {
		return newField(f, addr), nil
	}
	return newMaskedField(f, addr, net.CIDRMask(prefix, size*8)), nil
}

// CreateMatchField builds a field from raw value and mask bytes. A nil mask
// means the field is not masked.
func CreateMatchField(f OXMField, value, mask []byte) (MatchField, error) {
	if !f.valid() {
		return MatchField{}, errors.Errorf("unknown oxm field %d", f)
	}
	if len(value) != f.Size() {
		return MatchField{}, errors.Errorf("%s: value must be %d bytes, got %d", f, f.Size(), len(value))
	}
	if mask == nil {
		return newField(f, value), nil
	}
	if !f.Maskable() {
		return MatchField{}, errors.Errorf("%s cannot be masked", f)
	}
	if len(mask) != f.Size() {
		return MatchField{}, errors.Errorf("%s: mask must be %d bytes, got %d", f, f.Size(), len(mask))
	}
	return newMaskedField(f, value, mask), nil
}

func NewInPort(port uint32) MatchField    { return newUintField(OXMInPort, uint64(port)) }
func NewInPhyPort(port uint32) MatchField { return newUintField(OXMInPhyPort, uint64(port)) }
func NewMetadata(v uint64) MatchField     { return newUintField(OXMMetadata, v) }

func NewMetadataMasked(v, mask uint64) MatchField {
	return newUintMaskedField(OXMMetadata, v, mask)
}

func NewEthDst(addr net.HardwareAddr) MatchField { return newField(OXMEthDst, addr) }
func NewEthSrc(addr net.HardwareAddr) MatchField { return newField(OXMEthSrc, addr) }

func NewEthDstMasked(addr, mask net.HardwareAddr) MatchField {
	return newMaskedField(OXMEthDst, addr, mask)
}

func NewEthSrcMasked(addr, mask net.HardwareAddr) MatchField {
	return newMaskedField(OXMEthSrc, addr, mask)
}

func NewEthType(t uint16) MatchField { return newUintField(OXMEthType, uint64(t)) }

// NewVlanVid matches a VLAN id without checking its range. VlanNone matches
// untagged packets.
func NewVlanVid(vid uint16) MatchField {
	if vid == VlanNone {
		return newUintField(OXMVlanVid, uint64(VidNone))
	}
	return newUintField(OXMVlanVid, uint64(vid|VidPresent))
}

// CreateVlanVid is NewVlanVid restricted to 0 through VlanMax and VlanNone.
func CreateVlanVid(vid uint16) (MatchField, error) {
	if vid > VlanMax && vid != VlanNone {
		return MatchField{}, errors.Errorf("vlan_vid: %#x is out of range", vid)
	}
	return NewVlanVid(vid), nil
}

// NewVlanVidMasked matches raw OXM vlan_vid bits, OFPVID_PRESENT included.
func NewVlanVidMasked(value, mask uint16) MatchField {
	return newUintMaskedField(OXMVlanVid, uint64(value), uint64(mask))
}

func NewVlanPcp(pcp uint8) MatchField            { return newUintField(OXMVlanPcp, uint64(pcp)) }
func NewIPDscp(dscp uint8) MatchField            { return newUintField(OXMIPDscp, uint64(dscp)) }
func NewIPEcn(ecn uint8) MatchField              { return newUintField(OXMIPEcn, uint64(ecn)) }
func NewIPProto(proto uint8) MatchField          { return newUintField(OXMIPProto, uint64(proto)) }
func NewIPv4Src(ip net.IP) MatchField            { return newIPField(OXMIPv4Src, ip) }
func NewIPv4Dst(ip net.IP) MatchField            { return newIPField(OXMIPv4Dst, ip) }
func NewTCPSrc(port uint16) MatchField           { return newUintField(OXMTCPSrc, uint64(port)) }
func NewTCPDst(port uint16) MatchField           { return newUintField(OXMTCPDst, uint64(port)) }
func NewUDPSrc(port uint16) MatchField           { return newUintField(OXMUDPSrc, uint64(port)) }
func NewUDPDst(port uint16) MatchField           { return newUintField(OXMUDPDst, uint64(port)) }
func NewSCTPSrc(port uint16) MatchField          { return newUintField(OXMSCTPSrc, uint64(port)) }
func NewSCTPDst(port uint16) MatchField          { return newUintField(OXMSCTPDst, uint64(port)) }
func NewICMPv4Type(t uint8) MatchField           { return newUintField(OXMICMPv4Type, uint64(t)) }
func NewICMPv4Code(c uint8) MatchField           { return newUintField(OXMICMPv4Code, uint64(c)) }
func NewArpOp(op uint16) MatchField              { return newUintField(OXMArpOp, uint64(op)) }
func NewArpSpa(ip net.IP) MatchField             { return newIPField(OXMArpSpa, ip) }
func NewArpTpa(ip net.IP) MatchField             { return newIPField(OXMArpTpa, ip) }
func NewArpSha(addr net.HardwareAddr) MatchField { return newField(OXMArpSha, addr) }
func NewArpTha(addr net.HardwareAddr) MatchField { return newField(OXMArpTha, addr) }

func NewIPv4SrcMasked(ip net.IP, mask net.IPMask) MatchField {
	return newIPMaskedField(OXMIPv4Src, ip, mask)
}

func NewIPv4DstMasked(ip net.IP, mask net.IPMask) MatchField {
	return newIPMaskedField(OXMIPv4Dst, ip, mask)
}

// CreateIPv4Src matches ip/prefix. A prefix of 32 is an exact match.
func CreateIPv4Src(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMIPv4Src, ip, prefix)
}

func CreateIPv4Dst(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMIPv4Dst, ip, prefix)
}

func CreateArpSpa(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMArpSpa, ip, prefix)
}

func CreateArpTpa(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMArpTpa, ip, prefix)
}

func NewIPv6Src(ip net.IP) MatchField { return newIPField(OXMIPv6Src, ip) }
func NewIPv6Dst(ip net.IP) MatchField { return newIPField(OXMIPv6Dst, ip) }

func NewIPv6SrcMasked(ip net.IP, mask net.IPMask) MatchField {
	return newIPMaskedField(OXMIPv6Src, ip, mask)
}

func NewIPv6DstMasked(ip net.IP, mask net.IPMask) MatchField {
	return newIPMaskedField(OXMIPv6Dst, ip, mask)
}

func CreateIPv6Src(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMIPv6Src, ip, prefix)
}

func CreateIPv6Dst(ip net.IP, prefix int) (MatchField, error) {
	return createPrefixedField(OXMIPv6Dst, ip, prefix)
}

func NewIPv6Flabel(label uint32) MatchField {
	return newUintField(OXMIPv6Flabel, uint64(label))
}

func NewIPv6FlabelMasked(label, mask uint32) MatchField {
	return newUintMaskedField(OXMIPv6Flabel, uint64(label), uint64(mask))
}

func NewICMPv6Type(t uint8) MatchField              { return newUintField(OXMICMPv6Type, uint64(t)) }
func NewICMPv6Code(c uint8) MatchField              { return newUintField(OXMICMPv6Code, uint64(c)) }
func NewIPv6NDTarget(ip net.IP) MatchField          { return newIPField(OXMIPv6NDTarget, ip) }
func NewIPv6NDSll(addr net.HardwareAddr) MatchField { return newField(OXMIPv6NDSll, addr) }
func NewIPv6NDTll(addr net.HardwareAddr) MatchField { return newField(OXMIPv6NDTll, addr) }
func NewMplsLabel(label uint32) MatchField          { return newUintField(OXMMplsLabel, uint64(label)) }
func NewMplsTC(tc uint8) MatchField                 { return newUintField(OXMMplsTC, uint64(tc)) }
func NewMplsBos(bos uint8) MatchField               { return newUintField(OXMMplsBos, uint64(bos)) }
func NewPbbIsid(isid uint32) MatchField             { return newUintField(OXMPbbIsid, uint64(isid)) }
func NewTunnelID(id uint64) MatchField              { return newUintField(OXMTunnelID, id) }
func NewIPv6Exthdr(flags uint16) MatchField         { return newUintField(OXMIPv6Exthdr, uint64(flags)) }

func NewPbbIsidMasked(isid, mask uint32) MatchField {
	return newUintMaskedField(OXMPbbIsid, uint64(isid), uint64(mask))
}

func NewTunnelIDMasked(id, mask uint64) MatchField {
	return newUintMaskedField(OXMTunnelID, id, mask)
}

func NewIPv6ExthdrMasked(flags, mask uint16) MatchField {
	return newUintMaskedField(OXMIPv6Exthdr, uint64(flags), uint64(mask))
}

func (m MatchField) Field() OXMField {
	return m.field
}

func (m MatchField) Class() OXMClass {
	return OXMClassOpenFlowBasic
}

// Type identifies the field independently of its mask and length. Two
// fields of a match set never share a Type.
func (m MatchField) Type() uint32 {
	return oxmType(OXMClassOpenFlowBasic, m.field)
}

func (m MatchField) HasMask() bool {
	return m.hasMask
}

func (m MatchField) payloadLen() int {
	if m.hasMask {
		return 2 * m.field.Size()
	}
	return m.field.Size()
}

// Header is the 32-bit OXM header of the field.
func (m MatchField) Header() uint32 {
	h := uint32(OXMClassOpenFlowBasic)<<16 | uint32(m.field)<<9 | uint32(m.payloadLen())
	if m.hasMask {
		h |= 1 << 8
	}
	return h
}

func (m MatchField) Value() []byte {
	return wire.CloneBytes(m.value[:m.field.Size()])
}

// Mask returns nil for a field that is not masked.
func (m MatchField) Mask() []byte {
	if !m.hasMask {
		return nil
	}
	return wire.CloneBytes(m.mask[:m.field.Size()])
}

// Uint returns the value of fields up to 8 bytes wide.
func (m MatchField) Uint() uint64 {
	var v uint64
	for _, b := range m.value[:m.field.Size()] {
		v = v<<8 | uint64(b)
	}
	return v
}

func (m MatchField) MaskUint() uint64 {
	var v uint64
	for _, b := range m.Mask() {
		v = v<<8 | uint64(b)
	}
	return v
}

// VlanVid returns the VLAN id of a vlan_vid field, or VlanNone when the
// field matches untagged packets.
func (m MatchField) VlanVid() uint16 {
	v := uint16(m.Uint())
	if v&VidPresent == 0 {
		return VlanNone
	}
	return v &^ VidPresent
}

func (m MatchField) IP() net.IP {
	return net.IP(m.Value())
}

func (m MatchField) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m.Value())
}

// PrefixLength is the number of leading mask bits set, or the field width
// for a field that is not masked.
func (m MatchField) PrefixLength() int {
	if !m.hasMask {
		return m.field.Size() * 8
	}
	n := 0
	for _, b := range m.mask[:m.field.Size()] {
		if b != 0xff {
			return n + bits.LeadingZeros8(^b)
		}
		n += 8
	}
	return n
}

// WildcardBitCount is the number of value bits the mask ignores.
func (m MatchField) WildcardBitCount() int {
	if !m.hasMask {
		return 0
	}
	n := m.field.Size() * 8
	for _, b := range m.mask[:m.field.Size()] {
		n -= bits.OnesCount8(b)
	}
	return n
}

func (m MatchField) Length() int {
	return oxmHeaderLen + m.payloadLen()
}

func (m MatchField) ByteLength() int {
	return m.Length()
}

func (m MatchField) Encode(b []byte) []byte {
	h := m.Header()
	b = wire.Append(b, &ofpOXMHeader{
		Class:  uint16(h >> 16),
		Field:  uint8(h >> 8),
		Length: uint8(h),
	})
	b = append(b, m.value[:m.field.Size()]...)
	if m.hasMask {
		b = append(b, m.mask[:m.field.Size()]...)
	}
	return b
}

func (m MatchField) Equal(o MatchField) bool {
	return m == o
}

// effectiveMask is the set of value bits the field actually matches on.
func (m MatchField) effectiveMask() []byte {
	size := m.field.Size()
	mask := make([]byte, size)
	for i := range mask {
		mask[i] = 0xff
		if m.hasMask {
			mask[i] = m.mask[i]
		}
		if sig := oxmInfos[m.field].bits; sig != nil {
			mask[i] &= sig[i]
		}
	}
	return mask
}

// Equivalent compares the packets two fields match: masked out bits,
// insignificant bits and an all-ones mask make no difference.
func (m MatchField) Equivalent(o MatchField) bool {
	if m.field != o.field || !m.field.valid() {
		return m == o
	}
	mm, om := m.effectiveMask(), o.effectiveMask()
	if !bytes.Equal(mm, om) {
		return false
	}
	for i := range mm {
		if m.value[i]&mm[i] != o.value[i]&om[i] {
			return false
		}
	}
	return true
}

// IsWildcard reports whether the field matches every packet.
func (m MatchField) IsWildcard() bool {
	for _, b := range m.effectiveMask() {
		if b != 0 {
			return false
		}
	}
	return true
}

func (m MatchField) String() string {
	return m.field.String() + "=" + m.formatValue()
}

func (m MatchField) formatValue() string {
	var v, mask string
	switch m.field {
	case OXMIPv4Src, OXMIPv4Dst, OXMArpSpa, OXMArpTpa, OXMIPv6Src, OXMIPv6Dst, OXMIPv6NDTarget:
		v = m.IP().String()
		if m.hasMask {
			mask = net.IP(m.Mask()).String()
		}
	case OXMEthDst, OXMEthSrc, OXMArpSha, OXMArpTha, OXMIPv6NDSll, OXMIPv6NDTll:
		v = m.HardwareAddr().String()
		if m.hasMask {
			mask = net.HardwareAddr(m.Mask()).String()
		}
	case OXMInPort, OXMInPhyPort, OXMVlanPcp, OXMIPDscp, OXMIPEcn, OXMIPProto,
		OXMTCPSrc, OXMTCPDst, OXMUDPSrc, OXMUDPDst, OXMSCTPSrc, OXMSCTPDst,
		OXMICMPv4Type, OXMICMPv4Code, OXMICMPv6Type, OXMICMPv6Code, OXMArpOp,
		OXMMplsLabel, OXMMplsTC, OXMMplsBos:
		v = fmt.Sprintf("%d", m.Uint())
	default:
		v = fmt.Sprintf("%#x", m.Uint())
		if m.hasMask {
			mask = fmt.Sprintf("%#x", m.MaskUint())
		}
	}
	if mask != "" {
		return v + "/" + mask
	}
	return v
}

// ValidateOXMHeader checks an OXM header: class, then field, then length.
func ValidateOXMHeader(h uint32) error {
	if OXMClass(h>>16) != OXMClassOpenFlowBasic {
		return wire.Invalid("oxm", wire.WhatClass)
	}
	f := OXMField(h >> 9 & 0x7f)
	if !f.valid() {
		return wire.Invalid("oxm", wire.WhatField)
	}
	want := f.Size()
	if h>>8&1 == 1 {
		if !f.Maskable() {
			return wire.Invalid("oxm", wire.WhatLength)
		}
		want *= 2
	}
	if int(h&0xff) != want {
		return wire.Invalid("oxm", wire.WhatLength)
	}
	return nil
}

func oxmHeader(d *wire.Decoder) (uint32, int, error) {
	h, err := d.PeekUint32(0)
	if err != nil {
		return 0, 0, err
	}
	return h >> 9, oxmHeaderLen + int(h&0xff), nil
}

var oxms = wire.NewRegistry[MatchField](oxmFamily, oxmHeaderLen, oxmHeader, oxmDecoders())

func oxmDecoders() map[uint32]wire.DecodeFunc[MatchField] {
	decoders := make(map[uint32]wire.DecodeFunc[MatchField], len(oxmInfos))
	for f := range oxmInfos {
		decoders[oxmType(OXMClassOpenFlowBasic, OXMField(f))] = decodeMatchField
	}
	return decoders
}

// DecodeMatchField decodes one OXM TLV.
func DecodeMatchField(d *wire.Decoder) (MatchField, error) {
	return oxms.Decode(d)
}

func decodeMatchField(d *wire.Decoder) (MatchField, error) {
	h, err := d.PeekUint32(0)
	if err != nil {
		return MatchField{}, oxmFamily.Truncated(oxmHeaderLen, d.Len())
	}
	if err := ValidateOXMHeader(h); err != nil {
		return MatchField{}, oxmFamily.Reject(err)
	}
	length := oxmHeaderLen + int(h&0xff)
	b, err := d.Next(length)
	if err != nil {
		return MatchField{}, oxmFamily.Truncated(length, d.Len())
	}

	f := OXMField(h >> 9 & 0x7f)
	size := f.Size()
	m := MatchField{field: f, hasMask: h>>8&1 == 1}
	copy(m.value[:size], b[oxmHeaderLen:])
	if m.hasMask {
		copy(m.mask[:size], b[oxmHeaderLen+size:])
	}
	return m, nil
}
