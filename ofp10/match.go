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
	"strings"

	"github.com/k-vswitch/ofproto/wire"
)

// Flow wildcard bits. A set bit means the field is not matched.
const (
	WildcardInPort    uint32 = 1 << 0
	WildcardDlVlan    uint32 = 1 << 1
	WildcardDlSrc     uint32 = 1 << 2
	WildcardDlDst     uint32 = 1 << 3
	WildcardDlType    uint32 = 1 << 4
	WildcardNwProto   uint32 = 1 << 5
	WildcardTpSrc     uint32 = 1 << 6
	WildcardTpDst     uint32 = 1 << 7
	WildcardDlVlanPcp uint32 = 1 << 20
	WildcardNwTos     uint32 = 1 << 21
	WildcardAll       uint32 = 1<<22 - 1

	// The nw_src and nw_dst wildcards are counts of ignored low order
	// address bits; 32 and above ignore the whole address.
	WildcardNwSrcShift = 8
	WildcardNwSrcMask  uint32 = 0x3f << WildcardNwSrcShift
	WildcardNwSrcAll   uint32 = 32 << WildcardNwSrcShift
	WildcardNwDstShift        = 14
	WildcardNwDstMask  uint32 = 0x3f << WildcardNwDstShift
	WildcardNwDstAll   uint32 = 32 << WildcardNwDstShift
)

type ofpMatch struct {
	Wildcards uint32
	InPort    uint16
	DlSrc     [6]uint8
	DlDst     [6]uint8
	DlVlan    uint16
	DlVlanPcp uint8
	Pad       [1]uint8
	DlType    uint16
	NwTos     uint8
	NwProto   uint8
	Pad2      [2]uint8
	NwSrc     uint32
	NwDst     uint32
	TpSrc     uint16
	TpDst     uint16
}

const matchLen = 40

// Match is the fixed OpenFlow 1.0 flow match. The With methods return a
// copy that matches the field exactly.
type Match struct {
	d ofpMatch
}

// NewMatch returns a match that matches every packet.
func NewMatch() Match {
	return Match{d: ofpMatch{Wildcards: WildcardAll}}
}

func (m Match) WithInPort(port uint16) Match {
	m.d.InPort = port
	m.d.Wildcards &^= WildcardInPort
	return m
}

func (m Match) WithDlSrc(addr net.HardwareAddr) Match {
	copy(m.d.DlSrc[:], addr)
	m.d.Wildcards &^= WildcardDlSrc
	return m
}

func (m Match) WithDlDst(addr net.HardwareAddr) Match {
	copy(m.d.DlDst[:], addr)
	m.d.Wildcards &^= WildcardDlDst
	return m
}

func (m Match) WithDlVlan(vid uint16) Match {
	m.d.DlVlan = vid
	m.d.Wildcards &^= WildcardDlVlan
	return m
}

func (m Match) WithDlVlanPcp(pcp uint8) Match {
	m.d.DlVlanPcp = pcp
	m.d.Wildcards &^= WildcardDlVlanPcp
	return m
}

func (m Match) WithDlType(ethType uint16) Match {
	m.d.DlType = ethType
	m.d.Wildcards &^= WildcardDlType
	return m
}

func (m Match) WithNwTos(tos uint8) Match {
	m.d.NwTos = tos
	m.d.Wildcards &^= WildcardNwTos
	return m
}

func (m Match) WithNwProto(proto uint8) Match {
	m.d.NwProto = proto
	m.d.Wildcards &^= WildcardNwProto
	return m
}

// WithNwSrc matches the first prefix bits of the IPv4 source address.
// Prefixes above 32 are treated as 32.
func (m Match) WithNwSrc(ip net.IP, prefix int) Match {
	m.d.NwSrc = ipv4(ip)
	m.d.Wildcards = m.d.Wildcards&^WildcardNwSrcMask | prefixWildcard(prefix)<<WildcardNwSrcShift
	return m
}

// WithNwDst matches the first prefix bits of the IPv4 destination address.
func (m Match) WithNwDst(ip net.IP, prefix int) Match {
	m.d.NwDst = ipv4(ip)
	m.d.Wildcards = m.d.Wildcards&^WildcardNwDstMask | prefixWildcard(prefix)<<WildcardNwDstShift
	return m
}

func (m Match) WithTpSrc(port uint16) Match {
	m.d.TpSrc = port
	m.d.Wildcards &^= WildcardTpSrc
	return m
}

func (m Match) WithTpDst(port uint16) Match {
	m.d.TpDst = port
	m.d.Wildcards &^= WildcardTpDst
	return m
}

func ipv4(ip net.IP) uint32 {
	if v4 := ip.To4(); v4 != nil {
		return binary.BigEndian.Uint32(v4)
	}
	return 0
}

func ipFromUint32(v uint32) net.IP {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, v)
	return ip
}

func prefixWildcard(prefix int) uint32 {
	if prefix < 0 {
		prefix = 0
	}
	if prefix > 32 {
		prefix = 32
	}
	return uint32(32 - prefix)
}

// ignoredBits extracts an nw_src or nw_dst wildcard count, saturated at 32.
func ignoredBits(wildcards uint32, shift uint) uint32 {
	n := wildcards >> shift & 0x3f
	if n > 32 {
		n = 32
	}
	return n
}

func prefixMask(ignored uint32) uint32 {
	if ignored >= 32 {
		return 0
	}
	return ^uint32(0) << ignored
}

func (m Match) Wildcards() uint32 { return m.d.Wildcards }

// Wildcarded reports whether every bit of w is set in the wildcards.
func (m Match) Wildcarded(w uint32) bool { return m.d.Wildcards&w == w }

func (m Match) InPort() uint16          { return m.d.InPort }
func (m Match) DlSrc() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(m.d.DlSrc[:])) }
func (m Match) DlDst() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(m.d.DlDst[:])) }
func (m Match) DlVlan() uint16          { return m.d.DlVlan }
func (m Match) DlVlanPcp() uint8        { return m.d.DlVlanPcp }
func (m Match) DlType() uint16          { return m.d.DlType }
func (m Match) NwTos() uint8            { return m.d.NwTos }
func (m Match) NwProto() uint8          { return m.d.NwProto }
func (m Match) NwSrc() net.IP           { return ipFromUint32(m.d.NwSrc) }
func (m Match) NwDst() net.IP           { return ipFromUint32(m.d.NwDst) }
func (m Match) TpSrc() uint16           { return m.d.TpSrc }
func (m Match) TpDst() uint16           { return m.d.TpDst }

// NwSrcPrefix returns the number of significant nw_src bits.
func (m Match) NwSrcPrefix() int { return int(32 - ignoredBits(m.d.Wildcards, WildcardNwSrcShift)) }

// NwDstPrefix returns the number of significant nw_dst bits.
func (m Match) NwDstPrefix() int { return int(32 - ignoredBits(m.d.Wildcards, WildcardNwDstShift)) }

func (m Match) Length() int            { return matchLen }
func (m Match) ByteLength() int        { return matchLen }
func (m Match) Encode(b []byte) []byte { return wire.Append(b, &m.d) }

// Equal compares the match byte for byte, padding included.
func (m Match) Equal(o Match) bool { return m.d == o.d }

// Equivalent reports whether both matches select the same packets.
func (m Match) Equivalent(o Match) bool { return m.d.normalize() == o.d.normalize() }

// IsAll reports whether the match selects every packet.
func (m Match) IsAll() bool { return m.Equivalent(NewMatch()) }

func (m Match) String() string {
	if m.IsAll() {
		return "any"
	}
	var parts []string
	add := func(w uint32, s string) {
		if m.d.Wildcards&w == 0 {
			parts = append(parts, s)
		}
	}
	add(WildcardInPort, fmt.Sprintf("in_port=%d", m.d.InPort))
	add(WildcardDlSrc, "dl_src="+m.DlSrc().String())
	add(WildcardDlDst, "dl_dst="+m.DlDst().String())
	add(WildcardDlVlan, fmt.Sprintf("dl_vlan=%d", m.d.DlVlan))
	add(WildcardDlVlanPcp, fmt.Sprintf("dl_vlan_pcp=%d", m.d.DlVlanPcp))
	add(WildcardDlType, fmt.Sprintf("dl_type=0x%04x", m.d.DlType))
	add(WildcardNwTos, fmt.Sprintf("nw_tos=%d", m.d.NwTos))
	add(WildcardNwProto, fmt.Sprintf("nw_proto=%d", m.d.NwProto))
	if p := m.NwSrcPrefix(); p > 0 {
		parts = append(parts, fmt.Sprintf("nw_src=%s/%d", m.NwSrc(), p))
	}
	if p := m.NwDstPrefix(); p > 0 {
		parts = append(parts, fmt.Sprintf("nw_dst=%s/%d", m.NwDst(), p))
	}
	add(WildcardTpSrc, fmt.Sprintf("tp_src=%d", m.d.TpSrc))
	add(WildcardTpDst, fmt.Sprintf("tp_dst=%d", m.d.TpDst))
	return strings.Join(parts, ",")
}

// normalize drops the padding and every wildcarded field, and the ignored
// low order bits of the nw_src and nw_dst addresses.
func (d ofpMatch) normalize() ofpMatch {
	w := d.Wildcards & WildcardAll
	src := ignoredBits(w, WildcardNwSrcShift)
	dst := ignoredBits(w, WildcardNwDstShift)
	n := ofpMatch{
		Wildcards: w&^(WildcardNwSrcMask|WildcardNwDstMask) | src<<WildcardNwSrcShift | dst<<WildcardNwDstShift,
		NwSrc:     d.NwSrc & prefixMask(src),
		NwDst:     d.NwDst & prefixMask(dst),
	}
	if w&WildcardInPort == 0 {
		n.InPort = d.InPort
	}
	if w&WildcardDlSrc == 0 {
		n.DlSrc = d.DlSrc
	}
	if w&WildcardDlDst == 0 {
		n.DlDst = d.DlDst
	}
	if w&WildcardDlVlan == 0 {
		n.DlVlan = d.DlVlan
	}
	if w&WildcardDlVlanPcp == 0 {
		n.DlVlanPcp = d.DlVlanPcp
	}
	if w&WildcardDlType == 0 {
		n.DlType = d.DlType
	}
	if w&WildcardNwTos == 0 {
		n.NwTos = d.NwTos
	}
	if w&WildcardNwProto == 0 {
		n.NwProto = d.NwProto
	}
	if w&WildcardTpSrc == 0 {
		n.TpSrc = d.TpSrc
	}
	if w&WildcardTpDst == 0 {
		n.TpDst = d.TpDst
	}
	return n
}

func DecodeMatch(d *wire.Decoder) (Match, error) {
	var m Match
	if err := decodeStruct(d, &m.d); err != nil {
		return Match{}, err
	}
	return m, nil
}
