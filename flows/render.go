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

package flows

import (
	"fmt"
	"net"
	"strings"

	"github.com/k-vswitch/ofproto/ofp10"
	"github.com/k-vswitch/ofproto/ofp13"
)

// FromOFP13FlowMod renders an OpenFlow 1.3 flow_mod.
func FromOFP13FlowMod(m ofp13.FlowMod) *Flow {
	f := NewFlow().
		WithTable(int(m.TableID())).
		WithPriority(int(m.Priority())).
		WithCookie(m.Cookie()).
		WithTimeouts(int(m.IdleTimeout()), int(m.HardTimeout()))
	return f.withOFP13Match(m.Match()).withOFP13Instructions(m.Instructions())
}

// FromOFP13FlowStats renders an entry of an OpenFlow 1.3 flow stats reply.
func FromOFP13FlowStats(s ofp13.FlowStats) *Flow {
	c := s.Counters()
	f := NewFlow().
		WithTable(int(s.TableID())).
		WithPriority(int(s.Priority())).
		WithCookie(s.Cookie()).
		WithCounters(c.PacketCount, c.ByteCount).
		WithTimeouts(int(s.IdleTimeout()), int(s.HardTimeout()))
	return f.withOFP13Match(s.Match()).withOFP13Instructions(s.Instructions())
}

// FromOFP10FlowMod renders an OpenFlow 1.0 flow_mod. OpenFlow 1.0 has a
// single table.
func FromOFP10FlowMod(m ofp10.FlowMod) *Flow {
	f := NewFlow().
		WithPriority(int(m.Priority())).
		WithCookie(m.Cookie()).
		WithTimeouts(int(m.IdleTimeout()), int(m.HardTimeout()))
	return f.withOFP10Match(m.Match()).withOFP10Actions(m.Actions())
}

// FromOFP10FlowStats renders an entry of an OpenFlow 1.0 flow stats reply.
func FromOFP10FlowStats(s ofp10.FlowStats) *Flow {
	c := s.Counters()
	f := NewFlow().
		WithTable(int(s.TableID())).
		WithPriority(int(s.Priority())).
		WithCookie(s.Cookie()).
		WithCounters(c.PacketCount, c.ByteCount).
		WithTimeouts(int(s.IdleTimeout()), int(s.HardTimeout()))
	return f.withOFP10Match(s.Match()).withOFP10Actions(s.Actions())
}

func (f *Flow) withOFP13Match(m ofp13.Match) *Flow {
	eth, hasEth := m.Field(ofp13.OXMEthType)
	proto, hasProto := m.Field(ofp13.OXMIPProto)
	if hasEth && !eth.HasMask() {
		var p *uint8
		if hasProto {
			v := uint8(proto.Uint())
			p = &v
		}
		protocol, extra := protocolMatch(uint16(eth.Uint()), p)
		f.WithProtocol(protocol)
		f.matches = append(f.matches, extra...)
	}

	tp := transportPrefix(f.protocol)
	for _, field := range m.Fields() {
		switch field.Field() {
		case ofp13.OXMEthType:
			if !field.HasMask() {
				continue
			}
		case ofp13.OXMIPProto:
			if hasEth && !eth.HasMask() {
				continue
			}
		case ofp13.OXMInPort:
			f.WithInPort(int(field.Uint()))
			continue
		case ofp13.OXMEthSrc:
			f.WithMatch("dl_src", ofp13Value(field))
			continue
		case ofp13.OXMEthDst:
			f.WithMatch("dl_dst", ofp13Value(field))
			continue
		case ofp13.OXMVlanVid:
			if !field.HasMask() {
				f.WithMatch("dl_vlan", vlanValue(field.VlanVid()))
				continue
			}
		case ofp13.OXMIPv4Src:
			f.WithIPSrc(ofp13Value(field))
			continue
		case ofp13.OXMIPv4Dst:
			f.WithIPDest(ofp13Value(field))
			continue
		case ofp13.OXMArpSpa:
			f.WithArpSrc(ofp13Value(field))
			continue
		case ofp13.OXMArpTpa:
			f.WithArpDest(ofp13Value(field))
			continue
		case ofp13.OXMTCPSrc, ofp13.OXMUDPSrc, ofp13.OXMSCTPSrc:
			if tp != "tp" {
				f.WithTransportSrc(tp, int(field.Uint()))
				continue
			}
		case ofp13.OXMTCPDst, ofp13.OXMUDPDst, ofp13.OXMSCTPDst:
			if tp != "tp" {
				f.WithTransportDest(tp, int(field.Uint()))
				continue
			}
		case ofp13.OXMTunnelID:
			f.WithMatch("tun_id", ofp13Value(field))
			continue
		}
		f.matches = append(f.matches, field.String())
	}
	return f
}

// ofp13Value formats the value of a field, with IPv4 prefixes in CIDR
// notation.
func ofp13Value(field ofp13.MatchField) string {
	switch field.Field() {
	case ofp13.OXMIPv4Src, ofp13.OXMIPv4Dst, ofp13.OXMArpSpa, ofp13.OXMArpTpa:
		if !field.HasMask() {
			return field.IP().String()
		}
		if ones, bits := net.IPMask(field.Mask()).Size(); bits != 0 {
			return fmt.Sprintf("%s/%d", field.IP(), ones)
		}
	case ofp13.OXMVlanVid:
		if !field.HasMask() {
			return vlanValue(field.VlanVid())
		}
	}
	s := field.String()
	return s[strings.IndexByte(s, '=')+1:]
}

func vlanValue(vid uint16) string {
	if vid == ofp13.VlanNone {
		return "0xffff"
	}
	return fmt.Sprint(vid)
}

func (f *Flow) withOFP13Instructions(instructions ofp13.InstructionList) *Flow {
	for _, i := range instructions {
		switch i := i.(type) {
		case ofp13.ApplyActions:
			for _, a := range i.Actions() {
				f.withOFP13Action(a)
			}
		case ofp13.WriteActions:
			set := NewFlow()
			for _, a := range i.Actions() {
				set.withOFP13Action(a)
			}
			f.WithAction(fmt.Sprintf("write_actions(%s)", strings.Join(set.actions, ",")))
		case ofp13.ClearActions:
			f.WithAction("clear_actions")
		case ofp13.GotoTable:
			f.WithActionGotoTable(int(i.TableID()))
		case ofp13.WriteMetadata:
			f.WithAction(fmt.Sprintf("write_metadata:%#x/%#x", i.Metadata(), i.MetadataMask()))
		case ofp13.Meter:
			f.WithAction(fmt.Sprintf("meter:%d", i.MeterID()))
		default:
			f.WithAction(i.Type().String())
		}
	}
	return f
}

func (f *Flow) withOFP13Port(port uint32, maxLen uint16) *Flow {
	switch port {
	case ofp13.PortInPort:
		return f.WithActionInPort()
	case ofp13.PortTable:
		return f.WithAction("table")
	case ofp13.PortNormal:
		return f.WithAction("normal")
	case ofp13.PortFlood:
		return f.WithAction("flood")
	case ofp13.PortAll:
		return f.WithAction("all")
	case ofp13.PortController:
		return f.WithActionController(int(maxLen))
	case ofp13.PortLocal:
		return f.WithLocal()
	}
	return f.WithActionOutputPort(int(port))
}

func (f *Flow) withOFP13Action(a ofp13.Action) *Flow {
	switch a := a.(type) {
	case ofp13.Output:
		return f.withOFP13Port(a.Port(), a.MaxLen())
	case ofp13.SetField:
		field := a.Field()
		switch field.Field() {
		case ofp13.OXMEthDst:
			return f.WithActionModDlDest(field.HardwareAddr().String())
		case ofp13.OXMEthSrc:
			return f.WithActionModDlSrc(field.HardwareAddr().String())
		case ofp13.OXMTunnelID:
			return f.WithActionSetField(ofp13Value(field), "tun_id")
		}
		return f.WithActionSetField(ofp13Value(field), field.Field().String())
	case ofp13.PushVlan:
		return f.WithAction(fmt.Sprintf("push_vlan:0x%04x", a.Ethertype()))
	case ofp13.PushMpls:
		return f.WithAction(fmt.Sprintf("push_mpls:0x%04x", a.Ethertype()))
	case ofp13.PopMpls:
		return f.WithAction(fmt.Sprintf("pop_mpls:0x%04x", a.Ethertype()))
	case ofp13.PushPbb:
		return f.WithAction(fmt.Sprintf("push_pbb:0x%04x", a.Ethertype()))
	case ofp13.SetQueue:
		return f.WithAction(fmt.Sprintf("set_queue:%d", a.QueueID()))
	case ofp13.Group:
		return f.WithAction(fmt.Sprintf("group:%d", a.GroupID()))
	case ofp13.SetMplsTTL:
		return f.WithAction(fmt.Sprintf("set_mpls_ttl(%d)", a.TTL()))
	case ofp13.SetNwTTL:
		return f.WithAction(fmt.Sprintf("mod_nw_ttl:%d", a.TTL()))
	case ofp13.DecNwTTL:
		return f.WithAction("dec_ttl")
	}
	return f.WithAction(a.Type().String())
}

func (f *Flow) withOFP10Match(m ofp10.Match) *Flow {
	if !m.Wildcarded(ofp10.WildcardDlType) {
		var p *uint8
		if !m.Wildcarded(ofp10.WildcardNwProto) {
			v := m.NwProto()
			p = &v
		}
		protocol, extra := protocolMatch(m.DlType(), p)
		f.WithProtocol(protocol)
		f.matches = append(f.matches, extra...)
	} else if !m.Wildcarded(ofp10.WildcardNwProto) {
		f.WithMatch("nw_proto", fmt.Sprint(m.NwProto()))
	}

	if !m.Wildcarded(ofp10.WildcardInPort) {
		f.WithInPort(int(m.InPort()))
	}
	if !m.Wildcarded(ofp10.WildcardDlSrc) {
		f.WithMatch("dl_src", m.DlSrc().String())
	}
	if !m.Wildcarded(ofp10.WildcardDlDst) {
		f.WithMatch("dl_dst", m.DlDst().String())
	}
	if !m.Wildcarded(ofp10.WildcardDlVlan) {
		f.WithMatch("dl_vlan", vlanValue(m.DlVlan()))
	}
	if !m.Wildcarded(ofp10.WildcardDlVlanPcp) {
		f.WithMatch("dl_vlan_pcp", fmt.Sprint(m.DlVlanPcp()))
	}
	if !m.Wildcarded(ofp10.WildcardNwTos) {
		f.WithMatch("nw_tos", fmt.Sprint(m.NwTos()))
	}

	src, dst := "nw_src", "nw_dst"
	if f.protocol == "arp" {
		src, dst = "arp_spa", "arp_tpa"
	}
	if p := m.NwSrcPrefix(); p > 0 {
		f.WithMatch(src, prefixValue(m.NwSrc(), p))
	}
	if p := m.NwDstPrefix(); p > 0 {
		f.WithMatch(dst, prefixValue(m.NwDst(), p))
	}

	tp := transportPrefix(f.protocol)
	if !m.Wildcarded(ofp10.WildcardTpSrc) {
		f.WithTransportSrc(tp, int(m.TpSrc()))
	}
	if !m.Wildcarded(ofp10.WildcardTpDst) {
		f.WithTransportDest(tp, int(m.TpDst()))
	}
	return f
}

func prefixValue(ip net.IP, prefix int) string {
	if prefix >= 32 {
		return ip.String()
	}
	return fmt.Sprintf("%s/%d", ip.Mask(net.CIDRMask(prefix, 32)), prefix)
}

func (f *Flow) withOFP10Actions(actions ofp10.ActionList) *Flow {
	for _, a := range actions {
		f.withOFP10Action(a)
	}
	return f
}

func (f *Flow) withOFP10Port(port, maxLen uint16) *Flow {
	switch port {
	case ofp10.PortInPort:
		return f.WithActionInPort()
	case ofp10.PortTable:
		return f.WithAction("table")
	case ofp10.PortNormal:
		return f.WithAction("normal")
	case ofp10.PortFlood:
		return f.WithAction("flood")
	case ofp10.PortAll:
		return f.WithAction("all")
	case ofp10.PortController:
		return f.WithActionController(int(maxLen))
	case ofp10.PortLocal:
		return f.WithLocal()
	}
	return f.WithActionOutputPort(int(port))
}

func (f *Flow) withOFP10Action(a ofp10.Action) *Flow {
	switch a := a.(type) {
	case ofp10.Output:
		return f.withOFP10Port(a.Port(), a.MaxLen())
	case ofp10.SetVlanVid:
		return f.WithAction(fmt.Sprintf("mod_vlan_vid:%d", a.VlanVid()))
	case ofp10.SetVlanPcp:
		return f.WithAction(fmt.Sprintf("mod_vlan_pcp:%d", a.VlanPcp()))
	case ofp10.StripVlan:
		return f.WithAction("strip_vlan")
	case ofp10.SetDlSrc:
		return f.WithActionModDlSrc(a.Addr().String())
	case ofp10.SetDlDst:
		return f.WithActionModDlDest(a.Addr().String())
	case ofp10.SetNwSrc:
		return f.WithAction(fmt.Sprintf("mod_nw_src:%s", a.Addr()))
	case ofp10.SetNwDst:
		return f.WithAction(fmt.Sprintf("mod_nw_dst:%s", a.Addr()))
	case ofp10.SetNwTos:
		return f.WithAction(fmt.Sprintf("mod_nw_tos:%d", a.NwTos()))
	case ofp10.SetTpSrc:
		return f.WithAction(fmt.Sprintf("mod_tp_src:%d", a.TpPort()))
	case ofp10.SetTpDst:
		return f.WithAction(fmt.Sprintf("mod_tp_dst:%d", a.TpPort()))
	case ofp10.Enqueue:
		return f.WithAction(fmt.Sprintf("enqueue:%d:%d", a.Port(), a.QueueID()))
	}
	return f.WithAction(a.Type().String())
}
