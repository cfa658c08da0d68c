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
	"testing"

	"github.com/k-vswitch/ofproto/ofp10"
	"github.com/k-vswitch/ofproto/ofp13"
)

func Test_Flow(t *testing.T) {
	tests := []struct {
		name       string
		flow       *Flow
		flowString string
	}{
		{
			name:       "flow, no match with output port",
			flow:       NewFlow().WithTable(0).WithPriority(100).WithActionOutputPort(1),
			flowString: "table=0 priority=100 actions=output:1",
		},
		{
			name:       "flow, with ipv4 match and output port",
			flow:       NewFlow().WithTable(0).WithPriority(100).WithProtocol("ip").WithIPDest("10.0.0.1").WithActionOutputPort(1),
			flowString: "table=0 priority=100 ip nw_dst=10.0.0.1 actions=output:1",
		},
		{
			name:       "flow, with arp match and output port",
			flow:       NewFlow().WithTable(0).WithPriority(100).WithProtocol("arp").WithArpDest("10.0.0.1").WithActionOutputPort(1),
			flowString: "table=0 priority=100 arp arp_tpa=10.0.0.1 actions=output:1",
		},
		{
			name: "flow, with tcp ports and in_port action",
			flow: NewFlow().WithTable(5).WithPriority(10).WithProtocol("tcp").
				WithTransportSrc("tcp", 1024).WithTransportDest("tcp", 80).WithActionInPort(),
			flowString: "table=5 priority=10 tcp tcp_src=1024 tcp_dst=80 actions=in_port",
		},
		{
			name:       "flow, without actions drops",
			flow:       NewFlow().WithTable(0).WithPriority(1).WithProtocol("udp").WithTransportDest("udp", 53),
			flowString: "table=0 priority=1 udp udp_dst=53 actions=drop",
		},
		{
			name: "flow, with cookie, counters and timeouts",
			flow: NewFlow().WithTable(1).WithPriority(2).WithCookie(0xab).WithCounters(3, 4).
				WithTimeouts(5, 6).WithLocal(),
			flowString: "table=1 priority=2 cookie=0xab n_packets=3 n_bytes=4 idle_timeout=5 hard_timeout=6 actions=local",
		},
		{
			name: "flow, with set_field, controller and goto_table",
			flow: NewFlow().WithTable(20).WithPriority(500).WithProtocol("arp").WithArpSrc("10.0.0.1").
				WithActionModDlSrc("aa:bb:cc:dd:ee:ff").WithActionSetField("0x2", "arp_op").
				WithActionController(128).WithActionGotoTable(30),
			flowString: "table=20 priority=500 arp arp_spa=10.0.0.1 actions=mod_dl_src:aa:bb:cc:dd:ee:ff,set_field:0x2->arp_op,controller:128,goto_table:30",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualFlow := fmt.Sprintf("%s", test.flow)
			if actualFlow != test.flowString {
				t.Logf("actual flow: %q", actualFlow)
				t.Logf("expected flow: %q", test.flowString)
				t.Errorf("flow string did not match")
			}
		})
	}
}

func Test_RenderOFP13(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	tests := []struct {
		name       string
		flow       *Flow
		flowString string
	}{
		{
			name: "flow mod with tcp match, set_field and goto_table",
			flow: FromOFP13FlowMod(ofp13.NewFlowMod(1, ofp13.FlowAdd).
				WithTable(10).
				WithPriority(100).
				WithMatch(ofp13.NewMatch(
					ofp13.NewInPort(1),
					ofp13.NewEthType(0x0800),
					ofp13.NewIPProto(6),
					ofp13.NewIPv4Dst(net.ParseIP("10.0.0.1")),
					ofp13.NewTCPDst(80),
				)).
				WithInstructions(
					ofp13.NewApplyActions(ofp13.NewSetField(ofp13.NewEthDst(mac)), ofp13.NewOutput(2, 0)),
					ofp13.NewGotoTable(20),
				)),
			flowString: "table=10 priority=100 tcp in_port=1 nw_dst=10.0.0.1 tcp_dst=80 actions=mod_dl_dst:aa:bb:cc:dd:ee:ff,output:2,goto_table:20",
		},
		{
			name: "flow stats with arp match and controller output",
			flow: FromOFP13FlowStats(ofp13.NewFlowStats(0, 50, 30, 0, 0, 0x10,
				ofp13.FlowCounters{PacketCount: 3, ByteCount: 180},
				ofp13.NewMatch(ofp13.NewEthType(0x0806), ofp13.NewArpTpa(net.ParseIP("10.0.0.2"))),
				ofp13.NewApplyActions(ofp13.NewOutput(ofp13.PortController, 128)),
			)),
			flowString: "table=0 priority=50 cookie=0x10 n_packets=3 n_bytes=180 idle_timeout=30 arp arp_tpa=10.0.0.2 actions=controller:128",
		},
		{
			name: "masked fields without instructions",
			flow: FromOFP13FlowMod(ofp13.NewFlowMod(1, ofp13.FlowAdd).
				WithMatch(ofp13.NewMatch(
					ofp13.NewEthType(0x0800),
					ofp13.NewIPv4SrcMasked(net.ParseIP("10.1.0.0"), net.CIDRMask(16, 32)),
					ofp13.NewMetadataMasked(1, 0xff),
				))),
			flowString: "table=0 priority=0 ip nw_src=10.1.0.0/16 metadata=0x1/0xff actions=drop",
		},
		{
			name: "write actions, metadata, meter and vlan push",
			flow: FromOFP13FlowMod(ofp13.NewFlowMod(1, ofp13.FlowAdd).
				WithMatch(ofp13.NewMatch(ofp13.NewEthType(0x86dd), ofp13.NewIPProto(58))).
				WithInstructions(
					ofp13.NewMeter(3),
					ofp13.NewApplyActions(ofp13.NewPushVlan(0x8100), ofp13.NewSetField(ofp13.NewVlanVid(10))),
					ofp13.NewWriteActions(ofp13.NewGroup(7), ofp13.NewDecNwTTL()),
					ofp13.NewWriteMetadata(0x2, 0xf),
				)),
			flowString: "table=0 priority=0 icmp6 actions=meter:3,push_vlan:0x8100,set_field:10->vlan_vid,write_actions(group:7,dec_ttl),write_metadata:0x2/0xf",
		},
		{
			name: "reserved ports, mod_dl_src and tunnel id",
			flow: FromOFP13FlowMod(ofp13.NewFlowMod(1, ofp13.FlowAdd).
				WithMatch(ofp13.NewMatch(
					ofp13.NewEthType(0x0800),
					ofp13.NewIPProto(17),
					ofp13.NewUDPSrc(68),
				)).
				WithInstructions(ofp13.NewApplyActions(
					ofp13.NewSetField(ofp13.NewEthSrc(mac)),
					ofp13.NewSetField(ofp13.NewTunnelID(0x64)),
					ofp13.NewOutput(ofp13.PortTable, 0),
					ofp13.NewOutput(ofp13.PortInPort, 0),
					ofp13.NewOutput(ofp13.PortLocal, 0),
				))),
			flowString: "table=0 priority=0 udp udp_src=68 actions=mod_dl_src:aa:bb:cc:dd:ee:ff,set_field:0x64->tun_id,table,in_port,local",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualFlow := test.flow.String()
			if actualFlow != test.flowString {
				t.Logf("actual flow: %q", actualFlow)
				t.Logf("expected flow: %q", test.flowString)
				t.Errorf("flow string did not match")
			}
		})
	}
}

func Test_RenderOFP10(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	tests := []struct {
		name       string
		flow       *Flow
		flowString string
	}{
		{
			name: "flow mod with udp match",
			flow: FromOFP10FlowMod(ofp10.NewFlowMod(1, ofp10.FlowAdd).
				WithMatch(ofp10.NewMatch().
					WithInPort(3).
					WithDlType(0x0800).
					WithNwProto(17).
					WithNwSrc(net.ParseIP("10.0.0.0"), 8).
					WithTpDst(53)).
				WithActions(ofp10.NewSetNwTos(0x28), ofp10.NewOutput(ofp10.PortFlood, 0))),
			flowString: "table=0 priority=32768 udp in_port=3 nw_src=10.0.0.0/8 udp_dst=53 actions=mod_nw_tos:40,flood",
		},
		{
			name: "flow stats with an unnamed ethertype",
			flow: FromOFP10FlowStats(ofp10.NewFlowStats(0,
				ofp10.NewMatch().WithDlVlan(100).WithDlType(0x88cc),
				10, 0, 60, 0,
				ofp10.FlowCounters{PacketCount: 1, ByteCount: 64},
				ofp10.NewStripVlan(), ofp10.NewEnqueue(1, 2),
			)),
			flowString: "table=0 priority=10 n_packets=1 n_bytes=64 hard_timeout=60 dl_type=0x88cc dl_vlan=100 actions=strip_vlan,enqueue:1:2",
		},
		{
			name: "arp match",
			flow: FromOFP10FlowMod(ofp10.NewFlowMod(1, ofp10.FlowAdd).
				WithPriority(5).
				WithMatch(ofp10.NewMatch().WithDlType(0x0806).WithNwDst(net.ParseIP("10.0.0.9"), 32)).
				WithActions(ofp10.NewOutput(ofp10.PortController, 0xffff))),
			flowString: "table=0 priority=5 arp arp_tpa=10.0.0.9 actions=controller:65535",
		},
		{
			name: "in_port match with mac rewrite and reserved ports",
			flow: FromOFP10FlowMod(ofp10.NewFlowMod(1, ofp10.FlowAdd).
				WithMatch(ofp10.NewMatch().WithInPort(2)).
				WithActions(
					ofp10.NewSetDlSrc(mac),
					ofp10.NewSetDlDst(mac),
					ofp10.NewOutput(ofp10.PortInPort, 0),
					ofp10.NewOutput(ofp10.PortLocal, 0),
					ofp10.NewOutput(4, 0),
				)),
			flowString: "table=0 priority=32768 in_port=2 actions=mod_dl_src:aa:bb:cc:dd:ee:ff,mod_dl_dst:aa:bb:cc:dd:ee:ff,in_port,local,output:4",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actualFlow := test.flow.String()
			if actualFlow != test.flowString {
				t.Logf("actual flow: %q", actualFlow)
				t.Logf("expected flow: %q", test.flowString)
				t.Errorf("flow string did not match")
			}
		})
	}
}
