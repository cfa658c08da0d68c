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
	"net"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

var testMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

func testMatch() Match {
	return NewMatch().
		WithInPort(1).
		WithDlType(0x0800).
		WithNwDst(net.ParseIP("10.0.0.2"), 32)
}

func testPort(portNo uint16, name string) PhyPort {
	return NewPhyPort(portNo, testMAC, name).
		WithState(PortStateSTPForward).
		WithFeatures(PortFeature1GbFD|PortFeatureCopper, 0, PortFeature1GbFD, 0)
}

func Test_MessageRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"hello", NewHello(1)},
		{"error", NewErrorMsg(2, ErrorTypeBadRequest, BadRequestBadType, []byte{0x01, 0x63, 0x00, 0x08})},
		{"echo request", NewEchoRequest(3, []byte("ping"))},
		{"echo reply", NewEchoReply(4, nil)},
		{"vendor", NewVendor(5, 0x2320, []byte{1, 2, 3, 4})},
		{"features request", NewFeaturesRequest(6)},
		{"features reply", NewFeaturesReply(7, 0xcafe, 256, 1, CapabilityFlowStats, 0xfff, testPort(1, "eth0"), testPort(PortLocal, "br0"))},
		{"features reply without ports", NewFeaturesReply(8, 1, 0, 1, 0, 0)},
		{"get config request", NewGetConfigRequest(9)},
		{"get config reply", NewGetConfigReply(10, ConfigFragNormal, 128)},
		{"set config", NewSetConfig(11, ConfigFragDrop, 0xffff)},
		{"packet in", NewPacketIn(12, NoBuffer, 4, 3, PacketInReasonNoMatch, []byte{1, 2, 3, 4})},
		{"flow removed", NewFlowRemoved(13, testMatch(), 0x10, 100, FlowRemovedIdleTimeout, 30, FlowCounters{DurationSec: 31, PacketCount: 5, ByteCount: 500})},
		{"port status", NewPortStatus(14, PortReasonModify, testPort(2, "eth1"))},
		{"packet out", NewPacketOut(15, NoBuffer, PortController, []Action{NewOutput(2, 0)}, []byte{0xde, 0xad})},
		{
			"flow mod",
			NewFlowMod(16, FlowAdd).
				WithCookie(0x1).
				WithPriority(200).
				WithTimeouts(10, 60).
				WithFlags(FlowModSendFlowRem).
				WithMatch(testMatch()).
				WithActions(NewSetVlanVid(100), NewOutput(2, 0)),
		},
		{"port mod", NewPortMod(17, 1, testMAC, PortConfigPortDown, PortConfigPortDown, 0)},
		{"stats request", NewStatsRequest(18, 0, NewDescRequest())},
		{"stats reply", NewStatsReply(19, 0, NewAggregateStatsReply(1, 2, 3))},
		{"barrier request", NewBarrierRequest(20)},
		{"barrier reply", NewBarrierReply(21)},
		{"queue get config request", NewQueueGetConfigRequest(22, 1)},
		{"queue get config reply", NewQueueGetConfigReply(23, 1, NewPacketQueue(1, NewMinRate(100)), NewPacketQueue(2))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := test.msg.Encode(nil)
			if len(raw) != test.msg.Length() {
				t.Fatalf("encoded %d bytes, Length is %d", len(raw), test.msg.Length())
			}
			h, err := PeekHeader(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.Version != Version || h.Type != test.msg.Type() || int(h.Length) != len(raw) || h.Xid != test.msg.Xid() {
				t.Fatalf("unexpected header %+v", h)
			}

			got, err := DecodeMessage(raw)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if !got.Equal(test.msg) {
				t.Errorf("decoded message differs from the encoded one")
			}
			if !got.Equivalent(test.msg) {
				t.Errorf("decoded message is not equivalent to the encoded one")
			}
			if diff := cmp.Diff(raw, got.Encode(nil)); diff != "" {
				t.Errorf("re-encoding differs (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_StatsRoundTrip(t *testing.T) {
	counters := PortCounters{RxPackets: 10, TxPackets: 20, RxBytes: 1000, TxBytes: 2000}

	tests := []struct {
		name string
		msg  Message
	}{
		{"desc request", NewStatsRequest(1, 0, NewDescRequest())},
		{"flow request", NewStatsRequest(2, 0, NewFlowStatsRequest(testMatch(), TableAll, PortNone))},
		{"aggregate request", NewStatsRequest(3, 0, NewAggregateStatsRequest(NewMatch(), 0, PortNone))},
		{"table request", NewStatsRequest(4, 0, NewTableStatsRequest())},
		{"port request", NewStatsRequest(5, 0, NewPortStatsRequest(PortNone))},
		{"queue request", NewStatsRequest(6, 0, NewQueueStatsRequest(PortAll, QueueAll))},
		{"desc reply", NewStatsReply(7, 0, NewDescReply(Desc{MfrDesc: "k-vswitch", HwDesc: "virtual", SwDesc: "1.0", SerialNum: "none", DpDesc: "br0"}))},
		{
			"flow reply",
			NewStatsReply(8, StatsReplyMore, NewFlowStatsReply(
				NewFlowStats(0, testMatch(), 100, 0, 0, 0x1, FlowCounters{DurationSec: 5, PacketCount: 3, ByteCount: 180}, NewOutput(2, 0)),
				NewFlowStats(0, NewMatch(), 0, 0, 0, 0, FlowCounters{}),
			)),
		},
		{"empty flow reply", NewStatsReply(9, 0, NewFlowStatsReply())},
		{"aggregate reply", NewStatsReply(10, 0, NewAggregateStatsReply(10, 1000, 2))},
		{"table reply", NewStatsReply(11, 0, NewTableStatsReply(NewTableStats(0, "classifier", WildcardAll, 1000, 3, 100, 90)))},
		{"port reply", NewStatsReply(12, 0, NewPortStatsReply(NewPortStats(1, counters), NewPortStats(PortLocal, PortCounters{})))},
		{"queue reply", NewStatsReply(13, 0, NewQueueStatsReply(NewQueueStats(1, 0, 100, 2, 0)))},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			raw := test.msg.Encode(nil)
			if len(raw) != test.msg.Length() {
				t.Fatalf("encoded %d bytes, Length is %d", len(raw), test.msg.Length())
			}

			got, err := DecodeMessage(raw)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if !got.Equal(test.msg) {
				t.Errorf("decoded message differs from the encoded one")
			}
			if diff := cmp.Diff(raw, got.Encode(nil)); diff != "" {
				t.Errorf("re-encoding differs (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_StatsReplyMore(t *testing.T) {
	more := NewStatsReply(1, StatsReplyMore, NewTableStatsReply())
	last := NewStatsReply(1, 0, NewTableStatsReply())
	if !more.More() || last.More() {
		t.Errorf("More: got %v and %v, want true and false", more.More(), last.More())
	}
	if more.Equal(last) {
		t.Errorf("the flags must take part in equality")
	}
}

func Test_BarrierRequestBytes(t *testing.T) {
	want := []byte{0x01, 0x12, 0x00, 0x08, 0x12, 0x34, 0x56, 0x78}
	if diff := cmp.Diff(want, NewBarrierRequest(0x12345678).Encode(nil)); diff != "" {
		t.Errorf("unexpected encoding (-want +got):\n%s", diff)
	}
}

func Test_FeaturesReplyPortsBoundedByLength(t *testing.T) {
	reply := NewFeaturesReply(1, 0xcafe, 0, 1, 0, 0, testPort(1, "eth0"), testPort(2, "eth1"))
	raw := reply.Encode(nil)
	if len(raw) != 32+2*phyPortLen {
		t.Fatalf("encoded %d bytes, want %d", len(raw), 32+2*phyPortLen)
	}

	// Declare a single port; the second one belongs to whatever follows.
	raw[2], raw[3] = 0, 32+phyPortLen

	d := wire.NewDecoder(raw)
	m, err := DecodeMessageFrom(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m.(FeaturesReply)
	if !ok {
		t.Fatalf("got %T, want FeaturesReply", m)
	}
	if n := len(got.Ports()); n != 1 {
		t.Fatalf("got %d ports, want 1", n)
	}
	if !got.Ports()[0].Equal(testPort(1, "eth0")) {
		t.Errorf("unexpected port %s", got.Ports()[0].Name())
	}
	if d.Len() != phyPortLen {
		t.Errorf("%d bytes left, want %d", d.Len(), phyPortLen)
	}

	if _, err := DecodeMessage(raw); !wire.IsError(err, CodeBadLen) {
		t.Errorf("got %v, want %v for the trailing port", err, CodeBadLen)
	}

	raw[3] = 32 + phyPortLen + 8
	if _, err := DecodeMessageFrom(wire.NewDecoder(raw)); !wire.IsError(err, CodeBadLen) {
		t.Errorf("got %v, want %v for a partial port", err, CodeBadLen)
	}
}

func Test_FeaturesReplySupportsAction(t *testing.T) {
	reply := NewFeaturesReply(1, 1, 0, 1, 0, 1<<uint(ActionOutput)|1<<uint(ActionEnqueue))
	if !reply.SupportsAction(ActionOutput) || !reply.SupportsAction(ActionEnqueue) {
		t.Errorf("output and enqueue must be supported")
	}
	if reply.SupportsAction(ActionStripVlan) || reply.SupportsAction(ActionVendor) {
		t.Errorf("strip_vlan and vendor must not be supported")
	}
}

func Test_DecodeMessageErrors(t *testing.T) {
	barrier := NewBarrierRequest(1).Encode(nil)

	withByte := func(b []byte, i int, v byte) []byte {
		b = append([]byte{}, b...)
		b[i] = v
		return b
	}

	descRequest := NewStatsRequest(1, 0, NewDescRequest()).Encode(nil)
	unknownStats := withByte(withByte(descRequest, 8, 0x00), 9, 0xee)

	trailingBody := append(append([]byte{}, descRequest...), 0, 0, 0, 0)
	trailingBody[3] = byte(len(trailingBody))

	tests := []struct {
		name string
		raw  []byte
		want wire.Code
	}{
		{
			name: "bad version",
			raw:  withByte(barrier, 0, 0x04),
			want: CodeBadVersion,
		},
		{
			name: "unknown type",
			raw:  withByte(barrier, 1, 0x63),
			want: CodeBadMessageType,
		},
		{
			name: "bytes after the message",
			raw:  append(append([]byte{}, barrier...), 0),
			want: CodeBadLen,
		},
		{
			name: "fixed message longer than its size",
			raw:  withByte(append(append([]byte{}, barrier...), 0, 0, 0, 0), 3, 12),
			want: CodeBadLen,
		},
		{
			name: "declared length past the end",
			raw:  withByte(barrier, 3, 16),
			want: CodeBadLen,
		},
		{
			name: "short header",
			raw:  barrier[:4],
			want: CodeBadLen,
		},
		{
			name: "unknown stats type",
			raw:  unknownStats,
			want: CodeBadStatsType,
		},
		{
			name: "bytes after a stats body",
			raw:  trailingBody,
			want: CodeBadLen,
		},
		{
			name: "unknown action in a flow mod",
			raw: append(
				withByte(NewFlowMod(1, FlowAdd).Encode(nil), 3, 80),
				0xff, 0x00, 0x00, 0x08, 0, 0, 0, 0,
			),
			want: CodeBadActionType,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeMessage(test.raw)
			if !wire.IsError(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func Test_ValidateHeader(t *testing.T) {
	tests := []struct {
		name string
		t    MessageType
		h    Header
		want string
	}{
		{
			name: "valid barrier",
			t:    TypeBarrierRequest,
			h:    Header{Version: Version, Type: TypeBarrierRequest, Length: 8},
		},
		{
			name: "type mismatch",
			t:    TypeBarrierRequest,
			h:    Header{Version: Version, Type: TypeBarrierReply, Length: 8},
			want: "invalid message type",
		},
		{
			name: "wrong version",
			t:    TypeBarrierRequest,
			h:    Header{Version: 0x04, Type: TypeBarrierRequest, Length: 8},
			want: "invalid version",
		},
		{
			name: "fixed length mismatch",
			t:    TypePortMod,
			h:    Header{Version: Version, Type: TypePortMod, Length: 40},
			want: "invalid message length",
		},
		{
			name: "flow mod shorter than its match",
			t:    TypeFlowMod,
			h:    Header{Version: Version, Type: TypeFlowMod, Length: 71},
			want: "invalid message length",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateHeader(test.t, test.h)
			if test.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != test.want {
				t.Errorf("got %v, want %q", err, test.want)
			}
		})
	}
}

func Test_DescriptorSizes(t *testing.T) {
	tests := []struct {
		name string
		desc interface{}
		want int
	}{
		{"header", &ofpHeader{}, HeaderLen},
		{"match", &ofpMatch{}, matchLen},
		{"phy port", &ofpPhyPort{}, phyPortLen},
		{"switch features", &ofpSwitchFeatures{}, 24},
		{"packet in", &ofpPacketIn{}, 10},
		{"flow removed", &ofpFlowRemoved{}, flowRemovedLen - HeaderLen},
		{"port status", &ofpPortStatus{}, 56},
		{"packet out", &ofpPacketOut{}, 8},
		{"flow mod", &ofpFlowMod{}, 64},
		{"port mod", &ofpPortMod{}, 24},
		{"stats header", &ofpStatsHeader{}, 4},
		{"flow stats request", &ofpFlowStatsRequest{}, 44},
		{"flow stats", &ofpFlowStats{}, flowStatsLen},
		{"aggregate stats", &ofpAggregateStats{}, 24},
		{"table stats", &ofpTableStats{}, tableStatsLen},
		{"port stats request", &ofpPortStatsRequest{}, 8},
		{"port stats", &ofpPortStats{}, portStatsLen},
		{"queue stats request", &ofpQueueStatsRequest{}, 8},
		{"queue stats", &ofpQueueStats{}, queueStatsLen},
		{"desc", &ofpDesc{}, descLen},
		{"packet queue", &ofpPacketQueue{}, packetQueueLen},
		{"min rate", &ofpQueuePropMinRate{}, 16},
		{"action output", &ofpActionOutput{}, 8},
		{"action dl addr", &ofpActionDlAddr{}, 16},
		{"action enqueue", &ofpActionEnqueue{}, 16},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := wire.Sizeof(test.desc); got != test.want {
				t.Errorf("got %d, want %d", got, test.want)
			}
		})
	}
}

func Test_NameTruncation(t *testing.T) {
	long := strings.Repeat("x", 29)
	p := NewPhyPort(1, testMAC, long)
	if p.Name() != long[:MaxPortNameLen-1] {
		t.Errorf("got %q (%d bytes), want %d bytes", p.Name(), len(p.Name()), MaxPortNameLen-1)
	}

	s := NewTableStats(0, strings.Repeat("t", 40), 0, 0, 0, 0, 0)
	if len(s.Name()) != MaxTableNameLen-1 {
		t.Errorf("table name: got %d bytes, want %d", len(s.Name()), MaxTableNameLen-1)
	}
}

func Test_ErrorReply(t *testing.T) {
	bad := NewBarrierRequest(9).Encode(nil)
	bad[1] = 0x63

	_, err := DecodeMessage(bad)
	werr, ok := wire.AsError(err)
	if !ok {
		t.Fatalf("got %v, want a protocol error", err)
	}

	reply := NewErrorReply(9, werr, bad)
	if reply.Pair() != CodeBadMessageType {
		t.Errorf("got %v, want %v", reply.Pair(), CodeBadMessageType)
	}
	if diff := cmp.Diff(bad, reply.Data()); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}
}

func Test_EchoReply(t *testing.T) {
	req := NewEchoRequest(7, []byte{1, 2, 3})
	reply := req.Reply()
	if reply.Xid() != 7 {
		t.Errorf("xid: got %d, want 7", reply.Xid())
	}
	if diff := cmp.Diff(req.Data(), reply.Data()); diff != "" {
		t.Errorf("payload differs (-want +got):\n%s", diff)
	}
}
