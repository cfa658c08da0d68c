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

// Package ofp10 implements the OpenFlow 1.0 wire protocol: messages,
// actions, the fixed match, statistics bodies and queue properties.
package ofp10

import "fmt"

// Version is the wire version of OpenFlow 1.0.
const Version = 0x01

type MessageType uint8

const (
	TypeHello MessageType = iota
	TypeError
	TypeEchoRequest
	TypeEchoReply
	TypeVendor
	TypeFeaturesRequest
	TypeFeaturesReply
	TypeGetConfigRequest
	TypeGetConfigReply
	TypeSetConfig
	TypePacketIn
	TypeFlowRemoved
	TypePortStatus
	TypePacketOut
	TypeFlowMod
	TypePortMod
	TypeStatsRequest
	TypeStatsReply
	TypeBarrierRequest
	TypeBarrierReply
	TypeQueueGetConfigRequest
	TypeQueueGetConfigReply
)

var messageTypeNames = [...]string{
	TypeHello:                 "hello",
	TypeError:                 "error",
	TypeEchoRequest:           "echo_request",
	TypeEchoReply:             "echo_reply",
	TypeVendor:                "vendor",
	TypeFeaturesRequest:       "features_request",
	TypeFeaturesReply:         "features_reply",
	TypeGetConfigRequest:      "get_config_request",
	TypeGetConfigReply:        "get_config_reply",
	TypeSetConfig:             "set_config",
	TypePacketIn:              "packet_in",
	TypeFlowRemoved:           "flow_removed",
	TypePortStatus:            "port_status",
	TypePacketOut:             "packet_out",
	TypeFlowMod:               "flow_mod",
	TypePortMod:               "port_mod",
	TypeStatsRequest:          "stats_request",
	TypeStatsReply:            "stats_reply",
	TypeBarrierRequest:        "barrier_request",
	TypeBarrierReply:          "barrier_reply",
	TypeQueueGetConfigRequest: "queue_get_config_request",
	TypeQueueGetConfigReply:   "queue_get_config_reply",
}

func (t MessageType) String() string {
	if int(t) < len(messageTypeNames) {
		return messageTypeNames[t]
	}
	return fmt.Sprintf("message(%d)", uint8(t))
}

// Port numbers.
const (
	PortMax        uint16 = 0xff00
	PortInPort     uint16 = 0xfff8
	PortTable      uint16 = 0xfff9
	PortNormal     uint16 = 0xfffa
	PortFlood      uint16 = 0xfffb
	PortAll        uint16 = 0xfffc
	PortController uint16 = 0xfffd
	PortLocal      uint16 = 0xfffe
	PortNone       uint16 = 0xffff
)

// NoBuffer is the buffer id of a packet that is not buffered on the switch.
const NoBuffer uint32 = 0xffffffff

// TableAll selects every table in flow and aggregate stats requests.
const TableAll uint8 = 0xff

// QueueAll selects every queue of a port in queue stats requests.
const QueueAll uint32 = 0xffffffff

// Fixed capacities of name fields.
const (
	MaxPortNameLen  = 16
	MaxTableNameLen = 32
	DescStrLen      = 256
	SerialNumLen    = 32
)

// Switch configuration flags.
const (
	ConfigFragNormal uint16 = 0
	ConfigFragDrop   uint16 = 1 << 0
	ConfigFragReasm  uint16 = 1 << 1
	ConfigFragMask   uint16 = 3
)

// Switch capabilities.
const (
	CapabilityFlowStats  uint32 = 1 << 0
	CapabilityTableStats uint32 = 1 << 1
	CapabilityPortStats  uint32 = 1 << 2
	CapabilitySTP        uint32 = 1 << 3
	CapabilityIPReasm    uint32 = 1 << 5
	CapabilityQueueStats uint32 = 1 << 6
	CapabilityARPMatchIP uint32 = 1 << 7
)

// Port config bits.
const (
	PortConfigPortDown   uint32 = 1 << 0
	PortConfigNoSTP      uint32 = 1 << 1
	PortConfigNoRecv     uint32 = 1 << 2
	PortConfigNoRecvSTP  uint32 = 1 << 3
	PortConfigNoFlood    uint32 = 1 << 4
	PortConfigNoFwd      uint32 = 1 << 5
	PortConfigNoPacketIn uint32 = 1 << 6
)

// Port state bits.
const (
	PortStateLinkDown   uint32 = 1 << 0
	PortStateSTPListen  uint32 = 0 << 8
	PortStateSTPLearn   uint32 = 1 << 8
	PortStateSTPForward uint32 = 2 << 8
	PortStateSTPBlock   uint32 = 3 << 8
	PortStateSTPMask    uint32 = 3 << 8
)

// Port feature bits.
const (
	PortFeature10MbHD    uint32 = 1 << 0
	PortFeature10MbFD    uint32 = 1 << 1
	PortFeature100MbHD   uint32 = 1 << 2
	PortFeature100MbFD   uint32 = 1 << 3
	PortFeature1GbHD     uint32 = 1 << 4
	PortFeature1GbFD     uint32 = 1 << 5
	PortFeature10GbFD    uint32 = 1 << 6
	PortFeatureCopper    uint32 = 1 << 7
	PortFeatureFiber     uint32 = 1 << 8
	PortFeatureAutoneg   uint32 = 1 << 9
	PortFeaturePause     uint32 = 1 << 10
	PortFeaturePauseAsym uint32 = 1 << 11
)

// Port status reasons.
const (
	PortReasonAdd uint8 = iota
	PortReasonDelete
	PortReasonModify
)

// Packet in reasons.
const (
	PacketInReasonNoMatch uint8 = iota
	PacketInReasonAction
)

// Flow removed reasons.
const (
	FlowRemovedIdleTimeout uint8 = iota
	FlowRemovedHardTimeout
	FlowRemovedDelete
)

type FlowModCommand uint16

const (
	FlowAdd FlowModCommand = iota
	FlowModify
	FlowModifyStrict
	FlowDelete
	FlowDeleteStrict
)

var flowModCommandNames = [...]string{
	FlowAdd:          "add",
	FlowModify:       "modify",
	FlowModifyStrict: "modify_strict",
	FlowDelete:       "delete",
	FlowDeleteStrict: "delete_strict",
}

func (c FlowModCommand) String() string {
	if int(c) < len(flowModCommandNames) {
		return flowModCommandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint16(c))
}

// Flow mod flags.
const (
	FlowModSendFlowRem  uint16 = 1 << 0
	FlowModCheckOverlap uint16 = 1 << 1
	FlowModEmerg        uint16 = 1 << 2
)

// Stats reply flags.
const (
	StatsReplyMore uint16 = 1 << 0
)
