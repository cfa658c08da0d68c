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

// Package ofp13 implements the OpenFlow 1.3 wire protocol: messages,
// actions, OXM match fields, instructions, multipart bodies, meter bands,
// queue properties and table feature properties.
package ofp13

import "fmt"

// Version is the wire version of OpenFlow 1.3.
const Version = 0x04

type MessageType uint8

const (
	TypeHello MessageType = iota
	TypeError
	TypeEchoRequest
	TypeEchoReply
	TypeExperimenter
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
	TypeGroupMod
	TypePortMod
	TypeTableMod
	TypeMultipartRequest
	TypeMultipartReply
	TypeBarrierRequest
	TypeBarrierReply
	TypeQueueGetConfigRequest
	TypeQueueGetConfigReply
	TypeRoleRequest
	TypeRoleReply
	TypeGetAsyncRequest
	TypeGetAsyncReply
	TypeSetAsync
	TypeMeterMod
)

var messageTypeNames = [...]string{
	TypeHello:                 "hello",
	TypeError:                 "error",
	TypeEchoRequest:           "echo_request",
	TypeEchoReply:             "echo_reply",
	TypeExperimenter:          "experimenter",
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
	TypeGroupMod:              "group_mod",
	TypePortMod:               "port_mod",
	TypeTableMod:              "table_mod",
	TypeMultipartRequest:      "multipart_request",
	TypeMultipartReply:        "multipart_reply",
	TypeBarrierRequest:        "barrier_request",
	TypeBarrierReply:          "barrier_reply",
	TypeQueueGetConfigRequest: "queue_get_config_request",
	TypeQueueGetConfigReply:   "queue_get_config_reply",
	TypeRoleRequest:           "role_request",
	TypeRoleReply:             "role_reply",
	TypeGetAsyncRequest:       "get_async_request",
	TypeGetAsyncReply:         "get_async_reply",
	TypeSetAsync:              "set_async",
	TypeMeterMod:              "meter_mod",
}

func (t MessageType) String() string {
	if int(t) < len(messageTypeNames) {
		return messageTypeNames[t]
	}
	return fmt.Sprintf("message(%d)", uint8(t))
}

// Port numbers.
const (
	PortMax        uint32 = 0xffffff00
	PortInPort     uint32 = 0xfffffff8
	PortTable      uint32 = 0xfffffff9
	PortNormal     uint32 = 0xfffffffa
	PortFlood      uint32 = 0xfffffffb
	PortAll        uint32 = 0xfffffffc
	PortController uint32 = 0xfffffffd
	PortLocal      uint32 = 0xfffffffe
	PortAny        uint32 = 0xffffffff
)

// Group numbers.
const (
	GroupMax uint32 = 0xffffff00
	GroupAll uint32 = 0xfffffffc
	GroupAny uint32 = 0xffffffff
)

// Meter numbers.
const (
	MeterMax        uint32 = 0xffff0000
	MeterSlowpath   uint32 = 0xfffffffd
	MeterController uint32 = 0xfffffffe
	MeterAll        uint32 = 0xffffffff
)

// Table numbers.
const (
	TableMax uint8 = 0xfe
	TableAll uint8 = 0xff
)

// QueueAll selects every queue of a port in queue stats requests.
const QueueAll uint32 = 0xffffffff

// NoBuffer is the buffer id of a packet that is not buffered on the switch.
const NoBuffer uint32 = 0xffffffff

// Controller max_len values.
const (
	ControllerMaxLen   uint16 = 0xffe5
	ControllerNoBuffer uint16 = 0xffff
)

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
	CapabilityFlowStats   uint32 = 1 << 0
	CapabilityTableStats  uint32 = 1 << 1
	CapabilityPortStats   uint32 = 1 << 2
	CapabilityGroupStats  uint32 = 1 << 3
	CapabilityIPReasm     uint32 = 1 << 5
	CapabilityQueueStats  uint32 = 1 << 6
	CapabilityPortBlocked uint32 = 1 << 8
)

// Port config bits.
const (
	PortConfigPortDown   uint32 = 1 << 0
	PortConfigNoRecv     uint32 = 1 << 2
	PortConfigNoFwd      uint32 = 1 << 5
	PortConfigNoPacketIn uint32 = 1 << 6
)

// Port state bits.
const (
	PortStateLinkDown uint32 = 1 << 0
	PortStateBlocked  uint32 = 1 << 1
	PortStateLive     uint32 = 1 << 2
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
	PortFeature40GbFD    uint32 = 1 << 7
	PortFeature100GbFD   uint32 = 1 << 8
	PortFeature1TbFD     uint32 = 1 << 9
	PortFeatureOther     uint32 = 1 << 10
	PortFeatureCopper    uint32 = 1 << 11
	PortFeatureFiber     uint32 = 1 << 12
	PortFeatureAutoneg   uint32 = 1 << 13
	PortFeaturePause     uint32 = 1 << 14
	PortFeaturePauseAsym uint32 = 1 << 15
)

// Port status reasons.
const (
	PortReasonAdd uint8 = iota
	PortReasonDelete
	PortReasonModify
)

// Packet-in reasons.
const (
	PacketInReasonNoMatch uint8 = iota
	PacketInReasonAction
	PacketInReasonInvalidTTL
)

// Flow removed reasons.
const (
	FlowRemovedIdleTimeout uint8 = iota
	FlowRemovedHardTimeout
	FlowRemovedDelete
	FlowRemovedGroupDelete
)

type FlowModCommand uint8

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
	return fmt.Sprintf("command(%d)", uint8(c))
}

// Flow mod flags.
const (
	FlowFlagSendFlowRem  uint16 = 1 << 0
	FlowFlagCheckOverlap uint16 = 1 << 1
	FlowFlagResetCounts  uint16 = 1 << 2
	FlowFlagNoPktCounts  uint16 = 1 << 3
	FlowFlagNoBytCounts  uint16 = 1 << 4
)

// Group mod commands.
const (
	GroupAdd uint16 = iota
	GroupModify
	GroupDelete
)

// Group types.
const (
	GroupTypeAll uint8 = iota
	GroupTypeSelect
	GroupTypeIndirect
	GroupTypeFastFailover
)

// Group capabilities.
const (
	GroupCapSelectWeight   uint32 = 1 << 0
	GroupCapSelectLiveness uint32 = 1 << 1
	GroupCapChaining       uint32 = 1 << 2
	GroupCapChainingChecks uint32 = 1 << 3
)

// Meter mod commands.
const (
	MeterAdd uint16 = iota
	MeterModify
	MeterDelete
)

// Meter flags.
const (
	MeterFlagKbps  uint16 = 1 << 0
	MeterFlagPktps uint16 = 1 << 1
	MeterFlagBurst uint16 = 1 << 2
	MeterFlagStats uint16 = 1 << 3
)

// Controller roles.
const (
	RoleNoChange uint32 = iota
	RoleEqual
	RoleMaster
	RoleSlave
)

// Multipart flags.
const (
	MultipartRequestMore uint16 = 1 << 0
	MultipartReplyMore   uint16 = 1 << 0
)

// Match types.
const (
	MatchTypeStandard uint16 = 0
	MatchTypeOXM      uint16 = 1
)

// VLAN id values. VlanNone is accepted by the vlan_vid constructors and
// stands for "no VLAN tag"; on the wire it becomes VidNone.
const (
	VidPresent uint16 = 0x1000
	VidNone    uint16 = 0x0000
	VlanNone   uint16 = 0xffff
	VlanMax    uint16 = 0x0fff
)

// IPv6 extension header pseudo-field flags.
const (
	IPv6ExthdrNoNext uint16 = 1 << 0
	IPv6ExthdrESP    uint16 = 1 << 1
	IPv6ExthdrAuth   uint16 = 1 << 2
	IPv6ExthdrDest   uint16 = 1 << 3
	IPv6ExthdrFrag   uint16 = 1 << 4
	IPv6ExthdrRouter uint16 = 1 << 5
	IPv6ExthdrHop    uint16 = 1 << 6
	IPv6ExthdrUnrep  uint16 = 1 << 7
	IPv6ExthdrUnseq  uint16 = 1 << 8
)
