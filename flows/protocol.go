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

	"github.com/google/gopacket/layers"
)

var protocols = map[layers.EthernetType]string{
	layers.EthernetTypeIPv4:        "ip",
	layers.EthernetTypeARP:         "arp",
	layers.EthernetTypeIPv6:        "ipv6",
	layers.EthernetTypeMPLSUnicast: "mpls",
}

var ipProtocols = map[layers.EthernetType]map[layers.IPProtocol]string{
	layers.EthernetTypeIPv4: {
		layers.IPProtocolTCP:    "tcp",
		layers.IPProtocolUDP:    "udp",
		layers.IPProtocolICMPv4: "icmp",
		layers.IPProtocolSCTP:   "sctp",
	},
	layers.EthernetTypeIPv6: {
		layers.IPProtocolTCP:    "tcp6",
		layers.IPProtocolUDP:    "udp6",
		layers.IPProtocolICMPv6: "icmp6",
		layers.IPProtocolSCTP:   "sctp6",
	},
}

// protocolMatch turns an ethertype and an optional IP protocol into the
// ovs-ofctl shorthand, plus the matches the shorthand cannot express.
func protocolMatch(ethType uint16, ipProto *uint8) (string, []string) {
	t := layers.EthernetType(ethType)
	keyword, ok := protocols[t]
	if !ok {
		keyword = fmt.Sprintf("dl_type=0x%04x", ethType)
	}
	if ipProto == nil {
		return keyword, nil
	}
	if name, ok := ipProtocols[t][layers.IPProtocol(*ipProto)]; ok {
		return name, nil
	}
	return keyword, []string{fmt.Sprintf("nw_proto=%d", *ipProto)}
}

// transportPrefix is the tp_src/tp_dst spelling used after a protocol
// keyword.
func transportPrefix(protocol string) string {
	switch protocol {
	case "tcp", "tcp6":
		return "tcp"
	case "udp", "udp6":
		return "udp"
	case "sctp", "sctp6":
		return "sctp"
	}
	return "tp"
}
