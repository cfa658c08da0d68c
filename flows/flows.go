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
	"strings"
)

// Flow renders a flow entry in the syntax of ovs-ofctl. Matches and actions
// keep the order they were added in.
type Flow struct {
	table       int
	priority    int
	cookie      uint64
	idleTimeout int
	hardTimeout int
	packets     uint64
	bytes       uint64
	counters    bool

	protocol string
	matches  []string
	actions  []string
}

func NewFlow() *Flow {
	return &Flow{}
}

func (f *Flow) String() string {
	flow := fmt.Sprintf("table=%d priority=%d", f.table, f.priority)

	if f.cookie != 0 {
		flow = fmt.Sprintf("%s cookie=%#x", flow, f.cookie)
	}

	if f.counters {
		flow = fmt.Sprintf("%s n_packets=%d n_bytes=%d", flow, f.packets, f.bytes)
	}

	if f.idleTimeout != 0 {
		flow = fmt.Sprintf("%s idle_timeout=%d", flow, f.idleTimeout)
	}

	if f.hardTimeout != 0 {
		flow = fmt.Sprintf("%s hard_timeout=%d", flow, f.hardTimeout)
	}

	if f.protocol != "" {
		flow = fmt.Sprintf("%s %s", flow, f.protocol)
	}

	for _, match := range f.matches {
		flow = fmt.Sprintf("%s %s", flow, match)
	}

	actionSet := f.actions
	if len(actionSet) == 0 {
		actionSet = []string{"drop"}
	}

	actions := fmt.Sprintf("actions=%s", strings.Join(actionSet, ","))
	return fmt.Sprintf("%s %s", flow, actions)
}

func (f *Flow) WithTable(table int) *Flow {
	f.table = table
	return f
}

func (f *Flow) WithPriority(priority int) *Flow {
	f.priority = priority
	return f
}

func (f *Flow) WithCookie(cookie uint64) *Flow {
	f.cookie = cookie
	return f
}

func (f *Flow) WithTimeouts(idle, hard int) *Flow {
	f.idleTimeout = idle
	f.hardTimeout = hard
	return f
}

// WithCounters adds the packet and byte counts of a flow stats entry.
func (f *Flow) WithCounters(packets, bytes uint64) *Flow {
	f.packets = packets
	f.bytes = bytes
	f.counters = true
	return f
}

// Flow Matchers
func (f *Flow) WithProtocol(protocol string) *Flow {
	f.protocol = protocol
	return f
}

// WithMatch adds a key=value match.
func (f *Flow) WithMatch(key, value string) *Flow {
	f.matches = append(f.matches, fmt.Sprintf("%s=%s", key, value))
	return f
}

func (f *Flow) WithInPort(port int) *Flow {
	return f.WithMatch("in_port", fmt.Sprint(port))
}

func (f *Flow) WithIPDest(ipDst string) *Flow {
	return f.WithMatch("nw_dst", ipDst)
}

func (f *Flow) WithIPSrc(ipSrc string) *Flow {
	return f.WithMatch("nw_src", ipSrc)
}

func (f *Flow) WithArpDest(arpDst string) *Flow {
	return f.WithMatch("arp_tpa", arpDst)
}

func (f *Flow) WithArpSrc(arpSrc string) *Flow {
	return f.WithMatch("arp_spa", arpSrc)
}

// WithTransportSrc matches the source port of the transport protocol named
// by prefix (tcp, udp, sctp or tp).
func (f *Flow) WithTransportSrc(prefix string, port int) *Flow {
	return f.WithMatch(prefix+"_src", fmt.Sprint(port))
}

func (f *Flow) WithTransportDest(prefix string, port int) *Flow {
	return f.WithMatch(prefix+"_dst", fmt.Sprint(port))
}

// Actions

// WithAction adds an action written in ovs-ofctl syntax.
func (f *Flow) WithAction(action string) *Flow {
	f.actions = append(f.actions, action)
	return f
}

func (f *Flow) WithActionModDlDest(dstMac string) *Flow {
	return f.WithAction(fmt.Sprintf("mod_dl_dst:%s", dstMac))
}

func (f *Flow) WithActionModDlSrc(srcMac string) *Flow {
	return f.WithAction(fmt.Sprintf("mod_dl_src:%s", srcMac))
}

func (f *Flow) WithActionSetField(value, field string) *Flow {
	return f.WithAction(fmt.Sprintf("set_field:%s->%s", value, field))
}

func (f *Flow) WithActionOutputPort(output int) *Flow {
	return f.WithAction(fmt.Sprintf("output:%d", output))
}

func (f *Flow) WithActionController(maxLen int) *Flow {
	return f.WithAction(fmt.Sprintf("controller:%d", maxLen))
}

func (f *Flow) WithActionGotoTable(table int) *Flow {
	return f.WithAction(fmt.Sprintf("goto_table:%d", table))
}

func (f *Flow) WithActionInPort() *Flow {
	return f.WithAction("in_port")
}

func (f *Flow) WithLocal() *Flow {
	return f.WithAction("local")
}
