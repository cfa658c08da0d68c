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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
	"k8s.io/klog"

	"github.com/k-vswitch/ofproto/flows"
	"github.com/k-vswitch/ofproto/ofp10"
	"github.com/k-vswitch/ofproto/ofp13"
	"github.com/k-vswitch/ofproto/openflow"
)

// record is the printable description of one decoded message.
type record struct {
	Protocol string   `json:"protocol"`
	Type     string   `json:"type"`
	Xid      uint32   `json:"xid"`
	Length   int      `json:"length"`
	Summary  string   `json:"summary,omitempty"`
	Packet   string   `json:"packet,omitempty"`
	Flows    []string `json:"flows,omitempty"`
	Error    string   `json:"error,omitempty"`

	msg   openflow.Message
	flows []*flows.Flow
}

func parseVersionHint(hint string) (openflow.Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "", "auto":
		return nil, nil
	case "1.0", "of10", "openflow10":
		return openflow.OpenFlow10, nil
	case "1.3", "of13", "openflow13":
		return openflow.OpenFlow13, nil
	}
	return nil, errors.Errorf("unknown version hint %q", hint)
}

// readInput returns the bytes of the file, or else of the hex arguments.
func readInput(args []string, file string, stdin io.Reader) ([]byte, error) {
	if file != "" {
		var (
			buf []byte
			err error
		)
		if file == "-" {
			buf, err = ioutil.ReadAll(stdin)
		} else {
			buf, err = ioutil.ReadFile(file)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		return buf, nil
	}

	if len(args) == 0 {
		return nil, errors.New("no input: pass hex messages or --file")
	}

	var buf []byte
	for _, arg := range args {
		s := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
		s = strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "").Replace(s)
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding hex argument %q", arg)
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

func protocolName(version uint8) string {
	p, err := openflow.ProtocolFor(version)
	if err != nil {
		return fmt.Sprintf("version(%#x)", version)
	}
	return p.String()
}

// decodeFrames splits buf into messages and describes each of them.
func decodeFrames(buf []byte, hint openflow.Protocol) []record {
	frames, rest, err := openflow.Split(buf)

	records := make([]record, 0, len(frames)+1)
	for _, frame := range frames {
		records = append(records, decodeFrame(frame, hint))
	}

	switch {
	case err != nil:
		records = append(records, record{Length: len(rest), Error: err.Error()})
	case len(rest) != 0:
		records = append(records, record{Length: len(rest), Error: fmt.Sprintf("%d trailing bytes do not hold a whole message", len(rest))})
	}
	return records
}

func decodeFrame(frame []byte, hint openflow.Protocol) record {
	r := record{
		Protocol: protocolName(frame[0]),
		Type:     openflow.MessageName(frame[0], frame[1]),
		Length:   len(frame),
	}

	var (
		m   openflow.Message
		err error
	)
	if hint != nil {
		r.Protocol = hint.String()
		r.Type = hint.MessageName(frame[1])
		m, err = hint.DecodeMessage(frame)
	} else {
		m, err = openflow.Decode(frame)
	}
	if err != nil {
		klog.V(4).Infof("failed to decode %s: %v", r.Type, err)
		r.Error = err.Error()
		return r
	}

	r.msg = m
	r.Xid = m.Xid()
	describe(&r, m)
	for _, f := range r.flows {
		r.Flows = append(r.Flows, f.String())
	}
	return r
}

func describe(r *record, m openflow.Message) {
	switch m := m.(type) {
	case ofp13.FlowMod:
		r.Summary = fmt.Sprintf("command=%s", m.Command())
		r.flows = append(r.flows, flows.FromOFP13FlowMod(m))
	case ofp10.FlowMod:
		r.Summary = fmt.Sprintf("command=%s", m.Command())
		r.flows = append(r.flows, flows.FromOFP10FlowMod(m))
	case ofp13.MultipartReply:
		r.Summary = fmt.Sprintf("body=%s more=%t", m.Body().MultipartType(), m.More())
		if reply, ok := m.Body().(ofp13.FlowStatsReply); ok {
			for _, s := range reply.Stats() {
				r.flows = append(r.flows, flows.FromOFP13FlowStats(s))
			}
		}
	case ofp10.StatsReply:
		r.Summary = fmt.Sprintf("body=%s more=%t", m.Body().StatsType(), m.More())
		if reply, ok := m.Body().(ofp10.FlowStatsReply); ok {
			for _, s := range reply.Stats() {
				r.flows = append(r.flows, flows.FromOFP10FlowStats(s))
			}
		}
	case ofp13.PacketIn:
		r.Summary = fmt.Sprintf("table=%d reason=%d", m.TableID(), m.Reason())
		r.Packet = packetSummary(m.Data())
	case ofp10.PacketIn:
		r.Summary = fmt.Sprintf("in_port=%d reason=%d", m.InPort(), m.Reason())
		r.Packet = packetSummary(m.Data())
	case ofp13.PacketOut:
		r.Summary = fmt.Sprintf("in_port=%d actions=%d", m.InPort(), len(m.Actions()))
		r.Packet = packetSummary(m.Data())
	case ofp10.PacketOut:
		r.Summary = fmt.Sprintf("in_port=%d actions=%d", m.InPort(), len(m.Actions()))
		r.Packet = packetSummary(m.Data())
	case ofp13.ErrorMsg:
		r.Summary = fmt.Sprintf("type=%d code=%d", m.ErrType(), m.Code())
	case ofp10.ErrorMsg:
		r.Summary = fmt.Sprintf("type=%d code=%d", m.ErrType(), m.Code())
	}
}

// packetSummary names the layers of an Ethernet frame.
func packetSummary(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)

	var names []string
	for _, layer := range packet.Layers() {
		names = append(names, layer.LayerType().String())
	}
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		names = append(names, fmt.Sprintf("error(%v)", errLayer.Error()))
	}
	return strings.Join(names, "/")
}
