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
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofproto/ofp10"
	"github.com/k-vswitch/ofproto/ofp13"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	out := &bytes.Buffer{}
	cmd := newRootCommand(out)
	cmd.SetArgs(args)
	cmd.SetErr(ioutil.Discard)
	cmd.SetIn(bytes.NewReader(nil))
	err := cmd.Execute()
	return out.String(), err
}

func testFlowMod() []byte {
	return ofp13.NewFlowMod(1, ofp13.FlowAdd).
		WithTable(10).
		WithPriority(100).
		WithMatch(ofp13.NewMatch(ofp13.NewInPort(1))).
		WithInstructions(ofp13.NewApplyActions(ofp13.NewOutput(2, 0))).
		Encode(nil)
}

func Test_TextOutput(t *testing.T) {
	raw := testFlowMod()
	barrier := ofp10.NewBarrierRequest(0x1234).Encode(nil)

	out, err := execute(t, hex.EncodeToString(raw), hex.EncodeToString(barrier))
	require.NoError(t, err)

	want := "OpenFlow 1.3 flow_mod xid=0x1 len=" + strconv.Itoa(len(raw)) + " command=add\n" +
		"table=10 priority=100 in_port=1 actions=output:2\n" +
		"OpenFlow 1.0 barrier_request xid=0x1234 len=8\n"
	assert.Equal(t, want, out)
}

func Test_HexSeparators(t *testing.T) {
	out, err := execute(t, "0x04:14:00:08", "00 00 00 07")
	require.NoError(t, err)
	assert.Equal(t, "OpenFlow 1.3 barrier_request xid=0x7 len=8\n", out)
}

func Test_JSONOutput(t *testing.T) {
	out, err := execute(t, "--format", "json", hex.EncodeToString(testFlowMod()))
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "OpenFlow 1.3", records[0]["protocol"])
	assert.Equal(t, "flow_mod", records[0]["type"])
	assert.Equal(t, "command=add", records[0]["summary"])
	assert.Equal(t, []interface{}{"table=10 priority=100 in_port=1 actions=output:2"}, records[0]["flows"])
	assert.NotContains(t, records[0], "error")
}

func Test_YAMLOutput(t *testing.T) {
	out, err := execute(t, "-o", "yaml", "04140008000000ff")
	require.NoError(t, err)
	assert.Contains(t, out, "protocol: OpenFlow 1.3")
	assert.Contains(t, out, "type: barrier_request")
	assert.Contains(t, out, "xid: 255")
}

func Test_SpewOutput(t *testing.T) {
	out, err := execute(t, "--format", "spew", "04140008000000ff")
	require.NoError(t, err)
	assert.Contains(t, out, "ofp13.BarrierRequest")
}

func Test_PacketIn(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0, 1, 2, 3, 4, 5},
		DstMAC:       net.HardwareAddr{0, 1, 2, 3, 4, 6},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IPv4(10, 0, 0, 1),
		DstIP:    net.IPv4(10, 0, 0, 2),
	}
	udp := &layers.UDP{SrcPort: 40000, DstPort: 40001}
	require.NoError(t, udp.SetNetworkLayerForChecksum(ip))

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload([]byte("query"))))
	data := buf.Bytes()

	raw := ofp13.NewPacketIn(9, ofp13.NoBuffer, uint16(len(data)), 0, 3, 0, ofp13.NewMatch(ofp13.NewInPort(1)), data).Encode(nil)

	out, err := execute(t, hex.EncodeToString(raw))
	require.NoError(t, err)
	assert.Contains(t, out, "OpenFlow 1.3 packet_in xid=0x9")
	assert.Contains(t, out, "table=3 reason=0")
	assert.Contains(t, out, "packet=Ethernet/IPv4/UDP/Payload")
}

func Test_FileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.bin")
	require.NoError(t, os.WriteFile(path, testFlowMod(), 0644))

	out, err := execute(t, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "table=10 priority=100 in_port=1 actions=output:2")
}

func Test_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ofdump.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"yaml\"\nversion_hint = \"1.3\"\n"), 0644))

	out, err := execute(t, "--config", path, "04140008000000ff")
	require.NoError(t, err)
	assert.Contains(t, out, "type: barrier_request")

	out, err = execute(t, "--config", path, "--format", "text", "04140008000000ff")
	require.NoError(t, err)
	assert.Equal(t, "OpenFlow 1.3 barrier_request xid=0xff len=8\n", out)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "04140008000000ff")
	assert.Error(t, err)
}

func Test_VersionHint(t *testing.T) {
	out, err := execute(t, "--version-hint", "1.3", "01120008000000ff")
	assert.EqualError(t, err, "1 of 1 messages failed to decode")
	assert.Contains(t, out, "OpenFlow 1.3 multipart_request")
	assert.Contains(t, out, "error=")

	_, err = execute(t, "--version-hint", "2.0", "04140008000000ff")
	assert.Error(t, err)
}

func Test_DecodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		wantOut string
	}{
		{
			name:    "not hex",
			args:    []string{"zz"},
			wantErr: `decoding hex argument "zz"`,
		},
		{
			name:    "no input",
			wantErr: "no input: pass hex messages or --file",
		},
		{
			name:    "unknown message type",
			args:    []string{"0463000800000001"},
			wantErr: "1 of 1 messages failed to decode",
			wantOut: "OpenFlow 1.3 message(99) xid=0x0 len=8 error=",
		},
		{
			name:    "trailing partial message",
			args:    []string{"04140008000000010414"},
			wantErr: "1 of 2 messages failed to decode",
			wantOut: "- len=2 error=2 trailing bytes do not hold a whole message",
		},
		{
			name:    "length shorter than the header",
			args:    []string{"0414000400000001"},
			wantErr: "1 of 1 messages failed to decode",
			wantOut: "- len=8 error=message length 4 is shorter than its header",
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "xml", "04140008000000ff"},
			wantErr: `unknown output format "xml"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := execute(t, test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
			assert.Contains(t, out, test.wantOut)
		})
	}
}

func Test_ParseVersionHint(t *testing.T) {
	p, err := parseVersionHint("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = parseVersionHint("1.0")
	require.NoError(t, err)
	assert.Equal(t, uint8(ofp10.Version), p.Version())

	p, err = parseVersionHint("OF13")
	require.NoError(t, err)
	assert.Equal(t, uint8(ofp13.Version), p.Version())
}
