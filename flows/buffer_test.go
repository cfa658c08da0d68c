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
	"bytes"
	"errors"
	"testing"
)

func testFlows() []*Flow {
	return []*Flow{
		NewFlow().WithTable(0).WithPriority(10).WithActionOutputPort(1),
		NewFlow().WithTable(0).WithPriority(10).WithProtocol("ip").WithIPDest("10.0.0.1").WithActionGotoTable(10),
		NewFlow().WithTable(10).WithPriority(15).WithProtocol("ip").WithIPDest("10.0.0.1").WithActionOutputPort(2),
		NewFlow().WithTable(20).WithPriority(5).WithProtocol("arp").WithArpDest("10.0.0.2").WithActionOutputPort(5),
		NewFlow().WithTable(20).WithPriority(100).WithProtocol("ip").WithIPDest("10.0.0.1").
			WithActionModDlDest("aa:bb:cc:dd:ee:ff").WithActionOutputPort(2),
		NewFlow().WithTable(30).WithPriority(100).WithProtocol("ip").WithIPDest("10.0.0.1").
			WithActionSetField("0x64", "tun_id").WithActionOutputPort(1),
	}
}

const expectedBufferString = `table=0 priority=10 actions=output:1
table=0 priority=10 ip nw_dst=10.0.0.1 actions=goto_table:10
table=10 priority=15 ip nw_dst=10.0.0.1 actions=output:2
table=20 priority=5 arp arp_tpa=10.0.0.2 actions=output:5
table=20 priority=100 ip nw_dst=10.0.0.1 actions=mod_dl_dst:aa:bb:cc:dd:ee:ff,output:2
table=30 priority=100 ip nw_dst=10.0.0.1 actions=set_field:0x64->tun_id,output:1
`

func Test_AddFlow(t *testing.T) {
	flowsBuffer := NewFlowsBuffer()
	for _, flow := range testFlows() {
		flowsBuffer.AddFlow(flow)
	}

	actualBufferString := flowsBuffer.String()
	if actualBufferString != expectedBufferString {
		t.Logf("actual buffer string: %q", actualBufferString)
		t.Logf("expected buffer string: %q", expectedBufferString)
		t.Errorf("unexpected buffer string")
	}
	if flowsBuffer.Len() != 6 {
		t.Errorf("got %d flows, want 6", flowsBuffer.Len())
	}

	flowsBuffer.Reset()
	if flowsBuffer.String() != "" || flowsBuffer.Len() != 0 {
		t.Errorf("reset left %d flows", flowsBuffer.Len())
	}
}

func Test_Flush(t *testing.T) {
	flowsBuffer := NewFlowsBuffer()
	for _, flow := range testFlows() {
		flowsBuffer.AddFlow(flow)
	}

	var out bytes.Buffer
	if err := flowsBuffer.Flush(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != expectedBufferString {
		t.Logf("actual output: %q", out.String())
		t.Errorf("unexpected output")
	}
	if flowsBuffer.Len() != 0 || flowsBuffer.String() != "" {
		t.Errorf("flush must empty the buffer")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func Test_FlushError(t *testing.T) {
	flowsBuffer := NewFlowsBuffer()
	flowsBuffer.AddFlow(NewFlow().WithActionOutputPort(1))
	if err := flowsBuffer.Flush(failingWriter{}); err == nil {
		t.Errorf("expected the write error")
	}
}
