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


package ofp13

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_DecodeVersionBitmap(t *testing.T) {
	// two bitmap words, the second one advertising version 33
	raw := []byte{
		0x00, 0x01, 0x00, 0x0c,
		0x00, 0x00, 0x00, 0x12,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00,
	}

	l, err := DecodeHelloElements(wire.NewDecoder(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 1 {
		t.Fatalf("got %d elements, want 1", len(l))
	}
	v, ok := l[0].(VersionBitmap)
	if !ok {
		t.Fatalf("got %T, want VersionBitmap", l[0])
	}
	if diff := cmp.Diff([]uint32{0x12, 0x02}, v.Bitmaps()); diff != "" {
		t.Errorf("unexpected bitmaps (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{1, 4, 33}, v.Versions()); diff != "" {
		t.Errorf("unexpected versions (-want +got):\n%s", diff)
	}
}

func Test_DecodeVersionBitmapPartialWord(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00}

	_, err := DecodeHelloElements(wire.NewDecoder(raw))
	e, ok := wire.AsError(err)
	if !ok || e.Pair() != CodeBadLen {
		t.Fatalf("got %v, want %v", err, CodeBadLen)
	}
	if e.Msg != "invalid hello element length" {
		t.Errorf("got message %q, want %q", e.Msg, "invalid hello element length")
	}
}
