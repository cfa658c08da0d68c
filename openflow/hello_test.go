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

package openflow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-vswitch/ofproto/ofp13"
)

func parseHello(t *testing.T, m Message) Hello {
	t.Helper()
	h, err := ParseHello(m.Encode(nil))
	require.NoError(t, err)
	return h
}

// helloOf builds a hello of any version, the way a newer peer would send
// it.
func helloOf(version uint8, bitmap ...uint8) []byte {
	raw := ofp13.NewHello(1).Encode(nil)
	if len(bitmap) > 0 {
		raw = ofp13.NewHello(1, ofp13.NewVersionBitmap(bitmap...)).Encode(nil)
	}
	raw[0] = version
	return raw
}

func Test_ParseHello(t *testing.T) {
	h := parseHello(t, OpenFlow13.NewHello(1))
	assert.Equal(t, uint8(0x04), h.Version)
	require.NotNil(t, h.Bitmap)
	assert.Equal(t, []uint8{0x01, 0x04}, h.Bitmap.Versions())

	h = parseHello(t, OpenFlow10.NewHello(1))
	assert.Equal(t, uint8(0x01), h.Version)
	assert.Nil(t, h.Bitmap)
	assert.True(t, h.Supports(0x01))
	assert.False(t, h.Supports(0x04))

	_, err := ParseHello(OpenFlow13.NewBarrierRequest(1).Encode(nil))
	assert.Error(t, err)
}

func Test_NegotiateVersion(t *testing.T) {
	tests := []struct {
		name    string
		local   []byte
		remote  []byte
		want    uint8
		wantErr bool
	}{
		{
			name:   "both bitmaps",
			local:  OpenFlow13.NewHello(1).Encode(nil),
			remote: helloOf(0x06, 0x01, 0x04, 0x06),
			want:   0x04,
		},
		{
			name:   "openflow 1.0 peer",
			local:  OpenFlow13.NewHello(1).Encode(nil),
			remote: OpenFlow10.NewHello(1).Encode(nil),
			want:   0x01,
		},
		{
			name:   "newer peer without a bitmap",
			local:  OpenFlow13.NewHello(1).Encode(nil),
			remote: helloOf(0x05),
			want:   0x04,
		},
		{
			name:    "no common bitmap version",
			local:   OpenFlow13.NewHello(1).Encode(nil),
			remote:  helloOf(0x06, 0x05, 0x06),
			wantErr: true,
		},
		{
			name:    "openflow 1.1 peer",
			local:   OpenFlow13.NewHello(1).Encode(nil),
			remote:  helloOf(0x02),
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			local, err := ParseHello(test.local)
			require.NoError(t, err)
			remote, err := ParseHello(test.remote)
			require.NoError(t, err)

			p, err := NegotiateVersion(local, remote)
			if test.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupportedVersion), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p.Version())
		})
	}
}
