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
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k-vswitch/ofproto/wire"
)

func Test_CreateVlanVid(t *testing.T) {
	tests := []struct {
		name    string
		vid     uint16
		wantErr bool
		wire    uint64
	}{
		{
			name: "highest vlan id",
			vid:  0x0fff,
			wire: 0x1fff,
		},
		{
			name:    "present bit alone is out of range",
			vid:     0x1000,
			wantErr: true,
		},
		{
			name: "no vlan",
			vid:  VlanNone,
			wire: 0x0000,
		},
		{
			name: "vlan zero",
			vid:  0,
			wire: 0x1000,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := CreateVlanVid(test.vid)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error for vid %#x", test.vid)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.VlanVid() != test.vid {
				t.Errorf("VlanVid: got %#x, want %#x", f.VlanVid(), test.vid)
			}
			if f.Uint() != test.wire {
				t.Errorf("wire value: got %#x, want %#x", f.Uint(), test.wire)
			}
		})
	}
}

func Test_CreateIPv4Prefix(t *testing.T) {
	addr := net.ParseIP("10.1.2.0")

	f, err := CreateIPv4Src(addr, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.HasMask() {
		t.Errorf("a /24 must be masked")
	}
	if f.PrefixLength() != 24 {
		t.Errorf("PrefixLength: got %d, want 24", f.PrefixLength())
	}
	if f.WildcardBitCount() != 8 {
		t.Errorf("WildcardBitCount: got %d, want 8", f.WildcardBitCount())
	}
	if diff := cmp.Diff([]byte{255, 255, 255, 0}, f.Mask()); diff != "" {
		t.Errorf("unexpected mask (-want +got):\n%s", diff)
	}

	if _, err := CreateIPv4Src(addr, 33); err == nil {
		t.Errorf("expected prefix 33 to be rejected")
	}

	host, err := CreateIPv4Dst(addr, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host.HasMask() || host.PrefixLength() != 32 || host.WildcardBitCount() != 0 {
		t.Errorf("a /32 must encode unmasked, got %s", host)
	}
}

func Test_MatchFieldEncode(t *testing.T) {
	tests := []struct {
		name  string
		field MatchField
		want  []byte
	}{
		{
			name:  "in_port",
			field: NewInPort(1),
			want:  []byte{0x80, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01},
		},
		{
			name:  "eth_type",
			field: NewEthType(0x0800),
			want:  []byte{0x80, 0x00, 0x0a, 0x02, 0x08, 0x00},
		},
		{
			name:  "masked ipv4_src",
			field: NewIPv4SrcMasked(net.ParseIP("192.168.0.0"), net.CIDRMask(16, 32)),
			want: []byte{
				0x80, 0x00, 0x17, 0x08,
				192, 168, 0, 0,
				255, 255, 0, 0,
			},
		},
		{
			name:  "eth_dst",
			field: NewEthDst(net.HardwareAddr{0, 1, 2, 3, 4, 5}),
			want:  []byte{0x80, 0x00, 0x06, 0x06, 0, 1, 2, 3, 4, 5},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.field.Encode(nil)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("unexpected encoding (-want +got):\n%s", diff)
			}
			if test.field.Length() != len(test.want) {
				t.Errorf("Length: got %d, want %d", test.field.Length(), len(test.want))
			}

			d := wire.NewDecoder(got)
			decoded, err := DecodeMatchField(d)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if !decoded.Equal(test.field) {
				t.Errorf("decoded %s, want %s", decoded, test.field)
			}
			if d.Len() != 0 {
				t.Errorf("%d bytes left after decode", d.Len())
			}
		})
	}
}

func Test_MatchFieldEquivalent(t *testing.T) {
	tests := []struct {
		name       string
		a, b       MatchField
		equal      bool
		equivalent bool
	}{
		{
			name:       "identical",
			a:          NewTCPDst(80),
			b:          NewTCPDst(80),
			equal:      true,
			equivalent: true,
		},
		{
			name:       "bits outside the mask",
			a:          NewIPv4SrcMasked(net.ParseIP("10.0.0.1"), net.CIDRMask(8, 32)),
			b:          NewIPv4SrcMasked(net.ParseIP("10.9.9.9"), net.CIDRMask(8, 32)),
			equivalent: true,
		},
		{
			name:       "all ones mask is no mask",
			a:          NewMetadataMasked(7, 0xffffffffffffffff),
			b:          NewMetadata(7),
			equivalent: true,
		},
		{
			name:       "insignificant vlan_pcp bits",
			a:          NewVlanPcp(0x03),
			b:          NewVlanPcp(0xfb),
			equivalent: true,
		},
		{
			name: "different fields",
			a:    NewTCPSrc(80),
			b:    NewTCPDst(80),
		},
		{
			name: "different prefixes",
			a:    NewIPv4SrcMasked(net.ParseIP("10.0.0.0"), net.CIDRMask(8, 32)),
			b:    NewIPv4SrcMasked(net.ParseIP("10.0.0.0"), net.CIDRMask(16, 32)),
		},
		{
			name: "dscp compares the six dscp bits only",
			a:    NewIPDscp(0x2e),
			b:    NewIPDscp(0x2f),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.equal {
				t.Errorf("Equal: got %v, want %v", got, test.equal)
			}
			if got := test.a.Equivalent(test.b); got != test.equivalent {
				t.Errorf("Equivalent: got %v, want %v", got, test.equivalent)
			}
			if test.a.Equivalent(test.b) != test.b.Equivalent(test.a) {
				t.Errorf("Equivalent is not symmetric")
			}
			if !test.a.Equivalent(test.a) {
				t.Errorf("Equivalent is not reflexive")
			}
		})
	}
}

func Test_ValidateOXMHeader(t *testing.T) {
	tests := []struct {
		name   string
		header uint32
		want   string
	}{
		{
			name:   "valid in_port",
			header: 0x80000004,
		},
		{
			name:   "valid masked ipv6_src",
			header: 0x80003520,
		},
		{
			name:   "nicira class",
			header: 0x00010004,
			want:   "invalid oxm class",
		},
		{
			name:   "field 40 is undefined",
			header: 0x80005004,
			want:   "invalid oxm field",
		},
		{
			name:   "in_port with a wrong length",
			header: 0x80000008,
			want:   "invalid oxm length",
		},
		{
			name:   "in_port cannot be masked",
			header: 0x80000108,
			want:   "invalid oxm length",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateOXMHeader(test.header)
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

func Test_DecodeMatchFieldBadField(t *testing.T) {
	_, err := DecodeMatchField(wire.NewDecoder([]byte{0x80, 0x00, 0x50, 0x04, 0, 0, 0, 0}))
	if !wire.IsError(err, CodeBadMatchField) {
		t.Errorf("got %v, want %v", err, CodeBadMatchField)
	}
}

func Test_MatchFieldIsWildcard(t *testing.T) {
	if !NewMetadataMasked(0xabcd, 0).IsWildcard() {
		t.Errorf("a zero mask matches everything")
	}
	if NewMetadata(0).IsWildcard() {
		t.Errorf("an unmasked field is never a wildcard")
	}
}
