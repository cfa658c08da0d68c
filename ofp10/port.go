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

package ofp10

import (
	"net"

	"github.com/k-vswitch/ofproto/wire"
)

type ofpPhyPort struct {
	PortNo     uint16
	HwAddr     [6]uint8
	Name       [MaxPortNameLen]uint8
	Config     uint32
	State      uint32
	Curr       uint32
	Advertised uint32
	Supported  uint32
	Peer       uint32
}

const phyPortLen = 48

// PhyPort describes a physical switch port.
type PhyPort struct {
	d ofpPhyPort
}

// NewPhyPort truncates name to fit the 16 byte name field.
func NewPhyPort(portNo uint16, hwAddr net.HardwareAddr, name string) PhyPort {
	p := PhyPort{d: ofpPhyPort{PortNo: portNo}}
	copy(p.d.HwAddr[:], hwAddr)
	wire.PutName(p.d.Name[:], name)
	return p
}

func (p PhyPort) WithConfig(config uint32) PhyPort {
	p.d.Config = config
	return p
}

func (p PhyPort) WithState(state uint32) PhyPort {
	p.d.State = state
	return p
}

func (p PhyPort) WithFeatures(curr, advertised, supported, peer uint32) PhyPort {
	p.d.Curr, p.d.Advertised, p.d.Supported, p.d.Peer = curr, advertised, supported, peer
	return p
}

func (p PhyPort) PortNo() uint16           { return p.d.PortNo }
func (p PhyPort) HwAddr() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(p.d.HwAddr[:])) }
func (p PhyPort) Name() string             { return wire.Name(p.d.Name[:]) }
func (p PhyPort) Config() uint32           { return p.d.Config }
func (p PhyPort) State() uint32            { return p.d.State }
func (p PhyPort) Curr() uint32             { return p.d.Curr }
func (p PhyPort) Advertised() uint32       { return p.d.Advertised }
func (p PhyPort) Supported() uint32        { return p.d.Supported }
func (p PhyPort) Peer() uint32             { return p.d.Peer }
func (p PhyPort) Length() int              { return phyPortLen }
func (p PhyPort) ByteLength() int          { return phyPortLen }
func (p PhyPort) Encode(b []byte) []byte   { return wire.Append(b, &p.d) }
func (p PhyPort) Equal(o PhyPort) bool     { return p.d == o.d }

// Equivalent compares names up to their terminator; a port has no padding.
func (p PhyPort) Equivalent(o PhyPort) bool {
	a, b := p.d, o.d
	a.Name, b.Name = [MaxPortNameLen]uint8{}, [MaxPortNameLen]uint8{}
	return a == b && p.Name() == o.Name()
}

func DecodePhyPort(d *wire.Decoder) (PhyPort, error) {
	var p PhyPort
	if err := decodeStruct(d, &p.d); err != nil {
		return PhyPort{}, err
	}
	return p, nil
}

type PhyPortList = wire.List[PhyPort]

// DecodePhyPorts decodes ports until d is exhausted.
func DecodePhyPorts(d *wire.Decoder) (PhyPortList, error) {
	return wire.DecodeList[PhyPort](d, DecodePhyPort)
}
