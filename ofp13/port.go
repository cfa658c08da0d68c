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

	"github.com/k-vswitch/ofproto/wire"
)

type ofpPort struct {
	PortNo     uint32
	Pad        [4]uint8
	HwAddr     [6]uint8
	Pad2       [2]uint8
	Name       [MaxPortNameLen]uint8
	Config     uint32
	State      uint32
	Curr       uint32
	Advertised uint32
	Supported  uint32
	Peer       uint32
	CurrSpeed  uint32
	MaxSpeed   uint32
}

func (d ofpPort) clean() ofpPort {
	d.Pad, d.Pad2 = [4]uint8{}, [2]uint8{}
	return d
}

const portLen = 64

// Port describes a switch port. The With methods return modified copies.
type Port struct {
	d ofpPort
}

// NewPort truncates name to fit the 16 byte name field.
func NewPort(portNo uint32, hwAddr net.HardwareAddr, name string) Port {
	p := Port{d: ofpPort{PortNo: portNo}}
	copy(p.d.HwAddr[:], hwAddr)
	wire.PutName(p.d.Name[:], name)
	return p
}

func (p Port) WithConfig(config uint32) Port {
	p.d.Config = config
	return p
}

func (p Port) WithState(state uint32) Port {
	p.d.State = state
	return p
}

// WithFeatures sets the current, advertised, supported and peer feature
// bitmaps.
func (p Port) WithFeatures(curr, advertised, supported, peer uint32) Port {
	p.d.Curr, p.d.Advertised, p.d.Supported, p.d.Peer = curr, advertised, supported, peer
	return p
}

// WithSpeed sets the current and maximum bitrate in kbps.
func (p Port) WithSpeed(curr, max uint32) Port {
	p.d.CurrSpeed, p.d.MaxSpeed = curr, max
	return p
}

func (p Port) PortNo() uint32           { return p.d.PortNo }
func (p Port) HwAddr() net.HardwareAddr { return net.HardwareAddr(wire.CloneBytes(p.d.HwAddr[:])) }
func (p Port) Name() string             { return wire.Name(p.d.Name[:]) }
func (p Port) Config() uint32           { return p.d.Config }
func (p Port) State() uint32            { return p.d.State }
func (p Port) Curr() uint32             { return p.d.Curr }
func (p Port) Advertised() uint32       { return p.d.Advertised }
func (p Port) Supported() uint32        { return p.d.Supported }
func (p Port) Peer() uint32             { return p.d.Peer }
func (p Port) CurrSpeed() uint32        { return p.d.CurrSpeed }
func (p Port) MaxSpeed() uint32         { return p.d.MaxSpeed }
func (p Port) Length() int              { return portLen }
func (p Port) ByteLength() int          { return portLen }
func (p Port) Encode(b []byte) []byte   { return wire.Append(b, &p.d) }
func (p Port) Equal(o Port) bool        { return p.d == o.d }
func (p Port) Equivalent(o Port) bool   { return p.d.clean() == o.d.clean() }

func DecodePort(d *wire.Decoder) (Port, error) {
	var p Port
	if err := decodeStruct(d, &p.d); err != nil {
		return Port{}, err
	}
	return p, nil
}

type PortList = wire.List[Port]

func DecodePorts(d *wire.Decoder) (PortList, error) {
	return wire.DecodeList[Port](d, DecodePort)
}
