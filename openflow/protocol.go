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
	"fmt"

	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/ofp10"
	"github.com/k-vswitch/ofproto/ofp13"
)

// ErrUnsupportedVersion is returned for wire versions with no codec.
var ErrUnsupportedVersion = errors.New("unsupported OpenFlow version")

// Message is a decoded message of any supported version.
type Message interface {
	Xid() uint32
	Length() int
	Encode(b []byte) []byte
}

// Protocol describes the immutable part of an OpenFlow protocol version
type Protocol interface {
	String() string
	Version() uint8
	DecodeMessage(data []byte) (Message, error)
	MessageName(t uint8) string
	NewHello(xid uint32) Message
	NewEchoRequest(xid uint32, data []byte) Message
	NewEchoReply(xid uint32, data []byte) Message
	NewBarrierRequest(xid uint32) Message
}

// OpenFlow protocols singletons
var (
	OpenFlow10 openFlow10
	OpenFlow13 openFlow13
)

// ProtocolFor returns the protocol of a wire version.
func ProtocolFor(version uint8) (Protocol, error) {
	switch version {
	case ofp10.Version:
		return OpenFlow10, nil
	case ofp13.Version:
		return OpenFlow13, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedVersion, "version %#x", version)
}

// VersionOf returns the wire version of a decoded message.
func VersionOf(m Message) (uint8, bool) {
	switch m.(type) {
	case ofp10.Message:
		return ofp10.Version, true
	case ofp13.Message:
		return ofp13.Version, true
	}
	return 0, false
}

// MessageName names a message type of the given version.
func MessageName(version, t uint8) string {
	p, err := ProtocolFor(version)
	if err != nil {
		return fmt.Sprintf("version(%#x) message(%d)", version, t)
	}
	return p.MessageName(t)
}

type openFlow10 struct {
}

func (p openFlow10) String() string {
	return "OpenFlow 1.0"
}

func (p openFlow10) Version() uint8 {
	return ofp10.Version
}

func (p openFlow10) MessageName(t uint8) string {
	return ofp10.MessageType(t).String()
}

func (p openFlow10) NewHello(xid uint32) Message {
	return ofp10.NewHello(xid)
}

func (p openFlow10) NewEchoRequest(xid uint32, data []byte) Message {
	return ofp10.NewEchoRequest(xid, data)
}

func (p openFlow10) NewEchoReply(xid uint32, data []byte) Message {
	return ofp10.NewEchoReply(xid, data)
}

func (p openFlow10) NewBarrierRequest(xid uint32) Message {
	return ofp10.NewBarrierRequest(xid)
}

func (p openFlow10) DecodeMessage(data []byte) (Message, error) {
	m, err := ofp10.DecodeMessage(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type openFlow13 struct {
}

func (p openFlow13) String() string {
	return "OpenFlow 1.3"
}

func (p openFlow13) Version() uint8 {
	return ofp13.Version
}

func (p openFlow13) MessageName(t uint8) string {
	return ofp13.MessageType(t).String()
}

// NewHello advertises every version this package decodes.
func (p openFlow13) NewHello(xid uint32) Message {
	return ofp13.NewHello(xid, ofp13.NewVersionBitmap(ofp10.Version, ofp13.Version))
}

func (p openFlow13) NewEchoRequest(xid uint32, data []byte) Message {
	return ofp13.NewEchoRequest(xid, data)
}

func (p openFlow13) NewEchoReply(xid uint32, data []byte) Message {
	return ofp13.NewEchoReply(xid, data)
}

func (p openFlow13) NewBarrierRequest(xid uint32) Message {
	return ofp13.NewBarrierRequest(xid)
}

func (p openFlow13) DecodeMessage(data []byte) (Message, error) {
	m, err := ofp13.DecodeMessage(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}
