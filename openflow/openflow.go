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
	"encoding/binary"

	"github.com/pkg/errors"
	"k8s.io/klog"

	"github.com/k-vswitch/ofproto/wire"
)

// HeaderLen is the size of the header shared by every OpenFlow version.
const HeaderLen = 8

// MessageLength returns the length declared in the header at the start of
// buf.
func MessageLength(buf []byte) (int, error) {
	if len(buf) < HeaderLen {
		return 0, errors.Wrapf(wire.ErrTruncated, "%d bytes hold no header", len(buf))
	}
	// version(1) type(1) length(2)
	return int(binary.BigEndian.Uint16(buf[2:])), nil
}

// Split cuts buf into whole messages. The bytes of a trailing incomplete
// message are returned as rest.
func Split(buf []byte) (frames [][]byte, rest []byte, err error) {
	for len(buf) >= HeaderLen {
		length, _ := MessageLength(buf)
		if length < HeaderLen {
			return frames, buf, errors.Errorf("message length %d is shorter than its header", length)
		}
		if length > len(buf) {
			klog.V(5).Infof("waiting for %d more bytes of a %d byte message", length-len(buf), length)
			break
		}
		klog.V(5).Infof("framed %s message of %d bytes", MessageName(buf[0], buf[1]), length)
		frames = append(frames, buf[:length:length])
		buf = buf[length:]
	}
	return frames, buf, nil
}

// Decode decodes one message with the codec selected by its version byte.
func Decode(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return nil, errors.Wrap(wire.ErrTruncated, "empty message")
	}
	p, err := ProtocolFor(buf[0])
	if err != nil {
		return nil, err
	}
	return p.DecodeMessage(buf)
}

// DecodeAll splits buf and decodes every message in it.
func DecodeAll(buf []byte) ([]Message, error) {
	frames, rest, err := Split(buf)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Wrapf(wire.ErrTruncated, "%d trailing bytes", len(rest))
	}
	msgs := make([]Message, 0, len(frames))
	for i, frame := range frames {
		m, err := Decode(frame)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
