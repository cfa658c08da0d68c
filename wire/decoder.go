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

package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrTruncated is returned when fewer bytes remain than requested.
var ErrTruncated = errors.New("wire: truncated")

// Decoder is a forward only cursor over a byte range. The end of the range is
// authoritative: nothing past it is ever read.
type Decoder struct {
	buf []byte
	off int
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Len returns the number of unread bytes.
func (d *Decoder) Len() int {
	return len(d.buf) - d.off
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int {
	return d.off
}

// Bytes returns the unread bytes without consuming them.
func (d *Decoder) Bytes() []byte {
	return d.buf[d.off:]
}

func (d *Decoder) Peek(n int) ([]byte, error) {
	if n < 0 || n > d.Len() {
		return nil, ErrTruncated
	}
	return d.buf[d.off : d.off+n], nil
}

// Next consumes n bytes. The returned slice aliases the decoder input.
func (d *Decoder) Next(n int) ([]byte, error) {
	b, err := d.Peek(n)
	if err != nil {
		return nil, err
	}
	d.off += n
	return b, nil
}

func (d *Decoder) Skip(n int) error {
	_, err := d.Next(n)
	return err
}

// Rest consumes and returns a copy of every unread byte.
func (d *Decoder) Rest() []byte {
	b := append([]byte{}, d.buf[d.off:]...)
	d.off = len(d.buf)
	return b
}

// Sub consumes n bytes and returns a decoder limited to them.
func (d *Decoder) Sub(n int) (*Decoder, error) {
	b, err := d.Next(n)
	if err != nil {
		return nil, err
	}
	return NewDecoder(b), nil
}

func (d *Decoder) PeekUint8(off int) (uint8, error) {
	b, err := d.Peek(off + 1)
	if err != nil {
		return 0, err
	}
	return b[off], nil
}

func (d *Decoder) PeekUint16(off int) (uint16, error) {
	b, err := d.Peek(off + 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[off:]), nil
}

func (d *Decoder) PeekUint32(off int) (uint32, error) {
	b, err := d.Peek(off + 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}
