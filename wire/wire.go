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

// Package wire holds the version independent pieces of the OpenFlow codec:
// packed struct marshaling, a bounds checked decode cursor, header
// validation, protocol errors, and the generic list and dispatch types every
// element family is built from.
package wire

import (
	"bytes"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// Align8 rounds n up to the next multiple of 8.
func Align8(n int) int {
	return (n + 7) &^ 7
}

// AppendZeros appends n zero bytes to b.
func AppendZeros(b []byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, 0)
	}
	return b
}

// Append appends the network byte order encoding of the wire struct desc to b.
// Byte arrays, padding included, are copied as is.
func Append(b []byte, desc interface{}) []byte {
	buf := bytes.NewBuffer(b)
	if err := struc.Pack(buf, desc); err != nil {
		panic(errors.Wrapf(err, "wire: cannot pack %T", desc))
	}
	return buf.Bytes()
}

// Unpack consumes Sizeof(desc) bytes from d and stores them, in host byte
// order, into the struct pointed to by desc.
func Unpack(d *Decoder, desc interface{}) error {
	b, err := d.Next(Sizeof(desc))
	if err != nil {
		return err
	}
	return struc.Unpack(bytes.NewReader(b), desc)
}

// Sizeof returns the packed size of a wire struct.
func Sizeof(desc interface{}) int {
	n, err := struc.Sizeof(desc)
	if err != nil {
		panic(errors.Wrapf(err, "wire: cannot size %T", desc))
	}
	return n
}

// SaturatedEqual reports whether a and b are the same value once everything
// above limit is treated as one saturated value.
func SaturatedEqual(a, b, limit uint16) bool {
	if a > limit && b > limit {
		return true
	}
	return a == b
}
