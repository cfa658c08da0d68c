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
	"bytes"

	"github.com/pkg/errors"
)

var ErrBadVariantAccess = errors.New("bad variant access")

// Cast returns the alternative held by v as a T.
func Cast[T any](v interface{}) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, errors.Wrapf(ErrBadVariantAccess, "holds %T, not %T", v, t)
	}
	return t, nil
}

// As returns a pointer to a copy of the alternative held by v, or nil when v
// holds something else.
func As[T any](v interface{}) *T {
	t, ok := v.(T)
	if !ok {
		return nil
	}
	return &t
}

// TruncateName shortens s to fit a NUL terminated field of the given
// capacity.
func TruncateName(s string, capacity int) string {
	if capacity <= 0 {
		return ""
	}
	if len(s) > capacity-1 {
		return s[:capacity-1]
	}
	return s
}

// PutName stores s, truncated, into a fixed size field and zeroes the rest.
func PutName(dst []byte, s string) {
	n := copy(dst, TruncateName(s, len(dst)))
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Name returns the string held in a NUL terminated field.
func Name(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// CloneBytes returns a copy of b that shares nothing with it.
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
