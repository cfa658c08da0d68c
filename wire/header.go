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
	"github.com/pkg/errors"
)

// HeaderSpec describes what a valid header of one concrete element looks
// like. Fixed elements must declare exactly MinLength bytes, variable ones
// may declare more because a tail follows.
type HeaderSpec struct {
	Kind      string
	Type      uint16
	Version   uint8
	MinLength int
	Fixed     bool
}

// Validate checks an element header. It returns nil or a *ValidationError.
func (s HeaderSpec) Validate(typ uint16, length int) error {
	if typ != s.Type {
		return Invalid(s.Kind, WhatType)
	}
	return s.validateLength(length)
}

// ValidateMessage checks a top level message header, which also carries the
// protocol version.
func (s HeaderSpec) ValidateMessage(version uint8, typ uint16, length int) error {
	if typ != s.Type {
		return Invalid(s.Kind, WhatType)
	}
	if version != s.Version {
		return Invalid("", WhatVersion)
	}
	return s.validateLength(length)
}

func (s HeaderSpec) validateLength(length int) error {
	if length < s.MinLength {
		return Invalid(s.Kind, WhatLength)
	}
	if s.Fixed && length != s.MinLength {
		return Invalid(s.Kind, WhatLength)
	}
	return nil
}

// Family is the error policy shared by every element of one kind: which
// protocol error an unknown discriminant or a bad length maps to, and
// whether unknown elements are skipped instead.
type Family struct {
	Kind        string
	BadType     Code
	BadLen      Code
	BadVersion  Code
	SkipUnknown bool
}

// Reject turns a header validation failure into the family's protocol error.
// Errors that are not validation failures are returned unchanged.
func (f Family) Reject(err error) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	switch verr.What {
	case WhatLength:
		return NewError(f.BadLen, "%s", verr.Error())
	case WhatVersion:
		return NewError(f.BadVersion, "%s", verr.Error())
	default:
		return NewError(f.BadType, "%s", verr.Error())
	}
}

// Truncated reports an element whose declared length runs past the range.
func (f Family) Truncated(declared, remaining int) *Error {
	return NewError(f.BadLen, "%s declares %d bytes but only %d remain", f.Kind, declared, remaining)
}

// Unknown reports a discriminant with no decoder.
func (f Family) Unknown(tag uint32) *Error {
	return NewError(f.BadType, "unknown %s type %#x", f.Kind, tag)
}

// Check validates a header against s and converts a failure into the
// family's protocol error.
func (f Family) Check(s HeaderSpec, typ uint16, length int) error {
	if err := s.Validate(typ, length); err != nil {
		return f.Reject(err)
	}
	return nil
}
