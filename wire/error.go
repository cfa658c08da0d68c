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
	"fmt"

	"github.com/pkg/errors"
)

// Code is an OpenFlow (error type, error code) pair.
type Code struct {
	Type uint16
	Code uint16
}

func (c Code) String() string {
	return fmt.Sprintf("type=%d code=%d", c.Type, c.Code)
}

// Error is a decode failure expressed the way it would be reported to an
// OpenFlow peer.
type Error struct {
	Type uint16
	Code uint16
	Msg  string
}

func NewError(c Code, format string, args ...interface{}) *Error {
	return &Error{
		Type: c.Type,
		Code: c.Code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("openflow error (type=%d, code=%d): %s", e.Type, e.Code, e.Msg)
}

// Pair returns the (type, code) pair of e.
func (e *Error) Pair() Code {
	return Code{Type: e.Type, Code: e.Code}
}

// AsError finds the first protocol error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsError reports whether err carries the protocol error pair c.
func IsError(err error, c Code) bool {
	e, ok := AsError(err)
	return ok && e.Pair() == c
}

const (
	WhatType    = "type"
	WhatLength  = "length"
	WhatVersion = "version"
	WhatClass   = "class"
	WhatField   = "field"
)

// ValidationError is the diagnostic produced by header validation, e.g.
// "invalid action length".
type ValidationError struct {
	Kind string
	What string
}

func (e *ValidationError) Error() string {
	if e.Kind == "" {
		return "invalid " + e.What
	}
	return "invalid " + e.Kind + " " + e.What
}

func Invalid(kind, what string) *ValidationError {
	return &ValidationError{Kind: kind, What: what}
}
