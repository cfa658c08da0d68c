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
	"k8s.io/klog"
)

// ErrSkipped is returned by Registry.Decode when an unknown element of a
// family that tolerates them was consumed and dropped.
var ErrSkipped = errors.New("wire: unknown element skipped")

// HeaderFunc reads the discriminant of the element at the decoder position
// and the number of bytes the element occupies, without consuming anything.
type HeaderFunc func(d *Decoder) (tag uint32, length int, err error)

// Registry maps the discriminants of one element family to their decoders.
// Registries are built once from a static table and never modified.
type Registry[E Element[E]] struct {
	Family
	// HeaderLen is the size of the common header; no element is shorter.
	HeaderLen int

	header   HeaderFunc
	decoders map[uint32]DecodeFunc[E]
}

func NewRegistry[E Element[E]](f Family, headerLen int, header HeaderFunc, decoders map[uint32]DecodeFunc[E]) *Registry[E] {
	return &Registry[E]{
		Family:    f,
		HeaderLen: headerLen,
		header:    header,
		decoders:  decoders,
	}
}

// Lookup returns the decoder registered for tag.
func (r *Registry[E]) Lookup(tag uint32) (DecodeFunc[E], bool) {
	fn, ok := r.decoders[tag]
	return fn, ok
}

// Peek returns the discriminant and occupied length of the next element.
func (r *Registry[E]) Peek(d *Decoder) (uint32, int, error) {
	if d.Len() < r.HeaderLen {
		return 0, 0, r.Truncated(r.HeaderLen, d.Len())
	}
	tag, length, err := r.header(d)
	if err != nil {
		return 0, 0, NewError(r.BadLen, "%s header: %v", r.Kind, err)
	}
	if length < r.HeaderLen {
		return 0, 0, r.Reject(Invalid(r.Kind, WhatLength))
	}
	if length > d.Len() {
		return 0, 0, r.Truncated(length, d.Len())
	}
	return tag, length, nil
}

// Decode dispatches the next element to the decoder registered for its
// discriminant.
func (r *Registry[E]) Decode(d *Decoder) (E, error) {
	var zero E
	tag, length, err := r.Peek(d)
	if err != nil {
		return zero, err
	}
	fn, ok := r.decoders[tag]
	if !ok {
		if !r.SkipUnknown {
			return zero, r.Unknown(tag)
		}
		klog.V(4).Infof("skipping unknown %s type %#x (%d bytes)", r.Kind, tag, length)
		if err := d.Skip(length); err != nil {
			return zero, r.Truncated(length, d.Len())
		}
		return zero, ErrSkipped
	}
	return fn(d)
}

// DecodeList decodes elements until d is exhausted.
func (r *Registry[E]) DecodeList(d *Decoder) (List[E], error) {
	return DecodeList[E](d, r.Decode)
}

// Dispatcher maps discriminants that live in an enclosing header, such as
// the type of a multipart body, to the decoders of the elements they select.
type Dispatcher[E Element[E]] struct {
	Family

	decoders map[uint32]DecodeFunc[E]
}

func NewDispatcher[E Element[E]](f Family, decoders map[uint32]DecodeFunc[E]) *Dispatcher[E] {
	return &Dispatcher[E]{
		Family:   f,
		decoders: decoders,
	}
}

func (r *Dispatcher[E]) Lookup(tag uint32) (DecodeFunc[E], bool) {
	fn, ok := r.decoders[tag]
	return fn, ok
}

// Dispatch decodes the element at d with the decoder registered for tag.
// Unknown tags are always rejected.
func (r *Dispatcher[E]) Dispatch(tag uint32, d *Decoder) (E, error) {
	fn, ok := r.decoders[tag]
	if !ok {
		var zero E
		return zero, r.Unknown(tag)
	}
	return fn(d)
}
