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

// Element is implemented by every encodable protocol entity. E is the type
// values are compared against: the family interface for variant elements,
// the concrete type for homogeneous ones.
type Element[E any] interface {
	// Length is the exact wire length, without alignment padding.
	Length() int
	// ByteLength is the number of bytes Encode appends.
	ByteLength() int
	Encode(b []byte) []byte
	Equal(other E) bool
	Equivalent(other E) bool
}

// DecodeFunc decodes one element at the decoder position.
type DecodeFunc[E any] func(d *Decoder) (E, error)

// List is an ordered sequence of elements. Order is wire order.
type List[E Element[E]] []E

func (l List[E]) Length() int {
	n := 0
	for _, e := range l {
		n += e.Length()
	}
	return n
}

func (l List[E]) ByteLength() int {
	n := 0
	for _, e := range l {
		n += e.ByteLength()
	}
	return n
}

func (l List[E]) Encode(b []byte) []byte {
	for _, e := range l {
		b = e.Encode(b)
	}
	return b
}

func (l List[E]) Equal(o List[E]) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (l List[E]) Equivalent(o List[E]) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equivalent(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns a list that shares no backing array with l.
func (l List[E]) Clone() List[E] {
	if l == nil {
		return nil
	}
	return append(List[E]{}, l...)
}

// DecodeList decodes elements until d is exhausted. An empty range is an
// empty list. Elements reported as ErrSkipped are dropped.
func DecodeList[E Element[E]](d *Decoder, decode DecodeFunc[E]) (List[E], error) {
	l := List[E]{}
	for d.Len() > 0 {
		off := d.Offset()
		e, err := decode(d)
		if errors.Is(err, ErrSkipped) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if d.Offset() == off {
			return nil, errors.Errorf("wire: decoder for %T consumed no bytes", e)
		}
		l = append(l, e)
	}
	return l, nil
}
