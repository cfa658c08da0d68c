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
	"github.com/pkg/errors"

	"github.com/k-vswitch/ofproto/ofp13"
	"github.com/k-vswitch/ofproto/wire"
)

const typeHello = 0

// Hello holds the version information of a hello message.
type Hello struct {
	Version uint8
	Bitmap  *ofp13.VersionBitmap
}

// ParseHello reads the header version and version bitmap of a hello of
// any version. Hello elements keep the 1.3 layout in later versions.
func ParseHello(buf []byte) (Hello, error) {
	length, err := MessageLength(buf)
	if err != nil {
		return Hello{}, err
	}
	if buf[1] != typeHello {
		return Hello{}, errors.Errorf("%s is not a hello", MessageName(buf[0], buf[1]))
	}
	if length < HeaderLen || length > len(buf) {
		return Hello{}, errors.Wrapf(wire.ErrTruncated, "hello declares %d bytes, %d present", length, len(buf))
	}

	h := Hello{Version: buf[0]}
	if h.Version < ofp13.Version {
		return h, nil
	}
	elements, err := ofp13.DecodeHelloElements(wire.NewDecoder(buf[HeaderLen:length]))
	if err != nil {
		return Hello{}, errors.Wrap(err, "hello elements")
	}
	for _, e := range elements {
		if b := wire.As[ofp13.VersionBitmap](e); b != nil {
			h.Bitmap = b
			break
		}
	}
	return h, nil
}

// Supports reports whether the sender of the hello speaks version v.
func (h Hello) Supports(v uint8) bool {
	if h.Bitmap != nil {
		return h.Bitmap.Supports(v)
	}
	return v <= h.Version
}

// NegotiateVersion picks the protocol both peers speak: the highest version
// common to both bitmaps, or else the lower header version.
func NegotiateVersion(local, remote Hello) (Protocol, error) {
	if local.Bitmap != nil && remote.Bitmap != nil {
		versions := local.Bitmap.Versions()
		for i := len(versions) - 1; i >= 0; i-- {
			if remote.Bitmap.Supports(versions[i]) {
				return ProtocolFor(versions[i])
			}
		}
		return nil, errors.Wrap(ErrUnsupportedVersion, "no common version in the hello bitmaps")
	}

	v := local.Version
	if remote.Version < v {
		v = remote.Version
	}
	if !local.Supports(v) || !remote.Supports(v) {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %#x is not advertised by both peers", v)
	}
	return ProtocolFor(v)
}
