// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package goldilocks

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/consensys/go-goldilocks/pkg/field"
)

// Bytes returns the big-endian encoding of the raw word held by x, which is
// always exactly 8 bytes.  The word is encoded as-is, without forcing
// canonicalization first.
func (x Element) Bytes() []byte {
	var buf [Bytes]byte
	//
	binary.BigEndian.PutUint64(buf[:], x[0])
	//
	return buf[:]
}

// BytesLE returns the little-endian encoding of the raw word held by x, which
// is always exactly 8 bytes.
func (x Element) BytesLE() []byte {
	var buf [Bytes]byte
	//
	binary.LittleEndian.PutUint64(buf[:], x[0])
	//
	return buf[:]
}

// SetBytes decodes an element from the first 8 bytes of the given sequence,
// interpreted in big-endian order.  Fails with field.ErrByteLength when fewer
// than 8 bytes are available; any trailing bytes are ignored.  The decoded
// word is held raw, exactly as encoded.
func (x Element) SetBytes(bytes []byte) (Element, error) {
	if uint(len(bytes)) < Bytes {
		return Element{}, fmt.Errorf("%w: got %d bytes, need %d", field.ErrByteLength, len(bytes), Bytes)
	}
	//
	return Element{binary.BigEndian.Uint64(bytes)}, nil
}

// SetBytesLE decodes an element from the first 8 bytes of the given sequence,
// interpreted in little-endian order.  Fails with field.ErrByteLength when
// fewer than 8 bytes are available; any trailing bytes are ignored.
func (x Element) SetBytesLE(bytes []byte) (Element, error) {
	if uint(len(bytes)) < Bytes {
		return Element{}, fmt.Errorf("%w: got %d bytes, need %d", field.ErrByteLength, len(bytes), Bytes)
	}
	//
	return Element{binary.LittleEndian.Uint64(bytes)}, nil
}

// Marshal returns the wire form of x, defined as its big-endian encoding.
func (x Element) Marshal() []byte {
	return x.Bytes()
}

// Unmarshal decodes an element from its wire form, i.e. the first 8 bytes of
// the given sequence in big-endian order.
func Unmarshal(bytes []byte) (Element, error) {
	var element Element
	//
	return element.SetBytes(bytes)
}

// SetHex parses a base-16 string, optionally prefixed with "0x", into an
// element.  The parsed word is held raw, without reduction.  Fails with
// field.ErrInvalidHexString on an empty remainder, any non-hex digit, or a
// value overflowing 64 bits.
func (x Element) SetHex(str string) (Element, error) {
	if len(str) > 2 && str[:2] == "0x" {
		str = str[2:]
	}
	//
	val, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return Element{}, fmt.Errorf("%w: %q", field.ErrInvalidHexString, str)
	}
	//
	return Element{val}, nil
}

// FromHex parses a base-16 string, optionally prefixed with "0x", into an
// element.
func FromHex(str string) (Element, error) {
	var element Element
	//
	return element.SetHex(str)
}
