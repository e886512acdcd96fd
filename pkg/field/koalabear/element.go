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

// Package koalabear adapts the KoalaBear field (p = 2³¹ - 2²⁴ + 1) from
// gnark-crypto to the field.Element interface.  Unlike the goldilocks
// package, elements here are always held in canonical (Montgomery) form, so
// the raw and canonical representatives coincide.
package koalabear

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/go-goldilocks/pkg/field"
)

// Bits is the number of bits needed to represent p - 1.
const Bits uint = 31

// Bytes is the exact size of the encoded form of an element.
const Bytes uint = 4

// generator of the multiplicative group of the field.  Here
// p - 1 = 2²⁴ · 127, and 3 is the smallest primitive root.
const generator uint64 = 3

// Element wraps koalabear.Element to conform to the field.Element interface.
type Element struct {
	koalabear.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res koalabear.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res koalabear.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res koalabear.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res koalabear.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Div x / y.  Fails with field.ErrInverseZero when y is zero.
func (x Element) Div(y Element) (Element, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Element{}, err
	}
	//
	return x.Mul(inv), nil
}

// Inverse x⁻¹.  Fails with field.ErrInverseZero when x is zero.
func (x Element) Inverse() (Element, error) {
	if x.IsZero() {
		return Element{}, field.ErrInverseZero
	}
	//
	var res koalabear.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}, nil
}

// Exp x^n
func (x Element) Exp(n uint64) Element {
	var res koalabear.Element
	//
	res.Exp(x.Element, new(big.Int).SetUint64(n))
	//
	return Element{res}
}

// Equals reports whether x and y denote the same field element.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// IsZero implementation for the field.Element interface.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the field.Element interface.
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// SetUint64 constructs the canonical element representing val.
func (x Element) SetUint64(val uint64) Element {
	var res koalabear.Element
	//
	res.SetUint64(val)
	//
	return Element{res}
}

// Uint64 returns the numerical value of x.
func (x Element) Uint64() uint64 {
	var val big.Int
	//
	x.Element.BigInt(&val)
	//
	return val.Uint64()
}

// Generator implementation for the field.Element interface.
func (x Element) Generator() Element {
	return x.SetUint64(generator)
}

// Modulus returns p as a big integer.
func (x Element) Modulus() *big.Int {
	return koalabear.Modulus()
}

// BitSize implementation for the field.Element interface.
func (x Element) BitSize() uint {
	return Bits
}

// ByteWidth implementation for the field.Element interface.
func (x Element) ByteWidth() uint {
	return Bytes
}

// Bytes returns the big-endian encoded value of x, which is always exactly 4
// bytes.
func (x Element) Bytes() []byte {
	buf := x.Element.Bytes()
	//
	return buf[:]
}

// BytesLE returns the little-endian encoded value of x, which is always
// exactly 4 bytes.
func (x Element) BytesLE() []byte {
	buf := x.Bytes()
	slices.Reverse(buf)
	//
	return buf
}

// SetBytes decodes an element from the first 4 bytes of the given sequence,
// interpreted in big-endian order.  Fails with field.ErrByteLength when fewer
// than 4 bytes are available; any trailing bytes are ignored.
func (x Element) SetBytes(bytes []byte) (Element, error) {
	if uint(len(bytes)) < Bytes {
		return Element{}, fmt.Errorf("%w: got %d bytes, need %d", field.ErrByteLength, len(bytes), Bytes)
	}
	//
	var res koalabear.Element
	//
	res.SetBytes(bytes[:Bytes])
	//
	return Element{res}, nil
}

// SetBytesLE decodes an element from the first 4 bytes of the given sequence,
// interpreted in little-endian order.
func (x Element) SetBytesLE(bytes []byte) (Element, error) {
	if uint(len(bytes)) < Bytes {
		return Element{}, fmt.Errorf("%w: got %d bytes, need %d", field.ErrByteLength, len(bytes), Bytes)
	}
	//
	buf := slices.Clone(bytes[:Bytes])
	slices.Reverse(buf)
	//
	var res koalabear.Element
	//
	res.SetBytes(buf)
	//
	return Element{res}, nil
}

// SetHex parses a base-16 string, optionally prefixed with "0x", into a
// canonical element.  Fails with field.ErrInvalidHexString on malformed
// input.
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
	return x.SetUint64(val), nil
}

// String returns the canonical value of x in decimal.
func (x Element) String() string {
	return x.Element.String()
}

// Text returns the canonical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
