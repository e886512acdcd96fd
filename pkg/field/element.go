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

// Package field defines the capability set a prime-field element type must
// provide in order to be used interchangeably by higher-level arithmetic and
// proof-system code, along with generic helpers over that capability set.
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  All operations are pure: they never
// mutate their receiver and always return fresh values, so elements are safe
// to share and duplicate freely across goroutines.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x + y
	Add(y Operand) Operand
	// Sub x - y
	Sub(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Mul x * y
	Mul(y Operand) Operand
	// Div x / y, failing with ErrInverseZero when y is zero.
	Div(y Operand) (Operand, error)
	// Inverse x⁻¹, failing with ErrInverseZero when x is zero.
	Inverse() (Operand, error)
	// Exp x^n
	Exp(n uint64) Operand
	// Equals compares the canonical values of x and y, regardless of which
	// unreduced raw form either side carries.
	Equals(y Operand) bool
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y, comparing
	// canonical values.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// SetUint64 constructs the canonical element representing a raw integer.
	SetUint64(val uint64) Operand
	// Uint64 returns the raw representative held by x.
	Uint64() uint64
	// Generator constructs the fixed generator of the multiplicative group.
	Generator() Operand
	// Modulus returns the order of the field as a big integer.
	Modulus() *big.Int
	// BitSize is the number of bits needed to represent the modulus minus one.
	BitSize() uint
	// ByteWidth is the exact encoded size of an element, in bytes.
	ByteWidth() uint
	// Bytes is the fixed-width big-endian encoding of x (the wire form).
	Bytes() []byte
	// BytesLE is the fixed-width little-endian encoding of x.
	BytesLE() []byte
	// SetBytes decodes an element from the front of a big-endian byte
	// sequence, failing with ErrByteLength when too few bytes are supplied.
	SetBytes([]byte) (Operand, error)
	// SetBytesLE decodes an element from the front of a little-endian byte
	// sequence, failing with ErrByteLength when too few bytes are supplied.
	SetBytesLE([]byte) (Operand, error)
	// SetHex parses an optionally "0x"-prefixed base-16 string, failing with
	// ErrInvalidHexString on malformed input.
	SetHex(str string) (Operand, error)
	// Text returns the canonical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Generator constructs the fixed generator of the multiplicative group.
func Generator[F Element[F]]() F {
	var element F
	//
	return element.Generator()
}

// FromBigEndianBytes constructs a field element from an array of bytes given
// in big endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) (F, error) {
	var element F
	//
	return element.SetBytes(bytes)
}

// FromHex constructs a field element from an optionally "0x"-prefixed base-16
// string.
func FromHex[F Element[F]](str string) (F, error) {
	var element F
	//
	return element.SetHex(str)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}
