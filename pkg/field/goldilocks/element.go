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

// Package goldilocks implements arithmetic over the scalar field GF(p) for
// p = 2⁶⁴ - 2³² + 1.  This prime admits very fast reduction on 64-bit
// hardware, since 2⁶⁴ ≡ 2³² - 1 (mod p) and 2⁹⁶ ≡ -1 (mod p).
package goldilocks

import (
	"cmp"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/consensys/go-goldilocks/pkg/field"
)

// Modulus of the field, p = 2⁶⁴ - 2³² + 1.
const Modulus uint64 = 0xffffffff00000001

// epsilon is 2⁶⁴ mod p, used to fold carries and borrows during reduction.
const epsilon uint64 = 1<<32 - 1

// Bits is the number of bits needed to represent p - 1.
const Bits uint = 64

// Bytes is the exact size of the encoded form of an element.
const Bytes uint = 8

// Element of the Goldilocks field.  This is defined as an array of one element
// to prevent mistaken use of arithmetic operators, or naive assignments.  The
// stored word is a raw value which may exceed p; every operation treats it as
// its residue mod p, but canonicalization is only forced where documented.
type Element [1]uint64

// New constructs an element from a raw unsigned integer, reducing it to its
// canonical representative.
func New(val uint64) Element {
	return Element{reduce(val)}
}

// Zero constructs the additive identity.
func Zero() Element {
	return Element{}
}

// One constructs the multiplicative identity.
func One() Element {
	return Element{1}
}

// Generator constructs 7, the fixed generator of the multiplicative group of
// the field.
func Generator() Element {
	return Element{generator}
}

// reduce returns the canonical representative of a raw word.  Any uint64 is
// less than 2p, so a single conditional subtraction suffices.
func reduce(val uint64) uint64 {
	if val >= Modulus {
		val -= Modulus
	}
	//
	return val
}

// Add x + y
func (x Element) Add(y Element) Element {
	sum, carry := bits.Add64(reduce(x[0]), reduce(y[0]), 0)
	if carry != 0 {
		// Fold the lost 2⁶⁴ back in as epsilon.  The sum of two canonical
		// values is below 2p, so this cannot carry a second time.
		sum += epsilon
	}
	//
	return Element{reduce(sum)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	a, b := reduce(x[0]), reduce(y[0])
	if a >= b {
		return Element{a - b}
	}
	//
	return Element{a + (Modulus - b)}
}

// Neg -x, with -0 = 0.
func (x Element) Neg() Element {
	a := reduce(x[0])
	if a == 0 {
		return Element{}
	}
	//
	return Element{Modulus - a}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	hi, lo := bits.Mul64(reduce(x[0]), reduce(y[0]))
	//
	return Element{reduce128(hi, lo)}
}

// reduce128 folds a 128-bit value hi·2⁶⁴ + lo into its canonical residue.
// Writing hi = h₁·2³² + h₀, the identities 2⁶⁴ ≡ 2³² - 1 and 2⁹⁶ ≡ -1 (mod p)
// give hi·2⁶⁴ + lo ≡ lo + h₀·(2³² - 1) - h₁ (mod p), which is computed with
// carry/borrow corrections and one final conditional subtraction.  No
// intermediate step can wrap around undetected.
func reduce128(hi, lo uint64) uint64 {
	a, borrow := bits.Sub64(lo, hi>>32, 0)
	if borrow != 0 {
		// The subtraction borrowed 2⁶⁴, so remove epsilon again.  Since
		// hi>>32 < epsilon the correction cannot borrow a second time.
		a -= epsilon
	}
	// h₀·(2³² - 1) fits a single word as both factors are below 2³².
	b := (hi & epsilon) * epsilon
	//
	res, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		res += epsilon
	}
	//
	return reduce(res)
}

// Double 2x
func (x Element) Double() Element {
	return x.Add(x)
}

// Square x²
func (x Element) Square() Element {
	return x.Mul(x)
}

// Halve x/2
func (x Element) Halve() Element {
	a := reduce(x[0])
	half := a >> 1
	// For odd values, (a + p)/2 = a>>1 + (p+1)/2.
	if a&1 == 1 {
		half += (Modulus + 1) / 2
	}
	//
	return Element{reduce(half)}
}

// Exp x^n, by iterative square-and-multiply over the bits of n using O(log n)
// multiplications.
func (x Element) Exp(n uint64) Element {
	res := One()
	base := Element{reduce(x[0])}
	//
	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		//
		base = base.Square()
	}
	//
	return res
}

// Inverse x⁻¹, computed as x^(p-2) by Fermat's little theorem.  Fails with
// field.ErrInverseZero when x is zero, which has no multiplicative inverse.
func (x Element) Inverse() (Element, error) {
	if x.IsZero() {
		return Element{}, field.ErrInverseZero
	}
	//
	return x.Exp(Modulus - 2), nil
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

// Equals reports whether x and y denote the same field element.  Both sides
// are canonicalized first, so an unreduced raw value compares equal to its
// residue.
func (x Element) Equals(y Element) bool {
	return reduce(x[0]) == reduce(y[0])
}

// Cmp compares the canonical values of x and y, returning 1 if x > y, 0 if
// x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return cmp.Compare(reduce(x[0]), reduce(y[0]))
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return reduce(x[0]) == 0
}

// IsOne checks whether this value is one (or not).
func (x Element) IsOne() bool {
	return reduce(x[0]) == 1
}

// Uint64 returns the raw word held by x without canonicalization.  Callers
// needing a guaranteed-canonical value must have gone through New first.
func (x Element) Uint64() uint64 {
	return x[0]
}

// SetUint64 implementation for the field.Element interface.
func (x Element) SetUint64(val uint64) Element {
	return New(val)
}

// Generator implementation for the field.Element interface.
func (x Element) Generator() Element {
	return Generator()
}

// Modulus returns p as a big integer.
func (x Element) Modulus() *big.Int {
	return new(big.Int).SetUint64(Modulus)
}

// BitSize implementation for the field.Element interface.
func (x Element) BitSize() uint {
	return Bits
}

// ByteWidth implementation for the field.Element interface.
func (x Element) ByteWidth() uint {
	return Bytes
}

// String returns the canonical value of x in decimal.
func (x Element) String() string {
	return x.Text(10)
}

// Text returns the canonical value of x in the given base.
func (x Element) Text(base int) string {
	return strconv.FormatUint(reduce(x[0]), base)
}

// RootOfUnity returns the canonical primitive 2ᵏ-th root of unity derived
// from the generator.  Fails with field.ErrNoRootOfUnity when k exceeds the
// two-adicity of the field.
func RootOfUnity(k uint) (Element, error) {
	if k > TwoAdicity {
		return Element{}, field.ErrNoRootOfUnity
	}
	//
	return Element{rootsOfUnity[k]}, nil
}
