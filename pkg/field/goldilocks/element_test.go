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
	"math/big"
	"math/rand/v2"
	"testing"

	gl "github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/consensys/go-goldilocks/pkg/field"
	"github.com/stretchr/testify/require"
)

// boundary values worth hitting alongside random sweeps.
var corners = []uint64{0, 1, 2, epsilon - 1, epsilon, epsilon + 1, Modulus - 2, Modulus - 1, Modulus, Modulus + 1, ^uint64(0) - 1, ^uint64(0)}

func TestElement_Add(t *testing.T) {
	var i, j, m big.Int

	m.SetUint64(Modulus)

	check := func(a, b uint64) {
		i.SetUint64(a).
			Add(&i, j.SetUint64(b)).
			Mod(&i, &m)

		x := Element{a}.Add(Element{b})

		require.Equal(t, i.Uint64(), x.Uint64(), "add(%d, %d)", a, b)
	}

	for _, a := range corners {
		for _, b := range corners {
			check(a, b)
		}
	}

	for range 10000 {
		check(rand.Uint64(), rand.Uint64())
	}
}

func TestElement_Sub(t *testing.T) {
	var i, j, m big.Int

	m.SetUint64(Modulus)

	check := func(a, b uint64) {
		i.SetUint64(a).
			Sub(&i, j.SetUint64(b)).
			Mod(&i, &m)

		x := Element{a}.Sub(Element{b})

		require.Equal(t, i.Uint64(), x.Uint64(), "sub(%d, %d)", a, b)
	}

	for _, a := range corners {
		for _, b := range corners {
			check(a, b)
		}
	}

	for range 10000 {
		check(rand.Uint64(), rand.Uint64())
	}
}

func TestElement_Neg(t *testing.T) {
	var i, m big.Int

	m.SetUint64(Modulus)

	check := func(a uint64) {
		i.SetUint64(a).
			Neg(&i).
			Mod(&i, &m)

		x := Element{a}.Neg()

		require.Equal(t, i.Uint64(), x.Uint64(), "neg(%d)", a)
	}

	for _, a := range corners {
		check(a)
	}

	for range 10000 {
		check(rand.Uint64())
	}
}

func TestElement_Mul(t *testing.T) {
	var i, j, m big.Int

	m.SetUint64(Modulus)

	check := func(a, b uint64) {
		i.SetUint64(a).
			Mul(&i, j.SetUint64(b)).
			Mod(&i, &m)

		x := Element{a}.Mul(Element{b})

		require.Equal(t, i.Uint64(), x.Uint64(), "mul(%d, %d)", a, b)
	}

	for _, a := range corners {
		for _, b := range corners {
			check(a, b)
		}
	}

	for range 10000 {
		check(rand.Uint64(), rand.Uint64())
	}
}

// Check the arithmetic kernel against the gnark-crypto implementation of the
// same field, on random canonical values.
func TestElement_Differential(t *testing.T) {
	for range 10000 {
		var (
			a, b = rand.Uint64(), rand.Uint64()
			x, y gl.Element
		)

		x.SetUint64(a)
		y.SetUint64(b)

		var res gl.Element

		res.Add(&x, &y)
		require.Equal(t, res.Uint64(), New(a).Add(New(b)).Uint64(), "add(%d, %d)", a, b)

		res.Sub(&x, &y)
		require.Equal(t, res.Uint64(), New(a).Sub(New(b)).Uint64(), "sub(%d, %d)", a, b)

		res.Mul(&x, &y)
		require.Equal(t, res.Uint64(), New(a).Mul(New(b)).Uint64(), "mul(%d, %d)", a, b)

		res.Neg(&x)
		require.Equal(t, res.Uint64(), New(a).Neg().Uint64(), "neg(%d)", a)
	}
}

func TestElement_Exp(t *testing.T) {
	var i, m big.Int

	m.SetUint64(Modulus)

	for range 1000 {
		a := rand.Uint64()
		n := rand.Uint64()

		i.SetUint64(a).
			Exp(&i, new(big.Int).SetUint64(n), &m)

		x := Element{a}.Exp(n)

		require.Equal(t, i.Uint64(), x.Uint64(), "exp(%d, %d)", a, n)
	}
}

func TestElement_Inverse(t *testing.T) {
	var i, m big.Int

	m.SetUint64(Modulus)

	for range 1000 {
		a := rand.Uint64N(Modulus-1) + 1

		i.SetUint64(a).
			ModInverse(&i, &m)

		x, err := Element{a}.Inverse()

		require.NoError(t, err)
		require.Equal(t, i.Uint64(), x.Uint64(), "inverse of %d", a)
		require.True(t, Element{a}.Mul(x).IsOne(), "%d * %d != 1", a, x.Uint64())
	}
}

func TestElement_InverseZero(t *testing.T) {
	_, err := Zero().Inverse()
	require.ErrorIs(t, err, field.ErrInverseZero)

	// An unreduced raw p is still (canonically) zero.
	_, err = Element{Modulus}.Inverse()
	require.ErrorIs(t, err, field.ErrInverseZero)
}

func TestElement_DivByZero(t *testing.T) {
	for _, a := range corners {
		_, err := Element{a}.Div(Zero())
		require.ErrorIs(t, err, field.ErrInverseZero)
	}
}

func TestElement_Halve(t *testing.T) {
	for range 10000 {
		a := rand.Uint64()
		x := Element{a}

		require.True(t, x.Halve().Double().Equals(x), "halving of %d", a)
	}
}

// Concrete scenarios pinned down by the design.
func TestAdd_OrderMinus1_Plus1_Is0(t *testing.T) {
	require.True(t, New(Modulus-1).Add(One()).IsZero())
}

func TestMul_5_3(t *testing.T) {
	require.Equal(t, uint64(15), New(5).Mul(New(3)).Uint64())
}

func TestSub_5_3(t *testing.T) {
	require.Equal(t, uint64(2), New(5).Sub(New(3)).Uint64())
}

func TestNeg_5(t *testing.T) {
	require.Equal(t, Modulus-5, New(5).Neg().Uint64())
}

func TestMul_OrderMinus1_Squared_Is1(t *testing.T) {
	// p - 1 ≡ -1, so its square is 1.
	require.True(t, New(Modulus-1).Mul(New(Modulus-1)).IsOne())
}

func TestExp_2_3(t *testing.T) {
	require.Equal(t, uint64(8), New(2).Exp(3).Uint64())
}

func TestExp_Fermat(t *testing.T) {
	require.True(t, New(2).Exp(Modulus-1).IsOne())
	require.True(t, Generator().Exp(Modulus-1).IsOne())
}

func TestDiv_4_2(t *testing.T) {
	x, err := New(4).Div(New(2))
	require.NoError(t, err)
	require.Equal(t, uint64(2), x.Uint64())
}

func TestDiv_4_3_Times3_Is4(t *testing.T) {
	x, err := New(4).Div(New(3))
	require.NoError(t, err)
	require.Equal(t, uint64(4), x.Mul(New(3)).Uint64())
}

func TestEquals_Unreduced(t *testing.T) {
	x := Element{Modulus + 8}

	require.True(t, x.Equals(New(8)))
	// Uint64 exposes the raw word untouched.
	require.Equal(t, Modulus+8, x.Uint64())
	// New reduces it.
	require.Equal(t, uint64(8), New(Modulus+8).Uint64())
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, Element{Modulus + 3}.Cmp(New(3)))
	require.Equal(t, 1, New(4).Cmp(New(3)))
	require.Equal(t, -1, New(2).Cmp(New(3)))
}

func TestString(t *testing.T) {
	require.Equal(t, "8", Element{Modulus + 8}.String())
	require.Equal(t, "ff", New(255).Text(16))
}

func TestIdentities(t *testing.T) {
	require.True(t, Zero().IsZero())
	require.True(t, One().IsOne())
	require.Equal(t, uint64(7), Generator().Uint64())
	require.Equal(t, uint(64), One().BitSize())
	require.Equal(t, uint(8), One().ByteWidth())
	require.Equal(t, Modulus, One().Modulus().Uint64())
}

// The generator must have full order p - 1, i.e. g^((p-1)/q) != 1 for every
// prime factor q of p - 1 = 2³² · 3 · 5 · 17 · 257 · 65537.
func TestGenerator_Order(t *testing.T) {
	for _, q := range []uint64{2, 3, 5, 17, 257, 65537} {
		require.False(t, Generator().Exp((Modulus-1)/q).IsOne(), "generator has order dividing (p-1)/%d", q)
	}
}

func TestRootsOfUnity(t *testing.T) {
	for k := uint(0); k <= TwoAdicity; k++ {
		root, err := RootOfUnity(k)
		require.NoError(t, err)

		// root has order exactly 2ᵏ.
		require.True(t, root.Exp(uint64(1)<<k).IsOne(), "root[%d]^(2^%d) != 1", k, k)

		if k > 0 {
			require.False(t, root.Exp(uint64(1)<<(k-1)).IsOne(), "root[%d] has order below 2^%d", k, k)
		}
	}
	// The top root comes straight from the generator.
	top, err := RootOfUnity(TwoAdicity)
	require.NoError(t, err)
	require.True(t, top.Equals(Generator().Exp((Modulus-1)>>TwoAdicity)))
	// Beyond the two-adicity there is nothing.
	_, err = RootOfUnity(TwoAdicity + 1)
	require.ErrorIs(t, err, field.ErrNoRootOfUnity)
}
