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
package field_test

import (
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-goldilocks/pkg/field"
	"github.com/consensys/go-goldilocks/pkg/field/goldilocks"
	"github.com/consensys/go-goldilocks/pkg/field/koalabear"
	"github.com/stretchr/testify/require"
)

func init() {
	// make sure the interface is adhered to.
	_ = field.Element[goldilocks.Element](goldilocks.Element{})
	_ = field.Element[koalabear.Element](koalabear.Element{})
}

func TestHelpers_Goldilocks(t *testing.T) {
	checkHelpers[goldilocks.Element](t, 7)
}

func TestHelpers_Koalabear(t *testing.T) {
	checkHelpers[koalabear.Element](t, 3)
}

// Check the generic constructors against each field's own notion of identity.
func checkHelpers[F field.Element[F]](t *testing.T, generator uint64) {
	require.True(t, field.Zero[F]().IsZero())
	require.True(t, field.One[F]().IsOne())
	require.Equal(t, generator, field.Generator[F]().Uint64())
	require.Equal(t, uint64(42), field.Uint64[F](42).Uint64())
	require.Equal(t, uint64(1024), field.TwoPowN[F](10).Uint64())
	require.Equal(t, int(field.Zero[F]().BitSize()), field.Zero[F]().Modulus().BitLen())

	x, err := field.FromHex[F]("0x10")
	require.NoError(t, err)
	require.Equal(t, uint64(16), x.Uint64())

	y, err := field.FromBigEndianBytes[F](field.Uint64[F](99).Bytes())
	require.NoError(t, err)
	require.True(t, y.Equals(field.Uint64[F](99)))
}

func TestBatchInvert(t *testing.T) {
	s := make([]goldilocks.Element, 1000)
	sInv := make([]goldilocks.Element, len(s))

	for i := range s {
		s[i] = goldilocks.New(rand.Uint64())
		if i%7 == 0 {
			s[i] = goldilocks.Zero() // getting zeros with considerable probability
		}

		if s[i].IsZero() {
			sInv[i] = goldilocks.Zero()
		} else {
			var err error
			if sInv[i], err = s[i].Inverse(); err != nil {
				t.Fatal(err)
			}
		}
	}

	scratch := make([]goldilocks.Element, len(s))
	copy(scratch, s)

	field.BatchInvert(scratch)

	for i := range s {
		require.True(t, sInv[i].Equals(scratch[i]), "at index %d, inverting %s", i, s[i])
	}
}

func TestBatchInvert_Empty(t *testing.T) {
	field.BatchInvert([]goldilocks.Element{})
}
