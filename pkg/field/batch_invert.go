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
package field

// BatchInvert efficiently inverts the list of elements s, in place, using a
// single field inversion (Montgomery's trick).  Zero entries are left as
// zero, since they have no inverse.
func BatchInvert[F Element[F]](s []F) {
	if len(s) == 0 {
		return
	}
	//
	var (
		one = One[F]()
		// identifies entries which are zero
		isZero = make([]bool, len(s))

		m = make([]F, len(s)) // m[i] = s[i] * s[i+1] * ...

		n = len(s) - 1
	)
	//
	isZero[n] = s[n].IsZero()

	if isZero[n] {
		s[n] = one
	}

	m[n] = s[n]

	for i := n - 1; i >= 0; i-- {
		isZero[i] = s[i].IsZero()

		if isZero[i] {
			s[i] = one
		}

		m[i] = m[i+1].Mul(s[i])
	}
	// m[0] is a product of nonzero factors, so inversion cannot fail.
	inv, err := m[0].Inverse() // inv = s[0]⁻¹ * s[1]⁻¹ * ...
	if err != nil {
		panic(err)
	}

	for i := 0; i < n; i++ {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		newInv := inv.Mul(s[i])
		s[i] = inv.Mul(m[i+1])
		inv = newInv
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
	}

	s[n] = inv

	for i := range s {
		if isZero[i] {
			s[i] = Zero[F]()
		}
	}
}
