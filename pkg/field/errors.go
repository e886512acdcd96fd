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

import "errors"

// ErrInverseZero is reported by Inverse and Div when the (canonical) divisor
// is zero, which has no multiplicative inverse.
var ErrInverseZero = errors.New("zero has no multiplicative inverse")

// ErrInvalidHexString is reported by hex parsing on malformed input: an empty
// remainder, a non-hex digit, or a value overflowing the base type.
var ErrInvalidHexString = errors.New("invalid hex string")

// ErrByteLength is reported by fixed-width decoding when fewer bytes are
// supplied than an encoded element requires.
var ErrByteLength = errors.New("not enough bytes to decode element")

// ErrNoRootOfUnity is reported when a primitive 2ᵏ-th root of unity is
// requested for k beyond the two-adicity of the field.
var ErrNoRootOfUnity = errors.New("no root of unity of requested order")
