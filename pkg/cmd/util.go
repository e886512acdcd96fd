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
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-goldilocks/pkg/field/goldilocks"
	"github.com/spf13/cobra"
)

// GetFlag reads an expected boolean flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint reads an expected uint flag, or panics if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a field element given on the command line, either as a decimal value
// or as a "0x"-prefixed hex string.  The parsed raw value is reduced to its
// canonical representative.
func readElement(str string) goldilocks.Element {
	if strings.HasPrefix(str, "0x") {
		element, err := goldilocks.FromHex(str)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return goldilocks.New(element.Uint64())
	}
	//
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		fmt.Printf("invalid field element %q: %v\n", str, err)
		os.Exit(2)
	}
	//
	return goldilocks.New(val)
}
