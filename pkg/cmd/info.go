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

	"github.com/consensys/go-goldilocks/pkg/field/goldilocks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "print the field parameters.",
	Long: `Print the parameters of the Goldilocks field: modulus, bit size,
	multiplicative generator and two-adicity.  With --roots, also print the
	table of primitive 2ᵏ-th roots of unity.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		fmt.Printf("modulus:     %d (0x%016x)\n", goldilocks.Modulus, goldilocks.Modulus)
		fmt.Printf("bit size:    %d\n", goldilocks.Bits)
		fmt.Printf("generator:   %s\n", goldilocks.Generator())
		fmt.Printf("two-adicity: %d\n", goldilocks.TwoAdicity)
		//
		if GetFlag(cmd, "roots") {
			for k := uint(0); k <= goldilocks.TwoAdicity; k++ {
				root, err := goldilocks.RootOfUnity(k)
				if err != nil {
					log.Debugf("root of unity %d: %v", k, err)
					continue
				}
				//
				fmt.Printf("root[%d]: 0x%s\n", k, root.Text(16))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("roots", false, "print the roots-of-unity table")
}
