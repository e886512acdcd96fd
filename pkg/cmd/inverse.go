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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var inverseCmd = &cobra.Command{
	Use:   "inverse [flags] element",
	Short: "compute the multiplicative inverse of a field element.",
	Long: `Compute the multiplicative inverse of a field element (decimal or
	0x-prefixed hex).  Zero has no inverse and is reported as an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		element := readElement(args[0])
		//
		inv, err := element.Inverse()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("checking %s * %s = %s", element, inv, element.Mul(inv))
		fmt.Println(inv)
	},
}

func init() {
	rootCmd.AddCommand(inverseCmd)
}
