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
	"encoding/hex"
	"fmt"
	"os"

	"github.com/consensys/go-goldilocks/pkg/field/goldilocks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] element",
	Short: "encode a field element into its wire form.",
	Long: `Encode a field element (decimal or 0x-prefixed hex) into its
	fixed-width 8-byte wire form, in both byte orders.`,
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
		log.Debugf("canonical value %s", element)
		//
		fmt.Printf("big endian:    %x\n", element.Bytes())
		fmt.Printf("little endian: %x\n", element.BytesLE())
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] bytes",
	Short: "decode a field element from its wire form.",
	Long: `Decode a field element from 16 hex digits (8 bytes).  Bytes are
	interpreted in big-endian order unless --little is given.`,
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
		bytes, err := hex.DecodeString(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		var element goldilocks.Element
		//
		if GetFlag(cmd, "little") {
			element, err = element.SetBytesLE(bytes)
		} else {
			element, err = element.SetBytes(bytes)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("raw word %d", element.Uint64())
		fmt.Println(element)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().Bool("little", false, "interpret bytes in little-endian order")
}
