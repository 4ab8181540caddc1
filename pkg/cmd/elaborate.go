// Copyright The Aion Authors
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

// elaborateCmd represents the elaborate command
var elaborateCmd = &cobra.Command{
	Use:   "elaborate [flags] bundle.json",
	Short: "Elaborate a frontend.Bundle into a unified design.",
	Long: `Elaborate merges a bundle of per-language ASTs (the JSON contract an
external Verilog/SystemVerilog/VHDL frontend produces against, spec §4.2)
into one unified design: module hierarchy resolved, parameters propagated,
ports and signals bound across languages.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		res, err := runPipeline(cmd, args[0], stageElaborate)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		reportAndExit(cmd, res)
		log.WithFields(log.Fields{"stage": "elaborate", "modules": res.design.ModuleCount()}).Info("elaborate finished")
		fmt.Printf("elaborated %d module(s)\n", res.design.ModuleCount())
	},
}

func init() {
	rootCmd.AddCommand(elaborateCmd)
}
