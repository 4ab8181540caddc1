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

// pnrCmd represents the pnr command
var pnrCmd = &cobra.Command{
	Use:   "pnr [flags] bundle.json",
	Short: "Place and route a design's top module.",
	Long: `Pnr elaborates, lints and synthesises bundle.json, then bridges the top
module's tech-mapped netlist into a pnr.Netlist, places it by simulated
annealing (spec §4.7) and routes it against the target device's routing
graph (spec §4.8). Module instances stay opaque cells (spec §4.7's netlist
bridge never recurses into them), so placement and routing, like timing
and bitstream emission, run over the top module alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		res, err := runPipeline(cmd, args[0], stagePnr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		reportAndExit(cmd, res)
		log.WithFields(log.Fields{
			"stage": "pnr",
			"cells": res.pnrNl.Cells.Len(),
			"nets":  res.pnrNl.Nets.Len(),
		}).Info("pnr finished")
		fmt.Printf("placed and routed %d cell(s), %d net(s)\n", res.pnrNl.Cells.Len(), res.pnrNl.Nets.Len())
	},
}

func init() {
	rootCmd.AddCommand(pnrCmd)
}
