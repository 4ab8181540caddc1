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

// synthCmd represents the synth command
var synthCmd = &cobra.Command{
	Use:   "synth [flags] bundle.json",
	Short: "Elaborate, lint and tech-map a design against a target device.",
	Long: `Synth elaborates and lints bundle.json, then runs the optimisation passes
and device-specific tech-mapper of spec §4.4 over every module, leaving a
live synth.Netlist for the design's top module ready for place-and-route.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		res, err := runPipeline(cmd, args[0], stageSynth)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		reportAndExit(cmd, res)
		log.WithFields(log.Fields{
			"stage":  "synth",
			"module": res.interner.String(res.top.Name),
			"device": res.device.DeviceName(),
		}).Info("synth finished")
		fmt.Printf("synthesised top module %q for %s/%s\n",
			res.interner.String(res.top.Name), res.device.FamilyName(), res.device.DeviceName())
	},
}

func init() {
	rootCmd.AddCommand(synthCmd)
}
