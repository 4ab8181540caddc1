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

// timingCmd represents the timing command
var timingCmd = &cobra.Command{
	Use:   "timing [flags] bundle.json",
	Short: "Place, route and statically time a design's top module.",
	Long: `Timing carries bundle.json through placement and routing, builds the
top module's timing graph (spec §4.9), resolves an optional SDC/XDC
constraint file against it and reports the worst-slack path.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		res, err := runPipeline(cmd, args[0], stageTiming)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		reportAndExit(cmd, res)

		if res.report.Met {
			log.WithFields(log.Fields{"stage": "timing", "worst_slack_ns": res.report.WorstSlack}).Info("timing finished")
			fmt.Printf("timing met: worst slack %.3fns\n", res.report.WorstSlack)
		} else {
			log.WithFields(log.Fields{"stage": "timing", "worst_slack_ns": res.report.WorstSlack}).Warn("timing not met")
			fmt.Printf("timing NOT met: worst slack %.3fns\n", res.report.WorstSlack)
			os.Exit(1)
		}
	},
}

func init() {
	timingCmd.Flags().String("sdc", "", "path to an SDC/XDC constraint file")
	rootCmd.AddCommand(timingCmd)
}
