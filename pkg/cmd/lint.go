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

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [flags] bundle.json",
	Short: "Elaborate and run static checks against a design.",
	Long: `Lint elaborates bundle.json and runs the built-in rule set (spec §4.3)
against every module, applying the project's [lint] deny/allow/warn policy
before reporting.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		res, err := runPipeline(cmd, args[0], stageLint)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		reportAndExit(cmd, res)
		log.WithFields(log.Fields{"stage": "lint", "diagnostics": len(res.sink.Snapshot())}).Info("lint finished")
		fmt.Println("lint: no errors")
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
