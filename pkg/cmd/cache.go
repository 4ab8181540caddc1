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

	"github.com/aion-eda/aion/pkg/cache"
)

// cacheCmd groups subcommands that inspect or clear the incremental build
// cache (spec §4.11) without elaborating or building anything themselves;
// `aion build` is the only command that writes to it.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the incremental build cache.",
	Long: `Cache reports or clears the manifest and artifact store that
"aion build" reads and writes between runs (spec §4.11).`,
}

// cacheStatusCmd represents the "cache status" command
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report what the cache manifest currently holds.",
	Run: func(cmd *cobra.Command, args []string) {
		cacheDir := GetString(cmd, "cache-dir")

		manifest, ok := cache.LoadManifest(cacheDir)
		if !ok {
			fmt.Printf("%s: no manifest (cache empty or never built)\n", cacheDir)
			return
		}

		fmt.Printf("%s: tool version %q\n", cacheDir, manifest.ToolVersion)
		fmt.Printf("  %d file(s), %d module(s), %d target(s)\n",
			len(manifest.Files), len(manifest.Modules), len(manifest.Targets))

		for name, target := range manifest.Targets {
			fmt.Printf("  target %q: device %s, routed key %s\n", name, target.Device, target.RoutedCacheKey)
		}
	},
}

// cacheCleanCmd represents the "cache clean" command
var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the cache directory entirely.",
	Run: func(cmd *cobra.Command, args []string) {
		cacheDir := GetString(cmd, "cache-dir")

		if err := os.RemoveAll(cacheDir); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		log.WithFields(log.Fields{"stage": "cache", "cache_dir": cacheDir}).Info("cache cleared")
		fmt.Printf("removed %s\n", cacheDir)
	},
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", ".aion-cache", "incremental cache directory")
	cacheCmd.AddCommand(cacheStatusCmd, cacheCleanCmd)
	rootCmd.AddCommand(cacheCmd)
}
