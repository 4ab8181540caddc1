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
	"encoding/hex"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aion-eda/aion/pkg/cache"
	"github.com/aion-eda/aion/pkg/chash"
)

// parseHash decodes a chash.Hash's hex String() form back into a Hash, as
// stored in a cache.TargetCache's *CacheKey fields. An unparseable or
// wrong-length string (a hand-edited manifest, a future format) decodes to
// the zero Hash, which Store.Get simply reports as a miss.
func parseHash(s string) chash.Hash {
	var b [16]byte
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) != len(b) {
		return chash.Hash{}
	}
	copy(b[:], decoded)
	return chash.FromBytes(b)
}

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [flags] bundle.json",
	Short: "Run the full pipeline end to end, reusing cached results when possible.",
	Long: `Build chains elaborate, lint, synth, pnr, timing and bitstream into one
command, publishing and reading the incremental cache (spec §4.11) between
runs: if bundle.json's content hash and the chosen target both match the
cache directory's manifest, the stored bitstream artifact is reused and
the pipeline itself never runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		bundlePath := args[0]
		start := time.Now()
		progress := newBuildProgress()

		cacheDir := GetString(cmd, "cache-dir")
		store := cache.NewStore(cacheDir)

		manifest, ok := cache.LoadManifest(cacheDir)
		if !ok {
			manifest = cache.NewManifest(Version)
		}
		if manifest.Files == nil {
			manifest.Files = make(map[string]cache.FileCache)
		}
		if manifest.Targets == nil {
			manifest.Targets = make(map[string]cache.TargetCache)
		}

		targetName := GetString(cmd, "target")
		if targetName == "" {
			targetName = "default"
		}

		hash, err := cache.HashFile(bundlePath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		format := GetString(cmd, "format")
		out := GetString(cmd, "out")

		prior, known := manifest.Files[bundlePath]
		target, haveTarget := manifest.Targets[targetName]
		if known && haveTarget && prior.ContentHash == hash.String() {
			if payload, hit := store.Get(cache.KindSynth, parseHash(target.RoutedCacheKey)); hit {
				if out == "" {
					out = targetName + "." + format
				}
				if err := os.WriteFile(out, payload, 0o644); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				log.WithFields(log.Fields{
					"stage":  "build",
					"target": targetName,
					"device": target.Device,
					"bytes":  len(payload),
				}).Info("cache hit, pipeline skipped")
				progress.Done(time.Since(start))
				fmt.Printf("cache hit: wrote %s (%d bytes) without re-running the pipeline\n", out, len(payload))
				return
			}
		}
		log.WithFields(log.Fields{"stage": "build", "target": targetName}).Debug("cache miss, running pipeline")

		res, err := runPipeline(cmd, bundlePath, stageBitstream, progress.Stage)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		reportAndExit(cmd, res)

		if format == "" {
			format = defaultFormat(res.device.FamilyName())
		}
		designName := res.interner.String(res.top.Name)
		payload, err := writeBitstream(format, res.image, res.device.DeviceName(), designName)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if out == "" {
			out = designName + "." + format
		}
		if err := os.WriteFile(out, payload, 0o644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		artifactHash, err := store.Put(cache.KindSynth, payload)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		manifest.Files[bundlePath] = cache.FileCache{ContentHash: hash.String()}
		manifest.Targets[targetName] = cache.TargetCache{
			Device:         res.device.DeviceName(),
			RoutedCacheKey: artifactHash.String(),
		}
		if err := cache.SaveManifest(cacheDir, manifest); err != nil {
			fmt.Println(err)
		}

		log.WithFields(log.Fields{
			"stage":  "build",
			"device": res.device.DeviceName(),
			"bytes":  len(payload),
		}).Info("build finished")
		progress.Done(time.Since(start))
		fmt.Printf("wrote %s (%d bytes)\n", out, len(payload))
	},
}

func init() {
	buildCmd.Flags().String("cache-dir", ".aion-cache", "incremental cache directory")
	buildCmd.Flags().String("format", "", "bitstream format: rbf, sof, pof (Intel) or bit (Xilinx); default is family-specific")
	buildCmd.Flags().String("out", "", "output file path (default: <top module>.<format>)")
	buildCmd.Flags().String("sdc", "", "path to an SDC/XDC constraint file")
	rootCmd.AddCommand(buildCmd)
}
