/*
Copyright © 2024 Dmitry Mozzherin <dmozzherin@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/gnames/wkdump/internal/io/convertio"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/spf13/cobra"
)

// kvCmd represents the kv command
var kvCmd = &cobra.Command{
	Use:   "kv",
	Short: "Converts downloaded subjects to key-value records",
	Long: `Converts downloaded subjects to a compact JSON array of
{"key": ID, "value": JSON of a subject} records, suitable for bulk
import into key-value stores.`,
	Run: func(cmd *cobra.Command, _ []string) {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			slog.Error("Cannot get flag", "error", err)
			os.Exit(1)
		}
		if strict {
			opts = append(opts, config.OptStrictIDs(true))
		}
		cfg := config.New(opts...)
		wkd := wkdump.New(cfg)
		c := convertio.New(cfg)
		err = wkd.Convert(c)
		if err != nil {
			slog.Error("Cannot create key-value records", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(kvCmd)

	kvCmd.Flags().BoolP("strict", "s", false, "Fail on duplicate subject IDs")
}
