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
	"errors"
	"log/slog"
	"os"

	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/io/fetchio"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/spf13/cobra"
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Downloads all WaniKani subjects to a JSON file",
	Run: func(_ *cobra.Command, _ []string) {
		cfg := config.New(opts...)
		wkd := wkdump.New(cfg)
		f, err := fetchio.New(cfg)
		if errors.Is(err, fetch.ErrNoToken) {
			slog.Error("Set WaniKani API token in WANIKANI_API_TOKEN environment variable")
			os.Exit(1)
		}
		if err != nil {
			slog.Error("Cannot create Fetcher", "error", err)
			os.Exit(1)
		}
		err = wkd.Download(f)
		if err != nil {
			slog.Error("Failed to fetch data", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
