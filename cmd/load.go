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

	"github.com/gnames/wkdump/internal/io/kvio"
	"github.com/gnames/wkdump/internal/io/loadio"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Loads key-value records into a local key-value store",
	Run: func(_ *cobra.Command, _ []string) {
		cfg := config.New(opts...)
		wkd := wkdump.New(cfg)
		store, err := kvio.New(cfg.KVDir, false)
		if err != nil {
			slog.Error("Cannot create key-value store", "error", err)
			os.Exit(1)
		}
		l := loadio.New(cfg, store)
		_, err = wkd.Load(l)
		if err != nil {
			slog.Error("Cannot load key-value records", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
