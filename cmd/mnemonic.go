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
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/wkdump/internal/io/kvio"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
	"github.com/spf13/cobra"
)

// mnemonicCmd represents the mnemonic command
var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic subject-id meaning|reading",
	Short: "Prints a mnemonic of a subject from the local key-value store",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		kind, err := subject.NewKind(args[1])
		if err != nil {
			slog.Error("Cannot parse mnemonic kind", "error", err)
			os.Exit(1)
		}
		cfg := config.New(opts...)
		wkd := wkdump.New(cfg)
		store, err := kvio.Existing(cfg.KVDir)
		if err != nil {
			slog.Error("Cannot open key-value store", "error", err)
			os.Exit(1)
		}
		res, err := wkd.Mnemonic(store, args[0], kind)
		if err != nil {
			slog.Error("Cannot get mnemonic", "id", args[0], "error", err)
			os.Exit(1)
		}
		fmt.Println(res)
	},
}

func init() {
	rootCmd.AddCommand(mnemonicCmd)
}
