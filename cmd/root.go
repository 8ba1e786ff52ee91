// Copyright © 2024 Dmitry Mozzherin <dmozzherin@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:embed wkdump.yaml
var configText string

var (
	opts []config.Option
)

type cfgData struct {
	BaseURL      string
	APIToken     string
	APIRevision  string
	WorkDir      string
	SubjectsPath string
	KVPath       string
	KVDir        string
	StrictIDs    bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wkdump",
	Short: "Downloads WaniKani subjects and prepares them for key-value stores",
	Long: `wkdump downloads all subjects from WaniKani API and saves them to
a JSON file. The file can be converted to key-value records, which can be
imported to a key-value store or loaded to a local one.

The API token is taken from WANIKANI_API_TOKEN environment variable.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := cmd.Flags().GetBool("version")
		if err != nil {
			slog.Error("Cannot get flag", "error", err)
			os.Exit(1)
		}
		if version {
			fmt.Printf("\nversion: %s\nbuild: %s\n\n", wkdump.Version, wkdump.Build)
			os.Exit(0)
		}

		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("version", "V", false, "Returns version and build date")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	var homeDir, cfgDir string
	configFile := "wkdump"

	// .env file is optional, real environment variables take precedence.
	if err = godotenv.Load(); err == nil {
		slog.Debug("Loaded .env file")
	}

	// Find home directory.
	homeDir, err = os.UserHomeDir()
	if err != nil {
		slog.Error("Cannot find home dir", "error", err)
		os.Exit(1)
	}
	cfgDir = filepath.Join(homeDir, ".config")

	// Search config in home directory with name "wkdump" (without extension).
	viper.AddConfigPath(cfgDir)
	viper.SetConfigName(configFile)

	err = viper.BindEnv("APIToken", "WANIKANI_API_TOKEN")
	if err != nil {
		slog.Error("Cannot bind environment variable", "error", err)
		os.Exit(1)
	}

	configPath := filepath.Join(cfgDir, fmt.Sprintf("%s.yaml", configFile))
	touchConfigFile(configPath)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Config file wkdump.yaml not found", "error", err)
		os.Exit(1)
	}
	getOpts()
}

// getOpts imports data from the configuration file. Some of the settings can
// be overriden by command line flags.
func getOpts() []config.Option {
	cfg := cfgData{}
	err := viper.Unmarshal(&cfg)
	if err != nil {
		slog.Error("Cannot unmarshal config file", "error", err)
	}

	if cfg.BaseURL != "" {
		opts = append(opts, config.OptBaseURL(cfg.BaseURL))
	}
	if cfg.APIToken != "" {
		opts = append(opts, config.OptAPIToken(cfg.APIToken))
	}
	if cfg.APIRevision != "" {
		opts = append(opts, config.OptAPIRevision(cfg.APIRevision))
	}
	if cfg.WorkDir != "" {
		opts = append(opts, config.OptWorkDir(cfg.WorkDir))
	}
	if cfg.SubjectsPath != "" {
		opts = append(opts, config.OptSubjectsPath(cfg.SubjectsPath))
	}
	if cfg.KVPath != "" {
		opts = append(opts, config.OptKVPath(cfg.KVPath))
	}
	if cfg.KVDir != "" {
		opts = append(opts, config.OptKVDir(cfg.KVDir))
	}
	if cfg.StrictIDs {
		opts = append(opts, config.OptStrictIDs(true))
	}
	return opts
}

// touchConfigFile checks if config file exists, and if not, it gets created.
func touchConfigFile(configPath string) {
	fileExists, _ := gnsys.FileExists(configPath)
	if fileExists {
		return
	}

	slog.Info("Creating config file", "path", configPath)
	createConfig(configPath)
}

// createConfig creates config file.
func createConfig(path string) {
	err := gnsys.MakeDir(filepath.Dir(path))
	if err != nil {
		slog.Error("Cannot create config dir", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(path, []byte(configText), 0644)
	if err != nil {
		slog.Error("Cannot write to config file", "error", err)
		os.Exit(1)
	}
}
