package config

import (
	"os"
	"path/filepath"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// BaseURL is the first page of the subjects collection.
	BaseURL string

	// APIToken is a WaniKani API token sent as a bearer credential.
	APIToken string

	// APIRevision is sent as Wanikani-Revision header if it is not empty.
	APIRevision string

	// WorkDir is a directory for downloaded data and key-value stores.
	WorkDir string

	// SubjectsPath is a path to the JSON file with downloaded subjects.
	SubjectsPath string

	// KVPath is a path to the JSON file with key-value records.
	KVPath string

	// KVDir is a directory of the key-value store.
	KVDir string

	// StrictIDs makes conversion fail on duplicate subject IDs.
	StrictIDs bool
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptBaseURL sets the URL of the first page of subjects.
func OptBaseURL(s string) Option {
	return func(cfg *Config) {
		cfg.BaseURL = s
	}
}

// OptAPIToken sets WaniKani API token.
func OptAPIToken(s string) Option {
	return func(cfg *Config) {
		cfg.APIToken = s
	}
}

// OptAPIRevision sets WaniKani API revision.
func OptAPIRevision(s string) Option {
	return func(cfg *Config) {
		cfg.APIRevision = s
	}
}

// OptWorkDir sets a directory for downloaded files and key-value stores.
func OptWorkDir(d string) Option {
	return func(cfg *Config) {
		cfg.WorkDir = d
	}
}

// OptSubjectsPath sets a path to the subjects file.
func OptSubjectsPath(s string) Option {
	return func(cfg *Config) {
		cfg.SubjectsPath = s
	}
}

// OptKVPath sets a path to the key-value records file.
func OptKVPath(s string) Option {
	return func(cfg *Config) {
		cfg.KVPath = s
	}
}

// OptKVDir sets a directory of the key-value store.
func OptKVDir(d string) Option {
	return func(cfg *Config) {
		cfg.KVDir = d
	}
}

// OptStrictIDs rejects duplicate IDs during conversion.
func OptStrictIDs(b bool) Option {
	return func(cfg *Config) {
		cfg.StrictIDs = b
	}
}

// New creates Config. Paths that are not set explicitly are placed
// inside WorkDir.
func New(opts ...Option) Config {
	workDir, err := os.UserCacheDir()
	if err != nil {
		workDir = os.TempDir()
	}
	workDir = filepath.Join(workDir, "wkdump")

	res := Config{
		BaseURL:     "https://api.wanikani.com/v2/subjects",
		APIRevision: "20170710",
		WorkDir:     workDir,
	}

	for _, opt := range opts {
		opt(&res)
	}

	if res.SubjectsPath == "" {
		res.SubjectsPath = filepath.Join(res.WorkDir, "subjects.json")
	}
	if res.KVPath == "" {
		res.KVPath = filepath.Join(res.WorkDir, "subjects_kv.json")
	}
	if res.KVDir == "" {
		res.KVDir = filepath.Join(res.WorkDir, "kv")
	}

	return res
}
