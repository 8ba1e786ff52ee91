package wkdump

import (
	"github.com/gnames/wkdump/internal/ent/convert"
	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/ent/kv"
	"github.com/gnames/wkdump/internal/ent/load"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
)

// WKdump is an interface for downloading WaniKani subjects and preparing
// them for key-value stores.
type WKdump interface {
	// Config returns the configuration of the instance.
	Config() config.Config

	// Download fetches all subjects from WaniKani API to a JSON file.
	Download(fetch.Fetcher) error

	// Convert creates key-value records from the subjects file.
	Convert(convert.Converter) error

	// Load imports key-value records into a key-value store and returns
	// the number of imported records.
	Load(load.Loader) (int, error)

	// Mnemonic finds a subject in a key-value store and returns its
	// mnemonic of the given kind.
	Mnemonic(store kv.KeyVal, id string, k subject.Kind) (string, error)
}
