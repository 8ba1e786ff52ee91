package wkdump

import (
	"errors"
	"fmt"

	"github.com/gnames/wkdump/internal/ent/convert"
	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/ent/kv"
	"github.com/gnames/wkdump/internal/ent/load"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
)

// ErrNotFound is returned when a subject is not in the key-value store.
var ErrNotFound = errors.New("subject not found")

// wkdump is an implementation of WKdump interface.
type wkdump struct {
	cfg config.Config
}

// New creates a new instance of WKdump.
func New(cfg config.Config) WKdump {
	res := wkdump{cfg: cfg}
	return &res
}

// Config returns the configuration of the instance.
func (w *wkdump) Config() config.Config {
	return w.cfg
}

// Download fetches all subjects from WaniKani API to a JSON file.
func (w *wkdump) Download(f fetch.Fetcher) error {
	return f.Fetch()
}

// Convert creates key-value records from the subjects file.
func (w *wkdump) Convert(c convert.Converter) error {
	return c.Convert()
}

// Load imports key-value records into a key-value store.
func (w *wkdump) Load(l load.Loader) (int, error) {
	return l.Load()
}

// Mnemonic finds a subject in a key-value store and returns its mnemonic.
func (w *wkdump) Mnemonic(
	store kv.KeyVal,
	id string,
	k subject.Kind,
) (string, error) {
	if err := store.Open(); err != nil {
		return "", fmt.Errorf("cannot open key-value store: %w", err)
	}
	defer store.Close()

	val, err := store.GetValue([]byte(id))
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return subject.Subject(val).Mnemonic(k)
}
