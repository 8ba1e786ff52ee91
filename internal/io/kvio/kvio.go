package kvio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnsys"
	"github.com/gnames/wkdump/internal/ent/kv"
)

var (
	// ErrNotOpen is returned when a key-value store is used before Open.
	ErrNotOpen = errors.New("key-value store is not open")

	// ErrIsOpen is returned when an open key-value store is reset.
	ErrIsOpen = errors.New("key-value store is open")

	// ErrNoStore is returned when a key-value store was never loaded.
	ErrNoStore = errors.New("key-value store is not loaded")
)

type kvio struct {
	dir string
	kv  *badger.DB
}

// New returns a new instance of kvio. If reset is true, the data of
// the store is removed.
func New(dir string, reset bool) (kv.KeyVal, error) {
	res := kvio{
		dir: dir,
	}

	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create directory", "error", err, "dir", dir)
		return nil, err
	}

	if !reset {
		return &res, nil
	}

	err = gnsys.CleanDir(dir)
	if err != nil {
		slog.Error("Cannot reset key-value store", "error", err, "dir", dir)
		return nil, err
	}

	return &res, nil
}

// Existing returns a key-value store that has data already. It does
// not create anything on disk.
func Existing(dir string) (kv.KeyVal, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) || (err == nil && len(entries) == 0) {
		return nil, fmt.Errorf("%w: %s, run 'wkdump load' first", ErrNoStore, dir)
	}
	if err != nil {
		return nil, err
	}
	res := kvio{dir: dir}
	return &res, nil
}

// Reset removes all data of a closed key-value store.
func (k *kvio) Reset() error {
	if k.kv != nil {
		return ErrIsOpen
	}
	err := gnsys.CleanDir(k.dir)
	if err != nil {
		slog.Error("Cannot reset key-value store", "error", err, "dir", k.dir)
		return err
	}
	return nil
}

// Open opens a key-value store.
func (k *kvio) Open() error {
	if k.kv != nil {
		slog.Warn("Key-value store is already open", "dir", k.dir)
		return nil
	}
	options := badger.DefaultOptions(k.dir)
	options.Logger = nil

	bdb, err := badger.Open(options)
	if err != nil {
		return err
	}
	k.kv = bdb
	return nil
}

// Close closes a key-value store.
func (k *kvio) Close() error {
	if k.kv == nil {
		slog.Warn("Key-value store is nil")
		return nil
	}
	err := k.kv.Close()
	k.kv = nil
	return err
}

// GetTransaction returns a transaction object.
func (k *kvio) GetTransaction() (*badger.Txn, error) {
	if k.kv == nil {
		return nil, ErrNotOpen
	}
	txn := k.kv.NewTransaction(true)
	return txn, nil
}

// GetValue returns a value for a given key.
func (k *kvio) GetValue(key []byte) ([]byte, error) {
	if k.kv == nil {
		return nil, ErrNotOpen
	}
	txn := k.kv.NewTransaction(false)
	defer txn.Discard()
	val, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		slog.Debug("Cannot find key", "key", string(key))
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return val.ValueCopy(nil)
}
