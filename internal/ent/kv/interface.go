package kv

import "github.com/dgraph-io/badger/v2"

// KeyVal is a key-value store.
type KeyVal interface {
	// Open opens a key-value store.
	Open() error

	// Close closes a key-value store.
	Close() error

	// Reset removes all data from a closed key-value store.
	Reset() error

	// GetTransaction returns a read-write transaction object.
	GetTransaction() (*badger.Txn, error)

	// GetValue returns a value for a key, or nil if the key is not found.
	GetValue(key []byte) ([]byte, error)
}
