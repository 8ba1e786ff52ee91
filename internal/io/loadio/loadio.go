package loadio

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v2"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wkdump/internal/ent/kv"
	"github.com/gnames/wkdump/internal/ent/load"
	"github.com/gnames/wkdump/pkg/config"
	"golang.org/x/sync/errgroup"
)

type loadio struct {
	cfg   config.Config
	store kv.KeyVal
}

// New returns a Loader that imports the key-value records file into
// the store.
func New(cfg config.Config, store kv.KeyVal) load.Loader {
	res := loadio{cfg: cfg, store: store}
	return &res
}

// Load reads key-value records and saves them to the store.
func (l *loadio) Load() (int, error) {
	slog.Info("Loading key-value records", "input", l.cfg.KVPath, "store", l.cfg.KVDir)

	recs, err := l.readRecords()
	if err != nil {
		return 0, err
	}

	// the old data stays intact until the new records are decoded
	if err = l.store.Reset(); err != nil {
		return 0, err
	}

	if err = l.store.Open(); err != nil {
		slog.Error("Cannot open key-value store", "error", err)
		return 0, err
	}
	defer l.store.Close()

	chIn := make(chan kv.Record)
	var count int

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(chIn)
		for _, r := range recs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- r:
			}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		count, err = l.saveRecords(ctx, chIn)
		return err
	})

	if err = g.Wait(); err != nil {
		slog.Error("Cannot load key-value records", "error", err)
		return count, err
	}

	slog.Info("Key-value records loaded", "records", humanize.Comma(int64(count)))
	return count, nil
}

func (l *loadio) readRecords() ([]kv.Record, error) {
	data, err := os.ReadFile(l.cfg.KVPath)
	if err != nil {
		slog.Error("Cannot read key-value records", "path", l.cfg.KVPath, "error", err)
		return nil, err
	}
	var res []kv.Record
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		slog.Error("Cannot decode key-value records", "path", l.cfg.KVPath, "error", err)
		return nil, err
	}
	return res, nil
}

func (l *loadio) saveRecords(
	ctx context.Context,
	chIn <-chan kv.Record,
) (int, error) {
	txn, err := l.store.GetTransaction()
	if err != nil {
		slog.Error("Cannot make key-value transaction", "error", err)
		return 0, err
	}
	defer func() { txn.Discard() }()

	var count int
loop:
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case r, ok := <-chIn:
			if !ok {
				break loop
			}
			if r.Key == "" {
				return count, fmt.Errorf("record %d has an empty key", count)
			}
			txn, err = l.set(txn, []byte(r.Key), []byte(r.Value))
			if err != nil {
				return count, err
			}
			count++
		}
	}

	if err = txn.Commit(); err != nil {
		slog.Error("Cannot commit key-value transaction", "error", err)
		return count, err
	}
	return count, nil
}

// set saves a key-value pair, starting a new transaction when the
// current one is full.
func (l *loadio) set(txn *badger.Txn, key, val []byte) (*badger.Txn, error) {
	err := txn.Set(key, val)
	if err != badger.ErrTxnTooBig {
		return txn, err
	}

	if err = txn.Commit(); err != nil {
		slog.Error("Cannot commit key-value transaction", "error", err)
		return txn, err
	}
	next, err := l.store.GetTransaction()
	if err != nil {
		slog.Error("Cannot recreate key-value transaction", "error", err)
		return txn, err
	}
	if err = next.Set(key, val); err != nil {
		slog.Error("Cannot set key-value", "error", err)
		return next, err
	}
	return next, nil
}
