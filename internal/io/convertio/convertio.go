package convertio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/wkdump/internal/ent/convert"
	"github.com/gnames/wkdump/internal/ent/kv"
	"github.com/gnames/wkdump/internal/fsutil"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
)

type convertio struct {
	cfg config.Config
}

// New returns a Converter that turns the subjects file into a file of
// key-value records.
func New(cfg config.Config) convert.Converter {
	res := convertio{cfg: cfg}
	return &res
}

// Convert reads subjects, converts them to key-value records and saves
// the records as a compact JSON array. Nothing is written on error.
func (c *convertio) Convert() error {
	slog.Info("Converting subjects to key-value records",
		"input", c.cfg.SubjectsPath)

	subjs, err := c.readSubjects()
	if err != nil {
		return err
	}

	recs, err := kv.FromSubjects(subjs, c.cfg.StrictIDs)
	if err != nil {
		slog.Error("Cannot convert subjects", "error", err)
		return err
	}

	data, err := encodeRecords(recs)
	if err != nil {
		slog.Error("Cannot encode key-value records", "error", err)
		return err
	}

	if err = fsutil.WriteFile(c.cfg.KVPath, data); err != nil {
		slog.Error("Cannot save key-value records", "path", c.cfg.KVPath, "error", err)
		return err
	}

	slog.Info("Key-value records saved",
		"records", humanize.Comma(int64(len(recs))),
		"path", c.cfg.KVPath,
	)
	return nil
}

func (c *convertio) readSubjects() ([]subject.Subject, error) {
	data, err := os.ReadFile(c.cfg.SubjectsPath)
	if err != nil {
		slog.Error("Cannot read subjects file", "path", c.cfg.SubjectsPath, "error", err)
		return nil, err
	}

	res, err := subject.ParseList(data)
	if err != nil {
		slog.Error("Subjects file is malformed", "path", c.cfg.SubjectsPath)
		return nil, fmt.Errorf("%s: %w", c.cfg.SubjectsPath, err)
	}
	return res, nil
}

// encodeRecords creates a compact JSON array. HTML characters are kept as
// is, because mnemonics contain markup tags.
func encodeRecords(recs []kv.Record) ([]byte, error) {
	if recs == nil {
		recs = []kv.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(recs); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
