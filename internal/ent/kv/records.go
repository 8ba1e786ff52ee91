package kv

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnames/wkdump/pkg/ent/subject"
)

// ErrDuplicateKey is returned in strict mode when two subjects share the
// same ID.
var ErrDuplicateKey = errors.New("duplicate key")

// FromSubjects converts subjects to key-value records, keeping the order of
// the input. Duplicate keys are kept and reported in the log, unless
// strict is true, in which case they cause an error.
func FromSubjects(subjs []subject.Subject, strict bool) ([]Record, error) {
	res := make([]Record, len(subjs))
	seen := make(map[string]struct{}, len(subjs))
	var dups int
	for i, s := range subjs {
		key, err := s.ID()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := seen[key]; ok {
			if strict {
				return nil, fmt.Errorf("record %d: %w %q", i, ErrDuplicateKey, key)
			}
			dups++
		}
		seen[key] = struct{}{}
		res[i] = Record{Key: key, Value: string(s.Compact())}
	}
	if dups > 0 {
		slog.Warn("Duplicate keys found", "count", dups)
	}
	return res, nil
}
