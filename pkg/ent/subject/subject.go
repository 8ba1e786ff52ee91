// Package subject describes WaniKani subjects as they come from the API.
// A subject is kept as raw JSON, only the fields the tool needs are read
// from it.
package subject

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var (
	// ErrNoID is returned when a subject does not have a usable `id` field.
	ErrNoID = errors.New("subject has no id")

	// ErrNoMnemonic is returned when a subject has no mnemonic of the
	// requested kind.
	ErrNoMnemonic = errors.New("subject has no mnemonic")
)

// Subject is a raw JSON object of one WaniKani subject.
type Subject []byte

// MarshalJSON returns the subject as is.
func (s Subject) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return s, nil
}

// UnmarshalJSON keeps a copy of the raw data.
func (s *Subject) UnmarshalJSON(data []byte) error {
	if s == nil {
		return errors.New("subject: UnmarshalJSON on nil pointer")
	}
	*s = append((*s)[0:0], data...)
	return nil
}

// ID returns the string form of the subject's `id`. Numbers keep the
// exact form they have in the JSON, strings are returned verbatim.
func (s Subject) ID() (string, error) {
	if !gjson.ValidBytes(s) {
		return "", fmt.Errorf("%w: invalid JSON", ErrNoID)
	}
	res := gjson.ParseBytes(s)
	if !res.IsObject() {
		return "", fmt.Errorf("%w: not a JSON object", ErrNoID)
	}
	id := res.Get("id")
	switch id.Type {
	case gjson.Number:
		return id.Raw, nil
	case gjson.String:
		return id.Str, nil
	default:
		return "", ErrNoID
	}
}

// Compact returns the subject without insignificant whitespace. The order
// of the fields is preserved.
func (s Subject) Compact() []byte {
	return pretty.Ugly(s)
}

// Mnemonic returns a mnemonic of a given kind.
func (s Subject) Mnemonic(k Kind) (string, error) {
	path, err := k.path()
	if err != nil {
		return "", err
	}
	res := gjson.GetBytes(s, path)
	if !res.Exists() || res.String() == "" {
		return "", fmt.Errorf("%w: %s", ErrNoMnemonic, k)
	}
	return res.String(), nil
}
