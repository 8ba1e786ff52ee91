package subject

import "fmt"

// Kind is a kind of a mnemonic.
type Kind int

const (
	// UnknownKind is a zero value for unsupported kinds.
	UnknownKind Kind = iota
	// Meaning selects the meaning mnemonic of a subject.
	Meaning
	// Reading selects the reading mnemonic of a subject.
	Reading
)

var kindStrings = map[Kind]string{
	Meaning: "meaning",
	Reading: "reading",
}

// NewKind converts a string to a Kind.
func NewKind(s string) (Kind, error) {
	for k, v := range kindStrings {
		if v == s {
			return k, nil
		}
	}
	return UnknownKind, fmt.Errorf("unknown mnemonic kind %q", s)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "unknown"
}

func (k Kind) path() (string, error) {
	switch k {
	case Meaning:
		return "data.meaning_mnemonic", nil
	case Reading:
		return "data.reading_mnemonic", nil
	default:
		return "", fmt.Errorf("unknown mnemonic kind %d", int(k))
	}
}
