package convert

// Converter is the interface that wraps the Convert method.
type Converter interface {
	// Convert reads subjects from a file and saves them as key-value
	// records.
	Convert() error
}
