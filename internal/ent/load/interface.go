package load

// Loader is the interface that wraps the Load method.
type Loader interface {
	// Load imports key-value records into a key-value store. It returns
	// the number of imported records.
	Load() (int, error)
}
