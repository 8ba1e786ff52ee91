package kv

// Record is a key-value pair ready for a bulk import into a key-value
// store. Value contains a compact JSON of a subject.
type Record struct {
	// Key is the subject ID.
	Key string `json:"key"`

	// Value is the subject encoded as a JSON string.
	Value string `json:"value"`
}
