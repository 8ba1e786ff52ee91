package wkdump

var (
	// Version of wkdump.
	Version = "v0.1.0"

	// Build timestamp, set by a linker flag.
	Build = "n/a"
)
