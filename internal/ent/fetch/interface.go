package fetch

import (
	"context"

	"github.com/gnames/wkdump/pkg/ent/subject"
)

// Fetcher is the interface that wraps the Fetch method.
type Fetcher interface {
	// Fetch downloads all subjects and saves them to a file.
	Fetch() error
}

// PageSource provides pages of a paginated collection.
type PageSource interface {
	// Page returns a page located at the given URL.
	Page(ctx context.Context, url string) (subject.Page, error)
}
