package fetch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gnames/wkdump/pkg/ent/subject"
)

var (
	// ErrNoToken is returned when the API token is not set.
	ErrNoToken = errors.New("WANIKANI_API_TOKEN is not set")

	// ErrStatus is returned when the API responds with a status other
	// than 200 OK.
	ErrStatus = errors.New("unexpected response status")
)

// Collect walks pages starting from url and returns all subjects in the
// order they were received. It stops when a page has no link to the next
// one. Any error from the source aborts the walk, and no subjects are
// returned.
func Collect(
	ctx context.Context,
	src PageSource,
	url string,
) ([]subject.Subject, error) {
	res := make([]subject.Subject, 0)
	var pages int
	for url != "" {
		page, err := src.Page(ctx, url)
		if err != nil {
			slog.Error("Cannot fetch page", "url", url, "error", err)
			return nil, err
		}
		res = append(res, page.Data...)
		pages++
		url = page.Next()
	}
	slog.Info("Pagination finished", "pages", pages, "subjects", len(res))
	return res, nil
}
