package fetchio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/fsutil"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
)

type fetchio struct {
	cfg    config.Config
	client *http.Client
}

// New returns a Fetcher that downloads subjects from WaniKani API. It fails
// if the API token is not set.
func New(cfg config.Config) (fetch.Fetcher, error) {
	if cfg.APIToken == "" {
		return nil, fetch.ErrNoToken
	}
	res := fetchio{
		cfg:    cfg,
		client: &http.Client{},
	}
	return &res, nil
}

// Fetch downloads all subjects and saves them as an indented JSON array.
// Nothing is written if any of the pages fails.
func (f *fetchio) Fetch() error {
	slog.Info("Downloading subjects", "url", f.cfg.BaseURL)
	subjs, err := fetch.Collect(context.Background(), f, f.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("cannot download subjects: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err = enc.Encode(subjs); err != nil {
		slog.Error("Cannot encode subjects", "error", err)
		return err
	}

	if err = fsutil.WriteFile(f.cfg.SubjectsPath, buf.Bytes()); err != nil {
		slog.Error("Cannot save subjects", "path", f.cfg.SubjectsPath, "error", err)
		return err
	}

	slog.Info("Subjects saved",
		"subjects", humanize.Comma(int64(len(subjs))),
		"path", f.cfg.SubjectsPath,
	)
	return nil
}

// Page implements fetch.PageSource.
func (f *fetchio) Page(ctx context.Context, url string) (subject.Page, error) {
	var res subject.Page
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set("Authorization", "Bearer "+f.cfg.APIToken)
	if f.cfg.APIRevision != "" {
		req.Header.Set("Wanikani-Revision", f.cfg.APIRevision)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("%w: %d", fetch.ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, err
	}

	res, err = subject.NewPage(body)
	if err != nil {
		return res, fmt.Errorf("cannot decode page %s: %w", url, err)
	}
	slog.Debug("Got page", "url", url, "subjects", len(res.Data))
	return res, nil
}
