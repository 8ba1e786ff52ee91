package fetchio_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/io/fetchio"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "secret-token"

// newServer serves three pages of subjects. If failPage is not 0, that page
// responds with 500.
func newServer(t *testing.T, failPage int) *httptest.Server {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}
		if page == failPage {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		next := "null"
		if page < 3 {
			next = fmt.Sprintf("%q", fmt.Sprintf("%s/subjects?page=%d", srv.URL, page+1))
		}
		fmt.Fprintf(w,
			`{"object":"collection","pages":{"per_page":2,"next_url":%s},`+
				`"data":[{"id":%d,"object":"radical"},{"id":%d,"object":"kanji"}]}`,
			next, page*2-1, page*2)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewNoToken(t *testing.T) {
	cfg := config.New(config.OptWorkDir(t.TempDir()))
	_, err := fetchio.New(cfg)
	assert.ErrorIs(t, err, fetch.ErrNoToken)
}

func TestFetch(t *testing.T) {
	srv := newServer(t, 0)
	dir := t.TempDir()
	cfg := config.New(
		config.OptWorkDir(dir),
		config.OptAPIToken(token),
		config.OptBaseURL(srv.URL+"/subjects"),
	)
	f, err := fetchio.New(cfg)
	require.NoError(t, err)
	require.NoError(t, f.Fetch())

	data, err := os.ReadFile(filepath.Join(dir, "subjects.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": 1,"))

	var subjs []map[string]any
	require.NoError(t, json.Unmarshal(data, &subjs))
	require.Len(t, subjs, 6)
	for i, s := range subjs {
		assert.Equal(t, float64(i+1), s["id"])
	}
}

func TestFetchFailure(t *testing.T) {
	srv := newServer(t, 2)
	dir := t.TempDir()
	path := filepath.Join(dir, "subjects.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	cfg := config.New(
		config.OptWorkDir(dir),
		config.OptAPIToken(token),
		config.OptBaseURL(srv.URL+"/subjects"),
	)
	f, err := fetchio.New(cfg)
	require.NoError(t, err)
	err = f.Fetch()
	assert.ErrorIs(t, err, fetch.ErrStatus)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFetchFailureNoFile(t *testing.T) {
	srv := newServer(t, 1)
	dir := t.TempDir()
	cfg := config.New(
		config.OptWorkDir(dir),
		config.OptAPIToken("wrong"),
		config.OptBaseURL(srv.URL+"/subjects"),
	)
	f, err := fetchio.New(cfg)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Fetch(), fetch.ErrStatus)

	_, err = os.Stat(cfg.SubjectsPath)
	assert.True(t, os.IsNotExist(err))
}

func TestPageHeaders(t *testing.T) {
	var rev string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rev = r.Header.Get("Wanikani-Revision")
		fmt.Fprint(w, `{"data":[{"id":7}],"pages":{"next_url":null}}`)
	}))
	defer srv.Close()

	cfg := config.New(
		config.OptWorkDir(t.TempDir()),
		config.OptAPIToken(token),
		config.OptAPIRevision("20170710"),
	)
	f, err := fetchio.New(cfg)
	require.NoError(t, err)
	src, ok := f.(fetch.PageSource)
	require.True(t, ok)

	page, err := src.Page(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "20170710", rev)
	assert.Equal(t, "", page.Next())
	require.Len(t, page.Data, 1)
	assert.Equal(t, `{"id":7}`, string(page.Data[0]))
}
