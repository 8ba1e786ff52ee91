package subject

import (
	"errors"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var (
	// ErrNotArray is returned when a JSON array of subjects is expected,
	// but something else is given.
	ErrNotArray = errors.New("not a JSON array")

	// ErrInvalidUTF8 is returned when JSON data contains bytes that are
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Page is one response of a paginated collection endpoint.
type Page struct {
	// Data contains subjects of the page.
	Data []Subject `json:"data"`

	// Pages contains pagination links.
	Pages Pages `json:"pages"`
}

// Pages holds pagination data of a collection.
type Pages struct {
	// NextURL points to the next page. It is nil for the last page.
	NextURL *string `json:"next_url"`

	// PerPage is a maximum number of subjects in a page.
	PerPage int `json:"per_page"`
}

// NewPage parses a page of a collection. Subjects are taken from the
// `data` field without changes.
func NewPage(body []byte) (Page, error) {
	var res Page
	if !utf8.Valid(body) {
		return res, ErrInvalidUTF8
	}
	if !gjson.ValidBytes(body) {
		return res, errors.New("page is not valid JSON")
	}
	doc := gjson.ParseBytes(body)

	data := doc.Get("data")
	if data.Exists() && !data.IsArray() {
		return res, errors.New("page data is not a JSON array")
	}
	res.Data = parseArray(data)

	next := doc.Get("pages.next_url")
	if next.Type == gjson.String && next.Str != "" {
		url := next.Str
		res.Pages.NextURL = &url
	}
	res.Pages.PerPage = int(doc.Get("pages.per_page").Int())
	return res, nil
}

// Next returns the URL of the next page, or an empty string if the page
// is the last one.
func (p Page) Next() string {
	if p.Pages.NextURL == nil {
		return ""
	}
	return *p.Pages.NextURL
}

// ParseList parses a JSON array of subjects.
func ParseList(data []byte) ([]Subject, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrNotArray
	}
	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		return nil, ErrNotArray
	}
	return parseArray(arr), nil
}

func parseArray(arr gjson.Result) []Subject {
	res := make([]Subject, 0)
	arr.ForEach(func(_, v gjson.Result) bool {
		res = append(res, Subject(v.Raw))
		return true
	})
	return res
}
