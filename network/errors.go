package network

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StatusError is returned when an endpoint answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	// Title is the <title> of an HTML error page, if there was one
	Title string
}

func (e *StatusError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("unexpected response status %s from %s: %s", e.Status, e.URL, e.Title)
	}
	return fmt.Sprintf("unexpected response status %s from %s", e.Status, e.URL)
}

// ShapeError is returned when a response body does not match the expected JSON shape
type ShapeError struct {
	URL   string
	Field string
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response shape from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected response shape from %s: missing field %q", e.URL, e.Field)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// htmlTitle extracts the page title from an HTML body.
// Gateways in front of the API tend to answer errors with HTML.
func htmlTitle(contentType string, body []byte) string {
	if !strings.Contains(contentType, "html") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}
