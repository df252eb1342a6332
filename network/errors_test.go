package network

import (
	"errors"
	"testing"
)

func TestHTMLTitle(t *testing.T) {
	body := []byte(`<!DOCTYPE html><html><head><title>Error 1015 | Rate limited</title></head><body></body></html>`)

	if got, want := htmlTitle("text/html; charset=UTF-8", body), "Error 1015 | Rate limited"; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
	if got := htmlTitle("application/json", body); got != "" {
		t.Errorf("Expected no title for a JSON response, got '%s'", got)
	}
	if got := htmlTitle("text/html", []byte("<html><body>no title</body></html>")); got != "" {
		t.Errorf("Expected no title, got '%s'", got)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{URL: "http://a/character/1", StatusCode: 404, Status: "404 Not Found"}
	if got, want := err.Error(), "unexpected response status 404 Not Found from http://a/character/1"; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}

	err.Title = "Not here"
	if got, want := err.Error(), "unexpected response status 404 Not Found from http://a/character/1: Not here"; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}

func TestShapeErrorUnwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &ShapeError{URL: "http://a", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("Expected ShapeError to unwrap to its cause")
	}

	missing := &ShapeError{URL: "http://a", Field: "episode"}
	if got, want := missing.Error(), `unexpected response shape from http://a: missing field "episode"`; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
