package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"apibench/network"
)

func TestPrintMetrics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintMetrics("REST API", network.Metrics{ResponseTime: 123.456, PayloadSize: 51, RequestCount: 3})

	want := "\n--- REST API ---\n" +
		"Response time: 123.46 ms\n" +
		"Payload size: 51 bytes\n" +
		"Request count: 3\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected output:\n%q\ngot:\n%q", want, got)
	}
}

func TestPrintMetricsColors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.PrintMetrics("GraphQL API", network.Metrics{ResponseTime: 1, PayloadSize: 2, RequestCount: 1})

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected ANSI escapes in colored output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "%!") {
		t.Errorf("Expected no formatting errors in colored output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "\x1b[34m1\x1b[0m") {
		t.Errorf("Expected the request count in blue, got %q", buf.String())
	}
}

func TestPrintRequestGraph(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintRequestGraph(network.Metrics{
		Requests: []network.RequestTiming{
			{URL: "http://a/character/1", Duration: 20 * time.Millisecond, Size: 900},
			{URL: "http://a/episode/1", Duration: 35 * time.Millisecond, Size: 300, ConnectionReused: true},
			{URL: "http://a/episode/2", Duration: 30 * time.Millisecond, Size: 2048},
		},
	})

	out := buf.String()
	for _, want := range []string{"Request #1", "http://a/episode/2", "2.00 KB", "New connections 2", "request duration (ms)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain '%s', got:\n%s", want, out)
		}
	}
}

func TestPrintRequestGraphNoColor(t *testing.T) {
	m := network.Metrics{
		Requests: []network.RequestTiming{
			{URL: "http://a/character/1", Duration: 20 * time.Millisecond},
			{URL: "http://a/episode/1", Duration: 35 * time.Millisecond},
			{URL: "http://a/episode/2", Duration: 10 * time.Millisecond},
		},
	}

	var plain bytes.Buffer
	NewPrinter(&plain, false).PrintRequestGraph(m)
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("Expected no ANSI escapes with colors disabled, got %q", plain.String())
	}
	if !strings.Contains(plain.String(), "request duration (ms)") {
		t.Errorf("Expected a graph, got:\n%s", plain.String())
	}

	var colored bytes.Buffer
	NewPrinter(&colored, true).PrintRequestGraph(m)
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("Expected ANSI escapes with colors enabled, got %q", colored.String())
	}
}

func TestPrintRequestGraphSingleRequest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.PrintRequestGraph(network.Metrics{
		Requests: []network.RequestTiming{{URL: "http://a/graphql", Duration: time.Millisecond}},
	})

	if strings.Contains(buf.String(), "request duration (ms)") {
		t.Errorf("Expected no graph for a single request, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "http://a/graphql") {
		t.Errorf("Expected the request to be listed, got:\n%s", buf.String())
	}
}

func TestFormatSize(t *testing.T) {
	for _, tc := range []struct {
		size int64
		want string
	}{
		{size: 51, want: "51 B"},
		{size: 1536, want: "1.50 KB"},
		{size: 3 * 1024 * 1024, want: "3.00 MB"},
		{size: 2 * 1024 * 1024 * 1024, want: "2.00 GB"},
	} {
		if got := FormatSize(tc.size); got != tc.want {
			t.Errorf("FormatSize(%d): expected '%s', got '%s'", tc.size, tc.want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got, want := FormatDuration(1234567*time.Nanosecond), "1.23ms"; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
	if got, want := FormatDuration(0), "0.00s"; got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
