package output

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/logrusorgru/aurora"

	"apibench/network"
)

// Printer writes comparison reports to the console
type Printer struct {
	out    io.Writer
	au     aurora.Aurora
	colors bool
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, colors bool) *Printer {
	return &Printer{out: out, au: aurora.NewAurora(colors), colors: colors}
}

// PrintBanner prints the opening line of a run
func (p *Printer) PrintBanner() {
	fmt.Fprintln(p.out, p.au.Bold(p.au.Green("Comparing APIs...")))
}

// PrintMetrics prints a section header followed by the metrics of one pass
func (p *Printer) PrintMetrics(title string, m network.Metrics) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.au.Magenta(fmt.Sprintf("--- %s ---", title)))
	fmt.Fprintf(p.out, "%s %s\n", p.au.Green("Response time:"), p.au.Blue(fmt.Sprintf("%.2f ms", m.ResponseTime)))
	fmt.Fprintf(p.out, "%s %s\n", p.au.Green("Payload size:"), p.au.Blue(fmt.Sprintf("%d bytes", m.PayloadSize)))
	fmt.Fprintf(p.out, "%s %s\n", p.au.Green("Request count:"), p.au.Blue(strconv.Itoa(m.RequestCount)))
}

// PrintRequestGraph prints per-request timings and a graph of their durations
func (p *Printer) PrintRequestGraph(m network.Metrics) {
	if len(m.Requests) == 0 {
		return
	}

	fmt.Fprintln(p.out)
	for i, r := range m.Requests {
		fmt.Fprintf(p.out, "%20s %s %s %s\n",
			p.au.BrightGreen(fmt.Sprintf("Request #%d", i+1)),
			p.au.Blue(FormatDuration(r.Duration)),
			p.au.Yellow(FormatSize(int64(r.Size))),
			p.au.Cyan(r.URL))
	}
	fmt.Fprintf(p.out, "%20s %s\n", p.au.BrightGreen("New connections"), p.au.Blue(strconv.Itoa(m.NewConnections())))

	// asciigraph needs at least two points to draw a line
	durations := m.ExtractDurations()
	if len(durations) < 2 {
		return
	}
	opts := []asciigraph.Option{
		asciigraph.Height(10),
		asciigraph.Caption("request duration (ms)"),
	}
	if p.colors {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Blue))
	}
	fmt.Fprintln(p.out, asciigraph.Plot(durations, opts...))
}

// FormatDuration formats a duration in a more readable way
func FormatDuration(d time.Duration) string {
	durationStr := d.String()
	re := regexp.MustCompile(`([0-9\.]+)(\D+)`)
	matches := re.FindStringSubmatch(durationStr)

	if len(matches) < 3 {
		return durationStr
	}

	durationVal, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return durationStr
	}

	return fmt.Sprintf("%.2f%s", durationVal, matches[2])
}

// FormatSize formats a byte size in a human-readable way
func FormatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	} else if size < 1024*1024 {
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	} else if size < 1024*1024*1024 {
		return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
	}
	return fmt.Sprintf("%.2f GB", float64(size)/(1024*1024*1024))
}
