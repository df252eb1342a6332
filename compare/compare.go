// Package compare runs the REST and GraphQL measurements one after the
// other and reports the metrics of each pass.
package compare

import (
	"context"

	"github.com/rs/zerolog"

	"apibench/network"
	"apibench/output"
)

// Measurer performs one measurement pass
type Measurer func(ctx context.Context) (network.Metrics, error)

// Driver runs the REST measurement and then the GraphQL measurement
type Driver struct {
	Rest    Measurer
	GraphQL Measurer

	Printer *output.Printer
	Logger  zerolog.Logger

	// ShowGraph adds per-request timings and a duration graph to every section
	ShowGraph bool
}

// NewDriver creates a Driver that measures the endpoints described by cfg
func NewDriver(cfg network.Config, printer *output.Printer, logger zerolog.Logger) *Driver {
	return &Driver{
		Rest: func(ctx context.Context) (network.Metrics, error) {
			return network.MeasureRestAPI(ctx, cfg)
		},
		GraphQL: func(ctx context.Context) (network.Metrics, error) {
			return network.MeasureGraphQLAPI(ctx, cfg)
		},
		Printer: printer,
		Logger:  logger,
	}
}

// Run prints the banner and the report of each pass. A failing pass stops
// the run; its error is logged and returned and its section is not printed.
func (d *Driver) Run(ctx context.Context) error {
	d.Printer.PrintBanner()

	if err := d.measure(ctx, "REST API", d.Rest); err != nil {
		d.Logger.Error().Err(err).Msg("Error comparing APIs")
		return err
	}
	if err := d.measure(ctx, "GraphQL API", d.GraphQL); err != nil {
		d.Logger.Error().Err(err).Msg("Error comparing APIs")
		return err
	}

	return nil
}

func (d *Driver) measure(ctx context.Context, title string, measurer Measurer) error {
	d.Logger.Debug().Str("api", title).Msg("Starting measurement")

	metrics, err := measurer(ctx)
	if err != nil {
		return err
	}

	d.Printer.PrintMetrics(title, metrics)
	if d.ShowGraph {
		d.Printer.PrintRequestGraph(metrics)
	}
	return nil
}
