package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"apibench/compare"
	"apibench/network"
	"apibench/output"
)

// config is the target of every run
var config = network.DefaultConfig()

var (
	noColor   bool
	showGraph bool
	logFormat string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apibench",
	Short: "Compare REST and GraphQL access to the Rick and Morty API",
	Long: `apibench fetches character #1 and its episodes once through the
REST API and once through the GraphQL API, then prints the response
time, payload size and request count of each approach.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the driver logs its own failure
		cmd.SilenceErrors = true
		setupLog(logFormat, verbose)

		printer := output.NewPrinter(cmd.OutOrStdout(), !noColor)
		driver := compare.NewDriver(config, printer, log.Logger)
		driver.ShowGraph = showGraph

		return driver.Run(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(exitCode(rootCmd.ExecuteContext(context.Background())))
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func setupLog(format string, debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if strings.ToLower(format) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05", NoColor: noColor})
	}
}

func init() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&showGraph, "graph", false, "Print per-request timings and a duration graph")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every request")
}
