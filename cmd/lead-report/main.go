// Command lead-report prints the per-district lead report for the built-in
// illustrative sample records.
//
// Output format comes from --format, or LEAD_REPORT_FORMAT when the flag is
// not given (text, csv, xlsx or json). Logs go to stderr so stdout carries
// only the report.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"leadcli/internal/config"
	"leadcli/internal/dataset"
	"leadcli/internal/infrastructure"
	"leadcli/internal/report"
	"leadcli/internal/services"
	"leadcli/pkg/contracts"
)

// options holds command-line overrides applied on top of the loaded config.
type options struct {
	configFile string
	format     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, dataset.Embedded()).ExecuteContext(ctx); err != nil {
		slog.Error("Report failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer, source dataset.Source) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "lead-report",
		Short:         "Per-district average lead levels for fixed-width water sample records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdout, source, opts)
		},
	}

	root.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, csv, xlsx or json")
	root.Flags().StringVar(&opts.configFile, "config", "", "YAML config file (default $"+config.ConfigFileEnv+")")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(stdout, contracts.GetFullVersionString())
			return err
		},
	})

	return root
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configFile != "" {
		cfg, err = config.LoadFile(opts.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.format != "" {
		cfg.Report.Format = opts.format
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(ctx context.Context, stdout io.Writer, source dataset.Source, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	logger.DebugContext(ctx, "Starting report",
		slog.String("version", contracts.GetFullVersionString()),
		slog.String("format", cfg.Report.Format))

	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, contracts.Version, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer providers.Shutdown(context.WithoutCancel(ctx))

	svc, err := services.NewReportService(source, providers, logger)
	if err != nil {
		return err
	}

	r, err := svc.Generate(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, cfg.Report.Format, r); err != nil {
		return err
	}
	if _, err := buf.WriteTo(stdout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
