package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pivolan/healthcare_analyzer/config"
	"github.com/pivolan/healthcare_analyzer/plot"
	uuid "github.com/satori/go.uuid"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	inputFile := flag.String("file", "", "Dataset file: .csv, .csv.gz, .zip, .lz4, .xlsx or .parquet (overrides DATASET_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if *inputFile != "" {
		cfg.DatasetPath = *inputFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runID := uuid.NewV4().String()
	slog.Info("Starting analysis",
		slog.String("run_id", runID),
		slog.String("dataset", cfg.DatasetPath),
		slog.String("chart_sink", cfg.ChartSink))

	sink, err := plot.NewSink(cfg.ChartSink, filepath.Join(cfg.ChartDir, runID))
	if err != nil {
		slog.Error("Failed to create chart sink", "error", err)
		return 1
	}

	if err := run(ctx, cfg.DatasetPath, os.Stdout, sink, cfg.Currency); err != nil {
		slog.Error("Analysis failed", "error", err)
		return 1
	}
	slog.Info("Analysis finished", slog.String("run_id", runID))
	return 0
}

// run executes load, clean, aggregate, report and plot in that order.
func run(ctx context.Context, path string, w io.Writer, sink plot.Sink, currency string) error {
	table, err := LoadTable(path)
	if err != nil {
		return err
	}
	slog.Info("Dataset loaded",
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))
	if err := ctx.Err(); err != nil {
		return err
	}

	cleaned, stats := Clean(table)
	slog.Info("Dataset cleaned",
		slog.Int("duplicates", stats.DuplicateRows),
		slog.Int("with_nulls", stats.NullRows),
		slog.Int("rows", stats.OutputRows))

	patients, err := BuildPatients(cleaned)
	if err != nil {
		return err
	}
	insights, err := Aggregate(patients)
	if err != nil {
		return err
	}
	insights.Cleaning = stats
	slog.Debug("Aggregates computed",
		slog.Float64("total_revenue", insights.Summary.TotalRevenue),
		slog.String("top_department", insights.Summary.TopDepartment))

	if err := WriteReport(w, insights, currency); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return RenderCharts(sink, BuildCharts(insights))
}
