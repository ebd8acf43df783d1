package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pivolan/healthcare_analyzer/domain/models"
)

const (
	insightsTitle = "===== Healthcare Data Insights ====="
	ageTitle      = "===== Age Group Distribution ====="
	billTitle     = "===== Bill Amount Statistics ====="
)

func newTableWriter() table.Writer {
	t := table.NewWriter()
	style := table.StyleDefault
	// keep column names as written, go-pretty upper-cases headers by default
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	return t
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// GenerateSummaryTable renders the one-row summary of the run.
func GenerateSummaryTable(s models.Summary, currency string) string {
	t := newTableWriter()
	t.AppendHeader(table.Row{
		fmt.Sprintf("Total Revenue (%s)", currency),
		"Most Common Diagnosis",
		"Top Department",
		"Top Region",
	})
	t.AppendRow(table.Row{formatAmount(s.TotalRevenue), s.MostCommonDiagnosis, s.TopDepartment, s.TopRegion})
	return t.Render()
}

// GenerateAgeGroupTable lists patients per age group.
func GenerateAgeGroupTable(distribution []models.ValueCount) string {
	t := newTableWriter()
	t.AppendHeader(table.Row{"Age Group", "Patients", "Share, %"})
	for _, vc := range distribution {
		t.AppendRow(table.Row{vc.Value, vc.Count, fmt.Sprintf("%.2f", vc.Percent)})
	}
	return t.Render()
}

// GenerateNumberStatsTable renders descriptive statistics, one measure per row.
func GenerateNumberStatsTable(stats *models.NumberStats) string {
	if stats == nil {
		return "no values"
	}
	t := newTableWriter()
	t.AppendHeader(table.Row{"Measure", "Value"})
	t.AppendRows([]table.Row{
		{"Count", stats.Count},
		{"Average", formatAmount(stats.Average)},
		{"Median", formatAmount(stats.Median)},
		{"Min", formatAmount(stats.Min)},
		{"Max", formatAmount(stats.Max)},
		{"Q1 (25%)", formatAmount(stats.Quantiles[0.25])},
		{"Q3 (75%)", formatAmount(stats.Quantiles[0.75])},
		{"99th percentile", formatAmount(stats.Quantiles[0.99])},
		{"IQR", formatAmount(stats.IQR)},
		{"Outliers", len(stats.Outliers)},
	})
	return t.Render()
}

// WriteReport prints the summary, the age group distribution and the bill
// amount statistics.
func WriteReport(w io.Writer, in *models.Insights, currency string) error {
	sections := []string{
		insightsTitle,
		GenerateSummaryTable(in.Summary, currency),
		"",
		ageTitle,
		GenerateAgeGroupTable(in.AgeDistribution),
		"",
		billTitle,
		GenerateNumberStatsTable(in.BillStats),
	}
	_, err := fmt.Fprintln(w, strings.Join(sections, "\n"))
	return err
}
