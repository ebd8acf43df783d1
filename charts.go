package main

import (
	"errors"
	"fmt"

	"github.com/pivolan/healthcare_analyzer/domain/models"
	"github.com/pivolan/healthcare_analyzer/plot"
)

// BuildCharts describes the four summary charts in display order.
func BuildCharts(in *models.Insights) []plot.BarData {
	departments := make([]string, len(in.RevenueByDepartment))
	revenue := make([]float64, len(in.RevenueByDepartment))
	for i, g := range in.RevenueByDepartment {
		departments[i] = g.Group
		revenue[i] = g.Sum
	}

	return []plot.BarData{
		plot.NewBarData("Revenue by Department", "Department", "Bill_Amount", departments, revenue),
		countChart("Most Common Diagnoses", "Diagnosis", "Count", in.Diagnoses),
		countChart("Patient Distribution by Region", "Region", "Patients", in.Regions),
		countChart("Age Group Distribution", "Age Group", "Number of Patients", in.AgeDistribution),
	}
}

func countChart(title, xName, yName string, counts []models.ValueCount) plot.BarData {
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, vc := range counts {
		labels[i] = vc.Value
		values[i] = float64(vc.Count)
	}
	return plot.NewBarData(title, xName, yName, labels, values)
}

// RenderCharts sends every chart to the sink and closes it, even after a failure.
func RenderCharts(sink plot.Sink, charts []plot.BarData) error {
	var renderErr error
	for _, c := range charts {
		if err := sink.Render(c); err != nil {
			renderErr = fmt.Errorf("render %q: %w", c.GetNameGraph(), err)
			break
		}
	}
	if err := sink.Close(); err != nil {
		return errors.Join(renderErr, fmt.Errorf("close chart sink: %w", err))
	}
	return renderErr
}
