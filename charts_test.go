package main

import (
	"errors"
	"testing"

	"github.com/pivolan/healthcare_analyzer/domain/models"
	"github.com/pivolan/healthcare_analyzer/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCharts(t *testing.T) {
	in := &models.Insights{
		RevenueByDepartment: []models.GroupSum{{Group: "Cardiology", Sum: 900}, {Group: "ER", Sum: 300}},
		Diagnoses:           []models.ValueCount{{Value: "Flu", Count: 2}},
		Regions:             []models.ValueCount{{Value: "North", Count: 1}, {Value: "South", Count: 1}},
		AgeDistribution:     []models.ValueCount{{Value: "Child", Count: 1}, {Value: "Teen"}},
	}

	charts := BuildCharts(in)
	require.Len(t, charts, 4)

	assert.Equal(t, "Revenue by Department", charts[0].GetNameGraph())
	assert.Equal(t, "Department", charts[0].GetNameXAxis())
	assert.Equal(t, "Bill_Amount", charts[0].GetNameYAxis())
	assert.Equal(t, []string{"Cardiology", "ER"}, charts[0].GetXValues())
	assert.Equal(t, []float64{900, 300}, charts[0].GetYValues())

	assert.Equal(t, []float64{2}, charts[1].GetYValues())
	assert.Equal(t, "Region", charts[2].GetNameXAxis())
	assert.Equal(t, "Number of Patients", charts[3].GetNameYAxis())
	assert.Equal(t, []string{"Child", "Teen"}, charts[3].GetXValues())
}

type failingSink struct {
	closed bool
}

func (s *failingSink) Render(data plot.BarData) error {
	return errors.New("disk full")
}

func (s *failingSink) Close() error {
	s.closed = true
	return nil
}

func TestRenderChartsClosesSinkOnError(t *testing.T) {
	sink := &failingSink{}

	err := RenderCharts(sink, []plot.BarData{plot.NewBarData("A", "x", "y", []string{"a"}, []float64{1})})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, sink.closed)
}
