package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGridStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 0},
		{1, 0.2},
		{2, 0.5},
		{4, 1},
		{9, 2},
		{365, 100},
		{900, 200},
		{1500, 500},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, calculateGridStep(tt.max), 1e-9, "max %v", tt.max)
	}
}

func TestGenerateGrid(t *testing.T) {
	data := NewBarData("Revenue by Department", "Department", "Bill_Amount",
		[]string{"Cardiology", "ER", "OPD"}, []float64{365, 120, 80})

	ticks, maxY := data.generateGrid()

	assert.Equal(t, 400.0, maxY)
	require.Len(t, ticks, 5)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "400", ticks[4].Label)
}

func TestGenerateGridAllZero(t *testing.T) {
	data := NewBarData("Age Group Distribution", "Age Group", "Number of Patients",
		[]string{"Child", "Teen"}, []float64{0, 0})

	ticks, maxY := data.generateGrid()

	assert.Equal(t, 1.0, maxY)
	assert.NotEmpty(t, ticks)
}

func TestNewBarDataTruncatesToShorter(t *testing.T) {
	data := NewBarData("t", "x", "y", []string{"a", "b", "c"}, []float64{1, 2})

	assert.Equal(t, []string{"a", "b"}, data.GetXValues())
	assert.Equal(t, []float64{1, 2}, data.GetYValues())
}

func TestDrawPlotBar(t *testing.T) {
	data := NewBarData("Most Common Diagnoses", "Diagnosis", "Count",
		[]string{"Flu", "Cold", "Diabetes", "Hypertension"}, []float64{10, 7, 3, 3})

	b, err := DrawPlotBar(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), "not a PNG image")
}

func TestDrawPlotBarLongLabels(t *testing.T) {
	data := NewBarData("Patient Distribution by Region", "Region", "Patients",
		[]string{"North-Eastern Administrative District", "South"}, []float64{3, 0})

	b, err := DrawPlotBar(data)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestDrawPlotBarSVG(t *testing.T) {
	data := NewBarData("Revenue by Department", "Department", "Bill_Amount",
		[]string{"ER"}, []float64{300})

	b, err := DrawPlotBarSVG(data)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestDrawPlotBarEmpty(t *testing.T) {
	_, err := DrawPlotBar(NewBarData("Empty", "x", "y", nil, nil))
	assert.ErrorIs(t, err, ErrNoBars)
}

func TestDrawEChartsPage(t *testing.T) {
	var buf bytes.Buffer
	err := DrawEChartsPage(&buf,
		NewBarData("Revenue by Department", "Department", "Bill_Amount", []string{"ER"}, []float64{300}),
		NewBarData("Age Group Distribution", "Age Group", "Number of Patients", []string{"Child"}, []float64{1}),
	)
	require.NoError(t, err)

	page := buf.String()
	assert.Contains(t, page, "Revenue by Department")
	assert.Contains(t, page, "Age Group Distribution")
	assert.Contains(t, page, "echarts")
}
