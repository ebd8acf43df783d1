package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// BarData describes one bar chart: category labels on x, values on y.
type BarData struct {
	xValues   []string
	yValues   []float64
	nameXAxis string
	nameYAxis string
	nameGraph string
}

func NewBarData(nameGraph, nameXAxis, nameYAxis string, xValues []string, y []float64) BarData {
	n := min(len(xValues), len(y))
	return BarData{
		xValues:   xValues[:n],
		yValues:   y[:n],
		nameXAxis: nameXAxis,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d BarData) GetNameGraph() string {
	return d.nameGraph
}
func (d BarData) GetNameXAxis() string {
	return d.nameXAxis
}
func (d BarData) GetNameYAxis() string {
	return d.nameYAxis
}
func (d BarData) GetXValues() []string {
	return d.xValues
}
func (d BarData) GetYValues() []float64 {
	return d.yValues
}

func (d BarData) lenXValues() int {
	return len(d.xValues)
}

func (d BarData) calculateChartDimensions(minBarWidth float64) (width, height int) {
	// Проверка входных параметров
	if d.lenXValues() <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if d.lenXValues() < 2 {
		x = 3.0
	} else if d.lenXValues() < 10 {
		x = 1.5
	}

	const (
		paddingY     = 100        // отступ для оси Y и подписей
		spacingRatio = 0.2        // отступ между столбцами относительно ширины столбца
		aspectRatio  = 9.0 / 16.0 // соотношение сторон по умолчанию
		minWidth     = 640
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = max(int(totalWidth*x)+paddingY, minWidth)
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d BarData) generateBarValues() []chart.Value {
	bars := make([]chart.Value, 0, d.lenXValues())
	for i, label := range d.xValues {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: label,
			Style: chart.Style{
				FillColor:   drawing.ColorBlue.WithAlpha(160),
				StrokeColor: drawing.ColorBlue,
				StrokeWidth: 1,
			},
		})
	}
	return bars
}

// generateGrid returns y ticks on a "nice" step and the top of the axis.
func (d BarData) generateGrid() ([]chart.Tick, float64) {
	maxValue := findMaxValue(d.yValues)
	if maxValue <= 0 {
		maxValue = 1
	}
	gridStep := calculateGridStep(maxValue)
	maxY := math.Ceil(maxValue/gridStep) * gridStep

	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := float64(i) * gridStep
		if v > maxY+gridStep/2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks, maxY
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
