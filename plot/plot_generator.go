package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoBars = errors.New("chart has no bars")

const (
	barWidth      = 60
	barSpacing    = 20
	axisNameSpace = 40
)

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	// Обработка очень маленьких чисел
	if maxValue < 1e-10 {
		return 1e-10
	}

	// Находим порядок величины максимального значения
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))

	// Нормализуем значение к диапазону [1, 10)
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// Округляем большие шаги до "красивых" чисел
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}

	return finalStep
}

// DrawPlotBar renders data as a PNG bar chart.
func DrawPlotBar(data BarData) ([]byte, error) {
	return drawBar(data, chart.PNG)
}

// DrawPlotBarSVG renders data as an SVG bar chart.
func DrawPlotBarSVG(data BarData) ([]byte, error) {
	return drawBar(data, chart.SVG)
}

func drawBar(data BarData, rp chart.RendererProvider) ([]byte, error) {
	if data.lenXValues() == 0 {
		return nil, fmt.Errorf("%s: %w", data.GetNameGraph(), ErrNoBars)
	}

	barValues := data.generateBarValues()
	ticks, maxY := data.generateGrid()
	paddingX := customizePaddingXBottom(barValues) + axisNameSpace
	width, height := data.calculateChartDimensions(barWidth + barSpacing)

	xStyle := chart.Style{
		StrokeWidth: 2,
		StrokeColor: chart.ColorBlack,
		FontSize:    11,
	}
	if paddingX > 80+axisNameSpace {
		xStyle.TextRotationDegrees = 45
	}

	bar := chart.BarChart{
		Title: data.GetNameGraph(),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: paddingX,
			},
		},
		Width:      width,
		Height:     height + paddingX,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Bars:       barValues,
		XAxis:      xStyle,
		YAxis: chart.YAxis{
			Name: data.GetNameYAxis(),
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: maxY,
			},
			Ticks: ticks,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: chart.ColorBlack,
				FontSize:    11,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0}, // Пунктирная линия
			},
		},
		Elements: []chart.Renderable{
			axisName(data.GetNameXAxis(), width, height+paddingX),
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := bar.Render(rp, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart %q: %w", data.GetNameGraph(), err)
	}
	return buffer.Bytes(), nil
}

// axisName writes the x axis caption centered at the bottom of the image.
// BarChart has no x axis name of its own.
func axisName(name string, width, height int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if name == "" {
			return
		}
		font, err := chart.GetDefaultFont()
		if err != nil {
			return
		}
		r.ClearTextRotation()
		r.SetFont(font)
		r.SetFontSize(12)
		r.SetFontColor(chart.ColorBlack)
		box := r.MeasureText(name)
		r.Text(name, (width-box.Width())/2, height-12)
	}
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	maxValue := y[0]
	for _, v := range y {
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return count * 8
}
