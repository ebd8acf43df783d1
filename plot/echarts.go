package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func newEChartsBar(data BarData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: data.GetNameGraph(),
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: data.GetNameGraph()}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      data.GetNameXAxis(),
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: data.GetNameYAxis()}),
	)

	items := make([]opts.BarData, 0, data.lenXValues())
	for _, v := range data.GetYValues() {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(data.GetXValues()).AddSeries(data.GetNameYAxis(), items)
	return bar
}

// DrawEChartsPage writes one HTML page holding an interactive bar chart per data set.
func DrawEChartsPage(w io.Writer, data ...BarData) error {
	page := components.NewPage()
	for _, d := range data {
		if d.lenXValues() == 0 {
			return fmt.Errorf("%s: %w", d.GetNameGraph(), ErrNoBars)
		}
		page.AddCharts(newEChartsBar(d))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render echarts page: %w", err)
	}
	return nil
}
