package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jjsiesto/fine3300-a2/pkg/format"
	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	chart "github.com/wcharczuk/go-chart/v2"
)

// NamedSeries pairs a payment scheme's display name with its
// ending-balance-per-period samples.
type NamedSeries struct {
	Name   string
	Points []mortgage.BalancePoint
}

// RenderBalanceDecline renders the balance-decline-over-time line chart
// for all schemes as a PNG to w.
func RenderBalanceDecline(w io.Writer, series []NamedSeries) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for _, s := range series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, point := range s.Points {
			xs[i] = float64(point.Period)
			ys[i] = point.Balance
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Title:  "Loan Balance Decline Over Time by Payment Scheme",
		Width:  1000,
		Height: 600,
		XAxis: chart.XAxis{
			Name: "Payment Periods",
		},
		YAxis: chart.YAxis{
			Name: "Loan Balance ($)",
			ValueFormatter: func(v interface{}) string {
				if value, ok := v.(float64); ok {
					return format.WholeCurrency(value)
				}
				return ""
			},
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	return graph.Render(chart.PNG, w)
}

// WriteBalanceDecline renders the balance decline chart to a PNG file
// at path.
func WriteBalanceDecline(path string, series []NamedSeries) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return RenderBalanceDecline(file, series)
}
