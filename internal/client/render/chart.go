package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tweetstats/internal/client/metrics"
	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	DefaultChartHeight = 10
	columnWidth        = 12

	pointMark = '●'
	lineMark  = '·'

	DefaultPNGWidth  = 800
	DefaultPNGHeight = 400
)

var ErrNoRecords = errors.New("no records to chart")

// LineChart draws records as a text line chart of the given height. Points
// sit in the middle of fixed-width columns and are joined by interpolated
// dots; the y axis starts at zero.
func LineChart(records []metrics.ChartRecord, height int) string {
	if len(records) == 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}

	maxValue := int64(0)
	for _, r := range records {
		maxValue = max(maxValue, r.Value)
	}

	width := len(records) * columnWidth
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	rowOf := func(v float64) int {
		if maxValue <= 0 {
			return height - 1
		}
		row := height - 1 - int(math.Round(v/float64(maxValue)*float64(height-1)))
		return min(max(row, 0), height-1)
	}
	centre := func(i int) int { return i*columnWidth + columnWidth/2 }

	for i := 0; i+1 < len(records); i++ {
		x0, x1 := centre(i), centre(i+1)
		y0, y1 := float64(records[i].Value), float64(records[i+1].Value)
		for x := x0 + 1; x < x1; x++ {
			t := float64(x-x0) / float64(x1-x0)
			grid[rowOf(y0+(y1-y0)*t)][x] = lineMark
		}
	}
	for i, r := range records {
		grid[rowOf(float64(r.Value))][centre(i)] = pointMark
	}

	top := strconv.FormatInt(maxValue, 10)
	margin := len(top)

	var b strings.Builder
	for i, row := range grid {
		label := ""
		switch i {
		case 0:
			label = top
		case height - 1:
			label = "0"
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s │", margin, label)))
		b.WriteString(pointStyle.Render(strings.TrimRight(string(row), " ")))
		b.WriteByte('\n')
	}

	b.WriteString(labelStyle.Render(strings.Repeat(" ", margin) + " └" + strings.Repeat("─", width)))
	b.WriteByte('\n')

	var axis strings.Builder
	for _, r := range records {
		axis.WriteString(fmt.Sprintf("%-*s", columnWidth, centreText(r.Metric, columnWidth)))
	}
	b.WriteString(strings.Repeat(" ", margin+2))
	b.WriteString(labelStyle.Render(strings.TrimRight(axis.String(), " ")))

	return b.String()
}

func centreText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// Values lists the records as "Metric: value" pairs on one line.
func Values(records []metrics.ChartRecord) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, labelStyle.Render(r.Metric+": ")+valueStyle.Render(strconv.FormatInt(r.Value, 10)))
	}
	return strings.Join(parts, "  ")
}

// ChartPNG renders records as a PNG line chart titled title.
func ChartPNG(records []metrics.ChartRecord, title string, width, height int) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	left, right := 0.5, float64(len(records))+0.5

	// go-chart takes the x range from the ticks, so blank ticks pin both
	// edges and a single record still spans a non-empty range.
	ticks := make([]chart.Tick, 0, len(records)+2)
	ticks = append(ticks, chart.Tick{Value: left})
	top := 0.0
	for i, r := range records {
		xs[i] = float64(i + 1)
		ys[i] = float64(r.Value)
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: r.Metric})
		top = math.Max(top, ys[i])
	}
	ticks = append(ticks, chart.Tick{Value: right})
	if top == 0 {
		top = 1
	}

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: left, Max: right},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Public metrics",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					StrokeColor: chart.ColorBlue,
					DotWidth:    5,
					DotColor:    chart.ColorBlue,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
