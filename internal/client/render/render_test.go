package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tweetstats/internal/client/metrics"
	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/client/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []metrics.ChartRecord{
	{Metric: "Followers", Value: 100},
	{Metric: "Following", Value: 50},
	{Metric: "Tweets", Value: 0},
}

func TestView_Branches(t *testing.T) {
	tests := []struct {
		name     string
		snap     view.Snapshot
		contains []string
		absent   []string
	}{
		{
			name:     "idle shows form only",
			snap:     view.Snapshot{State: view.Idle{}},
			contains: []string{Title, UsernamePrompt, "[Analyze]"},
			absent:   []string{LoadingText, ErrorText, NoDataText, "Performance Data"},
		},
		{
			name:     "loading",
			snap:     view.Snapshot{Username: "jack", Submitted: true, State: view.Loading{}},
			contains: []string{"jack", LoadingText},
			absent:   []string{ErrorText, NoDataText, "Performance Data"},
		},
		{
			name:     "failed",
			snap:     view.Snapshot{Username: "jack", Submitted: true, State: view.Failed{Err: errors.New("x")}},
			contains: []string{ErrorText},
			absent:   []string{LoadingText, NoDataText, "Performance Data"},
		},
		{
			name:     "loaded with records",
			snap:     view.Snapshot{Username: "jack", Submitted: true, State: view.Loaded{Records: sample}},
			contains: []string{Heading("jack"), "Followers: 100", "Following: 50", "Tweets: 0", string(pointMark)},
			absent:   []string{LoadingText, ErrorText, NoDataText},
		},
		{
			name:     "loaded without records",
			snap:     view.Snapshot{Username: "jack", Submitted: true, State: view.Loaded{}},
			contains: []string{NoDataText},
			absent:   []string{"Performance Data", ErrorText},
		},
		{
			name:     "display name and reversal",
			snap:     view.Snapshot{DisplayName: "Alice", State: view.Idle{}, ReverseInput: "hello", ReverseOutput: "olleh"},
			contains: []string{"Signed in as", "Alice", "Reversed:", "olleh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := View(tt.snap)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestLineChart_Shape(t *testing.T) {
	out := LineChart(sample, 5)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5+2, "rows, x axis, labels")
	assert.Equal(t, 3, strings.Count(out, string(pointMark)))
	assert.Contains(t, lines[0], "100")
	assert.Contains(t, lines[0], string(pointMark), "max value sits on the top row")
	assert.Contains(t, lines[4], string(pointMark), "zero sits on the bottom row")
	assert.Contains(t, lines[4], "0 │")

	labels := lines[len(lines)-1]
	assert.Less(t, strings.Index(labels, "Followers"), strings.Index(labels, "Following"))
	assert.Less(t, strings.Index(labels, "Following"), strings.Index(labels, "Tweets"))
}

func TestLineChart_EdgeCases(t *testing.T) {
	assert.Empty(t, LineChart(nil, 10))

	allZero := LineChart([]metrics.ChartRecord{{Metric: "A", Value: 0}, {Metric: "B", Value: 0}}, 3)
	assert.Equal(t, 2, strings.Count(allZero, string(pointMark)))

	single := LineChart([]metrics.ChartRecord{{Metric: "Only", Value: 42}}, 1)
	assert.Equal(t, 1, strings.Count(single, string(pointMark)))
	assert.Contains(t, single, "Only")
}

func TestValues(t *testing.T) {
	assert.Equal(t, "Followers: 100  Following: 50  Tweets: 0", Values(sample))
}

func TestChartPNG(t *testing.T) {
	b, err := ChartPNG(sample, Heading("jack"), 400, 300)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestChartPNG_SingleAndZeroRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []metrics.ChartRecord
	}{
		{name: "single zero", records: []metrics.ChartRecord{{Metric: "Tweets", Value: 0}}},
		{name: "single non-zero", records: []metrics.ChartRecord{{Metric: "Followers", Value: 5}}},
		{name: "two zeros", records: []metrics.ChartRecord{{Metric: "A", Value: 0}, {Metric: "B", Value: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ChartPNG(tt.records, "t", 300, 200)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(b))
			require.NoError(t, err)
			assert.Equal(t, 300, img.Bounds().Dx())
		})
	}

	_, err := ChartPNG(nil, "t", 300, 200)
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestNotification(t *testing.T) {
	assert.Contains(t, Notification(notify.LevelInfo, "Logged out"), "Logged out")
	assert.Contains(t, Notification(notify.LevelError, "Failed to fetch data"), "Failed to fetch data")
	assert.Contains(t, Error(errors.New("boom")), "error: boom")
}
