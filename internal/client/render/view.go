// Package render draws the client view: the form, the fetch status and the
// metrics chart, both as terminal text and as a PNG image.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/tweetstats/internal/client/notify"
	"github.com/dmitrijs2005/tweetstats/internal/client/view"
)

const (
	Title          = "Twitter Performance Analyzer"
	LoadingText    = "Loading..."
	ErrorText      = "Error fetching data"
	NoDataText     = "No data available"
	UsernamePrompt = "Enter Twitter username"
)

// Heading is the caption shown above the chart for username.
func Heading(username string) string {
	return "Performance Data for @" + username
}

// View renders s. The form line is always present; below it comes exactly
// one of: nothing (not submitted), the loading line, the error line, the
// chart, or the no-data line.
func View(s view.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(Title))
	b.WriteByte('\n')
	if s.DisplayName != "" {
		b.WriteString(labelStyle.Render("Signed in as ") + valueStyle.Render(s.DisplayName))
		b.WriteByte('\n')
	}
	b.WriteString(form(s.Username))
	b.WriteByte('\n')

	if body := status(s); body != "" {
		b.WriteByte('\n')
		b.WriteString(body)
		b.WriteByte('\n')
	}

	if s.ReverseInput != "" {
		b.WriteByte('\n')
		b.WriteString(labelStyle.Render("Reversed: ") + valueStyle.Render(s.ReverseOutput))
		b.WriteByte('\n')
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func form(username string) string {
	input := dimStyle.Render(UsernamePrompt)
	if username != "" {
		input = valueStyle.Render(username)
	}
	return labelStyle.Render("Username: ") + input + "  " + labelStyle.Render("[Analyze]")
}

func status(s view.Snapshot) string {
	switch st := s.State.(type) {
	case view.Loading:
		return loadingStyle.Render(LoadingText)
	case view.Failed:
		return errorStyle.Render(ErrorText)
	case view.Loaded:
		if s.Submitted && len(st.Records) > 0 {
			return lipgloss.JoinVertical(lipgloss.Left,
				headingStyle.Render(Heading(s.Username)),
				"",
				LineChart(st.Records, DefaultChartHeight),
				Values(st.Records),
			)
		}
	}

	if s.Submitted {
		return dimStyle.Render(NoDataText)
	}
	return ""
}

// Notification renders a single notification line.
func Notification(level notify.Level, msg string) string {
	if level == notify.LevelError {
		return errorStyle.Render("✗ " + msg)
	}
	return infoStyle.Render("• " + msg)
}

// Error renders a one-off error message from a command.
func Error(err error) string {
	return errorStyle.Render(fmt.Sprintf("error: %v", err))
}
