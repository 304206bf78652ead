package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	chartusecase "stock_watchlist/internal/feature/chart/usecase"
	"stock_watchlist/internal/feature/quotes/domain/entity"
	watchlistusecase "stock_watchlist/internal/feature/watchlist/usecase"
)

// DefaultChartHeight is the number of price rows in a rendered chart.
const DefaultChartHeight = 12

const chartColWidth = 2

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED"))

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	selectedStyle = lipgloss.NewStyle().
		Bold(true)

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	downStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444"))

	flatStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	captionStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#6B7280"))

	lineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))
)

func directionStyle(d entity.Direction) lipgloss.Style {
	switch d {
	case entity.Up:
		return upStyle
	case entity.Down:
		return downStyle
	default:
		return flatStyle
	}
}

// FormatQuoteLine renders one watchlist row. selected marks the row shown in detail.
func FormatQuoteLine(q entity.Quote, selected bool) string {
	marker := "  "
	symbol := fmt.Sprintf("%-6s", q.Symbol)
	if selected {
		marker = "▸ "
		symbol = selectedStyle.Render(symbol)
	}
	change := fmt.Sprintf("%s (%s)", entity.FormatChange(q.Change), entity.FormatChangePercent(q.ChangePercent))
	return fmt.Sprintf("%s%s  %-28s %10s  %s",
		marker, symbol, truncate(q.CompanyName, 28), fmt.Sprintf("$%.2f", q.Price),
		directionStyle(q.Direction()).Render(change))
}

// RenderWatchlist writes the manager state as a table.
func RenderWatchlist(w io.Writer, s watchlistusecase.State, selected string) {
	fmt.Fprintln(w, titleStyle.Render("Watchlist"))
	if s.Error != "" {
		fmt.Fprintln(w, errorStyle.Render(s.Error))
	}
	if len(s.Quotes) == 0 {
		fmt.Fprintln(w, flatStyle.Render("No stocks in your watchlist."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("  %-6s  %-28s %10s  %s", "SYMBOL", "COMPANY", "PRICE", "CHANGE")))
	for _, q := range s.Quotes {
		fmt.Fprintln(w, FormatQuoteLine(q, q.Symbol == selected))
	}
	for _, f := range s.Failures {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  %s: %s", f.Symbol, f.Reason)))
	}
}

// RenderSearchResults writes search results, one per line. found is the
// number of matches before tracked symbols were filtered out.
func RenderSearchResults(w io.Writer, found int, results []entity.SearchResult) {
	switch {
	case found == 0:
		fmt.Fprintln(w, flatStyle.Render("No stocks found"))
		return
	case len(results) == 0:
		fmt.Fprintln(w, flatStyle.Render("All stocks already added"))
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s  %s\n", selectedStyle.Render(fmt.Sprintf("%-6s", r.Symbol)), r.Name)
	}
}

// RenderChart draws c as a text chart of height price rows with the
// thinned time labels underneath.
func RenderChart(c chartusecase.Chart, height int) string {
	if height < 2 {
		height = 2
	}
	width := len(c.Points) * chartColWidth

	rows := make([][]rune, height)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", width))
	}
	span := c.YMax - c.YMin
	for i, p := range c.Points {
		r := 0
		if span > 0 {
			r = int(math.Round((c.YMax - p.Price) / span * float64(height-1)))
		}
		r = max(0, min(height-1, r))
		rows[r][i*chartColWidth] = '●'
	}

	axis := make([]string, height)
	axisWidth := 0
	for r := range axis {
		v := c.YMax - span*float64(r)/float64(height-1)
		axis[r] = fmt.Sprintf("%.2f", v)
		axisWidth = max(axisWidth, len(axis[r]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", c.Symbol, c.Period.Label())))
	b.WriteByte('\n')
	for r, row := range rows {
		fmt.Fprintf(&b, "%*s │%s\n", axisWidth, axis[r], lineStyle.Render(strings.TrimRight(string(row), " ")))
	}
	fmt.Fprintf(&b, "%*s └%s\n", axisWidth, "", strings.Repeat("─", width))
	fmt.Fprintf(&b, "%*s  %s\n", axisWidth, "", strings.TrimRight(placeLabels(c, width), " "))
	b.WriteString(captionStyle.Render(c.Caption))
	b.WriteByte('\n')
	return b.String()
}

// placeLabels positions each shown label under its point, dropping a
// label that would run into the previous one.
func placeLabels(c chartusecase.Chart, width int) string {
	line := []rune(strings.Repeat(" ", width+8))
	every := c.Interval + 1
	next := 0
	for k, label := range c.Labels {
		col := k * every * chartColWidth
		text := []rune(label)
		if col < next || col+len(text) > len(line) {
			continue
		}
		copy(line[col:], text)
		next = col + len(text) + 1
	}
	return string(line)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
