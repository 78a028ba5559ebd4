package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/tateisi/internal/model"
)

const (
	historyTextWidth = 32
	sparkChars       = " .:-=+*#%@"
)

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// WriteHistory tabulates saved scores, oldest first.
func WriteHistory(w io.Writer, records []model.ScoreRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No saved scores found.")
		return err
	}
	headers := []string{"ID", "Scored", "Source", "Score A", "Score B", "Text"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.ScoredAt.Local().Format("2006-01-02 15:04"),
			rec.Source,
			fmt.Sprintf("%.2f", rec.ScoreA),
			fmt.Sprintf("%.2f", rec.ScoreB),
			truncate(rec.Text, historyTextWidth),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(last)))
		b.WriteByte(sparkChars[min(max(idx, 0), last)])
	}
	return b.String()
}

// WriteSummary prints count, mean scores and a Score B sparkline.
func WriteSummary(w io.Writer, records []model.ScoreRecord) error {
	if len(records) == 0 {
		return nil
	}
	var sumA, sumB float64
	b := make([]float64, len(records))
	for i, rec := range records {
		sumA += rec.ScoreA
		sumB += rec.ScoreB
		b[i] = rec.ScoreB
	}
	n := float64(len(records))
	_, err := fmt.Fprintf(w, "\nScores: %d  Avg A: %.2f  Avg B: %.2f  B: [%s]\n\n",
		len(records), sumA/n, sumB/n, Sparkline(b))
	return err
}

// WriteTrend plots smoothed Score A and Score B over the records.
func WriteTrend(w io.Writer, records []model.ScoreRecord, window, width int) error {
	if len(records) == 0 {
		return nil
	}
	a := make([]float64, len(records))
	b := make([]float64, len(records))
	for i, rec := range records {
		a[i] = rec.ScoreA
		b[i] = rec.ScoreB
	}
	return PlotSeries(w, "Score Trend", []Series{
		{Name: "Score A", Values: MovingAverage(a, window)},
		{Name: "Score B", Values: MovingAverage(b, window)},
	}, width, 0)
}
