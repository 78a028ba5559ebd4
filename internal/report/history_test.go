package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tateisi/internal/model"
	"github.com/verte-zerg/tateisi/internal/readability"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected moving average: %v", got)
		}
	}
	same := MovingAverage([]float64{1, 5}, 0)
	if same[0] != 1 || same[1] != 5 {
		t.Fatalf("expected passthrough for window 0, got %v", same)
	}
}

func sampleRecords() []model.ScoreRecord {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	texts := []string{"僕は鰻だ！", "吾輩は猫である。名前はまだ無い。どこで生れたかとんと見当がつかぬ。"}
	records := make([]model.ScoreRecord, 0, len(texts))
	for i, text := range texts {
		rec := model.NewScoreRecord(readability.Score(text), "arg", at.Add(time.Duration(i)*time.Hour))
		rec.ID = int64(i + 1)
		records = append(records, rec)
	}
	return records
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHistory(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteHistory failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID Scored") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "2024-05-01 09:30") || !strings.Contains(lines[1], "-126.04") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "…") {
		t.Fatalf("expected long text to be truncated: %q", lines[2])
	}
}

func TestWriteHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHistory(&buf, nil); err != nil {
		t.Fatalf("WriteHistory failed: %v", err)
	}
	if buf.String() != "No saved scores found.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteSummaryAndTrend(t *testing.T) {
	var buf bytes.Buffer
	records := sampleRecords()
	if err := WriteSummary(&buf, records); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if err := WriteTrend(&buf, records, 2, 20); err != nil {
		t.Fatalf("WriteTrend failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Scores: 2", "Score Trend", "Score A: min=", "Score B: min="} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 5, 10}); got != " +@" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
