package tui

import (
	"context"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tateisi/internal/model"
	"github.com/verte-zerg/tateisi/internal/readability"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type fakeSaver struct {
	records []model.ScoreRecord
}

func (f *fakeSaver) InsertScore(_ context.Context, rec model.ScoreRecord) (int64, error) {
	f.records = append(f.records, rec)
	return int64(len(f.records)), nil
}

func TestSegmentText(t *testing.T) {
	segs := segmentText("僕は鰻だ。abc")
	want := []segment{
		{readability.Kanji, "僕"},
		{readability.Hiragana, "は"},
		{readability.Kanji, "鰻"},
		{readability.Hiragana, "だ"},
		{readability.Kuten, "。"},
		{readability.Alphabet, "abc"},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segment %d: expected %+v, got %+v", i, want[i], segs[i])
		}
	}
}

func TestHighlightWraps(t *testing.T) {
	out := stripANSI(highlight("あいうえお かきくけこ", 12))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "あいうえお" || lines[1] != "かきくけこ" {
		t.Fatalf("unexpected wrap: %q", lines)
	}

	out = stripANSI(highlight("一二三四五六", 4))
	if out != "一二\n三四\n五六" {
		t.Fatalf("unexpected hard wrap: %q", out)
	}

	out = stripANSI(highlight("一行\n二行", 0))
	if out != "一行二行" {
		t.Fatalf("expected breaks dropped without width, got %q", out)
	}
}

func TestModelRescoresOnInput(t *testing.T) {
	m := NewModel(nil, "僕は鰻だ")
	before := m.result
	if before.Stats.Kuten() != 0 {
		t.Fatalf("expected no kuten initially")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("。")})
	if m.result.Stats.Kuten() != 1 {
		t.Fatalf("expected kuten after typing, got %d (text %q)", m.result.Stats.Kuten(), m.result.Text)
	}
	if !strings.Contains(stripANSI(m.renderScores()), "Score A: ") {
		t.Fatalf("expected scores line, got %q", m.renderScores())
	}
}

func TestModelSave(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(saver, "吾輩は猫である。")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	m.Update(cmd())
	if len(saver.records) != 1 {
		t.Fatalf("expected 1 saved record, got %d", len(saver.records))
	}
	if saver.records[0].Source != SourceInspect || saver.records[0].Text != "吾輩は猫である。" {
		t.Fatalf("unexpected record: %+v", saver.records[0])
	}
	if !strings.Contains(m.renderFooter(), "saved as #1") {
		t.Fatalf("expected save status in footer, got %q", m.renderFooter())
	}
}

func TestModelSaveDisabled(t *testing.T) {
	m := NewModel(nil, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatalf("expected no command without a saver")
	}
	if !strings.Contains(m.renderFooter(), "history is disabled") {
		t.Fatalf("unexpected footer: %q", m.renderFooter())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(nil, "今日は晴れ。")
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	view := stripANSI(m.View())
	for _, want := range []string{"## Tateisi et al Readability Score", "Score A:", "kanji", "esc quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
