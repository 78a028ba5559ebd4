package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Class", "Runs", "Chars"}
	rows := [][]string{
		{"kanji", "12", "30"},
		{"hiragana", "3", "4"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Class    Runs Chars" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "kanji      12    30" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "hiragana    3     4" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideCells(t *testing.T) {
	lines := formatTable([]string{"Text", "N"}, [][]string{
		{"漢字", "1"},
		{"abc", "2"},
	}, map[int]bool{1: true})
	if lines[1] != "漢字 1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "abc  2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("吾輩は猫である", 8); got != "吾輩は…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncate("short\ntext", 20); got != "short text" {
		t.Fatalf("expected whitespace collapsed, got %q", got)
	}
}
