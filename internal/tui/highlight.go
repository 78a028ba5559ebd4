package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tateisi/internal/readability"
)

var classStyles = map[readability.Class]lipgloss.Style{
	readability.Alphabet: lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB2F0")),
	readability.Hiragana: lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	readability.Katakana: lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
	readability.Kanji:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	readability.Kuten:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")).Bold(true),
	readability.Toten:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")),
	readability.Other:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
}

// segment is a stretch of consecutive runes sharing one class.
type segment struct {
	class readability.Class
	text  string
}

// segmentText groups text into same-class segments. Unlike run counting,
// every class starts a new segment so punctuation shows up on its own.
func segmentText(text string) []segment {
	var out []segment
	var b strings.Builder
	current := readability.Class(-1)
	for _, r := range text {
		class := readability.ClassOf(r)
		if class != current && b.Len() > 0 {
			out = append(out, segment{class: current, text: b.String()})
			b.Reset()
		}
		current = class
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		out = append(out, segment{class: current, text: b.String()})
	}
	return out
}

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

func buildStyledRunes(text string) []styledRune {
	var out []styledRune
	for _, seg := range segmentText(text) {
		style := classStyles[seg.class]
		for _, r := range seg.text {
			if r == '\n' {
				out = append(out, styledRune{isBreak: true})
				continue
			}
			out = append(out, styledRune{
				s:       style.Render(string(r)),
				width:   runewidth.RuneWidth(r),
				isSpace: r == ' ',
			})
		}
	}
	return out
}

// highlight colours text by character class and wraps it to width cells,
// preferring to break at spaces.
func highlight(text string, width int) string {
	runes := buildStyledRunes(text)
	if width <= 0 {
		return renderLine(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpace := -1
	flush := func(upTo int) {
		out.WriteString(renderLine(line[:upTo]))
		out.WriteRune('\n')
	}
	for i := 0; i < len(runes); {
		item := runes[i]
		if item.isBreak {
			flush(len(line))
			line, lineWidth, lastSpace = line[:0], 0, -1
			i++
			continue
		}
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				flush(lastSpace)
				line = append([]styledRune{}, line[lastSpace+1:]...)
			} else {
				flush(len(line))
				line = line[:0]
			}
			lineWidth, lastSpace = 0, -1
			for j, r := range line {
				lineWidth += r.width
				if r.isSpace {
					lastSpace = j
				}
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	out.WriteString(renderLine(line))
	return out.String()
}

func renderLine(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func legend() string {
	parts := make([]string, 0, 4)
	for _, class := range readability.LetterClasses() {
		parts = append(parts, classStyles[class].Render(class.String()))
	}
	return strings.Join(parts, " ")
}
