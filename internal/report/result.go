// Package report renders readability results, statistics and history.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tateisi/internal/readability"
)

// Heading is printed above text-format results.
const Heading = "## Tateisi et al Readability Score"

// FormatScore renders v in its shortest round-trip form, keeping a trailing
// ".0" on integral values and switching to exponent form outside [1e-4, 1e16).
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteResult prints the heading, the quoted text and both scores.
func WriteResult(w io.Writer, res readability.Result) error {
	if _, err := fmt.Fprintln(w, Heading); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Text: \"%s\"\n", res.Text); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score A: %s\n", FormatScore(res.ScoreA)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score B: %s\n", FormatScore(res.ScoreB)); err != nil {
		return err
	}
	return nil
}

// WriteStatistics prints per-class run statistics followed by the
// punctuation-derived values.
func WriteStatistics(w io.Writer, s readability.Statistics) error {
	headers := []string{"Class", "Runs", "Chars", "Share %", "Mean run"}
	rows := make([][]string, 0, 4)
	for _, class := range readability.LetterClasses() {
		rows = append(rows, []string{
			class.String(),
			strconv.Itoa(s.RunCount(class)),
			strconv.Itoa(s.CharCount(class)),
			fmt.Sprintf("%.2f", s.RunShare(class)),
			fmt.Sprintf("%.2f", s.MeanRunLength(class)),
		})
	}
	lines := formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})
	lines = append(lines,
		"",
		fmt.Sprintf("Kuten: %d  Toten: %d", s.Kuten(), s.Toten()),
		fmt.Sprintf("Toten/kuten (cp): %.4f", s.CP),
		fmt.Sprintf("Letters per sentence (ls): %.4f", s.LS),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Document is the structured form of a result used by JSON and TOML output.
type Document struct {
	Text   string             `json:"text" toml:"text"`
	ScoreA float64            `json:"score_a" toml:"score_a"`
	ScoreB float64            `json:"score_b" toml:"score_b"`
	Stats  StatisticsDocument `json:"statistics" toml:"statistics"`
}

// StatisticsDocument mirrors readability.Statistics with stable field names.
type StatisticsDocument struct {
	Runs  map[string]int `json:"runs" toml:"runs"`
	Chars map[string]int `json:"chars" toml:"chars"`
	Kuten int            `json:"kuten" toml:"kuten"`
	Toten int            `json:"toten" toml:"toten"`
	PA    float64        `json:"pa" toml:"pa"`
	PH    float64        `json:"ph" toml:"ph"`
	PC    float64        `json:"pc" toml:"pc"`
	PK    float64        `json:"pk" toml:"pk"`
	LA    float64        `json:"la" toml:"la"`
	LH    float64        `json:"lh" toml:"lh"`
	LC    float64        `json:"lc" toml:"lc"`
	LK    float64        `json:"lk" toml:"lk"`
	CP    float64        `json:"cp" toml:"cp"`
	LS    float64        `json:"ls" toml:"ls"`
}

// NewDocument converts a result into its structured form.
func NewDocument(res readability.Result) Document {
	s := res.Stats
	runs := make(map[string]int, 4)
	chars := make(map[string]int, 4)
	for _, class := range readability.LetterClasses() {
		runs[class.String()] = s.RunCount(class)
		chars[class.String()] = s.CharCount(class)
	}
	return Document{
		Text:   res.Text,
		ScoreA: res.ScoreA,
		ScoreB: res.ScoreB,
		Stats: StatisticsDocument{
			Runs:  runs,
			Chars: chars,
			Kuten: s.Kuten(),
			Toten: s.Toten(),
			PA:    s.PA,
			PH:    s.PH,
			PC:    s.PC,
			PK:    s.PK,
			LA:    s.LA,
			LH:    s.LH,
			LC:    s.LC,
			LK:    s.LK,
			CP:    s.CP,
			LS:    s.LS,
		},
	}
}

// WriteJSON encodes results as an indented JSON array.
func WriteJSON(w io.Writer, results []readability.Result) error {
	docs := make([]Document, 0, len(results))
	for _, res := range results {
		docs = append(docs, NewDocument(res))
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// WriteTOML encodes results as an array of [[result]] tables.
func WriteTOML(w io.Writer, results []readability.Result) error {
	wrapper := struct {
		Results []Document `toml:"result"`
	}{}
	for _, res := range results {
		wrapper.Results = append(wrapper.Results, NewDocument(res))
	}
	if err := toml.NewEncoder(w).Encode(wrapper); err != nil {
		return fmt.Errorf("failed to encode toml: %w", err)
	}
	return nil
}
