// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/tateisi/internal/readability"
)

// Output formats for scoring results.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Config defines scoring settings.
type Config struct {
	Text      string
	File      string
	Format    string
	Lines     bool
	ShowStats bool
	Save      bool
}

// HistoryConfig defines filters and options for history output.
type HistoryConfig struct {
	Source      string
	Since       *time.Time
	Last        int
	CurveWindow int
	Plot        bool
}

// ScoreRecord is a scored text as kept in the history database.
type ScoreRecord struct {
	ID       int64
	ScoredAt time.Time
	Source   string
	Text     string
	Stats    readability.Statistics
	ScoreA   float64
	ScoreB   float64
}

// NewScoreRecord builds a record from a scoring result.
func NewScoreRecord(res readability.Result, source string, at time.Time) ScoreRecord {
	return ScoreRecord{
		ScoredAt: at,
		Source:   source,
		Text:     res.Text,
		Stats:    res.Stats,
		ScoreA:   res.ScoreA,
		ScoreB:   res.ScoreB,
	}
}
