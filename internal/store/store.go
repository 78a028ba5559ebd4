// Package store handles SQLite persistence of scored texts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tateisi/internal/model"
	"github.com/verte-zerg/tateisi/internal/readability"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a score record does not exist.
var ErrNotFound = errors.New("score not found")

// Store wraps SQLite access for score history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			scored_at TEXT NOT NULL,
			source TEXT NOT NULL,
			text TEXT NOT NULL,
			alphabet_runs INTEGER NOT NULL,
			hiragana_runs INTEGER NOT NULL,
			katakana_runs INTEGER NOT NULL,
			kanji_runs INTEGER NOT NULL,
			alphabet_chars INTEGER NOT NULL,
			hiragana_chars INTEGER NOT NULL,
			katakana_chars INTEGER NOT NULL,
			kanji_chars INTEGER NOT NULL,
			kuten INTEGER NOT NULL,
			toten INTEGER NOT NULL,
			score_a REAL NOT NULL,
			score_b REAL NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_scored_at ON scores(scored_at);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_source ON scores(source);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

const selectColumns = `id, scored_at, source, text,
	alphabet_runs, hiragana_runs, katakana_runs, kanji_runs,
	alphabet_chars, hiragana_chars, katakana_chars, kanji_chars,
	kuten, toten, score_a, score_b`

// InsertScore stores a scored text and returns its id.
func (s *Store) InsertScore(ctx context.Context, rec model.ScoreRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	c := rec.Stats.Counts()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO scores (scored_at, source, text,
			alphabet_runs, hiragana_runs, katakana_runs, kanji_runs,
			alphabet_chars, hiragana_chars, katakana_chars, kanji_chars,
			kuten, toten, score_a, score_b)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ScoredAt.UTC().Format(time.RFC3339Nano),
		rec.Source,
		rec.Text,
		c.Runs[readability.Alphabet],
		c.Runs[readability.Hiragana],
		c.Runs[readability.Katakana],
		c.Runs[readability.Kanji],
		c.Chars[readability.Alphabet],
		c.Chars[readability.Hiragana],
		c.Chars[readability.Katakana],
		c.Chars[readability.Kanji],
		c.Kuten,
		c.Toten,
		rec.ScoreA,
		rec.ScoreB,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetScore returns the record with the given id.
func (s *Store) GetScore(ctx context.Context, id int64) (model.ScoreRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM scores WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ScoreRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return rec, err
}

// ListScores returns records filtered by the history config, oldest first.
func (s *Store) ListScores(ctx context.Context, cfg model.HistoryConfig) ([]model.ScoreRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, cfg.Source)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "scored_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT %s
		FROM scores
		WHERE %s
		ORDER BY scored_at ASC, id ASC`, selectColumns, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ScoreRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (model.ScoreRecord, error) {
	var rec model.ScoreRecord
	var scoredAt string
	var c readability.Counts
	err := row.Scan(
		&rec.ID, &scoredAt, &rec.Source, &rec.Text,
		&c.Runs[readability.Alphabet], &c.Runs[readability.Hiragana],
		&c.Runs[readability.Katakana], &c.Runs[readability.Kanji],
		&c.Chars[readability.Alphabet], &c.Chars[readability.Hiragana],
		&c.Chars[readability.Katakana], &c.Chars[readability.Kanji],
		&c.Kuten, &c.Toten, &rec.ScoreA, &rec.ScoreB,
	)
	if err != nil {
		return model.ScoreRecord{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, scoredAt)
	if err != nil {
		return model.ScoreRecord{}, err
	}
	rec.ScoredAt = parsed
	rec.Stats = readability.FromCounts(c)
	return rec, nil
}
