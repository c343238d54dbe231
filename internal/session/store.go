package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists sessions and judge run summaries in SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	number INTEGER PRIMARY KEY,
	monday INTEGER NOT NULL,
	sunday INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	session INTEGER NOT NULL,
	problem TEXT NOT NULL,
	member TEXT NOT NULL,
	passed INTEGER NOT NULL,
	failed INTEGER NOT NULL,
	ok INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_session ON runs(session, created_at);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).In(Zone())
}

// Open opens the SQLite session store and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Current returns the most recent session, or starts session 1 for the
// week containing now when the store is empty.
func (s *Store) Current(ctx context.Context, now time.Time) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT number, monday, sunday FROM sessions ORDER BY number DESC LIMIT 1`)
	var sess Session
	var monday, sunday int64
	err := row.Scan(&sess.Number, &monday, &sunday)
	if errors.Is(err, sql.ErrNoRows) {
		return s.start(ctx, 1, now)
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	sess.Monday = fromMillis(monday)
	sess.Sunday = fromMillis(sunday)
	return sess, nil
}

// Advance closes out the current session and starts the next one for the
// week containing now (the Monday-morning weekly reset).
func (s *Store) Advance(ctx context.Context, now time.Time) (Session, error) {
	cur, err := s.Current(ctx, now)
	if err != nil {
		return Session{}, err
	}
	return s.start(ctx, cur.Number+1, now)
}

func (s *Store) start(ctx context.Context, number int, now time.Time) (Session, error) {
	monday, sunday := Week(now)
	sess := Session{Number: number, Monday: monday, Sunday: sunday}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (number, monday, sunday) VALUES (?, ?, ?)`,
		sess.Number, toMillis(monday), toMillis(sunday))
	if err != nil {
		return Session{}, fmt.Errorf("start session %d: %w", number, err)
	}
	return sess, nil
}

// RunRecord is one persisted judge run summary.
type RunRecord struct {
	RunID     string
	Session   int
	Problem   string
	Member    string
	Passed    int
	Failed    int
	Ok        bool
	CreatedAt time.Time
}

// RecordRun stores a judge run summary against a session.
func (s *Store) RecordRun(ctx context.Context, rec RunRecord) error {
	if rec.RunID == "" {
		return fmt.Errorf("run id is required")
	}
	ok := 0
	if rec.Ok {
		ok = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, session, problem, member, passed, failed, ok, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Session, rec.Problem, rec.Member, rec.Passed, rec.Failed, ok,
		toMillis(rec.CreatedAt))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit run summaries for a session, newest first.
func (s *Store) RecentRuns(ctx context.Context, sessionNumber, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, session, problem, member, passed, failed, ok, created_at
		 FROM runs WHERE session = ? ORDER BY created_at DESC LIMIT ?`,
		sessionNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var ok int
		var created int64
		if err := rows.Scan(&rec.RunID, &rec.Session, &rec.Problem, &rec.Member,
			&rec.Passed, &rec.Failed, &ok, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Ok = ok == 1
		rec.CreatedAt = fromMillis(created)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
