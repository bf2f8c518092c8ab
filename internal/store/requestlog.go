package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Entry is one recorded LLM request/response pair.
type Entry struct {
	Seq          int64
	RequestID    string
	Timestamp    time.Time
	Purpose      string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures request log queries.
type QueryOpts struct {
	Limit   int    // max results, newest first (0 = 50)
	Purpose string // filter by purpose label ("" = all)
}

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = errors.New("request log entry not found")

// RequestLog records LLM traffic for diagnostics. Append must never be on
// the request's critical path for correctness; callers treat failures as
// warnings.
type RequestLog interface {
	// Append stores a new entry. The entry's Seq and Timestamp are
	// assigned by the database.
	Append(ctx context.Context, e Entry) error

	// List returns entries newest first, honoring QueryOpts.
	List(ctx context.Context, opts QueryOpts) ([]Entry, error)

	// Get returns the entry with the given sequence number.
	// Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, seq int64) (*Entry, error)
}

// sqlRequestLog implements RequestLog over the llm_requests table.
type sqlRequestLog struct {
	db *sql.DB
}

func (l *sqlRequestLog) Append(ctx context.Context, e Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx, `INSERT INTO llm_requests
		(request_id, timestamp, purpose, provider, model, input_tokens,
		 output_tokens, latency_ms, success, error_message, request_body,
		 response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestID, ts, e.Purpose, e.Provider, e.Model, e.InputTokens,
		e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage,
		e.RequestBody, e.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

const entryColumns = `seq, request_id, timestamp, purpose, provider, model,
	input_tokens, output_tokens, latency_ms, success, error_message,
	request_body, response_body`

func (l *sqlRequestLog) List(ctx context.Context, opts QueryOpts) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + entryColumns + ` FROM llm_requests`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limit)

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (l *sqlRequestLog) Get(ctx context.Context, seq int64) (*Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM llm_requests WHERE seq = ?`, seq)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	err := s.Scan(&e.Seq, &e.RequestID, &e.Timestamp, &e.Purpose, &e.Provider,
		&e.Model, &e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan llm request: %w", err)
	}
	return &e, nil
}
