/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Comcast/gesturenet/core"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteSink persists Events to a SQLite database, one row per Event.
// Modeled on roach88-nysm/brutalist/internal/store.Store: WAL mode
// for concurrent reads during writes, a single-writer connection pool
// (SQLite only ever allows one writer), and schema application on
// Open rather than a separate migration step — there's only one
// schema version here, so there's nothing to migrate yet.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLiteSink opens or creates a SQLite database at path and
// applies the events schema.
func OpenSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: connect sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Record inserts ev as a new row.
func (s *SQLiteSink) Record(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		at, err := time.Parse(time.RFC3339Nano, core.Timestamp())
		if err != nil {
			return fmt.Errorf("history: parse timestamp: %w", err)
		}
		ev.At = at
	}
	var payload []byte
	if ev.Payload != nil {
		var err error
		payload, err = json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("history: marshal payload: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (gesture, at, payload) VALUES (?, ?, ?)`,
		ev.Gesture, ev.At.UnixNano(), string(payload))
	return err
}

// Recent returns up to limit of the most recently recorded Events,
// newest first.
func (s *SQLiteSink) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT gesture, at, payload FROM events ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			ev      Event
			atNanos int64
			payload sql.NullString
		)
		if err := rows.Scan(&ev.Gesture, &atNanos, &payload); err != nil {
			return nil, err
		}
		ev.At = time.Unix(0, atNanos)
		if payload.Valid && payload.String != "" {
			if err := json.Unmarshal([]byte(payload.String), &ev.Payload); err != nil {
				return nil, fmt.Errorf("history: unmarshal payload: %w", err)
			}
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
