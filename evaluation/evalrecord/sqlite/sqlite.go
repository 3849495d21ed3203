//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package sqlite provides an embedded-database record store. Records are
// stored with typed columns for ordering and aggregate queries plus a JSON
// payload column, so schema revisions of the record shape never require a
// table migration.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/docualign/docualign-go/evaluation/evalrecord"
	"github.com/docualign/docualign-go/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	record_id     TEXT NOT NULL UNIQUE,
	created_at    TEXT NOT NULL,
	user_id       TEXT NOT NULL,
	overall_score REAL NOT NULL,
	overall_pass  INTEGER NOT NULL,
	record_json   TEXT NOT NULL
);
`

// Manager implements evalrecord.Manager on an embedded SQLite database.
type Manager struct {
	db *sql.DB
}

// NewManager opens (or creates) the database at dbPath and runs migrations.
func NewManager(dbPath string) (*Manager, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Manager{db: db}, nil
}

// Close closes the underlying database connection.
func (m *Manager) Close() error {
	return m.db.Close()
}

// Append inserts a record. Rows are never updated or deleted.
func (m *Manager) Append(ctx context.Context, record *evalrecord.EvaluationRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	pass := 0
	if record.OverallPass {
		pass = 1
	}
	_, err = m.db.ExecContext(ctx,
		`INSERT INTO evaluations (record_id, created_at, user_id, overall_score, overall_pass, record_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.RecordID,
		record.Timestamp.UTC().Format(time.RFC3339Nano),
		record.UserID,
		record.OverallScore,
		pass,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// LoadAll returns every stored record in insertion order.
func (m *Manager) LoadAll(ctx context.Context) ([]*evalrecord.EvaluationRecord, error) {
	return m.query(ctx, `SELECT record_json FROM evaluations ORDER BY seq`)
}

// Recent returns the last limit records in insertion order.
func (m *Manager) Recent(ctx context.Context, limit int) ([]*evalrecord.EvaluationRecord, error) {
	if limit <= 0 {
		return []*evalrecord.EvaluationRecord{}, nil
	}
	records, err := m.query(ctx,
		`SELECT record_json FROM (
			SELECT seq, record_json FROM evaluations ORDER BY seq DESC LIMIT ?
		) ORDER BY seq`, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (m *Manager) query(ctx context.Context, stmt string, args ...any) ([]*evalrecord.EvaluationRecord, error) {
	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []*evalrecord.EvaluationRecord{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec evalrecord.EvaluationRecord
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			log.Warnf("skipping unreadable record row: %v", err)
			continue
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
