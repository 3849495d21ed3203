//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides the append-only file record store: one JSON record
// per line, appended on every evaluation. Unreadable lines are skipped on
// load so that one corrupt row never hides the rest of the history.
package local

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/docualign/docualign-go/evaluation/evalrecord"
	"github.com/docualign/docualign-go/log"
)

// recordFileName is the fixed store location inside the base directory.
const recordFileName = "evaluations.jsonl"

// manager implements evalrecord.Manager using a local append-only file.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// NewManager creates a new local file record manager.
// Use evalrecord functional options to override the default directory.
func NewManager(opt ...evalrecord.Option) evalrecord.Manager {
	opts := evalrecord.NewOptions(opt...)
	return &manager{baseDir: opts.BaseDir}
}

// Append appends one record as a JSON line, creating the base directory
// and store file on first use.
func (m *manager) Append(ctx context.Context, record *evalrecord.EvaluationRecord) error {
	_ = ctx
	if record == nil {
		return errors.New("record is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return err
	}
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(m.recordPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadAll returns every stored record in insertion order. A missing store
// yields an empty slice.
func (m *manager) LoadAll(ctx context.Context) ([]*evalrecord.EvaluationRecord, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Recent returns the last limit records in insertion order.
func (m *manager) Recent(ctx context.Context, limit int) ([]*evalrecord.EvaluationRecord, error) {
	_ = ctx
	if limit <= 0 {
		return []*evalrecord.EvaluationRecord{}, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	records, err := m.load()
	if err != nil {
		return nil, err
	}
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (m *manager) recordPath() string {
	return filepath.Join(m.baseDir, recordFileName)
}

func (m *manager) load() ([]*evalrecord.EvaluationRecord, error) {
	f, err := os.Open(m.recordPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*evalrecord.EvaluationRecord{}, nil
		}
		return nil, err
	}
	defer f.Close()

	records := []*evalrecord.EvaluationRecord{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec evalrecord.EvaluationRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Warnf("skipping unreadable record at %s:%d: %v", m.recordPath(), lineNo, err)
			continue
		}
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
