//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory record store for tests and
// embedded use.
package inmemory

import (
	"context"
	"errors"
	"sync"

	"github.com/docualign/docualign-go/evaluation/evalrecord"
)

// Manager implements evalrecord.Manager backed by a slice.
type Manager struct {
	mu      sync.Mutex
	records []*evalrecord.EvaluationRecord
}

// NewManager creates a new in-memory record manager.
func NewManager() *Manager {
	return &Manager{}
}

// Append appends a record.
func (m *Manager) Append(ctx context.Context, record *evalrecord.EvaluationRecord) error {
	_ = ctx
	if record == nil {
		return errors.New("record is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

// LoadAll returns every stored record in insertion order.
func (m *Manager) LoadAll(ctx context.Context) ([]*evalrecord.EvaluationRecord, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*evalrecord.EvaluationRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Recent returns the last limit records in insertion order.
func (m *Manager) Recent(ctx context.Context, limit int) ([]*evalrecord.EvaluationRecord, error) {
	_ = ctx
	if limit <= 0 {
		return []*evalrecord.EvaluationRecord{}, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	start := len(m.records) - limit
	if start < 0 {
		start = 0
	}
	out := make([]*evalrecord.EvaluationRecord, len(m.records)-start)
	copy(out, m.records[start:])
	return out, nil
}
