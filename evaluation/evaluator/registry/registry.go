//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package registry manages the registration and retrieval of criterion evaluators.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/evaluator/gapresolution"
	"github.com/docualign/docualign-go/evaluation/evaluator/style"
	"github.com/docualign/docualign-go/evaluation/evaluator/technical"
	"github.com/docualign/docualign-go/evaluation/evaluator/template"
)

// Registry defines the interface for the evaluator registry.
type Registry interface {
	// Register registers an evaluator to the registry.
	Register(name string, e evaluator.Evaluator) error
	// Get retrieves an evaluator by name.
	Get(name string) (evaluator.Evaluator, error)
	// List returns the names of all registered evaluators.
	List() []string
}

// registry is the default implementation of Registry.
type registry struct {
	mu         sync.RWMutex
	evaluators map[string]evaluator.Evaluator
}

// New creates a registry pre-populated with the built-in criterion evaluators.
func New() Registry {
	r := &registry{
		evaluators: make(map[string]evaluator.Evaluator),
	}
	for _, e := range []evaluator.Evaluator{
		technical.New(),
		style.New(),
		style.NewReduction(),
		template.New(),
		gapresolution.New(),
	} {
		r.Register(e.Name(), e)
	}
	return r
}

// Register registers an evaluator to the registry.
// An evaluator registered under an existing name overwrites it.
func (r *registry) Register(name string, e evaluator.Evaluator) error {
	if e == nil {
		return errors.New("evaluator is nil")
	}
	if name == "" {
		name = e.Name()
	}
	if name == "" {
		return errors.New("evaluator name is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluators[name] = e
	return nil
}

// Get gets an evaluator by name.
// Returns os.ErrNotExist if the evaluator is not found.
func (r *registry) Get(name string) (evaluator.Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.evaluators[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("get evaluator %s: %w", name, os.ErrNotExist)
}

// List returns the names of all registered evaluators sorted lexicographically.
func (r *registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.evaluators))
	for name := range r.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
