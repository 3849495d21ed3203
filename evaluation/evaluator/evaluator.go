//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the criterion evaluator interface shared by the
// document quality scorers.
package evaluator

import (
	"context"

	"github.com/docualign/docualign-go/evaluation/status"
)

// Input carries the text blobs a criterion evaluator may inspect. Every
// field is plain UTF-8 text; any string is well formed.
type Input struct {
	// Original is the draft document before transformation.
	Original string
	// AnalysisReport is the free-text analysis produced upstream, scanned
	// only for gap indicator phrases.
	AnalysisReport string
	// Final is the transformed document under evaluation.
	Final string
}

// Result is the outcome of scoring one criterion.
type Result struct {
	// Score is the 1-5 criterion score.
	Score int `json:"score"`
	// Rate is the underlying ratio the score was mapped from (preservation,
	// compliance, reduction or resolution rate, in [0,1]).
	Rate float64 `json:"rate"`
	// Status is the pass/fail status derived from Score.
	Status status.EvalStatus `json:"status"`
	// Reason is a human-readable summary of the findings.
	Reason string `json:"reason,omitempty"`
	// Details carries criterion-specific findings.
	Details *Details `json:"details,omitempty"`
}

// Details carries criterion-specific findings for display and storage.
type Details struct {
	// Breakdown maps category names to violation or occurrence counts.
	Breakdown map[string]int `json:"breakdown,omitempty"`
	// Missing lists absent template marker names.
	Missing []string `json:"missing,omitempty"`
	// TokenDiffs lists technical tokens removed or added per category.
	TokenDiffs []TokenDiff `json:"tokenDiffs,omitempty"`
	// IdentifiedGaps lists gap types flagged by the analysis report.
	IdentifiedGaps []string `json:"identifiedGaps,omitempty"`
	// ResolvedGaps lists flagged gap types the final document resolves.
	ResolvedGaps []string `json:"resolvedGaps,omitempty"`
}

// TokenDiff records technical tokens of one category that changed between
// the original and the final document.
type TokenDiff struct {
	// Category is the technical token category name.
	Category string `json:"category"`
	// Removed lists tokens present in the original but not the final text.
	Removed []string `json:"removed,omitempty"`
	// Added lists tokens present in the final but not the original text.
	Added []string `json:"added,omitempty"`
}

// Evaluator scores one quality criterion of a document transformation.
// Implementations are pure functions of the input plus the pattern library
// and are safe for concurrent use.
type Evaluator interface {
	// Name returns the criterion identifier.
	Name() string
	// Description describes the criterion.
	Description() string
	// Evaluate scores the criterion for the given input.
	Evaluate(ctx context.Context, input *Input) (*Result, error)
}
