//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package evalrecord provides the evaluation record model and the record
// store interface.
package evalrecord

import (
	"context"
	"time"
)

// AnonymousUserID is the sentinel user for evaluations without a caller
// supplied identity.
const AnonymousUserID = "anonymous"

// EvaluationRecord is one immutable row per evaluated document
// transformation. Criterion fields are pointers: nil means the criterion
// was not computed under the record's profile (or predates it), and readers
// must treat it as not passed rather than erroring.
type EvaluationRecord struct {
	// RecordID uniquely identifies this record.
	RecordID string `json:"recordId"`
	// Timestamp is the UTC evaluation time.
	Timestamp time.Time `json:"timestamp"`
	// UserID identifies the caller, AnonymousUserID by default.
	UserID string `json:"userId"`
	// Profile names the scoring profile that produced this record.
	Profile string `json:"profile,omitempty"`
	// OriginalWordCount is the whitespace word count of the original text.
	OriginalWordCount int `json:"originalWordCount"`
	// FinalWordCount is the whitespace word count of the final text.
	FinalWordCount int `json:"finalWordCount"`
	// Technical is the technical preservation result.
	Technical *CriterionResult `json:"technical,omitempty"`
	// Style is the absolute style compliance result.
	Style *CriterionResult `json:"style,omitempty"`
	// StyleReduction is the violation-reduction result.
	StyleReduction *CriterionResult `json:"styleReduction,omitempty"`
	// Template is the template compliance result.
	Template *CriterionResult `json:"template,omitempty"`
	// GapResolution is the gap resolution result.
	GapResolution *CriterionResult `json:"gapResolution,omitempty"`
	// OverallScore is the unweighted mean of the present criterion scores.
	OverallScore float64 `json:"overallScore"`
	// OverallPass is the AND of the present criterion passes.
	OverallPass bool `json:"overallPass"`
}

// CriterionResult is the stored outcome of one criterion.
type CriterionResult struct {
	// Score is the 1-5 criterion score.
	Score int `json:"score"`
	// Pass is derived from Score at evaluation time; it is stored for
	// tabular export but always recomputable as Score >= 4.
	Pass bool `json:"pass"`
	// Rate is the underlying ratio in [0,1].
	Rate float64 `json:"rate"`
	// Summary is a human-readable account of the findings.
	Summary string `json:"summary,omitempty"`
	// Breakdown maps category names to counts (e.g. remaining violations).
	Breakdown map[string]int `json:"breakdown,omitempty"`
	// Missing lists absent template marker names.
	Missing []string `json:"missing,omitempty"`
}

// Criteria returns the non-nil criterion results in a fixed order.
func (r *EvaluationRecord) Criteria() []*CriterionResult {
	var out []*CriterionResult
	for _, c := range []*CriterionResult{
		r.Technical, r.Style, r.StyleReduction, r.Template, r.GapResolution,
	} {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Manager defines the record store: an insertion-ordered, append-only
// sequence of evaluation records.
type Manager interface {
	// Append durably appends a record. Records are never edited or deleted.
	Append(ctx context.Context, record *EvaluationRecord) error
	// LoadAll returns every stored record in insertion order. A missing
	// store yields an empty slice, not an error.
	LoadAll(ctx context.Context) ([]*EvaluationRecord, error)
	// Recent returns the last limit records in insertion order.
	Recent(ctx context.Context, limit int) ([]*EvaluationRecord, error)
}
