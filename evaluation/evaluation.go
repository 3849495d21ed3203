//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation orchestrates document quality evaluations and
// aggregates their results into durable records.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/docualign/docualign-go/evaluation/evalrecord"
	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/pattern"
	"github.com/docualign/docualign-go/evaluation/status"
	"github.com/docualign/docualign-go/evaluation/telemetry"
	"github.com/docualign/docualign-go/log"
)

// Profile selects which criteria an evaluation computes.
type Profile string

const (
	// ProfileHHH is the default profile: technical preservation, absolute
	// style compliance and gap resolution.
	ProfileHHH Profile = "hhh"
	// ProfileTemplate is the alternate profile: technical preservation,
	// template compliance, style violation reduction and gap resolution.
	ProfileTemplate Profile = "template"
)

// Request carries one document transformation to evaluate.
type Request struct {
	// Original is the draft document before transformation.
	Original string
	// AnalysisReport is the upstream analysis text scanned for gap
	// indicator phrases.
	AnalysisReport string
	// Final is the transformed document.
	Final string
	// UserID identifies the caller; empty means anonymous.
	UserID string
}

// DocumentEvaluator scores document transformations and answers queries
// over the stored evaluation history.
type DocumentEvaluator interface {
	// Evaluate scores a document transformation, appends the record to the
	// store and returns it. A persistence failure is logged, never fatal:
	// the computed record is always returned.
	Evaluate(ctx context.Context, req *Request) (*evalrecord.EvaluationRecord, error)
	// Recent returns the last limit records in insertion order. A broken
	// or missing store degrades to an empty slice.
	Recent(ctx context.Context, limit int) []*evalrecord.EvaluationRecord
	// Summary returns rolling statistics over all stored records. A broken
	// or missing store degrades to a zeroed summary.
	Summary(ctx context.Context) *evalrecord.Summary
	// Close releases the record store when it owns closable resources.
	Close() error
}

// New creates a DocumentEvaluator with the supplied options.
func New(opt ...Option) (DocumentEvaluator, error) {
	opts := newOptions(opt...)
	e := &documentEvaluator{
		profile:       opts.profile,
		registry:      opts.registry,
		recordManager: opts.recordManager,
	}
	if _, ok := profileCriteria[e.profile]; !ok {
		return nil, fmt.Errorf("unknown profile %q", e.profile)
	}
	if e.registry == nil {
		return nil, errors.New("registry is nil")
	}
	if e.recordManager == nil {
		return nil, errors.New("record manager is nil")
	}
	return e, nil
}

// profileCriteria lists the criterion evaluators each profile runs.
var profileCriteria = map[Profile][]string{
	ProfileHHH: {
		evaluator.NameTechnicalPreservation,
		evaluator.NameStyleCompliance,
		evaluator.NameGapResolution,
	},
	ProfileTemplate: {
		evaluator.NameTechnicalPreservation,
		evaluator.NameTemplateCompliance,
		evaluator.NameStyleReduction,
		evaluator.NameGapResolution,
	},
}

// documentEvaluator is the default implementation of DocumentEvaluator.
type documentEvaluator struct {
	profile       Profile
	registry      Registry
	recordManager evalrecord.Manager
}

// Registry resolves criterion evaluators by name.
type Registry interface {
	Get(name string) (evaluator.Evaluator, error)
}

// Evaluate runs the active profile's criteria over the request, derives the
// overall verdict and appends the record to the store.
func (e *documentEvaluator) Evaluate(ctx context.Context, req *Request) (*evalrecord.EvaluationRecord, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input := &evaluator.Input{
		Original:       req.Original,
		AnalysisReport: req.AnalysisReport,
		Final:          req.Final,
	}
	record := &evalrecord.EvaluationRecord{
		RecordID:          uuid.New().String(),
		Timestamp:         time.Now().UTC(),
		UserID:            req.UserID,
		Profile:           string(e.profile),
		OriginalWordCount: pattern.CountWords(req.Original),
		FinalWordCount:    pattern.CountWords(req.Final),
	}
	if record.UserID == "" {
		record.UserID = evalrecord.AnonymousUserID
	}

	scoreSum := 0
	overallPass := true
	criteria := profileCriteria[e.profile]
	for _, name := range criteria {
		ev, err := e.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("resolve evaluator %s: %w", name, err)
		}
		res, err := ev.Evaluate(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", name, err)
		}
		setCriterion(record, name, criterionFromResult(res))
		scoreSum += res.Score
		overallPass = overallPass && res.Status == status.EvalStatusPassed
	}
	record.OverallScore = float64(scoreSum) / float64(len(criteria))
	record.OverallPass = overallPass

	if err := e.recordManager.Append(ctx, record); err != nil {
		// The caller still gets the computed record; only history suffers.
		log.Errorf("append evaluation record %s: %v", record.RecordID, err)
	}
	telemetry.RecordEvaluation(ctx, string(e.profile), record.OverallPass, record.OverallScore)
	return record, nil
}

// Recent returns the last limit records in insertion order.
func (e *documentEvaluator) Recent(ctx context.Context, limit int) []*evalrecord.EvaluationRecord {
	records, err := e.recordManager.Recent(ctx, limit)
	if err != nil {
		log.Errorf("load recent evaluation records: %v", err)
		return []*evalrecord.EvaluationRecord{}
	}
	return records
}

// Summary returns rolling statistics over all stored records.
func (e *documentEvaluator) Summary(ctx context.Context) *evalrecord.Summary {
	records, err := e.recordManager.LoadAll(ctx)
	if err != nil {
		log.Errorf("load evaluation records for summary: %v", err)
		return &evalrecord.Summary{}
	}
	return evalrecord.Summarize(records)
}

// Close releases the record store when it owns closable resources.
func (e *documentEvaluator) Close() error {
	if c, ok := e.recordManager.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// criterionFromResult converts an evaluator result to its stored form.
func criterionFromResult(res *evaluator.Result) *evalrecord.CriterionResult {
	c := &evalrecord.CriterionResult{
		Score:   res.Score,
		Pass:    res.Status == status.EvalStatusPassed,
		Rate:    res.Rate,
		Summary: res.Reason,
	}
	if res.Details != nil {
		c.Breakdown = res.Details.Breakdown
		c.Missing = res.Details.Missing
	}
	return c
}

// setCriterion stores a criterion result in its record field.
func setCriterion(record *evalrecord.EvaluationRecord, name string, c *evalrecord.CriterionResult) {
	switch name {
	case evaluator.NameTechnicalPreservation:
		record.Technical = c
	case evaluator.NameStyleCompliance:
		record.Style = c
	case evaluator.NameStyleReduction:
		record.StyleReduction = c
	case evaluator.NameTemplateCompliance:
		record.Template = c
	case evaluator.NameGapResolution:
		record.GapResolution = c
	}
}
