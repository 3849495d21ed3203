//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package gapresolution provides the gap resolution effectiveness scorer.
// It extracts which gap types the upstream analysis report flagged and
// checks, per type, whether the final document exhibits the type's
// resolution signature.
package gapresolution

import (
	"context"
	"errors"
	"fmt"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/pattern"
	"github.com/docualign/docualign-go/evaluation/status"
)

type gapResolutionEvaluator struct {
}

// New creates the gap resolution evaluator.
func New() evaluator.Evaluator {
	return &gapResolutionEvaluator{}
}

// Name returns the criterion identifier.
func (e *gapResolutionEvaluator) Name() string {
	return evaluator.NameGapResolution
}

// Description describes the criterion.
func (e *gapResolutionEvaluator) Description() string {
	return "Checks that gaps flagged by the analysis report are resolved in the final document"
}

// Evaluate scans the analysis report for gap indicator phrases and tests
// each flagged gap type's resolution predicate against the final document.
// A report that flags nothing scores 5.
func (e *gapResolutionEvaluator) Evaluate(ctx context.Context, input *evaluator.Input) (*evaluator.Result, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	identified := pattern.IdentifyGaps(input.AnalysisReport)
	if len(identified) == 0 {
		return &evaluator.Result{
			Score:  5,
			Rate:   1.0,
			Status: status.ForScore(5),
			Reason: "no gaps identified",
		}, nil
	}

	var resolved []string
	names := make([]string, 0, len(identified))
	for _, gap := range identified {
		names = append(names, string(gap))
		if pattern.GapResolved(gap, input.Final) {
			resolved = append(resolved, string(gap))
		}
	}

	rate := float64(len(resolved)) / float64(len(identified))
	score := scoreForRate(rate)
	return &evaluator.Result{
		Score:  score,
		Rate:   rate,
		Status: status.ForScore(score),
		Reason: fmt.Sprintf("%d of %d gaps resolved", len(resolved), len(identified)),
		Details: &evaluator.Details{
			IdentifiedGaps: names,
			ResolvedGaps:   resolved,
		},
	}, nil
}

// scoreForRate maps a resolution rate to a 1-5 score.
func scoreForRate(rate float64) int {
	switch {
	case rate >= 0.90:
		return 5
	case rate >= 0.75:
		return 4
	case rate >= 0.60:
		return 3
	case rate >= 0.40:
		return 2
	default:
		return 1
	}
}
