//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package technical provides the technical-token preservation scorer.
// It compares the distinct technical tokens of the original and final
// documents per category and maps the preservation rate to a 1-5 score.
package technical

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/pattern"
	"github.com/docualign/docualign-go/evaluation/status"
)

type technicalEvaluator struct {
}

// New creates the technical preservation evaluator.
func New() evaluator.Evaluator {
	return &technicalEvaluator{}
}

// Name returns the criterion identifier.
func (e *technicalEvaluator) Name() string {
	return evaluator.NameTechnicalPreservation
}

// Description describes the criterion.
func (e *technicalEvaluator) Description() string {
	return "Checks that code spans, URLs, paths, flags and other technical tokens survive the rewrite"
}

// Evaluate compares per-category token sets between original and final text.
// A category counts as preserved only when its original and final sets are
// identical; preserved categories contribute their original token count to
// the preservation rate. A document with no technical tokens scores 5.
func (e *technicalEvaluator) Evaluate(ctx context.Context, input *evaluator.Input) (*evaluator.Result, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var diffs []evaluator.TokenDiff
	totalTokens := 0
	preservedTokens := 0
	for _, cat := range pattern.TechnicalCategories() {
		origSet := cat.MatchSet(input.Original)
		finalSet := cat.MatchSet(input.Final)
		totalTokens += len(origSet)

		removed := difference(origSet, finalSet)
		added := difference(finalSet, origSet)
		if len(removed) == 0 && len(added) == 0 {
			preservedTokens += len(origSet)
			continue
		}
		diffs = append(diffs, evaluator.TokenDiff{
			Category: cat.Name,
			Removed:  removed,
			Added:    added,
		})
	}

	if totalTokens == 0 {
		return &evaluator.Result{
			Score:  5,
			Rate:   1.0,
			Status: status.ForScore(5),
			Reason: "no technical tokens to preserve",
		}, nil
	}

	rate := float64(preservedTokens) / float64(totalTokens)
	score := scoreForRate(rate)
	res := &evaluator.Result{
		Score:  score,
		Rate:   rate,
		Status: status.ForScore(score),
		Reason: reasonForDiffs(diffs),
	}
	if len(diffs) > 0 {
		res.Details = &evaluator.Details{TokenDiffs: diffs}
	}
	return res, nil
}

// scoreForRate maps a preservation rate to a 1-5 score. Only a fully
// preserved document scores 5.
func scoreForRate(rate float64) int {
	switch {
	case rate == 1.0:
		return 5
	case rate >= 0.95:
		return 4
	case rate >= 0.85:
		return 3
	case rate >= 0.70:
		return 2
	default:
		return 1
	}
}

// reasonForDiffs summarizes changed categories for display.
func reasonForDiffs(diffs []evaluator.TokenDiff) string {
	if len(diffs) == 0 {
		return "all technical tokens preserved"
	}
	parts := make([]string, 0, len(diffs))
	for _, d := range diffs {
		parts = append(parts, fmt.Sprintf("%s: %d removed, %d added", d.Category, len(d.Removed), len(d.Added)))
	}
	return strings.Join(parts, "; ")
}

// difference returns a-b as a sorted slice.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for token := range a {
		if _, ok := b[token]; !ok {
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}
