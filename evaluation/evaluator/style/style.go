//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package style provides the style-guide compliance scorers.
//
// Two scorers share the same violation rules. The absolute scorer grades the
// final document alone by weighted deductions from a base score of 5. The
// reduction scorer grades how many of the original document's violations the
// rewrite removed; its rate is truncated, not rounded, when mapped to a
// score, so only a full cleanup reaches 5.
package style

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/pattern"
	"github.com/docualign/docualign-go/evaluation/status"
)

const baseScore = 5.0

type styleEvaluator struct {
}

// New creates the absolute style compliance evaluator.
func New() evaluator.Evaluator {
	return &styleEvaluator{}
}

// Name returns the criterion identifier.
func (e *styleEvaluator) Name() string {
	return evaluator.NameStyleCompliance
}

// Description describes the criterion.
func (e *styleEvaluator) Description() string {
	return "Grades the final document against the style guide by weighted violation deductions"
}

// Evaluate counts violations of every style rule in the final document and
// deducts min(cap, count*weight) per rule from the base score. The result
// is rounded and clamped into [1,5].
func (e *styleEvaluator) Evaluate(ctx context.Context, input *evaluator.Input) (*evaluator.Result, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := baseScore
	breakdown := make(map[string]int)
	var reasons []string
	for _, rule := range pattern.StyleRules() {
		count := rule.Count(input.Final)
		breakdown[rule.Name] = count
		if count == 0 {
			continue
		}
		raw -= math.Min(rule.Cap, float64(count)*rule.Weight)
		reasons = append(reasons, fmt.Sprintf("%s: %d", rule.Name, count))
	}

	score := clamp(int(math.Round(raw)))
	reason := "no style violations"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, "; ")
	}
	return &evaluator.Result{
		Score:   score,
		Rate:    float64(score) / baseScore,
		Status:  status.ForScore(score),
		Reason:  reason,
		Details: &evaluator.Details{Breakdown: breakdown},
	}, nil
}

type reductionEvaluator struct {
}

// NewReduction creates the violation-reduction evaluator, which compares
// violation counts before and after the rewrite.
func NewReduction() evaluator.Evaluator {
	return &reductionEvaluator{}
}

// Name returns the criterion identifier.
func (e *reductionEvaluator) Name() string {
	return evaluator.NameStyleReduction
}

// Description describes the criterion.
func (e *reductionEvaluator) Description() string {
	return "Grades how many of the original document's style violations the rewrite removed"
}

// Evaluate computes the violation-reduction rate across all style rules.
// An original with no violations is perfect by definition. The score is
// floor(rate*5) clamped to at least 1; the breakdown keeps the remaining
// per-rule violation counts of the final document.
func (e *reductionEvaluator) Evaluate(ctx context.Context, input *evaluator.Input) (*evaluator.Result, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	origTotal := 0
	finalTotal := 0
	remaining := make(map[string]int)
	for _, rule := range pattern.StyleRules() {
		origTotal += rule.Count(input.Original)
		count := rule.Count(input.Final)
		finalTotal += count
		remaining[rule.Name] = count
	}

	rate := 1.0
	reason := "no violations in original"
	if origTotal > 0 {
		rate = math.Max(0, float64(origTotal-finalTotal)/float64(origTotal))
		removed := origTotal - finalTotal
		if removed < 0 {
			removed = 0
		}
		reason = fmt.Sprintf("%d of %d violations removed", removed, origTotal)
	}
	// Truncation is deliberate: a 0.99 reduction rate scores 4, not 5.
	score := clamp(int(rate * baseScore))
	return &evaluator.Result{
		Score:  score,
		Rate:   rate,
		Status: status.ForScore(score),
		Reason: reason,
		Details: &evaluator.Details{
			Breakdown: remaining,
		},
	}, nil
}

// clamp bounds a score into [1,5].
func clamp(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}
