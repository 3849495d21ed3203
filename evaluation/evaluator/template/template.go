//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package template provides the how-to template compliance scorer.
package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/pattern"
	"github.com/docualign/docualign-go/evaluation/status"
)

type templateEvaluator struct {
}

// New creates the template compliance evaluator.
func New() evaluator.Evaluator {
	return &templateEvaluator{}
}

// Name returns the criterion identifier.
func (e *templateEvaluator) Name() string {
	return evaluator.NameTemplateCompliance
}

// Description describes the criterion.
func (e *templateEvaluator) Description() string {
	return "Checks the final document for the structural elements of the how-to template"
}

// Evaluate tests presence of each structural marker in the final document.
// Only the final text is inspected. The compliance rate is truncated, not
// rounded, when mapped to a score: all seven markers are required for a 5.
func (e *templateEvaluator) Evaluate(ctx context.Context, input *evaluator.Input) (*evaluator.Result, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	markers := pattern.TemplateMarkers()
	var missing []string
	present := 0
	for _, m := range markers {
		if m.Present(input.Final) {
			present++
			continue
		}
		missing = append(missing, m.Name)
	}

	rate := float64(present) / float64(len(markers))
	score := int(rate * 5)
	if score < 1 {
		score = 1
	}
	reason := "all template elements present"
	if len(missing) > 0 {
		reason = fmt.Sprintf("missing: %s", strings.Join(missing, ", "))
	}
	res := &evaluator.Result{
		Score:  score,
		Rate:   rate,
		Status: status.ForScore(score),
		Reason: reason,
	}
	if len(missing) > 0 {
		res.Details = &evaluator.Details{Missing: missing}
	}
	return res, nil
}
