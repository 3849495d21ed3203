//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package evalrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(techPass, overallPass bool, score float64) *EvaluationRecord {
	techScore := 3
	if techPass {
		techScore = 5
	}
	return &EvaluationRecord{
		Technical:    &CriterionResult{Score: techScore, Pass: techPass},
		OverallPass:  overallPass,
		OverallScore: score,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalEvaluations)
	assert.Zero(t, s.TechnicalPassRate)
	assert.Zero(t, s.OverallPassRate)
	assert.Zero(t, s.AvgOverallScore)
}

func TestSummarizePassRates(t *testing.T) {
	records := []*EvaluationRecord{
		record(true, true, 5),
		record(true, false, 4),
		record(false, false, 3),
		record(false, false, 2),
	}
	s := Summarize(records)
	assert.Equal(t, 4, s.TotalEvaluations)
	assert.InDelta(t, 50.0, s.TechnicalPassRate, 1e-9)
	assert.InDelta(t, 25.0, s.OverallPassRate, 1e-9)
	assert.InDelta(t, 3.5, s.AvgOverallScore, 1e-9)
}

func TestSummarizeToleratesMissingCriteria(t *testing.T) {
	// Old-schema records without the template criterion count as non-pass,
	// they never error.
	records := []*EvaluationRecord{
		{Template: &CriterionResult{Score: 5, Pass: true}, OverallPass: true, OverallScore: 5},
		{OverallPass: true, OverallScore: 5},
	}
	s := Summarize(records)
	assert.InDelta(t, 50.0, s.TemplatePassRate, 1e-9)
	assert.InDelta(t, 100.0, s.OverallPassRate, 1e-9)
	assert.Zero(t, s.StyleReductionPassRate)
}

func TestCriteriaSkipsNil(t *testing.T) {
	r := &EvaluationRecord{
		Technical:     &CriterionResult{Score: 5, Pass: true},
		GapResolution: &CriterionResult{Score: 4, Pass: true},
	}
	assert.Len(t, r.Criteria(), 2)
}
