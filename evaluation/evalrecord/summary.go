//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package evalrecord

// Summary holds rolling statistics over all stored records. Pass rates are
// percentages in [0,100]; a record lacking a criterion contributes a
// non-pass to that criterion's rate, which keeps summaries stable across
// schema revisions.
type Summary struct {
	// TotalEvaluations is the number of stored records.
	TotalEvaluations int `json:"totalEvaluations"`
	// TechnicalPassRate is the technical preservation pass percentage.
	TechnicalPassRate float64 `json:"technicalPassRate"`
	// StylePassRate is the absolute style compliance pass percentage.
	StylePassRate float64 `json:"stylePassRate"`
	// StyleReductionPassRate is the violation-reduction pass percentage.
	StyleReductionPassRate float64 `json:"styleReductionPassRate"`
	// TemplatePassRate is the template compliance pass percentage.
	TemplatePassRate float64 `json:"templatePassRate"`
	// GapResolutionPassRate is the gap resolution pass percentage.
	GapResolutionPassRate float64 `json:"gapResolutionPassRate"`
	// OverallPassRate is the overall pass percentage.
	OverallPassRate float64 `json:"overallPassRate"`
	// AvgOverallScore is the mean overall score across records.
	AvgOverallScore float64 `json:"avgOverallScore"`
}

// Summarize computes rolling statistics over records. An empty input
// yields a zeroed summary.
func Summarize(records []*EvaluationRecord) *Summary {
	s := &Summary{TotalEvaluations: len(records)}
	if len(records) == 0 {
		return s
	}

	var technical, style, styleReduction, template, gap, overall int
	var scoreSum float64
	for _, r := range records {
		technical += passed(r.Technical)
		style += passed(r.Style)
		styleReduction += passed(r.StyleReduction)
		template += passed(r.Template)
		gap += passed(r.GapResolution)
		if r.OverallPass {
			overall++
		}
		scoreSum += r.OverallScore
	}

	total := float64(len(records))
	s.TechnicalPassRate = float64(technical) / total * 100
	s.StylePassRate = float64(style) / total * 100
	s.StyleReductionPassRate = float64(styleReduction) / total * 100
	s.TemplatePassRate = float64(template) / total * 100
	s.GapResolutionPassRate = float64(gap) / total * 100
	s.OverallPassRate = float64(overall) / total * 100
	s.AvgOverallScore = scoreSum / total
	return s
}

// passed treats a missing criterion as not passed.
func passed(c *CriterionResult) int {
	if c != nil && c.Pass {
		return 1
	}
	return 0
}
