//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package pattern

import "strings"

// GapType names a documentation deficiency flagged by the upstream analysis
// step.
type GapType string

// Known gap types.
const (
	GapPrerequisites   GapType = "prerequisites"
	GapStepClarity     GapType = "step_clarity"
	GapIntroduction    GapType = "introduction"
	GapStepOrdering    GapType = "step_ordering"
	GapFormatting      GapType = "formatting"
	GapSuccessCriteria GapType = "success_criteria"
	GapTroubleshooting GapType = "troubleshooting"
	GapPassiveVoice    GapType = "passive_voice"
	GapSentenceLength  GapType = "sentence_length"
)

// gapIndicator maps a fixed analysis-report phrase to the gap type it flags.
type gapIndicator struct {
	phrase string
	gap    GapType
}

var gapIndicators = []gapIndicator{
	{"missing prerequisites", GapPrerequisites},
	{"unclear steps", GapStepClarity},
	{"missing introduction", GapIntroduction},
	{"poor step ordering", GapStepOrdering},
	{"inconsistent formatting", GapFormatting},
	{"missing success criteria", GapSuccessCriteria},
	{"missing troubleshooting", GapTroubleshooting},
	{"passive voice", GapPassiveVoice},
	{"long sentences", GapSentenceLength},
}

// resolvedPassiveLimit and resolvedLongSentenceLimit bound the residual
// violation counts under which the corresponding gap counts as resolved.
const (
	resolvedPassiveLimit      = 3
	resolvedLongSentenceLimit = 3
)

// IdentifyGaps scans an analysis report case-insensitively for the fixed
// indicator phrases and returns the flagged gap types in indicator order.
// A report can flag the same type more than once; duplicates are kept, the
// resolution rate only cares about resolved/total.
func IdentifyGaps(report string) []GapType {
	lower := strings.ToLower(report)
	var gaps []GapType
	for _, ind := range gapIndicators {
		if strings.Contains(lower, ind.phrase) {
			gaps = append(gaps, ind.gap)
		}
	}
	return gaps
}

// GapResolved reports whether the final document exhibits the resolution
// signature for the given gap type. Unknown gap types are never resolved.
func GapResolved(gap GapType, final string) bool {
	lower := strings.ToLower(final)
	switch gap {
	case GapPrerequisites:
		return containsAny(final, prerequisiteWords)
	case GapStepClarity:
		return containsAny(final, actionVerbs)
	case GapIntroduction:
		for _, p := range introPhrases {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		return false
	case GapStepOrdering:
		return strings.Contains(final, "1.") && strings.Contains(final, "2.")
	case GapFormatting:
		return HasMarkdownHeading(final)
	case GapSuccessCriteria:
		return containsAny(final, successWords)
	case GapTroubleshooting:
		return containsAny(final, troubleshootingWords)
	case GapPassiveVoice:
		return CountResolutionPassiveVoice(final) < resolvedPassiveLimit
	case GapSentenceLength:
		return CountLongSentences(final) < resolvedLongSentenceLimit
	default:
		return false
	}
}
