//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package pattern

import "regexp"

// StyleRule is a named style-violation counter with its deduction tuning.
// A rule deducts min(Cap, count*Weight) from the base style score, so no
// single rule can zero the score on its own.
type StyleRule struct {
	// Name identifies the rule in violation breakdowns.
	Name string
	// Weight is the per-occurrence deduction.
	Weight float64
	// Cap bounds the total deduction for this rule.
	Cap float64
	// count returns the number of violations in text.
	count func(text string) int
}

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bis\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bwas\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bwere\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bbeing\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bbeen\s+\w+ed\b`),
}

// resolutionPassivePatterns is the narrower is/was subset used by the gap
// resolution check.
var resolutionPassivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bis\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\bwas\s+\w+ed\b`),
}

var (
	futureTense = regexp.MustCompile(`(?i)\bwill\s+`)
	pleaseWord  = regexp.MustCompile(`(?i)\bplease\b`)
	jargon      = regexp.MustCompile(`(?i)\breach out\b|\btouch base\b|\bcircle back\b|\bgoing forward\b`)
	// RE2 has no lookahead, so ampersands are matched together with an
	// optional entity suffix and filtered on the empty group.
	ampersand = regexp.MustCompile(`&(amp;|lt;|gt;|quot;)?`)
)

var styleRules = []StyleRule{
	{Name: "passive_voice", Weight: 0.2, Cap: 1.0, count: CountPassiveVoice},
	{Name: "future_tense", Weight: 0.1, Cap: 1.0, count: countMatches(futureTense)},
	{Name: "long_sentences", Weight: 0.1, Cap: 1.0, count: CountLongSentences},
	{Name: "ampersands", Weight: 0.1, Cap: 0.5, count: CountBareAmpersands},
	{Name: "please", Weight: 0.1, Cap: 0.5, count: countMatches(pleaseWord)},
	{Name: "jargon", Weight: 0.2, Cap: 0.5, count: countMatches(jargon)},
}

// StyleRules returns the six style-violation rules.
func StyleRules() []StyleRule {
	return styleRules
}

// Count returns the number of violations of this rule in text.
func (r StyleRule) Count(text string) int {
	return r.count(text)
}

// CountPassiveVoice counts passive-voice verb constructions.
func CountPassiveVoice(text string) int {
	n := 0
	for _, re := range passivePatterns {
		n += len(re.FindAllString(text, -1))
	}
	return n
}

// CountResolutionPassiveVoice counts the is/was passive constructions
// checked by the passive-voice gap resolution predicate.
func CountResolutionPassiveVoice(text string) int {
	n := 0
	for _, re := range resolutionPassivePatterns {
		n += len(re.FindAllString(text, -1))
	}
	return n
}

// CountBareAmpersands counts ampersands that do not start an HTML entity.
func CountBareAmpersands(text string) int {
	n := 0
	for _, m := range ampersand.FindAllStringSubmatch(text, -1) {
		if m[1] == "" {
			n++
		}
	}
	return n
}

func countMatches(re *regexp.Regexp) func(string) int {
	return func(text string) int {
		return len(re.FindAllString(text, -1))
	}
}
