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

// TechnicalCategory is a named extractor for one class of technical token
// whose literal preservation across a rewrite is mandatory.
type TechnicalCategory struct {
	// Name identifies the category in diffs and breakdowns.
	Name string
	re   *regexp.Regexp
}

// Technical token categories. Matching is case-sensitive: these are
// code-like tokens, not prose.
var technicalCategories = []TechnicalCategory{
	{Name: "code_spans", re: regexp.MustCompile("`[^`]+`")},
	{Name: "urls", re: regexp.MustCompile(`https?://[^\s]+`)},
	{Name: "file_paths", re: regexp.MustCompile(`/[a-zA-Z0-9/_.-]+`)},
	{Name: "env_vars", re: regexp.MustCompile(`\$[A-Z_]+`)},
	{Name: "cli_flags", re: regexp.MustCompile(`--[a-z-]+`)},
	{Name: "constants", re: regexp.MustCompile(`[A-Z_]{3,}`)},
	{Name: "versions", re: regexp.MustCompile(`\b\d+\.\d+\.\d+\b`)},
}

// TechnicalCategories returns the seven technical token categories.
func TechnicalCategories() []TechnicalCategory {
	return technicalCategories
}

// MatchSet returns the set of distinct tokens of this category found in text.
func (c TechnicalCategory) MatchSet(text string) map[string]struct{} {
	matches := c.re.FindAllString(text, -1)
	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		set[m] = struct{}{}
	}
	return set
}
