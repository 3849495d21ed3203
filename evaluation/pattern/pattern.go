//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package pattern defines the fixed matcher library shared by all document
// quality scorers: technical-token extractors, style-violation counters,
// template structural markers, and gap indicators. Matchers over code-like
// tokens are case-sensitive; matchers over prose are case-insensitive.
// The library is stateless and every function is safe for concurrent use.
package pattern

import (
	"regexp"
	"strings"
)

// sentenceBoundary splits prose into sentences on terminal punctuation runs.
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// maxSentenceWords is the style guide's sentence length limit.
const maxSentenceWords = 26

// CountWords returns the whitespace-separated word count of text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// SplitSentences splits text into sentence fragments on ., ! and ? runs.
// Fragments keep their surrounding whitespace; callers count words per
// fragment rather than trimming.
func SplitSentences(text string) []string {
	return sentenceBoundary.Split(text, -1)
}

// CountLongSentences returns the number of sentences exceeding the
// 26-word style limit.
func CountLongSentences(text string) int {
	n := 0
	for _, s := range SplitSentences(text) {
		if len(strings.Fields(s)) > maxSentenceWords {
			n++
		}
	}
	return n
}

// containsAny reports whether the lowercased text contains any of the
// given lowercase keywords.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
