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

// TemplateMarker is one structural element of the how-to template. Presence
// is a boolean test over the full document, not an occurrence count.
type TemplateMarker struct {
	// Name identifies the marker in missing-element lists.
	Name string
	// present reports whether the marker appears in text.
	present func(text string) bool
}

var (
	h1Title       = regexp.MustCompile(`(?m)^#\s+\S`)
	numberedStep  = regexp.MustCompile(`(?m)^\s*\d+\.\s`)
	markdownTitle = regexp.MustCompile(`(?m)^#+\s`)
)

var (
	introPhrases        = []string{"this guide", "this tutorial", "this document", "this how-to"}
	prerequisiteWords   = []string{"prerequisite", "requirements", "before you begin", "you need"}
	actionVerbs         = []string{"click", "select", "enter", "navigate", "open", "create", "run"}
	successWords        = []string{"success", "complete", "finished", "result", "expected"}
	troubleshootingWords = []string{"troubleshoot", "problem", "issue", "error", "if you encounter"}
)

var templateMarkers = []TemplateMarker{
	{Name: "title", present: h1Title.MatchString},
	{Name: "introduction", present: func(t string) bool { return containsAny(t, introPhrases) }},
	{Name: "prerequisites", present: func(t string) bool { return containsAny(t, prerequisiteWords) }},
	{Name: "numbered_steps", present: numberedStep.MatchString},
	{Name: "action_verbs", present: func(t string) bool { return containsAny(t, actionVerbs) }},
	{Name: "success_criteria", present: func(t string) bool { return containsAny(t, successWords) }},
	{Name: "troubleshooting", present: func(t string) bool { return containsAny(t, troubleshootingWords) }},
}

// TemplateMarkers returns the seven structural markers of the how-to template.
func TemplateMarkers() []TemplateMarker {
	return templateMarkers
}

// Present reports whether the marker appears in text.
func (m TemplateMarker) Present(text string) bool {
	return m.present(text)
}

// HasMarkdownHeading reports whether text contains any markdown heading line.
func HasMarkdownHeading(text string) bool {
	return markdownTitle.MatchString(text)
}
