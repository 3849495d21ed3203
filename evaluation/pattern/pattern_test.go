//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 3, CountWords("run the installer"))
}

func TestCountLongSentences(t *testing.T) {
	short := "Open the app. Click save."
	assert.Equal(t, 0, CountLongSentences(short))

	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen " +
		"sixteen seventeen eighteen nineteen twenty twentyone twentytwo twentythree twentyfour twentyfive twentysix twentyseven."
	assert.Equal(t, 1, CountLongSentences(long))
}

func TestTechnicalMatchSet(t *testing.T) {
	text := "Run `init.py` at https://example.com/v1.0.0 with --force and $HOME_DIR version 1.0.0"
	sets := make(map[string]map[string]struct{})
	for _, c := range TechnicalCategories() {
		sets[c.Name] = c.MatchSet(text)
	}
	assert.Contains(t, sets["code_spans"], "`init.py`")
	assert.Contains(t, sets["urls"], "https://example.com/v1.0.0")
	assert.Contains(t, sets["cli_flags"], "--force")
	assert.Contains(t, sets["env_vars"], "$HOME_DIR")
	assert.Contains(t, sets["versions"], "1.0.0")
}

func TestTechnicalMatchSetDistinct(t *testing.T) {
	text := "--force --force --force"
	for _, c := range TechnicalCategories() {
		if c.Name != "cli_flags" {
			continue
		}
		set := c.MatchSet(text)
		assert.Len(t, set, 1)
	}
}

func TestCountPassiveVoice(t *testing.T) {
	assert.Equal(t, 0, CountPassiveVoice("Click the button to save the file."))
	assert.Equal(t, 2, CountPassiveVoice("The file is saved. The config was updated."))
	// Case-insensitive over prose.
	assert.Equal(t, 1, CountPassiveVoice("The value IS CACHED here."))
}

func TestCountBareAmpersands(t *testing.T) {
	assert.Equal(t, 0, CountBareAmpersands("Use &amp; and &lt; entities."))
	assert.Equal(t, 2, CountBareAmpersands("Save & close, then cut & paste."))
	assert.Equal(t, 1, CountBareAmpersands("&amp; plus a bare &"))
}

func TestStyleRuleCounts(t *testing.T) {
	text := "The config will be updated. Please reach out if needed."
	counts := make(map[string]int)
	for _, r := range StyleRules() {
		counts[r.Name] = r.Count(text)
	}
	assert.Equal(t, 1, counts["future_tense"])
	assert.Equal(t, 1, counts["please"])
	assert.Equal(t, 1, counts["jargon"])
	assert.Equal(t, 0, counts["ampersands"])
}

func TestTemplateMarkers(t *testing.T) {
	doc := "# Install the agent\n\n" +
		"This guide explains setup.\n\n" +
		"## Prerequisites\n\nYou need admin access.\n\n" +
		"1. Open the console.\n2. Click install.\n\n" +
		"The install is complete when the status turns green.\n\n" +
		"## Troubleshooting\n\nIf you encounter an error, retry.\n"
	for _, m := range TemplateMarkers() {
		assert.True(t, m.Present(doc), "marker %s should be present", m.Name)
	}

	assert.False(t, TemplateMarkers()[0].Present("no title here"))
}

func TestIdentifyGaps(t *testing.T) {
	assert.Empty(t, IdentifyGaps("Everything looks fine."))

	gaps := IdentifyGaps("Missing prerequisites; passive voice noted.")
	assert.Equal(t, []GapType{GapPrerequisites, GapPassiveVoice}, gaps)

	gaps = IdentifyGaps("MISSING TROUBLESHOOTING and Long Sentences")
	assert.Equal(t, []GapType{GapTroubleshooting, GapSentenceLength}, gaps)
}

func TestGapResolved(t *testing.T) {
	assert.True(t, GapResolved(GapPrerequisites, "Before you begin, install Go."))
	assert.False(t, GapResolved(GapPrerequisites, "Just do it."))

	assert.True(t, GapResolved(GapStepOrdering, "1. First. 2. Second."))
	assert.False(t, GapResolved(GapStepOrdering, "1. Only one step."))

	assert.True(t, GapResolved(GapIntroduction, "This guide shows you the ropes."))
	assert.False(t, GapResolved(GapIntroduction, "Welcome. This guide is buried."))

	assert.True(t, GapResolved(GapFormatting, "# Heading\nbody"))
	assert.False(t, GapResolved(GapFormatting, "plain text only"))

	assert.True(t, GapResolved(GapPassiveVoice, "Click save."))
	assert.False(t, GapResolved(GapPassiveVoice,
		"It is saved. It is cached. It is loaded. It was updated."))

	assert.False(t, GapResolved(GapType("unknown"), "anything"))
}
