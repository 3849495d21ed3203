//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docualign/docualign-go/evaluation/evaluator"
	"github.com/docualign/docualign-go/evaluation/status"
)

// compliantDoc contains all seven structural markers.
const compliantDoc = "# Install the agent\n\n" +
	"This guide explains how to install the agent.\n\n" +
	"## Prerequisites\n\nYou need admin access.\n\n" +
	"1. Open the console.\n" +
	"2. Click install.\n\n" +
	"The install is complete when the status turns green.\n\n" +
	"## Troubleshooting\n\nIf you encounter an error, retry the install.\n"

func TestFullComplianceScoresFive(t *testing.T) {
	res, err := New().Evaluate(context.Background(), &evaluator.Input{Final: compliantDoc})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, 1.0, res.Rate)
	assert.Equal(t, status.EvalStatusPassed, res.Status)
	assert.Nil(t, res.Details)
}

func TestSixOfSevenTruncatesToFour(t *testing.T) {
	// Drop the H1 title: 6/7 markers, rate 0.857, truncated to 4.
	doc := "Install the agent\n\n" +
		"This guide explains how to install the agent.\n\n" +
		"Prerequisites: you need admin access.\n\n" +
		"1. Open the console.\n" +
		"2. Click install.\n\n" +
		"The install is complete when the status turns green.\n\n" +
		"If you encounter an error, retry the install.\n"
	res, err := New().Evaluate(context.Background(), &evaluator.Input{Final: doc})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Score)
	require.NotNil(t, res.Details)
	assert.Equal(t, []string{"title"}, res.Details.Missing)
}

func TestRemovingMarkerNeverIncreasesScore(t *testing.T) {
	full, err := New().Evaluate(context.Background(), &evaluator.Input{Final: compliantDoc})
	require.NoError(t, err)

	// Strip all intro phrasing.
	stripped := "# Install the agent\n\n" +
		"## Prerequisites\n\nYou need admin access.\n\n" +
		"1. Open the console.\n" +
		"2. Click install.\n\n" +
		"The install is complete when the status turns green.\n\n" +
		"## Troubleshooting\n\nIf you encounter an error, retry the install.\n"
	res, err := New().Evaluate(context.Background(), &evaluator.Input{Final: stripped})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Score, full.Score)
	assert.Contains(t, res.Details.Missing, "introduction")
}

func TestEmptyDocumentClampsToOne(t *testing.T) {
	res, err := New().Evaluate(context.Background(), &evaluator.Input{Final: ""})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
	assert.Len(t, res.Details.Missing, 7)
}

func TestOriginalTextIsIgnored(t *testing.T) {
	res, err := New().Evaluate(context.Background(), &evaluator.Input{
		Original: compliantDoc,
		Final:    "bare text",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
}

func TestNilInput(t *testing.T) {
	_, err := New().Evaluate(context.Background(), nil)
	assert.Error(t, err)
}
