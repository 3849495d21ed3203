//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docualign/docualign-go/evaluation/evalrecord"
	"github.com/docualign/docualign-go/evaluation/evalrecord/inmemory"
)

const compliantDoc = `# Install the Agent

This guide shows how to install the agent.

Before you begin, you need an account.

1. Open a terminal.
2. Run the installer.

The expected result is a version banner.

If you encounter an error, check the log.
`

func newTestEvaluator(t *testing.T, opt ...Option) (DocumentEvaluator, *inmemory.Manager) {
	t.Helper()
	store := inmemory.NewManager()
	e, err := New(append([]Option{WithRecordManager(store)}, opt...)...)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, e.Close()) })
	return e, store
}

func TestEvaluateDefaultProfile(t *testing.T) {
	e, store := newTestEvaluator(t)
	ctx := context.Background()

	doc := "Run `setup.sh` to install version 1.2.3."
	record, err := e.Evaluate(ctx, &Request{Original: doc, Final: doc})
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotEmpty(t, record.RecordID)
	assert.False(t, record.Timestamp.IsZero())
	assert.Equal(t, evalrecord.AnonymousUserID, record.UserID)
	assert.Equal(t, string(ProfileHHH), record.Profile)
	assert.Equal(t, 6, record.OriginalWordCount)
	assert.Equal(t, 6, record.FinalWordCount)

	require.NotNil(t, record.Technical)
	require.NotNil(t, record.Style)
	require.NotNil(t, record.GapResolution)
	assert.Nil(t, record.Template)
	assert.Nil(t, record.StyleReduction)

	assert.Equal(t, 5, record.Technical.Score)
	assert.Equal(t, 5, record.Style.Score)
	assert.Equal(t, 5, record.GapResolution.Score)
	assert.Equal(t, 5.0, record.OverallScore)
	assert.True(t, record.OverallPass)

	stored, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record.RecordID, stored[0].RecordID)
}

func TestEvaluateTemplateProfile(t *testing.T) {
	e, _ := newTestEvaluator(t, WithProfile(ProfileTemplate))
	ctx := context.Background()

	record, err := e.Evaluate(ctx, &Request{
		Original: "You will please leverage the tool. It will load daily.",
		Final:    compliantDoc,
		UserID:   "writer-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "writer-1", record.UserID)
	assert.Equal(t, string(ProfileTemplate), record.Profile)
	require.NotNil(t, record.Technical)
	require.NotNil(t, record.Template)
	require.NotNil(t, record.StyleReduction)
	require.NotNil(t, record.GapResolution)
	assert.Nil(t, record.Style)

	assert.Equal(t, 5, record.Template.Score)
	assert.Equal(t, 5, record.StyleReduction.Score)
	assert.Equal(t, 1.0, record.StyleReduction.Rate)
	assert.Equal(t, 5.0, record.OverallScore)
	assert.True(t, record.OverallPass)
}

func TestOverallPassRequiresEveryCriterion(t *testing.T) {
	e, _ := newTestEvaluator(t)
	ctx := context.Background()

	// The report flags passive voice and the final text keeps four passive
	// constructions, so gap resolution fails while the other criteria pass.
	record, err := e.Evaluate(ctx, &Request{
		Original:       "The value is stored. The file is saved. The path is resolved. The flag is parsed.",
		AnalysisReport: "Passive voice throughout.",
		Final:          "The value is stored. The file is saved. The path is resolved. The flag is parsed.",
	})
	require.NoError(t, err)

	require.NotNil(t, record.GapResolution)
	assert.Equal(t, 1, record.GapResolution.Score)
	assert.False(t, record.GapResolution.Pass)
	assert.True(t, record.Technical.Pass)
	assert.True(t, record.Style.Pass)
	assert.False(t, record.OverallPass)
	assert.InDelta(t, 10.0/3.0, record.OverallScore, 1e-9)
}

func TestRecentAndSummary(t *testing.T) {
	e, _ := newTestEvaluator(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := e.Evaluate(ctx, &Request{Original: "Run the tool.", Final: "Run the tool."})
		require.NoError(t, err)
	}
	failing, err := e.Evaluate(ctx, &Request{
		AnalysisReport: "passive voice",
		Final:          "It is stored. It is saved. It is parsed. It is logged.",
	})
	require.NoError(t, err)
	require.False(t, failing.OverallPass)

	recent := e.Recent(ctx, 1)
	require.Len(t, recent, 1)
	assert.Equal(t, failing.RecordID, recent[0].RecordID)

	summary := e.Summary(ctx)
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.TotalEvaluations)
	assert.InDelta(t, 100.0, summary.TechnicalPassRate, 1e-9)
	assert.InDelta(t, 100.0*2/3, summary.GapResolutionPassRate, 1e-9)
	assert.InDelta(t, 100.0*2/3, summary.OverallPassRate, 1e-9)
	// The template profile never ran, so its criterion never passes.
	assert.Zero(t, summary.TemplatePassRate)
}

// failingManager breaks every store operation.
type failingManager struct{}

func (failingManager) Append(context.Context, *evalrecord.EvaluationRecord) error {
	return errors.New("store down")
}

func (failingManager) LoadAll(context.Context) ([]*evalrecord.EvaluationRecord, error) {
	return nil, errors.New("store down")
}

func (failingManager) Recent(context.Context, int) ([]*evalrecord.EvaluationRecord, error) {
	return nil, errors.New("store down")
}

func TestPersistenceFailureIsNotFatal(t *testing.T) {
	e, err := New(WithRecordManager(failingManager{}))
	require.NoError(t, err)
	ctx := context.Background()

	record, err := e.Evaluate(ctx, &Request{Original: "Run it.", Final: "Run it."})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.OverallPass)

	assert.Empty(t, e.Recent(ctx, 10))
	assert.Equal(t, &evalrecord.Summary{}, e.Summary(ctx))
}

func TestNewValidation(t *testing.T) {
	_, err := New(WithProfile(Profile("bogus")))
	assert.Error(t, err)

	_, err = New(WithRegistry(nil))
	assert.Error(t, err)

	_, err = New(WithRecordManager(nil))
	assert.Error(t, err)
}

func TestEvaluateNilRequest(t *testing.T) {
	e, _ := newTestEvaluator(t)
	_, err := e.Evaluate(context.Background(), nil)
	assert.Error(t, err)
}
