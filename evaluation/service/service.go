//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package service provides batch evaluation over document transformations.
package service

import (
	"context"

	"github.com/docualign/docualign-go/evaluation"
	"github.com/docualign/docualign-go/evaluation/evalrecord"
)

// Service runs batches of document evaluations.
type Service interface {
	// EvaluateBatch evaluates every request in the batch and returns one
	// result per request, in request order.
	EvaluateBatch(ctx context.Context, req *BatchRequest) (*BatchResult, error)
	// Close releases owned resources.
	Close() error
}

// BatchRequest carries the document transformations to evaluate.
type BatchRequest struct {
	// Requests are the transformations to evaluate.
	Requests []*evaluation.Request `json:"requests"`
}

// BatchResult holds one item result per batch request.
type BatchResult struct {
	// Results are the per-request outcomes, aligned with the request order.
	Results []*BatchItemResult `json:"results"`
}

// BatchItemResult is the outcome of one batch request.
type BatchItemResult struct {
	// Record is the evaluation record; nil when the item failed.
	Record *evalrecord.EvaluationRecord `json:"record,omitempty"`
	// ErrorMessage contains error details if the item failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
}
