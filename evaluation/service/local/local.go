//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local implementation of service.Service.
package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/docualign/docualign-go/evaluation"
	"github.com/docualign/docualign-go/evaluation/service"
)

// local is a local implementation of service.Service.
type local struct {
	evaluator       evaluation.DocumentEvaluator
	parallelism     int
	parallelEnabled bool
	batchEvalPool   *ants.PoolWithFunc
}

// New returns a new local batch evaluation service.
// If no service.Option is provided, the service will use the default options.
func New(evaluator evaluation.DocumentEvaluator, opt ...service.Option) (service.Service, error) {
	if evaluator == nil {
		return nil, errors.New("evaluator is nil")
	}
	opts := service.NewOptions(opt...)
	if opts.ParallelEnabled && opts.Parallelism <= 0 {
		return nil, errors.New("parallelism must be greater than 0")
	}
	svc := &local{
		evaluator:       evaluator,
		parallelism:     opts.Parallelism,
		parallelEnabled: opts.ParallelEnabled,
	}
	if svc.parallelEnabled {
		pool, err := createBatchEvalPool(svc.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create batch evaluation pool: %w", err)
		}
		svc.batchEvalPool = pool
	}
	return svc, nil
}

// Close closes the batch service and releases owned resources.
func (s *local) Close() error {
	if s.batchEvalPool != nil {
		s.batchEvalPool.Release()
	}
	return nil
}

// EvaluateBatch evaluates every request in the batch and returns one result
// per request, in request order.
func (s *local) EvaluateBatch(ctx context.Context, req *service.BatchRequest) (*service.BatchResult, error) {
	if req == nil {
		return nil, errors.New("batch request is nil")
	}
	results := make([]*service.BatchItemResult, len(req.Requests))
	if s.parallelEnabled {
		s.evaluateParallel(ctx, req.Requests, results)
	} else {
		for i, r := range req.Requests {
			results[i] = s.evaluateItem(ctx, r)
		}
	}
	return &service.BatchResult{Results: results}, nil
}

func (s *local) evaluateParallel(ctx context.Context, requests []*evaluation.Request, results []*service.BatchItemResult) {
	var wg sync.WaitGroup
	for i, r := range requests {
		wg.Add(1)
		param := batchEvalParamPool.Get().(*batchEvalParam)
		param.idx = i
		param.ctx = ctx
		param.req = r
		param.svc = s
		param.results = results
		param.wg = &wg
		if err := s.batchEvalPool.Invoke(param); err != nil {
			results[i] = &service.BatchItemResult{ErrorMessage: err.Error()}
			param.reset()
			batchEvalParamPool.Put(param)
			wg.Done()
		}
	}
	wg.Wait()
}

// evaluateItem evaluates one request; failures become item error messages
// so one bad request never sinks the batch.
func (s *local) evaluateItem(ctx context.Context, req *evaluation.Request) *service.BatchItemResult {
	record, err := s.evaluator.Evaluate(ctx, req)
	if err != nil {
		return &service.BatchItemResult{ErrorMessage: err.Error()}
	}
	return &service.BatchItemResult{Record: record}
}
