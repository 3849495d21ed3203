//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

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

type batchEvalParam struct {
	idx     int
	ctx     context.Context
	req     *evaluation.Request
	svc     *local
	results []*service.BatchItemResult
	wg      *sync.WaitGroup
}

func (p *batchEvalParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.req = nil
	p.svc = nil
	p.results = nil
	p.wg = nil
}

var batchEvalParamPool = &sync.Pool{
	New: func() any { return new(batchEvalParam) },
}

func createBatchEvalPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*batchEvalParam)
		if !ok {
			panic("batch evaluation pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			batchEvalParamPool.Put(param)
		}()
		param.results[param.idx] = param.svc.evaluateItem(param.ctx, param.req)
	})
	if err != nil {
		return nil, fmt.Errorf("create batch evaluation pool: %w", err)
	}
	return pool, nil
}
