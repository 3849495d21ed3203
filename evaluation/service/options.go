//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package service

// Options holds the options for the batch evaluation service.
type Options struct {
	// Parallelism is the number of concurrent evaluations when parallel
	// batch evaluation is enabled.
	Parallelism int
	// ParallelEnabled enables parallel batch evaluation.
	ParallelEnabled bool
}

// Option defines a function type for configuring the batch evaluation service.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
// Batches run sequentially unless parallel evaluation is enabled.
func NewOptions(opt ...Option) *Options {
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithParallelism sets the number of concurrent evaluations.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithParallelEnabled enables or disables parallel batch evaluation.
func WithParallelEnabled(enabled bool) Option {
	return func(o *Options) {
		o.ParallelEnabled = enabled
	}
}
