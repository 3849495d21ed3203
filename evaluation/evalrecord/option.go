//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package evalrecord

// Options holds configuration shared by record manager implementations.
type Options struct {
	// BaseDir is the directory holding the record store.
	BaseDir string
}

// NewOptions builds Options from the given option list.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		BaseDir: "evaluations",
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a record manager.
type Option func(*Options)

// WithBaseDir overrides the default base directory used to store records.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}
