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
	"github.com/docualign/docualign-go/evaluation/evalrecord"
	"github.com/docualign/docualign-go/evaluation/evalrecord/local"
	"github.com/docualign/docualign-go/evaluation/evaluator/registry"
)

// Options is the options for the document evaluator.
type Options struct {
	profile       Profile
	registry      Registry
	recordManager evalrecord.Manager
}

// Option is a function that configures the document evaluator.
type Option func(*Options)

// newOptions applies the options over the defaults: the HHH profile, the
// built-in evaluator registry and the local file record store.
func newOptions(opt ...Option) *Options {
	opts := &Options{
		profile:       ProfileHHH,
		registry:      registry.New(),
		recordManager: local.NewManager(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithProfile sets the evaluation profile.
func WithProfile(profile Profile) Option {
	return func(opts *Options) {
		opts.profile = profile
	}
}

// WithRegistry sets the evaluator registry.
func WithRegistry(r Registry) Option {
	return func(opts *Options) {
		opts.registry = r
	}
}

// WithRecordManager sets the evaluation record store.
func WithRecordManager(m evalrecord.Manager) Option {
	return func(opts *Options) {
		opts.recordManager = m
	}
}
