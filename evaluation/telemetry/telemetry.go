//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry records evaluation metrics through the OpenTelemetry
// API. The embedding application chooses the meter provider and exporters;
// with the default global provider all instruments are no-ops.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/docualign/docualign-go/log"
)

const meterName = "github.com/docualign/docualign-go/evaluation"

var (
	initOnce sync.Once

	evaluationCount metric.Int64Counter
	overallScore    metric.Float64Histogram
)

func instruments() (metric.Int64Counter, metric.Float64Histogram) {
	initOnce.Do(func() {
		meter := otel.Meter(meterName)
		var err error
		if evaluationCount, err = meter.Int64Counter(
			"docualign.evaluation.count",
			metric.WithDescription("Total number of document evaluations"),
			metric.WithUnit("1"),
		); err != nil {
			log.Warnf("create evaluation counter: %v", err)
		}
		if overallScore, err = meter.Float64Histogram(
			"docualign.evaluation.overall_score",
			metric.WithDescription("Overall quality score per evaluation"),
			metric.WithUnit("1"),
		); err != nil {
			log.Warnf("create overall score histogram: %v", err)
		}
	})
	return evaluationCount, overallScore
}

// RecordEvaluation records one completed evaluation.
func RecordEvaluation(ctx context.Context, profile string, pass bool, score float64) {
	count, hist := instruments()
	attrs := metric.WithAttributes(
		attribute.String("docualign.profile", profile),
		attribute.Bool("docualign.pass", pass),
	)
	if count != nil {
		count.Add(ctx, 1, attrs)
	}
	if hist != nil {
		hist.Record(ctx, score, attrs)
	}
}
