//
// DocuALIGN is pleased to support the open source community by making docualign-go available.
//
// Copyright (C) 2026 DocuALIGN.  All rights reserved.
//
// docualign-go is licensed under the Apache License Version 2.0.
//
//

package evaluator

// Criterion names. Stable across scoring revisions; callers must tolerate
// additions.
const (
	// NameTechnicalPreservation identifies the technical-token preservation criterion.
	NameTechnicalPreservation = "technical_preservation"
	// NameStyleCompliance identifies the absolute style compliance criterion.
	NameStyleCompliance = "style_compliance"
	// NameStyleReduction identifies the before/after violation-reduction criterion.
	NameStyleReduction = "style_reduction"
	// NameTemplateCompliance identifies the template structural compliance criterion.
	NameTemplateCompliance = "template_compliance"
	// NameGapResolution identifies the gap resolution criterion.
	NameGapResolution = "gap_resolution"
)
