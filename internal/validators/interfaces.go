// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: field name to message map returned when one or more
//     fields fail. It unwraps to ErrValidation so callers can match it with
//     errors.Is and render the messages per field.
//
// Usage patterns:
//  1. Inject Validator implementations into services.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Use errors.As to extract ValidationErrors for the response body.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
