// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Sentinel errors for the render package.
var (
	// ErrNilContext is returned when a Canvas has no drawing context.
	ErrNilContext = errors.New("render: nil drawing context")

	// ErrNilProjector is returned when a Canvas has no projector.
	ErrNilProjector = errors.New("render: nil projector")

	// ErrNoFont is returned when a FontSet is created without font data.
	ErrNoFont = errors.New("render: no font data")

	// ErrInvalidStyle is returned by Style.Validate.
	ErrInvalidStyle = errors.New("render: invalid style")
)
