// SPDX-License-Identifier: AGPL-3.0-or-later

package domain

import "errors"

// Sentinel errors for the domain layer.
// Use errors.Is() to check for these errors.
// Wrap with fmt.Errorf("context: %w", ErrXxx) to add context.

var (
	// Template errors
	ErrMissingPart = errors.New("template is missing a part")

	// Color scale errors
	ErrEmptyScale      = errors.New("color scale is empty")
	ErrInvalidMaxViews = errors.New("max views must be positive")

	// Counter errors
	ErrCounterUnavailable = errors.New("counter unavailable")

	// Fill mode errors
	ErrUnknownFillMode = errors.New("unknown fill mode")
)
