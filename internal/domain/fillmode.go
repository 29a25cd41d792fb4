// SPDX-License-Identifier: AGPL-3.0-or-later

package domain

import (
	"fmt"
	"strings"
)

// FillMode selects the strategy used to pick a badge color.
type FillMode string

const (
	// FillModeMilestone derives the color from the cumulative view count.
	FillModeMilestone FillMode = "milestone"

	// FillModeRandom picks a color at random on every request.
	FillModeRandom FillMode = "random"
)

// ParseFillMode parses a fill mode value, matching the recognized
// literals case-insensitively. An empty value defaults to milestone.
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(s) {
	case "", string(FillModeMilestone):
		return FillModeMilestone, nil
	case string(FillModeRandom):
		return FillModeRandom, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFillMode, s)
	}
}
