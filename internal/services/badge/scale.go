// SPDX-License-Identifier: AGPL-3.0-or-later

// Package badge contains the color scale and template engine used to
// render view-count badges.
package badge

import (
	"math"
	"math/rand/v2"
	"strings"

	"viewbadge/internal/domain"
)

// ColorScale is an ordered list of colors progressing from low view
// counts to high ones, with a configured ceiling. Immutable after
// construction, safe for concurrent use.
type ColorScale struct {
	colors   []string
	maxViews uint64
}

// NewColorScale builds a scale from a newline-delimited list of color
// values. Empty lines are discarded. Returns domain.ErrEmptyScale if no
// colors remain and domain.ErrInvalidMaxViews if maxViews is zero.
func NewColorScale(source string, maxViews uint64) (*ColorScale, error) {
	if maxViews == 0 {
		return nil, domain.ErrInvalidMaxViews
	}

	var colors []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		colors = append(colors, line)
	}
	if len(colors) == 0 {
		return nil, domain.ErrEmptyScale
	}

	return &ColorScale{colors: colors, maxViews: maxViews}, nil
}

// Len returns the number of colors on the scale.
func (s *ColorScale) Len() int {
	return len(s.colors)
}

// ColorForCount linearly interpolates a color for the given view count.
// The count is clamped to [0, maxViews] before the index is computed, so
// the lookup is always in bounds even though counts grow without limit.
func (s *ColorScale) ColorForCount(count uint64) string {
	views := min(count, s.maxViews)
	ratio := float64(len(s.colors)-1) / float64(s.maxViews)
	interp := float64(views) * ratio
	return s.colors[int(math.Floor(interp))]
}

// RandomColor returns a uniformly random color from the scale, drawn
// from [0, len-1): the final color is reserved for counts at the
// milestone ceiling and is never picked at random. A one-color scale
// returns its only color.
func (s *ColorScale) RandomColor() string {
	if len(s.colors) < 2 {
		return s.colors[0]
	}
	return s.colors[rand.IntN(len(s.colors)-1)]
}
