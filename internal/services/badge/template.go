// SPDX-License-Identifier: AGPL-3.0-or-later

package badge

import (
	"strings"

	"viewbadge/internal/domain"
)

// Template is a badge document split into three literal segments around
// two marker occurrences: prefix, middle and suffix. Rendering inserts
// the color between prefix and middle and the count between middle and
// suffix. Immutable after construction, safe for concurrent use.
type Template struct {
	prefix string
	middle string
	suffix string
}

// NewTemplate splits document on the literal marker, at most twice.
// Additional marker occurrences remain part of the suffix. Returns
// domain.ErrMissingPart if fewer than three segments are produced.
func NewTemplate(document, marker string) (*Template, error) {
	parts := strings.SplitN(document, marker, 3)
	if len(parts) < 3 {
		return nil, domain.ErrMissingPart
	}

	return &Template{
		prefix: parts[0],
		middle: parts[1],
		suffix: parts[2],
	}, nil
}

// Render produces the badge document for the given color and count
// strings. The caller guarantees the inputs are well formed; nothing is
// escaped or validated here.
func (t *Template) Render(color, count string) string {
	var doc strings.Builder
	doc.Grow(len(t.prefix) + len(color) + len(t.middle) + len(count) + len(t.suffix))

	doc.WriteString(t.prefix)
	doc.WriteString(color)
	doc.WriteString(t.middle)
	doc.WriteString(count)
	doc.WriteString(t.suffix)

	return doc.String()
}
