// SPDX-License-Identifier: AGPL-3.0-or-later

// Package web holds the embedded default badge assets, used when no
// colors or template file is configured.
package web

import _ "embed"

// DefaultColors is a nine-step scale from pale to saturated blue,
// newline-delimited, low view counts first.
//
//go:embed colors.txt
var DefaultColors string

// DefaultTemplate is the badge document with the two insertion markers.
//
//go:embed badge.svg
var DefaultTemplate string
