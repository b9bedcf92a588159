// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTagNameLength is the upper bound on a trimmed tag name, in characters.
	MaxTagNameLength = 100

	// DefaultTagColor is used when the caller configures none.
	DefaultTagColor = "#6366F1"

	// DefaultTagQuota is the per-user tag limit used when none is configured.
	DefaultTagQuota = 50
)

// NormalizeTagName trims surrounding whitespace and checks the 1-100
// character bound.
func NormalizeTagName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyTagName
	}
	if utf8.RuneCountInString(trimmed) > MaxTagNameLength {
		return "", ErrTagNameTooLong
	}
	return trimmed, nil
}

// NormalizeColor returns color as upper-case "#RRGGBB". The leading '#' is
// optional on input. An empty (or blank) color yields defaultColor, which is
// normalized the same way.
func NormalizeColor(color, defaultColor string) (string, error) {
	c := strings.TrimSpace(color)
	if c == "" {
		c = defaultColor
	}
	if c == "" {
		c = DefaultTagColor
	}

	c = strings.TrimPrefix(c, "#")
	if len(c) != 6 {
		return "", ErrInvalidColor
	}
	for i := 0; i < len(c); i++ {
		if !isHexDigit(c[i]) {
			return "", ErrInvalidColor
		}
	}

	return "#" + strings.ToUpper(c), nil
}

// CheckQuota fails with ErrQuotaExceeded when count is at or above limit.
// A non-positive limit falls back to DefaultTagQuota.
func CheckQuota(count, limit int) error {
	if limit <= 0 {
		limit = DefaultTagQuota
	}
	if count >= limit {
		return fmt.Errorf("%w: %d of %d tags used", ErrQuotaExceeded, count, limit)
	}
	return nil
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
