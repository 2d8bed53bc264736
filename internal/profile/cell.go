// Package profile implements the tabular profiling engine: per-column type
// inference, descriptive statistics, IQR outlier detection, quality scoring,
// and visualization recommendations over an immutable table.
package profile

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind tags the outcome of parsing a single cell.
type CellKind int

const (
	KindNone CellKind = iota
	KindNumber
	KindDate
	KindPattern
)

// CellValue is the result of ParseCell: a number, a date, or a named
// pattern match.
type CellValue struct {
	Kind    CellKind
	Number  float64
	Pattern string
}

var numericStripper = strings.NewReplacer(",", "", "%", "", "¥", "", "$", "")

// dateFormats are tried in order; first match wins.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006年01月02日",
	"01-02-2006",
}

type patternMatcher struct {
	name string
	re   *regexp.Regexp
}

// patterns is a closed, ordered set; evaluation is first-match-wins.
var patterns = []patternMatcher{
	{"email", regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z]{2,}$`)},
	{"url", regexp.MustCompile(`^https?://\S+$`)},
	{"phone", regexp.MustCompile(`^[+]?[\d\s\-()]{7,15}$`)},
	{"percentage", regexp.MustCompile(`^-?\d+\.?\d*\s*%$`)},
	{"currency_cny", regexp.MustCompile(`^¥[\d,]+\.?\d*$`)},
	{"currency_usd", regexp.MustCompile(`^\$[\d,]+\.?\d*$`)},
	{"boolean", regexp.MustCompile(`(?i)^(true|false|yes|no|是|否|1|0)$`)},
	{"ip_address", regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)},
}

// ParseNumber normalizes a cell for numeric interpretation, stripping
// thousands separators, percent signs, and currency markers before parsing.
func ParseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(numericStripper.Replace(cell))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCell classifies one trimmed, non-empty cell. Attempts, in strict
// priority order: numeric, date, then the fixed pattern set. Returns
// KindNone when nothing applies.
func ParseCell(cell string) CellValue {
	if v, ok := ParseNumber(cell); ok {
		return CellValue{Kind: KindNumber, Number: v}
	}
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, cell); err == nil {
			return CellValue{Kind: KindDate}
		}
	}
	for _, p := range patterns {
		if p.re.MatchString(cell) {
			return CellValue{Kind: KindPattern, Pattern: p.name}
		}
	}
	return CellValue{Kind: KindNone}
}
