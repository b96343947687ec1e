// Package advisor maps environmental sensor readings to advisories through
// fixed, ordered threshold tables.
package advisor

import (
	"math"
	"strconv"
	"strings"
)

type comparison int

const (
	below  comparison = iota // v < limit
	atMost                   // v <= limit
)

// band is one row of a threshold table.
type band struct {
	cmp   comparison
	limit float64
	text  string
}

func (b band) matches(v float64) bool {
	if b.cmp == atMost {
		return v <= b.limit
	}
	return v < b.limit
}

// table is evaluated top to bottom; the first matching band wins and
// fallback covers everything above the last limit.
type table struct {
	bands    []band
	fallback string
}

func (t table) lookup(v float64) string {
	for _, b := range t.bands {
		if b.matches(v) {
			return b.text
		}
	}
	return t.fallback
}

// sentences joins phrases with ". " and closes with a period.
func sentences(parts []string) string {
	return strings.Join(parts, ". ") + "."
}

// FormatNumber renders a raw reading in its shortest decimal form: 25, 25.5, -3.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
