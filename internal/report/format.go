// Package report renders calculator results for the terminal.
package report

import (
	"fmt"
	"math"
	"strconv"
)

type Format string

const (
	FormatText   Format = "text"
	FormatStyled Format = "styled"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

var formats = []Format{FormatText, FormatStyled, FormatYAML, FormatJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %s (available: %v)", s, formats)
}

// Magnitudes outside [minPlain, maxPlain) print in exponent form.
const (
	minPlain = 1e-7
	maxPlain = 1e21
)

// FormatValue prints v in its shortest exact form. Zero always prints as "0".
func FormatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a < minPlain || a >= maxPlain {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
