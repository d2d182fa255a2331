// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders n with thousands separators ("11,779").
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a fraction as a percentage rounded half up to
// decimalPlaces ("0.2357" -> "24%" at zero places).
func FormatPercent(f float64, decimalPlaces int) string {
	multiplier := math.Pow(10, float64(decimalPlaces))
	rounded := math.Floor(f*100*multiplier+0.5) / multiplier
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
