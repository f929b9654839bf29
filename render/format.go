// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/graticule/grid"
	"github.com/gogpu/graticule/internal/cache"
)

// formatCacheSize bounds the number of remembered label strings.
const formatCacheSize = 4096

// Formatter turns coordinates into label text.
//
// Spacing is the distance in degrees between the labelled line and its
// neighbours. At one degree and above labels are whole degrees. Below that,
// sexagesimal labels add minutes and seconds as needed and decimal labels add
// one digit per finer level, up to four.
//
// A Formatter is safe for concurrent use.
type Formatter struct {
	format  grid.AngleFormat
	printer *message.Printer
	cache   *cache.Cache[formatKey, string]
}

type formatKey struct {
	value, spacing float64
}

// NewFormatter creates a formatter using English number formatting.
func NewFormatter(format grid.AngleFormat) *Formatter {
	return NewLocalizedFormatter(format, language.English)
}

// NewLocalizedFormatter creates a formatter that prints decimal numbers for
// the given language, e.g. with a decimal comma for German.
func NewLocalizedFormatter(format grid.AngleFormat, tag language.Tag) *Formatter {
	return &Formatter{
		format:  format,
		printer: message.NewPrinter(tag),
		cache:   cache.New[formatKey, string](formatCacheSize),
	}
}

// Format returns the label for value.
func (f *Formatter) Format(value, spacing float64) string {
	return f.cache.GetOrCreate(formatKey{value, spacing}, func() string {
		if f.format == grid.Decimal {
			return f.decimal(value, spacing)
		}
		return f.sexagesimal(value, spacing)
	})
}

func (f *Formatter) decimal(value, spacing float64) string {
	return f.printer.Sprintf(fmt.Sprintf("%%.%df°", decimalPlaces(spacing)), value)
}

// decimalPlaces follows the level bands so that subdivided spacings a few
// ulps short of 0.1 still print one digit.
func decimalPlaces(spacing float64) int {
	level, ok := grid.LevelForResolution(spacing)
	if !ok {
		return 4
	}
	return max(int(level)-1, 0)
}

func (f *Formatter) sexagesimal(value, spacing float64) string {
	if level, ok := grid.LevelForResolution(spacing); ok && level <= grid.Level1 {
		return f.decimal(value, spacing)
	}
	d, m, s := toDMS(value)
	sign := ""
	if value < 0 && (d != 0 || m != 0 || s != 0) {
		sign = "-"
	}
	switch {
	case m == 0 && s == 0:
		return fmt.Sprintf("%s%d°", sign, d)
	case s == 0:
		return fmt.Sprintf("%s%d° %d’", sign, d, m)
	case s == math.Trunc(s):
		return fmt.Sprintf("%s%d° %d’ %d”", sign, d, m, int(s))
	}
	return fmt.Sprintf("%s%d° %d’ %.2f”", sign, d, m, s)
}

// toDMS splits the magnitude of an angle into degrees, minutes and seconds
// rounded to hundredths, carrying 60 seconds or minutes upward.
func toDMS(value float64) (d, m int, s float64) {
	v := math.Abs(value)
	d = int(math.Floor(v))
	v = (v - float64(d)) * 60
	m = int(math.Floor(v))
	s = math.Round((v-float64(m))*60*100) / 100
	if s >= 60 {
		m++
		s = 0
	}
	if m >= 60 {
		d++
		m = 0
	}
	return d, m, s
}
