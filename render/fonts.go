// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/graticule/internal/cache"
)

// faceCacheSize bounds the number of sized faces kept per FontSet.
const faceCacheSize = 32

// FontSet provides the regular and bold label faces at any size.
type FontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
	faces   *cache.Cache[faceKey, text.Face]
}

type faceKey struct {
	size float64
	bold bool
}

// NewFontSet creates a FontSet from TrueType or OpenType data.
// A nil bold font falls back to the regular one.
func NewFontSet(regular, bold []byte) (*FontSet, error) {
	if len(regular) == 0 {
		return nil, ErrNoFont
	}
	reg, err := text.NewFontSource(regular)
	if err != nil {
		return nil, fmt.Errorf("render: regular font: %w", err)
	}
	fs := &FontSet{
		regular: reg,
		bold:    reg,
		faces:   cache.New[faceKey, text.Face](faceCacheSize),
	}
	if len(bold) > 0 {
		b, err := text.NewFontSource(bold)
		if err != nil {
			return nil, fmt.Errorf("render: bold font: %w", err)
		}
		fs.bold = b
	}
	return fs, nil
}

// DefaultFontSet returns a FontSet over the Go fonts.
func DefaultFontSet() (*FontSet, error) {
	return NewFontSet(goregular.TTF, gobold.TTF)
}

// Face returns the face for size and weight.
func (fs *FontSet) Face(size float64, bold bool) text.Face {
	return fs.faces.GetOrCreate(faceKey{size, bold}, func() text.Face {
		if bold {
			return fs.bold.Face(size)
		}
		return fs.regular.Face(size)
	})
}
