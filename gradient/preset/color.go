// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/gradients/colorspace"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrColor is returned for a color string that cannot be parsed.
var ErrColor = errors.New("invalid color")

// ParseColor parses a color as a packed 0xAARRGGBB value. It accepts
// hex colors (#rgb, #rrggbb and #rrggbbaa), 0x prefixed 0xAARRGGBB
// values and SVG color names such as "darkslateblue".
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("preset.ParseColor %q: %w", s, ErrColor)
		}
		return uint32(v), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colorspace.FromColor(c), nil
	}
	return 0, fmt.Errorf("preset.ParseColor %q: unknown color name: %w", s, ErrColor)
}

func parseHex(s string) (uint32, error) {
	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("preset.ParseColor %q: %w", s, ErrColor)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("preset.ParseColor %q: %w: %w", s, ErrColor, err)
	}
	r, g, b := c.RGB255()
	return colorspace.Pack(alpha, r, g, b), nil
}

// FormatColor formats a packed 0xAARRGGBB color as #rrggbb, or as
// #rrggbbaa if it is not opaque.
func FormatColor(argb uint32) string {
	rgb := colorspace.Decompose(argb)
	hex := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hex()
	if a := colorspace.Alpha(argb); a != 0xFF {
		return fmt.Sprintf("%s%02x", hex, a)
	}
	return hex
}
