// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/gradients/gradient"
	"github.com/muesli/termenv"
)

// block is the character drawn for each column of a preview.
const block = "█"

// Preview writes the gradient to w as a line of width colored blocks,
// using the colors supported by the given terminal profile.
// Alpha is ignored.
func Preview(w io.Writer, g *gradient.Gradient, width int, profile termenv.Profile) error {
	var b strings.Builder
	for _, c := range g.Sample(width) {
		hex := fmt.Sprintf("#%06x", c&0xFFFFFF)
		b.WriteString(profile.String(block).Foreground(profile.Color(hex)).String())
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
