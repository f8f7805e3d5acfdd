// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the gradients tool.
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/colorspace"
	"cogentcore.org/gradients/gradient"
)

// List writes the available presets, color spaces and interpolations to w.
func List(c *config.Config, w io.Writer) error {
	presets, err := c.LoadPresets()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Presets:")
	for _, p := range presets {
		space := gradient.DefaultColorSpace
		if p.Space != nil {
			space = *p.Space
		}
		n := len(p.Colors) + len(p.Stops)
		fmt.Fprintf(tw, "  %s\t%v\t%d stops\n", p.Name, space, n)
	}
	fmt.Fprintln(tw, "\nColor spaces:")
	for _, s := range colorspace.ColorSpacesValues() {
		fmt.Fprintf(tw, "  %v\t%s\n", s, s.Desc())
	}
	fmt.Fprintln(tw, "\nInterpolations:")
	for _, in := range gradient.InterpolationsValues() {
		fmt.Fprintf(tw, "  %v\t%s\n", in, in.Desc())
	}
	return tw.Flush()
}
