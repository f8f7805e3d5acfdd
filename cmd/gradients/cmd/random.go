// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/gradient"
	"cogentcore.org/gradients/gradient/preset"
)

// Random writes a preset file with a random gradient of n colors to w,
// in the given format. Stops are placed at random positions when
// stops is true.
func Random(c *config.Config, w io.Writer, n int, stops bool, format preset.Format) error {
	name := "random"
	r := randx.NewGlobalRand()
	if c.Seed != 0 {
		name = fmt.Sprintf("random-%d", c.Seed)
		r = randx.NewSysRand(c.Seed)
	}
	var g *gradient.Gradient
	var err error
	if stops {
		g, err = gradient.RandomWithStops(n, r)
	} else {
		g, err = gradient.Random(n, r)
	}
	if err != nil {
		return fmt.Errorf("random: %w", err)
	}
	if err := c.Apply(g); err != nil {
		return fmt.Errorf("random: %w", err)
	}
	b, err := preset.Marshal([]preset.Preset{preset.FromGradient(name, g)}, format)
	if err != nil {
		return fmt.Errorf("random: %w", err)
	}
	_, err = w.Write(b)
	return err
}
