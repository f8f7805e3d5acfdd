// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"cogentcore.org/gradients/cmd/gradients/cmd"
	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/gradient/preset"
	"cogentcore.org/gradients/logx"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// newRootCmd returns the gradients command with all of its subcommands.
func newRootCmd() *cobra.Command {
	c := config.Default()
	var vv, v, q bool

	root := &cobra.Command{
		Use:           "gradients",
		Short:         "List, preview and render perceptual color gradients",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cc *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefault(cc.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&v, "verbose", "v", false, "show informational messages")
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	pf.StringVarP(&c.Presets, "presets", "p", "", "TOML or YAML preset file added to the built in presets")
	pf.StringVarP(&c.Space, "space", "s", "", "color space to interpolate in, overriding the preset")
	pf.StringVarP(&c.Interpolation, "interp", "i", "", "interpolation function, overriding the preset")
	pf.IntVarP(&c.Width, "width", "W", c.Width, "swatch width")

	profile := func(cc *cobra.Command) termenv.Profile {
		return termenv.NewOutput(cc.OutOrStdout()).ColorProfile()
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List presets, color spaces and interpolations",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.List(c, cc.OutOrStdout())
		},
	}

	show := &cobra.Command{
		Use:   "show [preset...]",
		Short: "Preview presets in the terminal",
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Show(c, cc.OutOrStdout(), profile(cc), args...)
		},
	}

	png := &cobra.Command{
		Use:   "png preset",
		Short: "Render a preset to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.PNG(cc.Context(), c, args[0])
		},
	}
	png.Flags().StringVarP(&c.Output, "output", "o", c.Output, "output file")
	png.Flags().IntVarP(&c.Height, "height", "H", c.Height, "swatch height")
	png.Flags().BoolVar(&c.Sheet, "all-spaces", false, "render one band per color space")

	watch := &cobra.Command{
		Use:   "watch [preset...]",
		Short: "Preview the presets of the preset file every time it changes",
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Watch(cc.Context(), c, cc.OutOrStdout(), profile(cc), args...)
		},
	}
	watch.Flags().DurationVar(&c.Debounce, "debounce", c.Debounce, "delay after a change before reloading")

	var stops, yaml bool
	random := &cobra.Command{
		Use:   "random [colors]",
		Short: "Write a preset file with a random gradient",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			n := 4
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return err
				}
			}
			format := preset.TOML
			if yaml {
				format = preset.YAML
			}
			return cmd.Random(c, cc.OutOrStdout(), n, stops, format)
		},
	}
	random.Flags().BoolVar(&stops, "stops", false, "place the colors at random positions")
	random.Flags().BoolVar(&yaml, "yaml", false, "write YAML instead of TOML")
	random.Flags().Int64Var(&c.Seed, "seed", 0, "random seed, 0 for the global random stream")

	root.AddCommand(list, show, png, watch, random)
	return root
}
