// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/gradients/cmd/gradients/config"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// ErrNoPresetFile is returned by [Watch] when no preset file is configured.
var ErrNoPresetFile = errors.New("no preset file to watch")

// Watch shows the named presets of [config.Config.Presets] and shows
// them again every time the file changes, until ctx is done. Errors
// reloading the file are logged and watching continues.
func Watch(ctx context.Context, c *config.Config, w io.Writer, profile termenv.Profile, names ...string) error {
	if c.Presets == "" {
		return fmt.Errorf("watch: %w", ErrNoPresetFile)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// The directory is watched so that editors that save by renaming
	// a new file into place keep being seen.
	if err := watcher.Add(filepath.Dir(c.Presets)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	absPath, _ := filepath.Abs(c.Presets)

	reload := func() {
		if err := Show(c, w, profile, names...); err != nil {
			slog.Warn("reloading presets", "file", c.Presets, "err", err)
		}
	}
	reload()

	debounce := c.Debounce
	if debounce <= 0 {
		debounce = config.Default().Debounce
	}
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if abs, _ := filepath.Abs(event.Name); abs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("preset file changed", "event", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case <-fire:
			timer, fire = nil, nil
			reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching presets", "file", c.Presets, "err", err)
		}
	}
}
