// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/gradients/cmd/gradients/config"
	"cogentcore.org/gradients/gradient/preset"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, List(config.Default(), &b))
	out := b.String()
	for _, s := range []string{"Presets:", "sunset", "Color spaces:", "SRLAB2", "Interpolations:", "SmootherStep"} {
		assert.Contains(t, out, s)
	}
}

func TestShow(t *testing.T) {
	c := config.Default()
	c.Width = 12
	var b bytes.Buffer
	require.NoError(t, Show(c, &b, termenv.Ascii, "gray", "fade"))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "gray"))
	assert.Equal(t, 12, strings.Count(lines[1], "█"))

	b.Reset()
	require.NoError(t, Show(c, &b, termenv.TrueColor, "gray"))
	assert.Contains(t, b.String(), "38;2;")

	assert.Error(t, Show(c, &b, termenv.Ascii, "nope"))
}

func TestShowAll(t *testing.T) {
	c := config.Default()
	c.Width = 4
	var b bytes.Buffer
	require.NoError(t, Show(c, &b, termenv.Ascii))
	assert.Equal(t, len(preset.Builtin()), strings.Count(b.String(), "\n"))
}

func TestPNG(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	c.Width, c.Height = 40, 6
	c.Output = filepath.Join(dir, "strip.png")
	require.NoError(t, PNG(context.Background(), c, "sunset"))
	img, err := imgio.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	c.Sheet = true
	c.Output = filepath.Join(dir, "sheet.png")
	require.NoError(t, PNG(context.Background(), c, "sunset"))
	img, err = imgio.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 6*16, img.Bounds().Dy())

	assert.Error(t, PNG(context.Background(), c, "nope"))
}

func TestRandom(t *testing.T) {
	c := config.Default()
	c.Seed = 7
	var a, b bytes.Buffer
	require.NoError(t, Random(c, &a, 5, true, preset.TOML))
	require.NoError(t, Random(c, &b, 5, true, preset.TOML))
	assert.Equal(t, a.String(), b.String())

	ps, err := preset.Unmarshal(a.Bytes(), preset.TOML)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "random-7", ps[0].Name)
	g, err := ps[0].Gradient()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())

	b.Reset()
	c.Space = "LUV"
	require.NoError(t, Random(c, &b, 3, false, preset.YAML))
	ps, err = preset.Unmarshal(b.Bytes(), preset.YAML)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "LUV", ps[0].Space.String())

	assert.Error(t, Random(c, &b, 0, false, preset.TOML))

	b.Reset()
	c.Seed = 0
	require.NoError(t, Random(c, &b, 2, false, preset.TOML))
	ps, err = preset.Unmarshal(b.Bytes(), preset.TOML)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "random", ps[0].Name)
}

// syncBuffer is a [bytes.Buffer] safe for concurrent use.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "watched.toml")
	write := func(name string) {
		data := "[[gradient]]\nname = \"" + name + "\"\ncolors = [\"red\", \"blue\"]\n"
		require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	}
	write("first")

	c := config.Default()
	c.Presets = fn
	c.Width = 8
	c.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, c, &out, termenv.Ascii, "first", "second") }()

	// second is missing until the file changes, so only first is shown.
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "first")
	}, 2*time.Second, 10*time.Millisecond)

	// Give the watcher time to start before changing the file.
	time.Sleep(50 * time.Millisecond)
	data := "[[gradient]]\nname = \"first\"\ncolors = [\"red\", \"blue\"]\n\n[[gradient]]\nname = \"second\"\ncolors = [\"white\", \"black\"]\n"
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "second")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchNoFile(t *testing.T) {
	err := Watch(context.Background(), config.Default(), &bytes.Buffer{}, termenv.Ascii)
	assert.ErrorIs(t, err, ErrNoPresetFile)
}
