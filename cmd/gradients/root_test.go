// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/gradients/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootList(t *testing.T) {
	out, err := run(t, "list", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "sunset")
	assert.Contains(t, out, "YCOCG")
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}

func TestRootShow(t *testing.T) {
	out, err := run(t, "show", "fire", "--space", "lab", "-W", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "fire")

	_, err = run(t, "show", "fire", "--interp", "wobble")
	assert.Error(t, err)
}

func TestRootPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.png")
	_, err := run(t, "png", "ocean", "-o", fn, "-W", "32", "-H", "4", "--vv")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)
	_, err = os.Stat(fn)
	assert.NoError(t, err)

	_, err = run(t, "png")
	assert.Error(t, err)
}

func TestRootRandom(t *testing.T) {
	out, err := run(t, "random", "3", "--seed", "11", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "random-11")

	_, err = run(t, "random", "three")
	assert.Error(t, err)
}
