// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level shared by
// the gradients command and its library packages.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through command-line flags to the end user's preference.
// The default user verbosity level is [slog.LevelInfo] in debug builds
// and [slog.LevelWarn] otherwise.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefault installs a text [slog.Handler] writing to w at [UserLevel]
// as the default logger.
func SetDefault(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar{}})
	slog.SetDefault(slog.New(h))
}

// levelVar reports the current [UserLevel] each time it is asked,
// so that later changes to UserLevel take effect immediately.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
