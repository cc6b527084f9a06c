// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is a small module-aware wrapper around log/slog.
//
// Records are tagged with a module name. By default every module is
// enabled and records go nowhere until Init installs a handler.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Module names used across the repository.
const (
	Catalog = "catalog"
	Export  = "export"
	Compat  = "compat"
	CLI     = "cli"
)

// LevelTrace is below slog.LevelDebug.
const LevelTrace slog.Level = -8

var root atomic.Pointer[slog.Logger]

var (
	modulesMu sync.RWMutex
	// modules is nil when every module is enabled.
	modules map[string]bool
)

func init() {
	root.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(lvl string) (slog.Level, error) {
	switch strings.ToLower(lvl) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %q", lvl)
}

// Init installs a text handler writing to w at the given level.
func Init(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// SetDefault replaces the logger records are written to.
func SetDefault(l *slog.Logger) {
	root.Store(l)
}

// EnableModules restricts logging to a comma-separated list of
// modules. An empty list enables every module.
func EnableModules(list string) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	if strings.TrimSpace(list) == "" {
		modules = nil
		return
	}
	modules = make(map[string]bool)
	for _, m := range strings.Split(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			modules[m] = true
		}
	}
}

func moduleEnabled(module string) bool {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	return modules == nil || modules[module]
}

func write(level slog.Level, module, msg string, kv ...any) {
	if !moduleEnabled(module) {
		return
	}
	l := root.Load()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, msg, append([]any{"module", module}, kv...)...)
}

// Trace logs msg for module at LevelTrace.
func Trace(module, msg string, kv ...any) { write(LevelTrace, module, msg, kv...) }

// Debug logs msg for module at slog.LevelDebug.
func Debug(module, msg string, kv ...any) { write(slog.LevelDebug, module, msg, kv...) }

// Info logs msg for module at slog.LevelInfo.
func Info(module, msg string, kv ...any) { write(slog.LevelInfo, module, msg, kv...) }

// Warn logs msg for module at slog.LevelWarn.
func Warn(module, msg string, kv ...any) { write(slog.LevelWarn, module, msg, kv...) }

// Error logs msg for module at slog.LevelError.
func Error(module, msg string, kv ...any) { write(slog.LevelError, module, msg, kv...) }
