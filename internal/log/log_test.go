// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"trace": LevelTrace,
		"DEBUG": slog.LevelDebug,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestModules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "debug"))
	defer EnableModules("")

	EnableModules("catalog")
	Debug(Catalog, "built", "arch", "X86")
	Info(Export, "exported")
	out := buf.String()
	assert.Contains(t, out, "module=catalog")
	assert.Contains(t, out, "arch=X86")
	assert.NotContains(t, out, "module=export")

	buf.Reset()
	EnableModules("")
	Info(Export, "exported")
	assert.Contains(t, buf.String(), "module=export")

	buf.Reset()
	Trace(Export, "too verbose")
	assert.Empty(t, buf.String())
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "trace"))
	defer Init(&buf, "info")

	Trace(CLI, "t")
	Debug(CLI, "d")
	Info(CLI, "i")
	Warn(CLI, "w")
	Error(CLI, "e")
	out := buf.String()
	for _, want := range []string{"level=DEBUG-4 msg=t", "level=DEBUG msg=d", "level=INFO msg=i", "level=WARN msg=w", "level=ERROR msg=e"} {
		assert.Contains(t, out, want)
	}
}
