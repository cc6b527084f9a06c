// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compat

import (
	"encoding/json"
	"fmt"

	"github.com/nsf/jsondiff"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Identical reports whether two JSON exports hold the same content,
// regardless of formatting and key order.
func Identical(a, b []byte) bool {
	opts := jsondiff.DefaultConsoleOptions()
	d, _ := jsondiff.Compare(a, b, &opts)
	return d == jsondiff.FullMatch
}

// Report renders the differences between two JSON exports. It returns
// an empty string when they match.
func Report(a, b []byte, color bool) (string, error) {
	delta, err := gojsondiff.New().Compare(a, b)
	if err != nil {
		return "", fmt.Errorf("diffing exports: %w", err)
	}
	if !delta.Modified() {
		return "", nil
	}
	var left map[string]interface{}
	if err := json.Unmarshal(a, &left); err != nil {
		return "", err
	}
	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	return f.Format(delta)
}
