// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders catalogs for people: a tree listing for the
// terminal and an HTML chart of namespace sizes.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xlab/treeprint"

	"github.com/aclements/go-regcat/catalog"
	"github.com/aclements/go-regcat/regspec"
)

// Tree lists the namespaces of c as a tree. With no labels, every
// published namespace is listed. System registers are grouped under
// their own branch.
func Tree(c *catalog.Catalog, labels ...string) (string, error) {
	if len(labels) == 0 {
		labels = c.Labels()
	}
	tree := treeprint.NewWithRoot("catalog")
	for _, label := range labels {
		ns, err := c.Namespace(label)
		if err != nil {
			return "", err
		}
		branch := tree.AddBranch(fmt.Sprintf("%s (%d registers)", label, ns.Len()))
		var sys treeprint.Tree
		for _, e := range ns.Entries() {
			node := fmt.Sprintf("[%d] %s", e.ID, e.Name)
			if !e.Flags.Has(regspec.System) {
				branch.AddNode(node)
				continue
			}
			if sys == nil {
				sys = branch.AddBranch("system")
			}
			sys.AddNode(node)
		}
	}
	return tree.String(), nil
}

// Counts returns the number of general and system registers in ns.
func Counts(ns *catalog.Namespace) (general, system int) {
	for _, e := range ns.Entries() {
		if e.Flags.Has(regspec.System) {
			system++
		} else {
			general++
		}
	}
	return general, system
}

// WriteChart writes an HTML page to w with a stacked bar per
// architecture showing its general and system register counts.
func WriteChart(w io.Writer, c *catalog.Catalog) error {
	labels := c.Labels()
	general := make([]opts.BarData, 0, len(labels))
	system := make([]opts.BarData, 0, len(labels))
	for _, label := range labels {
		ns, err := c.Namespace(label)
		if err != nil {
			return err
		}
		g, s := Counts(ns)
		general = append(general, opts.BarData{Value: g})
		system = append(system, opts.BarData{Value: s})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "regcat"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Register namespaces",
			Subtitle: "Published registers per architecture",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("general", general).
		AddSeries("system", system).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "total"}))
	return bar.Render(w)
}
