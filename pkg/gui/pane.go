// Copyright (C) 2025 BigLinux contributors
// This file is part of BigLinux Themes GUI - a theme and desktop layout switcher for BigLinux.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Module: pane.go
// Description: Scrollable grid of tiles for one kind of entry

package gui

import (
	"fmt"

	"charm.land/log/v2"
	"github.com/gotk3/gotk3/gtk"

	"github.com/biglinux/biglinux-themes-gui/pkg/preview"
	"github.com/biglinux/biglinux-themes-gui/pkg/preview/thumbnail"
	"github.com/biglinux/biglinux-themes-gui/pkg/selection"
)

// paneLayout configures the flowbox of a pane
type paneLayout struct {
	title        string
	minPerLine   uint
	maxPerLine   uint
	spacing      uint
	scrollH      gtk.PolicyType
	sectionClass string
}

// paneView implements selection.View for one flowbox
type paneView struct {
	root    *gtk.Box
	flow    *gtk.FlowBox
	tiles   []*tile
	toaster *toaster
	logger  *log.Logger
}

func newPaneView(layout paneLayout, toaster *toaster, logger *log.Logger) (*paneView, error) {
	root, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create pane box: %w", err)
	}
	if layout.sectionClass != "" {
		if ctx, err := root.GetStyleContext(); err == nil {
			ctx.AddClass(layout.sectionClass)
		}
	}

	title, err := gtk.LabelNew(layout.title)
	if err != nil {
		return nil, fmt.Errorf("failed to create pane title: %w", err)
	}
	title.SetHAlign(gtk.ALIGN_START)
	if ctx, err := title.GetStyleContext(); err == nil {
		ctx.AddClass("pane-title")
	}
	root.PackStart(title, false, false, 0)

	scrolled, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrolled window: %w", err)
	}
	scrolled.SetPolicy(layout.scrollH, gtk.POLICY_AUTOMATIC)
	scrolled.SetVExpand(true)
	scrolled.SetMarginStart(12)
	scrolled.SetMarginEnd(12)
	scrolled.SetMarginBottom(6)
	root.PackStart(scrolled, true, true, 0)

	flow, err := gtk.FlowBoxNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create flowbox: %w", err)
	}
	flow.SetVAlign(gtk.ALIGN_START)
	flow.SetSelectionMode(gtk.SELECTION_NONE)
	flow.SetActivateOnSingleClick(true)
	flow.SetHomogeneous(false)
	flow.SetMinChildrenPerLine(layout.minPerLine)
	flow.SetMaxChildrenPerLine(layout.maxPerLine)
	flow.SetRowSpacing(layout.spacing)
	flow.SetColumnSpacing(layout.spacing)
	scrolled.Add(flow)

	return &paneView{root: root, flow: flow, toaster: toaster, logger: logger}, nil
}

// populate adds one tile per name, highlighting current
func (v *paneView) populate(kind preview.Kind, names []string, current string, resolver preview.Resolver, thumbs *thumbnail.Thumbnailer) error {
	for _, name := range names {
		p := resolver.Resolve(kind, name)
		t, err := newTile(p, thumbs.Thumbnail(p), v.logger)
		if err != nil {
			return fmt.Errorf("failed to create tile for %s: %w", name, err)
		}
		v.flow.Insert(t.child, -1)
		v.tiles = append(v.tiles, t)
	}
	if marked := selection.MarkCurrent(v.tiles, current); marked == 0 {
		v.logger.Warn("Current entry has no tile", "kind", kind, "current", current)
	}
	return nil
}

// onSelect calls fn with the entry name of every activated tile
func (v *paneView) onSelect(fn func(name string)) {
	v.flow.Connect("child-activated", func(_ *gtk.FlowBox, child *gtk.FlowBoxChild) {
		name, err := child.GetName()
		if err != nil || name == "" {
			v.logger.Error("Activated tile without a name", "err", err)
			return
		}
		fn(name)
	})
}

// MarkCurrent implements selection.View
func (v *paneView) MarkCurrent(name string) {
	marked := selection.MarkCurrent(v.tiles, name)
	v.logger.Debug("Updated highlight", "current", name, "marked", marked)
}

// ShowToast implements selection.View
func (v *paneView) ShowToast(message string) {
	v.toaster.show(message, false)
}

// ShowError implements selection.View
func (v *paneView) ShowError(message string) {
	v.toaster.show(message, true)
}
