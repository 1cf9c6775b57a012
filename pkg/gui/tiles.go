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

// Module: tiles.go
// Description: Fixed-size preview tiles for themes and desktops

package gui

import (
	"fmt"

	"charm.land/log/v2"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/gotk3/gotk3/pango"

	"github.com/biglinux/biglinux-themes-gui/pkg/preview"
)

// tilePadding surrounds the preview image inside a tile
const tilePadding = 5

// tile is one entry of a pane. The FlowBoxChild is named after the entry
// so the pane can find and restyle it without rebuilding the list.
type tile struct {
	name  string
	child *gtk.FlowBoxChild
	check *gtk.Image
}

// newTile builds the tile for p, loading imagePath when it is not empty.
// A missing or unreadable image is replaced by an empty one of the same size.
func newTile(p preview.Preview, imagePath string, logger *log.Logger) (*tile, error) {
	child, err := gtk.FlowBoxChildNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create flowbox child: %w", err)
	}
	child.SetName(p.Name)
	child.SetHAlign(gtk.ALIGN_CENTER)
	child.SetVAlign(gtk.ALIGN_START)

	overlay, err := gtk.OverlayNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 6)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile box: %w", err)
	}
	box.SetSizeRequest(p.Size.Width+tilePadding*2, p.Size.Height+tilePadding*2)
	box.SetHExpand(false)
	box.SetVExpand(false)
	box.SetTooltipText(p.Tooltip)
	if ctx, err := box.GetStyleContext(); err == nil {
		ctx.AddClass("clickable-item")
	}

	image, err := loadPreviewImage(imagePath, p.Size, logger)
	if err != nil {
		return nil, err
	}
	image.SetMarginTop(tilePadding)
	image.SetMarginStart(tilePadding)
	image.SetMarginEnd(tilePadding)
	box.PackStart(image, false, false, 0)

	label, err := gtk.LabelNew(p.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile label: %w", err)
	}
	label.SetEllipsize(pango.ELLIPSIZE_END)
	label.SetMaxWidthChars(25)
	label.SetMarginBottom(tilePadding)
	box.PackStart(label, false, false, 0)

	overlay.Add(box)

	check, err := gtk.ImageNewFromIconName("object-select-symbolic", gtk.ICON_SIZE_LARGE_TOOLBAR)
	if err != nil {
		return nil, fmt.Errorf("failed to create check icon: %w", err)
	}
	check.SetHAlign(gtk.ALIGN_END)
	check.SetVAlign(gtk.ALIGN_START)
	check.SetMarginTop(10)
	check.SetMarginEnd(10)
	if ctx, err := check.GetStyleContext(); err == nil {
		ctx.AddClass("current-check")
	}
	// ShowAll on the window must not reveal it
	check.SetNoShowAll(true)
	overlay.AddOverlay(check)

	child.Add(overlay)

	return &tile{name: p.Name, child: child, check: check}, nil
}

// Name implements selection.Tile
func (t *tile) Name() string {
	return t.name
}

// SetCurrent implements selection.Tile
func (t *tile) SetCurrent(current bool) {
	if ctx, err := t.child.GetStyleContext(); err == nil {
		if current {
			ctx.AddClass("current-tile")
		} else {
			ctx.RemoveClass("current-tile")
		}
	}
	t.check.SetVisible(current)
}

// loadPreviewImage scales the file at path into size, or returns an empty
// image of that size so the layout never shifts
func loadPreviewImage(path string, size preview.Size, logger *log.Logger) (*gtk.Image, error) {
	if path != "" {
		image, err := imageFromFile(path, size)
		if err == nil {
			return image, nil
		}
		logger.Warn("Error loading preview image", "path", path, "err", err)
	}

	image, err := gtk.ImageNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder image: %w", err)
	}
	image.SetSizeRequest(size.Width, size.Height)
	return image, nil
}

func imageFromFile(path string, size preview.Size) (*gtk.Image, error) {
	pixbuf, err := gdk.PixbufNewFromFileAtScale(path, size.Width, size.Height, true)
	if err != nil {
		return nil, err
	}
	image, err := gtk.ImageNewFromPixbuf(pixbuf)
	if err != nil {
		return nil, err
	}
	image.SetSizeRequest(size.Width, size.Height)
	return image, nil
}
