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

// Module: preview.go
// Description: Resolves preview images, tile sizes and labels for themes and desktops

package preview

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/biglinux/biglinux-themes-gui/pkg/i18n"
)

// Kind tells themes and desktops apart
type Kind int

const (
	KindTheme Kind = iota
	KindDesktop
)

func (k Kind) String() string {
	if k == KindDesktop {
		return "desktop"
	}
	return "theme"
}

// Ext is the preview image extension for the kind
func (k Kind) Ext() string {
	if k == KindDesktop {
		return ".svg"
	}
	return ".png"
}

// Size is a width/height pair in pixels
type Size struct {
	Width  int
	Height int
}

// Fixed image sizes, tiles never resize with their content
var (
	ThemeSize   = Size{Width: 200, Height: 112}
	DesktopSize = Size{Width: 240, Height: 168}
)

// SizeOf returns the image size used for kind
func SizeOf(k Kind) Size {
	if k == KindDesktop {
		return DesktopSize
	}
	return ThemeSize
}

// Preview describes everything a tile needs to render one entry
type Preview struct {
	Kind        Kind
	Name        string
	DisplayName string
	Tooltip     string
	Path        string
	Size        Size
	// Available is false when Path does not point to a regular file
	Available bool
}

// Resolver maps entry names to their previews
type Resolver struct {
	ImageDir string
}

// Resolve never fails: a missing image only clears Available
func (r Resolver) Resolve(kind Kind, name string) Preview {
	p := Preview{
		Kind:        kind,
		Name:        name,
		DisplayName: DisplayName(name),
		Path:        filepath.Join(r.ImageDir, name+kind.Ext()),
		Size:        SizeOf(kind),
	}
	p.Tooltip = Tooltip(kind, p.DisplayName)
	if info, err := os.Stat(p.Path); err == nil && info.Mode().IsRegular() {
		p.Available = true
	}
	return p
}

// DisplayName turns "Big-Dark-Blue" into "Big Dark Blue"
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// Tooltip returns the translated hover text for an entry
func Tooltip(kind Kind, displayName string) string {
	if kind == KindDesktop {
		return i18n.Tformat("Click to switch to the {} desktop environment", displayName)
	}
	return i18n.Tformat("Click to apply the {} theme", displayName)
}
