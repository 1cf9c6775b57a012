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

// Module: css.go
// Description: Application stylesheet

package gui

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

const appCSS = `
.clickable-item {
	transition: 500ms ease;
	border-radius: 10px;
}

flowboxchild {
	border-radius: 10px;
	padding: 3px;
}

flowboxchild:hover {
	box-shadow: inset 0 0 0 2px alpha(@theme_selected_bg_color, 0.5);
}

flowboxchild.current-tile {
	background-color: alpha(@theme_selected_bg_color, 0.08);
	box-shadow: inset 0 0 0 2px @theme_selected_bg_color;
}

.current-check {
	color: #26a269;
}

.desktop-section {
	background-color: @theme_base_color;
}

.pane-title {
	font-weight: bold;
	margin: 12px;
}

.toast.error {
	background-color: #c01c28;
	color: #ffffff;
}
`

// installCSS registers the stylesheet for the default screen
func installCSS() error {
	provider, err := gtk.CssProviderNew()
	if err != nil {
		return fmt.Errorf("failed to create css provider: %w", err)
	}
	if err := provider.LoadFromData(appCSS); err != nil {
		return fmt.Errorf("failed to load css: %w", err)
	}
	screen, err := gdk.ScreenGetDefault()
	if err != nil {
		return fmt.Errorf("failed to get default screen: %w", err)
	}
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	return nil
}
