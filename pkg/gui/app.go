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

// Module: app.go
// Description: GTK application lifecycle

package gui

import (
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// ApplicationID is the D-Bus name of the application
const ApplicationID = "org.biglinux.themes"

// Run starts the GTK application and blocks until it quits, returning the
// exit status. A second launch only raises the existing window.
// args must not carry positional arguments, the application opens no files.
func Run(opts Options, args []string) int {
	glib.SetPrgname("biglinux-themes-gui")

	app, err := gtk.ApplicationNew(ApplicationID, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		opts.Logger.Error("Failed to create application", "err", err)
		return 1
	}

	var window *Window
	app.Connect("activate", func() {
		if window != nil {
			window.Present()
			return
		}
		w, err := NewWindow(app, opts)
		if err != nil {
			opts.Logger.Error("Failed to create main window", "err", err)
			app.Quit()
			return
		}
		window = w
		window.Present()
	})

	return app.Run(args)
}
