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

// Module: window.go
// Description: Main window with the themes sidebar and the desktops area

package gui

import (
	"context"
	"fmt"

	"charm.land/log/v2"
	"github.com/gotk3/gotk3/gtk"
	"github.com/toqueteos/webbrowser"

	"github.com/biglinux/biglinux-themes-gui/pkg/config"
	"github.com/biglinux/biglinux-themes-gui/pkg/i18n"
	"github.com/biglinux/biglinux-themes-gui/pkg/manager"
	"github.com/biglinux/biglinux-themes-gui/pkg/notify"
	"github.com/biglinux/biglinux-themes-gui/pkg/preview"
	"github.com/biglinux/biglinux-themes-gui/pkg/preview/thumbnail"
	"github.com/biglinux/biglinux-themes-gui/pkg/selection"
	"github.com/biglinux/biglinux-themes-gui/pkg/shell"
)

// ProjectURL is opened by the About button
const ProjectURL = "https://www.biglinux.com.br"

const (
	windowWidth   = 1000
	windowHeight  = 620
	sidebarWidth  = 260
	desktopLayout = 12
)

// Options carries everything the window is built from
type Options struct {
	Config config.Config
	// Runner defaults to a shell.Bridge on Config.Dir
	Runner   shell.Runner
	Logger   *log.Logger
	Notifier *notify.Notifier
}

// Window is the single application window
type Window struct {
	win      *gtk.ApplicationWindow
	header   *gtk.HeaderBar
	themes   *manager.ThemeManager
	desktops *manager.DesktopManager
	logger   *log.Logger
}

// NewWindow queries the scripts, builds both panes and wires the
// selection controllers. The window is not shown.
func NewWindow(app *gtk.Application, opts Options) (*Window, error) {
	logger := opts.Logger
	runner := opts.Runner
	if runner == nil {
		runner = shell.NewBridge(opts.Config.Dir, logger)
	}

	ctx := context.Background()
	w := &Window{
		themes:   manager.NewThemeManager(ctx, runner, logger),
		desktops: manager.NewDesktopManager(ctx, runner, logger),
		logger:   logger,
	}

	win, err := gtk.ApplicationWindowNew(app)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.win = win
	win.SetTitle(i18n.T("BigLinux Themes"))
	win.SetDefaultSize(windowWidth, windowHeight)
	win.SetIconName("biglinux-themes-gui")

	if err := w.buildHeader(); err != nil {
		return nil, err
	}

	if err := installCSS(); err != nil {
		logger.Warn("Styling unavailable", "err", err)
	}

	overlay, err := gtk.OverlayNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	toaster, err := newToaster(opts.Config.ToastTimeout, opts.Notifier)
	if err != nil {
		return nil, err
	}

	themePane, err := newPaneView(paneLayout{
		title:      i18n.T("Themes"),
		minPerLine: 1,
		maxPerLine: 1,
		spacing:    6,
		scrollH:    gtk.POLICY_NEVER,
	}, toaster, logger)
	if err != nil {
		return nil, err
	}

	desktopPane, err := newPaneView(paneLayout{
		title:        i18n.T("Desktop"),
		minPerLine:   2,
		maxPerLine:   3,
		spacing:      desktopLayout,
		scrollH:      gtk.POLICY_AUTOMATIC,
		sectionClass: "desktop-section",
	}, toaster, logger)
	if err != nil {
		return nil, err
	}

	resolver := preview.Resolver{ImageDir: opts.Config.ImageDir}
	thumbs := thumbnail.New(opts.Config.CacheDir, logger)

	if err := themePane.populate(preview.KindTheme, w.themes.List(), w.themes.Cached(), resolver, thumbs); err != nil {
		return nil, err
	}
	if err := desktopPane.populate(preview.KindDesktop, w.desktops.List(), w.desktops.Cached(), resolver, thumbs); err != nil {
		return nil, err
	}
	logger.Info("Loaded entries", "themes", len(themePane.tiles), "desktops", len(desktopPane.tiles))

	prompter := &dialogPrompter{parent: win, logger: logger}
	themeController := selection.NewThemeController(w.themes, prompter, themePane, logger)
	desktopController := selection.NewDesktopController(w.desktops, prompter, desktopPane, logger)
	themePane.onSelect(func(name string) {
		themeController.Select(name)
		w.updateSubtitle()
	})
	desktopPane.onSelect(func(name string) {
		desktopController.Select(name)
		w.updateSubtitle()
	})

	w.themes.OnChange(func(string) { w.updateSubtitle() })
	w.desktops.OnChange(func(string) { w.updateSubtitle() })
	w.updateSubtitle()

	paned, err := gtk.PanedNew(gtk.ORIENTATION_HORIZONTAL)
	if err != nil {
		return nil, fmt.Errorf("failed to create paned: %w", err)
	}
	paned.Pack1(themePane.root, false, false)
	paned.Pack2(desktopPane.root, true, false)
	paned.SetPosition(sidebarWidth)

	overlay.Add(paned)
	overlay.AddOverlay(toaster.revealer)
	win.Add(overlay)

	return w, nil
}

func (w *Window) buildHeader() error {
	header, err := gtk.HeaderBarNew()
	if err != nil {
		return fmt.Errorf("failed to create header bar: %w", err)
	}
	header.SetShowCloseButton(true)
	header.SetTitle(i18n.T("BigLinux Themes"))

	about, err := gtk.ButtonNewFromIconName("help-about-symbolic", gtk.ICON_SIZE_BUTTON)
	if err != nil {
		return fmt.Errorf("failed to create about button: %w", err)
	}
	about.SetTooltipText(i18n.T("About"))
	about.Connect("clicked", func() {
		if err := webbrowser.Open(ProjectURL); err != nil {
			w.logger.Error("Failed to open project page", "url", ProjectURL, "err", err)
		}
	})
	header.PackEnd(about)

	w.header = header
	w.win.SetTitlebar(header)
	return nil
}

// updateSubtitle shows the cached current entries, no scripts are run
func (w *Window) updateSubtitle() {
	w.header.SetSubtitle(i18n.Tformat("Theme: {} | Desktop: {}",
		preview.DisplayName(w.themes.Cached()),
		preview.DisplayName(w.desktops.Cached())))
}

// Present shows the window and raises it
func (w *Window) Present() {
	w.win.ShowAll()
	w.win.Present()
}
