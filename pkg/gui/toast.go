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

// Module: toast.go
// Description: In-window toast notifications that dismiss themselves

package gui

import (
	"fmt"
	"time"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/biglinux/biglinux-themes-gui/pkg/notify"
)

// toaster shows one message at a time at the bottom of the window
type toaster struct {
	revealer *gtk.Revealer
	box      *gtk.Box
	label    *gtk.Label
	timeout  time.Duration
	notifier *notify.Notifier

	hideTimer  glib.SourceHandle
	timerArmed bool
}

func newToaster(timeout time.Duration, notifier *notify.Notifier) (*toaster, error) {
	revealer, err := gtk.RevealerNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create toast revealer: %w", err)
	}
	revealer.SetTransitionType(gtk.REVEALER_TRANSITION_TYPE_SLIDE_UP)
	revealer.SetHAlign(gtk.ALIGN_CENTER)
	revealer.SetVAlign(gtk.ALIGN_END)
	revealer.SetMarginBottom(18)

	box, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to create toast box: %w", err)
	}
	if ctx, err := box.GetStyleContext(); err == nil {
		ctx.AddClass("app-notification")
		ctx.AddClass("toast")
	}

	label, err := gtk.LabelNew("")
	if err != nil {
		return nil, fmt.Errorf("failed to create toast label: %w", err)
	}
	label.SetLineWrap(true)
	label.SetMaxWidthChars(60)
	box.PackStart(label, true, true, 0)

	closeButton, err := gtk.ButtonNewFromIconName("window-close-symbolic", gtk.ICON_SIZE_BUTTON)
	if err != nil {
		return nil, fmt.Errorf("failed to create toast close button: %w", err)
	}
	closeButton.SetRelief(gtk.RELIEF_NONE)
	box.PackEnd(closeButton, false, false, 0)

	revealer.Add(box)

	t := &toaster{
		revealer: revealer,
		box:      box,
		label:    label,
		timeout:  timeout,
		notifier: notifier,
	}
	closeButton.Connect("clicked", t.hide)
	return t, nil
}

// show replaces the current message and restarts the dismiss timer
func (t *toaster) show(message string, isError bool) {
	t.label.SetText(message)
	if ctx, err := t.box.GetStyleContext(); err == nil {
		if isError {
			ctx.AddClass("error")
		} else {
			ctx.RemoveClass("error")
		}
	}
	t.revealer.SetRevealChild(true)

	if t.timerArmed {
		glib.SourceRemove(t.hideTimer)
	}
	t.hideTimer = glib.TimeoutAdd(uint(t.timeout.Milliseconds()), func() bool {
		t.timerArmed = false
		t.revealer.SetRevealChild(false)
		return false
	})
	t.timerArmed = true

	t.notifier.Notify(message)
}

func (t *toaster) hide() {
	if t.timerArmed {
		glib.SourceRemove(t.hideTimer)
		t.timerArmed = false
	}
	t.revealer.SetRevealChild(false)
}
