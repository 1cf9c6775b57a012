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

// Module: dialogs.go
// Description: GTK message dialogs answering the selection prompts

package gui

import (
	"charm.land/log/v2"
	"github.com/gotk3/gotk3/gtk"

	"github.com/biglinux/biglinux-themes-gui/pkg/selection"
)

// firstOptionResponse is the response id of the first prompt option;
// GTK reserves the negative ids for its own responses
const firstOptionResponse = 100

// dialogPrompter implements selection.Prompter with modal message dialogs
type dialogPrompter struct {
	parent gtk.IWindow
	logger *log.Logger
}

// Ask blocks in the dialog's own loop until a button is pressed.
// Closing the dialog or pressing Escape counts as cancel.
func (d *dialogPrompter) Ask(p selection.Prompt) selection.Choice {
	dialog := gtk.MessageDialogNew(d.parent, gtk.DIALOG_MODAL|gtk.DIALOG_DESTROY_WITH_PARENT,
		gtk.MESSAGE_QUESTION, gtk.BUTTONS_NONE, "%s", p.Heading)
	defer dialog.Destroy()
	dialog.FormatSecondaryText("%s", p.Body)

	for i, opt := range p.Options {
		button, err := dialog.AddButton(opt.Label, gtk.ResponseType(firstOptionResponse+i))
		if err != nil {
			d.logger.Error("Failed to add dialog button", "label", opt.Label, "err", err)
			return selection.ChoiceCancel
		}
		if opt.Suggested {
			if ctx, err := button.GetStyleContext(); err == nil {
				ctx.AddClass("suggested-action")
			}
		}
		if opt.Choice == p.Default {
			dialog.SetDefaultResponse(gtk.ResponseType(firstOptionResponse + i))
		}
	}

	response := dialog.Run()
	index := int(response) - firstOptionResponse
	if index < 0 || index >= len(p.Options) {
		return selection.ChoiceCancel
	}
	return p.Options[index].Choice
}
