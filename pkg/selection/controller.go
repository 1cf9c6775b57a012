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

// Module: controller.go
// Description: Theme and desktop selection controllers

package selection

import (
	"strings"

	"charm.land/log/v2"

	"github.com/biglinux/biglinux-themes-gui/pkg/i18n"
	"github.com/biglinux/biglinux-themes-gui/pkg/manager"
	"github.com/biglinux/biglinux-themes-gui/pkg/preview"
)

// ThemeSource is what the theme pane needs from manager.ThemeManager
type ThemeSource interface {
	Current() string
	Contains(name string) bool
	Set(name string) error
}

// DesktopSource is what the desktop pane needs from manager.DesktopManager
type DesktopSource interface {
	Current() string
	Contains(name string) bool
	IsUsed(name string) bool
	Set(name string, mode manager.Mode) error
}

// ChangedMessage is shown after every successful apply
func ChangedMessage() string {
	return i18n.T("The settings have been changed. To apply them throughout the system, log off and log in again.")
}

// pane holds the state shared by both controllers
type pane struct {
	prompter Prompter
	view     View
	logger   *log.Logger
	state    State
	selected string
}

// State returns where the pane is in the selection flow
func (p *pane) State() State {
	return p.state
}

// Selected returns the entry of the last selection
func (p *pane) Selected() string {
	return p.selected
}

func (p *pane) ask(prompt Prompt) Choice {
	p.state = StateConfirming
	choice := p.prompter.Ask(prompt)
	p.logger.Debug("Dialog answered", "entry", p.selected, "choice", choice)
	if choice == ChoiceCancel {
		p.state = StateUnselected
	}
	return choice
}

// finish re-derives the highlight from the authoritative current entry.
// If the scripts report something outside the list, the applied entry is
// highlighted so the pane never ends up without a current tile.
func (p *pane) finish(name string, err error, errorMsgid string, current func() string, contains func(string) bool) {
	if err != nil {
		p.logger.Error("Apply failed", "entry", name, "err", err)
		p.view.ShowError(i18n.Tformat(errorMsgid, err))
		p.state = StateUnselected
		return
	}

	highlight := current()
	if !contains(highlight) {
		p.logger.Warn("Current entry not in list after apply, highlighting selection",
			"reported", highlight, "selected", name)
		highlight = name
	}
	p.view.MarkCurrent(highlight)
	p.view.ShowToast(ChangedMessage())
	p.state = StateSettled
}

// ThemeController drives the themes pane
type ThemeController struct {
	pane
	themes ThemeSource
}

// NewThemeController returns a controller in StateUnselected
func NewThemeController(themes ThemeSource, prompter Prompter, view View, logger *log.Logger) *ThemeController {
	return &ThemeController{
		pane:   pane{prompter: prompter, view: view, logger: logger.WithPrefix("theme-pane")},
		themes: themes,
	}
}

// Select runs the flow for a click on the theme called name
func (c *ThemeController) Select(name string) State {
	c.selected = name
	current := c.themes.Current()
	c.logger.Debug("Theme selected", "selected", name, "current", current)

	var prompt Prompt
	if strings.TrimSpace(name) == strings.TrimSpace(current) {
		prompt = reapplyThemePrompt()
	} else {
		prompt = changeThemePrompt(name)
	}

	if c.ask(prompt) != ChoiceApply {
		c.state = StateUnselected
		return c.state
	}

	c.state = StateApplying
	err := c.themes.Set(name)
	c.finish(name, err, "Error applying theme: {}", c.themes.Current, c.themes.Contains)
	return c.state
}

// DesktopController drives the desktops pane
type DesktopController struct {
	pane
	desktops DesktopSource
}

// NewDesktopController returns a controller in StateUnselected
func NewDesktopController(desktops DesktopSource, prompter Prompter, view View, logger *log.Logger) *DesktopController {
	return &DesktopController{
		pane:     pane{prompter: prompter, view: view, logger: logger.WithPrefix("desktop-pane")},
		desktops: desktops,
	}
}

// Select runs the flow for a click on the desktop called name. The
// current desktop always goes through the reapply prompt; a desktop that
// was never used is applied right away.
func (c *DesktopController) Select(name string) State {
	c.selected = name
	current := c.desktops.Current()
	c.logger.Debug("Desktop selected", "selected", name, "current", current)

	var mode manager.Mode
	switch {
	case name == current:
		if c.ask(reapplyDesktopPrompt()) != ChoiceApply {
			c.state = StateUnselected
			return c.state
		}
		mode = manager.ModeClean
	case c.desktops.IsUsed(name):
		switch c.ask(restoreDesktopPrompt()) {
		case ChoiceClean:
			mode = manager.ModeClean
		case ChoiceRestore:
			mode = manager.ModeRestore
		default:
			c.state = StateUnselected
			return c.state
		}
	default:
		c.logger.Debug("Desktop never used, applying directly", "desktop", name)
		mode = manager.ModeRestore
	}

	c.state = StateApplying
	err := c.desktops.Set(name, mode)
	c.finish(name, err, "Error applying desktop: {}", c.desktops.Current, c.desktops.Contains)
	return c.state
}

func cancelOption() Option {
	return Option{Choice: ChoiceCancel, Label: i18n.T("Cancel")}
}

func applyOption() Option {
	return Option{Choice: ChoiceApply, Label: i18n.T("Apply"), Suggested: true}
}

func reapplyThemePrompt() Prompt {
	return Prompt{
		Kind:    PromptReapplyTheme,
		Heading: i18n.T("Confirm Theme Change"),
		Body:    i18n.T("Do you want to apply the selected theme again?"),
		Options: []Option{cancelOption(), applyOption()},
		Default: ChoiceCancel,
	}
}

func changeThemePrompt(name string) Prompt {
	return Prompt{
		Kind:    PromptChangeTheme,
		Heading: i18n.T("Confirm Theme Change"),
		Body:    i18n.Tformat("Do you want to change the theme to {}?", preview.DisplayName(name)),
		Options: []Option{cancelOption(), applyOption()},
		Default: ChoiceCancel,
	}
}

func reapplyDesktopPrompt() Prompt {
	return Prompt{
		Kind:    PromptReapplyDesktop,
		Heading: i18n.T("Confirm Desktop Change"),
		Body:    i18n.T("Do you want to reapply a clean configuration of that desktop?"),
		Options: []Option{cancelOption(), applyOption()},
		Default: ChoiceCancel,
	}
}

func restoreDesktopPrompt() Prompt {
	return Prompt{
		Kind:    PromptRestoreDesktop,
		Heading: i18n.T("Configuration"),
		Body:    i18n.T("You've used this desktop before, do you want to restore your customization or use the original configuration?"),
		Options: []Option{
			cancelOption(),
			{Choice: ChoiceClean, Label: i18n.T("Original"), Suggested: true},
			{Choice: ChoiceRestore, Label: i18n.T("Restore"), Suggested: true},
		},
		Default: ChoiceCancel,
	}
}
