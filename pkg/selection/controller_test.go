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

// Module: controller_test.go
// Description: Tests for selection

package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biglinux/biglinux-themes-gui/pkg/logging"
	"github.com/biglinux/biglinux-themes-gui/pkg/manager"
	"github.com/biglinux/biglinux-themes-gui/pkg/shell/shelltest"
)

// fakePrompter answers every prompt with choice and records what it saw
type fakePrompter struct {
	choice  Choice
	prompts []Prompt
}

func (f *fakePrompter) Ask(p Prompt) Choice {
	f.prompts = append(f.prompts, p)
	return f.choice
}

// fakeView keeps tiles like the real pane does
type fakeView struct {
	tiles  []*fakeTile
	toasts []string
	errors []string
}

func newFakeView(names []string, current string) *fakeView {
	v := &fakeView{}
	for _, n := range names {
		v.tiles = append(v.tiles, &fakeTile{name: n})
	}
	MarkCurrent(v.tiles, current)
	return v
}

func (v *fakeView) MarkCurrent(name string) { MarkCurrent(v.tiles, name) }
func (v *fakeView) ShowToast(msg string)    { v.toasts = append(v.toasts, msg) }
func (v *fakeView) ShowError(msg string)    { v.errors = append(v.errors, msg) }

func (v *fakeView) marked() []string {
	var names []string
	for _, t := range v.tiles {
		if t.current {
			names = append(names, t.name)
		}
	}
	return names
}

type fakeTile struct {
	name    string
	current bool
}

func (t *fakeTile) Name() string            { return t.name }
func (t *fakeTile) SetCurrent(current bool) { t.current = current }

// newThemeFixture wires a real ThemeManager to a fake runner whose apply
// script updates what actual-theme.sh reports
func newThemeFixture(t *testing.T, choice Choice) (*ThemeController, *manager.ThemeManager, *shelltest.Runner, *fakePrompter, *fakeView) {
	t.Helper()
	r := shelltest.NewRunner()
	r.Outputs[manager.ScriptActualTheme] = "Big-Dark"
	r.Outputs[manager.ScriptListThemes] = "Big-Dark\nBig-Light\nBreeze"
	r.Hooks[manager.ScriptApplyTheme] = func(args []string) {
		r.Outputs[manager.ScriptActualTheme] = args[0]
	}

	m := manager.NewThemeManager(context.Background(), r, logging.Discard())
	p := &fakePrompter{choice: choice}
	v := newFakeView(m.List(), m.Cached())
	c := NewThemeController(m, p, v, logging.Discard())
	r.Reset()
	return c, m, r, p, v
}

func newDesktopFixture(t *testing.T, choice Choice, used string) (*DesktopController, *manager.DesktopManager, *shelltest.Runner, *fakePrompter, *fakeView) {
	t.Helper()
	r := shelltest.NewRunner()
	r.Outputs[manager.ScriptActualDesktop] = "kde-classic"
	r.Outputs[manager.ScriptListDesktops] = "kde-classic\ngnome\nxfce"
	r.Outputs[manager.ScriptUsedDesktop] = used
	r.Hooks[manager.ScriptApplyDesktop] = func(args []string) {
		r.Outputs[manager.ScriptActualDesktop] = args[0]
	}

	m := manager.NewDesktopManager(context.Background(), r, logging.Discard())
	p := &fakePrompter{choice: choice}
	v := newFakeView(m.List(), m.Cached())
	c := NewDesktopController(m, p, v, logging.Discard())
	r.Reset()
	return c, m, r, p, v
}

func TestThemeSelectCurrentUsesReapplyPrompt(t *testing.T) {
	c, _, _, p, _ := newThemeFixture(t, ChoiceCancel)

	c.Select("Big-Dark")
	require.Len(t, p.prompts, 1)
	assert.Equal(t, PromptReapplyTheme, p.prompts[0].Kind)
	assert.Equal(t, ChoiceCancel, p.prompts[0].Default)
}

func TestThemeSelectCurrentIgnoresSurroundingSpace(t *testing.T) {
	c, _, _, p, _ := newThemeFixture(t, ChoiceCancel)

	c.Select(" Big-Dark ")
	require.Len(t, p.prompts, 1)
	assert.Equal(t, PromptReapplyTheme, p.prompts[0].Kind)
}

func TestThemeSelectOtherUsesChangePrompt(t *testing.T) {
	c, _, _, p, _ := newThemeFixture(t, ChoiceCancel)

	c.Select("Big-Light")
	require.Len(t, p.prompts, 1)
	assert.Equal(t, PromptChangeTheme, p.prompts[0].Kind)
	assert.Contains(t, p.prompts[0].Body, "Big Light")
}

func TestThemeApply(t *testing.T) {
	c, m, r, _, v := newThemeFixture(t, ChoiceApply)

	state := c.Select("Big-Light")
	assert.Equal(t, StateSettled, state)
	assert.Equal(t, StateSettled, c.State())
	assert.Equal(t, "Big-Light", c.Selected())
	assert.Equal(t, "Big-Light", m.Cached())
	assert.Equal(t, []string{"Big-Light"}, v.marked())
	assert.Equal(t, []string{ChangedMessage()}, v.toasts)
	assert.Empty(t, v.errors)
	assert.Len(t, r.CallsTo(manager.ScriptApplyTheme), 1)
}

func TestThemeReapplyKeepsSingleMark(t *testing.T) {
	c, _, r, _, v := newThemeFixture(t, ChoiceApply)

	c.Select("Big-Dark")
	assert.Equal(t, []string{"Big-Dark"}, v.marked())
	assert.Len(t, r.CallsTo(manager.ScriptApplyTheme), 1)
}

func TestThemeCancelChangesNothing(t *testing.T) {
	c, m, r, _, v := newThemeFixture(t, ChoiceCancel)

	state := c.Select("Big-Light")
	assert.Equal(t, StateUnselected, state)
	assert.Equal(t, "Big-Dark", m.Cached())
	assert.Equal(t, []string{"Big-Dark"}, v.marked())
	assert.Empty(t, r.CallsTo(manager.ScriptApplyTheme))
	assert.Empty(t, v.toasts)
	assert.Empty(t, v.errors)
}

func TestThemeApplyFailureShowsError(t *testing.T) {
	c, m, r, _, v := newThemeFixture(t, ChoiceApply)
	r.Missing[manager.ScriptApplyTheme] = true

	state := c.Select("Big-Light")
	assert.Equal(t, StateUnselected, state)
	require.Len(t, v.errors, 1)
	assert.Contains(t, v.errors[0], "Error applying theme")
	assert.Empty(t, v.toasts)
	assert.Equal(t, "Big-Dark", m.Cached())
	assert.Equal(t, []string{"Big-Dark"}, v.marked())
}

func TestThemeHighlightFollowsAuthoritativeAnswer(t *testing.T) {
	c, m, r, _, v := newThemeFixture(t, ChoiceApply)
	// the apply script exits silently without switching
	r.Hooks[manager.ScriptApplyTheme] = func([]string) {}

	c.Select("Big-Light")
	assert.Equal(t, []string{"Big-Dark"}, v.marked())
	assert.Equal(t, "Big-Dark", m.Cached())
}

func TestThemeHighlightFallsBackToSelection(t *testing.T) {
	c, _, r, _, v := newThemeFixture(t, ChoiceApply)
	r.Hooks[manager.ScriptApplyTheme] = func([]string) {
		r.Outputs[manager.ScriptActualTheme] = ""
	}

	c.Select("Breeze")
	assert.Equal(t, []string{"Breeze"}, v.marked())
}

func TestDesktopSelectCurrentUsesReapplyPrompt(t *testing.T) {
	c, _, r, p, _ := newDesktopFixture(t, ChoiceCancel, "true")

	c.Select("kde-classic")
	require.Len(t, p.prompts, 1)
	assert.Equal(t, PromptReapplyDesktop, p.prompts[0].Kind)
	assert.Empty(t, r.CallsTo(manager.ScriptUsedDesktop))
}

func TestDesktopReapplyUsesClean(t *testing.T) {
	c, _, r, _, v := newDesktopFixture(t, ChoiceApply, "false")

	assert.Equal(t, StateSettled, c.Select("kde-classic"))
	calls := r.CallsTo(manager.ScriptApplyDesktop)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"kde-classic", "clean"}, calls[0].Args)
	assert.Equal(t, []string{"kde-classic"}, v.marked())
}

func TestDesktopUnusedAppliesDirectly(t *testing.T) {
	c, m, r, p, v := newDesktopFixture(t, ChoiceCancel, "false")

	state := c.Select("gnome")
	assert.Equal(t, StateSettled, state)
	assert.Empty(t, p.prompts)
	calls := r.CallsTo(manager.ScriptApplyDesktop)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"gnome"}, calls[0].Args)
	assert.Equal(t, "gnome", m.Cached())
	assert.Equal(t, []string{"gnome"}, v.marked())
	assert.Len(t, v.toasts, 1)
}

func TestDesktopUsedPromptChoices(t *testing.T) {
	tests := []struct {
		name      string
		choice    Choice
		wantArgs  []string
		wantState State
		wantMark  string
	}{
		{name: "original", choice: ChoiceClean, wantArgs: []string{"gnome", "clean"}, wantState: StateSettled, wantMark: "gnome"},
		{name: "restore", choice: ChoiceRestore, wantArgs: []string{"gnome"}, wantState: StateSettled, wantMark: "gnome"},
		{name: "cancel", choice: ChoiceCancel, wantState: StateUnselected, wantMark: "kde-classic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, used := range []string{"true", ""} {
				c, _, r, p, v := newDesktopFixture(t, tt.choice, used)

				assert.Equal(t, tt.wantState, c.Select("gnome"))
				require.Len(t, p.prompts, 1)
				assert.Equal(t, PromptRestoreDesktop, p.prompts[0].Kind)
				require.Len(t, p.prompts[0].Options, 3)

				calls := r.CallsTo(manager.ScriptApplyDesktop)
				if tt.wantArgs == nil {
					assert.Empty(t, calls)
				} else {
					require.Len(t, calls, 1)
					assert.Equal(t, tt.wantArgs, calls[0].Args)
				}
				assert.Equal(t, []string{tt.wantMark}, v.marked())
			}
		})
	}
}

func TestDesktopCancelLeavesCache(t *testing.T) {
	c, m, _, _, v := newDesktopFixture(t, ChoiceCancel, "true")

	c.Select("xfce")
	assert.Equal(t, "kde-classic", m.Cached())
	assert.Equal(t, []string{"kde-classic"}, v.marked())
	assert.Empty(t, v.toasts)
}

func TestDesktopApplyFailure(t *testing.T) {
	c, _, r, _, v := newDesktopFixture(t, ChoiceCancel, "false")
	r.Missing[manager.ScriptApplyDesktop] = true

	assert.Equal(t, StateUnselected, c.Select("gnome"))
	require.Len(t, v.errors, 1)
	assert.Contains(t, v.errors[0], "Error applying desktop")
	assert.Equal(t, []string{"kde-classic"}, v.marked())
}

func TestMarkCurrent(t *testing.T) {
	tests := []struct {
		name       string
		tiles      []string
		current    string
		wantMarked int
	}{
		{name: "one match", tiles: []string{"a", "b", "c"}, current: "b", wantMarked: 1},
		{name: "no match", tiles: []string{"a", "b"}, current: "z", wantMarked: 0},
		{name: "empty name marks nothing", tiles: []string{"a", ""}, current: "", wantMarked: 0},
		{name: "duplicates marked once", tiles: []string{"a", "a"}, current: "a", wantMarked: 1},
		{name: "no tiles", current: "a", wantMarked: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newFakeView(tt.tiles, "")
			for _, tile := range v.tiles {
				tile.current = true
			}
			assert.Equal(t, tt.wantMarked, MarkCurrent(v.tiles, tt.current))
			assert.Len(t, v.marked(), tt.wantMarked)
		})
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "unselected", StateUnselected.String())
	assert.Equal(t, "confirming", StateConfirming.String())
	assert.Equal(t, "applying", StateApplying.String())
	assert.Equal(t, "settled", StateSettled.String())
	assert.Equal(t, "cancel", ChoiceCancel.String())
	assert.Equal(t, "apply", ChoiceApply.String())
	assert.Equal(t, "clean", ChoiceClean.String())
	assert.Equal(t, "restore", ChoiceRestore.String())
}
