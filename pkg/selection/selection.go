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

// Module: selection.go
// Description: Toolkit independent selection flow shared by the themes and desktops panes

// Package selection holds the confirm/apply/highlight flow behind each pane.
// It knows nothing about GTK: dialogs and the pane are reached through the
// Prompter and View interfaces.
package selection

// State is where a pane is in the selection flow
type State int

const (
	StateUnselected State = iota
	StateConfirming
	StateApplying
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateConfirming:
		return "confirming"
	case StateApplying:
		return "applying"
	case StateSettled:
		return "settled"
	}
	return "unselected"
}

// Choice is the answer to a Prompt
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceApply
	// ChoiceClean applies the original configuration
	ChoiceClean
	// ChoiceRestore applies the user's previous customization
	ChoiceRestore
)

func (c Choice) String() string {
	switch c {
	case ChoiceApply:
		return "apply"
	case ChoiceClean:
		return "clean"
	case ChoiceRestore:
		return "restore"
	}
	return "cancel"
}

// PromptKind identifies which dialog is being shown
type PromptKind int

const (
	// PromptReapplyTheme asks to apply the current theme again
	PromptReapplyTheme PromptKind = iota
	// PromptChangeTheme asks to switch to another theme
	PromptChangeTheme
	// PromptReapplyDesktop asks to reapply a clean copy of the current desktop
	PromptReapplyDesktop
	// PromptRestoreDesktop offers restore/original for a used desktop
	PromptRestoreDesktop
)

// Option is one button of a prompt
type Option struct {
	Choice    Choice
	Label     string
	Suggested bool
}

// Prompt describes a confirmation dialog
type Prompt struct {
	Kind    PromptKind
	Heading string
	Body    string
	Options []Option
	Default Choice
}

// Prompter shows a prompt and blocks until the user answers.
// Closing the dialog any other way must return ChoiceCancel.
type Prompter interface {
	Ask(p Prompt) Choice
}

// View is the pane a controller drives
type View interface {
	MarkCurrent(name string)
	ShowToast(message string)
	ShowError(message string)
}

// Tile is an entry in a pane that can carry the current indicator
type Tile interface {
	Name() string
	SetCurrent(current bool)
}

// MarkCurrent sets the indicator on the tile called name and clears it on
// every other tile. It returns how many tiles ended up marked.
func MarkCurrent[T Tile](tiles []T, name string) int {
	marked := 0
	for _, tile := range tiles {
		current := name != "" && tile.Name() == name && marked == 0
		tile.SetCurrent(current)
		if current {
			marked++
		}
	}
	return marked
}
