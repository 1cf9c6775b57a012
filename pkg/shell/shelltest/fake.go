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

// Module: fake.go
// Description: In-memory shell.Runner for tests

// Package shelltest provides a scriptable fake of shell.Runner.
package shelltest

import (
	"context"
	"fmt"
	"strings"

	"github.com/biglinux/biglinux-themes-gui/pkg/shell"
)

// Call records one script invocation
type Call struct {
	Script string
	Args   []string
}

func (c Call) String() string {
	return strings.TrimSpace(c.Script + " " + strings.Join(c.Args, " "))
}

// Runner answers scripts from Outputs (keyed by the script name, or by
// "script arg..." for argument specific answers). Scripts listed in
// Missing fail as if they could not be started. Hooks run before the
// answer is looked up, which lets tests emulate side effects.
type Runner struct {
	Outputs map[string]string
	Missing map[string]bool
	Hooks   map[string]func(args []string)
	Calls   []Call
}

// NewRunner returns an empty fake
func NewRunner() *Runner {
	return &Runner{
		Outputs: make(map[string]string),
		Missing: make(map[string]bool),
		Hooks:   make(map[string]func(args []string)),
	}
}

// Run implements shell.Runner
func (r *Runner) Run(_ context.Context, script string, args ...string) (string, error) {
	var kept []string
	for _, a := range args {
		if a != "" {
			kept = append(kept, a)
		}
	}
	call := Call{Script: script, Args: kept}
	r.Calls = append(r.Calls, call)

	if r.Missing[script] {
		return "", fmt.Errorf("%s: %w", script, shell.ErrScriptUnavailable)
	}
	if hook, ok := r.Hooks[script]; ok {
		hook(kept)
	}
	if out, ok := r.Outputs[call.String()]; ok {
		return strings.TrimSpace(out), nil
	}
	return strings.TrimSpace(r.Outputs[script]), nil
}

// CallsTo returns the recorded invocations of script
func (r *Runner) CallsTo(script string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Script == script {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset forgets the recorded calls
func (r *Runner) Reset() {
	r.Calls = nil
}
