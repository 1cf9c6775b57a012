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

// Module: manager.go
// Description: Shared state and change notification for the theme and desktop managers

// Package manager caches the current and available themes and desktops.
// All real work is delegated to the helper scripts through a shell.Runner.
// Managers are only touched from the GTK main loop and are not safe for
// concurrent use.
package manager

import (
	"context"
	"errors"
	"slices"

	"charm.land/log/v2"

	"github.com/biglinux/biglinux-themes-gui/pkg/shell"
)

// ErrEmptyName is returned when asked to apply an entry without a name
var ErrEmptyName = errors.New("empty name")

// ChangeFunc is called with the new current name after a successful Set
type ChangeFunc func(name string)

// catalog is the part shared by both managers
type catalog struct {
	runner    shell.Runner
	logger    *log.Logger
	ctx       context.Context
	current   string
	list      []string
	listeners []ChangeFunc

	currentScript string
	listScript    string
}

// query runs script and logs (but swallows) start failures
func (c *catalog) query(script string, args ...string) string {
	out, err := c.runner.Run(c.ctx, script, args...)
	if err != nil {
		c.logger.Warn("Treating unavailable script as empty output", "script", script, "err", err)
		return ""
	}
	return out
}

func (c *catalog) refreshCurrent() string {
	c.current = c.query(c.currentScript)
	return c.current
}

func (c *catalog) refreshList() []string {
	c.list = shell.Lines(c.query(c.listScript))
	return c.list
}

// Current re-queries the scripts and returns the authoritative current name
func (c *catalog) Current() string {
	return c.refreshCurrent()
}

// Cached returns the last known current name without running anything
func (c *catalog) Cached() string {
	return c.current
}

// List returns the names enumerated at construction or the last Refresh
func (c *catalog) List() []string {
	return slices.Clone(c.list)
}

// Contains reports whether name is one of the listed entries
func (c *catalog) Contains(name string) bool {
	return slices.Contains(c.list, name)
}

// Refresh enumerates the entries again
func (c *catalog) Refresh() []string {
	return slices.Clone(c.refreshList())
}

// OnChange registers fn to be called after every successful Set
func (c *catalog) OnChange(fn ChangeFunc) {
	c.listeners = append(c.listeners, fn)
}

func (c *catalog) setCurrent(name string) {
	c.current = name
	for _, fn := range c.listeners {
		fn(name)
	}
}
