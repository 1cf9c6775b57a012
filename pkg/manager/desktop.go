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

// Module: desktop.go
// Description: Desktop layout manager backed by the desktop scripts

package manager

import (
	"context"
	"fmt"
	"strings"

	"charm.land/log/v2"

	"github.com/biglinux/biglinux-themes-gui/pkg/shell"
)

// Desktop scripts
const (
	ScriptActualDesktop = "actual-desktop.sh"
	ScriptListDesktops  = "list-desktops.sh"
	ScriptUsedDesktop   = "used-desktop.sh"
	ScriptApplyDesktop  = "apply-desktop.sh"
)

// Mode selects how apply-desktop.sh treats earlier customization
type Mode int

const (
	// ModeRestore keeps the user's previous customization of the layout
	ModeRestore Mode = iota
	// ModeClean resets the layout to its original configuration
	ModeClean
)

// arg is the extra apply-desktop.sh argument for the mode
func (m Mode) arg() string {
	if m == ModeClean {
		return "clean"
	}
	return ""
}

func (m Mode) String() string {
	if m == ModeClean {
		return "clean"
	}
	return "restore"
}

// DesktopManager tracks the current desktop layout and the available ones
type DesktopManager struct {
	catalog
}

// NewDesktopManager queries the current desktop and the desktop list once
func NewDesktopManager(ctx context.Context, runner shell.Runner, logger *log.Logger) *DesktopManager {
	m := &DesktopManager{catalog{
		runner:        runner,
		logger:        logger.WithPrefix("desktops"),
		ctx:           ctx,
		currentScript: ScriptActualDesktop,
		listScript:    ScriptListDesktops,
	}}
	m.refreshCurrent()
	m.refreshList()
	m.logger.Debug("Loaded desktops", "current", m.current, "count", len(m.list))
	return m
}

// Set applies the desktop layout and optimistically records it as current
func (m *DesktopManager) Set(name string, mode Mode) error {
	if name == "" {
		return ErrEmptyName
	}
	m.logger.Info("Applying desktop", "desktop", name, "mode", mode)
	if _, err := m.runner.Run(m.ctx, ScriptApplyDesktop, name, mode.arg()); err != nil {
		return fmt.Errorf("apply desktop %s: %w", name, err)
	}
	m.setCurrent(name)
	return nil
}

// IsUsed reports whether the layout was used before. Only the exact
// output "false" means unused; empty output and failures count as used.
func (m *DesktopManager) IsUsed(name string) bool {
	out, err := m.runner.Run(m.ctx, ScriptUsedDesktop, name)
	if err != nil {
		m.logger.Warn("Could not check desktop usage", "desktop", name, "err", err)
		return true
	}
	return strings.TrimSpace(out) != "false"
}
