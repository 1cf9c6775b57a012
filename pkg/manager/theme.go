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

// Module: theme.go
// Description: Theme manager backed by the actual/list/apply theme scripts

package manager

import (
	"context"
	"fmt"

	"charm.land/log/v2"

	"github.com/biglinux/biglinux-themes-gui/pkg/shell"
)

// Theme scripts
const (
	ScriptActualTheme = "actual-theme.sh"
	ScriptListThemes  = "list-themes.sh"
	ScriptApplyTheme  = "apply-theme.sh"
)

// ThemeManager tracks the current theme and the available ones
type ThemeManager struct {
	catalog
}

// NewThemeManager queries the current theme and the theme list once
func NewThemeManager(ctx context.Context, runner shell.Runner, logger *log.Logger) *ThemeManager {
	m := &ThemeManager{catalog{
		runner:        runner,
		logger:        logger.WithPrefix("themes"),
		ctx:           ctx,
		currentScript: ScriptActualTheme,
		listScript:    ScriptListThemes,
	}}
	m.refreshCurrent()
	m.refreshList()
	m.logger.Debug("Loaded themes", "current", m.current, "count", len(m.list))
	return m
}

// Set applies name and optimistically records it as current.
// The cache is left alone when the apply script could not be started.
func (m *ThemeManager) Set(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	m.logger.Info("Applying theme", "theme", name)
	if _, err := m.runner.Run(m.ctx, ScriptApplyTheme, name); err != nil {
		return fmt.Errorf("apply theme %s: %w", name, err)
	}
	m.setCurrent(name)
	return nil
}
