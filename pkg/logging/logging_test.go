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

// Module: logging_test.go
// Description: Tests for logging

package logging

import (
	"bytes"
	"testing"

	"charm.land/log/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewNonTerminalUsesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Info("script finished", "script", "list-themes.sh", "code", 0)

	out := buf.String()
	assert.Contains(t, out, "msg=\"script finished\"")
	assert.Contains(t, out, "script=list-themes.sh")
	assert.Contains(t, out, "prefix="+Prefix)
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		want  log.Level
	}{
		{name: "info by default", debug: false, want: log.InfoLevel},
		{name: "debug when enabled", debug: true, want: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, New(&buf, tt.debug).GetLevel())
		})
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	assert.Equal(t, log.FatalLevel, logger.GetLevel())
}
