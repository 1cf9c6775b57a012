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

// Module: bridge.go
// Description: Runs the helper shell scripts that do the real theme and desktop work.

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
)

// maxLoggedOutput is how much script output ends up in the log
const maxLoggedOutput = 100

// ErrScriptUnavailable is returned when a script could not be started at all
var ErrScriptUnavailable = errors.New("script unavailable")

// Runner runs a named script and returns its trimmed standard output
type Runner interface {
	Run(ctx context.Context, script string, args ...string) (string, error)
}

// Bridge runs scripts located in Dir
type Bridge struct {
	Dir    string
	logger *log.Logger
}

// NewBridge returns a bridge for the scripts in dir
func NewBridge(dir string, logger *log.Logger) *Bridge {
	return &Bridge{Dir: dir, logger: logger}
}

// Run executes <Dir>/<script> with args and waits for it.
//
// A non-zero exit is only logged: the output is still returned and the
// error is nil, so callers must treat empty output as "nothing". An error is
// returned only when the process could not be started.
func (b *Bridge) Run(ctx context.Context, script string, args ...string) (string, error) {
	scriptPath := filepath.Join(b.Dir, script)
	args = dropEmpty(args)

	b.logger.Debug("Running script", "script", script, "args", strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, scriptPath, args...)
	cmd.Dir = b.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			b.logger.Error("Failed to start script", "script", script, "err", err)
			return "", fmt.Errorf("%s: %w: %v", script, ErrScriptUnavailable, err)
		}
		b.logger.Warn("Script failed",
			"script", script,
			"code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(stderr.String()))
	}

	b.logger.Debug("Script output", "script", script, "output", Truncate(output, maxLoggedOutput))
	return output, nil
}

// Lines splits script output into its non-blank lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}

// Truncate shortens s to n runes followed by "..."
func Truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "..."
		}
		count++
	}
	return s
}

// dropEmpty removes empty arguments so an unset optional flag is never passed as ""
func dropEmpty(args []string) []string {
	kept := args[:0:0]
	for _, arg := range args {
		if arg != "" {
			kept = append(kept, arg)
		}
	}
	return kept
}
