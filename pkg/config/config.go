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

// Module: config.go
// Description: Loads runtime configuration from defaults, env files and the process environment.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys understood by Load
const (
	EnvDir          = "BIGLINUX_THEMES_DIR"
	EnvImageDir     = "BIGLINUX_THEMES_IMG_DIR"
	EnvLocaleDir    = "BIGLINUX_THEMES_LOCALE_DIR"
	EnvCacheDir     = "BIGLINUX_THEMES_CACHE_DIR"
	EnvDebug        = "BIGLINUX_THEMES_DEBUG"
	EnvToastTimeout = "BIGLINUX_THEMES_TOAST_TIMEOUT"
	EnvNotify       = "BIGLINUX_THEMES_NOTIFY"
)

// SystemFile is the system wide env file read before the user one
const SystemFile = "/etc/biglinux-themes-gui.conf"

// AppName is used for the config and cache directory names
const AppName = "biglinux-themes-gui"

// ErrInvalidValue is returned when a setting cannot be parsed
var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds everything the application needs to start
type Config struct {
	// Dir is where the apply/list/actual shell scripts live
	Dir          string
	ImageDir     string
	LocaleDir    string
	CacheDir     string
	Debug        bool
	ToastTimeout time.Duration
	// Notify mirrors toasts to desktop notifications
	Notify bool
}

// Default returns the built-in configuration rooted at dir
func Default(dir string) Config {
	return Config{
		Dir:          dir,
		ImageDir:     filepath.Join(dir, "img"),
		LocaleDir:    "/usr/share/locale",
		CacheDir:     defaultCacheDir(),
		ToastTimeout: 5 * time.Second,
	}
}

// Load builds the configuration. Files listed in files are read in order,
// missing files are skipped, and the process environment wins over all of them.
func Load(files ...string) (Config, error) {
	values := make(map[string]string)
	for _, file := range files {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			continue
		}
		fileValues, err := godotenv.Read(file)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	dir, ok := lookup(EnvDir)
	if !ok || dir == "" {
		dir = executableDir()
	}
	cfg := Default(dir)

	if v, ok := lookup(EnvImageDir); ok && v != "" {
		cfg.ImageDir = v
	}
	if v, ok := lookup(EnvLocaleDir); ok && v != "" {
		cfg.LocaleDir = v
	}
	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		cfg.CacheDir = v
	}

	var err error
	if v, ok := lookup(EnvDebug); ok {
		if cfg.Debug, err = parseBool(EnvDebug, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvNotify); ok {
		if cfg.Notify, err = parseBool(EnvNotify, v); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvToastTimeout); ok && v != "" {
		seconds, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvToastTimeout, v, ErrInvalidValue)
		}
		cfg.ToastTimeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

// Files returns the env files Load should read, system file first
func Files() []string {
	files := []string{SystemFile}
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, AppName, "settings.env"))
	}
	return files
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	}
	return false, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
}

// executableDir falls back to the working directory when the executable path is unknown
func executableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, _ := os.Getwd()
	return wd
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(os.TempDir(), AppName)
}
