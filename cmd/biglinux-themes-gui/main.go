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

// Module: main.go
// Description: Main entry point for the BigLinux Themes application

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/biglinux/biglinux-themes-gui/pkg/config"
	"github.com/biglinux/biglinux-themes-gui/pkg/gui"
	"github.com/biglinux/biglinux-themes-gui/pkg/i18n"
	"github.com/biglinux/biglinux-themes-gui/pkg/logging"
	"github.com/biglinux/biglinux-themes-gui/pkg/notify"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "dev"

// notifyInterval is the minimum gap between two desktop notifications
const notifyInterval = 10 * time.Second

func main() {
	os.Exit(run())
}

// cliFlags are the parsed command line options
type cliFlags struct {
	directory string
	debug     bool
	version   bool
	help      bool
}

// errUnexpectedArgs is returned for positional arguments, the application
// opens no files
var errUnexpectedArgs = errors.New("unexpected arguments")

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("biglinux-themes-gui", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.directory, "directory", "", "Directory containing the theme and desktop scripts")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.version, "version", false, "Show version information")
	fs.BoolVar(&f.help, "help", false, "Show help message")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}
	return f, nil
}

func run() (status int) {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 2
	}

	if flags.help {
		printUsage()
		return 0
	}
	if flags.version {
		fmt.Printf("BigLinux Themes %s\n", Version)
		return 0
	}

	cfg, err := config.Load(config.Files()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if flags.directory != "" {
		cfg.Dir = flags.directory
		if _, ok := os.LookupEnv(config.EnvImageDir); !ok {
			cfg.ImageDir = filepath.Join(cfg.Dir, "img")
		}
	}
	if flags.debug {
		cfg.Debug = true
	}

	logger := logging.New(os.Stderr, cfg.Debug)

	// log runtime crashes with their stack trace
	// this can be disabled by setting DISABLE_ERROR_HANDLING to true
	if os.Getenv("DISABLE_ERROR_HANDLING") != "true" {
		defer func() {
			if r := recover(); r != nil {
				buf := make([]byte, 1024*1024)
				n := runtime.Stack(buf, false)
				logger.Error("BigLinux Themes has encountered an error and had to shutdown",
					"reason", r, "stack", string(buf[:n]))
				status = 1
			}
		}()
	}

	logger.Debug("Configuration loaded",
		"dir", cfg.Dir, "images", cfg.ImageDir, "locale", cfg.LocaleDir,
		"cache", cfg.CacheDir, "toast", cfg.ToastTimeout, "notify", cfg.Notify)

	i18n.Init(cfg.LocaleDir)

	vips.LoggingSettings(nil, vips.LogLevelError)
	vips.Startup(nil)
	defer vips.Shutdown()

	var notifier *notify.Notifier
	if cfg.Notify {
		notifier = notify.New(i18n.T("BigLinux Themes"), "biglinux-themes-gui", notifyInterval, logger)
	}

	return gui.Run(gui.Options{
		Config:   cfg,
		Logger:   logger,
		Notifier: notifier,
	}, os.Args[:1])
}

func printUsage() {
	fmt.Println("Usage: biglinux-themes-gui [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --directory <dir>   Directory containing the theme and desktop scripts")
	fmt.Println("  --debug             Enable debug logging")
	fmt.Println("  --version           Show version information")
	fmt.Println("  --help              Show this help message")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Printf("  %-30s scripts directory\n", config.EnvDir)
	fmt.Printf("  %-30s preview images directory\n", config.EnvImageDir)
	fmt.Printf("  %-30s translations directory\n", config.EnvLocaleDir)
	fmt.Printf("  %-30s thumbnail cache directory\n", config.EnvCacheDir)
	fmt.Printf("  %-30s enable debug logging\n", config.EnvDebug)
	fmt.Printf("  %-30s toast timeout in seconds\n", config.EnvToastTimeout)
	fmt.Printf("  %-30s mirror toasts as desktop notifications\n", config.EnvNotify)
}
