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

// Module: thumbnail.go
// Description: Caches preview images pre-scaled to their tile size using govips

// Package thumbnail caches preview images pre-scaled with govips.
package thumbnail

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"charm.land/log/v2"
	"github.com/davidbyttow/govips/v2/vips"

	"github.com/biglinux/biglinux-themes-gui/pkg/preview"
)

// Thumbnailer renders previews into CacheDir at their tile size so large
// PNGs are not decoded at full resolution on every start.
// vips.Startup must have been called before Thumbnail is used on a cache miss.
type Thumbnailer struct {
	CacheDir string
	logger   *log.Logger
}

// New returns a thumbnailer caching into dir
func New(dir string, logger *log.Logger) *Thumbnailer {
	return &Thumbnailer{CacheDir: dir, logger: logger}
}

// CachePath is where the thumbnail of p is stored
func (t *Thumbnailer) CachePath(p preview.Preview) string {
	sum := sha1.Sum([]byte(p.Path))
	name := fmt.Sprintf("%s-%dx%d-%x.png", p.Kind, p.Size.Width, p.Size.Height, sum[:8])
	return filepath.Join(t.CacheDir, name)
}

// Thumbnail returns a path GTK should load for p. Unavailable previews
// return "", and any processing failure falls back to the original path.
func (t *Thumbnailer) Thumbnail(p preview.Preview) string {
	if !p.Available {
		return ""
	}

	outputPath := t.CachePath(p)
	if fresh(outputPath, p.Path) {
		return outputPath
	}

	if err := os.MkdirAll(t.CacheDir, 0755); err != nil {
		t.logger.Debug("Thumbnail cache unavailable", "dir", t.CacheDir, "err", err)
		return p.Path
	}

	image, err := vips.NewImageFromFile(p.Path)
	if err != nil {
		t.logger.Debug("Could not load preview", "path", p.Path, "err", err)
		return p.Path
	}
	defer image.Close()

	if err := image.Resize(fitScale(image.Width(), image.Height(), p.Size), vips.KernelAuto); err != nil {
		t.logger.Debug("Could not scale preview", "path", p.Path, "err", err)
		return p.Path
	}

	imageBytes, _, err := image.Export(vips.NewDefaultPNGExportParams())
	if err != nil {
		t.logger.Debug("Could not export preview", "path", p.Path, "err", err)
		return p.Path
	}

	if err := os.WriteFile(outputPath, imageBytes, 0644); err != nil {
		t.logger.Debug("Could not write thumbnail", "path", outputPath, "err", err)
		return p.Path
	}
	return outputPath
}

// fitScale is the factor that fits a width x height image inside size
func fitScale(width, height int, size preview.Size) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return min(float64(size.Width)/float64(width), float64(size.Height)/float64(height))
}

// fresh reports whether cached exists and is not older than source
func fresh(cached, source string) bool {
	cachedInfo, err := os.Stat(cached)
	if err != nil {
		return false
	}
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return false
	}
	return !cachedInfo.ModTime().Before(sourceInfo.ModTime())
}
