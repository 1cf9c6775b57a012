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

// Module: i18n.go
// Description: Internationalization support using gotext and the system gettext catalogs

package i18n

import (
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// Domain is the gettext domain the catalogs are installed under
const Domain = "biglinux-themes-gui"

// probe is a msgid every catalog translates
const probe = "BigLinux Themes"

// placeholder is where Tformat inserts its arguments, in order
const placeholder = "{}"

// Locale is the global locale instance, nil until Init is called
var Locale *gotext.Locale

// catalog maps msgids to their translation for the loaded locale
var catalog map[string]string

// Init loads the catalog for the system locale from localeDir
// (laid out as <localeDir>/<lang>/LC_MESSAGES/<Domain>.mo).
func Init(localeDir string) {
	InitLocale(localeDir, DetectLocale())
}

// InitLocale loads the catalog for an explicit locale, trying the full
// locale first and then just its language code.
func InitLocale(localeDir, locale string) {
	load(localeDir, locale)

	// check if the locale works, if not try just the language part
	if T(probe) == probe && locale != "en_US" {
		if underscoreIndex := strings.Index(locale, "_"); underscoreIndex != -1 {
			load(localeDir, locale[:underscoreIndex])
		}
	}
}

// load reads the catalog once so lookups never go through gotext's
// printf formatting
func load(localeDir, locale string) {
	Locale = gotext.NewLocale(localeDir, locale)
	Locale.AddDomain(Domain)

	translations := Locale.GetTranslations()
	catalog = make(map[string]string, len(translations))
	for msgid, tr := range translations {
		catalog[msgid] = tr.Get()
	}
}

// DetectLocale returns the locale from LC_ALL, LC_MESSAGES or LANG in
// gettext form (e.g. "pt_BR"), defaulting to "en_US".
func DetectLocale() string {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(envVar); value != "" {
			if normalized := Normalize(value); normalized != "" {
				return normalized
			}
		}
	}
	return "en_US"
}

// Normalize turns values like "pt_BR.UTF-8" or "de-de@euro" into "pt_BR"
// and "de_DE". It returns "" for C/POSIX and unparsable values.
func Normalize(value string) string {
	if i := strings.IndexAny(value, ".@"); i != -1 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}

	tag, err := language.Parse(value)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		return base.String() + "_" + region.String()
	}
	return base.String()
}

// T translates msgid, returning it untouched when it has no translation
func T(msgid string) string {
	if translated, ok := catalog[msgid]; ok && translated != "" {
		return translated
	}
	return msgid
}

// Tformat translates msgid and replaces its "{}" placeholders with args in
// order. Placeholders without an argument are left as they are.
func Tformat(msgid string, args ...interface{}) string {
	text := T(msgid)
	var b strings.Builder
	for _, arg := range args {
		i := strings.Index(text, placeholder)
		if i == -1 {
			break
		}
		b.WriteString(text[:i])
		b.WriteString(fmt.Sprint(arg))
		text = text[i+len(placeholder):]
	}
	b.WriteString(text)
	return b.String()
}
