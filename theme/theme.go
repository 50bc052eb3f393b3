// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Config-backed color lookup for texeldnd widgets and apps.

package theme

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldnd/config"
)

// Theme resolves named colors from the "theme" section of the system config.
// Colors are W3C names or #rrggbb hex strings, grouped per widget section:
//
//	"theme": {
//	  "dnd":  { "gap_fg": "#585b70" },
//	  "board": { "header_fg": "peachpuff" }
//	}
type Theme struct {
	sections config.Section
}

var (
	once     sync.Once
	instance *Theme
)

// Get returns the process-wide theme.
func Get() *Theme {
	once.Do(func() {
		instance = &Theme{sections: config.System().Section("theme")}
	})
	return instance
}

// GetColor returns the color for key in a theme section, or fallback when the
// key is missing or unparseable.
func (t *Theme) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	if t == nil || t.sections == nil {
		return fallback
	}
	sub := config.Config(t.sections).Section(section)
	if sub == nil {
		return fallback
	}
	raw, ok := sub[key]
	if !ok {
		return fallback
	}
	name, ok := raw.(string)
	if !ok || name == "" {
		return fallback
	}
	if strings.EqualFold(name, "default") {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// GetString returns a string value from a theme section, or fallback.
func (t *Theme) GetString(section, key, fallback string) string {
	if t == nil || t.sections == nil {
		return fallback
	}
	return config.Config(t.sections).GetString(section, key, fallback)
}
