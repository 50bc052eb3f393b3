// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. An empty name returns
// the config itself as a section.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	if raw, ok := c[sectionName]; ok {
		switch v := raw.(type) {
		case Section:
			return v
		case map[string]interface{}:
			return Section(v)
		}
	}
	return nil
}

// RegisterDefaults ensures a section has defaults without overwriting
// existing keys.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section)
		c[sectionName] = section
	}
	for k, v := range defaults {
		if _, ok := section[k]; !ok {
			section[k] = v
		}
	}
}

// GetString returns a string value from a section, or fallback.
func (c Config) GetString(sectionName, key, fallback string) string {
	section := c.Section(sectionName)
	if section == nil {
		return fallback
	}
	if raw, ok := section[key]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return fallback
}

// GetInt returns an int value from a section, or fallback. JSON numbers and
// numeric strings are both accepted.
func (c Config) GetInt(sectionName, key string, fallback int) int {
	section := c.Section(sectionName)
	if section == nil {
		return fallback
	}
	switch v := section[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetBool returns a bool value from a section, or fallback.
func (c Config) GetBool(sectionName, key string, fallback bool) bool {
	section := c.Section(sectionName)
	if section == nil {
		return fallback
	}
	if raw, ok := section[key]; ok {
		if b, ok := raw.(bool); ok {
			return b
		}
	}
	return fallback
}
