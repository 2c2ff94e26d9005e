// Package config loads whole widget-config documents: the widgets section
// holding reusable definitions and the windows section holding top-level
// window declarations.
package config

import (
	"fmt"

	"github.com/goliatone/go-widgetgen/pkg/configvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
	"github.com/goliatone/go-widgetgen/pkg/widgets"
)

const (
	widgetsKey = "widgets"
	windowsKey = "windows"
)

// Config is a fully transformed widget-config document.
type Config struct {
	Definitions map[string]model.WidgetDefinition
	Windows     map[string]WindowDefinition
}

// FromYAML parses a YAML document and transforms it into a Config.
func FromYAML(data []byte) (*Config, error) {
	value, err := configvalue.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return FromValue(value)
}

// FromValue transforms an already-parsed config value tree into a Config.
// The document root must be a hash; both sections are optional.
func FromValue(value configvalue.Value) (*Config, error) {
	root, ok := value.AsHash()
	if !ok {
		return nil, fmt.Errorf("config: document root must be a hash, got %s", value.Kind())
	}

	cfg := &Config{
		Definitions: make(map[string]model.WidgetDefinition),
		Windows:     make(map[string]WindowDefinition),
	}

	if section, ok := root.Get(widgetsKey); ok {
		hash, ok := section.AsHash()
		if !ok {
			return nil, fmt.Errorf("config: widgets section must be a hash, got %s", section.Kind())
		}
		for _, name := range hash.Keys() {
			entry, _ := hash.Get(name)
			def, err := model.ParseDefinition(name, entry)
			if err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
			cfg.Definitions[name] = def
		}
	}

	if section, ok := root.Get(windowsKey); ok {
		hash, ok := section.AsHash()
		if !ok {
			return nil, fmt.Errorf("config: windows section must be a hash, got %s", section.Kind())
		}
		for _, name := range hash.Keys() {
			entry, _ := hash.Get(name)
			window, err := parseWindow(name, entry)
			if err != nil {
				return nil, err
			}
			cfg.Windows[name] = window
		}
	}

	return cfg, nil
}

// Registry builds a widget registry holding every definition in the config.
func (c *Config) Registry() (*widgets.Registry, error) {
	reg := widgets.NewRegistry()
	for _, def := range c.Definitions {
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return reg, nil
}

// Validate checks every window's widget tree against the config's registry.
func (c *Config) Validate() error {
	reg, err := c.Registry()
	if err != nil {
		return err
	}
	for name, window := range c.Windows {
		if err := reg.Validate(window.Widget); err != nil {
			return fmt.Errorf("config: window %q: %w", name, err)
		}
	}
	return nil
}
