package config

import (
	"fmt"

	"github.com/goliatone/go-widgetgen/pkg/configvalue"
	"github.com/goliatone/go-widgetgen/pkg/model"
)

const (
	windowWidgetKey   = "widget"
	windowPositionKey = "position"
	windowSizeKey     = "size"
	axisXKey          = "x"
	axisYKey          = "y"
)

// Position is a window anchor in screen coordinates.
type Position struct {
	X int
	Y int
}

// WindowDefinition declares a top-level window: its anchor position, size,
// and the root widget use instantiated inside it. Position and size follow
// the same best-effort policy as definition sizes: present only when both
// axes parse as integers.
type WindowDefinition struct {
	Name     string
	Position *Position
	Size     *model.Size
	Widget   model.WidgetUse
}

func parseWindow(name string, value configvalue.Value) (WindowDefinition, error) {
	hash, ok := value.AsHash()
	if !ok {
		return WindowDefinition{}, fmt.Errorf("config: window %q must be a hash, got %s", name, value.Kind())
	}

	spec, ok := hash.Get(windowWidgetKey)
	if !ok {
		return WindowDefinition{}, fmt.Errorf("config: widget must be set in window %q", name)
	}
	widget, err := model.ParseWidgetUse(spec)
	if err != nil {
		return WindowDefinition{}, fmt.Errorf("config: window %q: %w", name, err)
	}

	window := WindowDefinition{
		Name:   name,
		Widget: widget,
	}
	if x, y, ok := axisPair(hash, windowPositionKey); ok {
		window.Position = &Position{X: x, Y: y}
	}
	if w, h, ok := axisPair(hash, windowSizeKey); ok {
		window.Size = &model.Size{Width: w, Height: h}
	}
	return window, nil
}

// axisPair extracts {x: .., y: ..} under key. Missing, partial, or
// malformed pairs report ok=false instead of failing the window.
func axisPair(hash *configvalue.Hash, key string) (int, int, bool) {
	entry, ok := hash.Get(key)
	if !ok {
		return 0, 0, false
	}
	pair, ok := entry.AsHash()
	if !ok {
		return 0, 0, false
	}
	xValue, ok := pair.Get(axisXKey)
	if !ok {
		return 0, 0, false
	}
	yValue, ok := pair.Get(axisYKey)
	if !ok {
		return 0, 0, false
	}
	x, ok := xValue.AsInt()
	if !ok {
		return 0, 0, false
	}
	y, ok := yValue.AsInt()
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}
