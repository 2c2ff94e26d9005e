// Package widgets resolves the names carried by widget uses against builtin
// widget kinds and registered widget definitions.
package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-widgetgen/pkg/model"
)

// Builtin primitive widget kinds known to every registry.
const (
	WidgetLabel  = "label"
	WidgetText   = "text"
	WidgetLayout = "layout"
	WidgetButton = "button"
	WidgetImage  = "image"
	WidgetSlider = "slider"
)

// UnknownWidgetError reports a widget-use name that is neither a builtin
// kind nor a registered definition. Known lists every resolvable name so
// the diagnostic can point at likely typos.
type UnknownWidgetError struct {
	Name  string
	Known []string
}

func (e *UnknownWidgetError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("widgets: no widget or definition named %q", e.Name)
	}
	return fmt.Sprintf("widgets: no widget or definition named %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// CycleError reports widget definitions that reference each other, which
// would recurse forever at instantiation time.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("widgets: definition %q is part of a reference cycle", e.Name)
}

// Registry stores widget definitions next to the builtin kinds and answers
// name-resolution queries. Safe for concurrent readers once populated.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]model.WidgetDefinition
	builtins    map[string]struct{}
}

// NewRegistry constructs a registry seeded with the builtin widget kinds.
func NewRegistry() *Registry {
	builtins := map[string]struct{}{
		WidgetLabel:  {},
		WidgetText:   {},
		WidgetLayout: {},
		WidgetButton: {},
		WidgetImage:  {},
		WidgetSlider: {},
	}
	return &Registry{
		definitions: make(map[string]model.WidgetDefinition),
		builtins:    builtins,
	}
}

// Register adds a widget definition. A name that is empty, shadows a
// builtin, or is already registered returns an error.
func (r *Registry) Register(def model.WidgetDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("widgets: definition name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, builtin := r.builtins[def.Name]; builtin {
		return fmt.Errorf("widgets: definition %q shadows a builtin widget", def.Name)
	}
	if _, exists := r.definitions[def.Name]; exists {
		return fmt.Errorf("widgets: definition %q already registered", def.Name)
	}
	r.definitions[def.Name] = def
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def model.WidgetDefinition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition returns the registered definition for name.
func (r *Registry) Definition(name string) (model.WidgetDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[name]
	return def, ok
}

// IsBuiltin reports whether name is a builtin widget kind.
func (r *Registry) IsBuiltin(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.builtins[name]
	return ok
}

// Resolve reports whether name refers to anything the registry knows.
func (r *Registry) Resolve(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.builtins[name]; ok {
		return true
	}
	_, ok := r.definitions[name]
	return ok
}

// Names returns every resolvable name, sorted, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builtins)+len(r.definitions))
	for name := range r.builtins {
		names = append(names, name)
	}
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate walks a widget-use tree and checks that every name resolves and
// that following definition references never loops back into a definition
// already on the path.
func (r *Registry) Validate(use model.WidgetUse) error {
	return r.validate(use, map[string]struct{}{})
}

func (r *Registry) validate(use model.WidgetUse, path map[string]struct{}) error {
	if !r.Resolve(use.Name) {
		return &UnknownWidgetError{Name: use.Name, Known: r.Names()}
	}

	if def, ok := r.Definition(use.Name); ok {
		if _, seen := path[use.Name]; seen {
			return &CycleError{Name: use.Name}
		}
		path[use.Name] = struct{}{}
		if err := r.validate(def.Structure, path); err != nil {
			return err
		}
		delete(path, use.Name)
	}

	for _, child := range use.Children {
		if err := r.validate(child, path); err != nil {
			return err
		}
	}
	return nil
}
