package text

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Names of the fonts every Registry from NewRegistry starts with.
const (
	FontGoRegular = "goregular"
	FontGoBold    = "gobold"
	FontGoMono    = "gomono"
)

// builtins maps the built-in font names to their TTF data.
var builtins = map[string][]byte{
	FontGoRegular: goregular.TTF,
	FontGoBold:    gobold.TTF,
	FontGoMono:    gomono.TTF,
}

// Registry resolves font names to FontSources.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*FontSource
}

// NewRegistry returns a registry holding the built-in Go fonts.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for name, data := range builtins {
		if err := r.Register(name, data); err != nil {
			// The embedded Go fonts always parse.
			panic(err)
		}
	}
	return r
}

// NewEmptyRegistry returns a registry without any fonts.
func NewEmptyRegistry() *Registry {
	return &Registry{fonts: make(map[string]*FontSource)}
}

// Register parses data and stores it under name, replacing any font
// already registered with that name.
func (r *Registry) Register(name string, data []byte) error {
	src, err := NewFontSource(name, data)
	if err != nil {
		return err
	}
	r.Add(src)
	return nil
}

// RegisterFile loads a font file and stores it under name.
func (r *Registry) RegisterFile(name, path string) error {
	src, err := NewFontSourceFromFile(name, path)
	if err != nil {
		return err
	}
	r.Add(src)
	logger().Debug("text: registered font", "name", name, "path", path, "family", src.Family())
	return nil
}

// Add stores src under its name.
func (r *Registry) Add(src *FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[src.Name()] = src
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return src, nil
}

// Names returns the registered font names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
