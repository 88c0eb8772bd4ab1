// Package manifest describes glyph tables in YAML and builds them.
//
// A manifest lists extra font files and the tables to build:
//
//	fonts:
//	  - {name: pixel, path: fonts/pixel.ttf}
//	tables:
//	  - name: title
//	    font: {name: goregular, size: 24, color: "#ffcc00"}
//	    selection: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
//	    lowercase_aliases: true
//	  - name: hud
//	    spritesheet: {path: hud.png, sprite_width: 8, sprite_height: 8, columns: 16, count: 32}
//	    selection: {rows: ["0123456789:/+-. ", "ABCDEFGHIJKLMNOP"]}
//	  - name: latin1
//	    font: {name: pixel, size: 12}
//	    range: [0, 256]
//
// Relative paths are resolved against the directory of the manifest file.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/pixkit"
	"gopkg.in/yaml.v3"
)

// Manifest errors.
var (
	// ErrNoTables is returned when a manifest declares no tables.
	ErrNoTables = errors.New("manifest: no tables")

	// ErrInvalidTable is returned when a table entry is incomplete or
	// contradictory.
	ErrInvalidTable = errors.New("manifest: invalid table")
)

// Manifest is a decoded glyph table manifest.
type Manifest struct {
	Fonts  []FontFile  `yaml:"fonts"`
	Tables []TableSpec `yaml:"tables"`

	// Dir is the base for relative paths. Load sets it to the directory
	// of the manifest file.
	Dir string `yaml:"-"`
}

// FontFile registers a font file under a name.
type FontFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// FontSpec selects a font for a table.
type FontSpec struct {
	Name  string  `yaml:"name"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

// SheetSpec describes a spritesheet for a table.
type SheetSpec struct {
	Path         string `yaml:"path"`
	SpriteWidth  int    `yaml:"sprite_width"`
	SpriteHeight int    `yaml:"sprite_height"`
	Columns      int    `yaml:"columns"`
	Count        int    `yaml:"count"`
	Margin       int    `yaml:"margin"`
}

// TableSpec is one table entry. Exactly one of Font and Spritesheet is
// set; font tables take either Selection or Range, spritesheet tables
// take Selection.
type TableSpec struct {
	Name             string     `yaml:"name"`
	Font             *FontSpec  `yaml:"font"`
	Spritesheet      *SheetSpec `yaml:"spritesheet"`
	Selection        any        `yaml:"selection"`
	Range            any        `yaml:"range"`
	LowercaseAliases bool       `yaml:"lowercase_aliases"`
	CheckLengths     *bool      `yaml:"check_lengths"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: read: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	pixkit.Logger().Info("manifest: loaded", "path", path, "fonts", len(m.Fonts), "tables", len(m.Tables))
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTables
		}
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every table entry and reports all problems at once.
func (m *Manifest) Validate() error {
	if len(m.Tables) == 0 {
		return ErrNoTables
	}

	var errs []error
	for i, f := range m.Fonts {
		if f.Name == "" || f.Path == "" {
			errs = append(errs, fmt.Errorf("manifest: font %d: name and path are required", i))
		}
	}

	seen := make(map[string]bool, len(m.Tables))
	for i := range m.Tables {
		t := &m.Tables[i]
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%w: table %d has no name", ErrInvalidTable, i))
			continue
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate table %q", ErrInvalidTable, t.Name))
			continue
		}
		seen[t.Name] = true

		if _, err := t.compile(); err != nil {
			errs = append(errs, fmt.Errorf("table %q: %w", t.Name, err))
		}
	}
	return errors.Join(errs...)
}
