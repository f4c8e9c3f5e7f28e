// Package tags resolves opaque tag identifiers to short display badges.
// The table is data, not logic: a default table is embedded, and a user
// tags.toml in the config directory replaces it wholesale.
package tags

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

// DefaultColor is the neutral badge color for tags without one.
const DefaultColor = "#5A5A5A"

// Badge is the display form of a tag.
type Badge struct {
	Label string `toml:"label"`
	Color string `toml:"color"`
}

// Table maps verbatim tag identifiers to badges.
type Table map[string]Badge

type tomlTable struct {
	Tags Table `toml:"tags"`
}

//go:embed tags.toml
var defaultTOML []byte

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// Default returns the embedded tag table.
func Default() Table {
	defaultOnce.Do(func() {
		var tt tomlTable
		if err := toml.Unmarshal(defaultTOML, &tt); err != nil {
			// Embedded asset; an empty table still resolves via fallback.
			defaultTable = Table{}
			return
		}
		defaultTable = tt.Tags
	})
	return defaultTable
}

// LoadFile reads a tag table from a TOML file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag table: %w", err)
	}
	var tt tomlTable
	if err := toml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse tag table %s: %w", path, err)
	}
	if tt.Tags == nil {
		tt.Tags = Table{}
	}
	return tt.Tags, nil
}

// Resolve returns the badge for a tag. Unknown tags pass through verbatim
// with the neutral color; known tags without a color get the neutral color
// as well.
func (t Table) Resolve(tag string) Badge {
	b, ok := t[tag]
	if !ok {
		return Badge{Label: tag, Color: DefaultColor}
	}
	if b.Label == "" {
		b.Label = tag
	}
	if b.Color == "" {
		b.Color = DefaultColor
	}
	return b
}
