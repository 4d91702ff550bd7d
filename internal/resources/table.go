// Package resources holds the static data compiled into the binary and the
// typed loader that decodes it on demand.
//
// Every resource is registered under a unique key in one composite map
// literal. Keys are untyped constants, so registering the same key twice is a
// compile error.
package resources

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"
)

// Registered resource keys.
const (
	KeyAstronomicalNames = "astronomical_names"
	KeyShips             = "ships"
	KeySchematics        = "schematics"
)

//go:embed data/astronomical_names.yaml
var astronomicalNamesYAML string

//go:embed data/ships.yaml
var shipsYAML string

//go:embed data/schematics.yaml
var schematicsYAML string

// embedded returns the build-time entries of the process-wide table.
func embedded() map[string]string {
	return map[string]string{
		KeyAstronomicalNames: astronomicalNamesYAML,
		KeyShips:             shipsYAML,
		KeySchematics:        schematicsYAML,
	}
}

// Table maps resource keys to raw text. A Table never changes after
// construction and is safe for concurrent use.
type Table struct {
	entries map[string]string
}

// NewTable returns a table holding a copy of entries.
func NewTable(entries map[string]string) *Table {
	cp := make(map[string]string, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return &Table{entries: cp}
}

// Get returns the raw text registered under key. It panics when the key is
// absent: every key is known at build time, so a miss is a programming error.
func (t *Table) Get(key string) string {
	raw, ok := t.entries[key]
	if !ok {
		panic(fmt.Sprintf("resources: no resource registered for key %q", key))
	}
	return raw
}

// Keys returns the registered keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, building it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(embedded())
	})
	return defaultTable
}

// Get returns the raw text for key from the process-wide table.
func Get(key string) string {
	return Default().Get(key)
}

// Keys returns the keys of the process-wide table.
func Keys() []string {
	return Default().Keys()
}
