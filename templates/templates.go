// Package templates keeps a keyed table of user facing message texts.
// Texts may contain mustache tags, filled in by Render.
package templates

import (
	"maps"
	"slices"
	"sync"

	"github.com/cbroglie/mustache"
	"github.com/vbauerster/clikit/clierr"
)

// Table is a set of message texts keyed by name. It is safe for concurrent
// use.
type Table struct {
	mu sync.RWMutex
	m  map[string]string
}

// New returns a Table seeded with the builtin messages.
func New() *Table {
	return &Table{m: map[string]string{
		"not_found":         "The requested resource was not found",
		"permission_denied": "Permission denied",
		"success":           "Completed successfully",
		"cancelled":         "Operation cancelled",
	}}
}

// Add inserts or replaces text under key.
func (t *Table) Add(key, text string) error {
	if key == "" {
		return clierr.ConfigError("template key is empty")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[key] = text
	return nil
}

// Get returns text under key.
func (t *Table) Get(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	text, ok := t.m[key]
	return text, ok
}

// Remove deletes key, reporting whether it was present.
func (t *Table) Remove(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.m[key]
	delete(t.m, key)
	return ok
}

// Keys returns sorted keys.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.m))
}

// Merge adds every entry of m, replacing existing ones. Empty keys are
// skipped.
func (t *Table) Merge(m map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range m {
		if k != "" {
			t.m[k] = v
		}
	}
}

// Render fills mustache tags of text under key from context. Double
// mustache tags are HTML escaped, triple ones are not.
func (t *Table) Render(key string, context ...any) (string, error) {
	text, ok := t.Get(key)
	if !ok {
		return "", clierr.ConfigError("unknown template " + key)
	}
	out, err := mustache.Render(text, context...)
	if err != nil {
		return "", clierr.Wrap(clierr.KindConfig, err, "render template "+key)
	}
	return out, nil
}

// Default is the process wide table.
var Default = New()

// Get returns text under key of Default.
func Get(key string) (string, bool) { return Default.Get(key) }

// Add inserts text under key into Default.
func Add(key, text string) error { return Default.Add(key, text) }

// Remove deletes key from Default.
func Remove(key string) bool { return Default.Remove(key) }
