package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dario.cat/mergo"
)

// Config is a nested option store addressed by dotted keys, e.g.
// "prefix.function" or "js.lib.uri". Values live in a map tree of the
// kinds JSON decoding produces (string, bool, float64, map, slice).
//
// Config is a short-lived, single-owner value: callers using one from
// multiple goroutines must serialize mutations themselves.
type Config struct {
	options map[string]any
}

// New returns an empty option store.
func New() *Config {
	return &Config{options: map[string]any{}}
}

// NewFromMap returns a store seeded with a deep copy of m.
func NewFromMap(m map[string]any) *Config {
	c := New()
	for k, v := range m {
		c.options[k] = deepCopyValue(v)
	}
	return c
}

// GetOption returns the scalar option at key rendered as text, or the
// empty string when the key is absent or the value is not a scalar.
// This is the lookup the request builder consumes.
func (c *Config) GetOption(key string) string {
	val, found := c.LookupOption(key)
	if !found {
		return ""
	}
	switch t := val.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

// LookupOption returns the raw value at key and whether it exists.
func (c *Config) LookupOption(key string) (any, bool) {
	var current any = c.options

	for _, field := range splitKey(key) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[field]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// SetOption stores value at key, creating intermediate maps as needed.
// It fails when a segment along the path is already occupied by a
// non-map value.
func (c *Config) SetOption(key string, value any) error {
	fields := splitKey(key)
	if len(fields) == 0 {
		return fmt.Errorf("config: empty option key")
	}

	m := c.options
	for i, field := range fields[:len(fields)-1] {
		val, ok := m[field]
		if !ok {
			next := map[string]any{}
			m[field] = next
			m = next
			continue
		}
		next, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("config: %s is not a map", strings.Join(fields[:i+1], "."))
		}
		m = next
	}
	m[fields[len(fields)-1]] = deepCopyValue(value)

	return nil
}

// SetOptions deep-merges m over the current options, under an optional
// dotted prefix. Incoming values win over existing ones.
func (c *Config) SetOptions(m map[string]any, prefix string) error {
	incoming := map[string]any{}
	for k, v := range m {
		incoming[k] = deepCopyValue(v)
	}

	for _, field := range reversed(splitKey(prefix)) {
		incoming = map[string]any{field: incoming}
	}

	if err := mergo.Merge(&c.options, incoming, mergo.WithOverride); err != nil {
		return fmt.Errorf("config: cannot merge options: %w", err)
	}
	return nil
}

// Keys returns the sorted dotted paths of every leaf option.
func (c *Config) Keys() []string {
	keys := leafPaths(c.options, "")
	sort.Strings(keys)
	return keys
}

func leafPaths(m map[string]any, prefix string) []string {
	var paths []string

	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if sub, ok := value.(map[string]any); ok {
			paths = append(paths, leafPaths(sub, path)...)
			continue
		}
		paths = append(paths, path)
	}

	return paths
}

// splitKey converts a "prefix.function" key to its segments, dropping
// empty ones.
func splitKey(key string) []string {
	parts := strings.Split(key, ".")

	all := make([]string, 0, len(parts))
	for _, el := range parts {
		if el != "" {
			all = append(all, el)
		}
	}
	return all
}

func reversed(fields []string) []string {
	out := make([]string, 0, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		out = append(out, fields[i])
	}
	return out
}

func deepCopyValue(x any) any {
	switch x := x.(type) {
	case map[string]any:
		clone := make(map[string]any, len(x))
		for k, v := range x {
			clone[k] = deepCopyValue(v)
		}
		return clone
	case []any:
		clone := make([]any, len(x))
		for i, v := range x {
			clone[i] = deepCopyValue(v)
		}
		return clone
	default:
		return x
	}
}
