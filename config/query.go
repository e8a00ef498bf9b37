package config

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"
)

// Query evaluates a jq expression against the option tree and returns the
// first result. Useful for inspecting configuration beyond plain dotted
// lookups, e.g. `.prefix | keys`.
func (c *Config) Query(ctx context.Context, expr string) (any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("config: error parsing query %q: %w", expr, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("config: error compiling query %q: %w", expr, err)
	}

	iter := code.RunWithContext(ctx, deepCopyValue(c.options))

	val, ok := iter.Next()
	if !ok {
		return nil, nil
	}
	if err, ok := val.(error); ok {
		return nil, fmt.Errorf("config: query %q failed: %w", expr, err)
	}
	return val, nil
}
