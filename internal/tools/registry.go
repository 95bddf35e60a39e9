package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Registry is an ordered name-to-tool mapping owned by one assistant.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		tools:  tools,
		byName: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		r.byName[t.Name()] = t
	}
	return r
}

func (r *Registry) Tools() []Tool {
	return r.tools
}

// Invoke resolves a named tool and executes it with the given JSON arguments.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	tool, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("tool %q not found", name)
	}
	return tool.Invoke(ctx, args)
}
