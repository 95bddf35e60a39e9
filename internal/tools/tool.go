package tools

import (
	"context"
	"encoding/json"
)

// Tool is a deterministic function the model may call mid-generation. Tools
// are stateless, side-effect free, and safe to invoke any number of times.
type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Invoke(ctx context.Context, args json.RawMessage) (string, error)
}
