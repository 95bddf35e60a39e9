package assistant

import (
	"fmt"

	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/tools"
)

// Registry holds the configured assistants, ordered as configured.
type Registry struct {
	ordered []*Assistant
	byName  map[string]*Assistant
}

// Build constructs assistants from config, attaching each domain's toolset.
// Domains without a known toolset get no tools, which keeps YAML-added
// domains usable as plain chat assistants.
func Build(cfg *config.AssistantsConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("assistants config is nil")
	}

	r := &Registry{
		byName: make(map[string]*Assistant, len(cfg.Assistants)),
	}
	for _, assistantCfg := range cfg.Assistants {
		a := New(assistantCfg, toolsetFor(assistantCfg.Name)...)
		r.ordered = append(r.ordered, a)
		r.byName[a.Name()] = a
	}

	if len(r.ordered) == 0 {
		return nil, fmt.Errorf("no assistants configured")
	}

	return r, nil
}

func (r *Registry) Get(name string) (*Assistant, bool) {
	a, ok := r.byName[name]
	return a, ok
}

func (r *Registry) List() []*Assistant {
	return r.ordered
}

func toolsetFor(domain string) []tools.Tool {
	switch domain {
	case "finance":
		return []tools.Tool{tools.NewInvestmentReturnTool()}
	case "health":
		return []tools.Tool{tools.NewBMITool()}
	case "travel":
		return []tools.Tool{tools.NewFlightTool(), tools.NewHotelTool()}
	default:
		return nil
	}
}
