package assistant

import (
	"github.com/farhanashraf/domain-assistants/internal/checks"
	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/llm"
	"github.com/farhanashraf/domain-assistants/internal/tools"
)

// Assistant bundles one domain's policy with its checks and tools. It is
// immutable after construction and safe to share across invocations.
type Assistant struct {
	cfg      config.AssistantConfig
	checks   *checks.Runner
	registry *tools.Registry
}

func New(cfg config.AssistantConfig, toolset ...tools.Tool) *Assistant {
	runner := checks.NewRunner([]checks.Checker{
		checks.NewGuardrailChecker(cfg.BannedPhrases),
		checks.NewHandrailChecker(cfg.MinQueryLength, cfg.Clarification),
	})
	return &Assistant{
		cfg:      cfg,
		checks:   runner,
		registry: tools.NewRegistry(toolset...),
	}
}

func (a *Assistant) Name() string {
	return a.cfg.Name
}

func (a *Assistant) Instructions() string {
	return a.cfg.Instructions
}

func (a *Assistant) Welcome() string {
	return a.cfg.Welcome
}

func (a *Assistant) ModelParams() config.ModelParams {
	return a.cfg.Model
}

func (a *Assistant) Checks() *checks.Runner {
	return a.checks
}

func (a *Assistant) Tools() *tools.Registry {
	return a.registry
}

// ToolSpecs renders the assistant's tools in the shape the model layer wants.
func (a *Assistant) ToolSpecs() []llm.ToolSpec {
	toolset := a.registry.Tools()
	specs := make([]llm.ToolSpec, 0, len(toolset))
	for _, t := range toolset {
		specs = append(specs, llm.ToolSpec{
			Name:        t.Name(),
			Description: t.Description(),
			Schema:      t.Schema(),
		})
	}
	return specs
}
