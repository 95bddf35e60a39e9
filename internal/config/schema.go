package config

// AssistantsConfig is the root of the assistants policy configuration.
type AssistantsConfig struct {
	Assistants []AssistantConfig `yaml:"assistants"`
}

// AssistantConfig is the immutable per-domain policy bundle: instruction text,
// banned phrases, the minimum query length, and the fixed user-facing messages.
type AssistantConfig struct {
	Name           string         `yaml:"name"`
	Instructions   string         `yaml:"instructions"`
	Welcome        string         `yaml:"welcome"`
	MinQueryLength int            `yaml:"min_query_length"`
	Clarification  string         `yaml:"clarification"`
	BannedPhrases  []BannedPhrase `yaml:"banned_phrases"`
	Model          ModelParams    `yaml:"model"`
}

// BannedPhrase pairs a banned substring with the fixed warning returned when
// it matches. Matching is case-insensitive over the whole query.
type BannedPhrase struct {
	Phrase  string `yaml:"phrase"`
	Message string `yaml:"message"`
}

type ModelParams struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}
