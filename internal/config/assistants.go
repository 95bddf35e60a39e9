package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultMinQueryLength = 5

// LoadAssistantsConfig returns the built-in assistant policies, overridden by
// the YAML file at ASSISTANTS_CONFIG_PATH (default configs/assistants.yaml)
// when one exists. A missing file is not an error.
func LoadAssistantsConfig() (*AssistantsConfig, error) {
	cfg := Defaults()

	path := os.Getenv("ASSISTANTS_CONFIG_PATH")
	if path == "" {
		path = "configs/assistants.yaml"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var override AssistantsConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse assistants config %s: %w", path, err)
	}
	if len(override.Assistants) > 0 {
		cfg = &override
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *AssistantsConfig) {
	for i := range cfg.Assistants {
		a := &cfg.Assistants[i]
		if a.MinQueryLength == 0 {
			a.MinQueryLength = defaultMinQueryLength
		}
		if a.Model.MaxTokens == 0 {
			a.Model.MaxTokens = 2000
		}
	}
}

func (c *AssistantsConfig) Validate() error {
	if len(c.Assistants) == 0 {
		return fmt.Errorf("no assistants configured")
	}
	seen := make(map[string]bool, len(c.Assistants))
	for _, a := range c.Assistants {
		if a.Name == "" {
			return fmt.Errorf("assistant with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate assistant name %q", a.Name)
		}
		seen[a.Name] = true
		if a.Instructions == "" {
			return fmt.Errorf("assistant %q has no instructions", a.Name)
		}
		if a.Clarification == "" {
			return fmt.Errorf("assistant %q has no clarification message", a.Name)
		}
		for _, b := range a.BannedPhrases {
			if b.Phrase == "" || b.Message == "" {
				return fmt.Errorf("assistant %q has a banned phrase with empty phrase or message", a.Name)
			}
		}
	}
	return nil
}

// Defaults returns the built-in finance, health, and travel assistant policies.
func Defaults() *AssistantsConfig {
	return &AssistantsConfig{
		Assistants: []AssistantConfig{
			{
				Name: "finance",
				Instructions: "You are a Finance Advisor Agent 💼.\n" +
					"Guardrails: Do NOT provide personal financial advice or illegal tips.\n" +
					"Handrails: Ask for clarification if question is vague.",
				Welcome:        "👋 Welcome to Finance Advisor! Ask me about stocks or investments.",
				MinQueryLength: defaultMinQueryLength,
				Clarification:  "🤔 Please provide more details about your financial question.",
				BannedPhrases: []BannedPhrase{
					{Phrase: "guaranteed profit", Message: "⚠️ I cannot provide guaranteed financial advice."},
					{Phrase: "fraud", Message: "⚠️ Unsafe query detected."},
					{Phrase: "scam", Message: "⚠️ Unsafe query detected."},
				},
				Model: ModelParams{MaxTokens: 2000, Temperature: 0.0, Retry: false},
			},
			{
				Name: "health",
				Instructions: "You are a Health Assistant 🩺.\n" +
					"Guardrails: Do not provide diagnoses or emergency instructions.\n" +
					"Handrails: Ask for clarification if vague.",
				Welcome:        "👋 Welcome to Health Assistant! Ask me about BMI or wellness.",
				MinQueryLength: defaultMinQueryLength,
				Clarification:  "🤔 Please provide more details about your health question.",
				BannedPhrases: []BannedPhrase{
					{Phrase: "self-harm", Message: "⚠️ This may be an emergency. Please consult a professional immediately."},
					{Phrase: "emergency", Message: "⚠️ This may be an emergency. Please consult a professional immediately."},
				},
				Model: ModelParams{MaxTokens: 2000, Temperature: 0.0, Retry: false},
			},
			{
				Name: "travel",
				Instructions: "You are a Travel Planner 🌍.\n" +
					"Guardrails: Avoid illegal or unsafe advice.\n" +
					"Handrails: Ask for missing info like city names.",
				Welcome:        "👋 Welcome to Travel Planner! Ask about flights or hotels.",
				MinQueryLength: defaultMinQueryLength,
				Clarification:  "🤔 Please provide city names or travel details.",
				BannedPhrases: []BannedPhrase{
					{Phrase: "illegal", Message: "⚠️ Cannot provide information on illegal activities."},
				},
				Model: ModelParams{MaxTokens: 2000, Temperature: 0.0, Retry: false},
			},
		},
	}
}
