package checks

import (
	"strings"
	"time"

	"github.com/farhanashraf/domain-assistants/internal/config"
	"github.com/farhanashraf/domain-assistants/internal/models"
)

// GuardrailChecker blocks queries containing any banned phrase. Matching is
// case-insensitive substring matching against the full query text; the first
// matching phrase's message is returned.
type GuardrailChecker struct {
	phrases []config.BannedPhrase
}

func NewGuardrailChecker(phrases []config.BannedPhrase) *GuardrailChecker {
	return &GuardrailChecker{phrases: phrases}
}

func (c *GuardrailChecker) Check(query string) models.CheckResult {
	now := time.Now()
	result := models.CheckResult{
		Name:    models.CheckGuardrail,
		Verdict: models.VerdictPass,
	}

	lowered := strings.ToLower(query)
	for _, banned := range c.phrases {
		if strings.Contains(lowered, strings.ToLower(banned.Phrase)) {
			result.Verdict = models.VerdictReject
			result.Message = banned.Message
			break
		}
	}

	result.Duration = time.Since(now)
	return result
}
