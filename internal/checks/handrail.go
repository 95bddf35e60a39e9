package checks

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/farhanashraf/domain-assistants/internal/models"
)

// HandrailChecker rejects queries whose trimmed length is below the minimum,
// asking for more detail rather than blocking for safety. Length is counted
// in characters, not bytes, so multibyte scripts are measured fairly.
type HandrailChecker struct {
	minLength     int
	clarification string
}

func NewHandrailChecker(minLength int, clarification string) *HandrailChecker {
	return &HandrailChecker{minLength: minLength, clarification: clarification}
}

func (c *HandrailChecker) Check(query string) models.CheckResult {
	now := time.Now()
	result := models.CheckResult{
		Name:    models.CheckHandrail,
		Verdict: models.VerdictPass,
	}

	if utf8.RuneCountInString(strings.TrimSpace(query)) < c.minLength {
		result.Verdict = models.VerdictReject
		result.Message = c.clarification
	}

	result.Duration = time.Since(now)
	return result
}
