package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// InvestmentReturnTool computes compound growth of a principal over a number
// of years. Inputs are taken at face value; negative or zero values compute
// the same way the formula does.
type InvestmentReturnTool struct{}

func NewInvestmentReturnTool() *InvestmentReturnTool {
	return &InvestmentReturnTool{}
}

func (t *InvestmentReturnTool) Name() string {
	return "calculate_investment_return"
}

func (t *InvestmentReturnTool) Description() string {
	return "Calculate the future value of an investment given a principal, a yearly interest rate in percent, and a number of years"
}

func (t *InvestmentReturnTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"principal": {"type": "number", "description": "Initial amount invested"},
			"rate": {"type": "number", "description": "Yearly interest rate in percent"},
			"years": {"type": "integer", "description": "Investment duration in years"}
		},
		"required": ["principal", "rate", "years"]
	}`)
}

func (t *InvestmentReturnTool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Principal float64 `json:"principal"`
		Rate      float64 `json:"rate"`
		Years     int     `json:"years"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid investment arguments: %w", err)
	}

	futureValue := input.Principal * math.Pow(1+input.Rate/100, float64(input.Years))
	return fmt.Sprintf("📈 Future Value after %d years: $%.2f", input.Years, futureValue), nil
}
