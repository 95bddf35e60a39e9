package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// BMITool computes body mass index from weight in kilograms and height in
// meters and classifies it into one of four fixed bands.
type BMITool struct{}

func NewBMITool() *BMITool {
	return &BMITool{}
}

func (t *BMITool) Name() string {
	return "bmi_calculator"
}

func (t *BMITool) Description() string {
	return "Calculate body mass index from weight in kilograms and height in meters"
}

func (t *BMITool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"weight": {"type": "number", "description": "Weight in kilograms"},
			"height": {"type": "number", "description": "Height in meters"}
		},
		"required": ["weight", "height"]
	}`)
}

func (t *BMITool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Weight float64 `json:"weight"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid bmi arguments: %w", err)
	}
	if input.Height <= 0 {
		return "", fmt.Errorf("height must be positive, got %v", input.Height)
	}

	bmi := input.Weight / (input.Height * input.Height)

	var status string
	switch {
	case bmi < 18.5:
		status = "Underweight"
	case bmi < 24.9:
		status = "Normal"
	case bmi < 29.9:
		status = "Overweight"
	default:
		status = "Obese"
	}

	return fmt.Sprintf("⚕️ Your BMI is %.1f (%s).", bmi, status), nil
}
