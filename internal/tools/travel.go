package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// FlightTool returns a fixed mock flight quote. It queries no real data
// source.
type FlightTool struct{}

func NewFlightTool() *FlightTool {
	return &FlightTool{}
}

func (t *FlightTool) Name() string {
	return "get_mock_flight"
}

func (t *FlightTool) Description() string {
	return "Look up the cheapest flight between two cities"
}

func (t *FlightTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"city_from": {"type": "string", "description": "Departure city"},
			"city_to": {"type": "string", "description": "Destination city"}
		},
		"required": ["city_from", "city_to"]
	}`)
}

func (t *FlightTool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		CityFrom string `json:"city_from"`
		CityTo   string `json:"city_to"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid flight arguments: %w", err)
	}

	return fmt.Sprintf("✈️ Cheapest flight from %s to %s: $350, 1 stop, 7h travel.", input.CityFrom, input.CityTo), nil
}

// HotelTool returns a fixed mock hotel recommendation.
type HotelTool struct{}

func NewHotelTool() *HotelTool {
	return &HotelTool{}
}

func (t *HotelTool) Name() string {
	return "get_mock_hotel"
}

func (t *HotelTool) Description() string {
	return "Look up the top rated hotel in a city"
}

func (t *HotelTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"city": {"type": "string", "description": "City to search hotels in"}
		},
		"required": ["city"]
	}`)
}

func (t *HotelTool) Invoke(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		City string `json:"city"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid hotel arguments: %w", err)
	}

	return fmt.Sprintf("🏨 Top hotel in %s: Grand Palace Hotel, $120/night.", input.City), nil
}
