// README: Day-plan record produced from model output, plus the fallback plan.
package plan

import (
	"fmt"

	"tripcast/internal/modules/weather"
)

// Record is the generated day plan. Its shape is advisory: it is whatever JSON
// object the model produced, or DefaultRecord when extraction failed.
type Record map[string]any

// Top-level keys of a well-formed plan.
const (
	KeyMorning            = "morning"
	KeyAfternoon          = "afternoon"
	KeyEvening            = "evening"
	KeyWeatherNotes       = "weather_notes"
	KeyTotalEstimatedCost = "total_estimated_cost"
	// KeyAIResponse holds the raw model text when a parse was attempted and failed.
	KeyAIResponse = "ai_response"
)

// Period keys.
const (
	KeyActivities     = "activities"
	KeyFood           = "food"
	KeyTransportation = "transportation"
	KeyEstimatedCost  = "estimated_cost"
)

// DefaultRecord is the generic plan returned when the model output holds no usable JSON.
func DefaultRecord(w weather.Record) Record {
	return Record{
		KeyMorning:            period("Explore local attractions", "Local breakfast recommendation", "$10-20"),
		KeyAfternoon:          period("Visit museums or landmarks", "Local lunch recommendation", "$15-30"),
		KeyEvening:            period("Dinner and entertainment", "Local dinner recommendation", "$20-40"),
		KeyWeatherNotes:       fmt.Sprintf("Weather-aware recommendations based on %s", w.Description),
		KeyTotalEstimatedCost: "$45-90",
	}
}

func period(activity, food, cost string) map[string]any {
	return map[string]any{
		KeyActivities:     []any{activity},
		KeyFood:           food,
		KeyTransportation: "Walking or public transport",
		KeyEstimatedCost:  cost,
	}
}
