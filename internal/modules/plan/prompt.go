package plan

import (
	"fmt"

	"tripcast/internal/modules/weather"
)

// WeatherSummary renders the one-line weather context embedded in the prompt.
func WeatherSummary(w weather.Record) string {
	return fmt.Sprintf("Temperature: %g°C, Weather: %s, Humidity: %g%%, Wind Speed: %g m/s",
		w.Temperature, w.Description, w.Humidity, w.WindSpeed)
}

// BuildPrompt renders the itinerary instructions and the JSON schema the model must follow.
func BuildPrompt(destination, date string, w weather.Record) string {
	return fmt.Sprintf(`Create a detailed day-wise travel itinerary for %s on %s.

Weather Information: %s

Please provide a comprehensive itinerary that includes:
1. Morning activities (breakfast, sightseeing, etc.)
2. Afternoon activities (lunch, exploration, etc.)
3. Evening activities (dinner, entertainment, etc.)
4. Weather-appropriate recommendations (indoor activities if rainy, outdoor activities if sunny, etc.)
5. Local food recommendations
6. Transportation suggestions
7. Estimated costs for activities and meals

Format the response as a structured JSON with the following structure:
{
    "morning": {
        "activities": ["activity1", "activity2"],
        "food": "recommendation",
        "transportation": "suggestion",
        "estimated_cost": "cost range"
    },
    "afternoon": {
        "activities": ["activity1", "activity2"],
        "food": "recommendation",
        "transportation": "suggestion",
        "estimated_cost": "cost range"
    },
    "evening": {
        "activities": ["activity1", "activity2"],
        "food": "recommendation",
        "transportation": "suggestion",
        "estimated_cost": "cost range"
    },
    "weather_notes": "specific weather-related recommendations",
    "total_estimated_cost": "total cost range for the day"
}

Make sure the itinerary is practical, enjoyable, and takes into account the weather conditions.
`, destination, date, WeatherSummary(w))
}
