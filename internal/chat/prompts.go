package chat

import (
	"fmt"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
)

// extractionPrompt builds the fixed intent-extraction instruction around one
// user query. The model is expected to answer with a two-field JSON object.
func extractionPrompt(query string) string {
	return fmt.Sprintf(`Extract the location and date from the following weather-related query.
If no specific date is mentioned, assume it's for today.
Query: %s
Return the result like this:
{
    "location": "extracted location",
    "date": "extracted date in YYYY-MM-DD format"
}`, query)
}

// reportPrompt builds the fixed report-composition instruction from one day's
// forecast, its decoded condition, and the queried location.
func reportPrompt(day domain.DayForecast, condition, location string) string {
	return fmt.Sprintf(`Analyze the following weather data and generate a detailed, natural language response:

Location: %s
Date: %s
Weather Condition: %s
Temperature:
  - Max: %g°C
  - Min: %g°C
  - Mean: %g°C
Felt Temperature:
  - Max: %g°C
  - Min: %g°C
Precipitation: %g mm
Precipitation Probability: %g%%
Wind:
  - Speed: %g m/s
  - Direction: %g°
UV Index: %g
Relative Humidity: %g%%

Provide a comprehensive weather report that includes:
1. A summary of the overall weather condition
2. Temperature analysis, including how it might feel
3. Precipitation forecast and probability
4. Wind conditions and what they mean for the day
5. UV index interpretation and sun protection advice if needed
6. Any notable weather patterns or changes

The response should be friendly, informative, and easy to understand for the general public.`,
		location,
		day.Date,
		condition,
		day.TemperatureMax,
		day.TemperatureMin,
		day.TemperatureMean,
		day.FeltTemperatureMax,
		day.FeltTemperatureMin,
		day.Precipitation,
		day.PrecipitationProbability,
		day.WindspeedMean,
		day.WindDirection,
		day.UVIndex,
		day.RelativeHumidityMean,
	)
}
