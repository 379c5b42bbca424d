package chat

import "fmt"

// Canned user-facing messages. Wording is part of the chatbot's contract and
// is asserted in tests; change with care.

const (
	welcomeBanner = "Welcome to the Enhanced Weather Chatbot!\n" +
		"You can ask questions like: 'What's the weather in Munich on 2024-09-30?'\n" +
		"Type 'exit' to quit."

	promptPrefix = "You: "
	replyPrefix  = "Chatbot: "

	farewellMessage = "Goodbye!"

	notUnderstoodMessage = "I'm sorry, I couldn't understand the location or date in your query. Can you please rephrase?"
)

func noCoordinatesMessage(location string) string {
	return fmt.Sprintf("I'm sorry, I couldn't find the coordinates for %s.", location)
}

func noWeatherDataMessage(location, date string) string {
	return fmt.Sprintf("I'm sorry, I couldn't get weather data for %s on %s. The date might be out of range.", location, date)
}

func errorMessage(details string) string {
	return fmt.Sprintf("I'm sorry, I encountered an error: %s", details)
}
