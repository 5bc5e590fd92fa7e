// README: Prompt construction for itinerary generation.
package planner

import "fmt"

// BuildPrompt embeds every request field verbatim into one instruction.
func BuildPrompt(req TripRequest) string {
	return fmt.Sprintf(`You are an expert travel planner for students.
Create a detailed %d-day itinerary for %s with a total budget of ₹%d.
Keep it affordable and favour educational experiences.
Student preferences: %s.
Format the plan clearly with a day-wise breakdown followed by practical travel tips.`,
		req.Days, req.City, req.Budget, req.Preferences)
}
