package llm

func BuildSuggestPrompt(mealSummary string) string {
	return `You are a catering expert.

Based on the meal selections below, suggest popular catering packages.

Rules:
- Reply with ONLY a comma-separated list of package names.
- No explanations.
- No markdown.
- No numbering.
- At most 5 packages.

Meal selections:
` + mealSummary + `

Suggested packages (comma-separated):`
}
