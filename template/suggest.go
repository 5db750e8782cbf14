package template

import "strings"

// VariableSuggestion proposes a placeholder for a template that has
// none yet.
type VariableSuggestion struct {
	Variable string `json:"variable"`
	Reason   string `json:"reason"`
	Example  string `json:"example"`
}

// SuggestVariables recommends common placeholders when a template uses
// none. Templates that already contain placeholders get no suggestions.
func SuggestVariables(tmpl string) []VariableSuggestion {
	content := strings.ToLower(tmpl)
	if strings.Contains(content, "{{") {
		return nil
	}

	var suggestions []VariableSuggestion

	if strings.Contains(content, "hi ") || strings.Contains(content, "hello ") {
		suggestions = append(suggestions, VariableSuggestion{
			Variable: "firstName",
			Reason:   "Personalize greeting with first name",
			Example:  "Hi {{firstName}},",
		})
	}

	suggestions = append(suggestions,
		VariableSuggestion{
			Variable: "company",
			Reason:   "Mention their company",
			Example:  "I noticed you work at {{company}}",
		},
		VariableSuggestion{
			Variable: "role",
			Reason:   "Reference their role",
			Example:  "As a {{role}}...",
		},
	)

	return suggestions
}
