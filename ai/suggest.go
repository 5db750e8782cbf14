package ai

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// connection requests cap at 300 characters on LinkedIn
const suggestionLengthLimit = 300

var ctaRe = regexp.MustCompile(`(?i)\b(connect|chat|discuss|share|talk|reach out|coffee)\b`)

// Suggestion is a static improvement hint for a drafted message. No
// LLM call is involved.
type Suggestion struct {
	Type        string `json:"type"` // "warning" or "tip"
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	ActionText  string `json:"actionText,omitempty"`
}

// Suggestions inspects a message for common problems: over-length, no
// personalization variables, no call-to-action.
func Suggestions(message string) []Suggestion {
	var suggestions []Suggestion

	if n := utf8.RuneCountInString(message); n > suggestionLengthLimit {
		suggestions = append(suggestions, Suggestion{
			Type:        "warning",
			Icon:        "⚠️",
			Title:       "Message too long",
			Description: fmt.Sprintf("%d characters. LinkedIn connection requests have a 300 character limit.", n),
			Action:      "shorten",
			ActionText:  "Shorten message",
		})
	}

	if !strings.Contains(message, "{{") {
		suggestions = append(suggestions, Suggestion{
			Type:        "tip",
			Icon:        "💡",
			Title:       "Add personalization",
			Description: "Use variables like {{firstName}} or {{company}} for better results",
		})
	}

	if !strings.Contains(message, "?") && !ctaRe.MatchString(message) {
		suggestions = append(suggestions, Suggestion{
			Type:        "tip",
			Icon:        "🎯",
			Title:       "Add a call-to-action",
			Description: "End with a question or clear next step",
		})
	}

	return suggestions
}
