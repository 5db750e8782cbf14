// Package template implements the message template engine: placeholder
// discovery, variable resolution against profile data, validation,
// previews and length estimation.
//
// Templates use double-brace placeholders ({{firstName}}, {{company}},
// ...). Rendering never fails: unknown variables are left in place so a
// typo in a template cannot corrupt the rest of the message.
package template

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxLength is LinkedIn's character ceiling for connection requests.
const MaxLength = 300

var (
	variableRe  = regexp.MustCompile(`\{\{(\w+)\}\}`)
	emptyVarRe  = regexp.MustCompile(`\{\{\s*\}\}`)
	atCompanyRe = regexp.MustCompile(`(?i)\bat\s+([^|,]+)`)
)

// Variables returns the distinct placeholder names in a template, in
// order of first appearance.
func Variables(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, m := range variableRe.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Render substitutes every resolvable placeholder with its value from
// data. Unresolved placeholders stay verbatim. A nil or empty data map
// returns the template unchanged.
func Render(tmpl string, data map[string]string) string {
	if tmpl == "" || len(data) == 0 {
		return tmpl
	}

	return variableRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := variableRe.FindStringSubmatch(match)[1]
		if value, ok := Resolve(name, data); ok {
			return value
		}
		return match
	})
}

// Resolve looks up a variable against the profile data. A direct,
// non-empty match on the exact key always wins; otherwise a fixed alias
// table derives the value. The second return is false when the variable
// cannot be resolved at all (the placeholder should stay literal).
func Resolve(variable string, data map[string]string) (string, bool) {
	if v := data[variable]; v != "" {
		return v, true
	}

	switch variable {
	case "firstName":
		return firstToken(data["name"]), true

	case "lastName":
		return lastToken(data["name"]), true

	case "fullName", "name":
		v, ok := data["name"]
		return v, ok

	case "company", "currentCompany":
		if c := data["company"]; c != "" {
			return c, true
		}
		return CompanyFromHeadline(data["headline"]), true

	case "role", "title", "position":
		if r := data["primaryRole"]; r != "" {
			return r, true
		}
		h, ok := data["headline"]
		if !ok {
			return "", false
		}
		return strings.TrimSpace(strings.SplitN(h, "|", 2)[0]), true

	case "headline", "location", "industry", "recentActivity":
		v, ok := data[variable]
		return v, ok

	case "school", "education":
		v, ok := data["school"]
		return v, ok

	case "mutualConnections", "mutuals":
		if v := data["mutualConnections"]; v != "" {
			return v, true
		}
		return "0", true

	case "skills":
		return data["skills"], true
	}

	return "", false
}

// CompanyFromHeadline guesses the company name out of a headline like
// "Engineer at Acme Corp | ex-Google". It tries the "at Company"
// pattern first, then the segment after the first pipe.
func CompanyFromHeadline(headline string) string {
	if headline == "" {
		return ""
	}

	if m := atCompanyRe.FindStringSubmatch(headline); m != nil {
		return strings.TrimSpace(m[1])
	}

	parts := strings.Split(headline, "|")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

// ValidationResult reports template problems found by Validate.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a template for unbalanced brackets, empty
// placeholders and the connection-request length ceiling.
func Validate(tmpl string) ValidationResult {
	var errors []string

	if strings.Count(tmpl, "{{") != strings.Count(tmpl, "}}") {
		errors = append(errors, "unclosed variable brackets detected")
	}

	if emptyVarRe.MatchString(tmpl) {
		errors = append(errors, "empty variable brackets detected")
	}

	if n := utf8.RuneCountInString(tmpl); n > MaxLength {
		errors = append(errors, fmt.Sprintf("template is %d characters (max %d for connection requests)", n, MaxLength))
	}

	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// SampleData is the built-in profile used by Preview when no sample is
// supplied.
func SampleData() map[string]string {
	return map[string]string{
		"name":              "John Doe",
		"firstName":         "John",
		"lastName":          "Doe",
		"headline":          "Senior Product Manager at TechCorp",
		"primaryRole":       "Senior Product Manager",
		"company":           "TechCorp",
		"location":          "San Francisco, CA",
		"industry":          "Technology",
		"mutualConnections": "12",
		"school":            "Stanford University",
	}
}

// Preview renders a template against sample data, falling back to the
// built-in sample profile.
func Preview(tmpl string, sample map[string]string) string {
	if sample == nil {
		sample = SampleData()
	}
	return Render(tmpl, sample)
}

// EstimateLength returns the rendered character count. With profile
// data it is exact; without, the five most common variables are
// substituted with average-length stand-ins and the result is only an
// approximation.
func EstimateLength(tmpl string, data map[string]string) int {
	if data != nil {
		return utf8.RuneCountInString(Render(tmpl, data))
	}

	estimated := tmpl
	for variable, avg := range map[string]string{
		"firstName": "John",
		"lastName":  "Smith",
		"name":      "John Smith",
		"company":   "TechCorp",
		"role":      "Product Manager",
	} {
		estimated = strings.ReplaceAll(estimated, "{{"+variable+"}}", avg)
	}

	return utf8.RuneCountInString(estimated)
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return ""
	}
	return fields[len(fields)-1]
}
