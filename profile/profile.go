// Package profile defines the profile-data record produced by scraping
// a LinkedIn profile page, and the rod-based extractor that fills it.
package profile

import (
	"strings"
	"time"
)

// ProfileData holds the facts extracted from a person's public profile.
// Every field except Name is optional; Normalize guarantees lookups are
// total so downstream code never has to nil-check.
type ProfileData struct {
	Name              string    `json:"name"`
	Headline          string    `json:"headline,omitempty"`
	Company           string    `json:"company,omitempty"`
	Location          string    `json:"location,omitempty"`
	PrimaryRole       string    `json:"primaryRole,omitempty"`
	AllRoles          []string  `json:"allRoles,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	School            string    `json:"school,omitempty"`
	Skills            []string  `json:"skills,omitempty"`
	MutualConnections string    `json:"mutualConnections,omitempty"`
	RecentActivity    string    `json:"recentActivity,omitempty"`
	ProfileURL        string    `json:"profileUrl,omitempty"`
	ExtractedAt       time.Time `json:"extractedAt,omitempty"`
}

// Normalize fills the defaults the rest of the system relies on:
// Skills is never nil and MutualConnections always carries a count.
func (p *ProfileData) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.MutualConnections == "" {
		p.MutualConnections = "0"
	}
}

// Fields flattens the profile into the variable map the template
// engine renders against. Empty fields are omitted so the engine's
// alias fallbacks stay in charge of derivation; skills are pre-joined
// with ", " for substitution.
func (p ProfileData) Fields() map[string]string {
	fields := make(map[string]string)

	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	put("name", p.Name)
	put("headline", p.Headline)
	put("company", p.Company)
	put("location", p.Location)
	put("primaryRole", p.PrimaryRole)
	put("industry", p.Industry)
	put("school", p.School)
	put("mutualConnections", p.MutualConnections)
	put("recentActivity", p.RecentActivity)

	if len(p.Skills) > 0 {
		fields["skills"] = strings.Join(p.Skills, ", ")
	}

	return fields
}
