package profile

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

const (
	maxRoles  = 5
	maxSkills = 5
)

var (
	mutualRe    = regexp.MustCompile(`(?i)(\d+)\s+mutual`)
	atCompanyRe = regexp.MustCompile(`(?i)\bat\s+([^|,•·]+)`)
)

// Extractor scrapes profile data from a LinkedIn profile page.
type Extractor struct {
	browser *rod.Browser
}

// NewExtractor creates an extractor backed by an already-connected
// browser.
func NewExtractor(browser *rod.Browser) *Extractor {
	return &Extractor{browser: browser}
}

// Extract opens a profile URL and scrapes it.
func (e *Extractor) Extract(profileURL string) (ProfileData, error) {
	page, err := e.browser.Page(proto.TargetCreateTarget{URL: profileURL})
	if err != nil {
		return ProfileData{}, err
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return ProfileData{}, err
	}
	time.Sleep(settleDelay())

	data := ExtractFromPage(page)
	data.ProfileURL = profileURL
	return data, nil
}

// ExtractFromPage scrapes an already-loaded profile page. Missing
// sections degrade to defaults, never errors: a sparse profile is
// normal.
func ExtractFromPage(page *rod.Page) ProfileData {
	data := ProfileData{
		Name:              extractName(page),
		Headline:          extractHeadline(page),
		Location:          extractLocation(page),
		AllRoles:          extractAllRoles(page),
		Industry:          extractIndustry(page),
		School:            extractSchool(page),
		Skills:            extractSkills(page),
		MutualConnections: extractMutualConnections(page),
		RecentActivity:    extractRecentActivity(page),
		ExtractedAt:       time.Now(),
	}

	data.Company = extractCompany(page, data.Headline)
	data.PrimaryRole = primaryRoleFromHeadline(data.Headline)
	data.Normalize()
	return data
}

func extractName(page *rod.Page) string {
	selectors := []string{
		`h1.text-heading-xlarge`,
		`h1.inline.t-24`,
		`.pv-text-details__left-panel h1`,
		`h1`,
	}

	if text := firstText(page, selectors, nil); text != "" {
		return text
	}
	return "Name not found"
}

func extractHeadline(page *rod.Page) string {
	selectors := []string{
		`.text-body-medium.break-words`,
		`.pv-text-details__left-panel .text-body-medium`,
		`div.text-body-medium`,
		`.mt1.t-18`,
	}

	text := firstText(page, selectors, func(t string) bool {
		return len(t) > 10
	})
	if text != "" {
		return text
	}
	return "Professional"
}

func extractLocation(page *rod.Page) string {
	selectors := []string{
		`.text-body-small.inline.t-black--light.break-words`,
		`.pv-text-details__left-panel .text-body-small`,
		`span.text-body-small`,
	}

	// Locations read like "City, State, Country".
	return firstText(page, selectors, func(t string) bool {
		return len(t) > 3 && strings.Contains(t, ",")
	})
}

func extractCompany(page *rod.Page, headline string) string {
	for _, text := range sectionTexts(page, "#experience", `span.t-14.t-normal span[aria-hidden="true"]`) {
		if len(text) > 2 && !startsWithDigit(text) {
			return text
		}
	}

	if m := atCompanyRe.FindStringSubmatch(headline); m != nil {
		return strings.TrimSpace(m[1])
	}

	parts := splitHeadline(headline)
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}

	return ""
}

func primaryRoleFromHeadline(headline string) string {
	parts := splitHeadline(headline)
	if len(parts) > 0 {
		return strings.TrimSpace(parts[0])
	}
	return headline
}

func extractAllRoles(page *rod.Page) []string {
	var roles []string

	texts := sectionTexts(page, "#experience",
		`.display-flex.ph5.pv3 span[aria-hidden="true"], .pvs-list__paged-list-item .mr1.t-bold span[aria-hidden="true"]`)
	for _, text := range texts {
		if len(text) > 3 && !startsWithDigit(text) && !contains(roles, text) {
			roles = append(roles, text)
		}
	}

	if len(roles) > maxRoles {
		roles = roles[:maxRoles]
	}
	return roles
}

func extractIndustry(page *rod.Page) string {
	section, err := sectionRoot(page, "#about")
	if err != nil {
		return ""
	}

	text, err := section.Text()
	if err != nil {
		return ""
	}

	lower := strings.ToLower(text)
	for _, keyword := range []string{
		"technology", "software", "finance", "healthcare", "education",
		"marketing", "sales", "consulting", "engineering", "design",
	} {
		if strings.Contains(lower, keyword) {
			return strings.ToUpper(keyword[:1]) + keyword[1:]
		}
	}

	return ""
}

func extractSchool(page *rod.Page) string {
	texts := sectionTexts(page, "#education",
		`span.t-14.t-normal span[aria-hidden="true"], .pvs-list__paged-list-item .mr1.t-bold span[aria-hidden="true"]`)
	for _, text := range texts {
		if len(text) > 3 && !startsWithDigit(text) && !strings.HasPrefix(text, "(") {
			return text
		}
	}
	return ""
}

func extractSkills(page *rod.Page) []string {
	var skills []string

	for _, text := range sectionTexts(page, "#skills", `.pvs-list__paged-list-item span[aria-hidden="true"]`) {
		if len(text) > 2 && len(text) < 50 && !contains(skills, text) {
			skills = append(skills, text)
		}
	}

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

func extractMutualConnections(page *rod.Page) string {
	selectors := []string{
		`span.link-without-visited-state span[aria-hidden="true"]`,
		`.dist-value`,
	}

	for _, sel := range selectors {
		elements, err := page.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range elements {
			text, err := el.Text()
			if err != nil {
				continue
			}
			if m := mutualRe.FindStringSubmatch(text); m != nil {
				return m[1]
			}
		}
	}

	return "0"
}

func extractRecentActivity(page *rod.Page) string {
	texts := sectionTexts(page, "#recent-activity", `.feed-shared-update-v2__description`)
	if len(texts) == 0 {
		return ""
	}

	post := texts[0]
	if len(post) > 200 {
		post = post[:200]
	}
	return post
}

// firstText returns the first non-empty trimmed text matched by the
// selector list, optionally filtered.
func firstText(page *rod.Page, selectors []string, accept func(string) bool) string {
	for _, sel := range selectors {
		elements, err := page.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range elements {
			text, err := el.Text()
			if err != nil {
				continue
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			if accept == nil || accept(text) {
				return text
			}
		}
	}
	return ""
}

// sectionRoot finds a profile section anchor (#experience, #education,
// ...) and returns its enclosing section element.
func sectionRoot(page *rod.Page, anchor string) (*rod.Element, error) {
	el, err := page.Element(anchor)
	if err != nil {
		return nil, err
	}
	return el.Parent()
}

// sectionTexts collects trimmed texts under a profile section.
func sectionTexts(page *rod.Page, anchor, selector string) []string {
	section, err := sectionRoot(page, anchor)
	if err != nil {
		return nil
	}

	elements, err := section.Elements(selector)
	if err != nil {
		return nil
	}

	var texts []string
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func splitHeadline(headline string) []string {
	return strings.FieldsFunc(headline, func(r rune) bool {
		return r == '|' || r == '•' || r == '·'
	})
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
