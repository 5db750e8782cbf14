package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Templates returns all stored templates.
func (m *Manager) Templates() ([]Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.templatesLocked()
}

func (m *Manager) templatesLocked() ([]Template, error) {
	var templates []Template
	if _, err := getValue(m.kv, keyTemplates, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplate retrieves a template by ID.
func (m *Manager) GetTemplate(id string) (*Template, error) {
	templates, err := m.Templates()
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], nil
		}
	}
	return nil, fmt.Errorf("template %q not found", id)
}

// SaveTemplate creates a template (empty ID) or updates an existing
// one. Creation assigns the ID, timestamps and zeroed counters.
func (m *Manager) SaveTemplate(t Template) (Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	templates, err := m.templatesLocked()
	if err != nil {
		return Template{}, err
	}

	now := m.now()

	if t.ID == "" {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		t.UpdatedAt = now
		t.UsageCount = 0
		t.ReplyCount = 0
		templates = append(templates, t)
		return t, setValue(m.kv, keyTemplates, templates)
	}

	for i := range templates {
		if templates[i].ID == t.ID {
			t.UpdatedAt = now
			templates[i] = t
			return t, setValue(m.kv, keyTemplates, templates)
		}
	}

	return Template{}, fmt.Errorf("template %q not found", t.ID)
}

// DeleteTemplate removes a template by ID.
func (m *Manager) DeleteTemplate(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	templates, err := m.templatesLocked()
	if err != nil {
		return err
	}

	for i := range templates {
		if templates[i].ID == id {
			templates = append(templates[:i], templates[i+1:]...)
			return setValue(m.kv, keyTemplates, templates)
		}
	}

	return fmt.Errorf("template %q not found", id)
}

// RecordTemplateUsage bumps a template's usage counter and last-used
// timestamp. Unknown IDs are a silent no-op, matching how a deleted
// template can still be referenced by old history entries.
func (m *Manager) RecordTemplateUsage(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	templates, err := m.templatesLocked()
	if err != nil {
		return err
	}

	for i := range templates {
		if templates[i].ID == id {
			now := m.now()
			templates[i].UsageCount++
			templates[i].LastUsed = &now
			return setValue(m.kv, keyTemplates, templates)
		}
	}

	return nil
}

// adjustTemplateReply moves a template's reply counter by delta,
// clamped at zero so toggling a reply flag off more times than on can
// never drive the count negative.
func (m *Manager) adjustTemplateReply(id string, delta int) error {
	templates, err := m.templatesLocked()
	if err != nil {
		return err
	}

	for i := range templates {
		if templates[i].ID == id {
			templates[i].ReplyCount += delta
			if templates[i].ReplyCount < 0 {
				templates[i].ReplyCount = 0
			}
			return setValue(m.kv, keyTemplates, templates)
		}
	}

	return nil
}

// DefaultTemplates returns the built-in starter templates.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:        "follow_up_generic",
			Description: "Generic follow-up message for new connections",
			Content:     "Hi {{firstName}}! Thanks for connecting. I noticed you're working at {{company}} - would love to learn more about your work. Looking forward to staying in touch!",
		},
		{
			Name:        "follow_up_software",
			Description: "Follow-up for software engineers",
			Content:     "Hi {{firstName}}! Great to connect with a fellow developer. I see you're at {{company}} - always interested to hear about the tech stack and challenges teams are tackling. What are you working on these days?",
		},
		{
			Name:        "connection_mutuals",
			Description: "Connection request mentioning mutual connections",
			Content:     "Hi {{firstName}}, we have {{mutualConnections}} mutual connections and I keep seeing your work at {{company}}. Would love to connect!",
		},
		{
			Name:        "follow_up_simple",
			Description: "Simple thank you message",
			Content:     "Hi {{firstName}}! Thanks for accepting my connection request. Looking forward to staying in touch!",
		},
	}
}

// SeedDefaultTemplates stores the starter templates when the store has
// none yet.
func (m *Manager) SeedDefaultTemplates() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	templates, err := m.templatesLocked()
	if err != nil {
		return err
	}
	if len(templates) > 0 {
		return nil
	}

	now := m.now()
	for _, t := range DefaultTemplates() {
		t.ID = uuid.NewString()
		t.CreatedAt = now
		t.UpdatedAt = now
		templates = append(templates, t)
	}

	return setValue(m.kv, keyTemplates, templates)
}
