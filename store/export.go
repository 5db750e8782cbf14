package store

// Export snapshots templates, messages and reminders into a portable
// bundle.
func (m *Manager) Export() (ExportBundle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	templates, err := m.templatesLocked()
	if err != nil {
		return ExportBundle{}, err
	}
	messages, err := m.messagesLocked()
	if err != nil {
		return ExportBundle{}, err
	}
	reminders, err := m.remindersLocked()
	if err != nil {
		return ExportBundle{}, err
	}

	return ExportBundle{
		Templates:  templates,
		Messages:   messages,
		Reminders:  reminders,
		ExportedAt: m.now(),
	}, nil
}

// Import replaces the stored collections with the bundle's. Nil
// collections in the bundle leave the existing data untouched.
func (m *Manager) Import(b ExportBundle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make(map[string]any)
	if b.Templates != nil {
		items[keyTemplates] = b.Templates
	}
	if b.Messages != nil {
		items[keyMessages] = b.Messages
	}
	if b.Reminders != nil {
		items[keyReminders] = b.Reminders
	}

	if len(items) == 0 {
		return nil
	}
	return m.kv.Set(items)
}
