package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Reminders returns all stored reminders.
func (m *Manager) Reminders() ([]Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remindersLocked()
}

func (m *Manager) remindersLocked() ([]Reminder, error) {
	var reminders []Reminder
	if _, err := getValue(m.kv, keyReminders, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// SaveReminder stores a reminder, assigning an ID and creation
// timestamp when it has none.
func (m *Manager) SaveReminder(r Reminder) (Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reminders, err := m.remindersLocked()
	if err != nil {
		return Reminder{}, err
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
		r.CreatedAt = m.now()
	}

	reminders = append(reminders, r)
	return r, setValue(m.kv, keyReminders, reminders)
}

// ActiveReminders returns reminders that are not completed yet.
func (m *Manager) ActiveReminders() ([]Reminder, error) {
	reminders, err := m.Reminders()
	if err != nil {
		return nil, err
	}

	var active []Reminder
	for _, r := range reminders {
		if !r.Completed {
			active = append(active, r)
		}
	}
	return active, nil
}

// DueReminders returns active reminders scheduled on or before today.
func (m *Manager) DueReminders() ([]Reminder, error) {
	m.mu.Lock()
	today := m.today()
	m.mu.Unlock()

	reminders, err := m.Reminders()
	if err != nil {
		return nil, err
	}

	var due []Reminder
	for _, r := range reminders {
		if !r.Completed && r.ScheduledDate <= today {
			due = append(due, r)
		}
	}
	return due, nil
}

// CompleteReminder marks a reminder done.
func (m *Manager) CompleteReminder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reminders, err := m.remindersLocked()
	if err != nil {
		return err
	}

	for i := range reminders {
		if reminders[i].ID == id {
			now := m.now()
			reminders[i].Completed = true
			reminders[i].CompletedAt = &now
			return setValue(m.kv, keyReminders, reminders)
		}
	}

	return fmt.Errorf("reminder %q not found", id)
}

// DeleteReminder removes a reminder by ID.
func (m *Manager) DeleteReminder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reminders, err := m.remindersLocked()
	if err != nil {
		return err
	}

	for i := range reminders {
		if reminders[i].ID == id {
			reminders = append(reminders[:i], reminders[i+1:]...)
			return setValue(m.kv, keyReminders, reminders)
		}
	}

	return fmt.Errorf("reminder %q not found", id)
}
