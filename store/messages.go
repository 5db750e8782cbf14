package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// messageHistoryCap bounds the stored history to keep the storage
// footprint small.
const messageHistoryCap = 1000

// Messages returns the message history, newest first.
func (m *Manager) Messages() ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesLocked()
}

func (m *Manager) messagesLocked() ([]Message, error) {
	var messages []Message
	if _, err := getValue(m.kv, keyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveMessage prepends a message to the history, assigning its ID and
// sent timestamp. History beyond the cap is discarded from the tail.
func (m *Manager) SaveMessage(msg Message) (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages, err := m.messagesLocked()
	if err != nil {
		return Message{}, err
	}

	msg.ID = uuid.NewString()
	msg.SentAt = m.now()
	msg.Replied = false
	msg.RepliedAt = nil

	messages = append([]Message{msg}, messages...)
	if len(messages) > messageHistoryCap {
		messages = messages[:messageHistoryCap]
	}

	return msg, setValue(m.kv, keyMessages, messages)
}

// SetMessageReplied flags a message as replied (or un-replied) and
// propagates the change to the originating template's reply counter.
func (m *Manager) SetMessageReplied(id string, replied bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	messages, err := m.messagesLocked()
	if err != nil {
		return err
	}

	for i := range messages {
		if messages[i].ID != id {
			continue
		}

		messages[i].Replied = replied
		if replied {
			now := m.now()
			messages[i].RepliedAt = &now
		} else {
			messages[i].RepliedAt = nil
		}

		if err := setValue(m.kv, keyMessages, messages); err != nil {
			return err
		}

		if messages[i].TemplateID != "" {
			delta := 1
			if !replied {
				delta = -1
			}
			return m.adjustTemplateReply(messages[i].TemplateID, delta)
		}
		return nil
	}

	return fmt.Errorf("message %q not found", id)
}

// MessagesInRange returns messages sent within [start, end].
func (m *Manager) MessagesInRange(start, end time.Time) ([]Message, error) {
	messages, err := m.Messages()
	if err != nil {
		return nil, err
	}

	var inRange []Message
	for _, msg := range messages {
		if !msg.SentAt.Before(start) && !msg.SentAt.After(end) {
			inRange = append(inRange, msg)
		}
	}
	return inRange, nil
}

// SearchMessages matches the query against recipient names, message
// content and tags, case-insensitively.
func (m *Manager) SearchMessages(query string) ([]Message, error) {
	messages, err := m.Messages()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)

	var matched []Message
	for _, msg := range messages {
		if strings.Contains(strings.ToLower(msg.RecipientName), query) ||
			strings.Contains(strings.ToLower(msg.MessageContent), query) ||
			tagsMatch(msg.Tags, query) {
			matched = append(matched, msg)
		}
	}
	return matched, nil
}

func tagsMatch(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
