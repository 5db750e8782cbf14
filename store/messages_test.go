package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMessage(t *testing.T) {
	m, _ := newTestManager(t)

	first, err := m.SaveMessage(Message{RecipientName: "Jane", MessageContent: "Hi Jane"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.SentAt.IsZero())
	assert.False(t, first.Replied)

	second, err := m.SaveMessage(Message{RecipientName: "Bob", MessageContent: "Hi Bob"})
	require.NoError(t, err)

	messages, err := m.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID, "newest message comes first")
	assert.Equal(t, first.ID, messages[1].ID)
}

func TestMessageHistoryCap(t *testing.T) {
	m, _ := newTestManager(t)

	seed := make([]Message, messageHistoryCap)
	for i := range seed {
		seed[i] = Message{ID: fmt.Sprintf("seed-%d", i), MessageContent: "old"}
	}
	require.NoError(t, setValue(m.kv, keyMessages, seed))

	saved, err := m.SaveMessage(Message{MessageContent: "new"})
	require.NoError(t, err)

	messages, err := m.Messages()
	require.NoError(t, err)
	require.Len(t, messages, messageHistoryCap)
	assert.Equal(t, saved.ID, messages[0].ID)
	assert.Equal(t, "seed-0", messages[1].ID)
	assert.Equal(t, fmt.Sprintf("seed-%d", messageHistoryCap-2), messages[messageHistoryCap-1].ID)
}

func TestSetMessageReplied(t *testing.T) {
	m, clock := newTestManager(t)

	msg, err := m.SaveMessage(Message{MessageContent: "Hi"})
	require.NoError(t, err)

	*clock = clock.Add(time.Hour)
	require.NoError(t, m.SetMessageReplied(msg.ID, true))

	messages, err := m.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Replied)
	require.NotNil(t, messages[0].RepliedAt)
	assert.Equal(t, *clock, messages[0].RepliedAt.UTC())

	require.NoError(t, m.SetMessageReplied(msg.ID, false))
	messages, err = m.Messages()
	require.NoError(t, err)
	assert.False(t, messages[0].Replied)
	assert.Nil(t, messages[0].RepliedAt)

	assert.EqualError(t, m.SetMessageReplied("missing", true), `message "missing" not found`)
}

func TestMessagesInRange(t *testing.T) {
	m, clock := newTestManager(t)
	start := *clock

	_, err := m.SaveMessage(Message{MessageContent: "day one"})
	require.NoError(t, err)

	*clock = clock.AddDate(0, 0, 5)
	_, err = m.SaveMessage(Message{MessageContent: "day six"})
	require.NoError(t, err)

	inRange, err := m.MessagesInRange(start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "day one", inRange[0].MessageContent)

	all, err := m.MessagesInRange(start, start.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchMessages(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.SaveMessage(Message{RecipientName: "Jane Smith", MessageContent: "about the fintech role"})
	require.NoError(t, err)
	_, err = m.SaveMessage(Message{RecipientName: "Bob", MessageContent: "catching up", Tags: []string{"Follow-Up"}})
	require.NoError(t, err)

	byName, err := m.SearchMessages("jane")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Jane Smith", byName[0].RecipientName)

	byContent, err := m.SearchMessages("FINTECH")
	require.NoError(t, err)
	assert.Len(t, byContent, 1)

	byTag, err := m.SearchMessages("follow-up")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Bob", byTag[0].RecipientName)

	none, err := m.SearchMessages("nomatch")
	require.NoError(t, err)
	assert.Empty(t, none)
}
