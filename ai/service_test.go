package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nehilsa2/linnectflow/profile"
)

// stubProvider replays a canned reply and captures the prompts it was
// given.
type stubProvider struct {
	reply  string
	err    error
	system string
	prompt string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.system = system
	s.prompt = prompt
	return s.reply, s.err
}

type recorderSpy struct {
	kinds []string
}

func (r *recorderSpy) RecordAIUsage(kind string) error {
	r.kinds = append(r.kinds, kind)
	return nil
}

func TestGenerate(t *testing.T) {
	stub := &stubProvider{reply: "Hi Jane, impressed by Acme!"}
	recorder := &recorderSpy{}

	svc, err := NewService(stub, WithUsageRecorder(recorder))
	require.NoError(t, err)

	p := profile.ProfileData{
		Name:     "Jane Smith",
		Headline: "Engineer at Acme Corp",
		Company:  "Acme Corp",
		Location: "Berlin",
	}

	result, err := svc.Generate(context.Background(), p, MessageContext{})
	require.NoError(t, err)
	assert.Equal(t, "Hi Jane, impressed by Acme!", result.Message)
	assert.Equal(t, len([]rune(result.Message)), result.CharCount)
	assert.Equal(t, []string{"generations"}, recorder.kinds)

	assert.Contains(t, stub.prompt, "Write a LinkedIn connection request for:")
	assert.Contains(t, stub.prompt, "- Name: Jane Smith")
	assert.Contains(t, stub.prompt, "- Role: Engineer at Acme Corp")
	assert.Contains(t, stub.prompt, "- Company: Acme Corp")
	assert.Contains(t, stub.prompt, "Tone: professional")
	assert.Contains(t, stub.prompt, "Maximum length: 200 characters")
	assert.Contains(t, stub.system, "professional LinkedIn messages")
}

func TestBuildPrompt(t *testing.T) {
	svc, err := NewService(&stubProvider{})
	require.NoError(t, err)

	t.Run("message type and length steer the prompt", func(t *testing.T) {
		prompt := svc.buildPrompt(profile.ProfileData{Name: "Bob"}, MessageContext{
			Type:   "message",
			Tone:   "friendly",
			Length: "long",
		})
		assert.Contains(t, prompt, "Write a LinkedIn message for:")
		assert.Contains(t, prompt, "Tone: friendly")
		assert.Contains(t, prompt, "Maximum length: 400 characters")
	})

	t.Run("empty fields are skipped", func(t *testing.T) {
		prompt := svc.buildPrompt(profile.ProfileData{}, MessageContext{})
		assert.Contains(t, prompt, "- Name: Professional")
		assert.NotContains(t, prompt, "- Company:")
		assert.NotContains(t, prompt, "- Location:")
	})

	t.Run("custom prompt replaces the default", func(t *testing.T) {
		custom, err := NewService(&stubProvider{}, WithCustomPrompt("Always mention pizza."))
		require.NoError(t, err)
		prompt := custom.buildPrompt(profile.ProfileData{Name: "Bob"}, MessageContext{})
		assert.Contains(t, prompt, "Always mention pizza.")
		assert.NotContains(t, prompt, "professional LinkedIn messaging assistant")
	})
}

func TestOptimize(t *testing.T) {
	stub := &stubProvider{reply: "Shorter message."}
	recorder := &recorderSpy{}

	svc, err := NewService(stub, WithUsageRecorder(recorder))
	require.NoError(t, err)

	result, err := svc.Optimize(context.Background(), "A very long message.", OptimizeOptions{
		Action:       ActionShorten,
		TargetLength: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, "A very long message.", result.Original)
	assert.Equal(t, "Shorter message.", result.Optimized)
	assert.Equal(t, ActionShorten, result.Action)
	assert.Equal(t, []string{"rewrites"}, recorder.kinds)
	assert.Contains(t, stub.prompt, "under 150 characters")

	t.Run("empty action defaults to improve", func(t *testing.T) {
		result, err := svc.Optimize(context.Background(), "msg", OptimizeOptions{})
		require.NoError(t, err)
		assert.Equal(t, ActionImprove, result.Action)
		assert.Contains(t, stub.prompt, "more engaging and effective")
	})

	t.Run("change_tone expands the tone", func(t *testing.T) {
		_, err := svc.Optimize(context.Background(), "msg", OptimizeOptions{
			Action: ActionChangeTone,
			Tone:   "enthusiastic",
		})
		require.NoError(t, err)
		assert.Contains(t, stub.prompt, "energetic and passionate")
	})
}

func TestProviderErrorSkipsUsageRecording(t *testing.T) {
	recorder := &recorderSpy{}
	svc, err := NewService(&stubProvider{err: errors.New("down")}, WithUsageRecorder(recorder))
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), profile.ProfileData{}, MessageContext{})
	assert.Error(t, err)
	assert.Empty(t, recorder.kinds)
}

func TestTestConnection(t *testing.T) {
	svc, err := NewService(&stubProvider{reply: "Connected!"})
	require.NoError(t, err)
	assert.NoError(t, svc.TestConnection(context.Background()))

	svc, err = NewService(&stubProvider{reply: "I cannot help with that."})
	require.NoError(t, err)
	assert.Error(t, svc.TestConnection(context.Background()))
}

func TestNewServiceRequiresProvider(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}
