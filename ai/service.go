// Package ai drafts and rewrites LinkedIn messages through an LLM
// provider. The template engine and this package are alternative ways
// to produce message text; they do not interact.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Nehilsa2/linnectflow/profile"
)

// Provider completes a prompt into message text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// UsageRecorder receives a notification per successful AI call so
// usage stays countable. *limits.Tier satisfies it.
type UsageRecorder interface {
	RecordAIUsage(kind string) error
}

// MessageContext steers generation.
type MessageContext struct {
	Type   string // "connection" or "message"
	Tone   string // professional, friendly, enthusiastic, concise
	Length string // short, medium, long
}

// Result is a drafted message.
type Result struct {
	Message   string `json:"message"`
	CharCount int    `json:"charCount"`
}

// OptimizeAction names a rewrite operation.
type OptimizeAction string

const (
	ActionImprove    OptimizeAction = "improve"
	ActionShorten    OptimizeAction = "shorten"
	ActionLengthen   OptimizeAction = "lengthen"
	ActionChangeTone OptimizeAction = "change_tone"
	ActionFixGrammar OptimizeAction = "fix_grammar"
)

// OptimizeOptions configures a rewrite.
type OptimizeOptions struct {
	Action       OptimizeAction
	Tone         string
	TargetLength int
}

// OptimizeResult is a rewritten message alongside the original.
type OptimizeResult struct {
	Original  string         `json:"original"`
	Optimized string         `json:"optimized"`
	Action    OptimizeAction `json:"action"`
	CharCount int            `json:"charCount"`
}

const systemPrompt = "You are a helpful assistant that writes professional LinkedIn messages. " +
	"You always provide ONLY the message text without any preamble, explanation, or quotes."

// DefaultPrompt is the base instruction users can override.
const DefaultPrompt = `You are a professional LinkedIn messaging assistant. Write personalized, friendly connection requests and messages that:
- Are concise (under 250 characters for connection requests)
- Mention specific details about the person's role or company
- Have a clear call-to-action
- Are professional but warm
- Avoid being salesy or pushy`

// Service generates and optimizes messages through a provider.
type Service struct {
	provider     Provider
	customPrompt string
	usage        UsageRecorder
	log          *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCustomPrompt overrides the base instruction.
func WithCustomPrompt(prompt string) Option {
	return func(s *Service) {
		if prompt != "" {
			s.customPrompt = prompt
		}
	}
}

// WithUsageRecorder wires usage accounting.
func WithUsageRecorder(u UsageRecorder) Option {
	return func(s *Service) { s.usage = u }
}

// WithLogger wires a logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates a service over a provider.
func NewService(provider Provider, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, errors.New("ai: provider is required")
	}

	s := &Service{
		provider:     provider,
		customPrompt: DefaultPrompt,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate drafts a message for a profile.
func (s *Service) Generate(ctx context.Context, p profile.ProfileData, mc MessageContext) (Result, error) {
	prompt := s.buildPrompt(p, mc)

	s.log.Debug("generating message",
		zap.String("provider", s.provider.Name()),
		zap.String("type", mc.Type))

	message, err := s.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return Result{}, err
	}

	s.recordUsage("generations")
	return Result{Message: message, CharCount: len([]rune(message))}, nil
}

// Optimize rewrites an existing message.
func (s *Service) Optimize(ctx context.Context, message string, opts OptimizeOptions) (OptimizeResult, error) {
	if opts.Action == "" {
		opts.Action = ActionImprove
	}

	prompt := fmt.Sprintf("%s\n\nMessage:\n%q\n\nProvide ONLY the revised message text.",
		optimizeInstruction(opts), message)

	optimized, err := s.provider.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return OptimizeResult{}, err
	}

	s.recordUsage("rewrites")
	return OptimizeResult{
		Original:  message,
		Optimized: optimized,
		Action:    opts.Action,
		CharCount: len([]rune(optimized)),
	}, nil
}

// TestConnection verifies the provider responds.
func (s *Service) TestConnection(ctx context.Context) error {
	reply, err := s.provider.Complete(ctx, systemPrompt, `Say "Connected"`)
	if err != nil {
		return err
	}
	if !containsFold(reply, "connected") {
		return fmt.Errorf("unexpected test reply: %q", reply)
	}
	return nil
}

func (s *Service) buildPrompt(p profile.ProfileData, mc MessageContext) string {
	if mc.Type == "" {
		mc.Type = "connection"
	}
	if mc.Tone == "" {
		mc.Tone = "professional"
	}

	maxChars := 200
	switch mc.Length {
	case "medium":
		maxChars = 300
	case "long":
		maxChars = 400
	}

	prompt := s.customPrompt + "\n\n"
	if mc.Type == "connection" {
		prompt += "Write a LinkedIn connection request for:\n"
	} else {
		prompt += "Write a LinkedIn message for:\n"
	}

	name := p.Name
	if name == "" {
		name = "Professional"
	}
	prompt += fmt.Sprintf("- Name: %s\n", name)
	if p.Headline != "" {
		prompt += fmt.Sprintf("- Role: %s\n", p.Headline)
	}
	if p.Company != "" {
		prompt += fmt.Sprintf("- Company: %s\n", p.Company)
	}
	if p.Location != "" {
		prompt += fmt.Sprintf("- Location: %s\n", p.Location)
	}

	prompt += fmt.Sprintf("\nTone: %s\n", mc.Tone)
	prompt += fmt.Sprintf("Maximum length: %d characters\n", maxChars)
	prompt += "\nProvide ONLY the message text, no explanations, no quotes, and no subject lines."

	return prompt
}

func optimizeInstruction(opts OptimizeOptions) string {
	switch opts.Action {
	case ActionShorten:
		target := opts.TargetLength
		if target == 0 {
			target = 200
		}
		return fmt.Sprintf("Shorten this LinkedIn message to under %d characters while keeping the core message.", target)
	case ActionLengthen:
		return "Expand this LinkedIn message with more details and context, but keep it professional."
	case ActionChangeTone:
		return fmt.Sprintf("Rewrite this LinkedIn message to be more %s.", toneGuide(opts.Tone))
	case ActionFixGrammar:
		return "Fix any grammar, spelling, or punctuation errors. Keep the tone and meaning the same."
	default:
		return "Improve this LinkedIn message to be more engaging and effective. " +
			"Make it more personalized and likely to get a response. Keep it professional."
	}
}

func toneGuide(tone string) string {
	switch tone {
	case "professional":
		return "formal and business-like"
	case "friendly":
		return "warm and casual but still professional"
	case "enthusiastic":
		return "energetic and passionate"
	case "concise":
		return "brief and to the point"
	}
	return tone
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func (s *Service) recordUsage(kind string) {
	if s.usage == nil {
		return
	}
	if err := s.usage.RecordAIUsage(kind); err != nil {
		s.log.Warn("failed to record AI usage", zap.String("kind", kind), zap.Error(err))
	}
}
