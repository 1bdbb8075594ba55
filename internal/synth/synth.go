package synth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/designscan/internal/design"
	"github.com/hyperifyio/designscan/internal/llm"
)

// Input bundles what the model sees about one analyzed page.
type Input struct {
	URL      string
	Analysis design.Analysis
	Tokens   design.Tokens
	Model    string
}

// Synthesizer asks a chat model for a short Markdown design brief.
type Synthesizer struct {
	Client llm.Client
	// SystemPrompt, when non-empty, overrides the default system message.
	SystemPrompt string
}

// ErrNoSubstantiveBody indicates the model produced no usable Markdown body.
var ErrNoSubstantiveBody = errors.New("no substantive body")

const defaultSystemPrompt = "You are a senior UI designer. Describe only what the provided analysis shows. Do not invent colors, components or copy that are not in the input. Keep style concise and practical."

// Synthesize returns the brief as Markdown. It makes exactly one call.
func (s *Synthesizer) Synthesize(ctx context.Context, in Input) (string, error) {
	if s.Client == nil || strings.TrimSpace(in.Model) == "" {
		return "", errors.New("synthesizer not configured")
	}
	system := defaultSystemPrompt
	if strings.TrimSpace(s.SystemPrompt) != "" {
		system = s.SystemPrompt
	}
	user, err := buildUserMessage(in)
	if err != nil {
		return "", err
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: in.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("brief call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoSubstantiveBody
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrNoSubstantiveBody
	}
	return out, nil
}

func buildUserMessage(in Input) (string, error) {
	analysis, err := json.MarshalIndent(in.Analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode analysis: %w", err)
	}
	tokens, err := json.MarshalIndent(in.Tokens, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tokens: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("Write a short Markdown design brief with:")
	sb.WriteString("\n- A title on the first line")
	sb.WriteString("\n- A 'Palette' section built from the extracted colors and the reference tokens")
	sb.WriteString("\n- A 'Typography' section describing the heading hierarchy")
	sb.WriteString("\n- A 'Navigation and components' section covering nav groups and buttons")
	sb.WriteString("\n- A 'Layout' section noting sections and grid usage")
	sb.WriteString("\n\nPage: ")
	sb.WriteString(in.URL)
	sb.WriteString("\n\nExtracted analysis (JSON):\n")
	sb.Write(analysis)
	sb.WriteString("\n\nReference design tokens (JSON):\n")
	sb.Write(tokens)
	sb.WriteString("\n\nOutput only the Markdown. Do not include any prose outside the document.")
	return sb.String(), nil
}
