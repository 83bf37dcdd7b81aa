package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const commentSystemPrompt = `You write short, genuine LinkedIn comments. ` +
	`One or two sentences, no hashtags, no emoji, never salesy. ` +
	`Address the author by first name.`

// OpenAIGenerator produces comments with a chat-completion model. A custom
// template on the request bypasses the model entirely — user-authored text
// always wins.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	fallback *TemplateGenerator
	logger   *slog.Logger
}

// NewOpenAIGenerator creates an AI-backed comment generator.
// model may be empty; gpt-4o-mini is the default.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewTemplateGenerator(),
		logger:   slog.Default().With("component", "comment-generator"),
	}
}

// Generate implements Comment. Model failures fall back to the template
// generator: a bland comment beats a failed step.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if req.Template != "" {
		return g.fallback.Generate(ctx, req)
	}

	prompt := fmt.Sprintf("Write a comment on a post by %s.", req.FirstName)
	if req.Tone != "" {
		prompt += " Tone: " + req.Tone + "."
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: 120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: commentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		g.logger.Warn("Comment generation failed, using template fallback", "error", err)
		return g.fallback.Generate(ctx, req)
	}
	if len(resp.Choices) == 0 {
		return g.fallback.Generate(ctx, req)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	text = strings.Trim(text, `"`)
	if text == "" {
		return g.fallback.Generate(ctx, req)
	}
	return text, nil
}
