// Package generator produces short comment texts for the commentPost node.
// The engine only sees the Comment interface; the concrete generator is
// chosen at startup (OpenAI when an API key is configured, the literal
// template otherwise).
package generator

import (
	"context"
	"strings"
)

// Request carries everything a generator may use to produce a comment.
type Request struct {
	// FirstName of the post author.
	FirstName string
	// Tone is a free-form style hint from the node config ("friendly",
	// "professional", ...). Optional.
	Tone string
	// Template is the custom text with {{first_name}} placeholders. When
	// set, template substitution is used even by AI-backed generators.
	Template string
}

// Comment generates the text to post.
type Comment interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// RenderTemplate substitutes the literal placeholder variables supported in
// user-authored texts. Unknown placeholders are left untouched.
func RenderTemplate(template string, vars map[string]string) string {
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}

// TemplateGenerator renders the request template, falling back to a fixed
// friendly default when the node config carries none.
type TemplateGenerator struct {
	// Default is used when the request has no template.
	Default string
}

// NewTemplateGenerator returns the zero-dependency generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{Default: "Great insights, {{first_name}}!"}
}

// Generate implements Comment.
func (g *TemplateGenerator) Generate(_ context.Context, req Request) (string, error) {
	template := req.Template
	if template == "" {
		template = g.Default
	}
	return RenderTemplate(template, map[string]string{"first_name": req.FirstName}), nil
}
