package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{
		"first_name": "Jane",
		"last_name":  "Doe",
		"company":    "Acme",
	}

	assert.Equal(t, "Hi Jane Doe from Acme",
		RenderTemplate("Hi {{first_name}} {{last_name}} from {{company}}", vars))
	assert.Equal(t, "Hi {{nickname}}",
		RenderTemplate("Hi {{nickname}}", vars), "unknown placeholders stay literal")
	assert.Equal(t, "no placeholders", RenderTemplate("no placeholders", vars))
}

func TestTemplateGenerator(t *testing.T) {
	g := NewTemplateGenerator()

	t.Run("uses the request template", func(t *testing.T) {
		text, err := g.Generate(context.Background(), Request{
			FirstName: "Jane",
			Template:  "Love this, {{first_name}}!",
		})
		require.NoError(t, err)
		assert.Equal(t, "Love this, Jane!", text)
	})

	t.Run("falls back to the default", func(t *testing.T) {
		text, err := g.Generate(context.Background(), Request{FirstName: "Jane"})
		require.NoError(t, err)
		assert.Equal(t, "Great insights, Jane!", text)
	})
}
