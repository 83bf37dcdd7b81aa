package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicIdentifier(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"with trailing slash", "https://www.linkedin.com/in/jane-doe-1/", "jane-doe-1"},
		{"without trailing slash", "https://www.linkedin.com/in/jane-doe-1", "jane-doe-1"},
		{"company page", "https://www.linkedin.com/company/acme-corp/", "acme-corp"},
		{"with query string", "https://www.linkedin.com/in/jane-doe-1?trk=feed", "jane-doe-1"},
		{"with sub-path", "https://www.linkedin.com/in/jane-doe-1/recent-activity/", "jane-doe-1"},
		{"no marker", "https://example.com/jane-doe", ""},
		{"empty slug", "https://www.linkedin.com/in/", ""},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPublicIdentifier(tt.url))
		})
	}
}
