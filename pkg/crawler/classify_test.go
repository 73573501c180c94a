package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kineticbrand/demandlab/internal/models"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path     string
		expected models.PageType
	}{
		{"/", models.PageTypeHomepage},
		{"/pricing", models.PageTypePricing},
		{"/plans", models.PageTypePricing},
		{"/contact", models.PageTypeContact},
		{"/contact-us", models.PageTypeContact},
		{"/demo", models.PageTypeLanding},
		{"/free-trial", models.PageTypeLanding},
		{"/get-started", models.PageTypeLanding},
		{"/lp/spring-offer", models.PageTypeLanding},
		{"/webinar/q3-growth", models.PageTypeLanding},
		{"/about", models.PageTypeOther},
		{"/blog/some-post", models.PageTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyPath(tt.path))
		})
	}
}

func TestDetectForm(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected bool
	}{
		{
			name:     "form with email input",
			html:     `<form action="/subscribe"><input type="email" name="email"></form>`,
			expected: true,
		},
		{
			name:     "form with submit button",
			html:     `<form><input type="submit" value="Send"></form>`,
			expected: true,
		},
		{
			name:     "form without input markers",
			html:     `<form></form>`,
			expected: false,
		},
		{
			name:     "input markers without a form",
			html:     `<input type="email">`,
			expected: false,
		},
		{
			name:     "no form at all",
			html:     `<div>plain content</div>`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectForm(tt.html))
		})
	}
}

func TestDetectCTA(t *testing.T) {
	assert.True(t, detectCTA(`<button>Get Started</button>`))
	assert.True(t, detectCTA(`<a href="/demo">BOOK A DEMO</a>`))
	assert.False(t, detectCTA(`<p>Read our story</p>`))
}
