package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	html := `
		<html><body>
			<a href="/pricing">Pricing</a>
			<a href="https://example.com/demo">Request a Demo</a>
			<a href="mailto:hello@example.com">Email us</a>
			<a href="tel:+1-555-0100">Call</a>
			<a href="#features">Features</a>
			<a href="javascript:void(0)">Menu</a>
			<a href="/pricing">Pricing again</a>
		</body></html>`

	links := Links(html, "https://example.com")
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/pricing", links[0].URL)
	assert.Equal(t, "Pricing", links[0].AnchorText)
	assert.Equal(t, "https://example.com/demo", links[1].URL)
	assert.Equal(t, "Request a Demo", links[1].AnchorText)
}

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		candidate string
		expected  bool
	}{
		{
			name:      "same registrable domain",
			base:      "https://example.com",
			candidate: "https://www.example.com/pricing",
			expected:  true,
		},
		{
			name:      "different domain",
			base:      "https://example.com",
			candidate: "https://other.com/pricing",
			expected:  false,
		},
		{
			name:      "localhost same port",
			base:      "http://localhost:8080",
			candidate: "http://localhost:8080/demo",
			expected:  true,
		},
		{
			name:      "localhost different port",
			base:      "http://localhost:8080",
			candidate: "http://localhost:9090/demo",
			expected:  false,
		},
		{
			name:      "relative candidate has no host",
			base:      "https://example.com",
			candidate: "/pricing",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameOrigin(tt.base, tt.candidate))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Acme | Home",
		Title(`<html><head><title> Acme | Home </title></head><body></body></html>`))

	assert.Equal(t, "Acme Social",
		Title(`<html><head><meta property="og:title" content="Acme Social"></head><body></body></html>`))

	assert.Equal(t, "", Title(`<html><body><p>no title</p></body></html>`))
}

func TestExcerpt(t *testing.T) {
	html := `
		<html><head><title>Acme</title><script>var x = 1;</script></head>
		<body>
			<nav><a href="/">Home</a></nav>
			<h1>Pipeline on autopilot</h1>
			<p>Acme helps marketing teams turn anonymous traffic into booked meetings
			without adding headcount or rebuilding their stack.</p>
			<footer>Copyright Acme</footer>
		</body></html>`

	excerpt := Excerpt(html, 400)
	assert.NotEmpty(t, excerpt)
	assert.NotContains(t, excerpt, "var x")
	assert.LessOrEqual(t, len(excerpt), 403)
}
