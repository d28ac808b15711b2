package downloader

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `<!DOCTYPE html>
<html>
<head>
  <title>Fast Search</title>
  <meta name="description" content="A tiny search engine.">
  <link rel="icon" href="/favicon.ico">
  <script>var ignored = "scriptword";</script>
  <style>.ignored { color: red; }</style>
</head>
<body>
  <h1>Search the Web</h1>
  <p>Rust and Go are fast. C++ too, the answer is 42.</p>
  <a href="/about">About</a>
  <a href="https://other.example/page#frag">Other</a>
  <a href="mailto:hi@example.com">Mail</a>
</body>
</html>`

func parseTestDoc(t *testing.T, stopWords ...string) parsedPage {
	t.Helper()

	base, err := url.Parse("https://a.example/index.html")
	require.NoError(t, err)

	stop := make(map[string]struct{})
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}

	page, err := parsePage(base, strings.NewReader(testDoc), stop)
	require.NoError(t, err)
	return page
}

func TestParsePage(t *testing.T) {
	page := parseTestDoc(t)

	assert.Equal(t, "Fast Search", page.Title)
	assert.Equal(t, "A tiny search engine.", page.Summary)
	assert.Equal(t, "https://a.example/favicon.ico", page.Icon)
}

func TestParsePageWords(t *testing.T) {
	page := parseTestDoc(t)

	// lowercased and deduplicated
	assert.Contains(t, page.Words, "rust")
	assert.Contains(t, page.Words, "go")
	assert.Contains(t, page.Words, "fast")
	assert.Contains(t, page.Words, "42")

	// non-alphanumeric tokens are dropped
	assert.NotContains(t, page.Words, "c++")
	assert.NotContains(t, page.Words, "fast.")

	// script and style bodies are not words
	assert.NotContains(t, page.Words, "scriptword")
	assert.NotContains(t, page.Words, "ignored")
}

func TestParsePageStopWords(t *testing.T) {
	page := parseTestDoc(t, "the", "and", "are")

	assert.NotContains(t, page.Words, "the")
	assert.NotContains(t, page.Words, "and")
	assert.NotContains(t, page.Words, "are")
	assert.Contains(t, page.Words, "rust")
}

func TestParsePageOutlinks(t *testing.T) {
	page := parseTestDoc(t)

	// relative links absolutized, fragments stripped, non-http dropped
	assert.Equal(t, []string{
		"https://a.example/about",
		"https://other.example/page",
	}, page.Outlinks)
}

func TestAlphanumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"rust", true},
		{"Rust2", true},
		{"42", true},
		{"", false},
		{"c++", false},
		{"don't", false},
		{"naïve", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, alphanumeric(tc.in), "token %q", tc.in)
	}
}
