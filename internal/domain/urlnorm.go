package domain

import (
	"net/url"
	"strings"
	"unicode"
)

// DefaultSearchEngine is used when the configured engine is unrecognized.
const DefaultSearchEngine = "google"

// searchEngines maps engine names to their query base URLs.
var searchEngines = map[string]string{
	"google":     "https://www.google.com/search?q=",
	"bing":       "https://www.bing.com/search?q=",
	"duckduckgo": "https://duckduckgo.com/?q=",
	"ecosia":     "https://www.ecosia.org/search?q=",
}

// SearchBaseURL returns the query base URL for the named engine,
// falling back to the default engine for unknown names.
func SearchBaseURL(engine string) string {
	if base, ok := searchEngines[engine]; ok {
		return base
	}
	return searchEngines[DefaultSearchEngine]
}

// SearchURL builds a search query URL for the given engine.
func SearchURL(engine, query string) string {
	return SearchBaseURL(engine) + url.QueryEscape(query)
}

// NormalizeURL resolves raw address-bar input into a navigable URL.
//
// Input without a dot, or with any whitespace, is treated as a search
// query. Dotted input without a scheme gets https prepended. Already
// normalized http(s) URLs pass through unchanged, so the function is
// idempotent on its own output.
func NormalizeURL(input, engine string) string {
	input = strings.TrimSpace(input)

	if !strings.Contains(input, ".") || strings.ContainsFunc(input, unicode.IsSpace) {
		return SearchURL(engine, input)
	}

	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return "https://" + input
	}

	return input
}
