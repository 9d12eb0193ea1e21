package domain

import "encoding/json"

// Settings is the persisted flat map of named options.
//
// Values round-trip through JSON, so numeric entries read back as float64.
// Use the typed getters instead of asserting concrete types directly.
type Settings map[string]any

// DefaultSettings mirrors the store defaults seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		"homepage":     "https://www.google.com",
		"searchEngine": "google",
		"theme":        "dark",
		"transparency": 0.85,
	}
}

// Merge returns a new Settings with every key of partial overwriting s.
// Untouched keys are preserved; there is no deep merge of nested values.
func (s Settings) Merge(partial Settings) Settings {
	out := make(Settings, len(s)+len(partial))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of s.
func (s Settings) Clone() Settings {
	return s.Merge(nil)
}

// String returns the string value for key, or def.
func (s Settings) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Float returns the numeric value for key, or def.
func (s Settings) Float(key string, def float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

// Int returns the numeric value for key truncated to int, or def.
func (s Settings) Int(key string, def int) int {
	if _, ok := s[key]; !ok {
		return def
	}
	return int(s.Float(key, float64(def)))
}

// Bool returns the boolean value for key, or def.
func (s Settings) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}

// IntSlice returns the list of integers stored under key.
// JSON decoding yields []any of float64, which is the common on-disk shape.
func (s Settings) IntSlice(key string) []int {
	switch v := s[key].(type) {
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]int, 0, len(v))
		for _, e := range v {
			if f, ok := e.(float64); ok {
				out = append(out, int(f))
			}
		}
		return out
	}
	return nil
}
