package surface

import (
	"testing"
	"time"

	"github.com/glassbrowser/glassd/internal/logger"
)

func TestEngineCarriesOptionsToSurfaces(t *testing.T) {
	e := NewEngine(EngineOptions{
		Headless:       true,
		CaptureQuality: 55,
		NavigateWait:   7 * time.Second,
	}, logger.New("error", false))
	defer e.Close()

	if e.quality != 55 {
		t.Errorf("quality = %d, want 55", e.quality)
	}
	if e.navWait != 7*time.Second {
		t.Errorf("navWait = %s, want 7s", e.navWait)
	}
}

func TestFaviconCandidates(t *testing.T) {
	tests := []struct {
		name    string
		pageURL string
		want    string
	}{
		{
			name:    "https page",
			pageURL: "https://example.com/some/path?q=1",
			want:    "https://example.com/favicon.ico",
		},
		{
			name:    "http page with port",
			pageURL: "http://localhost:8080/index.html",
			want:    "http://localhost:8080/favicon.ico",
		},
		{
			name:    "blank page yields nothing",
			pageURL: "about:blank",
		},
		{
			name:    "empty url yields nothing",
			pageURL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := faviconCandidates(tt.pageURL)
			if tt.want == "" {
				if len(got) != 0 {
					t.Errorf("faviconCandidates(%q) = %v, want none", tt.pageURL, got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("faviconCandidates(%q) = %v, want [%s]", tt.pageURL, got, tt.want)
			}
		})
	}
}
