package config

import (
	"testing"
	"time"
)

func TestMustBool(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       bool
		expected  bool
		wantPanic bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "missing uses default",
			key:      "TEST_BOOL_MISSING",
			def:      true,
			expected: true,
		},
		{
			name:      "invalid value",
			key:       "TEST_BOOL_INVALID",
			value:     "maybe",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("mustBool() should have panicked")
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       time.Duration
		expected  time.Duration
		wantPanic bool
	}{
		{
			name:     "valid duration",
			key:      "TEST_DUR",
			value:    "90s",
			expected: 90 * time.Second,
		},
		{
			name:     "missing uses default",
			key:      "TEST_DUR_MISSING",
			def:      3 * time.Second,
			expected: 3 * time.Second,
		},
		{
			name:      "invalid duration",
			key:       "TEST_DUR_INVALID",
			value:     "soon",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("mustDuration() should have panicked")
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != "127.0.0.1:9610" {
		t.Errorf("ListenPort = %v, want 127.0.0.1:9610", cfg.ListenPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should have a default")
	}
	if cfg.CaptureQuality != 80 {
		t.Errorf("CaptureQuality = %v, want 80", cfg.CaptureQuality)
	}
}

func TestLoadRejectsBadCaptureQuality(t *testing.T) {
	t.Setenv("GLASSD_CAPTURE_QUALITY", "250")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on out-of-range capture quality")
		}
	}()
	Load()
}
