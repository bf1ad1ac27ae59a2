package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Host != DefaultHost {
		t.Fatalf("expected default host %q, got %q", DefaultHost, cfg.Host)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port %q, got %q", DefaultPort, cfg.Port)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("expected default config to validate, got: %v", err)
	}
}

func TestValidateConfigRejectsBadPort(t *testing.T) {
	cfg := LoadConfig()
	cfg.Port = "not-a-port"
	err := ValidateConfig(cfg)
	if err == nil || !strings.Contains(err.Error(), "VOIDLIGHT_PORT") {
		t.Fatalf("expected VOIDLIGHT_PORT error, got: %v", err)
	}
}

func TestValidateConfigRejectsBadLogLevel(t *testing.T) {
	cfg := LoadConfig()
	cfg.LogLevel = "verbose"
	err := ValidateConfig(cfg)
	if err == nil || !strings.Contains(err.Error(), "VOIDLIGHT_LOG_LEVEL") {
		t.Fatalf("expected VOIDLIGHT_LOG_LEVEL error, got: %v", err)
	}
}

func TestParsePluginsEnabled(t *testing.T) {
	cases := map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true, "Yes": true,
		"false": false, "0": false, "no": false, "": false, "garbage": false,
	}
	for input, want := range cases {
		if got := parsePluginsEnabled(input); got != want {
			t.Fatalf("parsePluginsEnabled(%q) = %v, want %v", input, got, want)
		}
	}
}
