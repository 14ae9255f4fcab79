package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "WORKER_COUNT", "DOCUMENT_TIMEOUT", "TOP_SECTIONS", "TOP_SUBSECTIONS", "REFINE_TOP_N"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8090" {
		t.Errorf("expected default port 8090, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.DocumentTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.DocumentTimeout)
	}
	if cfg.TopSections != 10 || cfg.TopSubsections != 8 || cfg.RefineTopN != 15 {
		t.Errorf("unexpected analysis defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("DOCUMENT_TIMEOUT", "5s")
	t.Setenv("TOP_SECTIONS", "3")
	t.Setenv("DOCSIFT_API_KEY", "secret")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("port override ignored, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("worker override ignored, got %d", cfg.WorkerCount)
	}
	if cfg.DocumentTimeout != 5*time.Second {
		t.Errorf("timeout override ignored, got %v", cfg.DocumentTimeout)
	}
	if cfg.TopSections != 3 {
		t.Errorf("top sections override ignored, got %d", cfg.TopSections)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("api key not loaded, got %q", cfg.APIKey)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("TOP_SECTIONS", "-5")
	t.Setenv("DOCUMENT_TIMEOUT", "eventually")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected fallback worker count 4, got %d", cfg.WorkerCount)
	}
	if cfg.TopSections != 10 {
		t.Errorf("negative top sections must clamp to default, got %d", cfg.TopSections)
	}
	if cfg.DocumentTimeout != 30*time.Second {
		t.Errorf("expected fallback timeout, got %v", cfg.DocumentTimeout)
	}
}
