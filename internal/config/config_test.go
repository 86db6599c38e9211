package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceName != "chat-api" {
		t.Errorf("expected service name chat-api, got %q", cfg.ServiceName)
	}
	if cfg.HTTPPort != 8084 {
		t.Errorf("expected port 8084, got %d", cfg.HTTPPort)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Errorf("unexpected base URL: %q", cfg.OpenAIBaseURL)
	}
	if cfg.CompletionModel != "gpt-4o-mini" {
		t.Errorf("unexpected model: %q", cfg.CompletionModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1/")
	t.Setenv("COMPLETION_MODEL", "llama3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPPort)
	}
	if cfg.OpenAIBaseURL != "http://localhost:11434/v1" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.OpenAIBaseURL)
	}
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid base URL")
	}
}

func TestLoadRejectsEmptyModel(t *testing.T) {
	t.Setenv("COMPLETION_MODEL", "   ")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty model")
	}
}

func TestLoadDoesNotRequireAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed without a credential, got %v", err)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.OpenAIAPIKey)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{HTTPPort: 8084}
	if cfg.Addr() != ":8084" {
		t.Errorf("unexpected addr: %q", cfg.Addr())
	}
}
