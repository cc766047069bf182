package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: " 123:abc "}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("token not trimmed: %q", cfg.Telegram.Token)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if !cfg.Telegram.DropPending() {
		t.Fatal("drop pending should default to true")
	}
}

func TestNormalizeErrors(t *testing.T) {
	cases := map[string]Config{
		"missing token": {},
		"bad run mode":  {Telegram: TelegramConfig{Token: "t", RunMode: "carrier-pigeon"}},
		"webhook without url": {
			Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook},
			Webhook:  WebhookConfig{Listen: "0.0.0.0", Port: 8443},
		},
		"webhook without port": {
			Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook},
			Webhook:  WebhookConfig{URL: "https://example.org/hook", Listen: "0.0.0.0"},
		},
		"negative timeout": {Telegram: TelegramConfig{Token: "t", LongPollTimeoutSeconds: -1}},
	}
	for name, cfg := range cases {
		cfg := cfg
		if err := Normalize(&cfg); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: " Polling "}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run mode = %q", cfg.Telegram.RunMode)
	}
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := []byte("telegram:\n  token: from-file\n  username: \"@FileBot\"\n  drop_pending_updates: false\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, yml, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "from-env" {
		t.Fatalf("token = %q, want env override", cfg.Telegram.Token)
	}
	if cfg.Telegram.Username != "@FileBot" {
		t.Fatalf("username = %q", cfg.Telegram.Username)
	}
	if cfg.Telegram.DropPending() {
		t.Fatal("drop pending from file should be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-only")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "env-only" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("telegram: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
