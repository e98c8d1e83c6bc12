package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GATEWAY_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9621" {
		t.Errorf("expected default port 9621, got %s", cfg.Port)
	}
	if cfg.Engine.BaseURL != "http://localhost:9622" {
		t.Errorf("expected default engine URL, got %s", cfg.Engine.BaseURL)
	}
	if cfg.Engine.TimeoutSeconds != 300 {
		t.Errorf("expected default engine timeout 300, got %d", cfg.Engine.TimeoutSeconds)
	}
	if cfg.Engine.MaxIdleConns != 100 || cfg.Engine.MaxIdleConnsPerHost != 10 {
		t.Errorf("expected default connection pool sizes, got %d/%d", cfg.Engine.MaxIdleConns, cfg.Engine.MaxIdleConnsPerHost)
	}
	if cfg.Redis.Stream != "doc-jobs" || cfg.Redis.Group != "doc-workers" {
		t.Errorf("expected default stream settings, got %s/%s", cfg.Redis.Stream, cfg.Redis.Group)
	}
	if len(cfg.Ingest.Extensions) == 0 {
		t.Error("expected default ingest extensions")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GATEWAY_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("GATEWAY_PORT", "8080")
	t.Setenv("ENGINE_URL", "http://engine:9000")
	t.Setenv("ENGINE_TIMEOUT_SECONDS", "60")
	t.Setenv("LIGHTRAG_API_KEY", "k1")
	t.Setenv("TOKEN_SECRET", "s1")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Engine.BaseURL != "http://engine:9000" {
		t.Errorf("expected engine URL override, got %s", cfg.Engine.BaseURL)
	}
	if cfg.Engine.TimeoutSeconds != 60 {
		t.Errorf("expected engine timeout 60, got %d", cfg.Engine.TimeoutSeconds)
	}
	if cfg.APIKey != "k1" || cfg.TokenSecret != "s1" {
		t.Error("expected auth settings from env")
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("expected redis addr override, got %s", cfg.Redis.Addr)
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	overlay := `
engine:
  base_url: http://engine-from-yaml:9622
  timeout_seconds: 120
  max_idle_conns: 50
ingest:
  input_dir: ./inbox
  extensions: [".pdf", ".md"]
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	t.Setenv("GATEWAY_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.BaseURL != "http://engine-from-yaml:9622" {
		t.Errorf("expected YAML engine URL, got %s", cfg.Engine.BaseURL)
	}
	if cfg.Engine.TimeoutSeconds != 120 {
		t.Errorf("expected YAML timeout 120, got %d", cfg.Engine.TimeoutSeconds)
	}
	if cfg.Engine.MaxIdleConns != 50 {
		t.Errorf("expected YAML max idle conns 50, got %d", cfg.Engine.MaxIdleConns)
	}
	if cfg.Ingest.InputDir != "./inbox" {
		t.Errorf("expected YAML input dir, got %s", cfg.Ingest.InputDir)
	}
	if len(cfg.Ingest.Extensions) != 2 {
		t.Errorf("expected 2 YAML extensions, got %v", cfg.Ingest.Extensions)
	}
}

func TestLoad_YAMLOverlayBeatsEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  base_url: http://yaml-wins:9622\n"), 0o644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	t.Setenv("GATEWAY_CONFIG_PATH", path)
	t.Setenv("ENGINE_URL", "http://env-loses:9622")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.BaseURL != "http://yaml-wins:9622" {
		t.Errorf("expected YAML to override env, got %s", cfg.Engine.BaseURL)
	}
}

func TestLoad_InvalidExtensionRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("ingest:\n  extensions: [\"pdf\"]\n"), 0o644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	t.Setenv("GATEWAY_CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Error("expected validation error for extension without dot")
	}
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("engine: [not a mapping"), 0o644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	t.Setenv("GATEWAY_CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}
