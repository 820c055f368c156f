package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/league-matches/internal/domain/league"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_MANIFEST_PATH", "")
	t.Setenv("LEAGUE_MATCHES_DIR", "")
	t.Setenv("LEAGUE_LOOKUP_MODE", "")
	t.Setenv("LEAGUE_MANIFEST_FILE_FIELD", "")
	t.Setenv("MATCH_DEFAULT_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ManifestPath != filepath.Join("data", "football", "manifest.json") {
		t.Fatalf("unexpected ManifestPath: %q", cfg.ManifestPath)
	}
	if cfg.MatchesDir != filepath.Join("data", "football", "leagues") {
		t.Fatalf("unexpected MatchesDir: %q", cfg.MatchesDir)
	}
	if cfg.LookupMode != league.LookupByName {
		t.Fatalf("unexpected LookupMode: %q", cfg.LookupMode)
	}
	if cfg.ManifestFileField != league.FileFieldFile {
		t.Fatalf("unexpected ManifestFileField: %q", cfg.ManifestFileField)
	}
	if cfg.DefaultLimit != 5 {
		t.Fatalf("unexpected DefaultLimit: %d", cfg.DefaultLimit)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected ShutdownTimeout: %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_MatchesDirFollowsManifest(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_MANIFEST_PATH", "/srv/espn/manifest.json")
	t.Setenv("LEAGUE_MATCHES_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MatchesDir != filepath.Join("/srv/espn", "leagues") {
		t.Fatalf("unexpected MatchesDir: %q", cfg.MatchesDir)
	}
}

func TestLoad_LookupSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("LEAGUE_LOOKUP_MODE", "ID")
	t.Setenv("LEAGUE_MANIFEST_FILE_FIELD", "json")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LookupMode != league.LookupByID {
		t.Fatalf("unexpected LookupMode: %q", cfg.LookupMode)
	}
	if cfg.ManifestFileField != league.FileFieldJSON {
		t.Fatalf("unexpected ManifestFileField: %q", cfg.ManifestFileField)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "lookup mode", key: "LEAGUE_LOOKUP_MODE", value: "slug"},
		{name: "file field", key: "LEAGUE_MANIFEST_FILE_FIELD", value: "path"},
		{name: "negative limit", key: "MATCH_DEFAULT_LIMIT", value: "-1"},
		{name: "limit not a number", key: "MATCH_DEFAULT_LIMIT", value: "five"},
		{name: "zero audit workers", key: "AUDIT_WORKERS", value: "0"},
		{name: "log level", key: "APP_LOG_LEVEL", value: "loud"},
		{name: "metrics flag", key: "METRICS_ENABLED", value: "maybe"},
		{name: "shutdown timeout", key: "APP_SHUTDOWN_TIMEOUT", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_MCPPathValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("MCP_ENABLED", "true")
	t.Setenv("MCP_PATH", "mcp")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for MCP_PATH without leading slash")
	}
}

func TestLoad_CORSAllowedOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}

	t.Setenv("CORS_ALLOWED_ORIGINS", ",")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS_ALLOWED_ORIGINS")
	}
}
