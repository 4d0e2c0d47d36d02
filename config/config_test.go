package config_test

import (
	"testing"
	"time"

	cfg "github.com/dkravtsov/shopfront/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("SHOP_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ShutdownTimeout != 5*time.Second {
		t.Fatalf("HTTP.ShutdownTimeout: want 5s, got %v", c.HTTP.ShutdownTimeout)
	}

	// Backend
	if c.Backend.BaseURL != "http://localhost:3001" || c.Backend.Timeout != 10*time.Second {
		t.Fatalf("Backend defaults wrong: %+v", c.Backend)
	}

	// Storage
	if c.Storage.Backend != "file" || c.Storage.Dir != "./data" {
		t.Fatalf("Storage defaults wrong: %+v", c.Storage)
	}
	if c.Storage.Redis.Addr != "localhost:6379" || c.Storage.Redis.Prefix != "shopfront" {
		t.Fatalf("Redis defaults wrong: %+v", c.Storage.Redis)
	}

	// Pix
	if c.Pix.PollInterval != 3*time.Second {
		t.Fatalf("Pix.PollInterval: want 3s, got %v", c.Pix.PollInterval)
	}
	if c.Pix.ConfirmDelay != 1500*time.Millisecond {
		t.Fatalf("Pix.ConfirmDelay: want 1.5s, got %v", c.Pix.ConfirmDelay)
	}
	if c.Pix.MaxWait != 15*time.Minute {
		t.Fatalf("Pix.MaxWait: want 15m, got %v", c.Pix.MaxWait)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "shopfront-gateway" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "SHOP_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_SHUTDOWN_TIMEOUT", "9s")

	// Backend
	t.Setenv(p+"_BACKEND_BASE_URL", "https://api.shop.example")
	t.Setenv(p+"_BACKEND_TIMEOUT", "4s")

	// Storage
	t.Setenv(p+"_STORAGE_BACKEND", "redis")
	t.Setenv(p+"_STORAGE_DIR", "/var/lib/shopfront")
	t.Setenv(p+"_STORAGE_REDIS_ADDR", "redis:6380")
	t.Setenv(p+"_STORAGE_REDIS_DB", "3")
	t.Setenv(p+"_STORAGE_REDIS_PREFIX", "sf-test")

	// Pix
	t.Setenv(p+"_PIX_POLL_INTERVAL", "500ms")
	t.Setenv(p+"_PIX_CONFIRM_DELAY", "0s")
	t.Setenv(p+"_PIX_MAX_WAIT", "2m")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second || c.HTTP.ShutdownTimeout != 9*time.Second {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if c.Backend.BaseURL != "https://api.shop.example" || c.Backend.Timeout != 4*time.Second {
		t.Fatalf("Backend overrides wrong: %+v", c.Backend)
	}
	if c.Storage.Backend != "redis" || c.Storage.Dir != "/var/lib/shopfront" {
		t.Fatalf("Storage overrides wrong: %+v", c.Storage)
	}
	if c.Storage.Redis.Addr != "redis:6380" || c.Storage.Redis.DB != 3 || c.Storage.Redis.Prefix != "sf-test" {
		t.Fatalf("Redis overrides wrong: %+v", c.Storage.Redis)
	}
	if c.Pix.PollInterval != 500*time.Millisecond || c.Pix.ConfirmDelay != 0 || c.Pix.MaxWait != 2*time.Minute {
		t.Fatalf("Pix overrides wrong: %+v", c.Pix)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "SHOP_TEST_BAD"
	t.Setenv(p+"_PIX_POLL_INTERVAL", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
