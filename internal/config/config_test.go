package config

import (
	"testing"
	"time"
)

func TestLoadRedisConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_TLS", "")

	cfg := LoadRedisConfig()
	if cfg.Addr != "localhost:6379" {
		t.Errorf("Addr = %q, want localhost:6379", cfg.Addr)
	}
	if cfg.DB != 0 || cfg.Password != "" || cfg.TLS {
		t.Errorf("unexpected non-defaults: %+v", cfg)
	}
}

func TestLoadRedisConfigHostPortBeatsAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "addr-host:1111")
	t.Setenv("REDIS_HOST", "cache-host")
	t.Setenv("REDIS_PORT", "6380")

	if cfg := LoadRedisConfig(); cfg.Addr != "cache-host:6380" {
		t.Errorf("Addr = %q, want cache-host:6380", cfg.Addr)
	}
}

func TestLoadRedisConfigOptionals(t *testing.T) {
	t.Setenv("REDIS_ADDR", "addr-host:1111")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "hunter2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")

	cfg := LoadRedisConfig()
	if cfg.Addr != "addr-host:1111" {
		t.Errorf("Addr = %q, want addr-host:1111", cfg.Addr)
	}
	if cfg.Password != "hunter2" || cfg.DB != 3 || !cfg.TLS {
		t.Errorf("optionals not honored: %+v", cfg)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CACHE_PREFIX", "")
	t.Setenv("CACHE_MAX_BODY_BYTES", "")

	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache not enabled by default")
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("TTL = %v, want 30s", cfg.TTL)
	}
	if cfg.Prefix != "cache" || cfg.MaxBodyBytes != 1048576 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
