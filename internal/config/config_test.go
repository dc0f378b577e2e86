package config // nolint:testpackage

import (
	"os"
	"testing"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()

	prev, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
			return
		}
		os.Unsetenv(key)
	})
}

func TestDefaults(t *testing.T) {
	c := Config{}
	c.defaults()

	if c.UpstreamURL == "" || c.ListenAddr == "" || c.CacheDSN == "" {
		t.Errorf("missing defaults: %+v", c)
	}
	if c.DevMode {
		t.Error("dev mode must be off by default")
	}
}

func TestExpandFromEnv(t *testing.T) {
	setenv(t, "PADEL_UPSTREAM_URL", "http://ranking.example:8880")
	setenv(t, "PADEL_LISTEN_ADDR", "")
	setenv(t, "PADEL_CACHE_DSN", ":memory:")
	setenv(t, "PADEL_DEV", "1")

	c := Config{ListenAddr: "127.0.0.1:4000"}
	c.expandFromEnv()
	c.defaults()

	if c.UpstreamURL != "http://ranking.example:8880" {
		t.Errorf("UpstreamURL = %q", c.UpstreamURL)
	}
	// An empty env var does not clobber a configured value.
	if c.ListenAddr != "127.0.0.1:4000" {
		t.Errorf("ListenAddr = %q", c.ListenAddr)
	}
	if c.CacheDSN != ":memory:" {
		t.Errorf("CacheDSN = %q", c.CacheDSN)
	}
	if !c.DevMode {
		t.Error("expected dev mode")
	}
}
