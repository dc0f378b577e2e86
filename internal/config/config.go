package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type Config struct {
	// UpstreamURL is the base URL of the ranking data service.
	UpstreamURL string

	// ListenAddr is the address the web frontend binds to.
	ListenAddr string

	// CacheDSN is the SQLite DSN of the local snapshot cache, empty
	// disables caching.
	CacheDSN string

	// DevMode relaxes template caching so layouts are reloaded on
	// every request.
	DevMode bool
}

func NewFromUserConfigDir() (*Config, error) {
	c := &Config{}
	if err := c.ReloadFromUserConfigDir(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) defaults() {
	if c.UpstreamURL == "" {
		c.UpstreamURL = "http://127.0.0.1:8880"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = "127.0.0.1:3001"
	}
	if c.CacheDSN == "" {
		c.CacheDSN = "./padelranking.db"
	}
}

func (c *Config) expandFromEnv() {
	vars := []struct {
		src string
		dst *string
	}{
		{"PADEL_UPSTREAM_URL", &c.UpstreamURL},
		{"PADEL_LISTEN_ADDR", &c.ListenAddr},
		{"PADEL_CACHE_DSN", &c.CacheDSN},
	}

	for _, v := range vars {
		if str := os.Getenv(v.src); str != "" {
			*v.dst = str
		}
	}

	if os.Getenv("PADEL_DEV") != "" {
		c.DevMode = true
	}
}

func (c *Config) ReloadFromUserConfigDir() error {
	defer c.defaults()
	defer c.expandFromEnv()

	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return err
	}
	log.Printf("debug: reading conf from %s", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		*c = Config{}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(c)
}

func getOrCreateUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "padelranking")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

func (c *Config) Write() error {
	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return err
	}
	log.Printf("debug: writing conf to %s", path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o700)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(f).Encode(c); err != nil {
		if err2 := f.Close(); err2 != nil {
			return fmt.Errorf("unable to close file (%s) after error: %w", err2, err)
		}

		return err
	}

	return f.Close()
}
