package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

const (
	DefaultConfig  = "/usr/local/etc/cpfr-sync/config.toml"
	DefaultBinary  = "gog"
	DefaultWorkdir = "/usr/local/var/cpfr-sync"
	DefaultTimeout = 30 * time.Second
)

// Endpoint identifies one side of the sync - the account whose
// credentials are used, the spreadsheet and the cell range.
type Endpoint struct {
	Account     string
	Spreadsheet string
	Range       string
}

type Config struct {
	Provider    string
	Timeout     time.Duration
	GogBinary   string
	Credentials map[string]string
	Workdir     string
	Source      Endpoint
	Mirror      Endpoint
}

// config.toml key mapping.
type fileConfig struct {
	Provider string `toml:"provider"`
	Timeout  string `toml:"timeout"`
	Gog      struct {
		Binary string `toml:"binary"`
	} `toml:"gog"`
	Google struct {
		Credentials map[string]string `toml:"credentials"`
		Workdir     string            `toml:"workdir"`
	} `toml:"google"`
	Source fileEndpoint `toml:"source"`
	Mirror fileEndpoint `toml:"mirror"`
}

type fileEndpoint struct {
	Account     string `toml:"account"`
	Spreadsheet string `toml:"spreadsheet"`
	Range       string `toml:"range"`
}

// Load builds the runtime configuration from defaults overlaid with the
// TOML file at path (if it exists) and then with CPFR_SYNC_* environment
// variables, so that deployments can keep spreadsheet and account
// identifiers out of files entirely.
func Load(path string) (Config, error) {
	cfg := Config{
		Provider:    "gog",
		Timeout:     DefaultTimeout,
		GogBinary:   DefaultBinary,
		Credentials: map[string]string{},
		Workdir:     DefaultWorkdir,
	}

	if _, err := os.Stat(path); err == nil {
		var raw fileConfig

		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return Config{}, fmt.Errorf("unable to load configuration from %s (%v)", path, err)
		}

		overlay(&cfg, raw)
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	environment(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func overlay(cfg *Config, raw fileConfig) {
	if v := strings.TrimSpace(raw.Provider); v != "" {
		cfg.Provider = v
	}

	if v := strings.TrimSpace(raw.Timeout); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		} else {
			cfg.Timeout = 0 // leave it to validate() to complain
		}
	}

	if v := strings.TrimSpace(raw.Gog.Binary); v != "" {
		cfg.GogBinary = v
	}

	if v := strings.TrimSpace(raw.Google.Workdir); v != "" {
		cfg.Workdir = v
	}

	for account, credentials := range raw.Google.Credentials {
		cfg.Credentials[account] = credentials
	}

	endpoint(&cfg.Source, raw.Source)
	endpoint(&cfg.Mirror, raw.Mirror)
}

func endpoint(e *Endpoint, raw fileEndpoint) {
	if v := strings.TrimSpace(raw.Account); v != "" {
		e.Account = v
	}

	if v := strings.TrimSpace(raw.Spreadsheet); v != "" {
		e.Spreadsheet = v
	}

	if v := strings.TrimSpace(raw.Range); v != "" {
		e.Range = v
	}
}

func environment(cfg *Config) {
	set := func(key string, field *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}

	set("CPFR_SYNC_PROVIDER", &cfg.Provider)
	set("CPFR_SYNC_GOG_BINARY", &cfg.GogBinary)
	set("CPFR_SYNC_WORKDIR", &cfg.Workdir)

	set("CPFR_SYNC_SOURCE_ACCOUNT", &cfg.Source.Account)
	set("CPFR_SYNC_SOURCE_SPREADSHEET", &cfg.Source.Spreadsheet)
	set("CPFR_SYNC_SOURCE_RANGE", &cfg.Source.Range)

	set("CPFR_SYNC_MIRROR_ACCOUNT", &cfg.Mirror.Account)
	set("CPFR_SYNC_MIRROR_SPREADSHEET", &cfg.Mirror.Spreadsheet)
	set("CPFR_SYNC_MIRROR_RANGE", &cfg.Mirror.Range)

	if v := strings.TrimSpace(os.Getenv("CPFR_SYNC_TIMEOUT")); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		} else {
			cfg.Timeout = 0
		}
	}
}

func validate(cfg Config) error {
	if cfg.Provider != "gog" && cfg.Provider != "google" {
		return fmt.Errorf("invalid provider '%s' - expected 'gog' or 'google'", cfg.Provider)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("invalid timeout - expected a positive duration e.g. '30s'")
	}

	for _, v := range []struct {
		label string
		e     Endpoint
	}{
		{"source", cfg.Source},
		{"mirror", cfg.Mirror},
	} {
		if strings.TrimSpace(v.e.Account) == "" {
			return fmt.Errorf("%s.account is required", v.label)
		}

		if strings.TrimSpace(v.e.Spreadsheet) == "" {
			return fmt.Errorf("%s.spreadsheet is required", v.label)
		}

		if !sheets.ValidRange(v.e.Range) {
			return fmt.Errorf("invalid %s.range '%s' - expected something like 'Sheet1!A1:BM50'", v.label, v.e.Range)
		}
	}

	return nil
}
