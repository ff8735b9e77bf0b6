package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ValidDays are the windows the public API accepts; anything else is
// clamped to DefaultDays rather than rejected.
var ValidDays = []int{7, 30, 60, 90}

// Credential is one upstream UptimeRobot account key. Keys are assumed
// to cover disjoint monitor sets.
type Credential struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// Config holds all application configuration
type Config struct {
	// Upstream
	Credentials     []Credential
	UpstreamURL     string
	UpstreamTimeout time.Duration
	DefaultDays     int
	PartialResults  bool

	// Gateway
	Port           string
	AllowedOrigins []string
	AllowedAPIKeys []string
	RequireAPIKey  bool
	RateLimit      int
	CacheTime      time.Duration
	JournalDBPath  string
}

// fileConfig is the optional YAML config file shape. It only carries
// what the environment cannot express well: a named credential list.
type fileConfig struct {
	Credentials []Credential `yaml:"credentials"`
}

// Load reads configuration from environment variables and, when
// CONFIG_FILE points at a YAML file, merges its credential list in.
// A missing upstream credential is not an error here: every fetch will
// fail deterministically until one is configured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		UpstreamURL:     getenv("UPSTREAM_URL", ""),
		UpstreamTimeout: envDurSecs("UPSTREAM_TIMEOUT_SECS", 15),
		DefaultDays:     envInt("DEFAULT_DAYS", 30),
		PartialResults:  envBool("PARTIAL_RESULTS", false),
		Port:            getenv("PORT", "8080"),
		AllowedOrigins:  splitList(getenv("ALLOWED_ORIGINS", "*")),
		AllowedAPIKeys:  splitList(getenv("ALLOWED_API_KEYS", "")),
		RequireAPIKey:   envBool("REQUIRE_API_KEY", false),
		RateLimit:       envInt("RATE_LIMIT", 60),
		CacheTime:       envDurSecs("CACHE_TIME", 300),
		JournalDBPath:   getenv("JOURNAL_DB_PATH", "./journal.db"),
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	if cfg.CacheTime <= 0 {
		cfg.CacheTime = 300 * time.Second
	}
	if !isValidDays(cfg.DefaultDays) {
		cfg.DefaultDays = 30
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	creds, err := loadCredentials()
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	return cfg, nil
}

// ClampDays validates a requested window, falling back to the default.
func (c *Config) ClampDays(days int) int {
	if isValidDays(days) {
		return days
	}
	return c.DefaultDays
}

func isValidDays(days int) bool {
	for _, d := range ValidDays {
		if d == days {
			return true
		}
	}
	return false
}

// loadCredentials merges, in order: the YAML file (if any), the
// comma-separated UPTIMEROBOT_API_KEYS list, and the single
// UPTIMEROBOT_API_KEY.
func loadCredentials() ([]Credential, error) {
	var creds []Credential

	if path := getenv("CONFIG_FILE", ""); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(content, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		for _, c := range fc.Credentials {
			if c.Key == "" {
				continue
			}
			creds = append(creds, c)
		}
	}

	for i, key := range splitList(getenv("UPTIMEROBOT_API_KEYS", "")) {
		creds = append(creds, Credential{Name: fmt.Sprintf("key-%d", i+1), Key: key})
	}

	if key := getenv("UPTIMEROBOT_API_KEY", ""); key != "" {
		creds = append(creds, Credential{Name: "default", Key: key})
	}

	return creds, nil
}

// Helper functions
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	v := strings.ToLower(getenv(k, ""))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

func envDurSecs(k string, def int) time.Duration {
	return time.Duration(envInt(k, def)) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
