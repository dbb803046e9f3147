package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flag namespace.
type FileConfig struct {
	Engines []string `yaml:"engines" json:"engines"`
	Pages   int      `yaml:"pages" json:"pages"`
	Proxy   string   `yaml:"proxy" json:"proxy"`
	// Timeout accepts a duration string ("15s") or bare seconds ("15").
	Timeout string `yaml:"timeout" json:"timeout"`

	Unique struct {
		URLs    bool `yaml:"urls" json:"urls"`
		Domains bool `yaml:"domains" json:"domains"`
	} `yaml:"unique" json:"unique"`

	Output string `yaml:"output" json:"output"`

	Searx struct {
		URL string `yaml:"url" json:"url"`
		Key string `yaml:"key" json:"key"`
	} `yaml:"searx" json:"searx"`

	Results struct {
		File string `yaml:"file" json:"file"`
	} `yaml:"results" json:"results"`

	UserAgent string `yaml:"userAgent" json:"userAgent"`
	Verbose   bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads a YAML or JSON config file and overlays it onto the
// unset fields of cfg; values already present in cfg win.
func LoadConfigFile(path string, cfg *Config) error {
	if cfg == nil || strings.TrimSpace(path) == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, &fc)
	} else {
		err = yaml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.Engines) == 0 {
		cfg.Engines = fc.Engines
	}
	if cfg.Pages == 0 {
		cfg.Pages = fc.Pages
	}
	if cfg.Proxy == "" {
		cfg.Proxy = fc.Proxy
	}
	if cfg.Timeout == 0 && fc.Timeout != "" {
		d, err := parseTimeout(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if !cfg.UniqueURLs {
		cfg.UniqueURLs = fc.Unique.URLs
	}
	if !cfg.UniqueDomains {
		cfg.UniqueDomains = fc.Unique.Domains
	}
	if cfg.Format == "" {
		cfg.Format = fc.Output
	}
	if cfg.SearxURL == "" {
		cfg.SearxURL = fc.Searx.URL
	}
	if cfg.SearxKey == "" {
		cfg.SearxKey = fc.Searx.Key
	}
	if cfg.ResultsFile == "" {
		cfg.ResultsFile = fc.Results.File
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.UserAgent
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
	return nil
}

// parseTimeout accepts a Go duration string ("15s") or bare seconds ("15").
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return time.Duration(n) * time.Second, nil
}
