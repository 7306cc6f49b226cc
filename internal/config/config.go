// internal/config/config.go
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSearchURL  = "https://rest.arbeitsagentur.de/jobboerse/jobsuche-service/pc/v4/jobs"
	DefaultDetailURL  = "https://rest.arbeitsagentur.de/jobboerse/jobsuche-service/pc/v2/jobdetails/"
	DefaultJobURLBase = "https://jobboerse.arbeitsagentur.de/vamJB/"
	DefaultAPIKey     = "jobboerse-jobsuche"
	DefaultUserAgent  = "job-search-script"
	DefaultCSVPath    = "latest_job_listings.csv"
)

type Config struct {
	API struct {
		SearchURL  string `yaml:"search_url"`
		DetailURL  string `yaml:"detail_url"`
		JobURLBase string `yaml:"job_url_base"`
		Key        string `yaml:"key"`
		UserAgent  string `yaml:"user_agent"`
		// seconds
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Search struct {
		PageSize   int `yaml:"page_size"`
		Page       int `yaml:"page"`
		DetailSize int `yaml:"detail_size"` // page size for the detail lookup
		Top        int `yaml:"top"`
	} `yaml:"search"`

	Export struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"export"`

	Store struct {
		Path string `yaml:"path"` // empty disables search history
	} `yaml:"store"`
}

func Default() Config {
	var cfg Config
	cfg.API.SearchURL = DefaultSearchURL
	cfg.API.DetailURL = DefaultDetailURL
	cfg.API.JobURLBase = DefaultJobURLBase
	cfg.API.Key = DefaultAPIKey
	cfg.API.UserAgent = DefaultUserAgent
	cfg.API.TimeoutSeconds = 30

	cfg.Search.PageSize = 50
	cfg.Search.Page = 1
	cfg.Search.DetailSize = 1
	cfg.Search.Top = 10

	cfg.Export.CSVPath = DefaultCSVPath
	return cfg
}

// Load reads path over the defaults. An empty path or a missing file
// yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
