package main

import (
	"errors"
	"log"
	"strings"

	"jobboerse-cli/internal/config"
	"jobboerse-cli/internal/jobsuche"
	"jobboerse-cli/internal/search"
	"jobboerse-cli/internal/secrets"
)

// loadConfig reads --config, overlays the environment and the stored API
// key, and validates the result.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyEnv(&cfg)
	cfg.API.Key = secrets.ResolveAPIKey(cfg.API.Key)

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		return cfg, errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
	}
	return cfg, nil
}

func newClient(cfg config.Config) *jobsuche.Client {
	return jobsuche.New(jobsuche.Config{
		SearchURL:  cfg.API.SearchURL,
		DetailURL:  cfg.API.DetailURL,
		JobURLBase: cfg.API.JobURLBase,
		APIKey:     cfg.API.Key,
		UserAgent:  cfg.API.UserAgent,
		Timeout:    cfg.Timeout(),
	})
}

func newService(cfg config.Config) *search.Service {
	return &search.Service{
		API:        newClient(cfg),
		JobURLBase: cfg.API.JobURLBase,
	}
}
