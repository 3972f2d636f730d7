package main

import (
	"fmt"
	"net/http"

	"github.com/musantuli/portfolio/internal/config"
	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/github"
	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/types"
)

// loadSettings resolves configuration (environment over config file over
// defaults) and the content record it points at.
func loadSettings() (config.Config, *types.Profile, error) {
	env, err := config.FromEnv()
	if err != nil {
		return config.Config{}, nil, err
	}

	fileCfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, nil, err
		}
		fileCfg = loaded.MergeWithDefaults(config.Defaults())
	}

	cfg := env.MergeWithDefaults(fileCfg)
	cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	profile := content.Default()
	if cfg.ContentFile != "" {
		profile, err = content.Load(cfg.ContentFile)
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("failed to load content: %w", err)
		}
	}
	cfg.ApplyTo(profile)

	return cfg, profile, nil
}

// newFetcher builds the project fetcher for cfg.
func newFetcher(cfg config.Config, profile *types.Profile) *projects.Fetcher {
	client := github.NewClient(cfg.GitHubAPIBase, &http.Client{Timeout: cfg.Timeout()})
	return projects.NewFetcher(client, profile.GitHub.FeaturedRepos)
}
