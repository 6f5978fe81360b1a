package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/varoOP/videoplayer/internal/domain"
)

const (
	defaultListenAddr  = ":8080"
	defaultGridColumns = 2
	defaultYouTubeURL  = "https://www.youtube.com"
)

// SetDefaults registers the default values of every known key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog_source", string(domain.CatalogSourceFile))
	v.SetDefault("data_dir", ".")
	v.SetDefault("listen_addr", defaultListenAddr)
	v.SetDefault("grid_columns", defaultGridColumns)
	v.SetDefault("log_level", "info")
	v.SetDefault("youtube_base_url", defaultYouTubeURL)
}

// Load loads configuration from the global viper instance:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (VIDEOPLAYER_*)
// 3. Command line flags bound to keys
func Load() (*domain.Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom builds and validates a config from v
func LoadFrom(v *viper.Viper) (*domain.Config, error) {
	SetDefaults(v)

	cfg := &domain.Config{
		CatalogPath:         v.GetString("catalog_path"),
		DataDir:             v.GetString("data_dir"),
		ListenAddr:          v.GetString("listen_addr"),
		GridColumns:         v.GetInt("grid_columns"),
		ReloadSchedule:      strings.TrimSpace(v.GetString("reload_schedule")),
		DiscordWebhookURL:   v.GetString("discord_webhook_url"),
		YouTubeLookupTitles: v.GetBool("youtube_lookup_titles"),
		YouTubeBaseURL:      strings.TrimRight(v.GetString("youtube_base_url"), "/"),
	}

	source := domain.CatalogSource(strings.ToLower(v.GetString("catalog_source")))
	if source != domain.CatalogSourceFile && source != domain.CatalogSourceSQLite {
		return nil, fmt.Errorf("invalid catalog_source: %s (must be 'file' or 'sqlite')", source)
	}
	cfg.CatalogSource = source

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log_level")))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	cfg.LogLevel = level

	if cfg.GridColumns < 1 {
		return nil, fmt.Errorf("grid_columns must be at least 1, got %d", cfg.GridColumns)
	}

	if cfg.ReloadSchedule != "" {
		if _, err := cron.ParseStandard(cfg.ReloadSchedule); err != nil {
			return nil, fmt.Errorf("invalid reload_schedule %q: %w", cfg.ReloadSchedule, err)
		}
	}

	return cfg, nil
}
