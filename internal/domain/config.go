package domain

import "github.com/rs/zerolog"

type Config struct {
	CatalogPath         string        `toml:"catalog_path" mapstructure:"catalog_path"`
	CatalogSource       CatalogSource `toml:"catalog_source" mapstructure:"catalog_source"`
	DataDir             string        `toml:"data_dir" mapstructure:"data_dir"`
	ListenAddr          string        `toml:"listen_addr" mapstructure:"listen_addr"`
	GridColumns         int           `toml:"grid_columns" mapstructure:"grid_columns"`
	ReloadSchedule      string        `toml:"reload_schedule" mapstructure:"reload_schedule"`
	LogLevel            zerolog.Level `toml:"log_level" mapstructure:"log_level"`
	DiscordWebhookURL   string        `toml:"discord_webhook_url" mapstructure:"discord_webhook_url"`
	YouTubeLookupTitles bool          `toml:"youtube_lookup_titles" mapstructure:"youtube_lookup_titles"`
	YouTubeBaseURL      string        `toml:"youtube_base_url" mapstructure:"youtube_base_url"`
}
