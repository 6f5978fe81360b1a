package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varoOP/videoplayer/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serve the home grid, movie pages, the player and the YouTube queue.

The catalog is read once at startup from the file given by --catalog (or the
bundled catalog), or from the database when catalog_source is sqlite. Set
reload_schedule to a cron expression to reload it periodically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := application.Serve(ctx); err != nil {
			return fmt.Errorf("serve failed: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "address to listen on")
	serveCmd.Flags().String("source", "file", "catalog source: 'file' or 'sqlite'")
	serveCmd.Flags().String("reload-schedule", "", "cron expression for catalog reloads, e.g. '@every 1h'")
	serveCmd.Flags().Int("grid-columns", 2, "columns of the home grid")
	serveCmd.Flags().Bool("youtube-titles", false, "look up titles of queued YouTube videos")

	viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("catalog_source", serveCmd.Flags().Lookup("source"))
	viper.BindPFlag("reload_schedule", serveCmd.Flags().Lookup("reload-schedule"))
	viper.BindPFlag("grid_columns", serveCmd.Flags().Lookup("grid-columns"))
	viper.BindPFlag("youtube_lookup_titles", serveCmd.Flags().Lookup("youtube-titles"))

	rootCmd.AddCommand(serveCmd)
}
