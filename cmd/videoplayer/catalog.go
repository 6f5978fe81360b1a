package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varoOP/videoplayer/internal/app"
	"github.com/varoOP/videoplayer/internal/catalog"
	"github.com/varoOP/videoplayer/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, format and import catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the movies of the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		res, err := application.ListCatalog(cmd.Context())
		if err != nil {
			return err
		}
		if !res.OK() {
			return fmt.Errorf("catalog %s: %w", res.Status, res.Err)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return catalog.Encode(os.Stdout, catalog.FormatJSON, res.Movies)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tYEAR\tGENRES")
		for _, m := range res.Movies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Title, m.Year, m.Genres)
		}
		return w.Flush()
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print coverage statistics of the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		stats, res, err := application.CatalogStats(cmd.Context())
		if err != nil {
			return err
		}
		if !res.OK() {
			return fmt.Errorf("catalog %s: %w", res.Status, res.Err)
		}

		printStatistics(stats)

		if application.Config().CatalogSource == domain.CatalogSourceSQLite {
			imp, err := application.LastImport(cmd.Context())
			if err != nil {
				return err
			}
			if imp != nil {
				fmt.Printf("Last import:    %s (%d movies) at %s\n", imp.Source, imp.MovieCount, imp.ImportedAt.Format(time.RFC3339))
			}
		}
		return nil
	},
}

var catalogFormatCmd = &cobra.Command{
	Use:   "format [path]",
	Short: "Rewrite a catalog file in canonical form",
	Long: `Rewrite a catalog file with consistent indentation. The output format
follows the extension of the output path: .yaml and .yml write YAML,
everything else writes JSON. Without --out the file is rewritten in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		in := viper.GetString("catalog_path")
		if len(args) == 1 {
			in = args[0]
		}
		out, _ := cmd.Flags().GetString("out")

		n, err := application.FormatCatalog(cmd.Context(), in, out)
		if err != nil {
			return fmt.Errorf("format failed: %w", err)
		}

		fmt.Printf("Formatted %d movies\n", n)
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Copy a catalog file into the database",
	Long: `Import replaces the movies stored in the catalog database with the
contents of a catalog file, keeping their order. Serve with
--source sqlite to read the imported catalog. When discord_webhook_url is
set the outcome is posted to Discord.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		path := viper.GetString("catalog_path")
		if len(args) == 1 {
			path = args[0]
		}

		stats, err := application.ImportCatalog(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		printStatistics(stats)
		return nil
	},
}

func printStatistics(stats domain.Statistics) {
	fmt.Printf("Source:         %s\n", stats.Source)
	fmt.Printf("Movies:         %d\n", stats.TotalMovies)
	fmt.Printf("With trailer:   %d (%.1f%%)\n", stats.WithTrailer, stats.TrailerCoverage)
	fmt.Printf("With subtitles: %d\n", stats.WithSubtitles)
	fmt.Printf("With thumbnail: %d\n", stats.WithThumbnail)
	fmt.Printf("Genres:         %d\n", stats.DistinctGenres)
}

func init() {
	catalogListCmd.Flags().Bool("json", false, "print the catalog as JSON")
	catalogFormatCmd.Flags().String("out", "", "output path (default: rewrite in place)")

	catalogCmd.AddCommand(catalogListCmd, catalogStatsCmd, catalogFormatCmd, catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}
