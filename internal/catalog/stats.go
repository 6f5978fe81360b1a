package catalog

import (
	"strings"

	"github.com/varoOP/videoplayer/internal/domain"
)

// DescribeStatistics counts coverage over a catalog
func DescribeStatistics(source string, movies []domain.Movie) domain.Statistics {
	stats := domain.Statistics{
		Source:      source,
		TotalMovies: len(movies),
	}

	genres := make(map[string]struct{})
	for _, m := range movies {
		if m.HasTrailer() {
			stats.WithTrailer++
		}
		if strings.TrimSpace(m.Subtitle) != "" {
			stats.WithSubtitles++
		}
		if strings.TrimSpace(m.Thumbnail) != "" {
			stats.WithThumbnail++
		}
		for _, g := range m.GenreList() {
			genres[strings.ToLower(g)] = struct{}{}
		}
	}
	stats.DistinctGenres = len(genres)

	if stats.TotalMovies > 0 {
		stats.TrailerCoverage = (float64(stats.WithTrailer) / float64(stats.TotalMovies)) * 100
	}

	return stats
}
