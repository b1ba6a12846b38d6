package ports

import (
	"time"

	"github.com/moodtunes/moodtunes-api/internal/domain"
)

// RecommendationService defines the driving port for the mood-to-playlist
// pipeline. Implementations are pure computations over a read-only
// catalog: every method returns synchronously and is safe for concurrent
// callers.
type RecommendationService interface {
	// Chat routes a free-text message: classifies the mood, detects
	// language and artist, and resolves a playlist for the derived intent.
	Chat(message string) domain.ChatReply

	// ClassifyMood classifies a raw message into a mood label with
	// confidence and runner-up moods. It never fails.
	ClassifyMood(message string) domain.MoodAnalysis

	// ResolvePlaylist maps a (mood, language) pair to an ordered playlist,
	// or a structured failure with alternative suggestions.
	ResolvePlaylist(mood, language string) domain.PlaylistResult

	// SearchCatalog finds songs whose title, artist, singer or movie
	// contains the query substring.
	SearchCatalog(query string) []domain.Song

	// SongByID looks up a single catalog record.
	SongByID(id string) (domain.Song, bool)

	// AvailablePlaylists lists every mood/language combination that has
	// songs, sorted by descending count.
	AvailablePlaylists() []domain.PlaylistSummary

	// RandomPlaylist builds a playlist of up to count random songs.
	RandomPlaylist(count int) domain.PlaylistResult

	// SmartPlaylist resolves a playlist for the mood matching the given
	// time of day.
	SmartPlaylist(now time.Time) domain.PlaylistResult

	// CatalogStats aggregates song counts by language, mood and provider.
	CatalogStats() domain.CatalogStats
}
