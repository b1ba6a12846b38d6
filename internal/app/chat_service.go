package app

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodtunes/moodtunes-api/internal/catalog"
	"github.com/moodtunes/moodtunes-api/internal/domain"
	"github.com/moodtunes/moodtunes-api/internal/mood"
	"github.com/moodtunes/moodtunes-api/internal/playlist"
)

// Service implements ports.RecommendationService. It is the thin routing
// layer between free text and the classifier/resolver pair: one unified
// classification path serves both curated and artist playlist requests.
type Service struct {
	catalog    *catalog.Catalog
	classifier *mood.Classifier
	resolver   *playlist.Resolver

	defaultLanguage string
}

// NewService wires the catalog, classifier and resolver into the chat
// routing service. defaultLanguage is assumed when a message names none.
func NewService(c *catalog.Catalog, cl *mood.Classifier, r *playlist.Resolver, defaultLanguage string) *Service {
	if defaultLanguage == "" {
		defaultLanguage = "Tamil"
	}
	return &Service{
		catalog:         c,
		classifier:      cl,
		resolver:        r,
		defaultLanguage: defaultLanguage,
	}
}

// artistAliases maps message substrings to canonical artist names. Ordered
// so the more specific alias is checked before a shorter one.
var artistAliases = []struct {
	alias  string
	artist string
}{
	{"a.r. rahman", "A.R. Rahman"},
	{"rahman", "A.R. Rahman"},
	{"anirudh", "Anirudh Ravichander"},
	{"ilaiyaraaja", "Ilaiyaraaja"},
	{"ilayaraja", "Ilaiyaraaja"},
	{"yuvan", "Yuvan Shankar Raja"},
}

func (s *Service) Chat(message string) domain.ChatReply {
	msg := strings.ToLower(message)

	analysis := s.classifier.Classify(message)
	language := s.detectLanguage(msg)
	artist := detectArtist(msg)

	reply := domain.ChatReply{
		ID:       uuid.NewString(),
		Mood:     analysis,
		Language: language,
		Artist:   artist,
	}

	if artist != "" {
		reply.Intent = domain.IntentArtistPlaylist
		reply.Action = domain.ActionArtistPlaylist
	} else {
		reply.Intent = domain.IntentCuratedPlaylist
		reply.Action = domain.ActionCuratedPlaylist
	}

	result := s.resolver.Resolve(analysis.Mood, language)

	if artist != "" {
		result = s.filterByArtist(result, artist)
	}

	log.Printf("[chat] intent=%s mood=%s language=%s artist=%q matched=%d",
		reply.Intent, analysis.Mood, language, artist, result.Count)

	reply.Playlist = &result
	return reply
}

// detectLanguage scans for an explicit language mention, falling back to
// the configured default.
func (s *Service) detectLanguage(msg string) string {
	for _, lang := range domain.Languages {
		if strings.Contains(msg, strings.ToLower(lang)) {
			return lang
		}
	}
	return s.defaultLanguage
}

func detectArtist(msg string) string {
	for _, a := range artistAliases {
		if strings.Contains(msg, a.alias) {
			return a.artist
		}
	}
	return ""
}

// filterByArtist applies the artist filter after mood/language resolution.
// When the filter leaves nothing (or the resolution itself failed), the
// reply falls back to a catalog-wide artist playlist so an explicit artist
// request never comes back empty while the artist has songs.
func (s *Service) filterByArtist(result domain.PlaylistResult, artist string) domain.PlaylistResult {
	if result.Success {
		var kept []domain.Song
		for _, song := range result.Songs {
			if strings.Contains(strings.ToLower(song.Artist), strings.ToLower(artist)) {
				kept = append(kept, song)
			}
		}
		if len(kept) > 0 {
			for i := range kept {
				kept[i].Position = i + 1
			}
			result.Songs = kept
			result.Count = len(kept)
			result.Title = "Best of " + artist
			result.Description = result.Description + " by " + artist
			return result
		}
	}

	songs := s.catalog.ByArtist(artist)
	if len(songs) == 0 {
		return domain.PlaylistResult{
			Success:          false,
			Mood:             result.Mood,
			Language:         result.Language,
			Message:          "No songs by " + artist + " found right now.",
			AvailableArtists: s.catalog.AvailableArtists(),
		}
	}

	for i := range songs {
		songs[i].Position = i + 1
	}
	return domain.PlaylistResult{
		Success:     true,
		Mood:        result.Mood,
		Language:    result.Language,
		Count:       len(songs),
		Songs:       songs,
		Title:       "Best of " + artist,
		Description: "the best " + artist + " songs",
	}
}

func (s *Service) ClassifyMood(message string) domain.MoodAnalysis {
	return s.classifier.Classify(message)
}

func (s *Service) ResolvePlaylist(mood, language string) domain.PlaylistResult {
	return s.resolver.Resolve(mood, language)
}

func (s *Service) SearchCatalog(query string) []domain.Song {
	return s.catalog.Search(query)
}

func (s *Service) SongByID(id string) (domain.Song, bool) {
	return s.catalog.ByID(id)
}

func (s *Service) AvailablePlaylists() []domain.PlaylistSummary {
	return s.resolver.AllAvailable()
}

func (s *Service) RandomPlaylist(count int) domain.PlaylistResult {
	return s.resolver.Random(count)
}

func (s *Service) SmartPlaylist(now time.Time) domain.PlaylistResult {
	return s.resolver.Resolve(playlist.MoodForHour(now.Hour()), s.defaultLanguage)
}

func (s *Service) CatalogStats() domain.CatalogStats {
	return s.resolver.Stats()
}
