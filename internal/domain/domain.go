package domain

import "strings"

// Song is an immutable catalog record. The catalog is read-only at runtime:
// every Song carries exactly one language and at least one mood tag.
type Song struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist"`
	Singer      string   `json:"singer,omitempty"`
	Movie       string   `json:"movie,omitempty"`
	Language    string   `json:"language"`
	Moods       []string `json:"moods"`
	Provider    Provider `json:"provider"`
	ExternalRef string   `json:"external_ref,omitempty"`

	// Position is assigned when the song is placed in a playlist (1-based).
	// Zero outside a PlaylistResult.
	Position int `json:"position,omitempty"`
}

// HasMood reports whether the song carries the given mood tag (case-insensitive).
func (s Song) HasMood(mood string) bool {
	for _, m := range s.Moods {
		if strings.EqualFold(m, mood) {
			return true
		}
	}
	return false
}

// Provider identifies the streaming backend that can play a song.
// The playback layer itself lives outside this service.
type Provider string

const (
	ProviderSpotify     Provider = "spotify"
	ProviderYouTube     Provider = "youtube"
	ProviderDirectAudio Provider = "direct-audio"
)

// Languages is the fixed language vocabulary shared by the classifier and
// the resolver. Lookups with labels outside this list are permitted; they
// simply match nothing.
var Languages = []string{"Tamil", "Hindi", "Telugu", "Malayalam", "Kannada", "English"}

// Moods is the fixed mood vocabulary used for playlist resolution and
// alternative suggestions. Catalog records may carry extra free-form tags
// (e.g. "melody", "classic") that are not resolvable on their own.
var Moods = []string{"happy", "sad", "romantic", "energetic", "relaxing", "angry", "nostalgic"}

// MoodAnalysis is the transient result of classifying one user message.
type MoodAnalysis struct {
	Mood             string   `json:"mood"`
	Confidence       float64  `json:"confidence"`
	AlternativeMoods []string `json:"alternative_moods,omitempty"`
}

// Alternative suggests a different mood/language combination that does have
// songs, offered when the original query matched nothing. Count is always
// greater than zero.
type Alternative struct {
	Mood     string `json:"mood"`
	Language string `json:"language"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// PlaylistResult is the outcome of resolving a (mood, language) query.
// Success implies a non-empty Songs slice; failure implies an empty one.
// An empty match is a modeled outcome, never an error.
type PlaylistResult struct {
	Success  bool   `json:"success"`
	Mood     string `json:"mood"`
	Language string `json:"language"`
	Count    int    `json:"count"`
	Songs    []Song `json:"songs,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Message      string        `json:"message,omitempty"`
	Alternatives []Alternative `json:"alternatives,omitempty"`

	// AvailableMoods and AvailableArtists enrich failure results with the
	// values the catalog does have, so callers can render a helpful
	// suggestion instead of a bare "not found".
	AvailableMoods   []string `json:"available_moods,omitempty"`
	AvailableArtists []string `json:"available_artists,omitempty"`
}

// PlaylistSummary describes one available mood/language combination,
// used for discovery listings.
type PlaylistSummary struct {
	Mood        string `json:"mood"`
	Language    string `json:"language"`
	Count       int    `json:"count"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CatalogStats aggregates catalog counts. A song with N moods counts once
// per mood in ByMood.
type CatalogStats struct {
	TotalSongs int            `json:"total_songs"`
	ByLanguage map[string]int `json:"by_language"`
	ByMood     map[string]int `json:"by_mood"`
	ByProvider map[string]int `json:"by_provider"`
}

// Intent labels the action derived from a chat message.
type Intent string

const (
	IntentCuratedPlaylist Intent = "curated_playlist_request"
	IntentArtistPlaylist  Intent = "artist_playlist_request"
)

// Action names the operation the router performs for an intent.
type Action string

const (
	ActionCuratedPlaylist Action = "generate_curated_playlist"
	ActionArtistPlaylist  Action = "generate_artist_playlist"
)

// ChatRequest is an inbound free-text chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatReply is the structured answer to a chat message: what was detected
// and the playlist that resulted.
type ChatReply struct {
	ID       string          `json:"id"`
	Intent   Intent          `json:"intent"`
	Action   Action          `json:"action"`
	Mood     MoodAnalysis    `json:"mood"`
	Language string          `json:"language"`
	Artist   string          `json:"artist,omitempty"`
	Playlist *PlaylistResult `json:"playlist,omitempty"`
}
