package catalog

import (
	"testing"

	"github.com/moodtunes/moodtunes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Fixtures ----------------------------------------------------------------

func fixtureSongs() []domain.Song {
	return []domain.Song{
		{
			ID: "s1", Title: "Vaseegara", Artist: "Harris Jayaraj", Singer: "Bombay Jayashri",
			Movie: "Minnale", Language: "Tamil", Moods: []string{"romantic", "love"},
			Provider: domain.ProviderSpotify,
		},
		{
			ID: "s2", Title: "Why This Kolaveri Di", Artist: "Anirudh Ravichander", Singer: "Dhanush",
			Movie: "3", Language: "Tamil", Moods: []string{"happy", "fun"},
			Provider: domain.ProviderYouTube,
		},
		{
			ID: "s3", Title: "Tum Hi Ho", Artist: "Mithoon", Singer: "Arijit Singh",
			Movie: "Aashiqui 2", Language: "Hindi", Moods: []string{"romantic", "sad"},
			Provider: domain.ProviderSpotify,
		},
		{
			ID: "s4", Title: "Kadhal Rojave", Artist: "A.R. Rahman", Singer: "S.P. Balasubrahmanyam",
			Movie: "Roja", Language: "Tamil", Moods: []string{"romantic", "classic"},
			Provider: domain.ProviderYouTube,
		},
	}
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(fixtureSongs())
	require.NoError(t, err)
	return c
}

// -- Validation --------------------------------------------------------------

func TestNew_RejectsDuplicateID(t *testing.T) {
	songs := fixtureSongs()
	songs[1].ID = "s1"

	_, err := New(songs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Song)
	}{
		{"empty id", func(s *domain.Song) { s.ID = "" }},
		{"empty title", func(s *domain.Song) { s.Title = "" }},
		{"empty language", func(s *domain.Song) { s.Language = "" }},
		{"no moods", func(s *domain.Song) { s.Moods = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs := fixtureSongs()
			tt.mutate(&songs[0])
			_, err := New(songs)
			require.Error(t, err)
		})
	}
}

func TestLoad_EmbeddedDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/songs.json")
	require.Error(t, err)
}

// -- Queries -----------------------------------------------------------------

func TestByMood_ContainmentInvariant(t *testing.T) {
	c := fixtureCatalog(t)

	for _, mood := range []string{"romantic", "happy", "sad", "ROMANTIC"} {
		for _, song := range c.ByMood(mood) {
			assert.True(t, song.HasMood(mood),
				"song %s returned for mood %s it does not carry", song.ID, mood)
		}
	}
}

func TestByMoodAndLanguage(t *testing.T) {
	c := fixtureCatalog(t)

	songs := c.ByMoodAndLanguage("romantic", "Tamil")
	require.Len(t, songs, 2)
	// Insertion order is preserved.
	assert.Equal(t, "s1", songs[0].ID)
	assert.Equal(t, "s4", songs[1].ID)

	assert.Empty(t, c.ByMoodAndLanguage("sad", "Tamil"))
	assert.Empty(t, c.ByMoodAndLanguage("romantic", "English"))
}

func TestByMoodAndLanguage_CaseInsensitive(t *testing.T) {
	c := fixtureCatalog(t)

	assert.Len(t, c.ByMoodAndLanguage("ROMANTIC", "tamil"), 2)
}

func TestByLanguage(t *testing.T) {
	c := fixtureCatalog(t)

	assert.Len(t, c.ByLanguage("Tamil"), 3)
	assert.Len(t, c.ByLanguage("hindi"), 1)
	assert.Empty(t, c.ByLanguage("Kannada"))
}

func TestByID(t *testing.T) {
	c := fixtureCatalog(t)

	song, ok := c.ByID("s3")
	require.True(t, ok)
	assert.Equal(t, "Tum Hi Ho", song.Title)

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	c := fixtureCatalog(t)

	// Artist match, case-insensitive.
	songs := c.Search("rahman")
	require.Len(t, songs, 1)
	assert.Equal(t, "s4", songs[0].ID)

	// Singer match.
	songs = c.Search("arijit")
	require.Len(t, songs, 1)
	assert.Equal(t, "s3", songs[0].ID)

	// Movie match.
	songs = c.Search("minnale")
	require.Len(t, songs, 1)
	assert.Equal(t, "s1", songs[0].ID)

	assert.Empty(t, c.Search("beatles"))
}

func TestByArtist(t *testing.T) {
	c := fixtureCatalog(t)

	songs := c.ByArtist("anirudh")
	require.Len(t, songs, 1)
	assert.Equal(t, "s2", songs[0].ID)
}

func TestRandom(t *testing.T) {
	c := fixtureCatalog(t)

	assert.Len(t, c.Random(2), 2)
	// Requests beyond catalog size are clamped.
	assert.Len(t, c.Random(50), c.Len())
	assert.Empty(t, c.Random(0))

	// No repetitions.
	songs := c.Random(c.Len())
	seen := map[string]bool{}
	for _, s := range songs {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestAvailableMoodsAndArtists(t *testing.T) {
	c := fixtureCatalog(t)

	moods := c.AvailableMoods()
	assert.Contains(t, moods, "romantic")
	assert.Contains(t, moods, "happy")
	assert.Contains(t, moods, "sad")

	artists := c.AvailableArtists()
	assert.Contains(t, artists, "A.R. Rahman")
	assert.Len(t, artists, 4)
}

func TestStats(t *testing.T) {
	c := fixtureCatalog(t)

	stats := c.Stats()
	assert.Equal(t, 4, stats.TotalSongs)
	assert.Equal(t, 3, stats.ByLanguage["Tamil"])
	assert.Equal(t, 1, stats.ByLanguage["Hindi"])
	// A song with N moods counts once per mood.
	assert.Equal(t, 3, stats.ByMood["romantic"])
	assert.Equal(t, 2, stats.ByProvider["spotify"])
	assert.Equal(t, 2, stats.ByProvider["youtube"])
}
