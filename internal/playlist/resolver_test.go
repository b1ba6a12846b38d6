package playlist

import (
	"testing"

	"github.com/moodtunes/moodtunes-api/internal/catalog"
	"github.com/moodtunes/moodtunes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Fixtures ----------------------------------------------------------------

func fixtureResolver(t *testing.T) *Resolver {
	t.Helper()
	c, err := catalog.New([]domain.Song{
		{ID: "s1", Title: "Vaseegara", Artist: "Harris Jayaraj", Language: "Tamil",
			Moods: []string{"romantic"}, Provider: domain.ProviderSpotify},
		{ID: "s2", Title: "Why This Kolaveri Di", Artist: "Anirudh Ravichander", Language: "Tamil",
			Moods: []string{"happy"}, Provider: domain.ProviderYouTube},
		{ID: "s3", Title: "Tum Hi Ho", Artist: "Mithoon", Language: "Hindi",
			Moods: []string{"romantic", "sad"}, Provider: domain.ProviderSpotify},
		{ID: "s4", Title: "Kadhal Rojave", Artist: "A.R. Rahman", Language: "Tamil",
			Moods: []string{"romantic"}, Provider: domain.ProviderYouTube},
		{ID: "s5", Title: "Butta Bomma", Artist: "Thaman S", Language: "Telugu",
			Moods: []string{"happy", "romantic"}, Provider: domain.ProviderYouTube},
	})
	require.NoError(t, err)
	return NewResolver(c, 3)
}

// -- Success path ------------------------------------------------------------

func TestResolve_Success(t *testing.T) {
	r := fixtureResolver(t)

	result := r.Resolve("romantic", "Tamil")
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Romantic Tamil Songs", result.Title)
	assert.Equal(t, "2 romantic songs in Tamil", result.Description)
	assert.Empty(t, result.Message)
	assert.Empty(t, result.Alternatives)

	// Catalog insertion order, 1-based positions.
	require.Len(t, result.Songs, 2)
	assert.Equal(t, "s1", result.Songs[0].ID)
	assert.Equal(t, 1, result.Songs[0].Position)
	assert.Equal(t, "s4", result.Songs[1].ID)
	assert.Equal(t, 2, result.Songs[1].Position)
}

func TestResolve_Deterministic(t *testing.T) {
	r := fixtureResolver(t)

	first := r.Resolve("romantic", "Tamil")
	second := r.Resolve("romantic", "Tamil")
	assert.Equal(t, first, second)
}

func TestResolve_SuccessXOREmpty(t *testing.T) {
	r := fixtureResolver(t)

	for _, mood := range domain.Moods {
		for _, language := range domain.Languages {
			result := r.Resolve(mood, language)
			if result.Success {
				assert.NotEmpty(t, result.Songs, "%s/%s", mood, language)
				assert.Equal(t, len(result.Songs), result.Count)
			} else {
				assert.Empty(t, result.Songs, "%s/%s", mood, language)
			}
		}
	}
}

// -- Failure path ------------------------------------------------------------

func TestResolve_NoMatchWithAlternatives(t *testing.T) {
	r := fixtureResolver(t)

	result := r.Resolve("sad", "Tamil")
	require.False(t, result.Success)
	assert.Equal(t, "No Tamil sad songs found right now.", result.Message)
	require.NotEmpty(t, result.Alternatives)

	// Language relaxation comes first: sad Hindi exists.
	assert.Equal(t, domain.Alternative{
		Mood: "sad", Language: "Hindi", Count: 1,
		Message: "Try sad Hindi songs (1 available)",
	}, result.Alternatives[0])

	// Mood relaxation includes happy Tamil (s2).
	var foundHappyTamil bool
	for _, alt := range result.Alternatives {
		assert.Greater(t, alt.Count, 0)
		if alt.Mood == "happy" && alt.Language == "Tamil" {
			foundHappyTamil = true
			assert.Equal(t, 1, alt.Count)
		}
	}
	assert.True(t, foundHappyTamil)
}

func TestResolve_FailureListsAvailableMoods(t *testing.T) {
	r := fixtureResolver(t)

	result := r.Resolve("nostalgic", "Tamil")
	require.False(t, result.Success)
	assert.ElementsMatch(t, []string{"romantic", "happy", "sad"}, result.AvailableMoods)

	// Success results carry no availability lists.
	result = r.Resolve("romantic", "Tamil")
	require.True(t, result.Success)
	assert.Empty(t, result.AvailableMoods)
}

func TestResolve_NeverSuggestsOriginalQuery(t *testing.T) {
	r := fixtureResolver(t)

	for _, mood := range domain.Moods {
		for _, language := range domain.Languages {
			result := r.Resolve(mood, language)
			for _, alt := range result.Alternatives {
				assert.False(t, alt.Mood == mood && alt.Language == language,
					"alternatives for %s/%s re-suggest the failing query", mood, language)
			}
		}
	}
}

func TestResolve_AlternativesCapped(t *testing.T) {
	r := fixtureResolver(t)

	result := r.Resolve("energetic", "English")
	require.False(t, result.Success)
	assert.LessOrEqual(t, len(result.Alternatives), 3)

	result = r.Resolve("romantic", "English")
	require.False(t, result.Success)
	assert.LessOrEqual(t, len(result.Alternatives), 3)
	// Three romantic languages exist (Tamil, Hindi, Telugu): cap fills from
	// the language pass alone.
	assert.Len(t, result.Alternatives, 3)
}

func TestResolve_UnknownLabelsFallThrough(t *testing.T) {
	r := fixtureResolver(t)

	// Labels outside the fixed vocabularies are not validation errors.
	result := r.Resolve("melancholic", "Klingon")
	require.False(t, result.Success)
	assert.Empty(t, result.Songs)
	assert.Equal(t, "No Klingon melancholic songs found right now.", result.Message)
}

func TestResolve_ZeroCapDisablesAlternatives(t *testing.T) {
	c, err := catalog.New([]domain.Song{
		{ID: "s1", Title: "Song", Artist: "A", Language: "Tamil",
			Moods: []string{"happy"}, Provider: domain.ProviderYouTube},
	})
	require.NoError(t, err)
	r := NewResolver(c, 0)

	result := r.Resolve("sad", "Tamil")
	require.False(t, result.Success)
	assert.Empty(t, result.Alternatives)
}

// -- Discovery ---------------------------------------------------------------

func TestAllAvailable(t *testing.T) {
	r := fixtureResolver(t)

	available := r.AllAvailable()
	require.NotEmpty(t, available)

	// Sorted by descending count; every entry has songs.
	for i, p := range available {
		assert.Greater(t, p.Count, 0)
		if i > 0 {
			assert.GreaterOrEqual(t, available[i-1].Count, p.Count)
		}
	}

	assert.Equal(t, "romantic", available[0].Mood)
	assert.Equal(t, "Tamil", available[0].Language)
	assert.Equal(t, 2, available[0].Count)
	assert.Equal(t, "Romantic Tamil", available[0].Title)
}

func TestRandomPlaylist(t *testing.T) {
	r := fixtureResolver(t)

	result := r.Random(3)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Count)
	for i, song := range result.Songs {
		assert.Equal(t, i+1, song.Position)
	}
}

func TestStats(t *testing.T) {
	r := fixtureResolver(t)

	stats := r.Stats()
	assert.Equal(t, 5, stats.TotalSongs)
	assert.Equal(t, 4, stats.ByMood["romantic"])
}

// -- Time-of-day mood --------------------------------------------------------

func TestMoodForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "energetic"},
		{11, "energetic"},
		{12, "happy"},
		{16, "happy"},
		{17, "romantic"},
		{20, "romantic"},
		{21, "relaxing"},
		{2, "relaxing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoodForHour(tt.hour), "hour %d", tt.hour)
	}
}
