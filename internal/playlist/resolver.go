// Package playlist turns (mood, language) queries into concrete, ordered
// playlists, or structured failures carrying alternative suggestions.
package playlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moodtunes/moodtunes-api/internal/catalog"
	"github.com/moodtunes/moodtunes-api/internal/domain"
)

// Resolver answers playlist queries against a read-only catalog. All
// methods are pure and deterministic for a fixed catalog.
type Resolver struct {
	catalog *catalog.Catalog
	// maxAlternatives caps the total number of suggestions on a failed
	// query, across both the language and the mood relaxation passes.
	maxAlternatives int
}

// NewResolver creates a resolver over the given catalog. maxAlternatives
// bounds the suggestion list for failed queries; values below zero are
// treated as zero.
func NewResolver(c *catalog.Catalog, maxAlternatives int) *Resolver {
	if maxAlternatives < 0 {
		maxAlternatives = 0
	}
	return &Resolver{catalog: c, maxAlternatives: maxAlternatives}
}

// Resolve maps a (mood, language) pair to an ordered playlist. A miss is a
// modeled outcome, not an error: the failure result carries alternative
// single-dimension relaxations of the query that do have songs. Labels
// outside the fixed vocabularies are not rejected; they match nothing and
// fall through to the alternatives branch.
func (r *Resolver) Resolve(mood, language string) domain.PlaylistResult {
	songs := r.catalog.ByMoodAndLanguage(mood, language)

	if len(songs) == 0 {
		return domain.PlaylistResult{
			Success:        false,
			Mood:           mood,
			Language:       language,
			Message:        fmt.Sprintf("No %s %s songs found right now.", language, mood),
			Alternatives:   r.findAlternatives(mood, language),
			AvailableMoods: r.catalog.AvailableMoods(),
		}
	}

	for i := range songs {
		songs[i].Position = i + 1
	}

	return domain.PlaylistResult{
		Success:     true,
		Mood:        mood,
		Language:    language,
		Count:       len(songs),
		Songs:       songs,
		Title:       fmt.Sprintf("%s %s Songs", capitalize(mood), language),
		Description: fmt.Sprintf("%d %s songs in %s", len(songs), mood, language),
	}
}

// findAlternatives relaxes one query dimension at a time: first the same
// mood in every other language, then every other mood in the same
// language. The original failing combination is never suggested, only
// combinations with at least one song appear, and the total list is capped
// at maxAlternatives across both passes.
func (r *Resolver) findAlternatives(mood, language string) []domain.Alternative {
	var alts []domain.Alternative

	for _, lang := range domain.Languages {
		if len(alts) >= r.maxAlternatives {
			return alts
		}
		if strings.EqualFold(lang, language) {
			continue
		}
		if songs := r.catalog.ByMoodAndLanguage(mood, lang); len(songs) > 0 {
			alts = append(alts, domain.Alternative{
				Mood:     mood,
				Language: lang,
				Count:    len(songs),
				Message:  fmt.Sprintf("Try %s %s songs (%d available)", mood, lang, len(songs)),
			})
		}
	}

	for _, m := range domain.Moods {
		if len(alts) >= r.maxAlternatives {
			return alts
		}
		if strings.EqualFold(m, mood) {
			continue
		}
		if songs := r.catalog.ByMoodAndLanguage(m, language); len(songs) > 0 {
			alts = append(alts, domain.Alternative{
				Mood:     m,
				Language: language,
				Count:    len(songs),
				Message:  fmt.Sprintf("Try %s %s songs (%d available)", m, language, len(songs)),
			})
		}
	}

	return alts
}

// AllAvailable returns every mood/language combination with at least one
// song, sorted by descending count. Ties keep cross-product order (moods
// outer, languages inner).
func (r *Resolver) AllAvailable() []domain.PlaylistSummary {
	var out []domain.PlaylistSummary

	for _, mood := range domain.Moods {
		for _, language := range domain.Languages {
			songs := r.catalog.ByMoodAndLanguage(mood, language)
			if len(songs) == 0 {
				continue
			}
			out = append(out, domain.PlaylistSummary{
				Mood:        mood,
				Language:    language,
				Count:       len(songs),
				Title:       fmt.Sprintf("%s %s", capitalize(mood), language),
				Description: fmt.Sprintf("%d songs", len(songs)),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}

// Random builds a playlist of up to count random songs from the whole
// catalog. An empty catalog yields a failure result.
func (r *Resolver) Random(count int) domain.PlaylistResult {
	songs := r.catalog.Random(count)
	if len(songs) == 0 {
		return domain.PlaylistResult{
			Success: false,
			Message: "No songs available right now.",
		}
	}

	for i := range songs {
		songs[i].Position = i + 1
	}

	return domain.PlaylistResult{
		Success:     true,
		Count:       len(songs),
		Songs:       songs,
		Title:       "Random Mix",
		Description: fmt.Sprintf("%d randomly picked songs", len(songs)),
	}
}

// MoodForHour picks a mood from the time of day: morning energy, afternoon
// cheer, evening romance, night calm.
func MoodForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "energetic"
	case hour >= 12 && hour < 17:
		return "happy"
	case hour >= 17 && hour < 21:
		return "romantic"
	default:
		return "relaxing"
	}
}

// Stats exposes aggregate catalog counts.
func (r *Resolver) Stats() domain.CatalogStats {
	return r.catalog.Stats()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
