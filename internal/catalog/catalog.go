// Package catalog holds the static song table and answers pure queries
// against it. The table is loaded once at startup and never mutated, so
// all queries are safe for concurrent use without coordination.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/moodtunes/moodtunes-api/internal/domain"
)

//go:embed songs.json
var defaultSongs []byte

// Catalog is the read-only song table. All query methods preserve catalog
// insertion order and never return errors: a miss is an empty result.
type Catalog struct {
	songs []domain.Song
	byID  map[string]int
}

// New builds a catalog from the given songs, validating every record.
// Validation failures are startup errors; queries never fail.
func New(songs []domain.Song) (*Catalog, error) {
	c := &Catalog{
		songs: songs,
		byID:  make(map[string]int, len(songs)),
	}

	for i, s := range songs {
		if s.ID == "" {
			return nil, fmt.Errorf("song at index %d has empty id", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate song id: %s", s.ID)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("song %s has empty title", s.ID)
		}
		if s.Language == "" {
			return nil, fmt.Errorf("song %s has empty language", s.ID)
		}
		if len(s.Moods) == 0 {
			return nil, fmt.Errorf("song %s has no moods", s.ID)
		}
		c.byID[s.ID] = i
	}

	return c, nil
}

// Load builds the catalog from a JSON file at path, or from the embedded
// default catalog when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultSongs
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}

	var songs []domain.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(songs)
}

// Len returns the number of songs in the catalog.
func (c *Catalog) Len() int { return len(c.songs) }

// All returns every song in insertion order.
func (c *Catalog) All() []domain.Song {
	out := make([]domain.Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// ByID returns the song with the given id, or false when absent.
func (c *Catalog) ByID(id string) (domain.Song, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Song{}, false
	}
	return c.songs[i], true
}

// ByMood returns all songs tagged with the given mood (case-insensitive
// exact match, no fuzzy matching).
func (c *Catalog) ByMood(mood string) []domain.Song {
	var out []domain.Song
	for _, s := range c.songs {
		if s.HasMood(mood) {
			out = append(out, s)
		}
	}
	return out
}

// ByLanguage returns all songs in the given language (case-insensitive).
func (c *Catalog) ByLanguage(language string) []domain.Song {
	var out []domain.Song
	for _, s := range c.songs {
		if strings.EqualFold(s.Language, language) {
			out = append(out, s)
		}
	}
	return out
}

// ByMoodAndLanguage returns songs matching both mood and language,
// preserving catalog insertion order.
func (c *Catalog) ByMoodAndLanguage(mood, language string) []domain.Song {
	var out []domain.Song
	for _, s := range c.songs {
		if s.HasMood(mood) && strings.EqualFold(s.Language, language) {
			out = append(out, s)
		}
	}
	return out
}

// Search returns every song where at least one of title, artist, singer or
// movie contains the query as a case-insensitive substring.
func (c *Catalog) Search(query string) []domain.Song {
	q := strings.ToLower(query)
	var out []domain.Song
	for _, s := range c.songs {
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Artist), q) ||
			strings.Contains(strings.ToLower(s.Singer), q) ||
			strings.Contains(strings.ToLower(s.Movie), q) {
			out = append(out, s)
		}
	}
	return out
}

// ByArtist returns songs whose artist field contains the query as a
// case-insensitive substring.
func (c *Catalog) ByArtist(artist string) []domain.Song {
	q := strings.ToLower(artist)
	var out []domain.Song
	for _, s := range c.songs {
		if strings.Contains(strings.ToLower(s.Artist), q) {
			out = append(out, s)
		}
	}
	return out
}

// Random returns up to n songs drawn without repetition in random order.
func (c *Catalog) Random(n int) []domain.Song {
	if n > len(c.songs) {
		n = len(c.songs)
	}
	if n <= 0 {
		return nil
	}
	perm := rand.Perm(len(c.songs))
	out := make([]domain.Song, 0, n)
	for _, i := range perm[:n] {
		out = append(out, c.songs[i])
	}
	return out
}

// AvailableMoods returns the distinct mood tags present in the catalog,
// in first-seen order.
func (c *Catalog) AvailableMoods() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.songs {
		for _, m := range s.Moods {
			key := strings.ToLower(m)
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}

// AvailableArtists returns the distinct artists present in the catalog,
// in first-seen order.
func (c *Catalog) AvailableArtists() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.songs {
		if !seen[s.Artist] {
			seen[s.Artist] = true
			out = append(out, s.Artist)
		}
	}
	return out
}

// Stats aggregates song counts by language, mood and provider. A song with
// N moods counts once per mood.
func (c *Catalog) Stats() domain.CatalogStats {
	stats := domain.CatalogStats{
		TotalSongs: len(c.songs),
		ByLanguage: make(map[string]int),
		ByMood:     make(map[string]int),
		ByProvider: make(map[string]int),
	}
	for _, s := range c.songs {
		stats.ByLanguage[s.Language]++
		for _, m := range s.Moods {
			stats.ByMood[strings.ToLower(m)]++
		}
		stats.ByProvider[string(s.Provider)]++
	}
	return stats
}
