// Package mood implements the keyword-scoring mood classifier. It is the
// single classification path for every caller; classification is
// best-effort and never fails.
package mood

import (
	"slices"
	"strings"

	"github.com/moodtunes/moodtunes-api/internal/domain"
)

// pattern maps one mood label to its trigger keywords and intensity weight.
// Each keyword that appears in the message adds the intensity to the mood's
// score; a keyword counts at most once per message regardless of how many
// times it occurs.
type pattern struct {
	mood      string
	keywords  []string
	intensity float64
}

// patterns is ordered: ties on score are broken by declaration order, so
// the first-declared mood wins. The order and weights mirror the shipped
// mood tables.
var patterns = []pattern{
	{
		mood: "happy",
		keywords: []string{
			"happy", "joy", "excited", "great", "awesome", "amazing", "wonderful",
			"fantastic", "celebration", "party", "fun", "cheerful", "bright",
			"energetic", "positive", "good", "excellent",
		},
		intensity: 0.9,
	},
	{
		mood: "sad",
		keywords: []string{
			"sad", "down", "depressed", "lonely", "hurt", "pain", "crying",
			"tears", "heartbroken", "low", "blue", "upset", "disappointed",
			"miserable", "empty", "hopeless", "lost", "broken",
		},
		intensity: 0.9,
	},
	{
		mood: "romantic",
		keywords: []string{
			"love", "romantic", "romance", "heart", "date", "valentine",
			"crush", "relationship", "partner", "boyfriend", "girlfriend",
			"soulmate", "falling for", "in love", "miss you", "thinking of",
		},
		intensity: 0.85,
	},
	{
		mood: "energetic",
		keywords: []string{
			"energy", "workout", "gym", "exercise", "dance", "party",
			"pump", "motivated", "active", "moving", "run", "power",
			"intense", "vigorous", "dynamic",
		},
		intensity: 0.9,
	},
	{
		mood: "relaxing",
		keywords: []string{
			"calm", "relax", "chill", "peaceful", "quiet", "rest",
			"sleep", "meditate", "zen", "tranquil", "serene", "gentle",
			"soft", "soothing", "unwind", "stress", "tired",
		},
		intensity: 0.8,
	},
	{
		mood: "stressed",
		keywords: []string{
			"stress", "overwhelmed", "anxious", "worried", "nervous",
			"pressure", "tension", "busy", "hectic", "exhausted", "tired",
			"can't handle", "too much", "difficult",
		},
		intensity: 0.85,
	},
	{
		mood: "angry",
		keywords: []string{
			"angry", "mad", "furious", "annoyed", "frustrated", "irritated",
			"rage", "hate", "pissed", "upset", "fed up",
		},
		intensity: 0.9,
	},
}

// maxAlternativeMoods caps the runner-up list in every analysis.
const maxAlternativeMoods = 2

// Classifier turns free-text messages into mood labels. The fallback mood
// and the confidence normalization divisor are constructor parameters so
// neither lives as a magic literal at the call sites.
type Classifier struct {
	defaultMood       string
	confidenceDivisor float64
}

// NewClassifier creates a classifier. defaultMood is returned with zero
// confidence when no keyword matches; divisor normalizes raw scores via
// confidence = min(score/divisor, 1).
func NewClassifier(defaultMood string, divisor float64) *Classifier {
	if defaultMood == "" {
		defaultMood = "happy"
	}
	if divisor <= 0 {
		divisor = 2.0
	}
	return &Classifier{defaultMood: defaultMood, confidenceDivisor: divisor}
}

// Classify scores the message against every mood pattern and returns the
// best match. It lower-cases the input itself, applies the post-scoring
// remap rules, and never fails: a message with no keyword hits yields the
// default mood with confidence 0.
func (c *Classifier) Classify(message string) domain.MoodAnalysis {
	msg := strings.ToLower(message)

	type scored struct {
		mood  string
		score float64
	}
	var hits []scored

	best := c.defaultMood
	var maxScore float64

	for _, p := range patterns {
		var score float64
		for _, kw := range p.keywords {
			if strings.Contains(msg, kw) {
				score += p.intensity
			}
		}
		if score > 0 {
			hits = append(hits, scored{mood: p.mood, score: score})
		}
		// Strictly greater: the first-declared mood keeps a tie.
		if score > maxScore {
			maxScore = score
			best = p.mood
		}
	}

	confidence := maxScore / c.confidenceDivisor
	if confidence > 1 {
		confidence = 1
	}

	final := remap(best, msg)

	// Runner-up moods: nonzero scorers excluding the winner, remapped the
	// same way, deduplicated, highest score first. The scan is stable so
	// equal scores keep declaration order.
	var alternatives []string
	seen := map[string]bool{best: true, final: true}
	for len(alternatives) < maxAlternativeMoods {
		bestIdx := -1
		for i, h := range hits {
			if seen[h.mood] {
				continue
			}
			if bestIdx == -1 || h.score > hits[bestIdx].score {
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			break
		}
		h := hits[bestIdx]
		seen[h.mood] = true
		alt := remap(h.mood, msg)
		if alt != final && !slices.Contains(alternatives, alt) {
			alternatives = append(alternatives, alt)
		}
	}

	return domain.MoodAnalysis{
		Mood:             final,
		Confidence:       confidence,
		AlternativeMoods: alternatives,
	}
}

// remap applies the post-classification rules: "stressed" is never exposed
// and always becomes "relaxing"; "angry" becomes "energetic" when the
// message carries the high-arousal marker "scream", otherwise "relaxing".
func remap(mood, msg string) string {
	switch mood {
	case "stressed":
		return "relaxing"
	case "angry":
		if strings.Contains(msg, "scream") {
			return "energetic"
		}
		return "relaxing"
	}
	return mood
}
