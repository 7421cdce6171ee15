// Package recommend maps a predicted emotion to a ranked, bounded list
// of movies from the catalog.
package recommend

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/moodflix/moodflix/internal/catalog"
	"github.com/moodflix/moodflix/internal/domain"
)

// DefaultLimit bounds the result when the caller does not ask for one.
const DefaultLimit = 8

// Engine filters and ranks the catalog by emotion.
type Engine struct {
	catalog      *catalog.Service
	defaultLimit int
}

// NewEngine creates an engine over the given catalog service.
func NewEngine(catalogService *catalog.Service, defaultLimit int) *Engine {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return &Engine{
		catalog:      catalogService,
		defaultLimit: defaultLimit,
	}
}

// Recommend returns up to limit movies suited to the emotion label.
//
// A movie matches when any genre keyword configured for the emotion
// occurs as a case-insensitive substring of its genres field. Matches are
// ranked by popularity when the catalog has that column, else by
// vote_average, else kept in catalog order. The sort is stable, so
// identical inputs always produce identical ordered results.
func (e *Engine) Recommend(ctx context.Context, emotion string, limit int) ([]domain.Movie, error) {
	label, err := domain.ParseEmotion(emotion)
	if err != nil {
		return nil, err
	}

	cat, err := e.catalog.Get(ctx)
	if err != nil {
		return nil, err
	}

	keywords := domain.GenresFor(label)

	var matches []domain.Movie
	for _, movie := range cat.Movies {
		if matchesAny(movie.Genres, keywords) {
			matches = append(matches, movie)
		}
	}

	switch {
	case cat.HasPopularity:
		sort.SliceStable(matches, func(i, j int) bool {
			return rankValue(matches[i].Popularity) > rankValue(matches[j].Popularity)
		})
	case cat.HasVoteAverage:
		sort.SliceStable(matches, func(i, j int) bool {
			return rankValue(matches[i].VoteAverage) > rankValue(matches[j].VoteAverage)
		})
	}

	if limit <= 0 {
		limit = e.defaultLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func matchesAny(genres string, keywords []string) bool {
	haystack := strings.ToLower(genres)
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// rankValue treats rows missing the ranking column as lowest.
func rankValue(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}
