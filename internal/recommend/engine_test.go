package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodflix/moodflix/internal/catalog"
	"github.com/moodflix/moodflix/internal/domain"
)

type stubSource struct {
	catalog *catalog.Catalog
}

func (s *stubSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	return s.catalog, nil
}

func float64Ptr(v float64) *float64 {
	return &v
}

func movie(title, genres string, popularity, voteAverage *float64) domain.Movie {
	return domain.Movie{
		Title:       title,
		Genres:      genres,
		Popularity:  popularity,
		VoteAverage: voteAverage,
		Extra:       map[string]string{},
	}
}

func fixtureCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		HasPopularity:  true,
		HasVoteAverage: true,
		Movies: []domain.Movie{
			movie("Toy Story", "Animation, Comedy, Family", float64Ptr(21.9), float64Ptr(7.9)),
			movie("Heat", "Action, Crime, Drama", float64Ptr(17.3), float64Ptr(7.7)),
			movie("Se7en", "Crime, Mystery, Thriller", float64Ptr(18.4), float64Ptr(8.1)),
			movie("The Mask", "Comedy, Fantasy", float64Ptr(14.6), float64Ptr(6.6)),
			movie("Casino", "Drama, Crime", float64Ptr(10.1), float64Ptr(7.8)),
			movie("Alien", "Horror, Sci-Fi", float64Ptr(23.4), float64Ptr(8.1)),
			movie("Before Sunrise", "Drama, Romance", float64Ptr(12.0), float64Ptr(7.8)),
			movie("Jumanji", "Adventure, Fantasy, Family", float64Ptr(19.2), float64Ptr(6.9)),
			movie("Hoop Dreams", "Documentary", float64Ptr(5.0), float64Ptr(8.3)),
			movie("Nixon", "Drama, Biography", float64Ptr(4.2), float64Ptr(7.1)),
		},
	}
}

func newTestEngine(cat *catalog.Catalog, defaultLimit int) *Engine {
	return NewEngine(catalog.NewService(&stubSource{catalog: cat}), defaultLimit)
}

func TestEngine_Recommend_AllLabels(t *testing.T) {
	engine := newTestEngine(fixtureCatalog(), 8)

	for _, label := range domain.Emotions {
		t.Run(label, func(t *testing.T) {
			movies, err := engine.Recommend(context.Background(), label, 8)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(movies), 8)

			// Every match carries at least one configured keyword.
			keywords := domain.GenresFor(label)
			for _, m := range movies {
				matched := false
				for _, kw := range keywords {
					if strings.Contains(strings.ToLower(m.Genres), strings.ToLower(kw)) {
						matched = true
						break
					}
				}
				assert.True(t, matched, "%s does not match %v", m.Title, keywords)
			}
		})
	}
}

func TestEngine_Recommend_HappySortedByPopularity(t *testing.T) {
	engine := newTestEngine(fixtureCatalog(), 8)

	movies, err := engine.Recommend(context.Background(), "HAPPY", 3)
	require.NoError(t, err)

	// Comedy/animation/adventure entries ranked by popularity:
	// Toy Story 21.9, Jumanji 19.2, The Mask 14.6.
	require.Len(t, movies, 3)
	assert.Equal(t, "Toy Story", movies[0].Title)
	assert.Equal(t, "Jumanji", movies[1].Title)
	assert.Equal(t, "The Mask", movies[2].Title)
}

func TestEngine_Recommend_VoteAverageFallback(t *testing.T) {
	cat := fixtureCatalog()
	cat.HasPopularity = false

	engine := newTestEngine(cat, 8)
	movies, err := engine.Recommend(context.Background(), "sad", 2)
	require.NoError(t, err)

	// Drama/romance by vote_average: Casino and Before Sunrise tie at
	// 7.8 ahead of Heat 7.7; the stable sort keeps catalog order.
	require.Len(t, movies, 2)
	assert.Equal(t, "Casino", movies[0].Title)
	assert.Equal(t, "Before Sunrise", movies[1].Title)
}

func TestEngine_Recommend_CatalogOrderWithoutRankingColumns(t *testing.T) {
	cat := fixtureCatalog()
	cat.HasPopularity = false
	cat.HasVoteAverage = false

	engine := newTestEngine(cat, 8)
	movies, err := engine.Recommend(context.Background(), "angry", 8)
	require.NoError(t, err)

	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Title)
	assert.Equal(t, "Se7en", movies[1].Title)
}

func TestEngine_Recommend_InvalidEmotion(t *testing.T) {
	engine := newTestEngine(fixtureCatalog(), 8)

	_, err := engine.Recommend(context.Background(), "unknown", 8)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_EMOTION", appErr.Code)
}

func TestEngine_Recommend_DefaultLimit(t *testing.T) {
	// Catalog with more drama entries than the default limit.
	cat := &catalog.Catalog{HasPopularity: true}
	for i := 0; i < 12; i++ {
		cat.Movies = append(cat.Movies, movie("Drama", "Drama", float64Ptr(float64(i)), nil))
	}

	engine := newTestEngine(cat, 8)
	movies, err := engine.Recommend(context.Background(), "neutral", 0)
	require.NoError(t, err)
	assert.Len(t, movies, 8)
}

func TestEngine_Recommend_Idempotent(t *testing.T) {
	engine := newTestEngine(fixtureCatalog(), 8)

	first, err := engine.Recommend(context.Background(), "fear", 8)
	require.NoError(t, err)
	second, err := engine.Recommend(context.Background(), "fear", 8)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
