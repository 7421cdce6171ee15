package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/moodflix/moodflix/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the source needs, kept narrow so
// tests can substitute a mock.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads the catalog from a movies table managed by the
// migrations under internal/database.
type PostgresSource struct {
	pool PgxPool
}

// NewPostgresSource creates a source backed by the given pool.
func NewPostgresSource(pool PgxPool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load reads every movie row in insertion order.
func (s *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	query := `
		SELECT title, genres, popularity, vote_average, attrs
		FROM movies
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	catalog := &Catalog{}

	for rows.Next() {
		var (
			movie domain.Movie
			attrs []byte
		)

		if err := rows.Scan(&movie.Title, &movie.Genres, &movie.Popularity, &movie.VoteAverage, &attrs); err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}

		movie.Extra = make(map[string]string)
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &movie.Extra); err != nil {
				return nil, fmt.Errorf("decode movie attrs: %w", err)
			}
		}

		if movie.Popularity != nil {
			catalog.HasPopularity = true
		}
		if movie.VoteAverage != nil {
			catalog.HasVoteAverage = true
		}

		catalog.Movies = append(catalog.Movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return catalog, nil
}
