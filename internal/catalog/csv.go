package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/moodflix/moodflix/internal/domain"
)

// CSVSource reads the catalog from a local CSV file (TMDB export schema:
// a genres column plus arbitrary descriptive columns).
type CSVSource struct {
	path string
}

// NewCSVSource creates a source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load parses the whole file. Columns the engine understands (title,
// genres, popularity, vote_average) become typed fields; everything else
// is kept as strings so records stay complete in responses.
func (s *CSVSource) Load(ctx context.Context) (*Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(strings.ToLower(name))
	}

	if !hasColumn(columns, "genres") {
		return nil, fmt.Errorf("catalog %s: missing required genres column", s.path)
	}

	catalog := &Catalog{
		HasPopularity:  hasColumn(columns, "popularity"),
		HasVoteAverage: hasColumn(columns, "vote_average"),
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		catalog.Movies = append(catalog.Movies, parseRow(columns, record))
	}

	return catalog, nil
}

func parseRow(columns, record []string) domain.Movie {
	movie := domain.Movie{Extra: make(map[string]string)}

	for i, col := range columns {
		if i >= len(record) {
			break
		}
		value := record[i]

		switch col {
		case "title":
			movie.Title = value
		case "genres":
			movie.Genres = value
		case "popularity":
			if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				movie.Popularity = &f
			} else {
				movie.Extra[col] = value
			}
		case "vote_average":
			if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				movie.VoteAverage = &f
			} else {
				movie.Extra[col] = value
			}
		default:
			movie.Extra[col] = value
		}
	}

	return movie
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
