package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestPostgresSource_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"title", "genres", "popularity", "vote_average", "attrs"}).
		AddRow("Toy Story", "Animation, Comedy", float64Ptr(21.9), float64Ptr(7.9), []byte(`{"overview":"A cowboy doll"}`)).
		AddRow("Sunrise", "Drama", (*float64)(nil), (*float64)(nil), []byte(nil))

	mock.ExpectQuery("SELECT title, genres, popularity, vote_average, attrs").
		WillReturnRows(rows)

	cat, err := NewPostgresSource(mock).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, cat.Movies, 2)
	assert.True(t, cat.HasPopularity)
	assert.True(t, cat.HasVoteAverage)

	first := cat.Movies[0]
	assert.Equal(t, "Toy Story", first.Title)
	require.NotNil(t, first.Popularity)
	assert.Equal(t, 21.9, *first.Popularity)
	assert.Equal(t, "A cowboy doll", first.Extra["overview"])

	second := cat.Movies[1]
	assert.Nil(t, second.Popularity)
	assert.Empty(t, second.Extra)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Load_NoRankingValues(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"title", "genres", "popularity", "vote_average", "attrs"}).
		AddRow("Sunrise", "Drama", (*float64)(nil), (*float64)(nil), []byte(`{}`))

	mock.ExpectQuery("SELECT title, genres, popularity, vote_average, attrs").
		WillReturnRows(rows)

	cat, err := NewPostgresSource(mock).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, cat.HasPopularity)
	assert.False(t, cat.HasVoteAverage)
}

func TestPostgresSource_Load_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title, genres, popularity, vote_average, attrs").
		WillReturnError(errors.New("connection refused"))

	_, err = NewPostgresSource(mock).Load(context.Background())
	assert.Error(t, err)
}
