package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrasikov/go-filmorate/models"
)

func Test_buildPopularFilmsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildPopularFilmsQuery(10)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM films AS f")
	assert.Contains(t, query, "JOIN mpa AS m ON f.mpa_id = m.mpa_id")
	assert.Contains(t, query, "COUNT(user_id) AS likes_qty")
	assert.Contains(t, query, "GROUP BY film_id")
	assert.Contains(t, query, "ORDER BY top.likes_qty DESC NULLS LAST")
	assert.Contains(t, query, "LIMIT 10")

	// the subquery limit is the only bound parameter
	require.Len(t, args, 1)
	assert.Equal(t, 10, args[0])
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}

func Test_buildFilmGenresInsert_MultiRow(t *testing.T) {
	genres := []models.Genre{{ID: 1}, {ID: 4}, {ID: 6}}

	query, args, err := buildFilmGenresInsert(7, genres)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO film_genre")
	assert.Contains(t, query, "(film_id,genre_id)")
	assert.Contains(t, query, "($1,$2),($3,$4),($5,$6)")

	require.Len(t, args, 6)
	assert.Equal(t, []any{int64(7), 1, int64(7), 4, int64(7), 6}, args)
}

func Test_buildFilmGenresInsert_EmptyGenres(t *testing.T) {
	query, args, err := buildFilmGenresInsert(7, nil)
	require.NoError(t, err)

	assert.Empty(t, query)
	assert.Nil(t, args)
}
