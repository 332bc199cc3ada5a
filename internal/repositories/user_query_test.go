package repositories_test

import (
	"net/url"
	"testing"

	"todoapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserListQuery_Defaults(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Offset())
	assert.Empty(t, q.City)
	assert.Nil(t, q.AgeMin)
	assert.Nil(t, q.AgeMax)
	assert.Empty(t, q.Sort)
	assert.False(t, q.Desc)
}

func TestParseUserListQuery_NonNumericFallsBack(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{
		"page":    {"abc"},
		"limit":   {"x"},
		"age_min": {"young"},
		"age_max": {""},
	})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Nil(t, q.AgeMin)
	assert.Nil(t, q.AgeMax)
}

func TestParseUserListQuery_SortAllowList(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{"sort": {"age; DROP TABLE users"}, "order": {"desc"}})
	assert.Empty(t, q.Sort)

	sql, _, err := q.SelectSQL()
	require.NoError(t, err)
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "DROP")

	q = repositories.ParseUserListQuery(url.Values{"sort": {"created_at"}, "order": {"DESC"}})
	assert.Equal(t, "created_at", q.Sort)
	assert.False(t, q.Desc, "order is case sensitive")
}

func TestUserListQuery_SelectSQL(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{
		"city":    {"Kraków"},
		"age_min": {"20"},
		"age_max": {"30"},
		"sort":    {"age"},
		"order":   {"desc"},
		"page":    {"3"},
		"limit":   {"5"},
	})

	sql, args, err := q.SelectSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE city = ? AND age >= ? AND age <= ? ORDER BY age DESC LIMIT ? OFFSET ?", sql)
	assert.Equal(t, []interface{}{"Kraków", 20, 30, 5, 10}, args)

	countSQL, countArgs, err := q.CountSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS total FROM users WHERE city = ? AND age >= ? AND age <= ?", countSQL)
	assert.Equal(t, []interface{}{"Kraków", 20, 30}, countArgs)
}

func TestUserListQuery_NoFilters(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{"sort": {"name"}})

	sql, args, err := q.SelectSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users ORDER BY name ASC LIMIT ? OFFSET ?", sql)
	assert.Equal(t, []interface{}{10, 0}, args)

	countSQL, countArgs, err := q.CountSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) AS total FROM users", countSQL)
	assert.Empty(t, countArgs)
}

func TestUserListQuery_Pagination(t *testing.T) {
	q := repositories.ParseUserListQuery(url.Values{"page": {"2"}, "limit": {"1"}})
	assert.Equal(t, 1, q.Offset())
	assert.EqualValues(t, 3, q.TotalPages(3))

	q = repositories.ParseUserListQuery(url.Values{"limit": {"10"}})
	assert.EqualValues(t, 1, q.TotalPages(3))
	assert.EqualValues(t, 0, q.TotalPages(0))

	q = repositories.ParseUserListQuery(url.Values{"page": {"0"}, "limit": {"0"}})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
