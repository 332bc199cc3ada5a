package repositories

import (
	"math"
	"net/url"
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// sortableUserColumns is the allow-list for ORDER BY on the users listing.
var sortableUserColumns = map[string]struct{}{
	"name":       {},
	"email":      {},
	"age":        {},
	"created_at": {},
}

// UserListQuery describes a filtered, sorted and paginated users listing.
type UserListQuery struct {
	City   string
	AgeMin *int
	AgeMax *int
	Sort   string
	Desc   bool
	Page   int
	Limit  int
}

// ParseUserListQuery reads the listing parameters from a query string.
// Non-numeric numbers are treated as absent, unknown sort columns are dropped.
func ParseUserListQuery(values url.Values) UserListQuery {
	q := UserListQuery{
		City:   values.Get("city"),
		AgeMin: atoiPtr(values.Get("age_min")),
		AgeMax: atoiPtr(values.Get("age_max")),
		Desc:   values.Get("order") == "desc",
		Page:   defaultPage,
		Limit:  defaultLimit,
	}
	if _, ok := sortableUserColumns[values.Get("sort")]; ok {
		q.Sort = values.Get("sort")
	}
	if page := atoiPtr(values.Get("page")); page != nil && *page != 0 {
		q.Page = *page
	}
	if limit := atoiPtr(values.Get("limit")); limit != nil && *limit > 0 {
		q.Limit = *limit
	}
	return q
}

// Offset is the number of rows skipped before the requested page.
func (q UserListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// TotalPages is the number of pages needed to show total rows.
func (q UserListQuery) TotalPages(total int64) int64 {
	if q.Limit <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(total) / float64(q.Limit)))
}

func (q UserListQuery) predicates() []sq.Sqlizer {
	var preds []sq.Sqlizer
	if q.City != "" {
		preds = append(preds, sq.Eq{"city": q.City})
	}
	if q.AgeMin != nil {
		preds = append(preds, sq.GtOrEq{"age": *q.AgeMin})
	}
	if q.AgeMax != nil {
		preds = append(preds, sq.LtOrEq{"age": *q.AgeMax})
	}
	return preds
}

func (q UserListQuery) where(b sq.SelectBuilder) sq.SelectBuilder {
	for _, p := range q.predicates() {
		b = b.Where(p)
	}
	return b
}

// SelectSQL renders the page query with positional placeholders.
func (q UserListQuery) SelectSQL() (string, []interface{}, error) {
	b := q.where(sq.Select("*").From("users"))
	if _, ok := sortableUserColumns[q.Sort]; ok {
		dir := "ASC"
		if q.Desc {
			dir = "DESC"
		}
		b = b.OrderBy(q.Sort + " " + dir)
	}
	return b.Suffix("LIMIT ? OFFSET ?", q.Limit, q.Offset()).ToSql()
}

// CountSQL renders the total-count query sharing the page query's filters.
func (q UserListQuery) CountSQL() (string, []interface{}, error) {
	return q.where(sq.Select("COUNT(*) AS total").From("users")).ToSql()
}

func atoiPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
