package survey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryNoFilters(t *testing.T) {
	query, args := buildListQuery(Filters{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "LIMIT $1")
	assert.NotContains(t, query, "OFFSET")
	assert.Equal(t, []any{int64(50)}, args)
}

func TestBuildListQueryAllFilters(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildListQuery(Filters{
		Category:    "connecting_pipe",
		StartPoint:  "MH-101",
		EndPoint:    "MH-102",
		CreatedFrom: &from,
		CreatedTo:   &to,
		Limit:       10,
		Offset:      20,
	})

	assert.Contains(t, query, "category = $1")
	assert.Contains(t, query, "start_point = $2")
	assert.Contains(t, query, "end_point = $3")
	assert.Contains(t, query, "created_at >= $4")
	assert.Contains(t, query, "created_at <= $5")
	assert.Contains(t, query, "LIMIT $6")
	assert.Contains(t, query, "OFFSET $7")
	assert.Equal(t, []any{"connecting_pipe", "MH-101", "MH-102", from, to, int64(10), int64(20)}, args)
}

func TestBuildListQueryLimitClamp(t *testing.T) {
	_, args := buildListQuery(Filters{Limit: 5000})
	assert.Equal(t, []any{int64(200)}, args)

	_, args = buildListQuery(Filters{Limit: -1})
	assert.Equal(t, []any{int64(50)}, args)
}
