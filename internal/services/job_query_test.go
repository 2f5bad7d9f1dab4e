package services

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

func TestBuildJobSearchCriteria_Defaults(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{})

	assert.Equal(t, 1, criteria.Page)
	assert.Equal(t, 10, criteria.Limit)
	assert.Empty(t, criteria.Query)
	assert.Nil(t, criteria.MinSalary)
	assert.Nil(t, criteria.MaxSalary)
	assert.Nil(t, criteria.From)
	assert.Nil(t, criteria.To)
	require.Len(t, criteria.Sort, 1)
	assert.Equal(t, "created_at", criteria.Sort[0].Column)
	assert.True(t, criteria.Sort[0].Desc)
}

func TestBuildJobSearchCriteria_Filters(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		Location:  "Berlin",
		Company:   "ACME",
		MinSalary: "50000",
		MaxSalary: "90000.50",
	})

	assert.Equal(t, "Berlin", criteria.Location)
	assert.Equal(t, "ACME", criteria.Company)
	require.NotNil(t, criteria.MinSalary)
	assert.Equal(t, 50000.0, *criteria.MinSalary)
	require.NotNil(t, criteria.MaxSalary)
	assert.Equal(t, 90000.5, *criteria.MaxSalary)
}

func TestBuildJobSearchCriteria_UnparsableNumbersTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		MinSalary: "lots",
		MaxSalary: "1e3x",
		Page:      "first",
		Limit:     "many",
	})

	assert.Nil(t, criteria.MinSalary)
	assert.Nil(t, criteria.MaxSalary)
	assert.Equal(t, 1, criteria.Page)
	assert.Equal(t, 10, criteria.Limit)
}

func TestBuildJobSearchCriteria_InvertedSalaryRangeIsKept(t *testing.T) {
	t.Parallel()

	// min > max stays a literal inclusive range; the store just matches
	// nothing. Never an error.
	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		MinSalary: "50000",
		MaxSalary: "40000",
	})

	require.NotNil(t, criteria.MinSalary)
	require.NotNil(t, criteria.MaxSalary)
	assert.Greater(t, *criteria.MinSalary, *criteria.MaxSalary)
}

func TestBuildJobSearchCriteria_DateBounds(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		From: "2024-01-15",
		To:   "2024-06-30T23:00:00Z",
	})

	require.NotNil(t, criteria.From)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), criteria.From.UTC())
	require.NotNil(t, criteria.To)
	assert.Equal(t, time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC), criteria.To.UTC())

	// A bare-date upper bound covers the whole named day.
	bareTo := BuildJobSearchCriteria(&dto.ListJobsRequest{To: "2024-06-30"})
	require.NotNil(t, bareTo.To)
	assert.Equal(t,
		time.Date(2024, 6, 30, 23, 59, 59, 999999999, time.UTC),
		bareTo.To.UTC())

	// One-sided ranges constrain one side only.
	oneSided := BuildJobSearchCriteria(&dto.ListJobsRequest{From: "2024-01-15"})
	assert.NotNil(t, oneSided.From)
	assert.Nil(t, oneSided.To)

	// Garbage dates are treated as absent.
	garbage := BuildJobSearchCriteria(&dto.ListJobsRequest{From: "yesterday"})
	assert.Nil(t, garbage.From)
}

func TestBuildJobSearchCriteria_PageAndLimitClamping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"0", "0", 1, 1},
		{"-3", "-10", 1, 1},
		{"2", "25", 2, 25},
		{"1", "50", 1, 50},
		{"1", "51", 1, 50},
		{"1", "1000", 1, 50},
		{"", "", 1, 10},
		{"2147483647", "50", math.MaxInt32, 50},
		{"288230376151711745", "50", math.MaxInt32, 50},
	}

	for _, tc := range cases {
		criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{Page: tc.page, Limit: tc.limit})
		assert.Equal(t, tc.wantPage, criteria.Page, "page=%q", tc.page)
		assert.Equal(t, tc.wantLimit, criteria.Limit, "limit=%q", tc.limit)
	}
}

func TestBuildJobSearchCriteria_HugePageDoesNotOverflow(t *testing.T) {
	t.Parallel()

	// A page far beyond the collection must still yield a non-negative store
	// offset and hasNext=false, never wrap around.
	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		Page:  "288230376151711745",
		Limit: "50",
	})

	offset := (criteria.Page - 1) * criteria.Limit
	assert.GreaterOrEqual(t, offset, 0)

	resp := BuildJobListResponse(nil, 10, criteria.Page, criteria.Limit)
	assert.False(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
	assert.Empty(t, resp.Data)
}

func TestBuildJobSearchCriteria_SortParsing(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{Sort: "-salary,title,datePosted"})

	require.Len(t, criteria.Sort, 3)
	assert.Equal(t, repositories.SortField{Column: "salary", Desc: true}, criteria.Sort[0])
	assert.Equal(t, repositories.SortField{Column: "title", Desc: false}, criteria.Sort[1])
	assert.Equal(t, repositories.SortField{Column: "date_posted", Desc: false}, criteria.Sort[2])
}

func TestBuildJobSearchCriteria_UnknownSortFieldsDropped(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{Sort: "evil;DROP TABLE jobs,-passwordHash"})

	// Nothing usable survives the whitelist, so newest-first applies.
	require.Len(t, criteria.Sort, 1)
	assert.Equal(t, "created_at", criteria.Sort[0].Column)
	assert.True(t, criteria.Sort[0].Desc)

	mixed := BuildJobSearchCriteria(&dto.ListJobsRequest{Sort: "bogus,-salary"})
	require.Len(t, mixed.Sort, 1)
	assert.Equal(t, "salary", mixed.Sort[0].Column)
}

func TestBuildJobSearchCriteria_QueryOverridesSort(t *testing.T) {
	t.Parallel()

	criteria := BuildJobSearchCriteria(&dto.ListJobsRequest{
		Query: "engineer",
		Sort:  "company",
	})

	assert.Equal(t, "engineer", criteria.Query)
	// Text-ranked mode: the explicit sort is discarded entirely.
	assert.Empty(t, criteria.Sort)
}

func TestBuildJobListResponse_TotalPagesProperty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 50, 2},
		{101, 50, 3},
		{7, 1, 7},
	}

	for _, tc := range cases {
		resp := BuildJobListResponse(nil, tc.total, 1, tc.limit)
		assert.Equal(t, tc.wantPages, resp.TotalPages,
			"total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestBuildJobListResponse_HasPrevHasNextProperty(t *testing.T) {
	t.Parallel()

	for page := 1; page <= 5; page++ {
		for limit := 1; limit <= 20; limit += 7 {
			for total := int64(0); total <= 60; total += 13 {
				resp := BuildJobListResponse(nil, total, page, limit)
				label := fmt.Sprintf("page=%d limit=%d total=%d", page, limit, total)
				assert.Equal(t, page > 1, resp.HasPrev, label)
				assert.Equal(t, int64(page)*int64(limit) < total, resp.HasNext, label)
			}
		}
	}
}

func TestBuildJobListResponse_EmptyPageKeepsMetadata(t *testing.T) {
	t.Parallel()

	// A page past the end returns an empty array, not null, with intact
	// metadata.
	resp := BuildJobListResponse(nil, 12, 99, 10)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 99, resp.Page)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
}

func TestBuildJobListResponse_DataPassedThrough(t *testing.T) {
	t.Parallel()

	jobs := []models.Job{{Title: "Engineer"}, {Title: "Designer"}}
	resp := BuildJobListResponse(jobs, 2, 1, 10)

	assert.Equal(t, jobs, resp.Data)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
}
