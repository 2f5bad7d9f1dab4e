package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50

	// maxPage keeps page*limit and the store offset far from integer
	// overflow for any permitted limit.
	maxPage = math.MaxInt32
)

// sortColumns whitelists the sortable fields and maps the public names onto
// table columns. Anything else in the sort parameter is skipped.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"datePosted": "date_posted",
	"salary":     "salary",
	"title":      "title",
	"company":    "company",
	"location":   "location",
}

// defaultSort is newest-first when the client gave no usable sort.
var defaultSort = []repositories.SortField{{Column: "created_at", Desc: true}}

// BuildJobSearchCriteria converts the raw listing parameters into a validated
// criteria. Two modes exist and are mutually exclusive: a non-empty q puts the
// search into text-ranked mode and the sort parameter is discarded; otherwise
// the explicit sort (default -createdAt) applies. Unparsable numeric and date
// filters are treated as absent rather than rejected.
func BuildJobSearchCriteria(req *dto.ListJobsRequest) repositories.JobSearchCriteria {
	criteria := repositories.JobSearchCriteria{
		Location:  strings.TrimSpace(req.Location),
		Company:   strings.TrimSpace(req.Company),
		MinSalary: parseFloat(req.MinSalary),
		MaxSalary: parseFloat(req.MaxSalary),
		From:      parseTime(req.From),
		To:        parseUpperTime(req.To),
		Page:      parsePage(req.Page),
		Limit:     parseLimit(req.Limit),
	}

	if q := strings.TrimSpace(req.Query); q != "" {
		criteria.Query = q
		return criteria
	}

	criteria.Sort = parseSort(req.Sort)
	return criteria
}

// parseFloat treats empty or unparsable input as an absent filter.
func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseTime accepts RFC3339 timestamps or bare dates; anything else is absent.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// parseUpperTime is parseTime for the top of a range: a bare date extends to
// the last instant of that day, so to=2024-06-30 covers the whole named day.
func parseUpperTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.Add(24*time.Hour - time.Nanosecond)
		return &t
	}
	return nil
}

// parsePage clamps into [1, maxPage]; non-numeric input falls back to the
// default.
func parsePage(s string) int {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultPage
	}
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// parseLimit clamps into [1, maxLimit]; non-numeric input falls back to the
// default. Oversized limits are clamped, never rejected.
func parseLimit(s string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// parseSort parses the comma-separated sort list. A leading '-' means
// descending. Unknown fields are dropped; an empty result falls back to
// newest-first.
func parseSort(s string) []repositories.SortField {
	var fields []repositories.SortField
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		column, ok := sortColumns[name]
		if !ok {
			continue
		}
		fields = append(fields, repositories.SortField{Column: column, Desc: desc})
	}
	if len(fields) == 0 {
		return defaultSort
	}
	return fields
}

// BuildJobListResponse computes the pagination metadata for a fetched page.
// totalPages never drops below 1, even for an empty collection.
func BuildJobListResponse(jobs []models.Job, total int64, page, limit int) *dto.JobListResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return &dto.JobListResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    int64(page)*int64(limit) < total,
		Data:       jobs,
	}
}
