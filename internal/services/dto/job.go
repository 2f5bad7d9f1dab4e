package dto

import "jobboard_backend/internal/models"

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// UpdateJobRequest is the explicit patch shape for PUT /jobs/:id. Every field
// is optional; unknown keys are rejected at decode time (strict binding).
type UpdateJobRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Company     *string  `json:"company" validate:"omitempty,min=1"`
	Location    *string  `json:"location" validate:"omitempty,min=1"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// Fields returns the column map for the fields actually present in the patch.
func (r *UpdateJobRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Company != nil {
		fields["company"] = *r.Company
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	return fields
}

// ListJobsRequest carries the raw query parameters of GET /jobs. All values
// arrive as strings; the query builder owns the fallible parsing.
type ListJobsRequest struct {
	Location  string `form:"location"`
	Company   string `form:"company"`
	MinSalary string `form:"minSalary"`
	MaxSalary string `form:"maxSalary"`
	From      string `form:"from"`
	To        string `form:"to"`
	Query     string `form:"q"`
	Sort      string `form:"sort"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// JobListResponse is the paginated listing envelope.
type JobListResponse struct {
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	Total      int64        `json:"total"`
	TotalPages int          `json:"totalPages"`
	HasPrev    bool         `json:"hasPrev"`
	HasNext    bool         `json:"hasNext"`
	Data       []models.Job `json:"data"`
}

type DeleteJobResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
