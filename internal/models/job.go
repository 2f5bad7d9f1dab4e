package models

import "time"

// Job is a persisted posting. Title, description, company and location are
// always present on a stored record; salary is optional.
type Job struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Company     string    `gorm:"not null;index" json:"company"`
	Location    string    `gorm:"not null;index" json:"location"`
	Salary      *float64  `json:"salary,omitempty"`
	DatePosted  time.Time `json:"datePosted"`
}
