package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// jobSearchVector is the expression behind idx_jobs_fulltext. The predicate
// and the rank below must stay in lockstep with the migration.
const jobSearchVector = "to_tsvector('english', " +
	"coalesce(title,'') || ' ' || coalesce(description,'') || ' ' || " +
	"coalesce(company,'') || ' ' || coalesce(location,''))"

const (
	jobSearchPredicate = jobSearchVector + " @@ plainto_tsquery('english', ?)"
	jobSearchRank      = "ts_rank(" + jobSearchVector + ", plainto_tsquery('english', ?))"
)

// SortField is one (column, direction) pair of an explicit sort.
type SortField struct {
	Column string
	Desc   bool
}

// JobSearchCriteria is the validated filter/sort/page specification executed
// against the jobs table. A non-empty Query switches the search into
// text-ranked mode; Sort is ignored there.
type JobSearchCriteria struct {
	Location  string
	Company   string
	MinSalary *float64
	MaxSalary *float64
	From      *time.Time
	To        *time.Time
	Query     string
	Sort      []SortField
	Page      int
	Limit     int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Job, error)
	Delete(db *gorm.DB, id string) error
	Search(db *gorm.DB, criteria JobSearchCriteria) ([]models.Job, int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	if job.DatePosted.IsZero() {
		job.DatePosted = time.Now().UTC()
	}
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Update merges fields into the stored record and returns the updated row.
// Callers pass only the columns the client actually supplied.
func (r *JobRepositoryImpl) Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Job, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrJobNotFound
		}
	}
	return r.FindByID(db, id)
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Search runs the count and page queries for the given criteria and returns
// the page plus the total number of matching rows.
func (r *JobRepositoryImpl) Search(db *gorm.DB, c JobSearchCriteria) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if c.Location != "" {
		query = query.Where("location = ?", c.Location)
	}
	if c.Company != "" {
		query = query.Where("company = ?", c.Company)
	}
	if c.MinSalary != nil {
		query = query.Where("salary >= ?", *c.MinSalary)
	}
	if c.MaxSalary != nil {
		query = query.Where("salary <= ?", *c.MaxSalary)
	}
	if c.From != nil {
		query = query.Where("created_at >= ?", *c.From)
	}
	if c.To != nil {
		query = query.Where("created_at <= ?", *c.To)
	}
	if c.Query != "" {
		query = query.Where(jobSearchPredicate, c.Query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if c.Query != "" {
		// Text-ranked mode: relevance always wins over explicit sort.
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{
				SQL:                jobSearchRank + " DESC",
				Vars:               []interface{}{c.Query},
				WithoutParentheses: true,
			},
		})
	} else {
		for _, s := range c.Sort {
			query = query.Order(clause.OrderByColumn{
				Column: clause.Column{Name: s.Column},
				Desc:   s.Desc,
			})
		}
	}

	offset := (c.Page - 1) * c.Limit

	var jobs []models.Job
	if err := query.Offset(offset).Limit(c.Limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
