package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(db *gorm.DB, id string) (*models.Job, error)
	UpdateJob(db *gorm.DB, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, id string) (*dto.DeleteJobResponse, error)
	ListJobs(db *gorm.DB, req *dto.ListJobsRequest) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.Job, error) {
	// The handler validates too; this keeps the service contract independent
	// of the transport.
	if req.Title == "" || req.Description == "" || req.Company == "" || req.Location == "" {
		return nil, apperrors.ErrMissingJobFields
	}
	if req.Salary != nil && *req.Salary < 0 {
		return nil, apperrors.ErrNegativeSalary
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, id string) (*models.Job, error) {
	// Shape check first: no store round-trip for malformed ids.
	if !models.IsValidID(id) {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if !models.IsValidID(id) {
		return nil, apperrors.ErrInvalidJobID
	}
	if req.Salary != nil && *req.Salary < 0 {
		return nil, apperrors.ErrNegativeSalary
	}

	job, err := s.jobRepo.Update(db, id, req.Fields())
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, id string) (*dto.DeleteJobResponse, error) {
	if !models.IsValidID(id) {
		return nil, apperrors.ErrInvalidJobID
	}

	if err := s.jobRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.DeleteJobResponse{Message: "Job deleted", ID: id}, nil
}

// ListJobs executes the filtered, sorted, paginated listing. Out-of-range
// pages return an empty data array with correct metadata, never an error.
func (s *JobServiceImpl) ListJobs(db *gorm.DB, req *dto.ListJobsRequest) (*dto.JobListResponse, error) {
	criteria := BuildJobSearchCriteria(req)

	jobs, total, err := s.jobRepo.Search(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return BuildJobListResponse(jobs, total, criteria.Page, criteria.Limit), nil
}
