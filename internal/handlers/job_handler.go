package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes binds the job endpoints. Listing and single reads are
// public; create and update require authentication, delete is admin-only.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)

		jobs.POST("", middleware.AuthMiddleware(), h.CreateJob)
		jobs.PUT("/:id", middleware.AuthMiddleware(), h.UpdateJob)
		jobs.DELETE("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), h.DeleteJob)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !h.BindQuery(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.ListJobs(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.CreateJob(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindStrictJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.UpdateJob(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.jobService.DeleteJob(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
