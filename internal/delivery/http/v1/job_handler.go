package v1

import (
	"net/http"
	"strconv"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/search", handler.Search)
		jobs.GET("/status-counts", handler.StatusCounts)
		jobs.GET("/favorites", handler.Favorites)
		jobs.GET("/:id", handler.Get)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.PUT("/:id/favorite", handler.Favorite)
		jobs.PUT("/:id/unfavorite", handler.Unfavorite)
	}
}

type JobRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title" binding:"required"`
	Level     string `json:"level" binding:"required"`
	MinSalary int    `json:"min_salary" binding:"gte=0"`
	MaxSalary int    `json:"max_salary" binding:"gtefield=MinSalary"`
	Location  string `json:"location" binding:"required"`
	Status    string `json:"status" binding:"required"`
	Company   string `json:"company"`
	Favorite  bool   `json:"favorite"`
}

func (r *JobRequest) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		Title:     r.Title,
		Level:     r.Level,
		MinSalary: r.MinSalary,
		MaxSalary: r.MaxSalary,
		Location:  r.Location,
		Status:    r.Status,
		Company:   r.Company,
		Favorite:  r.Favorite,
	}
	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, apperror.BadRequest("Invalid ID format")
		}
		job.ID = id
	}
	return job, nil
}

// List godoc
// @Summary      List the caller's jobs
// @Description  All jobs owned by the caller, most recently modified first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", jobs)
}

// Search godoc
// @Summary      Search the caller's jobs
// @Description  Filter jobs by any combination of optional predicates
// @Tags         jobs
// @Produce      json
// @Param        title      query  string  false  "Title substring"
// @Param        level      query  string  false  "Level (exact)"
// @Param        minSalary  query  int     false  "Minimum salary"
// @Param        maxSalary  query  int     false  "Maximum salary"
// @Param        location   query  string  false  "Location substring"
// @Param        status     query  string  false  "Status (exact)"
// @Param        company    query  string  false  "Company substring"
// @Param        favorite   query  bool    false  "Favorite flag"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs/search [get]
// @Security     BearerAuth
func (h *JobHandler) Search(c *gin.Context) {
	filter, err := jobFilterFromQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job search results", jobs)
}

// StatusCounts godoc
// @Summary      Count jobs per status
// @Description  Counts for every status of the fixed vocabulary, zero included
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/status-counts [get]
// @Security     BearerAuth
func (h *JobHandler) StatusCounts(c *gin.Context) {
	counts, err := h.jobUC.StatusCounts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status counts", counts)
}

func (h *JobHandler) Favorites(c *gin.Context) {
	jobs, err := h.jobUC.ListFavorites(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Favorite jobs", jobs)
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string      true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) Favorite(c *gin.Context) {
	h.setFavorite(c, true)
}

func (h *JobHandler) Unfavorite(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h *JobHandler) setFavorite(c *gin.Context, favorite bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.SetFavorite(c.Request.Context(), id, favorite)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

func jobFilterFromQuery(c *gin.Context) (domain.JobFilter, error) {
	var filter domain.JobFilter

	if v, ok := c.GetQuery("title"); ok {
		filter.Title = &v
	}
	if v, ok := c.GetQuery("level"); ok {
		filter.Level = &v
	}
	if v, ok := c.GetQuery("minSalary"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperror.BadRequest("minSalary must be an integer")
		}
		filter.MinSalary = &n
	}
	if v, ok := c.GetQuery("maxSalary"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperror.BadRequest("maxSalary must be an integer")
		}
		filter.MaxSalary = &n
	}
	if v, ok := c.GetQuery("location"); ok {
		filter.Location = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		filter.Status = &v
	}
	if v, ok := c.GetQuery("company"); ok {
		filter.Company = &v
	}
	if v, ok := c.GetQuery("favorite"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperror.BadRequest("favorite must be a boolean")
		}
		filter.Favorite = &b
	}
	return filter, nil
}
