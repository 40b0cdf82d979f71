package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := protected.Group("/interviews")
	{
		interviews.GET("", handler.List)
		interviews.GET("/search", handler.Search)
		interviews.GET("/upcoming", handler.Upcoming)
		interviews.GET("/:id", handler.Get)
		interviews.POST("", handler.Create)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
	}
}

type InterviewRequest struct {
	ID      string `json:"id"`
	Format  string `json:"format" binding:"required"`
	Round   string `json:"round"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
	Company string `json:"company"`
}

func (r *InterviewRequest) toDomain() (*domain.Interview, error) {
	iv := &domain.Interview{
		Format:  r.Format,
		Round:   r.Round,
		Date:    r.Date,
		Time:    r.Time,
		Company: r.Company,
	}
	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, apperror.BadRequest("Invalid ID format")
		}
		iv.ID = id
	}
	return iv, nil
}

// List godoc
// @Summary      List the caller's interviews
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviews [get]
// @Security     BearerAuth
func (h *InterviewHandler) List(c *gin.Context) {
	interviews, err := h.interviewUC.ListInterviews(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview list", interviews)
}

// Search godoc
// @Summary      Search the caller's interviews
// @Tags         interviews
// @Produce      json
// @Param        format   query  string  false  "Format substring"
// @Param        round    query  string  false  "Round substring"
// @Param        date     query  string  false  "Date (exact, YYYY-MM-DD)"
// @Param        time     query  string  false  "Time (exact, HH:MM)"
// @Param        company  query  string  false  "Company substring"
// @Success      200  {object}  response.Response
// @Router       /interviews/search [get]
// @Security     BearerAuth
func (h *InterviewHandler) Search(c *gin.Context) {
	var filter domain.InterviewFilter
	if v, ok := c.GetQuery("format"); ok {
		filter.Format = &v
	}
	if v, ok := c.GetQuery("round"); ok {
		filter.Round = &v
	}
	if v, ok := c.GetQuery("date"); ok {
		filter.Date = &v
	}
	if v, ok := c.GetQuery("time"); ok {
		filter.Time = &v
	}
	if v, ok := c.GetQuery("company"); ok {
		filter.Company = &v
	}

	interviews, err := h.interviewUC.SearchInterviews(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview search results", interviews)
}

// Upcoming godoc
// @Summary      List upcoming interviews
// @Description  Interviews dated strictly after today
// @Tags         interviews
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /interviews/upcoming [get]
// @Security     BearerAuth
func (h *InterviewHandler) Upcoming(c *gin.Context) {
	interviews, err := h.interviewUC.UpcomingInterviews(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upcoming interviews", interviews)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	interview, err := h.interviewUC.GetInterview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview details", interview)
}

// Create godoc
// @Summary      Create an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      InterviewRequest  true  "Interview JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /interviews [post]
// @Security     BearerAuth
func (h *InterviewHandler) Create(c *gin.Context) {
	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.interviewUC.CreateInterview(c.Request.Context(), interview); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Interview created", interview)
}

// Update godoc
// @Summary      Update an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id         path      string            true  "Interview ID"
// @Param        interview  body      InterviewRequest  true  "Interview JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/{id} [put]
// @Security     BearerAuth
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	interview, err := h.interviewUC.UpdateInterview(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview updated successfully", interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.interviewUC.DeleteInterview(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview deleted successfully", nil)
}
