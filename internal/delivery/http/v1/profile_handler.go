package v1

import (
	"net/http"

	"go-jobtracker-backend/internal/delivery/http/response"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/current", handler.GetCurrent)
		profiles.PUT("/current", handler.UpdateCurrent)
		profiles.POST("", handler.Create)
		profiles.GET("/:id", handler.GetByID)
		profiles.PUT("/:id", handler.UpdateByID)
	}
}

type ProfileRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	Location string   `json:"location"`
	Phone    string   `json:"phone"`
	Skills   []string `json:"skills"`
}

func (r *ProfileRequest) toDomain() *domain.Profile {
	profile := &domain.Profile{
		Name:     r.Name,
		Email:    r.Email,
		Title:    r.Title,
		Bio:      r.Bio,
		Location: r.Location,
		Skills:   r.Skills,
	}
	if r.Phone != "" {
		profile.Phone = &r.Phone
	}
	return profile
}

// GetCurrent godoc
// @Summary      Get the caller's profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/current [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCurrent(c *gin.Context) {
	profile, err := h.profileUC.GetCurrentProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile details", profile)
}

// UpdateCurrent godoc
// @Summary      Update the caller's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/current [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateCurrent(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateCurrentProfile(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// Create godoc
// @Summary      Create the caller's profile
// @Description  One profile per account; the profile id is the account id
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /profiles [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := req.toDomain()
	if err := h.profileUC.CreateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// GetByID godoc
// @Summary      Get a profile by id (admin or owner)
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	profile, err := h.profileUC.GetProfileByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile details", profile)
}

// UpdateByID godoc
// @Summary      Update a profile by id (admin or owner)
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Profile ID"
// @Param        profile  body      ProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfileByID(c.Request.Context(), id, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
