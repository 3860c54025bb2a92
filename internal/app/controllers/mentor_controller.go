package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// MentorController handles mentor listing and follow operations
type MentorController struct {
	mentorService services.MentorService
	logger        zerolog.Logger
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService, logger zerolog.Logger) *MentorController {
	return &MentorController{
		mentorService: mentorService,
		logger:        logger,
	}
}

// List handles GET /api/mentors
func (c *MentorController) List(ctx *gin.Context) {
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := ctx.DefaultQuery("filter", repositories.MentorFilterAll)

	resp, err := c.mentorService.GetMentors(ctx.Request.Context(), userID, filter, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ToggleFollow handles POST /api/mentors/:id/follow
func (c *MentorController) ToggleFollow(ctx *gin.Context) {
	mentorID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	resp, err := c.mentorService.ToggleFollow(ctx.Request.Context(), mentorID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
