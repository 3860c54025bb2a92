package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// CommunityController handles community listing and follow operations
type CommunityController struct {
	communityService services.CommunityService
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		logger:           logger,
	}
}

// List handles GET /api/communities
func (c *CommunityController) List(ctx *gin.Context) {
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	category := optionalQuery(ctx, "category")
	search := optionalQuery(ctx, "search")

	resp, err := c.communityService.GetCommunities(ctx.Request.Context(), userID, category, search, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ToggleFollow handles POST /api/communities/:id/follow
func (c *CommunityController) ToggleFollow(ctx *gin.Context) {
	communityID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	resp, err := c.communityService.ToggleFollow(ctx.Request.Context(), communityID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
