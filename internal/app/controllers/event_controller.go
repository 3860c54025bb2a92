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

// EventController handles event listing and interest operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List handles GET /api/events
func (c *EventController) List(ctx *gin.Context) {
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)
	filter := ctx.DefaultQuery("filter", services.EventFilterAll)
	search := optionalQuery(ctx, "search")

	resp, err := c.eventService.GetEvents(ctx.Request.Context(), userID, filter, search, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ToggleInterest handles POST /api/events/:id/interest
func (c *EventController) ToggleInterest(ctx *gin.Context) {
	eventID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	resp, err := c.eventService.ToggleInterest(ctx.Request.Context(), eventID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
