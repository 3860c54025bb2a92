package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// DiscoverController serves discover-screen statistics
type DiscoverController struct {
	discoverService services.DiscoverService
	logger          zerolog.Logger
}

// NewDiscoverController creates a new DiscoverController
func NewDiscoverController(discoverService services.DiscoverService, logger zerolog.Logger) *DiscoverController {
	return &DiscoverController{
		discoverService: discoverService,
		logger:          logger,
	}
}

// Stats handles GET /api/discover/stats
func (c *DiscoverController) Stats(ctx *gin.Context) {
	resp, err := c.discoverService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
