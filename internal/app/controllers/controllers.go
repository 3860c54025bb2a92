// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// Controllers bundles all controller instances
type Controllers struct {
	AuthController      *AuthController
	CommunityController *CommunityController
	EventController     *EventController
	MentorController    *MentorController
	FeedController      *FeedController
	MessageController   *MessageController
	UploadController    *UploadController
	DiscoverController  *DiscoverController
}

// NewControllers wires all controllers to the shared services
func NewControllers(svcs *services.Services, storage filestorage.Storage, logger zerolog.Logger) *Controllers {
	return &Controllers{
		AuthController:      NewAuthController(svcs.AuthService, logger.With().Str("controller", "auth").Logger()),
		CommunityController: NewCommunityController(svcs.CommunityService, logger.With().Str("controller", "community").Logger()),
		EventController:     NewEventController(svcs.EventService, logger.With().Str("controller", "event").Logger()),
		MentorController:    NewMentorController(svcs.MentorService, logger.With().Str("controller", "mentor").Logger()),
		FeedController:      NewFeedController(svcs.FeedService, logger.With().Str("controller", "feed").Logger()),
		MessageController:   NewMessageController(svcs.MessageService, logger.With().Str("controller", "message").Logger()),
		UploadController:    NewUploadController(storage, logger.With().Str("controller", "upload").Logger()),
		DiscoverController:  NewDiscoverController(svcs.DiscoverService, logger.With().Str("controller", "discover").Logger()),
	}
}

// viewerID reads the required user_id query parameter
func viewerID(c *gin.Context) (int64, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return 0, apperrors.NewBadRequestError("user_id is required")
	}
	id, err := helpers.ParseID(raw)
	if err != nil {
		return 0, apperrors.NewBadRequestError("user_id must be a number")
	}
	return id, nil
}

// pathID reads a numeric path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := helpers.ParseID(c.Param(name))
	if err != nil {
		return 0, apperrors.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// optionalQuery returns a pointer to the query value, nil when absent
func optionalQuery(c *gin.Context, name string) *string {
	if value := c.Query(name); value != "" {
		return &value
	}
	return nil
}
