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

// messagesDefaultPageSize is the default page size for message listings
const messagesDefaultPageSize = 50

// MessageController handles conversations and direct messages
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// CreateConversation handles POST /api/conversations
func (c *MessageController) CreateConversation(ctx *gin.Context) {
	var req dto.CreateConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user1_id and user2_id are required"))
		return
	}

	resp, created, err := c.messageService.CreateOrGetConversation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, resp)
}

// ListConversations handles GET /api/conversations
func (c *MessageController) ListConversations(ctx *gin.Context) {
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.messageService.GetConversations(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListMessages handles GET /api/conversations/:id/messages
func (c *MessageController) ListMessages(ctx *gin.Context) {
	conversationID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, messagesDefaultPageSize)

	resp, err := c.messageService.GetMessages(ctx.Request.Context(), conversationID, userID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SendMessage handles POST /api/conversations/:id/messages
func (c *MessageController) SendMessage(ctx *gin.Context) {
	conversationID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("sender_id and content are required"))
		return
	}

	resp, err := c.messageService.SendMessage(ctx.Request.Context(), conversationID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// MarkMessageRead handles PUT /api/messages/:id/read
func (c *MessageController) MarkMessageRead(ctx *gin.Context) {
	messageID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	if err := c.messageService.MarkMessageRead(ctx.Request.Context(), messageID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Message marked as read"})
}

// DeleteConversation handles DELETE /api/conversations/:id
func (c *MessageController) DeleteConversation(ctx *gin.Context) {
	conversationID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	if err := c.messageService.DeleteConversation(ctx.Request.Context(), conversationID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Conversation deleted successfully"})
}
