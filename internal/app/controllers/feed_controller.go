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

// commentsDefaultPageSize is the default page size for comment listings
const commentsDefaultPageSize = 20

// FeedController handles the feed, posts and comments
type FeedController struct {
	feedService services.FeedService
	logger      zerolog.Logger
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService services.FeedService, logger zerolog.Logger) *FeedController {
	return &FeedController{
		feedService: feedService,
		logger:      logger,
	}
}

// Feed handles GET /api/feed
func (c *FeedController) Feed(ctx *gin.Context) {
	userID, err := viewerID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, helpers.DefaultPageSize)

	resp, err := c.feedService.GetFeed(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreatePost handles POST /api/posts
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id and content are required"))
		return
	}

	resp, err := c.feedService.CreatePost(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// DeletePost handles DELETE /api/posts/:id
func (c *FeedController) DeletePost(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	if err := c.feedService.DeletePost(ctx.Request.Context(), postID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Post deleted successfully"})
}

// ToggleLike handles POST /api/posts/:id/like
func (c *FeedController) ToggleLike(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	resp, err := c.feedService.ToggleLike(ctx.Request.Context(), postID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListComments handles GET /api/posts/:id/comments
func (c *FeedController) ListComments(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx, commentsDefaultPageSize)

	resp, err := c.feedService.GetComments(ctx.Request.Context(), postID, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddComment handles POST /api/posts/:id/comments
func (c *FeedController) AddComment(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id and content are required"))
		return
	}

	resp, err := c.feedService.AddComment(ctx.Request.Context(), postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId
func (c *FeedController) DeleteComment(ctx *gin.Context) {
	postID, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	commentID, err := pathID(ctx, "commentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UserIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	if err := c.feedService.DeleteComment(ctx.Request.Context(), postID, commentID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Comment deleted successfully"})
}
