package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
) {
	// Service status endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "CampusHub API",
			"status":  "running",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Uploaded media is served directly from disk
	router.Static("/uploads", uploadsDir)

	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/me", ctrls.AuthController.Me)
			authProtected.PUT("/update-profile", ctrls.AuthController.UpdateProfile)
		}
	}

	// --- Community routes ---
	communities := api.Group("/communities")
	{
		communities.GET("", ctrls.CommunityController.List)
		communities.POST("/:id/follow", ctrls.CommunityController.ToggleFollow)
	}

	// --- Event routes ---
	events := api.Group("/events")
	{
		events.GET("", ctrls.EventController.List)
		events.POST("/:id/interest", ctrls.EventController.ToggleInterest)
	}

	// --- Mentor routes ---
	mentors := api.Group("/mentors")
	{
		mentors.GET("", ctrls.MentorController.List)
		mentors.POST("/:id/follow", ctrls.MentorController.ToggleFollow)
	}

	// --- Feed, posts and comments ---
	api.GET("/feed", ctrls.FeedController.Feed)
	posts := api.Group("/posts")
	{
		posts.POST("", ctrls.FeedController.CreatePost)
		posts.DELETE("/:id", ctrls.FeedController.DeletePost)
		posts.POST("/:id/like", ctrls.FeedController.ToggleLike)
		posts.GET("/:id/comments", ctrls.FeedController.ListComments)
		posts.POST("/:id/comments", ctrls.FeedController.AddComment)
		posts.DELETE("/:id/comments/:commentId", ctrls.FeedController.DeleteComment)
	}

	// --- Messaging routes ---
	conversations := api.Group("/conversations")
	{
		conversations.POST("", ctrls.MessageController.CreateConversation)
		conversations.GET("", ctrls.MessageController.ListConversations)
		conversations.GET("/:id/messages", ctrls.MessageController.ListMessages)
		conversations.POST("/:id/messages", ctrls.MessageController.SendMessage)
		conversations.DELETE("/:id", ctrls.MessageController.DeleteConversation)
	}
	api.PUT("/messages/:id/read", ctrls.MessageController.MarkMessageRead)

	// --- Uploads ---
	api.POST("/upload", ctrls.UploadController.Upload)
	api.DELETE("/upload/:filename", ctrls.UploadController.Delete)

	// --- Discover ---
	api.GET("/discover/stats", ctrls.DiscoverController.Stats)
}
