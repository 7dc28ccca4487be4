package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/internal/shared/middleware"
	"reviewdb-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupGenreRoutes(v1, c)
		setupTitleRoutes(v1, c)
		setupUserRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", c.AuthHandler.Signup)
		auth.POST("/token", c.AuthHandler.Token)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionCreate, access.ResourceCategory),
			c.CategoryHandler.Create,
		)
		categories.DELETE("/:slug",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionDelete, access.ResourceCategory),
			c.CategoryHandler.Delete,
		)
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.POST("",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionCreate, access.ResourceGenre),
			c.GenreHandler.Create,
		)
		genres.DELETE("/:slug",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionDelete, access.ResourceGenre),
			c.GenreHandler.Delete,
		)
	}
}

// ========================================
// TITLE, REVIEW AND COMMENT ROUTES
// ========================================
func setupTitleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	titles := v1.Group("/titles")
	// A request with no credentials reads fine; a request with a broken
	// token is rejected even on public endpoints.
	titles.Use(middleware.MaybeAuthenticate(c.JWTManager))
	{
		titles.GET("", c.TitleHandler.List)
		titles.GET("/:title_id", c.TitleHandler.Get)
		titles.POST("",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionCreate, access.ResourceTitle),
			c.TitleHandler.Create,
		)
		titles.PATCH("/:title_id",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionUpdate, access.ResourceTitle),
			c.TitleHandler.Update,
		)
		titles.DELETE("/:title_id",
			middleware.Authenticate(c.JWTManager),
			middleware.RequirePermission(access.ActionDelete, access.ResourceTitle),
			c.TitleHandler.Delete,
		)
	}

	// Reviews nest under titles. Ownership checks for update and delete
	// live in the service, so routes only require authentication.
	reviews := titles.Group("/:title_id/reviews")
	{
		reviews.GET("", c.ReviewHandler.List)
		reviews.GET("/:review_id", c.ReviewHandler.Get)
		reviews.POST("", middleware.Authenticate(c.JWTManager), c.ReviewHandler.Create)
		reviews.PATCH("/:review_id", middleware.Authenticate(c.JWTManager), c.ReviewHandler.Update)
		reviews.DELETE("/:review_id", middleware.Authenticate(c.JWTManager), c.ReviewHandler.Delete)
	}

	comments := reviews.Group("/:review_id/comments")
	{
		comments.GET("", c.CommentHandler.List)
		comments.GET("/:comment_id", c.CommentHandler.Get)
		comments.POST("", middleware.Authenticate(c.JWTManager), c.CommentHandler.Create)
		comments.PATCH("/:comment_id", middleware.Authenticate(c.JWTManager), c.CommentHandler.Update)
		comments.DELETE("/:comment_id", middleware.Authenticate(c.JWTManager), c.CommentHandler.Delete)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.Authenticate(c.JWTManager))
	{
		// Self-service profile; "me" is a reserved username.
		users.GET("/me", c.UserHandler.GetMe)
		users.PATCH("/me", c.UserHandler.UpdateMe)

		// Administration endpoints.
		admin := users.Group("")
		admin.Use(middleware.RequirePermission(access.ActionList, access.ResourceUserAdmin))
		{
			admin.GET("", c.UserHandler.List)
			admin.POST("", c.UserHandler.Create)
			admin.GET("/:username", c.UserHandler.Get)
			admin.PATCH("/:username", c.UserHandler.Update)
			admin.DELETE("/:username", c.UserHandler.Delete)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			// Cache is optional; a broken cache does not degrade the API.
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
