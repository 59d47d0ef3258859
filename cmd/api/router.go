package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tony-ross/netflix-catalog/internal/shared/middleware"
	"github.com/tony-ross/netflix-catalog/internal/shared/response"
	"github.com/tony-ross/netflix-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupMovieRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupReviewRoutes(v1, c)

		v1.POST("/graphql", c.GraphHandler.Execute)
	}

	return router
}

func setupMovieRoutes(v1 *gin.RouterGroup, c *container.Container) {
	movies := v1.Group("/movies")
	{
		movies.GET("", c.MovieHandler.List)
		// Registered before the :id param route so "search" is never
		// parsed as an id.
		movies.GET("/search", c.MovieHandler.Search)
		movies.GET("/:id", c.MovieHandler.GetByID)
		movies.POST("", c.MovieHandler.Create)
		movies.PUT("/:id", c.MovieHandler.Update)
		movies.DELETE("/:id", c.MovieHandler.Delete)
		movies.GET("/:id/reviews", c.ReviewHandler.ListByMovie)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/by-username/:username", c.UserHandler.GetByUsername)
		users.GET("/by-email/:email", c.UserHandler.GetByEmail)
		users.GET("/:id", c.UserHandler.GetByID)
		users.POST("", c.UserHandler.Create)
		users.PUT("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
		users.GET("/:id/reviews", c.ReviewHandler.ListByUser)
	}
}

func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		reviews.POST("", c.ReviewHandler.Create)
		reviews.GET("/:id", c.ReviewHandler.GetByID)
		reviews.PUT("/:id", c.ReviewHandler.Update)
		reviews.DELETE("/:id", c.ReviewHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			response.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, "service healthy", gin.H{
			"status": "up",
		})
	}
}
