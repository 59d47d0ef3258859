package container

import (
	"context"
	"fmt"
	"time"

	"github.com/tony-ross/netflix-catalog/internal/config"
	"github.com/tony-ross/netflix-catalog/internal/graph"
	"github.com/tony-ross/netflix-catalog/internal/infrastructure/database"
	"github.com/tony-ross/netflix-catalog/pkg/hash"
	"github.com/tony-ross/netflix-catalog/pkg/logger"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
	movieHandler "github.com/tony-ross/netflix-catalog/internal/domains/movie/handler"
	movieRepo "github.com/tony-ross/netflix-catalog/internal/domains/movie/repository"
	movieService "github.com/tony-ross/netflix-catalog/internal/domains/movie/service"
	"github.com/tony-ross/netflix-catalog/internal/domains/review"
	reviewHandler "github.com/tony-ross/netflix-catalog/internal/domains/review/handler"
	reviewRepo "github.com/tony-ross/netflix-catalog/internal/domains/review/repository"
	reviewService "github.com/tony-ross/netflix-catalog/internal/domains/review/service"
	"github.com/tony-ross/netflix-catalog/internal/domains/user"
	userHandler "github.com/tony-ross/netflix-catalog/internal/domains/user/handler"
	userRepo "github.com/tony-ross/netflix-catalog/internal/domains/user/repository"
	userService "github.com/tony-ross/netflix-catalog/internal/domains/user/service"
)

// Container holds the full dependency graph of the application.
// Everything in here is a singleton built once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	MovieRepo  movie.Repository
	ReviewRepo review.Repository
	UserRepo   user.Repository

	MovieService  movie.Service
	ReviewService review.Service
	UserService   user.Service

	MovieHandler  *movieHandler.MovieHandler
	ReviewHandler *reviewHandler.ReviewHandler
	UserHandler   *userHandler.UserHandler
	GraphHandler  *graph.Handler
}

// NewContainer builds the dependency graph in order: config, database,
// repositories, services, handlers. Any failure aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"database": cfg.Database.Database,
	})

	c.MovieRepo = movieRepo.NewPostgresMovieRepository(db.Pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(db.Pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(db.Pool)

	c.MovieService = movieService.NewMovieService(c.MovieRepo)
	// The review service checks referenced movies and users through the
	// narrow ExistsByID interfaces both repositories satisfy.
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.MovieRepo, c.UserRepo)
	c.UserService = userService.NewUserService(c.UserRepo, hash.NewBcryptHasher())

	c.MovieHandler = movieHandler.NewMovieHandler(c.MovieService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	schema, err := graph.NewSchema(c.MovieService)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	c.GraphHandler = graph.NewHandler(schema)

	return c, nil
}

// Cleanup releases container resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connections closed", nil)
	}
}
