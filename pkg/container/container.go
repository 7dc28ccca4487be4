package container

import (
	"context"
	"fmt"
	"time"

	"reviewdb-backend/internal/config"
	infraCache "reviewdb-backend/internal/infrastructure/cache"
	"reviewdb-backend/internal/infrastructure/database"
	"reviewdb-backend/internal/infrastructure/queue"
	"reviewdb-backend/pkg/cache"
	"reviewdb-backend/pkg/jwt"
	"reviewdb-backend/pkg/logger"
	"reviewdb-backend/pkg/token"

	"reviewdb-backend/internal/domains/auth"
	authHandler "reviewdb-backend/internal/domains/auth/handler"
	authService "reviewdb-backend/internal/domains/auth/service"
	"reviewdb-backend/internal/domains/category"
	categoryHandler "reviewdb-backend/internal/domains/category/handler"
	categoryRepo "reviewdb-backend/internal/domains/category/repository"
	categoryService "reviewdb-backend/internal/domains/category/service"
	"reviewdb-backend/internal/domains/comment"
	commentHandler "reviewdb-backend/internal/domains/comment/handler"
	commentRepo "reviewdb-backend/internal/domains/comment/repository"
	commentService "reviewdb-backend/internal/domains/comment/service"
	"reviewdb-backend/internal/domains/genre"
	genreHandler "reviewdb-backend/internal/domains/genre/handler"
	genreRepo "reviewdb-backend/internal/domains/genre/repository"
	genreService "reviewdb-backend/internal/domains/genre/service"
	"reviewdb-backend/internal/domains/review"
	reviewHandler "reviewdb-backend/internal/domains/review/handler"
	reviewRepo "reviewdb-backend/internal/domains/review/repository"
	reviewService "reviewdb-backend/internal/domains/review/service"
	"reviewdb-backend/internal/domains/title"
	titleHandler "reviewdb-backend/internal/domains/title/handler"
	titleRepo "reviewdb-backend/internal/domains/title/repository"
	titleService "reviewdb-backend/internal/domains/title/service"
	"reviewdb-backend/internal/domains/user"
	userHandler "reviewdb-backend/internal/domains/user/handler"
	userRepo "reviewdb-backend/internal/domains/user/repository"
	userService "reviewdb-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; everything in it is a singleton.
type Container struct {
	// Infrastructure, shared across all domains.
	Config         *config.Config
	DB             *database.PostgresDB
	Cache          cache.Cache
	JWTManager     *jwt.Manager
	TokenGenerator *token.Generator
	Queue          *queue.Client

	// Repositories (data access).
	CategoryRepo category.Repository
	GenreRepo    genre.Repository
	UserRepo     user.Repository
	TitleRepo    title.Repository
	ReviewRepo   review.Repository
	CommentRepo  comment.Repository

	// Services (business logic).
	CategoryService category.Service
	GenreService    genre.Service
	UserService     user.Service
	AuthService     auth.Service
	TitleService    title.Service
	ReviewService   review.Service
	CommentService  comment.Service

	// HTTP handlers.
	CategoryHandler *categoryHandler.CategoryHandler
	GenreHandler    *genreHandler.GenreHandler
	UserHandler     *userHandler.UserHandler
	AuthHandler     *authHandler.AuthHandler
	TitleHandler    *titleHandler.TitleHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CommentHandler  *commentHandler.CommentHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph, strictly in
// order: config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	c.DB = db
	logger.Info("database connected", nil)

	// ========================================
	// STEP 3: INITIALIZE CACHE AND QUEUE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			// Redis failure is not fatal; repositories fall through to
			// the database when the cache misbehaves.
			logger.Warn("redis connection failed (non-critical)", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)
	c.TokenGenerator = token.NewGenerator(
		cfg.Token.Secret,
		time.Duration(cfg.Token.TTL)*time.Hour,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.initServices()

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	// Category and genre lookups are cache-backed; the rest hit the
	// database directly since ratings must never be stale.
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.TitleRepo = titleRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.AuthService = authService.NewAuthService(
		c.UserRepo,
		c.TokenGenerator,
		c.JWTManager,
		c.Queue,
	)
	c.TitleService = titleService.NewTitleService(
		c.TitleRepo,
		c.CategoryRepo, // cross-domain: resolve category slugs
		c.GenreRepo,    // cross-domain: resolve genre slugs
	)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.TitleRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ReviewRepo)
}

func (c *Container) initHandlers() {
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.TitleHandler = titleHandler.NewTitleHandler(c.TitleService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Warn("failed to close queue client", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleanup completed", nil)
}
