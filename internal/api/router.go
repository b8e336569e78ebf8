package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskmate/taskmate-api/internal/api/handler"
	"github.com/taskmate/taskmate-api/internal/api/middleware"
	"github.com/taskmate/taskmate-api/internal/core/auth"
	"github.com/taskmate/taskmate-api/internal/core/service"
	"github.com/taskmate/taskmate-api/internal/infrastructure/db/postgres"
	"github.com/taskmate/taskmate-api/internal/infrastructure/db/redis"
)

// Deps carries the externally constructed collaborators the router wires
// together. Their lifecycle belongs to main, not to this package.
type Deps struct {
	Pool   *pgxpool.Pool
	Redis  *goredis.Client
	Tokens *auth.JWTService
	Hasher *auth.BcryptHasher
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskmate"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(d.Pool)
	taskRepo := postgres.NewTaskRepository(d.Pool)
	categoryRepo := postgres.NewCategoryRepository(d.Pool)
	tagRepo := postgres.NewTagRepository(d.Pool)

	limiter := redis.NewLoginLimiter(d.Redis, 0, 0)

	authService := service.NewAuthService(userRepo, categoryRepo, d.Hasher, d.Tokens, limiter, d.Logger)
	userService := service.NewUserService(userRepo, d.Hasher)
	taskService := service.NewTaskService(taskRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)

	requireAuth := middleware.Auth(d.Tokens)

	api := e.Group("/api")

	// --- Auth routes (no token required) ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// --- User routes ---
	users := api.Group("/users", requireAuth)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.POST("/change-password", userHandler.ChangePassword)
	users.POST("/upload-profile-picture", userHandler.UploadProfilePicture)
	users.DELETE("/profile-picture", userHandler.DeleteProfilePicture)

	// --- Task routes ---
	tasks := api.Group("/tasks", requireAuth)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.PATCH("/:id/duedate", taskHandler.SetDueDate)
	tasks.PATCH("/:id/complete", taskHandler.MarkComplete)

	// --- Category routes ---
	categories := api.Group("/categories", requireAuth)
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	// --- Tag routes ---
	tags := api.Group("/tags", requireAuth)
	tags.POST("", tagHandler.Create)
	tags.GET("", tagHandler.List)
	tags.DELETE("/:id", tagHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Pool, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
