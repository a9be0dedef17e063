package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/handler"
	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/service"
	"github.com/taskforge/task-api/internal/infrastructure/config"
	"github.com/taskforge/task-api/internal/infrastructure/db/postgres"
	"github.com/taskforge/task-api/internal/infrastructure/db/redis"
)

// route is one entry of the explicit routing table: method and path mapped
// to a handler plus the roles allowed to call it. An empty role set means
// any authenticated caller.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	roles   []domain.Role
}

// NewRouter wires repositories, services, and handlers, and returns the Echo
// instance with all routes registered.
func NewRouter(db *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	authMW := middleware.Auth(authService)
	signinLimiter := redis.NewFixedWindowLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// --- Public routes ---
	e.POST("/auth/user/signin", authHandler.SignIn, middleware.RateLimit(signinLimiter, log))

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	// The whole authenticated surface lives in this table so the full
	// (method, path) → (handler, roles) mapping is visible in one place.
	admin := []domain.Role{domain.RoleAdmin}
	routes := []route{
		{echo.POST, "/user", userHandler.Create, admin},
		{echo.GET, "/user", userHandler.List, nil},
		{echo.GET, "/user/filter/:name", userHandler.FilterByName, nil},
		{echo.GET, "/user/:id", userHandler.Get, nil},
		{echo.PUT, "/user/:id", userHandler.Update, admin},
		{echo.DELETE, "/user/:id", userHandler.Delete, admin},

		{echo.POST, "/task", taskHandler.Create, nil},
		{echo.GET, "/task", taskHandler.List, nil},
		{echo.GET, "/task/filter", taskHandler.Filter, nil},
		{echo.GET, "/task/filter/:userId", taskHandler.FilterForUser, nil},
		{echo.GET, "/task/:id", taskHandler.Get, nil},
		{echo.PUT, "/task/assign-task/:taskId/:userId", taskHandler.Assign, nil},
		{echo.PUT, "/task/change-task-priority/:taskId", taskHandler.ChangePriority, nil},
		{echo.PUT, "/task/change-task-status/:taskId", taskHandler.ChangeStatus, nil},
		{echo.PUT, "/task/change-task-description/:taskId", taskHandler.ChangeDescription, nil},
		{echo.DELETE, "/task/delete-task/:taskId", taskHandler.Delete, nil},
	}
	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, authMW, middleware.RBAC(r.roles...))
	}

	return e
}
