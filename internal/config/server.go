package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/database/postgres"
	authHandler "github.com/phpedruo/mypocket/internal/api/auth/handler"
	authRepository "github.com/phpedruo/mypocket/internal/api/auth/repository"
	authService "github.com/phpedruo/mypocket/internal/api/auth/service"
	catalogHandler "github.com/phpedruo/mypocket/internal/api/catalog/handler"
	catalogRepository "github.com/phpedruo/mypocket/internal/api/catalog/repository"
	catalogService "github.com/phpedruo/mypocket/internal/api/catalog/service"
	dashboardHandler "github.com/phpedruo/mypocket/internal/api/dashboard/handler"
	dashboardService "github.com/phpedruo/mypocket/internal/api/dashboard/service"
	transactionHandler "github.com/phpedruo/mypocket/internal/api/transaction/handler"
	transactionRepository "github.com/phpedruo/mypocket/internal/api/transaction/repository"
	transactionService "github.com/phpedruo/mypocket/internal/api/transaction/service"
	"github.com/phpedruo/mypocket/internal/middleware"
	"github.com/phpedruo/mypocket/pkg/bcrypt"
	"github.com/phpedruo/mypocket/pkg/redis"
	"github.com/phpedruo/mypocket/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.redisServer == nil {
			return fmt.Errorf("redis server must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Catalog Domain
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.NewCatalogService(s.log, catalogRepo, s.utils)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Dashboard Domain
	dashboardServices := dashboardService.NewDashboardService(s.log, transactionRepo)
	dashboardHandlers := dashboardHandler.New(s.log, s.middleware, dashboardServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, catalogHandlers, transactionHandlers, dashboardHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	router.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
