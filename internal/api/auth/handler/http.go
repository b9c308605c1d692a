package authHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authService "github.com/phpedruo/mypocket/internal/api/auth/service"
	"github.com/phpedruo/mypocket/internal/middleware"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	authService authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: authService,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/signup", h.middleware.NewAuthAttemptLimiter, h.Signup)
	auth.Post("/login", h.middleware.NewAuthAttemptLimiter, h.Login)
	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)
	auth.Get("/me", h.middleware.NewTokenMiddleware, h.Me)
}
