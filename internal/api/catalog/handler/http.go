package catalogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	catalogService "github.com/phpedruo/mypocket/internal/api/catalog/service"
	"github.com/phpedruo/mypocket/internal/middleware"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	catalogService catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")
	categories.Post("/", h.middleware.NewTokenMiddleware, h.CreateCategories)
	categories.Get("/", h.middleware.NewTokenMiddleware, h.GetCategories)

	incomeSources := srv.Group("/income-sources")
	incomeSources.Post("/", h.middleware.NewTokenMiddleware, h.CreateIncomeSources)
	incomeSources.Get("/", h.middleware.NewTokenMiddleware, h.GetIncomeSources)
}
