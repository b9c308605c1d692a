package dashboardHandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	dashboardService "github.com/phpedruo/mypocket/internal/api/dashboard/service"
	"github.com/phpedruo/mypocket/internal/middleware"
)

type DashboardHandler struct {
	log              *logrus.Logger
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	dashboard := srv.Group("/dashboard")

	dashboard.Get("/stats", h.middleware.NewTokenMiddleware, h.GetStats)
	dashboard.Get("/trend", h.middleware.NewTokenMiddleware, h.GetMonthlyTrend)
	dashboard.Get("/breakdown", h.middleware.NewTokenMiddleware, h.GetCategoryBreakdown)
}
