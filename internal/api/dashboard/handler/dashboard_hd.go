package dashboardHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/dashboard"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
	"github.com/phpedruo/mypocket/pkg/handlerUtil"
	jwtPkg "github.com/phpedruo/mypocket/pkg/jwt"
)

const (
	defaultTrendMonths = 6
	maxTrendMonths     = 24
)

func (h *DashboardHandler) GetStats(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	totals, err := h.dashboardService.GetStats(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_dashboard_stats")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard.StatsResponse{Stats: totals})
	}
}

func (h *DashboardHandler) GetMonthlyTrend(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	months := ctx.QueryInt("months", defaultTrendMonths)
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	trend, err := h.dashboardService.GetMonthlyTrend(c, userData.ID, months)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_monthly_trend")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard.TrendResponse{
			Months: months,
			Trend:  trend,
		})
	}
}

func (h *DashboardHandler) GetCategoryBreakdown(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	transactionType := ctx.Query("type", "expense")

	breakdown, err := h.dashboardService.GetCategoryBreakdown(c, userData.ID, transactionType)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_category_breakdown")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard.BreakdownResponse{
			Type:      transactionType,
			Breakdown: breakdown,
		})
	}
}
