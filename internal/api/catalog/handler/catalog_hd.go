package catalogHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/catalog"
	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
	"github.com/phpedruo/mypocket/pkg/handlerUtil"
	jwtPkg "github.com/phpedruo/mypocket/pkg/jwt"
	"github.com/phpedruo/mypocket/pkg/log"
)

func (h *CatalogHandler) CreateCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create categories request")

	var req catalog.CreateCategoriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	categories, err := h.catalogService.CreateCategories(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeCategoryListResponse(categories))
	}
}

func (h *CatalogHandler) GetCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	categories, err := h.catalogService.GetCategoriesByUserID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_categories")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeCategoryListResponse(categories))
	}
}

func (h *CatalogHandler) CreateIncomeSources(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create income sources request")

	var req catalog.CreateIncomeSourcesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	sources, err := h.catalogService.CreateIncomeSources(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_income_sources")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeIncomeSourceListResponse(sources))
	}
}

func (h *CatalogHandler) GetIncomeSources(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	sources, err := h.catalogService.GetIncomeSourcesByUserID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_income_sources")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeIncomeSourceListResponse(sources))
	}
}

func makeCategoryListResponse(categories []entity.Category) catalog.CategoryListResponse {
	res := catalog.CategoryListResponse{
		Categories: make([]catalog.CategoryResponse, 0, len(categories)),
	}
	for _, category := range categories {
		res.Categories = append(res.Categories, catalog.CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
			Type: category.Type,
		})
	}
	return res
}

func makeIncomeSourceListResponse(sources []entity.IncomeSource) catalog.IncomeSourceListResponse {
	res := catalog.IncomeSourceListResponse{
		IncomeSources: make([]catalog.IncomeSourceResponse, 0, len(sources)),
	}
	for _, source := range sources {
		res.IncomeSources = append(res.IncomeSources, catalog.IncomeSourceResponse{
			ID:   source.ID,
			Name: source.Name,
		})
	}
	return res
}
