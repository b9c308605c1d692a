package catalogService

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/internal/api/catalog"
	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
)

// CreateCategories inserts a batch of categories in one transaction. Names
// the user already has are kept as-is, so the onboarding flow can be retried
// without duplicating rows.
func (s *catalogService) CreateCategories(c context.Context, req catalog.CreateCategoriesRequest) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.catalogRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	for _, item := range req.Categories {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate category ID")
			_ = repo.Rollback()
			return nil, err
		}

		category := entity.Category{
			ID:     id,
			UserID: req.UserID,
			Name:   strings.TrimSpace(item.Name),
			Type:   item.Type,
		}

		if err := repo.Categories.CreateCategory(c, category); err != nil {
			_ = repo.Rollback()
			return nil, catalog.ErrCreateCategory
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit category batch")
		return nil, err
	}

	return s.GetCategoriesByUserID(c, req.UserID)
}

func (s *catalogService) GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.catalogRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Categories.GetCategoriesByUserID(c, userID)
}

func (s *catalogService) CreateIncomeSources(c context.Context, req catalog.CreateIncomeSourcesRequest) ([]entity.IncomeSource, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.catalogRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	for _, item := range req.IncomeSources {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate income source ID")
			_ = repo.Rollback()
			return nil, err
		}

		source := entity.IncomeSource{
			ID:     id,
			UserID: req.UserID,
			Name:   strings.TrimSpace(item.Name),
		}

		if err := repo.IncomeSources.CreateIncomeSource(c, source); err != nil {
			_ = repo.Rollback()
			return nil, catalog.ErrCreateIncomeSource
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit income source batch")
		return nil, err
	}

	return s.GetIncomeSourcesByUserID(c, req.UserID)
}

func (s *catalogService) GetIncomeSourcesByUserID(c context.Context, userID string) ([]entity.IncomeSource, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.catalogRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.IncomeSources.GetIncomeSourcesByUserID(c, userID)
}
