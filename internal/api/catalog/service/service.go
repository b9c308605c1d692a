package catalogService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/catalog"
	catalogRepository "github.com/phpedruo/mypocket/internal/api/catalog/repository"
	"github.com/phpedruo/mypocket/internal/entity"
	"github.com/phpedruo/mypocket/pkg/utils"
)

type ICatalogService interface {
	CreateCategories(c context.Context, req catalog.CreateCategoriesRequest) ([]entity.Category, error)
	GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error)
	CreateIncomeSources(c context.Context, req catalog.CreateIncomeSourcesRequest) ([]entity.IncomeSource, error)
	GetIncomeSourcesByUserID(c context.Context, userID string) ([]entity.IncomeSource, error)
}

type catalogService struct {
	log               *logrus.Logger
	catalogRepository catalogRepository.Repository
	utils             utils.IUtils
}

func NewCatalogService(log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
	utils utils.IUtils,
) ICatalogService {
	return &catalogService{
		log:               log,
		catalogRepository: catalogRepo,
		utils:             utils,
	}
}
