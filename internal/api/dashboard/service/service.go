package dashboardService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	transactionRepository "github.com/phpedruo/mypocket/internal/api/transaction/repository"
	"github.com/phpedruo/mypocket/internal/stats"
)

type IDashboardService interface {
	GetStats(c context.Context, userID string) (stats.Totals, error)
	GetMonthlyTrend(c context.Context, userID string, months int) ([]stats.TrendPoint, error)
	GetCategoryBreakdown(c context.Context, userID string, transactionType string) ([]stats.BreakdownEntry, error)
}

type dashboardService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func NewDashboardService(log *logrus.Logger,
	transactionRepo transactionRepository.Repository,
) IDashboardService {
	return &dashboardService{
		log:                   log,
		transactionRepository: transactionRepo,
	}
}
