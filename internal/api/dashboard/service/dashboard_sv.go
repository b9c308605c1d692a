package dashboardService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/internal/api/dashboard"
	"github.com/phpedruo/mypocket/internal/entity"
	"github.com/phpedruo/mypocket/internal/stats"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
)

func (s *dashboardService) GetStats(c context.Context, userID string) (stats.Totals, error) {
	transactions, err := s.loadTransactions(c, userID)
	if err != nil {
		return stats.Totals{}, err
	}

	return stats.ComputeTotals(transactions, time.Now()), nil
}

func (s *dashboardService) GetMonthlyTrend(c context.Context, userID string, months int) ([]stats.TrendPoint, error) {
	if months <= 0 {
		return nil, dashboard.ErrInvalidTrendMonths
	}

	transactions, err := s.loadTransactions(c, userID)
	if err != nil {
		return nil, err
	}

	return stats.MonthlyTrend(transactions, months, time.Now()), nil
}

func (s *dashboardService) GetCategoryBreakdown(c context.Context, userID string, transactionType string) ([]stats.BreakdownEntry, error) {
	if !entity.IsValidTransactionType(transactionType) {
		return nil, dashboard.ErrInvalidBreakdownType
	}

	transactions, err := s.loadTransactions(c, userID)
	if err != nil {
		return nil, err
	}

	return stats.CategoryBreakdown(transactions, transactionType), nil
}

// loadTransactions fetches the user's full transaction snapshot that every
// derived view is computed from.
func (s *dashboardService) loadTransactions(c context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Transactions.GetTransactionsByUserID(c, userID)
}
