package transactionService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/transaction"
	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Unparseable transaction date")
		return entity.Transaction{}, transaction.ErrInvalidDate
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:             ULID,
		UserID:         req.UserID,
		Type:           req.Type,
		Amount:         req.Amount,
		Description:    s.utils.SanitizeString(req.Description),
		Date:           date,
		Recurring:      req.Recurring,
		Frequency:      req.Frequency,
		CategoryID:     req.CategoryID,
		IncomeSourceID: req.IncomeSourceID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := tx.Validate(time.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.CreateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	return tx, nil
}

func (s *transactionService) GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	transactions, err := repo.Transactions.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by user ID")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	existing, err := repo.Transactions.GetTransactionByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Warn("Failed to get existing transaction")
		return entity.Transaction{}, err
	}

	// Foreign ownership is reported as not-found so transaction IDs of other
	// users cannot be probed.
	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     req.UserID,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Unparseable transaction date")
		return entity.Transaction{}, transaction.ErrInvalidDate
	}

	tx := entity.Transaction{
		ID:             req.ID,
		UserID:         req.UserID,
		Type:           req.Type,
		Amount:         req.Amount,
		Description:    s.utils.SanitizeString(req.Description),
		Date:           date,
		Recurring:      req.Recurring,
		Frequency:      req.Frequency,
		CategoryID:     req.CategoryID,
		IncomeSourceID: req.IncomeSourceID,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now(),
	}

	if err := tx.Validate(time.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.UpdateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get existing transaction")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return transaction.ErrTransactionNotFound
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	return nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
