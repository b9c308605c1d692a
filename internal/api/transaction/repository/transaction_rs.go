package transactionRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/internal/api/transaction"
	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
)

type TransactionDB struct {
	ID               sql.NullString  `db:"id"`
	UserID           sql.NullString  `db:"user_id"`
	Type             sql.NullString  `db:"type"`
	Amount           sql.NullFloat64 `db:"amount"`
	Description      sql.NullString  `db:"description"`
	Date             time.Time       `db:"date"`
	Recurring        bool            `db:"recurring"`
	Frequency        sql.NullString  `db:"frequency"`
	CategoryID       sql.NullString  `db:"category_id"`
	IncomeSourceID   sql.NullString  `db:"income_source_id"`
	CategoryName     sql.NullString  `db:"category_name"`
	IncomeSourceName sql.NullString  `db:"income_source_name"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               tx.ID,
		"user_id":          tx.UserID,
		"type":             tx.Type,
		"amount":           tx.Amount,
		"description":      tx.Description,
		"date":             tx.Date,
		"recurring":        tx.Recurring,
		"frequency":        nullableString(tx.Frequency),
		"category_id":      nullableString(tx.CategoryID),
		"income_source_id": nullableString(tx.IncomeSourceID),
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")

		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")

		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionsByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionsByUserID execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":               tx.ID,
		"type":             tx.Type,
		"amount":           tx.Amount,
		"description":      tx.Description,
		"date":             tx.Date,
		"recurring":        tx.Recurring,
		"frequency":        nullableString(tx.Frequency),
		"category_id":      nullableString(tx.CategoryID),
		"income_source_id": nullableString(tx.IncomeSourceID),
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:               row.ID.String,
		UserID:           row.UserID.String,
		Type:             row.Type.String,
		Amount:           row.Amount.Float64,
		Description:      row.Description.String,
		Date:             row.Date,
		Recurring:        row.Recurring,
		Frequency:        row.Frequency.String,
		CategoryID:       row.CategoryID.String,
		IncomeSourceID:   row.IncomeSourceID.String,
		CategoryName:     row.CategoryName.String,
		IncomeSourceName: row.IncomeSourceName.String,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
