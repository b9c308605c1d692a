package catalogRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
)

type CategoryDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	Type      sql.NullString `db:"type"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

type IncomeSourceDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Name      sql.NullString `db:"name"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

// CreateCategory inserts a category, silently keeping the existing row when
// the user already has one with the same name.
func (r *categoryRepository) CreateCategory(c context.Context, category entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         category.ID,
		"user_id":    category.UserID,
		"name":       category.Name,
		"type":       category.Type,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CategoryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCategoriesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByUserID execution err")
		return nil, err
	}

	categories := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, makeCategory(row))
	}

	return categories, nil
}

func (r *incomeSourceRepository) CreateIncomeSource(c context.Context, source entity.IncomeSource) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         source.ID,
		"user_id":    source.UserID,
		"name":       source.Name,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateIncomeSource, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateIncomeSource")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating income source")
		return err
	}

	return nil
}

func (r *incomeSourceRepository) GetIncomeSourcesByUserID(c context.Context, userID string) ([]entity.IncomeSource, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []IncomeSourceDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetIncomeSourcesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeSourcesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetIncomeSourcesByUserID execution err")
		return nil, err
	}

	sources := make([]entity.IncomeSource, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, makeIncomeSource(row))
	}

	return sources, nil
}

func makeCategory(row CategoryDB) entity.Category {
	return entity.Category{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		Type:      row.Type.String,
		CreatedAt: row.CreatedAt.Time,
	}
}

func makeIncomeSource(row IncomeSourceDB) entity.IncomeSource {
	return entity.IncomeSource{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		Name:      row.Name.String,
		CreatedAt: row.CreatedAt.Time,
	}
}
