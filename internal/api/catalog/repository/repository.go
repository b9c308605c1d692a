package catalogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Categories:    &categoryRepository{q: sqlExecutor, log: r.log},
		IncomeSources: &incomeSourceRepository{q: sqlExecutor, log: r.log},
		Commit:        commitFunc,
		Rollback:      rollbackFunc,
	}, nil
}

type Client struct {
	Categories interface {
		CreateCategory(c context.Context, category entity.Category) error
		GetCategoriesByUserID(c context.Context, userID string) ([]entity.Category, error)
	}

	IncomeSources interface {
		CreateIncomeSource(c context.Context, source entity.IncomeSource) error
		GetIncomeSourcesByUserID(c context.Context, userID string) ([]entity.IncomeSource, error)
	}

	Commit   func() error
	Rollback func() error
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type incomeSourceRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
