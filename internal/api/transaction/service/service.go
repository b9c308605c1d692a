package transactionService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/transaction"
	transactionRepository "github.com/phpedruo/mypocket/internal/api/transaction/repository"
	"github.com/phpedruo/mypocket/internal/entity"
	"github.com/phpedruo/mypocket/pkg/utils"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		utils:                 utils,
	}
}
