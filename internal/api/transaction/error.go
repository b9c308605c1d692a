package transaction

import (
	"net/http"

	"github.com/phpedruo/mypocket/pkg/response"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "transaction not found")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "transaction type must be income or expense")
	ErrInvalidAmount          = response.NewError(http.StatusBadRequest, "invalid transaction amount")
	ErrInvalidDescription     = response.NewError(http.StatusBadRequest, "description must be between 3 and 200 characters")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "invalid transaction date")
	ErrDateInFuture           = response.NewError(http.StatusBadRequest, "transaction date cannot be in the future")
	ErrInvalidFrequency       = response.NewError(http.StatusBadRequest, "frequency must be monthly or yearly for recurring transactions")
	ErrCreateTransaction      = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
)
