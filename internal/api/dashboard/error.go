package dashboard

import (
	"net/http"

	"github.com/phpedruo/mypocket/pkg/response"
)

var (
	ErrInvalidBreakdownType = response.NewError(http.StatusBadRequest, "breakdown type must be income or expense")
	ErrInvalidTrendMonths   = response.NewError(http.StatusBadRequest, "months must be a positive number")
)
