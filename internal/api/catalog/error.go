package catalog

import (
	"net/http"

	"github.com/phpedruo/mypocket/pkg/response"
)

var (
	ErrCreateCategory     = response.NewError(http.StatusInternalServerError, "failed to create category")
	ErrCreateIncomeSource = response.NewError(http.StatusInternalServerError, "failed to create income source")
)
