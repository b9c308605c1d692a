package auth

import (
	"net/http"

	"github.com/phpedruo/mypocket/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already registered")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "invalid email or password")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
