package authService

import (
	"github.com/phpedruo/mypocket/internal/api/auth"
	"github.com/phpedruo/mypocket/internal/entity"
)

func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
	}
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
