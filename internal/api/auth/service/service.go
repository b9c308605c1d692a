package authService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/phpedruo/mypocket/internal/api/auth"
	authRepository "github.com/phpedruo/mypocket/internal/api/auth/repository"
	"github.com/phpedruo/mypocket/pkg/bcrypt"
	"github.com/phpedruo/mypocket/pkg/redis"
	"github.com/phpedruo/mypocket/pkg/utils"
)

type IAuthService interface {
	Register(c context.Context, req auth.SignupRequest) (auth.AuthResponse, error)
	Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	Logout(c context.Context, accessToken string) error
	Me(c context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func NewAuthService(log *logrus.Logger,
	authRepo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		redisServer:    redisServer,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}
