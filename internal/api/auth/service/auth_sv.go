package authService

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/internal/api/auth"
	"github.com/phpedruo/mypocket/internal/entity"
	contextPkg "github.com/phpedruo/mypocket/pkg/context"
	jwtPkg "github.com/phpedruo/mypocket/pkg/jwt"
)

// sessionDuration is how long an access token stays valid after signup or
// login.
const sessionDuration = 168 * time.Hour

func (s *authService) Register(c context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return auth.AuthResponse{}, err
	}

	user := entity.User{
		ID:       id,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Name:     strings.TrimSpace(req.Name),
		Password: hashedPassword,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("User registered")

	// Signup logs the user straight in, no separate login round-trip.
	return s.issueSession(requestID, user)
}

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := repo.Users.GetByEmail(c, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueSession(requestID, user)
}

func (s *authService) Logout(c context.Context, accessToken string) error {
	requestID := contextPkg.GetRequestID(c)

	signature, err := jwtPkg.Signature(accessToken)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to extract token signature")
		return err
	}

	// The token was already verified by the middleware, parsing here only
	// recovers its expiry so the denylist entry can share it.
	remaining := sessionDuration
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err == nil {
		if expiresAt, expErr := token.Claims.GetExpirationTime(); expErr == nil && expiresAt != nil {
			remaining = time.Until(expiresAt.Time)
		}
	}

	if err := s.redisServer.RevokeToken(c, signature, remaining); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to revoke token")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("User logged out")

	return nil
}

func (s *authService) Me(c context.Context, userID string) (auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.UserResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return makeUserResponse(user), nil
}

func (s *authService) issueSession(requestID string, user entity.User) (auth.AuthResponse, error) {
	token, expired, err := jwtPkg.Sign(MakeUserData(user), sessionDuration)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expired,
		User:        makeUserResponse(user),
	}, nil
}
