package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/phpedruo/mypocket/pkg/redis"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewAuthAttemptLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter        *rateLimiter
	attemptLimiter      *attemptLimiter
	requestIDMiddleware fiber.Handler
	redisServer         redis.IRedis
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, redisServer redis.IRedis) Middleware {
	rateLimit := newRateLimiter(50, 100)
	attempts := newAttemptLimiter(maxAuthAttempts, authAttemptWindow)
	attempts.startSweeper(attemptSweepInterval)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		rateLimitter:        rateLimit,
		attemptLimiter:      attempts,
		requestIDMiddleware: requestID,
		redisServer:         redisServer,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
