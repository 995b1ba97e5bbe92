package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	GinContextKeySessionID = "sessionID"
	GinContextKeyRequestID = "requestID"
	HeaderRequestID        = "X-Request-ID"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(GinContextKeyRequestID)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("Request failed", fields...)
			return
		}
		log.Info("Request handled", fields...)
	}
}

// ErrorMiddleware turns the last error pushed with c.Error into a JSON response.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}
		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request error", appErr, zap.String("request_id", c.GetString(GinContextKeyRequestID)))
		}
		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}

// RecoveryMiddleware answers 500 for a panicking handler instead of dropping the connection.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		appErr := apperror.NewInternal("handler panicked", fmt.Errorf("%v", recovered))
		log.Error("Recovered from panic", appErr, zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, appErr.ToJSON())
	})
}

// SessionMiddleware makes sure every request carries a session id cookie.
func SessionMiddleware(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		id, parseErr := uuid.Parse(raw)
		if err != nil || parseErr != nil {
			id = uuid.New()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id.String(), int(ttl.Seconds()), "/", "", false, true)
		c.Set(GinContextKeySessionID, id)
		c.Next()
	}
}

func GetSessionIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeySessionID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
