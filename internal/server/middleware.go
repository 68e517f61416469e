package server

import (
	"net/http"
	"time"

	"masterchef-rewards/internal/handler/response"
	"masterchef-rewards/pkg/errno"
	"masterchef-rewards/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// RequestID 透传或生成请求 ID，写入 context 与响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RateLimit 全局令牌桶，突发为每分钟额度的 1/6
func RateLimit(rpm int) gin.HandlerFunc {
	if rpm <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := rpm / 6
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded", zap.String("path", c.Request.URL.Path), zap.String("ip", c.ClientIP()))
			response.Abort(c, http.StatusTooManyRequests, errno.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// AccessLog 结构化访问日志，替代 gin 自带的文本日志
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			zap.String("request_id", c.GetString(response.RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.ClientIP()))
	}
}
