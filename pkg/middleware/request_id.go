package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID marca cada requisição com um identificador e registra o acesso.
func RequestID(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, reqID)
			c.Set("request_id", reqID)

			logger.Debug("requisição recebida",
				zap.String("request_id", reqID),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
			)
			return next(c)
		}
	}
}
