package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
)

// Context seeds the request context with correlation data so every log
// line further down carries it.
func (m *AppMiddleware) Context(gcpProjectID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req, gcpProjectID)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
