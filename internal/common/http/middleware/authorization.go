package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	resthttp "github.com/atlasledger/go-bank-recon/internal/common/http"
)

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get("X-Secret-Key")
			statusCode := http.StatusUnauthorized
			if secretKey == "" {
				return resthttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required secret key"))
			}

			if secretKey != m.conf.SecretKey {
				return resthttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid secret key"))
			}

			return next(c)
		}
	}
}
