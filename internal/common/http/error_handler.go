package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/atlasledger/go-bank-recon/internal/common"

	"github.com/labstack/echo/v4"
)

// HandleRepositoryError maps common repository errors onto HTTP statuses.
// Repository errors arrive either as sentinels or wrapped in the error
// map, so the not-found case is also matched on the message.
func HandleRepositoryError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, common.ErrDataNotFound), errors.Is(err, common.ErrNoRows),
		strings.Contains(err.Error(), "not found"):
		return RestErrorResponse(c, http.StatusNotFound, err)
	case errors.Is(err, common.ErrReconRecordExists):
		return RestErrorResponse(c, http.StatusConflict, err)
	default:
		return RestErrorResponse(c, http.StatusInternalServerError, err)
	}
}
