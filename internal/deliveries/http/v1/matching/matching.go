package matching

import (
	"errors"
	nethttp "net/http"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/http"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/labstack/echo/v4"
)

type matchingHandler struct {
	matchingSvc services.MatchingService
}

// New matching handler will initialize the matching/ resources endpoint
func New(app *echo.Group, matchingSvc services.MatchingService) {
	handler := matchingHandler{
		matchingSvc: matchingSvc,
	}
	api := app.Group("/matching")
	api.POST("/runs", handler.runMatching)
}

// runMatching API to run the matching engine for one company
// @Summary Run the matching engine
// @Description Collect unreconciled bank transactions and open documents for a company and run the matching pipeline. Returns the match report with per-transaction verdicts, summary and decision trace.
// @Tags Matching
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param body body models.RunMatchingRequest true "body"
// @Success 200 {object} models.MatchReport "Response indicates that the request succeeded and the match report has been transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the request body or the date range is malformed"
// @Failure 422 {object} http.RestErrorValidationResponseModel "Validation error. This can happen if a required field is missing"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while running the matching engine"
// @Router /v1/matching/runs [post]
func (h *matchingHandler) runMatching(c echo.Context) error {
	req := new(models.RunMatchingRequest)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	report, err := h.matchingSvc.Run(c.Request().Context(), *req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidFormatDate) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, report)
}
