package reconciliation

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/http"
	"github.com/atlasledger/go-bank-recon/internal/common/http/middleware"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconSvc services.ReconService
	// batchTimeout bounds one synchronous executor run; in-flight ledger
	// commits still run to completion when it fires.
	batchTimeout time.Duration
}

// New reconciliation handler will initialize the reconciliation/ resources endpoint
func New(app *echo.Group, reconSvc services.ReconService, m *middleware.AppMiddleware, batchTimeout time.Duration) {
	handler := reconciliationHandler{
		reconSvc:     reconSvc,
		batchTimeout: batchTimeout,
	}
	api := app.Group("/reconciliation")
	api.POST("/batches", handler.processBatch, m.CheckIdempotentRequest())
	api.GET("/records", handler.getListReconRecords)
	api.GET("/records/:transactionID", handler.getReconRecordByTransactionID)
}

// processBatch API to reconcile a batch of matched transactions
// @Summary Reconcile a batch of matched transactions
// @Description Run the reconciliation executor synchronously over a batch of matched transactions and write the outcome back to the ledger. Item failures are isolated, the batch result carries per-document details.
// @Tags Reconciliation
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Param	X-Idempotency-Key header string false "X-Idempotency-Key"
// @Param body body models.ReconBatchInput true "body"
// @Success 200 {object} models.ReconBatchResult "Response indicates that the request succeeded and the batch result has been transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the request body is malformed"
// @Failure 422 {object} http.RestErrorValidationResponseModel "Validation error. This can happen if the batch is empty or an item misses both the ledger move id and the reference"
// @Failure 502 {object} http.RestErrorResponseModel "Bad gateway error. This can happen if the ledger rejects the authentication"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while reconciling the batch"
// @Router /v1/reconciliation/batches [post]
func (h *reconciliationHandler) processBatch(c echo.Context) error {
	req := new(models.ReconBatchInput)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	if h.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.batchTimeout)
		defer cancel()
	}

	result, err := h.reconSvc.ProcessBatch(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrLedgerAuth) {
			return http.RestErrorResponse(c, nethttp.StatusBadGateway, err)
		}
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, result)
}

// getListReconRecords API to get the reconciliation audit records with filters
// @Summary Get reconciliation records with filters
// @Description Get the append-only reconciliation audit filtered by transaction id, document id, and status
// @Tags Reconciliation
// @Accept json
// @Produce json
// @Param transaction_id query string false "Transaction id filter"
// @Param document_id query string false "Document id filter"
// @Param status query string false "Record status filter"
// @Param limit query int false "Limit per page (default: 20)"
// @Param nextCursor query string false "Next cursor for pagination"
// @Param prevCursor query string false "Previous cursor for pagination"
// @Param X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.ReconRecordResponse] "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the cursor or the limit is malformed"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get reconciliation records"
// @Router /v1/reconciliation/records [get]
func (h *reconciliationHandler) getListReconRecords(c echo.Context) error {
	var queryFilter models.ReconRecordListRequest

	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	records, total, err := h.reconSvc.GetListReconRecords(c.Request().Context(), *opts)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	return http.RestSuccessResponseCursorPagination[models.ReconRecordResponse](c, records, opts.Limit, total)
}

// getReconRecordByTransactionID API to get one reconciliation record by transaction id
// @Summary 	Get reconciliation record by transaction id
// @Description Get one reconciliation audit record by its bank transaction id
// @Tags 		Reconciliation
// @Accept		json
// @Produce		json
// @Param 	transactionID path string true "bank transaction identifier"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.ReconRecordResponse "Response indicates that the request succeeded and the resources has been fetched and transmitted in the message body"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if no record exists for the transaction id"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while get reconciliation record"
// @Router /v1/reconciliation/records/{transactionID} [get]
func (h *reconciliationHandler) getReconRecordByTransactionID(c echo.Context) error {
	transactionID := c.Param("transactionID")

	record, err := h.reconSvc.GetReconRecordByTransactionID(c.Request().Context(), transactionID)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, record.ToModelResponse())
}
