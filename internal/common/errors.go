package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrNoRows              = sql.ErrNoRows

	// matching stage
	ErrAmountMismatch     = errors.New("amount mismatch")
	ErrNoFlexibleMatch    = errors.New("no flexible criteria match")
	ErrDateOutOfRange     = errors.New("date difference exceeds context tolerance")
	ErrNoCombinationFound = errors.New("no exact combination found")
	ErrDocumentConsumed   = errors.New("document already consumed by another match")
	ErrCollectionFailed   = errors.New("candidate collection failed")

	// reconciliation stage
	ErrLedgerConnection      = errors.New("ledger connection failed")
	ErrLedgerAuth            = errors.New("ledger authentication failed")
	ErrLedgerTransient       = errors.New("transient ledger protocol error")
	ErrAccountResolution     = errors.New("unable to resolve reconciliation account")
	ErrAlreadyReconciled     = errors.New("already reconciled")
	ErrUnknownDocumentType   = errors.New("could not identify document type")
	ErrNoReconcilableLine    = errors.New("no reconcilable ledger line found")
	ErrReconRecordExists     = errors.New("reconciliation record already exists for transaction")
	ErrTransactionNoLedgerId = errors.New("transaction has no ledger move id")

	ErrMissingCompanyScope = errors.New("company scope is required")
	ErrBatchEmpty          = errors.New("batch contains no matched transactions")

	// idempotent request handling
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
	ErrInvalidFingerprint    = errors.New("idempotency key reused with a different payload")
	ErrRequestBeingProcessed = errors.New("request is being processed")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
