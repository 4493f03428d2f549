package services

import (
	"context"

	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

type ReconService interface {
	ProcessBatch(ctx context.Context, in *models.ReconBatchInput) (*models.ReconBatchResult, error)
	GetListReconRecords(ctx context.Context, opts models.ReconRecordFilter) (records []models.ReconciliationRecord, total int, err error)
	GetReconRecordByTransactionID(ctx context.Context, transactionID string) (*models.ReconciliationRecord, error)
}

type recon service

var _ ReconService = (*recon)(nil)

func (r *recon) GetListReconRecords(ctx context.Context, opts models.ReconRecordFilter) (records []models.ReconciliationRecord, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	recRepo := r.srv.sqlRepo.GetReconRecordRepository()

	records, err = recRepo.GetList(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	if len(records) == 0 {
		return records, total, nil
	}

	total, err = recRepo.CountAll(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return records, total, nil
}

func (r *recon) GetReconRecordByTransactionID(ctx context.Context, transactionID string) (record *models.ReconciliationRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	record, err = r.srv.sqlRepo.GetReconRecordRepository().GetByTransactionID(ctx, transactionID)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return record, nil
}
