package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

// pgUniqueViolation is the postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

type ReconRecordRepository interface {
	Store(ctx context.Context, en *models.ReconciliationRecord) (err error)
	GetByTransactionID(ctx context.Context, transactionID string) (en *models.ReconciliationRecord, err error)
	GetList(ctx context.Context, opts models.ReconRecordFilter) ([]models.ReconciliationRecord, error)
	CountAll(ctx context.Context, opts models.ReconRecordFilter) (total int, err error)
}

type reconRecordRepository sqlRepo

var _ ReconRecordRepository = (*reconRecordRepository)(nil)

// Store appends one audit row. The UNIQUE(transaction_id) constraint is
// the hard stop against clearing the same bank transaction twice.
func (rrr *reconRecordRepository) Store(ctx context.Context, en *models.ReconciliationRecord) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rrr.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, storeReconRecordQuery,
		en.TransactionID,
		en.DocumentID,
		en.DocumentType,
		en.MatchType,
		pq.Array(en.LedgerLineIDs),
		en.Status,
		en.RetryCount,
		en.ErrorMessage).
		Scan(&en.ID, &en.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return common.ErrReconRecordExists
		}
		return err
	}

	return
}

func (rrr *reconRecordRepository) GetByTransactionID(ctx context.Context, transactionID string) (en *models.ReconciliationRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rrr.r.extractTxRead(ctx)

	en = &models.ReconciliationRecord{}
	var lineIDs pq.Int64Array
	err = db.QueryRowContext(ctx, getReconRecordByTransactionIDQuery, transactionID).Scan(
		&en.ID,
		&en.TransactionID,
		&en.DocumentID,
		&en.DocumentType,
		&en.MatchType,
		&lineIDs,
		&en.Status,
		&en.RetryCount,
		&en.ErrorMessage,
		&en.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	en.LedgerLineIDs = []int64(lineIDs)

	return
}

func (rrr *reconRecordRepository) GetList(ctx context.Context, opts models.ReconRecordFilter) ([]models.ReconciliationRecord, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rrr.r.extractTxRead(ctx)

	query, args, err := buildListReconRecordsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []models.ReconciliationRecord
	for rows.Next() {
		var rec models.ReconciliationRecord
		var lineIDs pq.Int64Array
		err = rows.Scan(
			&rec.ID,
			&rec.TransactionID,
			&rec.DocumentID,
			&rec.DocumentType,
			&rec.MatchType,
			&lineIDs,
			&rec.Status,
			&rec.RetryCount,
			&rec.ErrorMessage,
			&rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		rec.LedgerLineIDs = []int64(lineIDs)
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (rrr *reconRecordRepository) CountAll(ctx context.Context, opts models.ReconRecordFilter) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rrr.r.extractTxRead(ctx)

	query, args, err := buildCountReconRecordsQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return
}
