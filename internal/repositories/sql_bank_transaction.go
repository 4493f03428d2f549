package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

type BankTransactionRepository interface {
	StoreBulk(ctx context.Context, en []models.BankTransaction) (err error)
	GetByID(ctx context.Context, id string) (en *models.BankTransaction, err error)
	GetUnreconciled(ctx context.Context, opts models.BankTransactionFilter) ([]models.BankTransaction, error)
	MarkReconciled(ctx context.Context, ids []string, reconciledAt time.Time) (err error)
}

type bankTransactionRepository sqlRepo

var _ BankTransactionRepository = (*bankTransactionRepository)(nil)

func (btr *bankTransactionRepository) StoreBulk(ctx context.Context, en []models.BankTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(en) == 0 {
		return nil
	}

	db := btr.r.extractTxWrite(ctx)

	valueStrings := []string{}
	valueArgs := []interface{}{}

	for _, req := range en {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs, req.ID)
		valueArgs = append(valueArgs, req.CompanyID)
		valueArgs = append(valueArgs, req.LedgerMoveID)
		valueArgs = append(valueArgs, req.Amount)
		valueArgs = append(valueArgs, req.Currency)
		valueArgs = append(valueArgs, req.Date)
		valueArgs = append(valueArgs, req.Description)
		valueArgs = append(valueArgs, req.PartnerName)
		valueArgs = append(valueArgs, req.Reference)
	}

	// the feed re-imports overlapping windows, replays are expected
	storeBulkQuery := fmt.Sprintf(`INSERT INTO bank_transactions
		(id, company_id, ledger_move_id, amount, currency, date, description, partner_name, reference)
		VALUES %s ON CONFLICT (id) DO NOTHING`, strings.Join(valueStrings, ","))

	sqlStr := common.ReplaceSQL(storeBulkQuery, "?")

	if _, err = db.ExecContext(ctx, sqlStr, valueArgs...); err != nil {
		return err
	}

	return
}

func (btr *bankTransactionRepository) GetByID(ctx context.Context, id string) (en *models.BankTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := btr.r.extractTxRead(ctx)

	en = &models.BankTransaction{}
	err = db.QueryRowContext(ctx, getBankTransactionByIDQuery, id).Scan(
		&en.ID,
		&en.CompanyID,
		&en.LedgerMoveID,
		&en.Amount,
		&en.Currency,
		&en.Date,
		&en.Description,
		&en.PartnerName,
		&en.Reference,
		&en.Reconciled,
		&en.ReconciledAt,
		&en.CreatedAt,
		&en.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return
}

func (btr *bankTransactionRepository) GetUnreconciled(ctx context.Context, opts models.BankTransactionFilter) ([]models.BankTransaction, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := btr.r.extractTxRead(ctx)

	query, args, err := buildUnreconciledTransactionsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []models.BankTransaction
	for rows.Next() {
		var txn models.BankTransaction
		err = rows.Scan(
			&txn.ID,
			&txn.CompanyID,
			&txn.LedgerMoveID,
			&txn.Amount,
			&txn.Currency,
			&txn.Date,
			&txn.Description,
			&txn.PartnerName,
			&txn.Reference,
			&txn.Reconciled,
			&txn.ReconciledAt,
			&txn.CreatedAt,
			&txn.UpdatedAt)
		if err != nil {
			return nil, err
		}

		result = append(result, txn)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (btr *bankTransactionRepository) MarkReconciled(ctx context.Context, ids []string, reconciledAt time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(ids) == 0 {
		return nil
	}

	db := btr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, markTransactionsReconciledQuery, reconciledAt, pq.Array(ids))
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}
