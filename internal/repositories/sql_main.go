package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	btr *bankTransactionRepository
	fdr *financialDocumentRepository
	rrr *reconRecordRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.btr = (*bankTransactionRepository)(&rtx.common)
	rtx.fdr = (*financialDocumentRepository)(&rtx.common)
	rtx.rrr = (*reconRecordRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetBankTransactionRepository() BankTransactionRepository
	GetFinancialDocumentRepository() FinancialDocumentRepository
	GetReconRecordRepository() ReconRecordRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetBankTransactionRepository() BankTransactionRepository {
	return r.btr
}

func (r *Repository) GetFinancialDocumentRepository() FinancialDocumentRepository {
	return r.fdr
}

func (r *Repository) GetReconRecordRepository() ReconRecordRepository {
	return r.rrr
}
