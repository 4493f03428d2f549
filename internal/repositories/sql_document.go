package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

type FinancialDocumentRepository interface {
	StoreBulk(ctx context.Context, en []models.FinancialDocument) (err error)
	GetOpenDocuments(ctx context.Context, opts models.DocumentFilter) ([]models.FinancialDocument, error)
	MarkSettled(ctx context.Context, docType models.DocumentType, ids []int64, settledBy string, settledAt time.Time) (err error)
}

type financialDocumentRepository sqlRepo

var _ FinancialDocumentRepository = (*financialDocumentRepository)(nil)

func (fdr *financialDocumentRepository) StoreBulk(ctx context.Context, en []models.FinancialDocument) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(en) == 0 {
		return nil
	}

	db := fdr.r.extractTxWrite(ctx)

	valueStrings := []string{}
	valueArgs := []interface{}{}

	for _, req := range en {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs, req.ID)
		valueArgs = append(valueArgs, req.Type)
		valueArgs = append(valueArgs, req.CompanyID)
		valueArgs = append(valueArgs, req.Number)
		valueArgs = append(valueArgs, req.PartnerName)
		valueArgs = append(valueArgs, req.Description)
		valueArgs = append(valueArgs, req.Amount)
		valueArgs = append(valueArgs, req.Currency)
		valueArgs = append(valueArgs, req.Date)
		valueArgs = append(valueArgs, req.LedgerMoveID)
	}

	storeBulkQuery := fmt.Sprintf(`INSERT INTO documents
		(id, type, company_id, number, partner_name, description, amount, currency, date, ledger_move_id)
		VALUES %s ON CONFLICT (id, type) DO NOTHING`, strings.Join(valueStrings, ","))

	sqlStr := common.ReplaceSQL(storeBulkQuery, "?")

	if _, err = db.ExecContext(ctx, sqlStr, valueArgs...); err != nil {
		return err
	}

	return
}

func (fdr *financialDocumentRepository) GetOpenDocuments(ctx context.Context, opts models.DocumentFilter) ([]models.FinancialDocument, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fdr.r.extractTxRead(ctx)

	query, args, err := buildOpenDocumentsQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []models.FinancialDocument
	for rows.Next() {
		var doc models.FinancialDocument
		err = rows.Scan(
			&doc.ID,
			&doc.Type,
			&doc.CompanyID,
			&doc.Number,
			&doc.PartnerName,
			&doc.Description,
			&doc.Amount,
			&doc.Currency,
			&doc.Date,
			&doc.LedgerMoveID,
			&doc.Settled,
			&doc.SettledAt,
			&doc.SettledBy,
			&doc.CreatedAt,
			&doc.UpdatedAt)
		if err != nil {
			return nil, err
		}

		result = append(result, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (fdr *financialDocumentRepository) MarkSettled(ctx context.Context, docType models.DocumentType, ids []int64, settledBy string, settledAt time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(ids) == 0 {
		return nil
	}

	db := fdr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, markDocumentsSettledQuery, settledBy, settledAt, docType, pq.Array(ids))
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
