package repositories

import (
	"github.com/atlasledger/go-bank-recon/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	storeReconRecordQuery = `INSERT INTO reconciliation_records
		(
		 transaction_id,
		 document_id,
		 document_type,
		 match_type,
		 ledger_line_ids,
		 status,
		 retry_count,
		 error_message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	getReconRecordByTransactionIDQuery = `SELECT
			id,
			transaction_id,
			document_id,
			document_type,
			match_type,
			ledger_line_ids,
			status,
			retry_count,
			error_message,
			created_at
		FROM reconciliation_records
		WHERE transaction_id = $1`
)

var reconRecordColumns = []string{
	"id",
	"transaction_id",
	"document_id",
	"document_type",
	"match_type",
	"ledger_line_ids",
	"status",
	"retry_count",
	"error_message",
	"created_at",
}

func reconRecordFilterWhere(q sq.SelectBuilder, opts models.ReconRecordFilter) sq.SelectBuilder {
	if opts.TransactionID != "" {
		q = q.Where(sq.Eq{"transaction_id": opts.TransactionID})
	}

	if opts.DocumentID != "" {
		q = q.Where(sq.Eq{"document_id": opts.DocumentID})
	}

	if opts.Status != "" {
		q = q.Where(sq.Eq{"status": opts.Status})
	}

	return q
}

func buildListReconRecordsQuery(opts models.ReconRecordFilter) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	q := reconRecordFilterWhere(psql.Select(reconRecordColumns...).From("reconciliation_records"), opts)

	order := "id DESC"
	if opts.Cursor != nil {
		if opts.Cursor.IsBackward {
			q = q.Where(sq.Gt{"id": opts.Cursor.DatabaseID})
			order = "id ASC"
		} else {
			q = q.Where(sq.Lt{"id": opts.Cursor.DatabaseID})
		}
	}
	q = q.OrderBy(order)

	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit))
	}

	return q.ToSql()
}

func buildCountReconRecordsQuery(opts models.ReconRecordFilter) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return reconRecordFilterWhere(psql.Select("COUNT(*)").From("reconciliation_records"), opts).ToSql()
}
