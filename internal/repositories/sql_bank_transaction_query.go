package repositories

import (
	"github.com/atlasledger/go-bank-recon/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	getBankTransactionByIDQuery = `SELECT
			id,
			company_id,
			ledger_move_id,
			amount,
			currency,
			date,
			description,
			partner_name,
			reference,
			reconciled,
			reconciled_at,
			created_at,
			updated_at
		FROM bank_transactions
		WHERE id = $1`

	markTransactionsReconciledQuery = `
		UPDATE bank_transactions
		SET
			reconciled = TRUE,
			reconciled_at = $1,
			updated_at = now()
		WHERE id = ANY($2)`
)

var bankTransactionColumns = []string{
	"id",
	"company_id",
	"ledger_move_id",
	"amount",
	"currency",
	"date",
	"description",
	"partner_name",
	"reference",
	"reconciled",
	"reconciled_at",
	"created_at",
	"updated_at",
}

func buildUnreconciledTransactionsQuery(opts models.BankTransactionFilter) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	q := psql.Select(bankTransactionColumns...).
		From("bank_transactions").
		Where(sq.Eq{"company_id": opts.CompanyID}).
		Where(sq.Eq{"reconciled": false}).
		OrderBy("date ASC", "id ASC")

	if opts.DateFrom != nil {
		q = q.Where(sq.GtOrEq{"date": *opts.DateFrom})
	}

	if opts.DateTo != nil {
		q = q.Where(sq.LtOrEq{"date": *opts.DateTo})
	}

	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit))
	}

	return q.ToSql()
}
