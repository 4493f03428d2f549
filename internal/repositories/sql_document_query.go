package repositories

import (
	"github.com/atlasledger/go-bank-recon/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const markDocumentsSettledQuery = `
	UPDATE documents
	SET
		settled = TRUE,
		settled_by = $1,
		settled_at = $2,
		updated_at = now()
	WHERE type = $3 AND id = ANY($4)`

var documentColumns = []string{
	"id",
	"type",
	"company_id",
	"number",
	"partner_name",
	"description",
	"amount",
	"currency",
	"date",
	"ledger_move_id",
	"settled",
	"settled_at",
	"settled_by",
	"created_at",
	"updated_at",
}

// buildOpenDocumentsQuery excludes settled documents at the source, they
// must never be offered to the matcher again.
func buildOpenDocumentsQuery(opts models.DocumentFilter) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	q := psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"company_id": opts.CompanyID}).
		Where(sq.Eq{"settled": false}).
		OrderBy("date ASC", "id ASC")

	if len(opts.Types) > 0 {
		q = q.Where(sq.Eq{"type": opts.Types})
	}

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
