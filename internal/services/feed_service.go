package services

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

// FeedService ingests bank rows and open documents into the store.
// Rows failing structural checks are rejected individually, the rest of
// the feed still lands.
type FeedService interface {
	ImportBankTransactions(ctx context.Context, txns []models.BankTransaction) (stored int, err error)
	ImportFinancialDocuments(ctx context.Context, docs []models.FinancialDocument) (stored int, err error)
}

type feed service

var _ FeedService = (*feed)(nil)

func (f *feed) ImportBankTransactions(ctx context.Context, txns []models.BankTransaction) (stored int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var errs *multierror.Error
	valid := make([]models.BankTransaction, 0, len(txns))
	for _, txn := range txns {
		if errRow := validateFeedTransaction(txn); errRow != nil {
			errs = multierror.Append(errs, errRow)
			continue
		}
		valid = append(valid, txn)
	}

	if len(valid) > 0 {
		if err = f.srv.sqlRepo.GetBankTransactionRepository().StoreBulk(ctx, valid); err != nil {
			err = checkDatabaseError(err)
			return
		}
	}

	xlog.Info(ctx, "[FEED-IMPORT]",
		xlog.Int("bank_transactions", len(valid)),
		xlog.Int("rejected", len(txns)-len(valid)))

	return len(valid), errs.ErrorOrNil()
}

func (f *feed) ImportFinancialDocuments(ctx context.Context, docs []models.FinancialDocument) (stored int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var errs *multierror.Error
	valid := make([]models.FinancialDocument, 0, len(docs))
	for _, doc := range docs {
		if errRow := validateFeedDocument(doc); errRow != nil {
			errs = multierror.Append(errs, errRow)
			continue
		}
		valid = append(valid, doc)
	}

	if len(valid) > 0 {
		if err = f.srv.sqlRepo.GetFinancialDocumentRepository().StoreBulk(ctx, valid); err != nil {
			err = checkDatabaseError(err)
			return
		}
	}

	xlog.Info(ctx, "[FEED-IMPORT]",
		xlog.Int("documents", len(valid)),
		xlog.Int("rejected", len(docs)-len(valid)))

	return len(valid), errs.ErrorOrNil()
}

func validateFeedTransaction(txn models.BankTransaction) error {
	switch {
	case txn.ID == "":
		return fmt.Errorf("bank transaction without id")
	case txn.CompanyID == 0:
		return fmt.Errorf("bank transaction %s has no company", txn.ID)
	case txn.Date.IsZero():
		return fmt.Errorf("bank transaction %s has no date", txn.ID)
	}
	return nil
}

func validateFeedDocument(doc models.FinancialDocument) error {
	switch {
	case doc.ID == 0:
		return fmt.Errorf("document without id")
	case !doc.Type.Valid():
		return fmt.Errorf("document %d has unknown type %q", doc.ID, doc.Type)
	case doc.CompanyID == 0:
		return fmt.Errorf("document %s has no company", models.DocumentKey(doc.Type, doc.ID))
	case doc.Date.IsZero():
		return fmt.Errorf("document %s has no date", models.DocumentKey(doc.Type, doc.ID))
	}
	return nil
}
