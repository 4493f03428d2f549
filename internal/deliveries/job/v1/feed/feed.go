package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
	"github.com/atlasledger/go-bank-recon/internal/services"
)

type feedHandler struct {
	feedSrv      services.FeedService
	cloudStorage repositories.CloudStorageRepository
}

func Routes(fs services.FeedService, cloudStorage repositories.CloudStorageRepository) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := feedHandler{feedSrv: fs, cloudStorage: cloudStorage}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ImportFeedFromStorage": handler.ImportFeedFromStorage,
	}
}

// ImportFeedFromStorage pulls a feed object from the bucket and loads its
// rows into the store. Both imports run even when one reports rejected
// rows, the combined error carries the per-row detail.
func (fh *feedHandler) ImportFeedFromStorage(ctx context.Context, date time.Time, flag flag.Job) error {
	payload := models.NewCloudStoragePayload(flag.FileName)

	reader, err := fh.cloudStorage.NewReader(ctx, &payload)
	if err != nil {
		return fmt.Errorf("open feed object %s: %w", flag.FileName, err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read feed object %s: %w", flag.FileName, err)
	}

	var feedInput models.FeedInput
	if err = json.Unmarshal(raw, &feedInput); err != nil {
		return fmt.Errorf("error unmarshal json: %w", err)
	}

	storedTxns, txnErr := fh.feedSrv.ImportBankTransactions(ctx, feedInput.BankTransactions)
	storedDocs, docErr := fh.feedSrv.ImportFinancialDocuments(ctx, feedInput.FinancialDocuments)

	xlog.Info(ctx, "ImportFeedFromStorage",
		xlog.String("file", flag.FileName),
		xlog.Int("bank-transactions", storedTxns),
		xlog.Int("financial-documents", storedDocs),
	)

	return errors.Join(txnErr, docErr)
}
