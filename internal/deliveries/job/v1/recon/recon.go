package recon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"
)

type reconHandler struct {
	matchingSrv services.MatchingService
	reconSrv    services.ReconService
}

func Routes(ms services.MatchingService, rs services.ReconService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := reconHandler{matchingSrv: ms, reconSrv: rs}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"ReconcileFromFile": handler.ReconcileFromFile,
		"MatchAndReconcile": handler.MatchAndReconcile,
	}
}

// MatchAndReconcile runs one matching pass for a company and hands every
// matched result straight to the reconciliation executor.
func (rh *reconHandler) MatchAndReconcile(ctx context.Context, date time.Time, flag flag.Job) error {
	report, err := rh.matchingSrv.Run(ctx, models.RunMatchingRequest{
		CompanyID: flag.CompanyID,
		DateFrom:  flag.DateFrom,
		DateTo:    flag.DateTo,
	})
	if err != nil {
		return err
	}

	batch := report.ToBatchInput()
	if len(batch.MatchedTransactions) == 0 {
		xlog.Info(ctx, "MatchAndReconcile",
			xlog.Int64("company-id", report.CompanyID),
			xlog.Int("transactions", report.Summary.TotalTransactions),
			xlog.String("result", "nothing matched"),
		)
		return nil
	}

	result, err := rh.reconSrv.ProcessBatch(ctx, &batch)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "MatchAndReconcile",
		xlog.Int64("company-id", report.CompanyID),
		xlog.Int("matched", len(batch.MatchedTransactions)),
		xlog.Int("reconciled", result.Reconciled),
		xlog.Int("failed", result.Failed),
		xlog.Int("skipped", result.Skipped),
	)

	return nil
}

// ReconcileFromFile replays a matched batch from a local JSON file, the
// same payload shape the kafka consumer receives.
func (rh *reconHandler) ReconcileFromFile(ctx context.Context, date time.Time, flag flag.Job) error {
	raw, err := os.ReadFile(flag.FileName)
	if err != nil {
		return fmt.Errorf("read batch file %s: %w", flag.FileName, err)
	}

	var batch models.ReconBatchInput
	if err = json.Unmarshal(raw, &batch); err != nil {
		return fmt.Errorf("error unmarshal json: %w", err)
	}
	if err = validation.ValidateStruct(&batch); err != nil {
		return fmt.Errorf("invalid recon batch payload: %w", err)
	}

	result, err := rh.reconSrv.ProcessBatch(ctx, &batch)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "ReconcileFromFile",
		xlog.String("file", flag.FileName),
		xlog.Int("total-matches", result.TotalMatches),
		xlog.Int("reconciled", result.Reconciled),
		xlog.Int("failed", result.Failed),
		xlog.Int("skipped", result.Skipped),
	)

	return nil
}
