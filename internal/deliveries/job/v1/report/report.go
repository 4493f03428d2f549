package report

import (
	"context"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/flag"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services"
)

type reportHandler struct {
	matchingSrv services.MatchingService
}

func Routes(ms services.MatchingService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := reportHandler{
		matchingSrv: ms,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"RunMatching": handler.RunMatching,
		// add more job here
	}
}

// RunMatching executes one matching pass for a company and logs the
// summary. Report export to cloud storage happens inside the service
// when enabled.
func (rh *reportHandler) RunMatching(ctx context.Context, date time.Time, flag flag.Job) error {
	report, err := rh.matchingSrv.Run(ctx, models.RunMatchingRequest{
		CompanyID: flag.CompanyID,
		DateFrom:  flag.DateFrom,
		DateTo:    flag.DateTo,
	})
	if err != nil {
		return err
	}

	xlog.Info(ctx, "RunMatching",
		xlog.Int64("company-id", report.CompanyID),
		xlog.Int("transactions", report.Summary.TotalTransactions),
		xlog.Int("single-pass", report.Summary.SinglePass),
		xlog.Int("combination-pass", report.Summary.CombinationPass),
		xlog.Int("unmatched", report.Summary.Unmatched),
		xlog.String("status", string(report.Summary.Status)),
	)

	return nil
}
