package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

type MatchingService interface {
	Run(ctx context.Context, req models.RunMatchingRequest) (*models.MatchReport, error)
}

type matching service

var _ MatchingService = (*matching)(nil)

// Run collects the unreconciled transactions and open documents of one
// company and pushes them through the matching pipeline: amount gate,
// context classification, flexible scoring, single pass, combination
// pass, validation. The returned report carries every per-transaction
// verdict plus the full decision trace.
func (m *matching) Run(ctx context.Context, req models.RunMatchingRequest) (report *models.MatchReport, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := common.Now()

	if err = validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	txns, docs, err := m.collectCandidates(ctx, req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidFormatDate) {
			return nil, err
		}
		xlog.Errorf(ctx, "candidate collection failed: %v", err)
		return nil, fmt.Errorf("%w: %v", common.ErrCollectionFailed, err)
	}

	results, trace, err := m.runEngine(ctx, txns, docs)
	if err != nil {
		return nil, err
	}

	report = &models.MatchReport{
		CompanyID: req.CompanyID,
		RunAt:     startTime,
		Results:   results,
		Summary:   buildMatchSummary(results, len(docs)),
		Trace:     trace,
	}

	xlog.Info(ctx, "[MATCHING-RUN]",
		xlog.Int64("company_id", req.CompanyID),
		xlog.Int("transactions", report.Summary.TotalTransactions),
		xlog.Int("documents", report.Summary.TotalDocuments),
		xlog.Int("single_pass", report.Summary.SinglePass),
		xlog.Int("combination_pass", report.Summary.CombinationPass),
		xlog.Int("unmatched", report.Summary.Unmatched),
		xlog.String("status", string(report.Summary.Status)),
	)

	m.srv.metrics.GetMatchingPrometheus().Record(startTime, report)

	if m.srv.conf.FeatureFlag.EnableReportExport {
		url, exportErr := m.exportMatchReport(ctx, report)
		if exportErr != nil {
			xlog.Errorf(ctx, "failed to export match report: %v", exportErr)
		} else {
			xlog.Info(ctx, "[MATCHING-RUN]", xlog.String("report_url", url))
		}
	}

	return report, nil
}

// collectCandidates is the read-only collector stage. Settled documents
// and reconciled transactions are excluded at the query level already.
func (m *matching) collectCandidates(ctx context.Context, req models.RunMatchingRequest) ([]models.BankTransaction, []models.FinancialDocument, error) {
	var dateFrom, dateTo *time.Time
	if req.DateFrom != "" {
		from, err := time.Parse(common.DateFormatYYYYMMDD, req.DateFrom)
		if err != nil {
			return nil, nil, common.ErrInvalidFormatDate
		}
		dateFrom = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse(common.DateFormatYYYYMMDD, req.DateTo)
		if err != nil {
			return nil, nil, common.ErrInvalidFormatDate
		}
		dateTo = &to
	}

	txns, err := m.srv.sqlRepo.GetBankTransactionRepository().GetUnreconciled(ctx, models.BankTransactionFilter{
		CompanyID: req.CompanyID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Limit:     m.srv.conf.Matching.BatchSize,
	})
	if err != nil {
		return nil, nil, err
	}

	docs, err := m.srv.sqlRepo.GetFinancialDocumentRepository().GetOpenDocuments(ctx, models.DocumentFilter{
		CompanyID: req.CompanyID,
		Limit:     m.srv.conf.Matching.BatchSize,
	})
	if err != nil {
		return nil, nil, err
	}

	return txns, docs, nil
}

func (m *matching) exportMatchReport(ctx context.Context, report *models.MatchReport) (string, error) {
	chanData := make(chan []byte)
	go func() {
		defer close(chanData)
		chanData <- []byte(fmt.Sprintf("%s\n", strings.Join(models.MATCH_REPORT_HEADER, models.CSV_SEPARATOR)))
		for _, res := range report.Results {
			chanData <- []byte(fmt.Sprintf("%s\n", strings.Join(res.ToReportRow(), models.CSV_SEPARATOR)))
		}
	}()

	gcsPayload := models.CloudStoragePayload{
		Filename: fmt.Sprintf("%s_%s.csv", models.MatchReportName, report.RunAt.Format(common.DateFormatYYYYMMDDHHMMSSWithoutDash)),
		Path:     fmt.Sprintf("%s/%04d/%02d", models.ReconFolderName, report.RunAt.Year(), report.RunAt.Month()),
	}
	r := m.srv.cloudStorage.WriteStream(ctx, &gcsPayload, chanData)

	return r.Wait()
}
