package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/ledger"
	"github.com/atlasledger/go-bank-recon/internal/common/publisher"
	"github.com/atlasledger/go-bank-recon/internal/common/validation"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
)

const (
	// moveLinesReadLimit bounds one journal-entry read. Payroll moves are
	// the widest and stay well under this.
	moveLinesReadLimit = 200

	defaultBalanceTolerance = 0.01
)

// reconTask carries one matched transaction through the executor states.
type reconTask struct {
	state models.ReconState
	match *models.MatchedTransaction

	docType models.DocumentType
	// bankMoveIDs align with match.TransactionDetails after the
	// idempotency stage resolved missing ledger ids.
	bankMoveIDs []int64
	lines       []ledger.MoveLine
	retries     int

	skipReason string
	failErr    error
}

func (t *reconTask) lineIDs() []int64 {
	ids := make([]int64, len(t.lines))
	for i, line := range t.lines {
		ids[i] = line.ID
	}
	return ids
}

func (t *reconTask) transactionIDs() []string {
	var ids []string
	for _, td := range t.match.TransactionDetails {
		if td.TransactionID != "" {
			ids = append(ids, td.TransactionID)
		}
	}
	return ids
}

// ProcessBatch runs the reconciliation executor over one batch of
// matched transactions. Items are isolated from each other: a failing
// item is recorded and the batch moves on. Only a failed ledger
// authentication aborts the whole batch, since nothing can commit
// without it.
func (r *recon) ProcessBatch(ctx context.Context, in *models.ReconBatchInput) (result *models.ReconBatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	startTime := common.Now()

	if err = validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	if _, err = r.srv.ledgerClient.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrLedgerAuth, err)
	}

	result = models.NewReconBatchResult(len(in.MatchedTransactions))

	for i := range in.MatchedTransactions {
		r.processMatch(ctx, &in.MatchedTransactions[i], result)
	}

	result.Finalize()

	xlog.Info(ctx, "[RECON-BATCH]",
		xlog.Int64("company_id", in.CompanyID),
		xlog.Int("total_matches", result.TotalMatches),
		xlog.Int("reconciled", result.Reconciled),
		xlog.Int("failed", result.Failed),
		xlog.Int("skipped", result.Skipped))

	r.srv.metrics.GetReconPrometheus().Record(startTime, result)

	if r.srv.conf.FeatureFlag.EnablePublishReconCompleted {
		r.publishReconCompleted(ctx, in.CompanyID, result)
	}

	if r.srv.conf.FeatureFlag.EnableReportExport {
		url, errExport := r.exportReconResult(ctx, result)
		if errExport != nil {
			xlog.Errorf(ctx, "failed to export recon result: %v", errExport)
		} else {
			xlog.Info(ctx, "[RECON-BATCH]", xlog.String("result_url", url))
		}
	}

	return result, nil
}

// processMatch walks one matched transaction through the state machine.
// Every stage either advances the state, flags a skip, or fails the
// item; the two terminal states settle the batch result.
func (r *recon) processMatch(ctx context.Context, match *models.MatchedTransaction, result *models.ReconBatchResult) {
	task := &reconTask{state: models.ReconStatePending, match: match}

	for {
		var err error
		switch task.state {
		case models.ReconStatePending:
			err = r.taskPrepare(ctx, task)
		case models.ReconStateCheckIdempotent:
			err = r.taskCheckIdempotent(ctx, task)
		case models.ReconStateResolveLines:
			err = r.taskResolveLines(ctx, task)
		case models.ReconStateValidateBalance:
			err = r.taskValidateBalance(ctx, task)
		case models.ReconStateCommit:
			err = r.taskCommit(ctx, task)
		case models.ReconStateDone:
			result.AddReconciled(task.reconciledTransaction(), task.reconciledDocument())
			return
		case models.ReconStateFailed:
			xlog.Errorf(ctx, "reconciliation failed for %s: %v", match.DocumentID, task.failErr)
			result.AddFailed(match.DocumentID, task.failErr)
			return
		}

		if task.skipReason != "" {
			xlog.Info(ctx, "[RECON-SKIP]",
				xlog.String("document_id", match.DocumentID),
				xlog.String("reason", task.skipReason))
			result.AddSkipped(match.DocumentID, task.skipReason)
			return
		}
		if err != nil {
			task.failErr = err
			task.state = models.ReconStateFailed
		}
	}
}

// taskPrepare resolves the document type and consults the settled guard,
// which covers the window between a commit and its database writeback. A
// degraded cache only loses the guard, the database check still stands.
func (r *recon) taskPrepare(ctx context.Context, task *reconTask) error {
	docType, err := task.match.DocumentDetails.Type()
	if err != nil {
		return err
	}
	task.docType = docType

	for _, txnID := range task.transactionIDs() {
		val, errCache := r.srv.cacheRepo.Get(ctx, models.SettledGuardCacheKey(txnID))
		if errCache != nil {
			if !errors.Is(errCache, common.ErrDataNotFound) {
				xlog.Warnf(ctx, "settled guard lookup degraded for %s: %v", txnID, errCache)
			}
			continue
		}
		if val != "" {
			task.skipReason = fmt.Sprintf("transaction %s was settled moments ago", txnID)
			return nil
		}
	}

	task.state = models.ReconStateCheckIdempotent
	return nil
}

// taskCheckIdempotent skips transactions that already carry an audit
// record and resolves the bank-side ledger moves, falling back to a
// reference search when the feed never delivered the move id.
func (r *recon) taskCheckIdempotent(ctx context.Context, task *reconTask) error {
	recRepo := r.srv.sqlRepo.GetReconRecordRepository()

	task.bankMoveIDs = make([]int64, 0, len(task.match.TransactionDetails))
	for _, td := range task.match.TransactionDetails {
		if td.TransactionID != "" {
			record, err := recRepo.GetByTransactionID(ctx, td.TransactionID)
			if err != nil && !errors.Is(err, common.ErrDataNotFound) {
				return err
			}
			if record != nil && err == nil {
				task.skipReason = fmt.Sprintf("transaction %s already reconciled on %s",
					td.TransactionID, record.CreatedAt.Format(common.DateFormatYYYYMMDD))
				return nil
			}
		}

		moveID := td.OdooID
		if moveID == 0 && td.Reference != "" {
			moveIDs, err := r.srv.ledgerClient.SearchMovesByReference(ctx, td.Reference)
			if err != nil {
				return err
			}
			if len(moveIDs) > 0 {
				moveID = moveIDs[0]
			}
		}
		if moveID == 0 {
			return fmt.Errorf("%w: %s", common.ErrTransactionNoLedgerId, td.TransactionID)
		}

		task.bankMoveIDs = append(task.bankMoveIDs, moveID)
	}

	task.state = models.ReconStateResolveLines
	return nil
}

// taskResolveLines reads the document move and every bank move, picks
// the open lines on the account type the document settles against, and
// repairs line names the ledger would reject during reconcile.
func (r *recon) taskResolveLines(ctx context.Context, task *reconTask) error {
	assignment, err := task.match.DocumentDetails.ResolveAccounts()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAccountResolution, err)
	}

	accept := map[string]bool{}
	if assignment.IsPerLine() {
		for _, accountType := range assignment.Accounts() {
			accept[accountType] = true
		}
	} else {
		accept[assignment.Account()] = true
	}

	accountTypes := map[int64]string{}
	accountTypeOf := func(accountID int64) (string, error) {
		if t, ok := accountTypes[accountID]; ok {
			return t, nil
		}
		t, err := r.srv.ledgerClient.AccountType(ctx, accountID)
		if err != nil {
			return "", err
		}
		accountTypes[accountID] = t
		return t, nil
	}

	docLines, err := r.pickRoleLines(ctx, task.match.DocumentDetails.MoveID(), accept, accountTypeOf)
	if err != nil {
		return err
	}
	if len(docLines.open) == 0 {
		if docLines.reconciled > 0 {
			task.skipReason = fmt.Sprintf("document %s already reconciled in ledger", task.match.DocumentID)
			return nil
		}
		return fmt.Errorf("%w: document move %d", common.ErrNoReconcilableLine, task.match.DocumentDetails.MoveID())
	}

	var bankLines []ledger.MoveLine
	for i, moveID := range task.bankMoveIDs {
		picked, err := r.pickRoleLines(ctx, moveID, accept, accountTypeOf)
		if err != nil {
			return err
		}
		if len(picked.open) == 0 {
			if picked.reconciled > 0 {
				task.skipReason = fmt.Sprintf("bank transaction %s already reconciled in ledger",
					task.match.TransactionDetails[i].TransactionID)
				return nil
			}
			return fmt.Errorf("%w: bank move %d", common.ErrNoReconcilableLine, moveID)
		}
		bankLines = append(bankLines, picked.open...)
	}

	task.lines = append(docLines.open, bankLines...)

	for _, line := range task.lines {
		if line.Name.Null {
			if err := r.srv.ledgerClient.WriteMoveLine(ctx, line.ID, map[string]any{"name": ""}); err != nil {
				return fmt.Errorf("repair line %d name: %w", line.ID, err)
			}
		}
	}

	if r.srv.conf.FeatureFlag.EnablePartnerTagging {
		r.tagPartner(ctx, bankLines, task.match.DocumentDetails.PartnerName())
	}

	task.state = models.ReconStateValidateBalance
	return nil
}

// roleLines is what one move contributes on the settlement account.
type roleLines struct {
	open       []ledger.MoveLine
	reconciled int
}

func (r *recon) pickRoleLines(ctx context.Context, moveID int64, accept map[string]bool, accountTypeOf func(int64) (string, error)) (roleLines, error) {
	var picked roleLines

	lines, err := r.srv.ledgerClient.ReadMoveLines(ctx, moveID, moveLinesReadLimit)
	if err != nil {
		return picked, err
	}

	for _, line := range lines {
		accountType, err := accountTypeOf(line.AccountID.ID)
		if err != nil {
			return picked, err
		}
		if !accept[accountType] {
			continue
		}
		if line.Reconciled {
			picked.reconciled++
			continue
		}
		picked.open = append(picked.open, line)
	}

	return picked, nil
}

// tagPartner stamps the document counter-party on untagged bank lines.
// Tagging is bookkeeping hygiene, never a reason to fail the commit.
func (r *recon) tagPartner(ctx context.Context, bankLines []ledger.MoveLine, partnerName string) {
	if partnerName == "" {
		return
	}

	partnerID, err := r.srv.ledgerClient.FindOrCreatePartner(ctx, partnerName)
	if err != nil {
		xlog.Warnf(ctx, "failed to resolve partner %q: %v", partnerName, err)
		return
	}

	for _, line := range bankLines {
		if !line.PartnerID.IsZero() {
			continue
		}
		if err := r.srv.ledgerClient.WriteMoveLine(ctx, line.ID, map[string]any{"partner_id": partnerID}); err != nil {
			xlog.Warnf(ctx, "failed to tag partner on line %d: %v", line.ID, err)
		}
	}
}

// taskValidateBalance sums debit minus credit over the selected lines.
// Drift beyond the tolerance is logged and the commit proceeds; the
// ledger rejects anything truly unbalanced on its own.
func (r *recon) taskValidateBalance(ctx context.Context, task *reconTask) error {
	var sum float64
	for _, line := range task.lines {
		sum += line.Balance()
	}

	tolerance := r.srv.conf.Reconciler.BalanceTolerance
	if tolerance <= 0 {
		tolerance = defaultBalanceTolerance
	}

	if math.Abs(sum) > tolerance {
		xlog.Warn(ctx, "[RECON-BALANCE]",
			xlog.String("document_id", task.match.DocumentID),
			xlog.Float64("balance", sum),
			xlog.Float64("tolerance", tolerance))
	}

	task.state = models.ReconStateCommit
	return nil
}

// taskCommit reconciles the lines with retries, then writes the audit
// records and flips the database state. A concurrent "already
// reconciled" answer from the ledger counts as success: someone finished
// the same job first.
func (r *recon) taskCommit(ctx context.Context, task *reconTask) error {
	lineIDs := task.lineIDs()

	attempts := 0
	var lastErr error
	err := r.srv.retryer.Retry(ctx, func() error {
		attempts++
		errReconcile := r.srv.ledgerClient.ReconcileLines(ctx, lineIDs)
		if errReconcile == nil {
			return nil
		}
		if errors.Is(errReconcile, common.ErrAlreadyReconciled) {
			xlog.Warnf(ctx, "lines already reconciled for %s, treating as success", task.match.DocumentID)
			return nil
		}
		lastErr = errReconcile
		r.srv.metrics.GetReconPrometheus().RecordRetry()
		return errReconcile
	}, func() error {
		return fmt.Errorf("reconcile gave up after %d attempts: %w", attempts, lastErr)
	})
	if err != nil {
		task.retries = attempts - 1
		return err
	}
	task.retries = attempts - 1

	r.storeRecords(ctx, task)
	r.writeBack(ctx, task)
	r.armSettledGuard(ctx, task)

	task.state = models.ReconStateDone
	return nil
}

// storeRecords appends one audit row per bank transaction. The ledger
// lines are already reconciled at this point, so a write failure is
// logged loudly instead of failing the item; the ledger-side check
// catches any resubmission.
func (r *recon) storeRecords(ctx context.Context, task *reconTask) {
	recRepo := r.srv.sqlRepo.GetReconRecordRepository()
	lineIDs := task.lineIDs()

	for _, txnID := range task.transactionIDs() {
		record := &models.ReconciliationRecord{
			TransactionID: txnID,
			DocumentID:    task.match.DocumentID,
			DocumentType:  task.docType,
			MatchType:     task.match.MatchType,
			LedgerLineIDs: lineIDs,
			Status:        models.ReconStatusReconciled,
			RetryCount:    task.retries,
		}
		if err := recRepo.Store(ctx, record); err != nil {
			if errors.Is(err, common.ErrReconRecordExists) {
				xlog.Warnf(ctx, "audit record already exists for %s", txnID)
				continue
			}
			xlog.Errorf(ctx, "failed to store audit record for %s: %v", txnID, err)
		}
	}
}

// writeBack marks the bank transactions reconciled and the document
// settled in one transaction, so the two sides never drift apart.
func (r *recon) writeBack(ctx context.Context, task *reconTask) {
	now := common.Now()
	txnIDs := task.transactionIDs()
	settledBy := r.srv.conf.App.Name

	err := r.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, repo repositories.SQLRepository) error {
		if len(txnIDs) > 0 {
			if err := repo.GetBankTransactionRepository().MarkReconciled(ctx, txnIDs, now); err != nil {
				return err
			}
		}
		return repo.GetFinancialDocumentRepository().MarkSettled(ctx,
			task.docType, []int64{task.match.DocumentDetails.DocumentID()}, settledBy, now)
	})
	if err != nil {
		xlog.Errorf(ctx, "writeback failed for %s: %v", task.match.DocumentID, err)
	}
}

func (r *recon) armSettledGuard(ctx context.Context, task *reconTask) {
	ttl := r.srv.conf.Reconciler.SettledGuardTTL
	if ttl <= 0 {
		return
	}

	for _, txnID := range task.transactionIDs() {
		if err := r.srv.cacheRepo.Set(ctx, models.SettledGuardCacheKey(txnID), "1", ttl); err != nil {
			xlog.Warnf(ctx, "failed to arm settled guard for %s: %v", txnID, err)
		}
	}
}

func (t *reconTask) reconciledTransaction() models.ReconciledTransaction {
	return models.ReconciledTransaction{
		DocumentID:        t.match.DocumentID,
		DocumentType:      t.docType,
		TransactionIDs:    t.transactionIDs(),
		BankMoveIDs:       t.bankMoveIDs,
		DocumentMoveID:    t.match.DocumentDetails.MoveID(),
		Partner:           t.match.DocumentDetails.PartnerName(),
		Amount:            t.match.DocumentDetails.Amount,
		ReconciledLineIDs: t.lineIDs(),
	}
}

func (t *reconTask) reconciledDocument() models.ReconciledDocument {
	dd := t.match.DocumentDetails
	return models.ReconciledDocument{
		DocumentID:   t.match.DocumentID,
		DocumentType: t.docType,
		LedgerMoveID: dd.MoveID(),
		Number:       dd.Number,
		Partner:      dd.PartnerName(),
		Amount:       dd.Amount,
		Date:         dd.Date,
		Reference:    dd.Reference,
		Description:  dd.Description,
	}
}

func (r *recon) publishReconCompleted(ctx context.Context, companyID int64, result *models.ReconBatchResult) {
	event := models.ReconCompletedEvent{
		BatchID:      r.srv.idgenerator.Generate("recon"),
		CompanyID:    companyID,
		Success:      result.Success,
		TotalMatches: result.TotalMatches,
		Reconciled:   result.Reconciled,
		Failed:       result.Failed,
		Skipped:      result.Skipped,
		CompletedAt:  common.Now(),
	}

	opts := []publisher.PublishOption{
		publisher.WithKey(event.BatchID),
		publisher.WithHeaders(map[string]string{
			ctxdata.CorrelationIdHeader: ctxdata.GetCorrelationId(ctx),
		}),
	}

	if err := r.srv.reconPub.Publish(ctx, event, opts...); err != nil {
		xlog.Errorf(ctx, "failed to publish recon completed event: %v", err)
	}
}

func (r *recon) exportReconResult(ctx context.Context, result *models.ReconBatchResult) (string, error) {
	now := common.Now()

	chanData := make(chan []byte)
	go func() {
		defer close(chanData)
		chanData <- []byte(fmt.Sprintf("%s\n", strings.Join(models.RECON_RESULT_HEADER, models.CSV_SEPARATOR)))
		for _, detail := range result.Details {
			chanData <- []byte(fmt.Sprintf("%s\n", strings.Join(detail.ToReportRow(), models.CSV_SEPARATOR)))
		}
	}()

	gcsPayload := models.CloudStoragePayload{
		Filename: fmt.Sprintf("%s_%s.csv", models.ReconResultName, now.Format(common.DateFormatYYYYMMDDHHMMSSWithoutDash)),
		Path:     fmt.Sprintf("%s/%04d/%02d", models.ReconFolderName, now.Year(), now.Month()),
	}
	res := r.srv.cloudStorage.WriteStream(ctx, &gcsPayload, chanData)

	return res.Wait()
}
