package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/ledger"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testMatchedBill(billID, docMoveID int64, txnID string, bankMoveID int64, amount float64, partner string) models.MatchedTransaction {
	id := billID
	return models.MatchedTransaction{
		DocumentID: models.DocumentKey(models.DocumentTypeBill, billID),
		MatchType:  models.MatchKindSingle,
		TransactionDetails: []models.TransactionDetail{{
			TransactionID: txnID,
			OdooID:        bankMoveID,
			Amount:        models.NewDecimalFromFloat(-amount),
			Date:          "2025-05-20",
		}},
		DocumentDetails: models.DocumentDetails{
			BillID:     &id,
			OdooMoveID: docMoveID,
			Number:     fmt.Sprintf("BILL/2025/%03d", billID),
			Partner:    partner,
			Amount:     models.NewDecimalFromFloat(amount),
			Date:       "2025-05-18",
		},
	}
}

func testMoveLine(id, accountID int64, debit, credit float64) ledger.MoveLine {
	return ledger.MoveLine{
		ID:        id,
		Name:      ledger.NullableString{Value: fmt.Sprintf("LINE/%d", id)},
		Debit:     debit,
		Credit:    credit,
		AccountID: ledger.Many2One{ID: accountID},
	}
}

// expectSettlementWriteBack wires the post-commit database flip: the
// atomic closure runs against the same repository aggregate the mocks
// hang off.
func expectSettlementWriteBack(h testServiceHelper, txnID string, billID int64) {
	h.mockSQLRepository.EXPECT().Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, steps func(context.Context, repositories.SQLRepository) error) error {
			return steps(ctx, h.mockSQLRepository)
		})
	h.mockBankTxnRepository.EXPECT().MarkReconciled(gomock.Any(), []string{txnID}, gomock.Any()).Return(nil)
	h.mockDocumentRepository.EXPECT().MarkSettled(gomock.Any(), models.DocumentTypeBill, []int64{billID}, "go-bank-recon", gomock.Any()).Return(nil)
}

func Test_ReconService_ProcessBatch_BillHappyPath(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	match := testMatchedBill(77, 700, "TXN-100", 510, 250, "Delta Supplies")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{match}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-100")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-100").
		Return(nil, common.ErrDataNotFound)

	docLines := []ledger.MoveLine{
		testMoveLine(7001, 9001, 0, 250),
		testMoveLine(7002, 9002, 250, 0),
	}
	bankLine := testMoveLine(5101, 9001, 250, 0)
	bankLine.Name = ledger.NullableString{Null: true}
	liquidityLine := testMoveLine(5102, 9003, 0, 250)

	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(700), gomock.Any()).Return(docLines, nil)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(510), gomock.Any()).
		Return([]ledger.MoveLine{bankLine, liquidityLine}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9002)).Return("expense", nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9003)).Return("asset_cash", nil)

	h.mockLedgerClient.EXPECT().WriteMoveLine(gomock.Any(), int64(5101), map[string]any{"name": ""}).Return(nil)
	h.mockLedgerClient.EXPECT().FindOrCreatePartner(gomock.Any(), "Delta Supplies").Return(int64(301), nil)
	h.mockLedgerClient.EXPECT().WriteMoveLine(gomock.Any(), int64(5101), map[string]any{"partner_id": int64(301)}).Return(nil)

	h.mockLedgerClient.EXPECT().ReconcileLines(gomock.Any(), []int64{7001, 5101}).Return(nil)

	h.mockReconRecordRepository.EXPECT().Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.ReconciliationRecord) error {
			assert.Equal(t, "TXN-100", record.TransactionID)
			assert.Equal(t, "bill-77", record.DocumentID)
			assert.Equal(t, models.DocumentTypeBill, record.DocumentType)
			assert.Equal(t, models.MatchKindSingle, record.MatchType)
			assert.Equal(t, []int64{7001, 5101}, record.LedgerLineIDs)
			assert.Equal(t, models.ReconStatusReconciled, record.Status)
			assert.Equal(t, 0, record.RetryCount)
			return nil
		})
	expectSettlementWriteBack(h, "TXN-100", 77)
	h.mockCacheRepository.EXPECT().Set(gomock.Any(), models.SettledGuardCacheKey("TXN-100"), "1", time.Minute).Return(nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.TotalMatches)
	assert.Equal(t, 1, result.Reconciled)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, "Successfully reconciled 1/1 transactions. 0 skipped.", result.Message)

	require.Len(t, result.Details, 1)
	assert.Equal(t, "bill-77", result.Details[0].DocumentID)
	assert.Equal(t, models.ReconStatusReconciled, result.Details[0].Status)

	require.Len(t, result.ReconciledTransactions, 1)
	echo := result.ReconciledTransactions[0]
	assert.Equal(t, []string{"TXN-100"}, echo.TransactionIDs)
	assert.Equal(t, []int64{510}, echo.BankMoveIDs)
	assert.Equal(t, int64(700), echo.DocumentMoveID)
	assert.Equal(t, []int64{7001, 5101}, echo.ReconciledLineIDs)
	assert.Equal(t, "Delta Supplies", echo.Partner)

	require.Len(t, result.ReconciledBills, 1)
	assert.Equal(t, "BILL/2025/077", result.ReconciledBills[0].Number)
	assert.Equal(t, int64(700), result.ReconciledBills[0].LedgerMoveID)
	assert.Empty(t, result.ReconciledInvoices)
}

func Test_ReconService_ProcessBatch_Skips(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	guarded := testMatchedBill(81, 810, "TXN-201", 520, 90, "")
	duplicate := testMatchedBill(82, 820, "TXN-202", 530, 120, "")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{guarded, duplicate}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)

	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-201")).
		Return("1", nil)

	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-202")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-202").
		Return(&models.ReconciliationRecord{
			TransactionID: "TXN-202",
			Status:        models.ReconStatusReconciled,
			CreatedAt:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		}, nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)

	assert.True(t, result.Success, "skips never fail a batch")
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 0, result.Reconciled)
	require.Len(t, result.Details, 2)
	assert.Equal(t, models.ReconStatusSkipped, result.Details[0].Status)
	assert.Contains(t, result.Details[0].Reason, "settled moments ago")
	assert.Equal(t, models.ReconStatusSkipped, result.Details[1].Status)
	assert.Contains(t, result.Details[1].Reason, "already reconciled on 2025-06-01")
}

func Test_ReconService_ProcessBatch_FailureIsolation(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	broken := testMatchedBill(91, 910, "TXN-301", 540, 80, "")
	healthy := testMatchedBill(92, 920, "TXN-302", 550, 75, "")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{broken, healthy}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)

	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-301")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-301").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(910), gomock.Any()).
		Return(nil, errors.New("ledger timeout"))

	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-302")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-302").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(920), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(9201, 9001, 0, 75)}, nil)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(550), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(5501, 9001, 75, 0)}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)
	h.mockLedgerClient.EXPECT().ReconcileLines(gomock.Any(), []int64{9201, 5501}).Return(nil)
	h.mockReconRecordRepository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	expectSettlementWriteBack(h, "TXN-302", 92)
	h.mockCacheRepository.EXPECT().Set(gomock.Any(), models.SettledGuardCacheKey("TXN-302"), "1", time.Minute).Return(nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Reconciled)
	assert.Equal(t, "Reconciled 1/2 transactions. 1 failed, 0 skipped.", result.Message)
	require.Len(t, result.Details, 2)
	assert.Equal(t, models.ReconStatusError, result.Details[0].Status)
	assert.Contains(t, result.Details[0].Error, "ledger timeout")
	assert.Equal(t, models.ReconStatusReconciled, result.Details[1].Status)
}

func Test_ReconService_ProcessBatch_AuthFailure(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	in := &models.ReconBatchInput{
		CompanyID:           1,
		MatchedTransactions: []models.MatchedTransaction{testMatchedBill(95, 950, "TXN-400", 560, 30, "")},
	}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(0), errors.New("login rejected"))

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrLedgerAuth)
	assert.Nil(t, result)
}

func Test_ReconService_ProcessBatch_Validation(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	noMove := testMatchedBill(96, 960, "TXN-410", 0, 40, "")
	noMove.TransactionDetails[0].Reference = ""

	tests := []struct {
		name string
		in   *models.ReconBatchInput
	}{
		{name: "empty batch", in: &models.ReconBatchInput{CompanyID: 1}},
		{name: "no ledger handle at all", in: &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{noMove}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.reconService.ProcessBatch(ctx, tt.in)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func Test_ReconService_ProcessBatch_ReferenceFallbackAndConcurrentCommit(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	match := testMatchedBill(97, 970, "TXN-401", 0, 60, "")
	match.TransactionDetails[0].Reference = "STMT-2025-042"
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{match}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-401")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-401").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().SearchMovesByReference(gomock.Any(), "STMT-2025-042").
		Return([]int64{565}, nil)

	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(970), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(9701, 9001, 0, 60)}, nil)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(565), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(5651, 9001, 60, 0)}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)

	// Someone else finished first; the ledger answer counts as success.
	h.mockLedgerClient.EXPECT().ReconcileLines(gomock.Any(), []int64{9701, 5651}).
		Return(common.ErrAlreadyReconciled)

	h.mockReconRecordRepository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	expectSettlementWriteBack(h, "TXN-401", 97)
	h.mockCacheRepository.EXPECT().Set(gomock.Any(), models.SettledGuardCacheKey("TXN-401"), "1", time.Minute).Return(nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Reconciled)
	require.Len(t, result.ReconciledTransactions, 1)
	assert.Equal(t, []int64{565}, result.ReconciledTransactions[0].BankMoveIDs)
}

func Test_ReconService_ProcessBatch_RetryExhaustion(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	match := testMatchedBill(98, 980, "TXN-501", 570, 40, "")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{match}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-501")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-501").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(980), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(9801, 9001, 0, 40)}, nil)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(570), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(5701, 9001, 40, 0)}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)

	h.mockLedgerClient.EXPECT().ReconcileLines(gomock.Any(), []int64{9801, 5701}).
		Return(errors.New("concurrency conflict")).Times(2)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err, "a failing item never fails the batch call")

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Reconciled)
	require.Len(t, result.Details, 1)
	assert.Equal(t, models.ReconStatusError, result.Details[0].Status)
	assert.Contains(t, result.Details[0].Error, "gave up after 2 attempts")
	assert.Contains(t, result.Details[0].Error, "concurrency conflict")
}

func Test_ReconService_ProcessBatch_BalanceDriftStillCommits(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	match := testMatchedBill(99, 990, "TXN-601", 580, 250, "")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{match}}

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-601")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-601").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(990), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(9901, 9001, 0, 250)}, nil)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(580), gomock.Any()).
		Return([]ledger.MoveLine{testMoveLine(5801, 9001, 250.05, 0)}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)
	h.mockLedgerClient.EXPECT().ReconcileLines(gomock.Any(), []int64{9901, 5801}).Return(nil)
	h.mockReconRecordRepository.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
	expectSettlementWriteBack(h, "TXN-601", 99)
	h.mockCacheRepository.EXPECT().Set(gomock.Any(), models.SettledGuardCacheKey("TXN-601"), "1", time.Minute).Return(nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reconciled, "drift inside the ledger's own checks is warned about, not fatal")
}

func Test_ReconService_ProcessBatch_AlreadyReconciledInLedgerSkips(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	match := testMatchedBill(101, 1010, "TXN-701", 590, 35, "")
	in := &models.ReconBatchInput{CompanyID: 1, MatchedTransactions: []models.MatchedTransaction{match}}

	reconciledLine := testMoveLine(10101, 9001, 0, 35)
	reconciledLine.Reconciled = true

	h.mockLedgerClient.EXPECT().Authenticate(gomock.Any()).Return(int64(7), nil)
	h.mockCacheRepository.EXPECT().Get(gomock.Any(), models.SettledGuardCacheKey("TXN-701")).
		Return("", common.ErrDataNotFound)
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-701").
		Return(nil, common.ErrDataNotFound)
	h.mockLedgerClient.EXPECT().ReadMoveLines(gomock.Any(), int64(1010), gomock.Any()).
		Return([]ledger.MoveLine{reconciledLine}, nil)
	h.mockLedgerClient.EXPECT().AccountType(gomock.Any(), int64(9001)).Return(models.AccountTypePayable, nil)

	result, err := h.reconService.ProcessBatch(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Details, 1)
	assert.Contains(t, result.Details[0].Reason, "already reconciled in ledger")
}

func Test_ReconService_GetListReconRecords(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	opts := models.ReconRecordFilter{Status: models.ReconStatusReconciled, Limit: 10}
	records := []models.ReconciliationRecord{
		{ID: 1, TransactionID: "TXN-1", DocumentID: "bill-10"},
		{ID: 2, TransactionID: "TXN-2", DocumentID: "invoice-4"},
	}

	h.mockReconRecordRepository.EXPECT().GetList(gomock.Any(), opts).Return(records, nil)
	h.mockReconRecordRepository.EXPECT().CountAll(gomock.Any(), opts).Return(8, nil)

	got, total, err := h.reconService.GetListReconRecords(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, 8, total)
}

func Test_ReconService_GetListReconRecords_Empty(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	opts := models.ReconRecordFilter{TransactionID: "TXN-MISSING"}
	h.mockReconRecordRepository.EXPECT().GetList(gomock.Any(), opts).
		Return([]models.ReconciliationRecord{}, nil)

	got, total, err := h.reconService.GetListReconRecords(ctx, opts)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, total, "counting is skipped when the page is empty")
}

func Test_ReconService_GetReconRecordByTransactionID(t *testing.T) {
	h := serviceTestHelper(t)
	ctx := context.Background()

	record := &models.ReconciliationRecord{ID: 5, TransactionID: "TXN-55", Status: models.ReconStatusReconciled}
	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-55").Return(record, nil)

	got, err := h.reconService.GetReconRecordByTransactionID(ctx, "TXN-55")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	h.mockReconRecordRepository.EXPECT().GetByTransactionID(gomock.Any(), "TXN-56").
		Return(nil, common.ErrDataNotFound)

	_, err = h.reconService.GetReconRecordByTransactionID(ctx, "TXN-56")
	require.Error(t, err)

	var detail models.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "40401", detail.Code)
}
