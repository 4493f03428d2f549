package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"

	"github.com/google/go-cmp/cmp"
)

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(a, b Decimal) bool {
		return a.Decimal.Equal(b.Decimal)
	})
}

func TestGroupBatchInput(t *testing.T) {
	txn := func(id string, moveID int64, amount float64) BankTransaction {
		return BankTransaction{
			ID:           id,
			LedgerMoveID: moveID,
			Amount:       NewDecimalFromFloat(amount),
			Date:         time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		}
	}
	doc := func(id int64, docType DocumentType, moveID int64, amount float64) FinancialDocument {
		return FinancialDocument{
			ID:           id,
			Type:         docType,
			Number:       "DOC/2025/001",
			PartnerName:  "Delta Supplies",
			Amount:       NewDecimalFromFloat(amount),
			Date:         time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC),
			LedgerMoveID: moveID,
		}
	}
	detail := func(id string, moveID int64, amount float64) TransactionDetail {
		return TransactionDetail{
			TransactionID: id,
			OdooID:        moveID,
			Amount:        NewDecimalFromFloat(amount),
			Date:          "2025-05-20",
		}
	}
	docDetails := func(moveID int64, amount float64) DocumentDetails {
		return DocumentDetails{
			OdooMoveID: moveID,
			Number:     "DOC/2025/001",
			Partner:    "Delta Supplies",
			Amount:     NewDecimalFromFloat(amount),
			Date:       "2025-05-18",
		}
	}

	billID, invoiceID := int64(77), int64(77)

	tests := []struct {
		name    string
		results []MatchResult
		want    []MatchedTransaction
	}{
		{
			name: "single match becomes one tagged entry",
			results: []MatchResult{
				{
					Transaction: txn("TXN-100", 510, -250.75),
					Documents:   []FinancialDocument{doc(77, DocumentTypeBill, 700, 250.75)},
					Matched:     true,
					Kind:        MatchKindSingle,
				},
				{Transaction: txn("TXN-101", 511, -42), Matched: false, Reason: ReasonAmountMismatch},
			},
			want: []MatchedTransaction{
				{
					DocumentID:         "bill-77",
					MatchType:          MatchKindSingle,
					TransactionDetails: []TransactionDetail{detail("TXN-100", 510, -250.75)},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(700, 250.75)
						dd.BillID = &billID
						return dd
					}(),
				},
			},
		},
		{
			name: "transaction combination regroups under the shared document",
			results: []MatchResult{
				{
					Transaction: txn("TXN-200", 520, -600),
					Documents:   []FinancialDocument{doc(30, DocumentTypeInvoice, 730, 1000)},
					Matched:     true,
					Kind:        MatchKindTransactionCombination,
				},
				{
					Transaction: txn("TXN-201", 521, -400),
					Documents:   []FinancialDocument{doc(30, DocumentTypeInvoice, 730, 1000)},
					Matched:     true,
					Kind:        MatchKindTransactionCombination,
				},
			},
			want: []MatchedTransaction{
				{
					DocumentID: "invoice-30",
					MatchType:  MatchKindTransactionCombination,
					TransactionDetails: []TransactionDetail{
						detail("TXN-200", 520, -600),
						detail("TXN-201", 521, -400),
					},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(730, 1000)
						id := int64(30)
						dd.InvoiceID = &id
						return dd
					}(),
				},
			},
		},
		{
			name: "document combination emits one entry per document",
			results: []MatchResult{
				{
					Transaction: txn("TXN-300", 530, -800),
					Documents: []FinancialDocument{
						doc(41, DocumentTypeBill, 741, 500),
						doc(42, DocumentTypeBill, 742, 300),
					},
					Matched: true,
					Kind:    MatchKindDocumentCombination,
				},
			},
			want: []MatchedTransaction{
				{
					DocumentID:         "bill-41",
					MatchType:          MatchKindDocumentCombination,
					TransactionDetails: []TransactionDetail{detail("TXN-300", 530, -800)},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(741, 500)
						id := int64(41)
						dd.BillID = &id
						return dd
					}(),
				},
				{
					DocumentID:         "bill-42",
					MatchType:          MatchKindDocumentCombination,
					TransactionDetails: []TransactionDetail{detail("TXN-300", 530, -800)},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(742, 300)
						id := int64(42)
						dd.BillID = &id
						return dd
					}(),
				},
			},
		},
		{
			name: "same numeric id across document types stays two entries",
			results: []MatchResult{
				{
					Transaction: txn("TXN-400", 540, -100),
					Documents:   []FinancialDocument{doc(77, DocumentTypeBill, 700, 100)},
					Matched:     true,
					Kind:        MatchKindSingle,
				},
				{
					Transaction: txn("TXN-401", 541, 100),
					Documents:   []FinancialDocument{doc(77, DocumentTypeInvoice, 900, 100)},
					Matched:     true,
					Kind:        MatchKindSingle,
				},
			},
			want: []MatchedTransaction{
				{
					DocumentID:         "bill-77",
					MatchType:          MatchKindSingle,
					TransactionDetails: []TransactionDetail{detail("TXN-400", 540, -100)},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(700, 100)
						dd.BillID = &billID
						return dd
					}(),
				},
				{
					DocumentID:         "invoice-77",
					MatchType:          MatchKindSingle,
					TransactionDetails: []TransactionDetail{detail("TXN-401", 541, 100)},
					DocumentDetails: func() DocumentDetails {
						dd := docDetails(900, 100)
						dd.InvoiceID = &invoiceID
						return dd
					}(),
				},
			},
		},
		{
			name: "nothing matched yields an empty batch",
			results: []MatchResult{
				{Transaction: txn("TXN-500", 550, -5), Matched: false, Reason: ReasonNoFlexibleMatch},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupBatchInput(9, tt.results)

			if got.CompanyID != 9 {
				t.Errorf("CompanyID = %d, want 9", got.CompanyID)
			}
			if !cmp.Equal(tt.want, got.MatchedTransactions, decimalComparer()) {
				t.Errorf("MatchedTransactions differ: (-want +got)\n%s", cmp.Diff(tt.want, got.MatchedTransactions, decimalComparer()))
			}
		})
	}
}

func TestReconBatchResult_RoundTrip(t *testing.T) {
	result := NewReconBatchResult(3)
	result.AddReconciled(
		ReconciledTransaction{DocumentID: "bill-77", DocumentType: DocumentTypeBill, TransactionIDs: []string{"TXN-100"}, ReconciledLineIDs: []int64{11, 12}},
		ReconciledDocument{DocumentID: "bill-77", DocumentType: DocumentTypeBill, LedgerMoveID: 700},
	)
	result.AddSkipped("invoice-30", "already reconciled in ledger")
	result.AddFailed("payroll-5", common.ErrAccountResolution)
	result.Finalize()

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed ReconBatchResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if parsed.Success {
		t.Error("Success = true, want false after one failure")
	}
	if parsed.Reconciled != 1 || parsed.Failed != 1 || parsed.Skipped != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", parsed.Reconciled, parsed.Failed, parsed.Skipped)
	}
	if !cmp.Equal(result.Details, parsed.Details) {
		t.Errorf("Details differ: (-want +got)\n%s", cmp.Diff(result.Details, parsed.Details))
	}
	if len(parsed.ReconciledBills) != 1 || parsed.ReconciledBills[0].LedgerMoveID != 700 {
		t.Errorf("ReconciledBills = %+v, want the bill-77 move", parsed.ReconciledBills)
	}
}
