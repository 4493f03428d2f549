package models

import (
	"fmt"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
)

// Reconciliation executor states. FAILED is reachable from every state.
type ReconState string

const (
	ReconStatePending         ReconState = "PENDING"
	ReconStateCheckIdempotent ReconState = "CHECK_IDEMPOTENT"
	ReconStateResolveLines    ReconState = "RESOLVE_LEDGER_LINES"
	ReconStateValidateBalance ReconState = "VALIDATE_BALANCE"
	ReconStateCommit          ReconState = "COMMIT"
	ReconStateDone            ReconState = "DONE"
	ReconStateFailed          ReconState = "FAILED"
)

const (
	ReconStatusReconciled = "reconciled"
	ReconStatusSkipped    = "skipped"
	ReconStatusError      = "error"
)

// ReconBatchInput is the wire contract a caller (or the matching engine)
// hands to the reconciliation executor.
type ReconBatchInput struct {
	CompanyID           int64                `json:"company_id,omitempty"`
	MatchedTransactions []MatchedTransaction `json:"matched_transactions" validate:"required,min=1,dive"`
}

type MatchedTransaction struct {
	DocumentID         string              `json:"document_id" validate:"required"`
	MatchType          MatchKind           `json:"match_type"`
	TransactionDetails []TransactionDetail `json:"transaction_details" validate:"required,min=1,dive"`
	DocumentDetails    DocumentDetails     `json:"document_details"`
}

type TransactionDetail struct {
	TransactionID string  `json:"transaction_id,omitempty"`
	OdooID        int64   `json:"odoo_id" validate:"required_without=Reference"`
	Amount        Decimal `json:"amount"`
	Date          string  `json:"date" validate:"omitempty,date"`
	Reference     string  `json:"reference,omitempty"`
}

func (td TransactionDetail) ParseDate() (time.Time, error) {
	return time.Parse(common.DateFormatYYYYMMDD, td.Date)
}

// DocumentDetails is a tagged object: exactly one of the id fields is
// set and decides the document type. OdooMoveID carries the posted
// ledger move when the caller has it; older callers leave it empty and
// put the move id straight into the tag field.
type DocumentDetails struct {
	BillID             *int64 `json:"bill_id,omitempty"`
	InvoiceID          *int64 `json:"invoice_id,omitempty"`
	ShareTransactionID *int64 `json:"share_transaction_id,omitempty"`
	PayrollID          *int64 `json:"payroll_id,omitempty"`

	OdooMoveID  int64      `json:"odoo_move_id,omitempty"`
	Number      string     `json:"number,omitempty"`
	Partner     string     `json:"partner,omitempty"`
	Partners    []string   `json:"partners,omitempty"`
	Amount      Decimal    `json:"amount"`
	Date        string     `json:"date,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	Description string     `json:"description,omitempty"`
	LineItems   []LineItem `json:"line_items,omitempty"`
}

type LineItem struct {
	Name        string  `json:"name,omitempty"`
	Debit       Decimal `json:"debit"`
	Credit      Decimal `json:"credit"`
	AccountType string  `json:"account_type,omitempty"`
}

func (dd DocumentDetails) Type() (DocumentType, error) {
	switch {
	case dd.BillID != nil:
		return DocumentTypeBill, nil
	case dd.InvoiceID != nil:
		return DocumentTypeInvoice, nil
	case dd.ShareTransactionID != nil:
		return DocumentTypeShare, nil
	case dd.PayrollID != nil:
		return DocumentTypePayroll, nil
	default:
		return "", common.ErrUnknownDocumentType
	}
}

func (dd DocumentDetails) DocumentID() int64 {
	switch {
	case dd.BillID != nil:
		return *dd.BillID
	case dd.InvoiceID != nil:
		return *dd.InvoiceID
	case dd.ShareTransactionID != nil:
		return *dd.ShareTransactionID
	case dd.PayrollID != nil:
		return *dd.PayrollID
	default:
		return 0
	}
}

// MoveID is the ledger move to reconcile against. Falls back to the tag
// field for callers that never learned about odoo_move_id.
func (dd DocumentDetails) MoveID() int64 {
	if dd.OdooMoveID > 0 {
		return dd.OdooMoveID
	}
	return dd.DocumentID()
}

// PartnerName returns the counter-party on the document. Payroll entries
// carry several; the first one tags the bank lines.
func (dd DocumentDetails) PartnerName() string {
	if dd.Partner != "" {
		return dd.Partner
	}
	if len(dd.Partners) > 0 {
		return dd.Partners[0]
	}
	return ""
}

// ResolveAccounts maps the document type to the ledger account type(s)
// holding its open side. Payroll follows its credit line items and falls
// back to payable when none carry an account type.
func (dd DocumentDetails) ResolveAccounts() (AccountAssignment, error) {
	docType, err := dd.Type()
	if err != nil {
		return AccountAssignment{}, err
	}

	switch docType {
	case DocumentTypeBill:
		return SingleAccount(AccountTypePayable), nil
	case DocumentTypeInvoice, DocumentTypeShare:
		return SingleAccount(AccountTypeReceivable), nil
	default:
		var accounts []string
		for _, item := range dd.LineItems {
			if item.Credit.IsPositive() && item.AccountType != "" {
				accounts = append(accounts, item.AccountType)
			}
		}
		if len(accounts) == 0 {
			return SingleAccount(AccountTypePayable), nil
		}
		return PerLineAccounts(accounts), nil
	}
}

type ReconBatchDetail struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ToReportRow formats one detail as a RECON_RESULT_HEADER row.
func (d ReconBatchDetail) ToReportRow() []string {
	return []string{d.DocumentID, d.Status, d.Reason, d.Error}
}

// ReconciledTransaction echoes the bank side of one committed match so
// the caller can flag its own store.
type ReconciledTransaction struct {
	DocumentID        string       `json:"document_id"`
	DocumentType      DocumentType `json:"document_type"`
	TransactionIDs    []string     `json:"transaction_ids"`
	BankMoveIDs       []int64      `json:"bank_move_ids"`
	DocumentMoveID    int64        `json:"document_move_id"`
	Partner           string       `json:"partner,omitempty"`
	Amount            Decimal      `json:"amount"`
	ReconciledLineIDs []int64      `json:"reconciled_line_ids"`
}

// ReconciledDocument echoes the document side of one committed match.
type ReconciledDocument struct {
	DocumentID   string       `json:"document_id"`
	DocumentType DocumentType `json:"document_type"`
	LedgerMoveID int64        `json:"ledger_move_id"`
	Number       string       `json:"number,omitempty"`
	Partner      string       `json:"partner,omitempty"`
	Amount       Decimal      `json:"amount"`
	Date         string       `json:"date,omitempty"`
	Reference    string       `json:"reference,omitempty"`
	Description  string       `json:"description,omitempty"`
}

// ReconBatchResult is the aggregated outcome of one executor run.
type ReconBatchResult struct {
	Success                    bool                    `json:"success"`
	Message                    string                  `json:"message,omitempty"`
	Error                      string                  `json:"error,omitempty"`
	TotalMatches               int                     `json:"total_matches"`
	Reconciled                 int                     `json:"reconciled"`
	Failed                     int                     `json:"failed"`
	Skipped                    int                     `json:"skipped"`
	Details                    []ReconBatchDetail      `json:"details"`
	ReconciledTransactions     []ReconciledTransaction `json:"reconciled_transactions"`
	ReconciledBills            []ReconciledDocument    `json:"reconciled_bills"`
	ReconciledInvoices         []ReconciledDocument    `json:"reconciled_invoices"`
	ReconciledShareDocuments   []ReconciledDocument    `json:"reconciled_share_documents"`
	ReconciledPayrollDocuments []ReconciledDocument    `json:"reconciled_payroll_documents"`
}

// NewReconBatchResult pre-allocates the slices so the contract
// serializes them as empty arrays instead of null.
func NewReconBatchResult(totalMatches int) *ReconBatchResult {
	return &ReconBatchResult{
		Success:                    true,
		TotalMatches:               totalMatches,
		Details:                    []ReconBatchDetail{},
		ReconciledTransactions:     []ReconciledTransaction{},
		ReconciledBills:            []ReconciledDocument{},
		ReconciledInvoices:         []ReconciledDocument{},
		ReconciledShareDocuments:   []ReconciledDocument{},
		ReconciledPayrollDocuments: []ReconciledDocument{},
	}
}

func (r *ReconBatchResult) AddReconciled(txn ReconciledTransaction, doc ReconciledDocument) {
	r.Reconciled++
	r.Details = append(r.Details, ReconBatchDetail{DocumentID: doc.DocumentID, Status: ReconStatusReconciled})
	r.ReconciledTransactions = append(r.ReconciledTransactions, txn)

	switch doc.DocumentType {
	case DocumentTypeBill:
		r.ReconciledBills = append(r.ReconciledBills, doc)
	case DocumentTypeInvoice:
		r.ReconciledInvoices = append(r.ReconciledInvoices, doc)
	case DocumentTypeShare:
		r.ReconciledShareDocuments = append(r.ReconciledShareDocuments, doc)
	case DocumentTypePayroll:
		r.ReconciledPayrollDocuments = append(r.ReconciledPayrollDocuments, doc)
	}
}

func (r *ReconBatchResult) AddSkipped(documentID, reason string) {
	r.Skipped++
	r.Details = append(r.Details, ReconBatchDetail{DocumentID: documentID, Status: ReconStatusSkipped, Reason: reason})
}

func (r *ReconBatchResult) AddFailed(documentID string, err error) {
	r.Failed++
	detail := ReconBatchDetail{DocumentID: documentID, Status: ReconStatusError}
	if err != nil {
		detail.Error = err.Error()
	}
	r.Details = append(r.Details, detail)
}

// Finalize fills success and the human summary line after all items ran.
func (r *ReconBatchResult) Finalize() {
	if r.Failed > 0 {
		r.Success = false
		r.Message = fmt.Sprintf("Reconciled %d/%d transactions. %d failed, %d skipped.", r.Reconciled, r.TotalMatches, r.Failed, r.Skipped)
		return
	}
	r.Message = fmt.Sprintf("Successfully reconciled %d/%d transactions. %d skipped.", r.Reconciled, r.TotalMatches, r.Skipped)
}

// ReconciliationRecord is the append-only audit row of one commit.
type ReconciliationRecord struct {
	ID            int64        `json:"id"`
	TransactionID string       `json:"transaction_id"`
	DocumentID    string       `json:"document_id"`
	DocumentType  DocumentType `json:"document_type"`
	MatchType     MatchKind    `json:"match_type"`
	LedgerLineIDs []int64      `json:"ledger_line_ids"`
	Status        string       `json:"status"`
	RetryCount    int          `json:"retry_count"`
	ErrorMessage  string       `json:"error_message,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ToBatchInput converts a match report into the executor's wire contract.
func (r MatchReport) ToBatchInput() ReconBatchInput {
	return GroupBatchInput(r.CompanyID, r.Results)
}

// GroupBatchInput folds match results into executor entries. Results of
// a TRANSACTION_COMBINATION arrive one per transaction and regroup under
// their shared document; a DOCUMENT_COMBINATION emits one entry per
// document, sharing the transaction, so each document clears in its own
// commit.
func GroupBatchInput(companyID int64, results []MatchResult) ReconBatchInput {
	in := ReconBatchInput{CompanyID: companyID}

	type group struct {
		kind MatchKind
		doc  FinancialDocument
		txns []TransactionDetail
	}
	groups := make(map[string]*group)
	var order []string

	appendTxn := func(kind MatchKind, doc FinancialDocument, res MatchResult) {
		key := DocumentKey(doc.Type, doc.ID)
		g, ok := groups[key]
		if !ok {
			g = &group{kind: kind, doc: doc}
			groups[key] = g
			order = append(order, key)
		}
		g.txns = append(g.txns, TransactionDetail{
			TransactionID: res.Transaction.ID,
			OdooID:        res.Transaction.LedgerMoveID,
			Amount:        res.Transaction.Amount,
			Date:          res.Transaction.Date.Format(common.DateFormatYYYYMMDD),
			Reference:     res.Transaction.Reference,
		})
	}

	for _, res := range results {
		if !res.Matched || len(res.Documents) == 0 {
			continue
		}
		if res.Kind == MatchKindDocumentCombination {
			for i := range res.Documents {
				appendTxn(res.Kind, res.Documents[i], res)
			}
			continue
		}
		appendTxn(res.Kind, res.Documents[0], res)
	}

	for _, key := range order {
		g := groups[key]
		in.MatchedTransactions = append(in.MatchedTransactions,
			newMatchedTransaction(g.kind, g.doc, g.txns))
	}

	return in
}

func newMatchedTransaction(kind MatchKind, doc FinancialDocument, txns []TransactionDetail) MatchedTransaction {
	mt := MatchedTransaction{
		DocumentID:         DocumentKey(doc.Type, doc.ID),
		MatchType:          kind,
		TransactionDetails: txns,
		DocumentDetails: DocumentDetails{
			OdooMoveID:  doc.LedgerMoveID,
			Number:      doc.Number,
			Partner:     doc.PartnerName,
			Amount:      doc.Amount,
			Date:        doc.Date.Format(common.DateFormatYYYYMMDD),
			Description: doc.Description,
		},
	}

	id := doc.ID
	switch doc.Type {
	case DocumentTypeBill:
		mt.DocumentDetails.BillID = &id
	case DocumentTypeInvoice:
		mt.DocumentDetails.InvoiceID = &id
	case DocumentTypeShare:
		mt.DocumentDetails.ShareTransactionID = &id
	case DocumentTypePayroll:
		mt.DocumentDetails.PayrollID = &id
	}

	return mt
}
