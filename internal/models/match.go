package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
)

type MatchKind string

const (
	MatchKindSingle                 MatchKind = "SINGLE"
	MatchKindTransactionCombination MatchKind = "TRANSACTION_COMBINATION"
	MatchKindDocumentCombination    MatchKind = "DOCUMENT_COMBINATION"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

type UnmatchedReason string

const (
	ReasonAmountMismatch     UnmatchedReason = "AMOUNT_MISMATCH"
	ReasonNoFlexibleMatch    UnmatchedReason = "NO_FLEXIBLE_MATCH"
	ReasonDateOutOfRange     UnmatchedReason = "DATE_OUT_OF_RANGE"
	ReasonNoCombinationFound UnmatchedReason = "NO_COMBINATION_FOUND"
)

// ExpectedType routes unmatched transactions to the right manual-review
// queue, guessed from sign and wording.
type ExpectedType string

const (
	ExpectedBankFees          ExpectedType = "BANK_FEES"
	ExpectedWages             ExpectedType = "WAGES"
	ExpectedGovernmentPayment ExpectedType = "GOVERNMENT_PAYMENT"
	ExpectedInvoice           ExpectedType = "INVOICE"
	ExpectedBill              ExpectedType = "BILL"
	ExpectedManualReview      ExpectedType = "MANUAL_REVIEW"
)

// MatchCandidate is a transient pairing built during a matching run. It
// never leaves the engine; accepted candidates become MatchResults.
type MatchCandidate struct {
	Transaction      BankTransaction
	Documents        []FinancialDocument
	Kind             MatchKind
	Context          BusinessContext
	AmountExact      bool
	DateDiffDays     int
	PartnerScore     float64
	DescriptionScore float64
}

// CombinedScore is the tie-breaker between candidates that all pass.
func (mc MatchCandidate) CombinedScore() float64 {
	return mc.PartnerScore + mc.DescriptionScore
}

// MatchResult is the per-transaction outcome of a matching run, either
// matched with a document set or unmatched with a reason.
type MatchResult struct {
	Transaction      BankTransaction     `json:"transaction"`
	Documents        []FinancialDocument `json:"documents,omitempty"`
	Matched          bool                `json:"matched"`
	Kind             MatchKind           `json:"match_type,omitempty"`
	Context          BusinessContext     `json:"business_context,omitempty"`
	Confidence       Confidence          `json:"confidence,omitempty"`
	DateDiffDays     int                 `json:"date_diff_days,omitempty"`
	PartnerScore     float64             `json:"partner_score,omitempty"`
	DescriptionScore float64             `json:"description_score,omitempty"`
	Reason           UnmatchedReason     `json:"reason,omitempty"`
	ExpectedType     ExpectedType        `json:"expected_type,omitempty"`
}

type TraceVerdict string

const (
	TraceVerdictExact    TraceVerdict = "exact"
	TraceVerdictRejected TraceVerdict = "rejected"
)

// TraceEntry records one attempted pair or subset so a reviewer can
// replay why the engine decided what it decided.
type TraceEntry struct {
	Stage         string       `json:"stage"`
	TransactionID string       `json:"transaction_id,omitempty"`
	DocumentIDs   []int64      `json:"document_ids,omitempty"`
	Sum           Decimal      `json:"sum"`
	Target        Decimal      `json:"target"`
	Verdict       TraceVerdict `json:"verdict"`
	Reason        string       `json:"reason,omitempty"`
	Detail        string       `json:"detail,omitempty"`
}

type SummaryStatus string

const (
	SummaryStatusPass   SummaryStatus = "PASS"
	SummaryStatusReview SummaryStatus = "REVIEW"
	SummaryStatusFail   SummaryStatus = "FAIL"
)

type MatchSummary struct {
	TotalTransactions int                     `json:"total_transactions"`
	TotalDocuments    int                     `json:"total_documents"`
	SinglePass        int                     `json:"single_pass"`
	CombinationPass   int                     `json:"combination_pass"`
	Unmatched         int                     `json:"unmatched"`
	MatchRate         float64                 `json:"match_rate"`
	Status            SummaryStatus           `json:"status"`
	RejectionCounts   map[UnmatchedReason]int `json:"rejection_counts,omitempty"`
}

type MatchReport struct {
	CompanyID int64         `json:"company_id"`
	RunAt     time.Time     `json:"run_at"`
	Results   []MatchResult `json:"results"`
	Summary   MatchSummary  `json:"summary"`
	Trace     []TraceEntry  `json:"trace,omitempty"`
}

// MatchedResults filters the report down to committed matches.
func (r MatchReport) MatchedResults() []MatchResult {
	out := make([]MatchResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Matched {
			out = append(out, res)
		}
	}
	return out
}

// ToReportRow formats one result as a MATCH_REPORT_HEADER row.
func (r MatchResult) ToReportRow() []string {
	docKeys := make([]string, 0, len(r.Documents))
	for _, d := range r.Documents {
		docKeys = append(docKeys, DocumentKey(d.Type, d.ID))
	}

	return []string{
		r.Transaction.ID,
		r.Transaction.Date.Format(common.DateFormatYYYYMMDD),
		r.Transaction.Amount.String(),
		r.Transaction.Currency,
		r.Transaction.PartnerName,
		r.Transaction.Description,
		strconv.FormatBool(r.Matched),
		string(r.Kind),
		string(r.Context),
		string(r.Confidence),
		strings.Join(docKeys, "|"),
		string(r.Reason),
		string(r.ExpectedType),
	}
}

type RunMatchingRequest struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	DateFrom  string `json:"date_from" validate:"omitempty,date"`
	DateTo    string `json:"date_to" validate:"omitempty,date"`
}
