package models

import (
	"time"
)

// BankTransaction is one row of the imported bank feed. Rows are
// immutable once stored; only the reconciliation flags move.
type BankTransaction struct {
	ID           string     `json:"id"`
	CompanyID    int64      `json:"company_id"`
	LedgerMoveID int64      `json:"ledger_move_id"`
	Amount       Decimal    `json:"amount"`
	Currency     string     `json:"currency"`
	Date         time.Time  `json:"date"`
	Description  string     `json:"description"`
	PartnerName  string     `json:"partner_name"`
	Reference    string     `json:"reference"`
	Reconciled   bool       `json:"reconciled"`
	ReconciledAt *time.Time `json:"reconciled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsOutgoing reports money leaving the account.
func (bt BankTransaction) IsOutgoing() bool {
	return bt.Amount.IsNegative()
}

type BankTransactionFilter struct {
	CompanyID int64
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
}
