package models

import (
	"fmt"
	"time"
)

type DocumentType string

const (
	DocumentTypeBill    DocumentType = "bill"
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeShare   DocumentType = "share"
	DocumentTypePayroll DocumentType = "payroll"
)

func (dt DocumentType) Valid() bool {
	switch dt {
	case DocumentTypeBill, DocumentTypeInvoice, DocumentTypeShare, DocumentTypePayroll:
		return true
	}
	return false
}

// DocumentKey is the cross-type identifier "type-id". Document ids are
// only unique per type, so this form is used wherever bills, invoices,
// share and payroll entries share one namespace.
func DocumentKey(docType DocumentType, id int64) string {
	return fmt.Sprintf("%s-%d", docType, id)
}

// Ledger account types, as the ledger names them.
const (
	AccountTypePayable    = "liability_payable"
	AccountTypeReceivable = "asset_receivable"
)

// FinancialDocument is the stored side of a match: a vendor bill, a
// customer invoice, a share-capital entry or a payroll entry. The only
// mutation it ever sees is being marked settled.
type FinancialDocument struct {
	ID           int64        `json:"id"`
	Type         DocumentType `json:"type"`
	CompanyID    int64        `json:"company_id"`
	Number       string       `json:"number"`
	PartnerName  string       `json:"partner_name"`
	Description  string       `json:"description"`
	Amount       Decimal      `json:"amount"`
	Currency     string       `json:"currency"`
	Date         time.Time    `json:"date"`
	LedgerMoveID int64        `json:"ledger_move_id"`
	Settled      bool         `json:"settled"`
	SettledAt    *time.Time   `json:"settled_at,omitempty"`
	SettledBy    string       `json:"settled_by,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type DocumentFilter struct {
	CompanyID int64
	Types     []DocumentType
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
}

// AccountAssignment says which ledger account type carries the open side
// of a document: one account for the whole document, or one per line
// item as payroll entries have.
type AccountAssignment struct {
	perLine  bool
	accounts []string
}

func SingleAccount(accountType string) AccountAssignment {
	return AccountAssignment{accounts: []string{accountType}}
}

func PerLineAccounts(accountTypes []string) AccountAssignment {
	return AccountAssignment{perLine: true, accounts: accountTypes}
}

func (a AccountAssignment) IsPerLine() bool {
	return a.perLine
}

// Account is the account type used to pick the document-side ledger line.
// For per-line assignments that is the first entry.
func (a AccountAssignment) Account() string {
	if len(a.accounts) == 0 {
		return AccountTypePayable
	}
	return a.accounts[0]
}

func (a AccountAssignment) Accounts() []string {
	return a.accounts
}
