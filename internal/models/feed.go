package models

// FeedInput is the import payload the worker reads from a feed file:
// bank rows and open documents arriving together or alone.
type FeedInput struct {
	BankTransactions   []BankTransaction   `json:"bank_transactions"`
	FinancialDocuments []FinancialDocument `json:"financial_documents"`
}
