package models

import "fmt"

// SettledGuardCacheKey guards a just-reconciled transaction against
// resubmission before the database writeback lands.
func SettledGuardCacheKey(transactionID string) string {
	return fmt.Sprintf("go-bank-recon:settled-guard:%s", transactionID)
}
