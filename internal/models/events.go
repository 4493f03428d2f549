package models

import (
	"time"
)

// ReconCompletedEvent is published after every executor run so
// downstream bookkeeping can refresh its own state.
type ReconCompletedEvent struct {
	BatchID      string    `json:"batch_id"`
	CompanyID    int64     `json:"company_id"`
	Success      bool      `json:"success"`
	TotalMatches int       `json:"total_matches"`
	Reconciled   int       `json:"reconciled"`
	Failed       int       `json:"failed"`
	Skipped      int       `json:"skipped"`
	CompletedAt  time.Time `json:"completed_at"`
}
