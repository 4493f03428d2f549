package models

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

const DefaultReconRecordListLimit = 20

const kindReconRecord = "reconciliation_record"

type ReconRecordListRequest struct {
	TransactionID string `query:"transaction_id"`
	DocumentID    string `query:"document_id"`
	Status        string `query:"status"`
	Limit         int    `query:"limit"`
	NextCursor    string `query:"nextCursor"`
	PrevCursor    string `query:"prevCursor"`
}

type ReconRecordFilter struct {
	TransactionID string
	DocumentID    string
	Status        string
	Limit         int
	Cursor        *ReconRecordCursor
}

// ReconRecordCursor pages the append-only audit by database id, which is
// creation order.
type ReconRecordCursor struct {
	DatabaseID int64

	IsBackward bool
}

func (c ReconRecordCursor) String() string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(c.DatabaseID, 10)))
}

func decodeReconRecordCursor(cursor string) (*ReconRecordCursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cursor string: %w", err)
	}

	id, err := strconv.ParseInt(string(decodedBytes), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cursor id: %w", err)
	}

	return &ReconRecordCursor{DatabaseID: id}, nil
}

func (req ReconRecordListRequest) ToFilterOpts() (*ReconRecordFilter, error) {
	if req.Limit < 0 {
		return nil, GetErrMap(ErrKeyInvalidLimit)
	}

	opts := &ReconRecordFilter{
		TransactionID: req.TransactionID,
		DocumentID:    req.DocumentID,
		Status:        req.Status,
		Limit:         req.Limit,
	}
	if opts.Limit == 0 {
		opts.Limit = DefaultReconRecordListLimit
	}

	// use over-fetch limit for check next page exists or not
	opts.Limit += 1

	switch {
	case req.NextCursor != "":
		cursor, err := decodeReconRecordCursor(req.NextCursor)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidCursor, err.Error())
		}
		opts.Cursor = cursor
	case req.PrevCursor != "":
		cursor, err := decodeReconRecordCursor(req.PrevCursor)
		if err != nil {
			return nil, GetErrMap(ErrKeyInvalidCursor, err.Error())
		}
		cursor.IsBackward = true
		opts.Cursor = cursor
	}

	return opts, nil
}

type ReconRecordResponse struct {
	Kind          string    `json:"kind" example:"reconciliation_record"`
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	DocumentID    string    `json:"document_id"`
	DocumentType  string    `json:"document_type"`
	MatchType     string    `json:"match_type"`
	LedgerLineIDs []int64   `json:"ledger_line_ids"`
	Status        string    `json:"status"`
	RetryCount    int       `json:"retry_count"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r ReconciliationRecord) GetCursor() string {
	return ReconRecordCursor{DatabaseID: r.ID}.String()
}

func (r ReconciliationRecord) ToModelResponse() ReconRecordResponse {
	return ReconRecordResponse{
		Kind:          kindReconRecord,
		ID:            r.ID,
		TransactionID: r.TransactionID,
		DocumentID:    r.DocumentID,
		DocumentType:  string(r.DocumentType),
		MatchType:     string(r.MatchType),
		LedgerLineIDs: r.LedgerLineIDs,
		Status:        r.Status,
		RetryCount:    r.RetryCount,
		ErrorMessage:  r.ErrorMessage,
		CreatedAt:     r.CreatedAt,
	}
}
