package domain

import "time"

type UploadStatus string

const (
	UploadStatusValidated UploadStatus = "VALIDATED" // validate-only pass, nothing persisted
	UploadStatusCommitted UploadStatus = "COMMITTED" // commit pass, valid rows inserted
)

// UploadRecord is the audit trail of one bulk CSV pass. ContentHash is a
// SHA-256 over the raw CSV text and, together with the transaction type,
// dedupes commit retries of the same payload.
type UploadRecord struct {
	ID              int32           `json:"id"`
	Reference       string          `json:"reference"` // uuid, doubles as the archive key
	TransactionType TransactionType `json:"transaction_type"`
	ContentHash     string          `json:"content_hash"`
	Status          UploadStatus    `json:"status"`
	Total           int32           `json:"total"`
	Successful      int32           `json:"successful"`
	Failed          int32           `json:"failed"`
	CreatedOn       time.Time       `json:"created_on"`
}
