package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"estatedesk-backend/internal/logger"
)

const bulkUploadPath = "/api/v1/properties/bulk-upload"

// FieldError is one field-level failure reported by the remote validate pass.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowErrors groups a row's field errors, keyed by its CSV line number.
type RowErrors struct {
	Row    int          `json:"row"`
	Errors []FieldError `json:"errors"`
}

// UploadData is the payload of a successful bulk upload response, shared by
// the validate-only and commit passes.
type UploadData struct {
	Total                int               `json:"total"`
	Successful           int               `json:"successful"`
	Failed               int               `json:"failed"`
	ValidRows            []int             `json:"validRows"`
	Errors               []RowErrors       `json:"errors"`
	SuccessfulProperties []json.RawMessage `json:"successfulProperties,omitempty"`
}

type uploadRequest struct {
	CSVData         string `json:"csvData"`
	TransactionType string `json:"transactionType"`
	ValidateOnly    bool   `json:"validateOnly"`
}

type uploadResponse struct {
	Success bool       `json:"success"`
	Data    UploadData `json:"data"`
	Error   string     `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// RemoteError is a non-2xx or transport-level failure of a bulk upload call.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Client talks to the bulk upload endpoint of the EstateDesk backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a bulk upload client. A zero timeout disables the
// client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithToken sets the admin bearer token attached to every request. The
// upload endpoints sit behind the admin guard, so a client without a token
// is only usable against unguarded test servers.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// BulkUpload sends the raw CSV text with the transaction-type label and the
// validateOnly flag, and decodes the per-row outcome.
func (c *Client) BulkUpload(ctx context.Context, csvData, transactionType string, validateOnly bool) (*UploadData, error) {
	body, err := json.Marshal(uploadRequest{
		CSVData:         csvData,
		TransactionType: transactionType,
		ValidateOnly:    validateOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode bulk upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bulkUploadPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build bulk upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.ExternalServiceCall("estatedesk", "BulkUpload", "validate_only", validateOnly, "transaction_type", transactionType)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("estatedesk", "BulkUpload", err)
		return nil, &RemoteError{Message: "Failed to upload properties. Please try again."}
	}
	defer resp.Body.Close()

	var decoded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("failed to decode bulk upload response: %w", err)
	}

	if resp.StatusCode >= 300 || !decoded.Success {
		// Prefer the server's error field, then message, then a generic text.
		msg := decoded.Error
		if msg == "" {
			msg = decoded.Message
		}
		if msg == "" {
			msg = "Failed to upload properties. Please try again."
		}
		remoteErr := &RemoteError{Status: resp.StatusCode, Message: msg}
		logger.ExternalServiceResult("estatedesk", "BulkUpload", remoteErr)
		return nil, remoteErr
	}

	logger.ExternalServiceResult("estatedesk", "BulkUpload", nil, "total", decoded.Data.Total, "failed", decoded.Data.Failed)
	return &decoded.Data, nil
}
