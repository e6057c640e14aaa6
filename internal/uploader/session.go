package uploader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"estatedesk-backend/internal/bulkupload"
	"estatedesk-backend/internal/domain"
)

// State of an upload session. Validating and Committing are transient and
// exist so the session can refuse re-entrant calls while a remote round trip
// is in flight.
type State string

const (
	StateIdle         State = "IDLE"
	StateFileSelected State = "FILE_SELECTED"
	StateValidating   State = "VALIDATING"
	StateValidated    State = "VALIDATED"
	StateCommitting   State = "COMMITTING"
	StateCommitted    State = "COMMITTED"
)

var (
	ErrNotCSV          = errors.New("selected file must have a .csv extension")
	ErrNoFile          = errors.New("no file selected")
	ErrBusy            = errors.New("an upload call is already in flight")
	ErrNoPendingCommit = errors.New("nothing validated to commit")
)

// TemplateMismatchError aborts validation locally when the uploaded file's
// header row lacks required columns; no remote call is made.
type TemplateMismatchError struct {
	Missing []string
}

func (e *TemplateMismatchError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// PendingCommit is the exact payload replayed on commit. The client does not
// strip invalid rows; the server skips them again during the commit pass.
type PendingCommit struct {
	CSVData         string
	TransactionType string
	ValidCount      int
	ErrorCount      int
}

// Result is the outcome of the most recent validate or commit pass.
type Result struct {
	Total      int
	Successful int
	Failed     int
	Uploaded   bool
	Errors     []bulkupload.ValidationError
}

// Session drives the two-phase upload flow for one selected file. All methods
// are safe for concurrent use; remote calls are single-flight.
type Session struct {
	client *Client
	txType domain.TransactionType

	mu      sync.Mutex
	state   State
	gen     int // bumped by Reset/SelectFile so stale round trips are discarded
	busy    bool
	name    string
	csvData string
	result  *Result
	pending *PendingCommit
}

func NewSession(client *Client, txType domain.TransactionType) *Session {
	return &Session{
		client: client,
		txType: txType,
		state:  StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the outcome of the last validate or commit pass, or nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Pending returns the pending commit payload, or nil if none exists.
func (s *Session) Pending() *PendingCommit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// SelectFile attaches a CSV file to the session. The name must carry a
// lowercase .csv suffix. Any previous validation outcome and pending commit
// are discarded, even if the new file is never validated.
func (s *Session) SelectFile(name, content string) error {
	if !strings.HasSuffix(name, ".csv") {
		return ErrNotCSV
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.gen++
	s.name = name
	s.csvData = content
	s.result = nil
	s.pending = nil
	s.state = StateFileSelected
	return nil
}

// Reset unconditionally returns the session to Idle, clearing the selected
// file, all counts and errors, and any pending commit.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.busy = false
	s.name = ""
	s.csvData = ""
	s.result = nil
	s.pending = nil
	s.state = StateIdle
}

// Validate runs the local header pre-check and the remote validate-only pass.
// Header mismatches abort locally with a *TemplateMismatchError before any
// network traffic. Remote failures leave the selected file and any prior
// results in place so the caller can retry.
func (s *Session) Validate(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.state != StateFileSelected && s.state != StateValidated {
		s.mu.Unlock()
		return nil, ErrNoFile
	}
	csvData := s.csvData
	gen := s.gen
	prior := s.state

	doc := bulkupload.ParseCSV(csvData)
	schema := bulkupload.FieldSchema(s.txType)
	if missing := bulkupload.ValidateHeaders(doc.Headers, schema); len(missing) > 0 {
		s.state = StateFileSelected
		s.mu.Unlock()
		return nil, &TemplateMismatchError{Missing: missing}
	}

	s.busy = true
	s.state = StateValidating
	s.mu.Unlock()

	data, err := s.client.BulkUpload(ctx, csvData, s.txType.Label(), true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// Session was reset or refiled mid-flight; drop the stale response.
		return nil, ErrNoFile
	}
	s.busy = false
	if err != nil {
		s.state = prior
		return nil, err
	}

	result := &Result{
		Total:      data.Total,
		Successful: data.Successful,
		Failed:     data.Failed,
		Errors:     flattenRowErrors(data.Errors),
	}
	s.result = result
	s.pending = nil
	if data.Successful > 0 {
		s.pending = &PendingCommit{
			CSVData:         csvData,
			TransactionType: s.txType.Label(),
			ValidCount:      data.Successful,
			ErrorCount:      data.Failed,
		}
	}
	s.state = StateValidated
	return result, nil
}

// CommitPending replays the validated payload with validateOnly=false. The
// server re-validates and inserts only the valid rows. On failure the
// pending commit is preserved for retry; the session offers no client-side
// dedupe, so at-most-once semantics rest on the server's payload hashing.
func (s *Session) CommitPending(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if s.pending == nil {
		s.mu.Unlock()
		return nil, ErrNoPendingCommit
	}
	pending := *s.pending
	gen := s.gen
	s.busy = true
	s.state = StateCommitting
	s.mu.Unlock()

	data, err := s.client.BulkUpload(ctx, pending.CSVData, pending.TransactionType, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil, ErrNoFile
	}
	s.busy = false
	if err != nil {
		s.state = StateValidated
		return nil, err
	}

	result := &Result{
		Total:      data.Total,
		Successful: data.Successful,
		Failed:     data.Failed,
		Uploaded:   true,
		Errors:     flattenRowErrors(data.Errors),
	}
	s.result = result
	s.pending = nil
	s.state = StateCommitted
	return result, nil
}

// flattenRowErrors collapses each remote row's field errors into a single
// display entry: one message joining the field messages plus the offending
// field names.
func flattenRowErrors(rows []RowErrors) []bulkupload.ValidationError {
	var out []bulkupload.ValidationError
	for _, row := range rows {
		var msgs, fields []string
		for _, fe := range row.Errors {
			msgs = append(msgs, fe.Message)
			fields = append(fields, fe.Field)
		}
		out = append(out, bulkupload.ValidationError{
			RowNumber: row.Row,
			Kind:      bulkupload.ErrorKindValidation,
			Message:   strings.Join(msgs, ", "),
			Fields:    fields,
		})
	}
	return out
}
