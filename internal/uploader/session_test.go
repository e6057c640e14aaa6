package uploader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "estatedesk-backend/internal/api/http"
	"estatedesk-backend/internal/bulkupload"
	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/security"
	"estatedesk-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUploadServer serves the bulk upload contract backed by the local
// validation pipeline, counting calls per pass.
func newUploadServer(t *testing.T, txType domain.TransactionType, calls *[]bool) *httptest.Server {
	t.Helper()
	schema := bulkupload.FieldSchema(txType)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/properties/bulk-upload", r.URL.Path)

		var req struct {
			CSVData         string `json:"csvData"`
			TransactionType string `json:"transactionType"`
			ValidateOnly    bool   `json:"validateOnly"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*calls = append(*calls, req.ValidateOnly)

		doc := bulkupload.ParseCSV(req.CSVData)
		data := UploadData{Total: len(doc.Rows)}
		for _, row := range doc.Rows {
			errs := bulkupload.ValidateRow(row, doc.Headers, schema)
			if len(errs) == 0 {
				data.Successful++
				data.ValidRows = append(data.ValidRows, row.RowNumber)
				continue
			}
			data.Failed++
			re := RowErrors{Row: row.RowNumber}
			for _, e := range errs {
				for _, f := range e.Fields {
					re.Errors = append(re.Errors, FieldError{Field: f, Message: e.Message})
				}
			}
			data.Errors = append(data.Errors, re)
		}

		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}))
}

func leaseCSV(rows ...map[string]string) string {
	schema := bulkupload.FieldSchema(domain.TransactionTypeLease)
	lines := []string{strings.Join(schema, ",")}
	for _, row := range rows {
		values := make([]string, len(schema))
		for i, f := range schema {
			values[i] = row[f]
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return strings.Join(lines, "\n")
}

func validLeaseValues(overrides map[string]string) map[string]string {
	values := map[string]string{
		bulkupload.FieldProjectName:    "Marina Heights",
		bulkupload.FieldZoneName:       "Zone A",
		bulkupload.FieldBlockName:      "Block 3",
		bulkupload.FieldPropertyNumber: "A-301",
		bulkupload.FieldPropertyType:   "Apartment",
		bulkupload.FieldBedrooms:       "2",
		bulkupload.FieldBathrooms:      "2",
		bulkupload.FieldUnitSize:       "1200",
		bulkupload.FieldFurnishing:     "Furnished",
		bulkupload.FieldView:           "Sea View",
		bulkupload.FieldTitle:          "Two-bedroom apartment",
		bulkupload.FieldDescription:    "Bright corner unit",
		bulkupload.FieldCurrency:       "USD",
		bulkupload.FieldLeasePrice:     "1500",
		bulkupload.FieldAvailableFrom:  "2024-01-01",
	}
	for k, v := range overrides {
		values[k] = v
	}
	return values
}

func TestSessionSelectFile(t *testing.T) {
	session := NewSession(NewClient("http://unused", 0), domain.TransactionTypeLease)

	t.Run("Rejects non-CSV filename", func(t *testing.T) {
		err := session.SelectFile("properties.xlsx", "data")
		assert.ErrorIs(t, err, ErrNotCSV)
		assert.Equal(t, StateIdle, session.State())
	})

	t.Run("Suffix check is case-sensitive", func(t *testing.T) {
		err := session.SelectFile("properties.CSV", "data")
		assert.ErrorIs(t, err, ErrNotCSV)
	})

	t.Run("Accepts CSV and moves to FileSelected", func(t *testing.T) {
		err := session.SelectFile("properties.csv", "data")
		assert.NoError(t, err)
		assert.Equal(t, StateFileSelected, session.State())
	})
}

func TestSessionValidateAndCommit_AllValid(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	csv := leaseCSV(
		validLeaseValues(nil),
		validLeaseValues(map[string]string{bulkupload.FieldPropertyNumber: "A-302"}),
		validLeaseValues(map[string]string{bulkupload.FieldPropertyNumber: "A-303"}),
	)
	require.NoError(t, session.SelectFile("lease.csv", csv))

	result, err := session.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, StateValidated, session.State())

	pending := session.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, 3, pending.ValidCount)
	assert.Equal(t, csv, pending.CSVData)
	assert.Equal(t, "Lease", pending.TransactionType)

	result, err = session.CommitPending(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Uploaded)
	assert.Equal(t, StateCommitted, session.State())
	assert.Nil(t, session.Pending())

	// validate-only true then false, in that order
	assert.Equal(t, []bool{true, false}, calls)
}

func TestSessionValidate_TemplateMismatch(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)

	// Header without Block Name
	schema := bulkupload.FieldSchema(domain.TransactionTypeLease)
	var headers []string
	for _, f := range schema {
		if f != bulkupload.FieldBlockName {
			headers = append(headers, f)
		}
	}
	csv := strings.Join(headers, ",") + "\nvalue"
	require.NoError(t, session.SelectFile("lease.csv", csv))

	_, err := session.Validate(context.Background())
	var mismatch *TemplateMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{bulkupload.FieldBlockName}, mismatch.Missing)
	assert.Equal(t, StateFileSelected, session.State())
	assert.Empty(t, calls, "no remote call on template mismatch")
}

func TestSessionValidate_PartiallyValid(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	// failing rows land on lines 3 and 5
	csv := leaseCSV(
		validLeaseValues(nil),
		validLeaseValues(map[string]string{bulkupload.FieldBedrooms: "two"}),
		validLeaseValues(nil),
		validLeaseValues(map[string]string{bulkupload.FieldCurrency: ""}),
		validLeaseValues(nil),
	)
	require.NoError(t, session.SelectFile("lease.csv", csv))

	result, err := session.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 2, result.Failed)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].RowNumber)
	assert.Equal(t, bulkupload.ErrorKindValidation, result.Errors[0].Kind)
	assert.Contains(t, result.Errors[0].Message, "Bedrooms must be a number")
	assert.Equal(t, 5, result.Errors[1].RowNumber)
	assert.Contains(t, result.Errors[1].Message, "Missing required fields: Currency")

	pending := session.Pending()
	require.NotNil(t, pending, "partially valid outcome still creates a PendingCommit")
	assert.Equal(t, 3, pending.ValidCount)
	assert.Equal(t, 2, pending.ErrorCount)
}

func TestSessionValidate_AllInvalid(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	csv := leaseCSV(validLeaseValues(map[string]string{bulkupload.FieldTitle: ""}))
	require.NoError(t, session.SelectFile("lease.csv", csv))

	result, err := session.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Successful)
	assert.Nil(t, session.Pending(), "no PendingCommit when nothing is valid")

	_, err = session.CommitPending(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingCommit)
}

func TestSessionValidate_RemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
	}))
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("lease.csv", leaseCSV(validLeaseValues(nil))))

	_, err := session.Validate(context.Background())
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "database unavailable", remote.Message)
	assert.Equal(t, StateFileSelected, session.State(), "file stays selected for retry")
}

func TestSessionCommit_FailureKeepsPending(t *testing.T) {
	fail := false
	var schema = bulkupload.FieldSchema(domain.TransactionTypeLease)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"message": "upstream timeout"})
			return
		}
		var req struct {
			CSVData string `json:"csvData"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		doc := bulkupload.ParseCSV(req.CSVData)
		data := UploadData{Total: len(doc.Rows)}
		for _, row := range doc.Rows {
			if len(bulkupload.ValidateRow(row, doc.Headers, schema)) == 0 {
				data.Successful++
			} else {
				data.Failed++
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}))
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("lease.csv", leaseCSV(validLeaseValues(nil))))
	_, err := session.Validate(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = session.CommitPending(context.Background())
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "upstream timeout", remote.Message)
	assert.NotNil(t, session.Pending(), "pending payload survives a failed commit")
	assert.Equal(t, StateValidated, session.State())

	fail = false
	result, err := session.CommitPending(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Uploaded)
}

func TestSessionReset(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("lease.csv", leaseCSV(validLeaseValues(nil))))
	_, err := session.Validate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session.Pending())

	session.Reset()
	assert.Equal(t, StateIdle, session.State())
	assert.Nil(t, session.Pending())
	assert.Nil(t, session.Result())
}

func TestSessionSelectFile_ClearsPending(t *testing.T) {
	var calls []bool
	server := newUploadServer(t, domain.TransactionTypeLease, &calls)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("first.csv", leaseCSV(validLeaseValues(nil))))
	_, err := session.Validate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session.Pending())

	// A new file invalidates the prior PendingCommit even before validation.
	require.NoError(t, session.SelectFile("second.csv", leaseCSV(validLeaseValues(nil))))
	assert.Nil(t, session.Pending())
	assert.Equal(t, StateFileSelected, session.State())

	_, err = session.CommitPending(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingCommit)
}

// stubUploadService satisfies service.BulkUploadService with a canned result
// so the real router can be mounted in front of the client.
type stubUploadService struct {
	result *service.BulkUploadResult
}

func (s *stubUploadService) Upload(ctx context.Context, csvData string, txType domain.TransactionType, validateOnly bool) (*service.BulkUploadResult, error) {
	return s.result, nil
}

func (s *stubUploadService) ListRecentUploads(ctx context.Context, limit int32) ([]domain.UploadRecord, error) {
	return nil, nil
}

func TestSession_AgainstGuardedRouter(t *testing.T) {
	tm := security.NewTokenManager("upload-secret")
	router := httpapi.NewRouter(httpapi.Services{
		BulkUpload: &stubUploadService{result: &service.BulkUploadResult{Total: 1, Successful: 1, ValidRows: []int{2}}},
	}, tm)
	server := httptest.NewServer(router)
	defer server.Close()

	csv := leaseCSV(validLeaseValues(nil))

	t.Run("Without token the admin guard rejects the call", func(t *testing.T) {
		session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
		require.NoError(t, session.SelectFile("lease.csv", csv))

		_, err := session.Validate(context.Background())
		var remote *RemoteError
		require.ErrorAs(t, err, &remote)
		assert.Equal(t, http.StatusUnauthorized, remote.Status)
		assert.Equal(t, "authorization token is not provided", remote.Message)
		assert.Equal(t, StateFileSelected, session.State())
	})

	t.Run("Bearer token carries validate and commit through the guard", func(t *testing.T) {
		token, err := tm.Generate(1, "admin@example.com", []string{"admin"}, time.Hour)
		require.NoError(t, err)

		session := NewSession(NewClient(server.URL, 0).WithToken(token), domain.TransactionTypeLease)
		require.NoError(t, session.SelectFile("lease.csv", csv))

		result, err := session.Validate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Successful)
		require.NotNil(t, session.Pending())

		result, err = session.CommitPending(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Uploaded)
		assert.Equal(t, StateCommitted, session.State())
	})
}

// newBlockingServer parks each upload request until release is closed, so a
// test can observe the session while a round trip is in flight.
func newBlockingServer(entered chan<- struct{}, release <-chan struct{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-release
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    UploadData{Total: 1, Successful: 1, ValidRows: []int{2}},
		})
	}))
}

func TestSessionValidate_BusyGuard(t *testing.T) {
	entered := make(chan struct{}, 4)
	release := make(chan struct{})
	server := newBlockingServer(entered, release)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("lease.csv", leaseCSV(validLeaseValues(nil))))

	done := make(chan error, 1)
	go func() {
		_, err := session.Validate(context.Background())
		done <- err
	}()
	<-entered

	// Re-entrant calls while the round trip is parked must bounce.
	_, err := session.Validate(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	_, err = session.CommitPending(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	err = session.SelectFile("another.csv", "data")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, StateValidating, session.State())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateValidated, session.State())

	// The guard lifts once the flight lands.
	_, err = session.CommitPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateCommitted, session.State())
}

func TestSessionReset_DiscardsInFlightResponse(t *testing.T) {
	entered := make(chan struct{}, 4)
	release := make(chan struct{})
	server := newBlockingServer(entered, release)
	defer server.Close()

	session := NewSession(NewClient(server.URL, 0), domain.TransactionTypeLease)
	require.NoError(t, session.SelectFile("lease.csv", leaseCSV(validLeaseValues(nil))))

	done := make(chan error, 1)
	go func() {
		_, err := session.Validate(context.Background())
		done <- err
	}()
	<-entered

	session.Reset()
	close(release)

	// The response that lands after the reset belongs to a dead generation.
	assert.ErrorIs(t, <-done, ErrNoFile)
	assert.Equal(t, StateIdle, session.State())
	assert.Nil(t, session.Result())
	assert.Nil(t, session.Pending())
}
