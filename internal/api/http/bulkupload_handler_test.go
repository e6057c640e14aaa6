package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/security"
	"estatedesk-backend/internal/service"
)

type mockBulkUploadService struct {
	mock.Mock
}

func (m *mockBulkUploadService) Upload(ctx context.Context, csvData string, txType domain.TransactionType, validateOnly bool) (*service.BulkUploadResult, error) {
	args := m.Called(ctx, csvData, txType, validateOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BulkUploadResult), args.Error(1)
}

func (m *mockBulkUploadService) ListRecentUploads(ctx context.Context, limit int32) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}

func TestBulkUploadHandler_HandleUpload(t *testing.T) {
	t.Run("ValidatePass", func(t *testing.T) {
		uploads := new(mockBulkUploadService)
		uploads.On("Upload", mock.Anything, "Project Name\nMarina", domain.TransactionTypeLease, true).
			Return(&service.BulkUploadResult{Total: 1, Successful: 1, ValidRows: []int{2}}, nil)
		handler := NewBulkUploadHandler(uploads, 0)

		body := `{"csvData":"Project Name\nMarina","transactionType":"Lease","validateOnly":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-upload", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.HandleUpload(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var decoded struct {
			Success bool `json:"success"`
			Data    struct {
				Total      int   `json:"total"`
				Successful int   `json:"successful"`
				ValidRows  []int `json:"validRows"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		assert.True(t, decoded.Success)
		assert.Equal(t, 1, decoded.Data.Total)
		assert.Equal(t, []int{2}, decoded.Data.ValidRows)
	})

	t.Run("HeaderMismatch", func(t *testing.T) {
		uploads := new(mockBulkUploadService)
		uploads.On("Upload", mock.Anything, mock.Anything, domain.TransactionTypeLease, true).
			Return(nil, &service.HeaderMismatchError{Missing: []string{"Block Name"}})
		handler := NewBulkUploadHandler(uploads, 0)

		body := `{"csvData":"Project Name\nMarina","transactionType":"Lease","validateOnly":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-upload", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.HandleUpload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var decoded map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
		assert.Contains(t, decoded["error"], "Block Name")
	})

	t.Run("PayloadTooLarge", func(t *testing.T) {
		handler := NewBulkUploadHandler(new(mockBulkUploadService), 32)

		body := `{"csvData":"` + strings.Repeat("a", 64) + `","validateOnly":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-upload", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.HandleUpload(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		handler := NewBulkUploadHandler(new(mockBulkUploadService), 0)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/bulk-upload", strings.NewReader(`{"csvData":""}`))
		rec := httptest.NewRecorder()
		handler.HandleUpload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBulkUploadHandler_HandleTemplate(t *testing.T) {
	handler := NewBulkUploadHandler(new(mockBulkUploadService), 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/bulk-upload/template?type=sale", nil)
	rec := httptest.NewRecorder()
	handler.HandleTemplate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv;charset=utf-8;", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sale_properties_template_")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Project Name,"))
	assert.Contains(t, rec.Body.String(), "Sale Price")
}

func TestRouter_AdminGuard(t *testing.T) {
	uploads := new(mockBulkUploadService)
	uploads.On("ListRecentUploads", mock.Anything, int32(20)).Return([]domain.UploadRecord{}, nil)

	tm := security.NewTokenManager("test-secret")
	router := NewRouter(Services{BulkUpload: uploads}, tm)

	t.Run("MissingToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/bulk-upload/history", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MissingBearerPrefix", func(t *testing.T) {
		token, err := tm.Generate(1, "admin@example.com", []string{"admin"}, time.Hour)
		assert.NoError(t, err)

		// A valid token without the Bearer prefix is a malformed header.
		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/bulk-upload/history", nil)
		req.Header.Set("Authorization", token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := tm.Generate(1, "admin@example.com", []string{"admin"}, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/bulk-upload/history", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("PublicRouteSkipsAuth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
