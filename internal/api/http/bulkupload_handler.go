package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/bulkupload"
	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/service"
)

// BulkUploadHandler exposes the two-phase CSV upload endpoint and the
// template download.
type BulkUploadHandler struct {
	uploads  service.BulkUploadService
	maxBytes int64
}

func NewBulkUploadHandler(uploads service.BulkUploadService, maxBytes int64) *BulkUploadHandler {
	return &BulkUploadHandler{uploads: uploads, maxBytes: maxBytes}
}

type bulkUploadRequest struct {
	CSVData         string `json:"csvData"`
	TransactionType string `json:"transactionType"`
	ValidateOnly    bool   `json:"validateOnly"`
}

// HandleUpload runs one validate or commit pass over the posted CSV text.
func (h *BulkUploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	var req bulkUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CSVData == "" {
		respondError(w, http.StatusBadRequest, "csvData is required")
		return
	}

	txType := domain.ParseTransactionType(req.TransactionType)
	result, err := h.uploads.Upload(r.Context(), req.CSVData, txType, req.ValidateOnly)
	if err != nil {
		var mismatch *service.HeaderMismatchError
		if errors.As(err, &mismatch) {
			respondError(w, http.StatusBadRequest, mismatch.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to process upload")
		return
	}

	respondData(w, http.StatusOK, result)
}

// HandleTemplate streams the CSV template for the requested transaction
// type.
func (h *BulkUploadHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	txType := domain.ParseTransactionType(r.URL.Query().Get("type"))
	content, filename := bulkupload.Template(txType)

	w.Header().Set("Content-Type", bulkupload.TemplateContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(content)
}

// HandleListUploads lists recent upload audit records for the admin area.
func (h *BulkUploadHandler) HandleListUploads(w http.ResponseWriter, r *http.Request) {
	limit := int32(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 32); err == nil && parsed > 0 {
			limit = int32(parsed)
		}
	}

	records, err := h.uploads.ListRecentUploads(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list uploads")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: records})
}

// RegisterBulkUploadRoutes mounts the upload endpoints. The upload and
// history routes are admin-only; the template download rides along with them.
// maxBytes bounds the upload request body; zero disables the limit.
func RegisterBulkUploadRoutes(router *mux.Router, uploads service.BulkUploadService, maxBytes int64) {
	handler := NewBulkUploadHandler(uploads, maxBytes)
	router.HandleFunc("/properties/bulk-upload", handler.HandleUpload).Methods("POST")
	router.HandleFunc("/properties/bulk-upload/template", handler.HandleTemplate).Methods("GET")
	router.HandleFunc("/properties/bulk-upload/history", handler.HandleListUploads).Methods("GET")
}
