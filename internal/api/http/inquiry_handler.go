package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/service"
)

// InquiryHandler accepts contact-form submissions on the public site and
// lists them for the admin area.
type InquiryHandler struct {
	inquiries service.InquiryService
}

func NewInquiryHandler(inquiries service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

func (h *InquiryHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var inquiry domain.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.inquiries.SubmitInquiry(r.Context(), &inquiry); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondData(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	inquiries, total, err := h.inquiries.ListInquiries(r.Context(),
		queryID(query.Get("page")), queryID(query.Get("page_size")))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list inquiries")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: inquiries, Total: total})
}

// RegisterInquiryRoutes mounts submission on the public router and listing
// on the admin router.
func RegisterInquiryRoutes(admin, public *mux.Router, inquiries service.InquiryService) {
	handler := NewInquiryHandler(inquiries)
	public.HandleFunc("/inquiries", handler.HandleSubmit).Methods("POST")
	admin.HandleFunc("/inquiries", handler.HandleList).Methods("GET")
}
