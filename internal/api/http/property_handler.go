package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/service"
)

// PropertyHandler serves admin property CRUD and the trash lifecycle.
type PropertyHandler struct {
	properties service.PropertyService
}

func NewPropertyHandler(properties service.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var property domain.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.properties.CreateProperty(r.Context(), &property); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}
	respondData(w, http.StatusCreated, property)
}

func (h *PropertyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	property, err := h.properties.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}
	respondData(w, http.StatusOK, property)
}

func (h *PropertyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var property domain.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	property.ID = id

	if err := h.properties.UpdateProperty(r.Context(), &property); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	respondData(w, http.StatusOK, property)
}

func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.PropertyFilter{
		ProjectID: queryID(query.Get("project_id")),
		ZoneID:    queryID(query.Get("zone_id")),
		Trashed:   query.Get("trashed") == "true",
	}
	if raw := query.Get("transaction_type"); raw != "" {
		filter.TransactionType = domain.ParseTransactionType(raw)
	}
	if raw := query.Get("status"); raw != "" {
		filter.Status = domain.PropertyStatus(raw)
	}

	page := queryID(query.Get("page"))
	pageSize := queryID(query.Get("page_size"))

	properties, total, err := h.properties.ListProperties(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: properties, Total: total, Page: page})
}

func (h *PropertyHandler) HandleTrash(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.properties.TrashProperty)
}

func (h *PropertyHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.properties.RestoreProperty)
}

func (h *PropertyHandler) HandlePurge(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.properties.PurgeProperty)
}

// lifecycle runs one of the trash operations and maps the repo's not-found
// sentinel onto a 404.
func (h *PropertyHandler) lifecycle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int32) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Property not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	respondData(w, http.StatusOK, map[string]int32{"id": id})
}

// RegisterPropertyRoutes mounts the admin property endpoints.
func RegisterPropertyRoutes(router *mux.Router, properties service.PropertyService) {
	handler := NewPropertyHandler(properties)
	router.HandleFunc("/properties", handler.HandleCreate).Methods("POST")
	router.HandleFunc("/properties", handler.HandleList).Methods("GET")
	router.HandleFunc("/properties/{id:[0-9]+}", handler.HandleGet).Methods("GET")
	router.HandleFunc("/properties/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT")
	router.HandleFunc("/properties/{id:[0-9]+}/trash", handler.HandleTrash).Methods("POST")
	router.HandleFunc("/properties/{id:[0-9]+}/restore", handler.HandleRestore).Methods("POST")
	router.HandleFunc("/properties/{id:[0-9]+}", handler.HandlePurge).Methods("DELETE")
}

// pathID reads the {id} route variable, writing a 400 on malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return int32(id), true
}

func queryID(raw string) int32 {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 0 {
		return 0
	}
	return int32(id)
}
