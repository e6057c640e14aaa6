package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/service"
)

// MasterDataHandler serves the read-only lookup endpoints that back the
// admin filters and the upload form.
type MasterDataHandler struct {
	masterData service.MasterDataService
}

func NewMasterDataHandler(masterData service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterData: masterData}
}

func (h *MasterDataHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.masterData.ListProjects(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: projects})
}

func (h *MasterDataHandler) HandleZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.masterData.ListZones(r.Context(), queryID(r.URL.Query().Get("project_id")))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list zones")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: zones})
}

func (h *MasterDataHandler) HandleBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.masterData.ListBlocks(r.Context(), queryID(r.URL.Query().Get("zone_id")))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list blocks")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: blocks})
}

func (h *MasterDataHandler) HandlePropertyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.masterData.ListPropertyTypes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list property types")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: types})
}

func (h *MasterDataHandler) HandleFloorRanges(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.masterData.ListFloorRanges(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list floor ranges")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: ranges})
}

func (h *MasterDataHandler) HandleCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.masterData.ListCurrencies(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list currencies")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: currencies})
}

// RegisterMasterDataRoutes mounts the lookup endpoints.
func RegisterMasterDataRoutes(router *mux.Router, masterData service.MasterDataService) {
	handler := NewMasterDataHandler(masterData)
	router.HandleFunc("/projects", handler.HandleProjects).Methods("GET")
	router.HandleFunc("/zones", handler.HandleZones).Methods("GET")
	router.HandleFunc("/blocks", handler.HandleBlocks).Methods("GET")
	router.HandleFunc("/property-types", handler.HandlePropertyTypes).Methods("GET")
	router.HandleFunc("/floor-ranges", handler.HandleFloorRanges).Methods("GET")
	router.HandleFunc("/currencies", handler.HandleCurrencies).Methods("GET")
}
