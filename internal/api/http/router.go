package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/security"
	"estatedesk-backend/internal/service"
)

// Services bundles everything the router serves.
type Services struct {
	Properties service.PropertyService
	BulkUpload service.BulkUploadService
	MasterData service.MasterDataService
	Content    service.ContentService
	Inquiries  service.InquiryService

	// MaxUploadBytes bounds the bulk upload request body; zero disables the
	// limit.
	MaxUploadBytes int64
}

// NewRouter builds the full API surface. The public site reads published
// content, master data and submits inquiries; property management and the
// bulk upload endpoints require an admin token, as does the back-office
// content area under /api/v1/admin.
func NewRouter(svcs Services, tokenManager security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging)

	auth := NewAuthMiddleware(tokenManager)

	public := router.PathPrefix("/api/v1").Subrouter()
	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(auth.RequireAdmin)

	// Property CRUD and bulk upload share the /api/v1/properties prefix and
	// the admin guard.
	properties := router.PathPrefix("/api/v1").Subrouter()
	properties.Use(auth.RequireAdmin)
	RegisterBulkUploadRoutes(properties, svcs.BulkUpload, svcs.MaxUploadBytes)
	RegisterPropertyRoutes(properties, svcs.Properties)

	RegisterMasterDataRoutes(public, svcs.MasterData)
	RegisterContentRoutes(admin, public, svcs.Content)
	RegisterInquiryRoutes(admin, public, svcs.Inquiries)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return router
}
