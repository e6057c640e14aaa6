package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/service"
)

// ContentHandler serves blog posts, categories and testimonials. Admin
// routes cover the full CRUD; the public site reads published content only.
type ContentHandler struct {
	content service.ContentService
}

func NewContentHandler(content service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post domain.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.content.CreatePost(r.Context(), &post); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	respondData(w, http.StatusCreated, post)
}

func (h *ContentHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	post, err := h.content.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	respondData(w, http.StatusOK, post)
}

func (h *ContentHandler) HandleGetPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.GetPostBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	respondData(w, http.StatusOK, post)
}

func (h *ContentHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var post domain.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	post.ID = id
	if err := h.content.UpdatePost(r.Context(), &post); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}
	respondData(w, http.StatusOK, post)
}

func (h *ContentHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeletePost(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	respondData(w, http.StatusOK, map[string]int32{"id": id})
}

func (h *ContentHandler) listPosts(publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		posts, total, err := h.content.ListPosts(r.Context(), publishedOnly,
			queryID(query.Get("category_id")), queryID(query.Get("page")), queryID(query.Get("page_size")))
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list posts")
			return
		}
		respondData(w, http.StatusOK, listPage{Data: posts, Total: total})
	}
}

func (h *ContentHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.ListCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}
	respondData(w, http.StatusOK, listPage{Data: categories})
}

func (h *ContentHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.content.CreateCategory(r.Context(), &category); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	respondData(w, http.StatusCreated, category)
}

func (h *ContentHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	respondData(w, http.StatusOK, map[string]int32{"id": id})
}

func (h *ContentHandler) HandleCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.content.CreateTestimonial(r.Context(), &testimonial); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}
	respondData(w, http.StatusCreated, testimonial)
}

func (h *ContentHandler) listTestimonials(publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.content.ListTestimonials(r.Context(), publishedOnly)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to list testimonials")
			return
		}
		respondData(w, http.StatusOK, listPage{Data: testimonials})
	}
}

func (h *ContentHandler) HandleUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var testimonial domain.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	testimonial.ID = id
	if err := h.content.UpdateTestimonial(r.Context(), &testimonial); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}
	respondData(w, http.StatusOK, testimonial)
}

func (h *ContentHandler) HandleDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteTestimonial(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	respondData(w, http.StatusOK, map[string]int32{"id": id})
}

// RegisterContentRoutes mounts the content endpoints: full CRUD on the admin
// router, published-only reads on the public router.
func RegisterContentRoutes(admin, public *mux.Router, content service.ContentService) {
	handler := NewContentHandler(content)

	admin.HandleFunc("/posts", handler.HandleCreatePost).Methods("POST")
	admin.HandleFunc("/posts", handler.listPosts(false)).Methods("GET")
	admin.HandleFunc("/posts/{id:[0-9]+}", handler.HandleGetPost).Methods("GET")
	admin.HandleFunc("/posts/{id:[0-9]+}", handler.HandleUpdatePost).Methods("PUT")
	admin.HandleFunc("/posts/{id:[0-9]+}", handler.HandleDeletePost).Methods("DELETE")
	admin.HandleFunc("/categories", handler.HandleCreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id:[0-9]+}", handler.HandleDeleteCategory).Methods("DELETE")
	admin.HandleFunc("/testimonials", handler.HandleCreateTestimonial).Methods("POST")
	admin.HandleFunc("/testimonials", handler.listTestimonials(false)).Methods("GET")
	admin.HandleFunc("/testimonials/{id:[0-9]+}", handler.HandleUpdateTestimonial).Methods("PUT")
	admin.HandleFunc("/testimonials/{id:[0-9]+}", handler.HandleDeleteTestimonial).Methods("DELETE")

	public.HandleFunc("/posts", handler.listPosts(true)).Methods("GET")
	public.HandleFunc("/posts/{slug}", handler.HandleGetPostBySlug).Methods("GET")
	public.HandleFunc("/categories", handler.HandleListCategories).Methods("GET")
	public.HandleFunc("/testimonials", handler.listTestimonials(true)).Methods("GET")
}
