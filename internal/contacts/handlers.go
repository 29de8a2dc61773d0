package contacts

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GradTrack/GT-Backend/internal/middleware"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/phd-contacts?user_id=. Most recent outreach first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	contacts := []Contact{}
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, contacts)
}

// Create handles POST /api/phd-contacts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var contact Contact
	if err := middleware.ParseJSONBody(r, &contact); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if contact.Status == nil {
		status := defaultStatus
		contact.Status = &status
	}

	if err := h.db.Omit(clause.Associations).Create(&contact).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, CreateResponse{ID: contact.ID})
}

// Update handles PUT /api/phd-contacts/{id}. Full replace of every mutable
// column; omitted fields overwrite with NULL. A missing id still reports
// success with zero rows touched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var contact Contact
	if err := middleware.ParseJSONBody(r, &contact); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.db.Model(&Contact{}).
		Where("id = ?", id).
		Select(mutableColumns).
		Updates(&contact).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, UpdateResponse{Updated: true})
}

// Delete handles DELETE /api/phd-contacts/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.db.Delete(&Contact{}, id).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, DeleteResponse{Deleted: true})
}
