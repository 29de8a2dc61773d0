package applications

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

// List handles GET /api/masters-apps?user_id=. Soonest deadline first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	apps := []Application{}
	if err := h.db.Where("user_id = ?", userID).
		Order("end_date ASC").
		Find(&apps).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, apps)
}

// Create handles POST /api/masters-apps.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var app Application
	if err := middleware.ParseJSONBody(r, &app); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if app.Priority == nil {
		priority := defaultPriority
		app.Priority = &priority
	}
	if app.AppStatus == nil {
		status := defaultAppStatus
		app.AppStatus = &status
	}
	if app.AccountCreated == nil {
		flag := 0
		app.AccountCreated = &flag
	}

	if err := h.db.Omit(clause.Associations).Create(&app).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, CreateResponse{ID: app.ID})
}

// Update handles PUT /api/masters-apps/{id}. Full replace of every mutable
// column; omitted fields overwrite with NULL. A missing id still reports
// success with zero rows touched.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var app Application
	if err := middleware.ParseJSONBody(r, &app); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.db.Model(&Application{}).
		Where("id = ?", id).
		Select(mutableColumns).
		Updates(&app).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, UpdateResponse{Updated: true})
}

// Delete handles DELETE /api/masters-apps/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.db.Delete(&Application{}, id).Error; err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, DeleteResponse{Deleted: true})
}
