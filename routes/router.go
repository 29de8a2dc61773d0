package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/GradTrack/GT-Backend/internal/applications"
	"github.com/GradTrack/GT-Backend/internal/auth"
	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/contacts"
	"github.com/GradTrack/GT-Backend/internal/middleware"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

// New assembles the full API router with the store injected into every
// handler. Static assets from cfg.PublicDir are served for anything outside
// /api.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", auth.SetupRoutes(auth.NewHandler(db, cfg.PasswordScheme)))
		r.Mount("/phd-contacts", contacts.SetupRoutes(contacts.NewHandler(db)))
		r.Mount("/masters-apps", applications.SetupRoutes(applications.NewHandler(db)))
	})

	if cfg.PublicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return r
}
