package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GradTrack/GT-Backend/internal/config"
	"github.com/GradTrack/GT-Backend/internal/middleware"
)

type Handler struct {
	db     *gorm.DB
	scheme string
}

func NewHandler(db *gorm.DB, scheme string) *Handler {
	return &Handler{db: db, scheme: scheme}
}

// Digest returns the hex SHA-256 digest of a password. This is the legacy
// stored format; existing tracker databases hold these digests.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (h *Handler) hashPassword(password string) (string, error) {
	if h.scheme == config.SchemeBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(hashed), nil
	}
	return Digest(password), nil
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stored, err := h.hashPassword(req.Password)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	user := User{
		Name:     req.Name,
		Email:    req.Email,
		Password: stored,
		Phone:    req.Phone,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already exists")
			return
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, UserResponse{
		User: UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login handles POST /api/auth/login. Unknown email and wrong password are
// indistinguishable in the response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user User
	var err error
	if h.scheme == config.SchemeBcrypt {
		err = h.db.First(&user, "email = ?", req.Email).Error
		if err == nil {
			err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
		}
	} else {
		err = h.db.First(&user, "email = ? AND password = ?", req.Email, Digest(req.Password)).Error
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, UserResponse{
		User: UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
