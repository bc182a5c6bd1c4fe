package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/studentms/backend/models"
)

type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret}
}

func (h *AuthHandler) signJWT(u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"name": u.Name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.jwtSecret))
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var p loginPayload
	if err := c.Bind(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return errJSON(c, http.StatusBadRequest, "username and password are required")
	}

	var u models.User
	if err := h.db.Where("username = ?", p.Username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errJSON(c, http.StatusUnauthorized, "invalid credentials")
		}
		return errJSON(c, http.StatusInternalServerError, "failed to load user")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(p.Password)) != nil {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}

	tok, err := h.signJWT(&u, 12*time.Hour)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to sign token")
	}
	return okJSON(c, http.StatusOK, map[string]any{
		"token": tok,
		"user":  u,
	})
}
