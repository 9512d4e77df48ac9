package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/application/auth"
	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
)

// AuthHandler handles /auth/* (register, login, me).
type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	users    ports.UserRepository
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, users ports.UserRepository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		users:    users,
		validate: validator.New(),
		log:      log,
	}
}

// UserResponse is the JSON shape for a user (no password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name" validate:"required,max=50"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Name:     strings.TrimSpace(body.Name),
		Email:    strings.TrimSpace(strings.ToLower(body.Email)),
		Password: body.Password,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, map[string]interface{}{
		"user":  toUserResponse(result.User),
		"token": result.Token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    strings.TrimSpace(strings.ToLower(body.Email)),
		Password: body.Password,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{
		"user":  toUserResponse(result.User),
		"token": result.Token,
	})
}

// Me returns the current user from the token. Requires AuthValidator middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	writeData(w, http.StatusOK, toUserResponse(user))
}
