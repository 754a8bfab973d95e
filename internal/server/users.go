// ABOUTME: Session issuer handlers for register, login, logout, and getuser
// ABOUTME: Mints session tokens and delivers them via cookie and response body

package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirelane/hirelane/internal/auth"
	"github.com/hirelane/hirelane/internal/store"
)

// registerRequest is the JSON request body for POST /api/v1/user/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// loginRequest is the JSON request body for POST /api/v1/user/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// sendToken mints a session token for the user and delivers it both as an
// HTTP-only cookie and in the response body, so cookie-based and
// header-based clients work alike.
func (s *Server) sendToken(w http.ResponseWriter, user *store.User, status int, message string) {
	token, err := s.codec.Mint(user.ID)
	if err != nil {
		s.logger.Error("failed to mint session token", "error", err, "user_id", user.ID)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.codec.TTL()),
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	s.sendJSON(w, status, map[string]any{
		"success": true,
		"message": message,
		"token":   token,
		"user":    user,
	})
}

// handleRegister creates a new account and issues a session.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Presence only; email/phone shape and password strength are not enforced.
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Password == "" || req.Role == "" {
		s.sendError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	role := store.Role(req.Role)
	if !role.Valid() {
		s.sendError(w, http.StatusBadRequest, "invalid role")
		return
	}

	if _, err := s.store.GetUserByEmail(r.Context(), req.Email); err == nil {
		s.sendError(w, http.StatusBadRequest, "email already registered")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check email", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &store.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.sendError(w, http.StatusBadRequest, "email already registered")
			return
		}
		s.logger.Error("failed to create user", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	s.sendToken(w, user, http.StatusCreated, "user registered successfully")
}

// handleLogin verifies credentials and issues a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		s.sendError(w, http.StatusBadRequest, "please provide email, password, and role")
		return
	}

	user, err := s.store.GetUserByEmailWithPassword(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same message as a password mismatch, so account existence
			// cannot be probed.
			s.sendError(w, http.StatusBadRequest, "invalid email or password")
			return
		}
		s.logger.Error("failed to look up user", "error", err)
		s.sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	if user.Role != store.Role(req.Role) {
		// Deliberately more specific than the credential errors above;
		// the message names the requested role.
		s.sendError(w, http.StatusNotFound, fmt.Sprintf("user with provided email and %s not found", req.Role))
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	s.sendToken(w, user, http.StatusOK, "user logged in successfully")
}

// handleLogout overwrites the session cookie with an already-expired value.
// Tokens a client captured from the response body stay valid until expiry;
// there is no server-side revocation.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "logged out successfully",
	})
}

// handleGetUser returns the authenticated principal. Runs behind the gate.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user := auth.FromContext(r.Context())
	if user == nil {
		s.sendError(w, http.StatusNotFound, "user not found")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}
