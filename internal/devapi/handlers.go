package devapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"preptogether/internal/domain"
)

var requiredFields = []string{"username", "password", "email", "role", "profession", "technologies"}

type errorBody struct {
	Error string `json:"error"`
}

type userBody struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Email        string            `json:"email"`
	Role         domain.Role       `json:"role"`
	Profession   domain.Profession `json:"profession"`
	Technologies []string          `json:"technologies"`
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.respondJSON(w, r, status, errorBody{Error: message})
}

func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.respondError(w, r, http.StatusBadRequest, "Email is required")
		return
	}
	s.respondJSON(w, r, http.StatusOK, map[string]bool{"exists": s.users.exists(email)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			s.respondError(w, r, http.StatusBadRequest, "Missing "+field+" field")
			return
		}
	}

	var req domain.RegistrationRequest
	for field, dst := range map[string]any{
		"username":     &req.Username,
		"password":     &req.Password,
		"email":        &req.Email,
		"role":         &req.Role,
		"profession":   &req.Profession,
		"technologies": &req.Technologies,
	} {
		if err := json.Unmarshal(raw[field], dst); err != nil {
			s.respondError(w, r, http.StatusBadRequest, "Invalid "+field+" field")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			s.respondError(w, r, http.StatusBadRequest, "Password is too long")
			return
		}
		s.logger.Error("hash password failed", "error", err)
		s.respondError(w, r, http.StatusInternalServerError, "Internal error")
		return
	}

	err = s.users.add(user{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(req.Email),
		Role:         req.Role,
		Profession:   req.Profession,
		Technologies: req.Technologies,
	})
	if err != nil {
		s.respondError(w, r, http.StatusConflict, "Email already registered")
		return
	}
	s.respondJSON(w, r, http.StatusCreated, domain.RegistrationResult{Message: "User registered successfully"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, ok := s.users.get(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		s.respondError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.tokens.issue(u.Email)
	if err != nil {
		s.logger.Error("issue token failed", "error", err)
		s.respondError(w, r, http.StatusInternalServerError, "Internal error")
		return
	}
	s.respondJSON(w, r, http.StatusOK, map[string]string{"access_token": token})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		s.respondError(w, r, http.StatusUnauthorized, "Missing Authorization Header")
		return
	}
	email, err := s.tokens.subject(token)
	if err != nil {
		s.respondError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	u, ok := s.users.get(email)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "User not found")
		return
	}
	techs := u.Technologies
	if techs == nil {
		techs = []string{}
	}
	s.respondJSON(w, r, http.StatusOK, map[string]userBody{"user": {
		ID:           u.ID.String(),
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		Profession:   u.Profession,
		Technologies: techs,
	}})
}
