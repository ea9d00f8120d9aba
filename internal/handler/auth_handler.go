package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"medicare-api/internal/auth"
	"medicare-api/internal/model"
	"medicare-api/internal/store"
)

type registerPatientRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medicalHistory"`
}

type tokenResponse struct {
	Token string     `json:"token"`
	Role  model.Role `json:"role"`
}

func (h *Handler) registerPatient(w http.ResponseWriter, r *http.Request) {
	var req registerPatientRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	taken, err := h.store.EmailTaken(r.Context(), req.Email)
	if err != nil {
		h.serverError(w, "register: email lookup", err)
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "Email already in use")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(w, "register: hash", err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RolePatient,
	}
	p := &model.PatientProfile{
		ID:             uuid.New().String(),
		UserID:         u.ID,
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.store.CreatePatient(r.Context(), u, p); err != nil {
		// a register race slips past the pre-check and trips the unique index
		if store.IsUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Email already in use")
			return
		}
		h.serverError(w, "register: create patient", err)
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		h.serverError(w, "register: token", err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: tok, Role: u.Role})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN DOCTOR PATIENT"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.serverError(w, "login: user lookup", err)
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	// UX guard only: the token below carries the true role regardless
	if req.Role != "" && model.Role(req.Role) != u.Role {
		writeError(w, http.StatusBadRequest, "This account is not a "+strings.ToLower(req.Role))
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Role, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		h.serverError(w, "login: token", err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: tok, Role: u.Role})
}
