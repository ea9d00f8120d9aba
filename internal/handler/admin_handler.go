package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"medicare-api/internal/auth"
	"medicare-api/internal/model"
	"medicare-api/internal/store"
)

type createDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

type createDoctorResponse struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func (h *Handler) createDoctor(w http.ResponseWriter, r *http.Request) {
	var req createDoctorRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	taken, err := h.store.EmailTaken(r.Context(), req.Email)
	if err != nil {
		h.serverError(w, "admin: email lookup", err)
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, "Email already in use")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(w, "admin: hash", err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}
	d := &model.DoctorProfile{
		ID:             uuid.New().String(),
		UserID:         u.ID,
		Name:           req.Name,
		Specialization: req.Specialization,
	}

	if err := h.store.CreateDoctor(r.Context(), u, d); err != nil {
		if store.IsUniqueViolation(err) {
			writeError(w, http.StatusBadRequest, "Email already in use")
			return
		}
		h.serverError(w, "admin: create doctor", err)
		return
	}

	writeJSON(w, http.StatusOK, createDoctorResponse{ID: u.ID, Email: u.Email, Role: u.Role})
}

func (h *Handler) adminListDoctors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListDoctorsWithEmail(r.Context())
	if err != nil {
		h.serverError(w, "admin: list doctors", err)
		return
	}

	out := make([]doctorResponse, len(docs))
	for i := range docs {
		out[i] = toDoctorResponse(&docs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// deleteDoctor cascades appointments, profile, then user; an unknown id
// is answered with ok rather than an error.
func (h *Handler) deleteDoctor(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.store.DeleteDoctorByUserID(r.Context(), userID); err != nil {
		h.serverError(w, "admin: delete doctor", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) adminListPatients(w http.ResponseWriter, r *http.Request) {
	pts, err := h.store.ListPatientsWithEmail(r.Context())
	if err != nil {
		h.serverError(w, "admin: list patients", err)
		return
	}

	out := make([]patientProfileResponse, len(pts))
	for i := range pts {
		out[i] = toPatientResponse(&pts[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.store.DeletePatientByUserID(r.Context(), userID); err != nil {
		h.serverError(w, "admin: delete patient", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) adminListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.store.ListAll(r.Context())
	if err != nil {
		h.serverError(w, "admin: list appointments", err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toAppointmentResponse(&apts[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) adminDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteByID(r.Context(), id); err != nil {
		h.serverError(w, "admin: delete appointment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
