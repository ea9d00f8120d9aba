package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"medicare-api/internal/middleware"
	"medicare-api/internal/model"
)

type patientProfileResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medicalHistory"`
	Email          string `json:"email,omitempty"`
}

type doctorResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email,omitempty"`
}

type appointmentResponse struct {
	ID               string       `json:"id"`
	PatientProfileID string       `json:"patientProfileId"`
	DoctorProfileID  string       `json:"doctorProfileId"`
	DateTime         time.Time    `json:"dateTime"`
	Status           model.Status `json:"status"`
	PatientName      string       `json:"patientName,omitempty"`
	DoctorName       string       `json:"doctorName,omitempty"`
	Specialization   string       `json:"specialization,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

func toPatientResponse(p *model.PatientProfile) patientProfileResponse {
	return patientProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		MedicalHistory: p.MedicalHistory,
		Email:          p.Email,
	}
}

func toDoctorResponse(d *model.DoctorProfile) doctorResponse {
	return doctorResponse{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Email:          d.Email,
	}
}

func toAppointmentResponse(a *model.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:               a.ID,
		PatientProfileID: a.PatientProfileID,
		DoctorProfileID:  a.DoctorProfileID,
		DateTime:         a.DateTime,
		Status:           a.Status,
		PatientName:      a.PatientName,
		DoctorName:       a.DoctorName,
		Specialization:   a.Specialization,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// every patient operation resolves the profile from the token's user id,
// never from a client-supplied id

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	p, err := h.store.PatientProfileByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		h.serverError(w, "patient: profile lookup", err)
		return
	}

	writeJSON(w, http.StatusOK, toPatientResponse(p))
}

type updateProfileRequest struct {
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medicalHistory"`
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	p := &model.PatientProfile{
		UserID:         claims.UserID,
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
	}
	if err := h.store.UpdatePatientProfile(r.Context(), p); err != nil {
		h.serverError(w, "patient: profile update", err)
		return
	}

	updated, err := h.store.PatientProfileByUserID(r.Context(), claims.UserID)
	if err != nil {
		// a token can outlive its account; the rows are simply gone
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		h.serverError(w, "patient: profile reload", err)
		return
	}
	writeJSON(w, http.StatusOK, toPatientResponse(updated))
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	if err := h.store.DeletePatientByUserID(r.Context(), claims.UserID); err != nil {
		h.serverError(w, "patient: delete account", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

// listDoctors is intentionally unfiltered: any authenticated patient may
// browse the full roster.
func (h *Handler) listDoctors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListDoctors(r.Context())
	if err != nil {
		h.serverError(w, "patient: list doctors", err)
		return
	}

	out := make([]doctorResponse, len(docs))
	for i := range docs {
		out[i] = toDoctorResponse(&docs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

type createAppointmentRequest struct {
	DoctorUserID string    `json:"doctorUserId" validate:"required"`
	DateTime     time.Time `json:"dateTime" validate:"required"`
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	var req createAppointmentRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	doctor, err := h.store.DoctorProfileByUserID(r.Context(), req.DoctorUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusBadRequest, "Doctor not found")
			return
		}
		h.serverError(w, "patient: doctor lookup", err)
		return
	}

	patient, err := h.store.PatientProfileByUserID(r.Context(), claims.UserID)
	if err != nil {
		h.serverError(w, "patient: profile lookup", err)
		return
	}

	// no overlap check: two patients may request the same slot
	apt := &model.Appointment{
		ID:               uuid.New().String(),
		PatientProfileID: patient.ID,
		DoctorProfileID:  doctor.ID,
		DateTime:         req.DateTime,
		Status:           model.StatusPending,
	}
	if err := h.store.CreateAppointment(r.Context(), apt); err != nil {
		h.serverError(w, "patient: create appointment", err)
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponse(apt))
}

func (h *Handler) patientListAppointments(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	apts, err := h.store.ListByPatient(r.Context(), claims.UserID)
	if err != nil {
		h.serverError(w, "patient: list appointments", err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toAppointmentResponse(&apts[i])
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) deleteMyAppointment(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteByPatient(r.Context(), id, claims.UserID)
	if err != nil {
		h.serverError(w, "patient: delete appointment", err)
		return
	}
	if !deleted {
		// same answer for "not yours" and "does not exist"
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
