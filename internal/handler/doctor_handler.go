package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"medicare-api/internal/middleware"
	"medicare-api/internal/model"
	"medicare-api/internal/store"
)

func (h *Handler) doctorListAppointments(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())

	status := model.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	apts, err := h.store.ListByDoctor(r.Context(), claims.UserID, status)
	if err != nil {
		h.serverError(w, "doctor: list appointments", err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toAppointmentResponse(&apts[i])
	}
	writeJSON(w, http.StatusOK, out)
}

type decideRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
}

func (h *Handler) decideAppointment(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req decideRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	status := model.StatusAccepted
	if req.Action == "reject" {
		status = model.StatusRejected
	}

	apt, err := h.store.Decide(r.Context(), id, claims.UserID, status)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			writeError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, store.ErrAlreadyDecided):
			writeError(w, http.StatusConflict, "Already decided")
		default:
			h.serverError(w, "doctor: decide", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponse(apt))
}
