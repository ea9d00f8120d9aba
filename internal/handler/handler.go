package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"medicare-api/internal/config"
	"medicare-api/internal/store"
)

var validate = validator.New()

type Handler struct {
	cfg   config.Config
	store *store.Store
	log   *zap.Logger
}

func New(cfg config.Config, st *store.Store, log *zap.Logger) *Handler {
	return &Handler{cfg: cfg, store: st, log: log}
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// decodeValid decodes the body and runs struct validation in one step.
func decodeValid(r *http.Request, out any) error {
	if err := decodeJSON(r, out); err != nil {
		return err
	}
	return validate.Struct(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// all errors surface as a status plus a human-readable message
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (h *Handler) serverError(w http.ResponseWriter, context string, err error) {
	h.log.Error(context, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Server error")
}
