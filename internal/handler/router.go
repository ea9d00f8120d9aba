package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"medicare-api/internal/middleware"
	"medicare-api/internal/model"
)

// Router wires the REST surface. The rate limiter covers only the public
// auth routes, matching where anonymous traffic can land.
func (h *Handler) Router(rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	origins := strings.Split(h.cfg.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	r.Use(middleware.RequestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("MediCare API running"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/register-patient", h.registerPatient)
		r.Post("/login", h.login)
	})

	authed := middleware.Authenticate(h.cfg.JWTSecret)

	r.Route("/admin", func(r chi.Router) {
		r.Use(authed, middleware.RequireRole(model.RoleAdmin))
		r.Post("/doctors", h.createDoctor)
		r.Get("/doctors", h.adminListDoctors)
		r.Delete("/doctors/{id}", h.deleteDoctor) // {id} = userId
		r.Get("/patients", h.adminListPatients)
		r.Delete("/patients/{id}", h.deletePatient) // {id} = userId
		r.Get("/appointments", h.adminListAppointments)
		r.Delete("/appointments/{id}", h.adminDeleteAppointment)
	})

	r.Route("/patient", func(r chi.Router) {
		r.Use(authed, middleware.RequireRole(model.RolePatient))
		r.Get("/me", h.getMe)
		r.Put("/me", h.updateMe)
		r.Delete("/me", h.deleteMe)
		r.Get("/doctors", h.listDoctors)
		r.Post("/appointments", h.createAppointment)
		r.Get("/appointments", h.patientListAppointments)
		r.Delete("/appointments/{id}", h.deleteMyAppointment)
	})

	r.Route("/doctor", func(r chi.Router) {
		r.Use(authed, middleware.RequireRole(model.RoleDoctor))
		r.Get("/appointments", h.doctorListAppointments)
		r.Patch("/appointments/{id}", h.decideAppointment)
	})

	return r
}
