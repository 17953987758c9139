package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"venuehub/internal/delivery/http/controllers"
	"venuehub/internal/delivery/http/helpers"
	"venuehub/internal/delivery/http/middleware"
	"venuehub/internal/domain"
)

// Controllers bundles the controllers the router wires up.
type Controllers struct {
	Reservations *controllers.ReservationController
	Events       *controllers.EventController
	Proposals    *controllers.ProposalController
	Talents      *controllers.TalentController
	Spaces       *controllers.SpaceController
	Auth         *controllers.AuthController
}

// NewRouter initializes the HTTP router with all application routes.
// Reservation create and list are deliberately open: visitors book without
// an account. Decisions and management require a Bearer token; destructive
// deletes additionally require the super_admin role.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)
	admin := middleware.RequireSuperAdmin()

	// Reservations
	mux.HandleFunc("GET /reservations", c.Reservations.List)
	mux.HandleFunc("POST /reservations", c.Reservations.Create)
	mux.HandleFunc("PUT /reservations/{id}", auth(c.Reservations.Update))
	mux.HandleFunc("DELETE /reservations/{id}", auth(admin(c.Reservations.Delete)))
	mux.HandleFunc("PUT /reservations/{id}/decision", auth(c.Reservations.Decide))

	// Events
	mux.HandleFunc("GET /events", c.Events.List)
	mux.HandleFunc("GET /events/{id}", c.Events.GetByID)
	mux.HandleFunc("POST /events", auth(c.Events.Create))
	mux.HandleFunc("PUT /events/{id}", auth(c.Events.Update))
	mux.HandleFunc("DELETE /events/{id}", auth(admin(c.Events.Delete)))

	// Proposals
	mux.HandleFunc("POST /proposals", auth(c.Proposals.Create))
	mux.HandleFunc("GET /proposals", auth(c.Proposals.List))
	mux.HandleFunc("PUT /proposals/{id}/decision", auth(c.Proposals.Decide))

	// Talents
	mux.HandleFunc("GET /talents", c.Talents.List)
	mux.HandleFunc("GET /talents/{id}", c.Talents.GetByID)
	mux.HandleFunc("POST /talents", auth(c.Talents.Create))
	mux.HandleFunc("PUT /talents/{id}", auth(c.Talents.Update))
	mux.HandleFunc("DELETE /talents/{id}", auth(admin(c.Talents.Delete)))

	// Spaces
	mux.HandleFunc("GET /spaces", c.Spaces.List)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Liveness
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
