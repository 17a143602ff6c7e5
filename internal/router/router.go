package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mvdutta/honey-rae-server/internal/config"
	"github.com/mvdutta/honey-rae-server/internal/handlers"
	"github.com/mvdutta/honey-rae-server/internal/middleware"
	"github.com/mvdutta/honey-rae-server/internal/repository/postgres"
	"github.com/mvdutta/honey-rae-server/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos + handlers
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)

	authSvc := service.NewAuthService(userRepo, customerRepo, cfg.SessionSecret)
	ah := handlers.NewAuthHTTP(authSvc)
	th := handlers.NewTicketHTTP(ticketRepo, customerRepo, employeeRepo)
	ch := handlers.NewCustomerHTTP(customerRepo)
	eh := handlers.NewEmployeeHTTP(employeeRepo, userRepo)
	rh := handlers.NewReportsHTTP(ticketRepo)

	r.Post("/register", ah.Register())
	r.Post("/login", ah.Login())

	r.Route("/serviceTickets", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", th.List())
		r.Post("/", th.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", th.Get())
			r.With(middleware.RequireStaff).Put("/", th.Update())
			r.Delete("/", th.Delete())
		})
	})

	r.Route("/customers", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.With(middleware.RequireStaff).Get("/", ch.List())
		r.Get("/{id}", ch.Get())
	})

	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", eh.List())
		r.Get("/{id}", eh.Get())
		r.With(middleware.RequireStaff).Post("/", eh.Create())
	})

	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth, middleware.RequireStaff)
		r.Get("/summary", rh.Summary())
	})

	return r
}
