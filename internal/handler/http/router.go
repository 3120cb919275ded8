package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/config"
	"github.com/opsdesk/opsdesk-backend-go/internal/handler/http/middleware"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	taskHandler TaskHandler,
	archiveHandler TaskArchiveHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opsdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/users", userHandler.List)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clockin", attendanceHandler.ClockIn)
				r.Post("/break/start", attendanceHandler.StartBreak)
				r.Post("/break/end", attendanceHandler.EndBreak)
				r.Post("/clockout", attendanceHandler.ClockOut)
				r.Post("/reset-today", attendanceHandler.ResetToday)
				r.Get("/", attendanceHandler.List)
				r.Get("/summary", attendanceHandler.Summary)
				r.Get("/user/{userID}", attendanceHandler.ListByUser)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)

				r.Route("/archive", func(r chi.Router) {
					r.Post("/", archiveHandler.Archive)
					r.Get("/", archiveHandler.ListByDate)
					r.Get("/all", archiveHandler.ListAll)
				})

				r.Route("/{taskID}", func(r chi.Router) {
					r.Put("/status", taskHandler.UpdateStatus)
					r.Post("/notes", taskHandler.AddNote)
					r.Post("/approve", taskHandler.Approve)
					r.Delete("/", taskHandler.Delete)
				})
			})
		})
	})
	return r
}
