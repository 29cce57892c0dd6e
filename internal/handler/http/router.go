package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/handler/http/middleware"
	"github.com/rudratic/hr-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	calendarHandler CalendarHandler,
	notificationHandler NotificationHandler,
	announcementHandler AnnouncementHandler,
	kudosHandler KudosHandler,
	payrollHandler PayrollHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// SSE stream authenticates via a short-lived query token, not the
		// Authorization header.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", userHandler.GetProfile)
				r.Put("/", userHandler.UpdateProfile)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/active", attendanceHandler.Active)
				r.Get("/history", attendanceHandler.History)
				r.Get("/summary", attendanceHandler.Summary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanEditAttendance }))
					r.Post("/{id}/reset", attendanceHandler.Reset)
					r.Get("/active-users", attendanceHandler.ActiveUsers)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanExportReports }))
					r.Get("/report", attendanceHandler.Report)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.MyRequests)
				r.Get("/balance", leaveHandler.MyBalance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", leaveHandler.ListRequests)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanConfigureSystem }))
					r.Post("/sync", holidayHandler.Sync)
				})
			})

			r.Get("/calendar/events", calendarHandler.Events)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
				r.Post("/{id}/read", notificationHandler.MarkAsRead)
				r.Post("/read-all", notificationHandler.MarkAllAsRead)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", announcementHandler.Create)
				})
			})

			r.Route("/kudos", func(r chi.Router) {
				r.Post("/", kudosHandler.Create)
				r.Get("/", kudosHandler.List)
				r.Get("/received", kudosHandler.Received)
			})

			r.Get("/payroll/payslips", payrollHandler.MyPayslips)

			// Admin console
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/overview", adminHandler.Overview)
				r.Get("/stats", adminHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanViewAuditLogs }))
					r.Get("/audit-logs", adminHandler.AuditLogs)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanManageUsers }))
					r.Get("/users", userHandler.ListUsers)
					r.Get("/users/pending", userHandler.ListPendingUsers)
					r.Post("/users/{id}/approve", userHandler.ApproveUser)
					r.Post("/users/{id}/reject", userHandler.RejectUser)
					r.Get("/roles", userHandler.ListRoles)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanManageAdmins }))
					r.Put("/users/{id}/role", userHandler.ChangeUserRole)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(func(p user.Permissions) bool { return p.CanConfigureSystem }))
					r.Get("/config", adminHandler.ListConfigs)
					r.Get("/config/{key}", adminHandler.GetConfig)
					r.Put("/config/{key}", adminHandler.SetConfig)
					r.Post("/config/bulk", adminHandler.BulkSetConfig)
				})
			})
		})
	})

	return r
}
