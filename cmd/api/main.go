package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rudratic/hr-backend-go/internal/config"
	"github.com/rudratic/hr-backend-go/internal/fixtures"
	appHTTP "github.com/rudratic/hr-backend-go/internal/handler/http"
	"github.com/rudratic/hr-backend-go/internal/pkg/cache"
	"github.com/rudratic/hr-backend-go/internal/pkg/cron"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
	"github.com/rudratic/hr-backend-go/internal/pkg/email"
	"github.com/rudratic/hr-backend-go/internal/pkg/jwt"
	"github.com/rudratic/hr-backend-go/internal/pkg/oauth"
	"github.com/rudratic/hr-backend-go/internal/pkg/sse"
	"github.com/rudratic/hr-backend-go/internal/repository/postgresql"
	adminService "github.com/rudratic/hr-backend-go/internal/service/admin"
	announcementService "github.com/rudratic/hr-backend-go/internal/service/announcement"
	attendanceService "github.com/rudratic/hr-backend-go/internal/service/attendance"
	authService "github.com/rudratic/hr-backend-go/internal/service/auth"
	calendarService "github.com/rudratic/hr-backend-go/internal/service/calendar"
	holidayService "github.com/rudratic/hr-backend-go/internal/service/holiday"
	kudosService "github.com/rudratic/hr-backend-go/internal/service/kudos"
	leaveService "github.com/rudratic/hr-backend-go/internal/service/leave"
	notificationService "github.com/rudratic/hr-backend-go/internal/service/notification"
	payrollService "github.com/rudratic/hr-backend-go/internal/service/payroll"
	userService "github.com/rudratic/hr-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	kudosRepo := postgresql.NewKudosRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	systemConfigRepo := postgresql.NewSystemConfigRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	// Shared infrastructure
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	holidayCache := cache.New()
	hub := sse.NewHub()
	emailSvc, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	// Services
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	authSvc := authService.NewAuthService(db, userRepo, roleRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(userRepo, roleRepo, auditLogRepo, notificationSvc)
	attendanceSvc := attendanceService.NewAttendanceService(timeEntryRepo, auditLogRepo, loc)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo, notificationSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, holidayCache)
	calendarSvc := calendarService.NewCalendarService(leaveRequestRepo, holidayRepo, announcementRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, userRepo, notificationSvc)
	kudosSvc := kudosService.NewKudosService(kudosRepo, userRepo, notificationSvc)
	payrollSvc := payrollService.NewPayrollService()
	adminSvc := adminService.NewAdminService(auditLogRepo, systemConfigRepo, statsRepo, timeEntryRepo)

	// Seed the canonical role set so role lookups never miss
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	for _, role := range fixtures.DefaultRoles() {
		if _, err := roleRepo.Upsert(seedCtx, role); err != nil {
			log.Fatal("Failed to seed roles: ", err)
		}
	}
	cancelSeed()

	// Background jobs
	scheduler := cron.NewScheduler()
	jobs := cron.NewJobs(timeEntryRepo, userRepo, statsRepo, holidaySvc, notificationSvc, emailSvc, loc)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()

	// Handlers
	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	kudosHandler := appHTTP.NewKudosHandler(kudosSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	adminHandler := appHTTP.NewAdminHandler(adminSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{FrontendURL: cfg.App.FrontendURL, Env: cfg.App.Env},
		jwtSvc,
		authHandler,
		userHandler,
		attendanceHandler,
		leaveHandler,
		holidayHandler,
		calendarHandler,
		notificationHandler,
		announcementHandler,
		kudosHandler,
		payrollHandler,
		adminHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error: ", err)
	}

	scheduler.Stop()
	notificationSvc.Stop()
}
