package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/config"
	"github.com/edulink/edulink-backend/internal/database"
	"github.com/edulink/edulink-backend/internal/handler"
	"github.com/edulink/edulink-backend/internal/logger"
	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/repository"
	"github.com/edulink/edulink-backend/internal/router"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
	"github.com/edulink/edulink-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting EduLink Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Blob Store ────────────────────────────────────────────────────
	blobs := media.NewDiskStore(cfg.UploadDir, "/uploads", cfg.MaxUploadBytes)

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	weekDayRepo := repository.NewWeekDayRepository(pool)
	timePeriodRepo := repository.NewTimePeriodRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	bankAccountRepo := repository.NewBankAccountRepository(pool)
	uploadRepo := repository.NewUploadRepository(pool)
	meetingRepo := repository.NewMeetingRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, adminRepo, rdb)
	weekDayService := service.NewWeekDayService(weekDayRepo, log)
	timePeriodService := service.NewTimePeriodService(timePeriodRepo, log)
	classroomService := service.NewClassroomService(classroomRepo, log)
	subjectService := service.NewSubjectService(subjectRepo, log)
	classService := service.NewClassService(classRepo, blobs, log)
	studentService := service.NewStudentService(studentRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, blobs, log)
	timetableService := service.NewTimetableService(
		timetableRepo, classRepo, weekDayRepo, timePeriodRepo,
		classroomRepo, subjectRepo, employeeRepo,
		rdb, cfg.TimetableCacheTTL, log,
	)
	bankAccountService := service.NewBankAccountService(bankAccountRepo, blobs, log)
	uploadService := service.NewUploadService(uploadRepo, blobs, log)
	meetingService := service.NewMeetingService(meetingRepo, log)
	reportService := service.NewReportService(reportRepo, log)
	certificateService := service.NewCertificateService(studentRepo, classRepo, cfg.SchoolName, cfg.CertFontPath, log)
	dashboardService := service.NewDashboardService(reportRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		WeekDay:     handler.NewWeekDayHandler(weekDayService),
		TimePeriod:  handler.NewTimePeriodHandler(timePeriodService),
		Classroom:   handler.NewClassroomHandler(classroomService),
		Subject:     handler.NewSubjectHandler(subjectService),
		Class:       handler.NewClassHandler(classService),
		Student:     handler.NewStudentHandler(studentService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Timetable:   handler.NewTimetableHandler(timetableService),
		BankAccount: handler.NewBankAccountHandler(bankAccountService),
		Upload:      handler.NewUploadHandler(uploadService),
		Meeting:     handler.NewMeetingHandler(meetingService),
		Report:      handler.NewReportHandler(reportService),
		Certificate: handler.NewCertificateHandler(certificateService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	janitor := worker.NewMediaJanitor(pool, blobs, cfg.JanitorInterval, log)
	go janitor.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
