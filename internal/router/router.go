package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/config"
	"github.com/edulink/edulink-backend/internal/handler"
	"github.com/edulink/edulink-backend/internal/middleware"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	WeekDay     *handler.WeekDayHandler
	TimePeriod  *handler.TimePeriodHandler
	Classroom   *handler.ClassroomHandler
	Subject     *handler.SubjectHandler
	Class       *handler.ClassHandler
	Student     *handler.StudentHandler
	Employee    *handler.EmployeeHandler
	Timetable   *handler.TimetableHandler
	BankAccount *handler.BankAccountHandler
	Upload      *handler.UploadHandler
	Meeting     *handler.MeetingHandler
	Report      *handler.ReportHandler
	Certificate *handler.CertificateHandler
	Dashboard   *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded media files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "OK", gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.GET("/me", middleware.RequireAuth(authService), handlers.Auth.Me)
		auth.POST("/logout", middleware.RequireAuth(authService), handlers.Auth.Logout)
	}

	// ─── 2. API Group (JWT + Session) ──────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(authService))
	{
		// Week day registry
		api.GET("/weekdays", handlers.WeekDay.List)
		api.GET("/weekdays/stats", handlers.WeekDay.Stats)
		api.POST("/weekdays", handlers.WeekDay.Create)
		api.PUT("/weekdays/:id", handlers.WeekDay.Update)
		api.DELETE("/weekdays/:id", handlers.WeekDay.Delete)
		api.PATCH("/weekdays/:id/toggle", handlers.WeekDay.ToggleActive)

		// Time period registry
		api.GET("/periods", handlers.TimePeriod.List)
		api.GET("/periods/stats", handlers.TimePeriod.Stats)
		api.POST("/periods", handlers.TimePeriod.Create)
		api.PUT("/periods/:id", handlers.TimePeriod.Update)
		api.DELETE("/periods/:id", handlers.TimePeriod.Delete)

		// Classroom registry
		api.GET("/classrooms", handlers.Classroom.List)
		api.GET("/classrooms/stats", handlers.Classroom.Stats)
		api.GET("/classrooms/:id", handlers.Classroom.Get)
		api.POST("/classrooms", handlers.Classroom.Create)
		api.PUT("/classrooms/:id", handlers.Classroom.Update)
		api.DELETE("/classrooms/:id", handlers.Classroom.Delete)
		api.PATCH("/classrooms/:id/toggle", handlers.Classroom.ToggleAvailable)

		// Subject registry
		api.GET("/subjects", handlers.Subject.List)
		api.POST("/subjects", handlers.Subject.Create)
		api.PUT("/subjects/:id", handlers.Subject.Update)
		api.DELETE("/subjects/:id", handlers.Subject.Delete)

		// Classes & study materials
		api.GET("/classes", handlers.Class.List)
		api.GET("/classes/:id", handlers.Class.Get)
		api.POST("/classes", handlers.Class.Create)
		api.PUT("/classes/:id", handlers.Class.Update)
		api.DELETE("/classes/:id", handlers.Class.Delete)
		api.POST("/classes/:id/materials", handlers.Class.AddMaterial)
		api.DELETE("/classes/:id/materials/:materialId", handlers.Class.DeleteMaterial)

		// Students
		api.GET("/students", handlers.Student.List)
		api.GET("/students/:id", handlers.Student.Get)
		api.POST("/students", handlers.Student.Create)
		api.PUT("/students/:id", handlers.Student.Update)
		api.DELETE("/students/:id", handlers.Student.Delete)

		// Employees
		api.GET("/employees", handlers.Employee.List)
		api.GET("/employees/:id", handlers.Employee.Get)
		api.POST("/employees", handlers.Employee.Create)
		api.PUT("/employees/:id", handlers.Employee.Update)
		api.POST("/employees/:id/photo", handlers.Employee.UploadPhoto)
		api.DELETE("/employees/:id", handlers.Employee.Delete)

		// Timetables
		api.POST("/timetables/compose", handlers.Timetable.Compose)
		api.GET("/timetables", handlers.Timetable.List)
		api.GET("/timetables/resources/available", handlers.Timetable.AvailableResources)
		api.GET("/timetables/class/:classId", handlers.Timetable.GetByClass)
		api.GET("/timetables/teacher/:teacherId", handlers.Timetable.GetByTeacher)
		api.GET("/timetables/:id", handlers.Timetable.Get)
		api.DELETE("/timetables/:id", handlers.Timetable.Delete)
		api.PATCH("/timetables/:id/toggle", handlers.Timetable.ToggleActive)

		// Generic uploads
		api.GET("/uploads", handlers.Upload.List)
		api.POST("/uploads", handlers.Upload.Upload)
		api.DELETE("/uploads/:id", handlers.Upload.Delete)

		// Meetings
		api.GET("/meetings", handlers.Meeting.List)
		api.GET("/meetings/:id", handlers.Meeting.Get)
		api.POST("/meetings", handlers.Meeting.Create)
		api.PUT("/meetings/:id", handlers.Meeting.Update)
		api.DELETE("/meetings/:id", handlers.Meeting.Delete)

		// Reports & certificates
		api.GET("/reports/students", handlers.Report.Students)
		api.GET("/reports/employees", handlers.Report.Employees)
		api.GET("/certificates/students/:id", handlers.Certificate.Student)

		// Dashboard
		api.GET("/dashboard", handlers.Dashboard.Stats)
	}

	// ─── 3. Settings Group (Admin Role Only) ───────────────────────────
	settings := router.Group("/api/v1/settings")
	settings.Use(middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		settings.GET("/bank-accounts", handlers.BankAccount.List)
		settings.POST("/bank-accounts", handlers.BankAccount.Create)
		settings.PUT("/bank-accounts/:id", handlers.BankAccount.Update)
		settings.POST("/bank-accounts/:id/logo", handlers.BankAccount.UploadLogo)
		settings.DELETE("/bank-accounts/:id", handlers.BankAccount.Delete)
	}

	return router
}
