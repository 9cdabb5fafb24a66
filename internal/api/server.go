package api

import (
	"context"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/campus-events/docs"
	v1 "github.com/yizeng/campus-events/internal/api/handler/v1"
	"github.com/yizeng/campus-events/internal/api/middleware"
	"github.com/yizeng/campus-events/internal/config"
	"github.com/yizeng/campus-events/internal/repository"
	"github.com/yizeng/campus-events/internal/repository/dao"
	"github.com/yizeng/campus-events/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	college      *v1.CollegeHandler
	event        *v1.EventHandler
	student      *v1.StudentHandler
	registration *v1.RegistrationHandler
	attendance   *v1.AttendanceHandler
	report       *v1.ReportHandler
	health       *v1.HealthHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	timeout := s.Config.Postgres.AcquireTimeout

	collegeRepo := repository.NewCollegeRepository(dao.NewCollegeDAO(db, timeout))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db, timeout))
	studentRepo := repository.NewStudentRepository(dao.NewStudentDAO(db, timeout))
	registrationRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(db, timeout))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db, timeout))
	reportRepo := repository.NewReportRepository(dao.NewReportDAO(db, timeout))

	return handlers{
		college:      v1.NewCollegeHandler(service.NewCollegeService(collegeRepo, eventRepo)),
		event:        v1.NewEventHandler(service.NewEventService(eventRepo)),
		student:      v1.NewStudentHandler(service.NewStudentService(studentRepo)),
		registration: v1.NewRegistrationHandler(service.NewRegistrationService(registrationRepo)),
		attendance:   v1.NewAttendanceHandler(service.NewAttendanceService(attendanceRepo)),
		report:       v1.NewReportHandler(service.NewReportService(reportRepo)),
		health:       v1.NewHealthHandler(gormPinger{db: db}),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Timeout(s.Config.API.RequestTimeout))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)

	colleges := api.Group("/colleges")
	{
		colleges.POST("", h.college.HandleCreateCollege)
		colleges.GET("", h.college.HandleListColleges)
		colleges.GET("/:collegeID", h.college.HandleGetCollege)
		colleges.GET("/:collegeID/events", h.college.HandleListCollegeEvents)
	}

	events := api.Group("/events")
	{
		events.POST("", h.event.HandleCreateEvent)
		events.GET("", h.event.HandleListEvents)
		events.GET("/:eventID", h.event.HandleGetEvent)
		events.PUT("/:eventID", h.event.HandleUpdateEvent)
		events.DELETE("/:eventID", h.event.HandleCancelEvent)
		events.GET("/:eventID/stats", h.event.HandleGetEventStats)
	}

	students := api.Group("/students")
	{
		students.POST("", h.student.HandleCreateStudent)
		students.GET("", h.student.HandleListStudents)
		students.GET("/search", h.student.HandleSearchStudents)
		students.POST("/login", h.student.HandleStudentLogin)
		students.DELETE("/:studentID", h.student.HandleDeactivateStudent)
		students.GET("/:studentID/registrations", h.student.HandleListStudentRegistrations)
		students.GET("/:studentID/available-events", h.student.HandleListAvailableEvents)
		students.GET("/:studentID/pending-feedback", h.student.HandleListPendingFeedback)
	}

	registrations := api.Group("/registrations")
	{
		registrations.POST("", h.registration.HandleRegister)
		registrations.GET("/search", h.registration.HandleSearchRegistrations)
		registrations.DELETE("/:registrationID", h.registration.HandleCancelRegistration)
	}
	api.POST("/register", h.registration.HandleRegister)

	api.POST("/attendance", h.attendance.HandleMarkAttendance)
	api.POST("/feedback", h.attendance.HandleSubmitFeedback)

	reports := api.Group("/reports")
	{
		reports.GET("/event-popularity", h.report.HandleEventPopularity)
		reports.GET("/student-participation", h.report.HandleStudentParticipation)
		reports.GET("/college-performance", h.report.HandleCollegePerformance)
		reports.GET("/system-overview", h.report.HandleSystemOverview)
		reports.GET("/event-type-analytics", h.report.HandleEventTypeAnalytics)
		reports.GET("/top-active-students", h.report.HandleTopActiveStudents)
		reports.GET("/filter", h.report.HandleFilteredReport)
	}

	api.GET("/health", h.health.HandleHealth)
	s.Router.GET("/", h.health.HandleHealth)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Events API"
	docs.SwaggerInfo.Description = "Colleges, events, registrations, attendance, feedback and reports."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("p.db.DB -> %w", err)
	}

	return sqlDB.PingContext(ctx)
}
