package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pointspace/pointspace-api/docs"
	v1 "github.com/pointspace/pointspace-api/internal/api/handler/v1"
	"github.com/pointspace/pointspace-api/internal/api/middleware"
	"github.com/pointspace/pointspace-api/internal/config"
	"github.com/pointspace/pointspace-api/internal/repository"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
	"github.com/pointspace/pointspace-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	spaceSvc := initSpaceService(db)

	authHandler := s.initAuthHandler(db)
	spaceHandler := v1.NewSpaceHandler(spaceSvc)
	groupHandler := initGroupHandler(db, spaceSvc)
	studentHandler := initStudentHandler(db, spaceSvc)
	accountHandler := initAccountHandler(db, spaceSvc)
	eventTypeHandler := initEventTypeHandler(db, spaceSvc)
	eventHandler := initEventHandler(db, spaceSvc)
	attendanceHandler := initAttendanceHandler(db, spaceSvc)
	activityHandler := initActivityHandler(db, spaceSvc)
	missingHandler := initMissingHandler(db, spaceSvc)

	s.MountHandlers(
		authHandler,
		spaceHandler,
		groupHandler,
		studentHandler,
		accountHandler,
		eventTypeHandler,
		eventHandler,
		attendanceHandler,
		activityHandler,
		missingHandler,
	)

	return s
}

func initSpaceService(db *gorm.DB) *service.SpaceService {
	spaceRepo := repository.NewSpaceRepository(dao.NewSpaceDAO(db))
	profileRepo := repository.NewProfileRepository(dao.NewProfileDAO(db))

	return service.NewSpaceService(spaceRepo, profileRepo)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewProfileRepository(dao.NewProfileDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func initGroupHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.GroupHandler {
	repo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	svc := service.NewGroupService(repo)

	return v1.NewGroupHandler(svc, spaceSvc)
}

func initStudentHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.StudentHandler {
	repo := repository.NewStudentRepository(dao.NewStudentDAO(db))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	svc := service.NewStudentService(repo, groupRepo)

	return v1.NewStudentHandler(svc, spaceSvc)
}

func initAccountHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.AccountHandler {
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(db))
	svc := service.NewLedgerService(ledgerRepo)

	studentRepo := repository.NewStudentRepository(dao.NewStudentDAO(db))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	studentSvc := service.NewStudentService(studentRepo, groupRepo)

	return v1.NewAccountHandler(svc, studentSvc, spaceSvc)
}

func initEventTypeHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.EventTypeHandler {
	repo := repository.NewEventTypeRepository(dao.NewEventTypeDAO(db))
	svc := service.NewEventTypeService(repo)

	return v1.NewEventTypeHandler(svc, spaceSvc)
}

func initEventHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	eventTypeRepo := repository.NewEventTypeRepository(dao.NewEventTypeDAO(db))
	svc := service.NewEventService(repo, eventTypeRepo)

	return v1.NewEventHandler(svc, spaceSvc)
}

func initAttendanceHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.AttendanceHandler {
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	eventTypeRepo := repository.NewEventTypeRepository(dao.NewEventTypeDAO(db))
	svc := service.NewAttendanceService(ledgerRepo, eventRepo, eventTypeRepo)

	studentRepo := repository.NewStudentRepository(dao.NewStudentDAO(db))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(db))
	studentSvc := service.NewStudentService(studentRepo, groupRepo)

	return v1.NewAttendanceHandler(svc, studentSvc, spaceSvc)
}

func initActivityHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.ActivityHandler {
	repo := repository.NewActivityRepository(dao.NewActivityDAO(db))
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(db))
	svc := service.NewActivityService(repo, ledgerRepo)

	return v1.NewActivityHandler(svc, spaceSvc)
}

func initMissingHandler(db *gorm.DB, spaceSvc *service.SpaceService) *v1.MissingHandler {
	repo := repository.NewMissingRepository(dao.NewMissingDAO(db))
	svc := service.NewMissingService(repo)

	return v1.NewMissingHandler(svc, spaceSvc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	spaceHandler *v1.SpaceHandler,
	groupHandler *v1.GroupHandler,
	studentHandler *v1.StudentHandler,
	accountHandler *v1.AccountHandler,
	eventTypeHandler *v1.EventTypeHandler,
	eventHandler *v1.EventHandler,
	attendanceHandler *v1.AttendanceHandler,
	activityHandler *v1.ActivityHandler,
	missingHandler *v1.MissingHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/profile", spaceHandler.HandleGetProfile)
		authenticated.GET("/spaces", spaceHandler.HandleGetSpaces)
		authenticated.POST("/spaces", spaceHandler.HandleCreateSpace)

		spaces := authenticated.Group("/spaces/:spaceID")
		{
			spaces.GET("/groups", groupHandler.HandleGetGroups)
			spaces.GET("/groups/points", groupHandler.HandleGetGroupPoints)
			spaces.POST("/groups", groupHandler.HandleCreateGroup)
			spaces.PUT("/groups/:groupID", groupHandler.HandleUpdateGroup)
			spaces.DELETE("/groups/:groupID", groupHandler.HandleDeleteGroup)

			spaces.GET("/students", studentHandler.HandleGetStudents)
			spaces.GET("/students/:studentID", studentHandler.HandleGetStudent)
			spaces.POST("/students", studentHandler.HandleCreateStudent)
			spaces.PUT("/students/:studentID", studentHandler.HandleUpdateStudent)
			spaces.DELETE("/students/:studentID", studentHandler.HandleDeleteStudent)

			spaces.GET("/students/:studentID/balance", accountHandler.HandleGetBalance)
			spaces.GET("/students/:studentID/transactions", accountHandler.HandleGetTransactions)
			spaces.POST("/transactions", accountHandler.HandleCreateTransaction)

			spaces.GET("/event-types", eventTypeHandler.HandleGetEventTypes)
			spaces.POST("/event-types", eventTypeHandler.HandleCreateEventType)
			spaces.PUT("/event-types/:eventTypeID", eventTypeHandler.HandleUpdateEventType)
			spaces.DELETE("/event-types/:eventTypeID", eventTypeHandler.HandleDeleteEventType)

			spaces.GET("/events", eventHandler.HandleGetEvents)
			spaces.POST("/events", eventHandler.HandleCreateEvent)
			spaces.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
			spaces.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

			spaces.GET("/attendance", attendanceHandler.HandleGetAttendance)
			spaces.POST("/attendance", attendanceHandler.HandleSaveAttendance)

			spaces.GET("/activities", activityHandler.HandleGetActivities)
			spaces.GET("/activities/points", activityHandler.HandleGetActivityPoints)
			spaces.POST("/activities", activityHandler.HandleCreateActivity)
			spaces.POST("/activities/points", activityHandler.HandleSetActivityPoints)
			spaces.PUT("/activities/:activityID", activityHandler.HandleUpdateActivity)
			spaces.DELETE("/activities/:activityID", activityHandler.HandleDeleteActivity)

			spaces.GET("/missings", missingHandler.HandleGetMissings)
			spaces.POST("/missings", missingHandler.HandleCreateMissing)
			spaces.PUT("/missings/:missingID", missingHandler.HandleUpdateMissing)
			spaces.DELETE("/missings/:missingID", missingHandler.HandleDeleteMissing)
		}
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Pointspace API"
	docs.SwaggerInfo.Description = "Space-scoped attendance and points tracking."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
