package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/handler"
	"wellspring/internal/llm"
	"wellspring/internal/middleware"
	"wellspring/internal/notify"
	"wellspring/internal/repository"
	"wellspring/internal/service"
	"wellspring/internal/wellness"
	"wellspring/internal/ws"
)

type Server struct {
	router   *gin.Engine
	db       *sqlx.DB
	cfg      *config.Config
	provider llm.Provider // nil when no provider configured
	hub      *ws.Hub
	alerter  *notify.CrisisAlerter
	logger   *zap.Logger
	log      *logrus.Logger
}

func NewServer(
	db *sqlx.DB,
	cfg *config.Config,
	provider llm.Provider,
	hub *ws.Hub,
	alerter *notify.CrisisAlerter,
	logger *zap.Logger,
	log *logrus.Logger,
) *Server {
	router := gin.Default()

	s := &Server{
		router:   router,
		db:       db,
		cfg:      cfg,
		provider: provider,
		hub:      hub,
		alerter:  alerter,
		logger:   logger,
		log:      log,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Repositories
	userRepo := repository.NewUserRepository(s.db, s.logger)
	karmaRepo := repository.NewKarmaRepository(s.db, s.logger)
	biometricRepo := repository.NewBiometricRepository(s.db, s.logger)
	postRepo := repository.NewPostRepository(s.db, s.logger)
	communityRepo := repository.NewCommunityRepository(s.db, s.logger)
	therapyRepo := repository.NewTherapyRepository(s.db, s.logger)
	activityRepo := repository.NewActivityRepository(s.db, s.logger)
	environmentalRepo := repository.NewEnvironmentalRepository(s.db, s.logger)
	crisisRepo := repository.NewCrisisRepository(s.db, s.logger)
	statsRepo := repository.NewStatsRepository(s.db, s.logger)

	// Wellness core
	calculator := wellness.NewRewardCalculator(s.cfg.Karma)
	classifier := wellness.NewClassifier(s.provider, s.cfg.Crisis, s.logger)
	analyzer := wellness.NewAnalyzer(s.provider, s.logger)
	therapist := wellness.NewTherapist(s.provider, s.logger)

	// Services
	authService := service.NewAuthService(userRepo, s.logger)
	karmaService := service.NewKarmaService(calculator, karmaRepo, s.logger)
	therapyService := service.NewTherapyService(therapyRepo, crisisRepo, classifier,
		therapist, s.alerter, s.cfg.Crisis.SafetyMessage, s.logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, s.log)
	biometricHandler := handler.NewBiometricHandler(biometricRepo, analyzer, karmaService, s.hub, s.logger)
	postHandler := handler.NewPostHandler(postRepo, karmaService, s.hub, s.logger)
	communityHandler := handler.NewCommunityHandler(communityRepo, karmaService, s.logger)
	therapyHandler := handler.NewTherapyHandler(therapyService, s.logger)
	activityHandler := handler.NewActivityHandler(activityRepo, calculator, karmaService, s.hub, s.logger)
	karmaHandler := handler.NewKarmaHandler(karmaService, s.logger)
	environmentalHandler := handler.NewEnvironmentalHandler(environmentalRepo, karmaService, s.logger)
	crisisHandler := handler.NewCrisisHandler(crisisRepo, karmaService, s.alerter,
		s.cfg.Crisis.SafetyMessage, s.logger)
	analyticsHandler := handler.NewAnalyticsHandler(statsRepo, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Websocket fan-out
	s.router.GET("/ws", func(c *gin.Context) {
		s.hub.ServeWS(c.Writer, c.Request)
	})

	// Authentication routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Public read-only routes
	public := s.router.Group("/api")
	{
		public.GET("/posts", postHandler.GetPosts)
		public.GET("/posts/featured", postHandler.GetFeaturedPosts)
		public.GET("/community/groups", communityHandler.GetGroups)
		public.GET("/analytics/global", analyticsHandler.GetGlobalStats)
	}

	// Authenticated routes
	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware(s.logger))
	{
		authRequired.POST("/auth/logout", authHandler.Logout)
		authRequired.GET("/auth/me", authHandler.Me)

		authRequired.POST("/biometrics", biometricHandler.CreateBiometric)
		authRequired.GET("/biometrics/latest", biometricHandler.GetLatest)
		authRequired.GET("/biometrics/history", biometricHandler.GetHistory)

		authRequired.POST("/posts", postHandler.CreatePost)
		authRequired.POST("/posts/:id/engage", postHandler.Engage)

		authRequired.POST("/community/groups/:id/join", communityHandler.JoinGroup)

		authRequired.POST("/therapy/sessions", therapyHandler.CreateSession)
		authRequired.GET("/therapy/sessions", therapyHandler.GetSessions)
		authRequired.GET("/therapy/sessions/:id/messages", therapyHandler.GetMessages)
		authRequired.POST("/therapy/messages", therapyHandler.PostMessage)

		authRequired.POST("/wellness/activities", activityHandler.CreateActivity)
		authRequired.GET("/wellness/activities", activityHandler.GetUserActivities)

		authRequired.GET("/karma/history", karmaHandler.GetHistory)

		authRequired.POST("/environmental/impact", environmentalHandler.AddImpact)
		authRequired.GET("/environmental/impact", environmentalHandler.GetUserImpact)

		authRequired.POST("/crisis/support", crisisHandler.RequestSupport)
		authRequired.GET("/crisis/incidents", crisisHandler.GetIncidents)
		authRequired.GET("/crisis/incidents/:id", crisisHandler.GetIncident)
		authRequired.PUT("/crisis/incidents/:id/status", crisisHandler.UpdateIncidentStatus)
	}
}

// Handler exposes the router for an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
