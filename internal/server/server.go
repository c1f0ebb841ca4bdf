package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"musicapi/internal/config"
	"musicapi/internal/handler"
	"musicapi/internal/middleware"
	"musicapi/internal/repository"
	"musicapi/internal/service"
	"musicapi/internal/token"
)

const tokenTTL = 24 * time.Hour

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
	log    *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()

	// Initialize server with DB and loggers
	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
		log:    logrus.New(),
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	codec := token.NewCodec([]byte(s.cfg.JWTKey), tokenTTL)

	userRepo := repository.NewUserRepository(s.logger)
	albumRepo := repository.NewAlbumRepository(s.logger)
	authService := service.NewAuthService(userRepo, codec, s.logger)
	catalogService := service.NewCatalogService(albumRepo, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.log)
	albumHandler := handler.NewAlbumHandler(catalogService, s.log)

	s.router.Use(cors.Default())

	// Ping route for health check, outside the connection scope
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Every route below runs on a connection checked out for the request
	s.router.Use(middleware.ConnScope(s.db, s.logger))

	// Authentication routes
	s.router.POST("/register", authHandler.Register)
	s.router.POST("/auth", authHandler.Authenticate)

	// Authenticated routes
	authRequired := s.router.Group("/")
	authRequired.Use(middleware.AuthMiddleware(codec, s.logger))
	{
		authRequired.GET("/albums", albumHandler.List)
		authRequired.GET("/artist/:artist", albumHandler.ByArtist)
		authRequired.GET("/genre/:genre", albumHandler.ByGenre)
		authRequired.GET("/album/:album", albumHandler.ByAlbum)
		authRequired.GET("/year/:year", albumHandler.ByYear)
		authRequired.POST("/", albumHandler.Create)
		authRequired.PUT("/:album/:artist", albumHandler.UpdateGenre)
		authRequired.DELETE("/:album/:artist", albumHandler.Delete)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
