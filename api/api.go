package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/conferential/conferential/api/auth"
	"github.com/conferential/conferential/api/handler"
	"github.com/conferential/conferential/config"
	"github.com/conferential/conferential/database"
)

type Server struct {
	cfg           *config.Config
	ginEngine     *gin.Engine
	db            *database.Client
	authenticator *auth.Authenticator
}

func New(cfg *config.Config, db *database.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		cfg:           cfg,
		ginEngine:     gin.Default(),
		db:            db,
		authenticator: auth.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Minute),
	}, nil
}

func (s *Server) setupCORS() {
	s.ginEngine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// setupRoutes declares the whole policy surface at the routing layer: every
// route names its authentication and role requirements here instead of
// checking flags inside the handler bodies.
func (s *Server) setupRoutes() {
	s.setupCORS()

	h := handler.New(s.db, s.authenticator)

	s.ginEngine.GET("/healthz", h.Healthz)
	s.ginEngine.POST("/users/register", h.Register)
	s.ginEngine.POST("/users/login", h.Login)
	s.ginEngine.GET("/conferences", h.ListConferences)
	s.ginEngine.GET("/conferences/:id", s.authenticator.OptionalAuth(), h.GetConference)

	authed := s.ginEngine.Group("", s.authenticator.RequireAuth())
	authed.GET("/users/current", h.CurrentUser)
	authed.GET("/isAuth", h.IsAuth)
	authed.PUT("/conferences/:id/user", h.JoinConference)
	authed.DELETE("/conferences/:id/user", h.LeaveConference)

	sponsor := authed.Group("", auth.RequireAdminOrSponsor())
	sponsor.PUT("/conferences/:id", h.UpdateConference)

	admin := authed.Group("", auth.RequireAdmin())
	admin.GET("/users", h.ListUsers)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.POST("/conferences", h.CreateConference)
	admin.DELETE("/conferences/:id", h.DeleteConference)
}

func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
