// Package api exposes the mission operations over HTTP and streams the
// progress bus over WebSocket.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scribe-research/scribe/pkg/bus"
	"github.com/scribe-research/scribe/pkg/database"
	"github.com/scribe-research/scribe/pkg/mission"
	"github.com/scribe-research/scribe/pkg/services"
	"github.com/scribe-research/scribe/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	router     *gin.Engine
	dbClient   *database.Client
	controller *mission.Controller
	missions   *services.MissionService
	notes      *services.NoteService
	logs       *services.LogService
	events     *services.EventService
	bus        *bus.Bus
}

// NewServer wires the routes.
func NewServer(
	dbClient *database.Client,
	controller *mission.Controller,
	missions *services.MissionService,
	notes *services.NoteService,
	logs *services.LogService,
	events *services.EventService,
	b *bus.Bus,
) *Server {
	s := &Server{
		router:     gin.New(),
		dbClient:   dbClient,
		controller: controller,
		missions:   missions,
		notes:      notes,
		logs:       logs,
		events:     events,
		bus:        b,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws", s.handleWebSocket)

	missions := s.router.Group("/api/missions")
	{
		missions.POST("", s.handleCreateMission)
		missions.GET("", s.handleListMissions)
		missions.POST("/:id/start", s.handleStartMission)
		missions.POST("/:id/stop", s.handleStopMission)
		missions.POST("/:id/resume", s.handleResumeMission)
		missions.POST("/:id/resume-from-round", s.handleResumeFromRound)
		missions.POST("/:id/revise-outline", s.handleReviseOutline)
		missions.GET("/:id/status", s.handleMissionStatus)
		missions.GET("/:id/stats", s.handleMissionStats)
		missions.GET("/:id/plan", s.handleMissionPlan)
		missions.GET("/:id/notes", s.handleMissionNotes)
		missions.GET("/:id/logs", s.handleMissionLogs)
		missions.GET("/:id/report", s.handleMissionReport)
		missions.GET("/:id/context", s.handleMissionContext)
		missions.GET("/:id/settings", s.handleMissionSettings)
		missions.PUT("/:id/report", s.handleUpdateReport)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Version,
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Version,
		"database": dbHealth,
	})
}
