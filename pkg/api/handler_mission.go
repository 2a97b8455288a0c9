package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scribe-research/scribe/pkg/models"
	"github.com/scribe-research/scribe/pkg/services"
)

// userContext builds the caller's user context. Identity comes from the
// auth proxy header; settings ride in the request body where applicable.
func userContext(c *gin.Context, settings *models.UserSettings) *models.UserContext {
	userID := c.GetHeader("X-User-Id")
	if userID == "" {
		userID = "default"
	}
	return &models.UserContext{UserID: userID, Settings: settings}
}

type createMissionBody struct {
	UserRequest     string                         `json:"user_request"`
	ChatID          string                         `json:"chat_id,omitempty"`
	UseWeb          bool                           `json:"use_web"`
	DocumentGroupID string                         `json:"document_group_id,omitempty"`
	MissionSettings *models.ResearchParamOverrides `json:"mission_settings,omitempty"`
	UserSettings    *models.UserSettings           `json:"user_settings,omitempty"`
}

func (s *Server) handleCreateMission(c *gin.Context) {
	var body createMissionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	uc := userContext(c, body.UserSettings)
	missionID, err := s.controller.CreateMission(c.Request.Context(), uc, models.CreateMissionRequest{
		UserRequest:     body.UserRequest,
		ChatID:          body.ChatID,
		UseWeb:          body.UseWeb,
		DocumentGroupID: body.DocumentGroupID,
		MissionSettings: body.MissionSettings,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mission_id": missionID, "status": models.StatusPending})
}

func (s *Server) handleListMissions(c *gin.Context) {
	filters := models.MissionFilters{
		Status: c.Query("status"),
		UserID: c.GetHeader("X-User-Id"),
		ChatID: c.Query("chat_id"),
		Limit:  intQuery(c, "limit", 20),
		Offset: intQuery(c, "offset", 0),
	}
	missions, total, err := s.missions.ListMissions(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"missions":    missions,
		"total_count": total,
		"limit":       filters.Limit,
		"offset":      filters.Offset,
	})
}

type startMissionBody struct {
	UserSettings *models.UserSettings `json:"user_settings,omitempty"`
}

func (s *Server) handleStartMission(c *gin.Context) {
	var body startMissionBody
	_ = c.ShouldBindJSON(&body) // empty body is fine

	uc := userContext(c, body.UserSettings)
	if err := s.controller.Start(c.Request.Context(), uc, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission execution started"})
}

func (s *Server) handleStopMission(c *gin.Context) {
	if err := s.controller.Stop(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission execution stopped"})
}

func (s *Server) handleResumeMission(c *gin.Context) {
	if err := s.controller.Resume(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission execution resumed"})
}

type resumeFromRoundBody struct {
	RoundNum int `json:"round_num"`
}

func (s *Server) handleResumeFromRound(c *gin.Context) {
	var body resumeFromRoundBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.controller.ResumeFromRound(c.Request.Context(), c.Param("id"), body.RoundNum); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mission execution resumed", "round_num": body.RoundNum})
}

type reviseOutlineBody struct {
	RoundNum        int                  `json:"round_num"`
	Feedback        string               `json:"feedback,omitempty"`
	OutlineOverride *models.Plan         `json:"outline_override,omitempty"`
	UserSettings    *models.UserSettings `json:"user_settings,omitempty"`
}

func (s *Server) handleReviseOutline(c *gin.Context) {
	var body reviseOutlineBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	uc := userContext(c, body.UserSettings)
	err := s.controller.ReviseOutlineAndResume(c.Request.Context(), uc, c.Param("id"), body.RoundNum, body.Feedback, body.OutlineOverride)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Outline revised, mission execution resumed"})
}

func (s *Server) handleMissionStatus(c *gin.Context) {
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp := gin.H{
		"mission_id": m.ID,
		"status":     m.Status,
		"created_at": m.CreatedAt,
		"updated_at": m.UpdatedAt,
	}
	if m.ErrorInfo != nil {
		resp["error_info"] = *m.ErrorInfo
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleMissionStats(c *gin.Context) {
	stats, err := s.missions.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleMissionPlan(c *gin.Context) {
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	plan, err := services.PlanOf(m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (s *Server) handleMissionNotes(c *gin.Context) {
	notes, total, err := s.notes.ListNotes(c.Request.Context(), c.Param("id"),
		intQuery(c, "limit", 100), intQuery(c, "offset", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes, "total_count": total})
}

func (s *Server) handleMissionLogs(c *gin.Context) {
	entries, total, err := s.logs.ListLogEntries(c.Request.Context(), c.Param("id"),
		intQuery(c, "limit", 200), intQuery(c, "offset", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries, "total_count": total})
}

func (s *Server) handleMissionReport(c *gin.Context) {
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	var report string
	if m.FinalReport != nil {
		report = *m.FinalReport
	}
	c.JSON(http.StatusOK, gin.H{"mission_id": m.ID, "report": report})
}

func (s *Server) handleMissionContext(c *gin.Context) {
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	pads, err := services.PadsOf(m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	metadata, err := services.MetadataOf(m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pads":            pads,
		"metadata":        metadata,
		"section_content": m.SectionContent,
	})
}

func (s *Server) handleMissionSettings(c *gin.Context) {
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	metadata, err := services.MetadataOf(m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"research_params":   metadata.ResearchParams,
		"settings_snapshot": metadata.SettingsSnapshot,
		"tool_selection":    metadata.ToolSelection,
	})
}

type updateReportBody struct {
	Markdown string `json:"markdown"`
}

func (s *Server) handleUpdateReport(c *gin.Context) {
	var body updateReportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.controller.UpdateReport(c.Request.Context(), c.Param("id"), body.Markdown); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": body.Markdown})
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
