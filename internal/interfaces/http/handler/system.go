package handler

import (
	"runtime"
	"time"

	partnerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	contactService *partnerapp.ContactService
	appName        string
	version        string
	startTime      time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(contactService *partnerapp.ContactService, appName, version string) *SystemHandler {
	return &SystemHandler{
		contactService: contactService,
		appName:        appName,
		version:        version,
		startTime:      time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo godoc
// @ID           getSystemInfo
// @Summary      Get system information
// @Description  Retrieve basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.appName,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ping godoc
// @ID           ping
// @Summary      Ping the service
// @Description  Simple liveness check
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[map[string]interface{}]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{
		"message":   "pong",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetStats godoc
// @ID           getStats
// @Summary      Get contact store statistics
// @Description  Summarize the contact store for the console header
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[partnerapp.StatsResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /system/stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	stats, err := h.contactService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	system.GET("/info", h.GetSystemInfo)
	system.GET("/ping", h.Ping)
	system.GET("/stats", h.GetStats)
}
