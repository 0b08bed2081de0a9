package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemInfo identifies the running build
type SystemInfo struct {
	Name    string
	Version string
	Env     string
}

// SystemHandler serves liveness and build information
type SystemHandler struct {
	BaseHandler
	info      SystemInfo
	startTime time.Time
	now       func() time.Time
}

func NewSystemHandler(info SystemInfo) *SystemHandler {
	return &SystemHandler{
		info:      info,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name      string `json:"name" example:"CROWN Classic Motors API"`
	Version   string `json:"version" example:"1.0.0"`
	Env       string `json:"env" example:"development"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns the service name, version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.info.Name,
		Version:   h.info.Version,
		Env:       h.info.Env,
		GoVersion: runtime.Version(),
		Uptime:    h.now().Sub(h.startTime).Round(time.Second).String(),
	})
}

// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Health is the unauthenticated liveness probe served at /health
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "healthy",
		"service": h.info.Name,
		"version": h.info.Version,
	})
}
