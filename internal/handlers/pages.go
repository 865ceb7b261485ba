package handlers

import (
	"net/http"

	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// Index renders the home page.
func Index(c *gin.Context) {
	utils.Render(c, "index.html", nil)
}

// ProbeHandler answers whether the database is reachable.
type ProbeHandler struct {
	Probe Pinger
}

func NewProbeHandler(probe Pinger) *ProbeHandler {
	return &ProbeHandler{Probe: probe}
}

// Check always answers 200; the body says whether the probe query worked.
func (h *ProbeHandler) Check(c *gin.Context) {
	if err := h.Probe.Ping(c.Request.Context()); err != nil {
		logger.WithError(err).Warn("database probe failed")
		utils.Text(c, http.StatusOK, "Database Not Connected")
		return
	}
	utils.Text(c, http.StatusOK, "Database Connected")
}

// AuditHandler lists appointment audit entries.
type AuditHandler struct {
	Audit AuditStore
}

func NewAuditHandler(audit AuditStore) *AuditHandler {
	return &AuditHandler{Audit: audit}
}

func (h *AuditHandler) Details(c *gin.Context) {
	entries, err := h.Audit.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	utils.Render(c, "trigers.html", gin.H{"posts": entries})
}
