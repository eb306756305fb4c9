package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hakimdiab/seamnote/internal/pkg/response"
	"github.com/hakimdiab/seamnote/internal/service"
)

// DashboardHandler serves the consultant endpoints behind JWT auth.
type DashboardHandler struct {
	dashboard *service.DashboardService
	clusters  *service.ClusterService
	summaries *service.SummaryService
	exports   *service.ExportService
}

func NewDashboardHandler(
	dashboard *service.DashboardService,
	clusters *service.ClusterService,
	summaries *service.SummaryService,
	exports *service.ExportService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		clusters:  clusters,
		summaries: summaries,
		exports:   exports,
	}
}

func (h *DashboardHandler) ListSessions(c *gin.Context) {
	sessions, err := h.dashboard.ListSessions(c.Request.Context(), c.Query("status"), c.Query("department"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"sessions": sessions})
}

func (h *DashboardHandler) SessionDetail(c *gin.Context) {
	detail, err := h.dashboard.SessionDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, detail)
}

func (h *DashboardHandler) Conversation(c *gin.Context) {
	messages, err := h.dashboard.Conversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"messages": messages})
}

func (h *DashboardHandler) Analytics(c *gin.Context) {
	analytics, err := h.dashboard.Analytics(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, analytics)
}

func (h *DashboardHandler) Clusters(c *gin.Context) {
	run, groups, err := h.clusters.LatestGroups(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"ran_at":        run.RanAt,
		"session_count": run.SessionCount,
		"groups":        groups,
	})
}

func (h *DashboardHandler) Recluster(c *gin.Context) {
	run, groups, err := h.clusters.ClusterAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{
		"ran_at":        run.RanAt,
		"session_count": run.SessionCount,
		"groups":        groups,
	})
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.summaries.GetOrGenerate(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"summary": summary})
}

func (h *DashboardHandler) Export(c *gin.Context) {
	result, err := h.exports.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", service.FormatJSON))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Data)
}
