package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hakimdiab/seamnote/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Interview *InterviewHandler
	Dashboard *DashboardHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/login", deps.Auth.Login)

	// Participant endpoints carry no auth: the session code is the only
	// credential a participant holds.
	api.POST("/interviews", deps.Interview.Start)
	api.POST("/interviews/:code/messages", deps.Interview.Message)
	api.POST("/interviews/:code/end", deps.Interview.End)
	api.GET("/interviews/:code", deps.Interview.Status)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.GET("/dashboard/sessions", deps.Dashboard.ListSessions)
	authGroup.GET("/dashboard/sessions/:id", deps.Dashboard.SessionDetail)
	authGroup.GET("/dashboard/sessions/:id/conversation", deps.Dashboard.Conversation)
	authGroup.GET("/dashboard/sessions/:id/summary", deps.Dashboard.Summary)
	authGroup.GET("/dashboard/sessions/:id/export", deps.Dashboard.Export)
	authGroup.GET("/dashboard/analytics", deps.Dashboard.Analytics)
	authGroup.GET("/dashboard/clusters", deps.Dashboard.Clusters)
	authGroup.POST("/dashboard/clusters/run", deps.Dashboard.Recluster)
}
