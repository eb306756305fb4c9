package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hakimdiab/seamnote/internal/model"
	"github.com/hakimdiab/seamnote/internal/pkg/errcode"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/pkg/response"
	"github.com/hakimdiab/seamnote/internal/seam"
	"github.com/hakimdiab/seamnote/internal/service"
)

// InterviewHandler serves the participant-facing endpoints. Participants
// address their session by code, never by internal id.
type InterviewHandler struct {
	interviews *service.InterviewService
}

func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type startRequest struct {
	Department   string `json:"department"`
	RoleLevel    string `json:"role_level"`
	LanguagePref string `json:"language_pref"`
}

type startResponse struct {
	ParticipantCode string `json:"participant_code"`
	Greeting        string `json:"greeting"`
	CategoryIndex   int    `json:"category_index"`
	CategoryCount   int    `json:"category_count"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	result, err := h.interviews.Start(c.Request.Context(), service.StartRequest{
		Department:   req.Department,
		RoleLevel:    req.RoleLevel,
		LanguagePref: req.LanguagePref,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, startResponse{
		ParticipantCode: result.Session.ParticipantCode,
		Greeting:        result.Greeting,
		CategoryIndex:   result.Session.CategoryIndex,
		CategoryCount:   seam.CategoryCount,
	})
}

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Reply         string `json:"reply"`
	Language      string `json:"language"`
	CategoryIndex int    `json:"category_index"`
	CategoryCount int    `json:"category_count"`
	Completed     bool   `json:"completed"`
}

func (h *InterviewHandler) Message(c *gin.Context) {
	session, err := h.resolve(c)
	if err != nil {
		handleError(c, err)
		return
	}
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	result, err := h.interviews.Message(c.Request.Context(), session.ID, req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, messageResponse{
		Reply:         result.Reply,
		Language:      result.Language,
		CategoryIndex: result.CategoryIndex,
		CategoryCount: seam.CategoryCount,
		Completed:     result.Completed,
	})
}

func (h *InterviewHandler) End(c *gin.Context) {
	session, err := h.resolve(c)
	if err != nil {
		handleError(c, err)
		return
	}
	finished, err := h.interviews.End(c.Request.Context(), session.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sessionStatus(finished))
}

func (h *InterviewHandler) Status(c *gin.Context) {
	session, err := h.resolve(c)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, sessionStatus(session))
}

type statusResponse struct {
	ParticipantCode string `json:"participant_code"`
	Status          string `json:"status"`
	CategoryIndex   int    `json:"category_index"`
	CategoryCount   int    `json:"category_count"`
	CurrentCategory string `json:"current_category"`
	Progress        int    `json:"progress"`
	LanguagePref    string `json:"language_pref"`
}

func sessionStatus(session *model.InterviewSession) statusResponse {
	progress := session.CategoryIndex * 100 / seam.CategoryCount
	if progress > 100 {
		progress = 100
	}
	current := "completed"
	if session.CategoryIndex < seam.CategoryCount {
		current = seam.CategoryOrder[session.CategoryIndex]
	}
	return statusResponse{
		ParticipantCode: session.ParticipantCode,
		Status:          session.Status,
		CategoryIndex:   session.CategoryIndex,
		CategoryCount:   seam.CategoryCount,
		CurrentCategory: current,
		Progress:        progress,
		LanguagePref:    session.LanguagePref,
	}
}

func (h *InterviewHandler) resolve(c *gin.Context) (*model.InterviewSession, error) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return nil, errs.ErrInvalid
	}
	return h.interviews.GetByParticipantCode(c.Request.Context(), code)
}
