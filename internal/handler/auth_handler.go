package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hakimdiab/seamnote/internal/pkg/errcode"
	"github.com/hakimdiab/seamnote/internal/pkg/response"
	"github.com/hakimdiab/seamnote/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.User, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, loginResponse{Token: token})
}
