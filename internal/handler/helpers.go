package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/hakimdiab/seamnote/internal/pkg/errcode"
	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		response.Error(c, errcode.ErrUnauthorized, "unauthorized")
	case errors.Is(err, errs.ErrForbidden):
		response.Error(c, errcode.ErrForbidden, "forbidden")
	case errors.Is(err, errs.ErrNotFound):
		response.Error(c, errcode.ErrNotFound, "not found")
	case errors.Is(err, errs.ErrInvalid):
		response.Error(c, errcode.ErrInvalid, "invalid request")
	case errors.Is(err, errs.ErrConflict):
		response.Error(c, errcode.ErrConflict, "conflict")
	case errors.Is(err, errs.ErrSessionFinished):
		response.Error(c, errcode.ErrSessionFinished, "session is not active")
	case errors.Is(err, errs.ErrNoFieldNotes):
		response.Error(c, errcode.ErrNoFieldNotes, "no field notes recorded")
	case errors.Is(err, errs.ErrNoSummary):
		response.Error(c, errcode.ErrNoSummary, "no summary available")
	default:
		response.Error(c, errcode.ErrInternal, "internal error")
	}
}
