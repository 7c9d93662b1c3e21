package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MsgResponse is the error envelope every non-2xx response uses. The shape (a
// single "msg" field) is kept for compatibility with existing API clients.
type MsgResponse struct {
	Msg string `json:"msg"`
}

func respondMsg(c *gin.Context, status int, msg string) {
	c.JSON(status, MsgResponse{Msg: msg})
}

// respondError maps a service error onto the API's status code conventions.
// notFoundMsg names the entity for 404 responses; everything unexpected becomes
// a logged 500 "Server error".
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondMsg(c, http.StatusBadRequest, userFacingMessage(err))
	case errors.Is(err, apperrors.ErrDuplicate):
		respondMsg(c, http.StatusBadRequest, userFacingMessage(err))
	case errors.Is(err, apperrors.ErrConflict):
		respondMsg(c, http.StatusBadRequest, userFacingMessage(err))
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondMsg(c, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, apperrors.ErrNotFound):
		respondMsg(c, http.StatusNotFound, notFoundMsg)
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()), slog.String("path", c.FullPath()))
		respondMsg(c, http.StatusInternalServerError, "Server error")
	}
}

// userFacingMessage strips the sentinel wrapping so clients see the descriptive
// part of a validation or conflict error.
func userFacingMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{apperrors.ErrValidation, apperrors.ErrDuplicate, apperrors.ErrConflict} {
		if suffix := ": " + sentinel.Error(); len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}

// requireUserID pulls the authenticated user id out of the request context; a
// missing id means the auth middleware did not run, which is a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondMsg(c, http.StatusUnauthorized, "Not authorized")
		return "", false
	}
	return userID, true
}
