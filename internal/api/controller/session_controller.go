package controller

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/api/models"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/response"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/service"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionController handles game-session HTTP requests.
type SessionController struct {
	sessionService service.SessionService
}

// NewSessionController creates a new SessionController.
func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Create handles the new session endpoint.
func (sc *SessionController) Create(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := sc.sessionService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, bot.ErrInvalidDifficulty) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to create session", "error", err)
		response.ErrorResponse(c, http.StatusServiceUnavailable, "could not create session")
		return
	}

	response.SuccessResponse(c, res)
}

// Health reports that the server is up.
func Health(c *gin.Context) {
	response.SuccessResponseContent(c, "ok")
}
