package server

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/response"
	"ctchen222/Tic-Tac-Toe-AI/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-AI/internal/player"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Registrar accepts connections for live sessions.
type Registrar interface {
	Register() chan<- *types.RegistrationRequest
	Stopped() <-chan struct{}
}

// TokenVerifier maps a session token to its session id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Server struct {
	hub      Registrar
	tokens   TokenVerifier
	sessions *controller.SessionController
	webDir   string
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

func NewServer(h Registrar, tokens TokenVerifier, sessions *controller.SessionController, webDir string) *Server {
	s := &Server{
		hub:      h,
		tokens:   tokens,
		sessions: sessions,
		webDir:   webDir,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine = s.routes()
	return s
}

// Engine returns the HTTP handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/healthz", controller.Health)
	api := engine.Group("/api")
	api.POST("/sessions", s.sessions.Create)
	engine.GET("/ws", s.handleWebSocket)

	if s.webDir != "" {
		fs := http.FileServer(http.Dir(s.webDir))
		engine.NoRoute(gin.WrapH(fs))
	}
	return engine
}

// handleWebSocket checks the session token, upgrades the connection and
// passes a registration request to the hub.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	sessionID, err := s.tokens.Verify(c.Query("token"))
	if err != nil {
		slog.WarnContext(ctx, "Rejected websocket connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid session token")
		response.ErrorResponse(c, http.StatusUnauthorized, "invalid session token")
		return
	}
	span.SetAttributes(attribute.String("session.id", sessionID))

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "Failed to upgrade connection", "session.id", sessionID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	req := &types.RegistrationRequest{
		Player:    player.NewPlayer(sessionID, conn),
		SessionID: sessionID,
		Ctx:       ctx,
	}
	select {
	case s.hub.Register() <- req:
	case <-s.hub.Stopped():
		conn.Close()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(c.Request.Context(), "http request",
			"http.method", c.Request.Method,
			"http.path", c.Request.URL.Path,
			"http.status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
