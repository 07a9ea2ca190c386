package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"stylelove/internal/middleware"
	"stylelove/internal/models"
)

const stylistGreeting = "Hi! I'm your StyleLove stylist. Ask me anything about what to wear!"

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleStylistConnection godoc
// @Summary      Stylist chat over WebSocket
// @Description  Not a plain HTTP API: connect with ws:// or wss://. Each text frame sent is one
// @Description  user message and each text frame received is one stylist reply. The conversation
// @Description  history lives for the lifetime of the socket. Authentication is via the
// @Description  optional 'token' query parameter; without it the session is a guest session.
// @Tags         Stylist
// @Param        token query string false "JWT issued at login"
// @Success      101 {string} string "Switching Protocols"
// @Failure      401 {object} handler.ErrorResponse
// @Router       /ws/stylist [get]
func (h *Handler) HandleStylistConnection(c *gin.Context) {
	var id models.Identity
	if tokenString := c.Query("token"); tokenString != "" {
		claims, err := h.tokens.Validate(tokenString)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		id = middleware.IdentityFromClaims(claims)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.String("user_id", id.UserID), zap.Error(err))
		return
	}

	session := &stylistSession{
		id:      uuid.New().String(),
		conn:    conn,
		user:    id,
		stylist: h.stylist,
		logger:  h.logger,
	}
	session.run(c.Request.Context())
}
