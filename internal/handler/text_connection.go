package handler

import (
	"context"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"stylelove/internal/llm"
	"stylelove/internal/models"
)

// turns kept per socket; older turns are dropped in pairs
const maxSessionHistory = 20

type replier interface {
	Reply(ctx context.Context, id models.Identity, history []llm.Message, userMessage string) (string, error)
}

type stylistSession struct {
	id      string
	conn    *websocket.Conn
	user    models.Identity
	stylist replier
	logger  *zap.Logger
	history []llm.Message
}

func (s *stylistSession) run(ctx context.Context) {
	defer s.conn.Close()
	logger := s.logger.With(zap.String("session_id", s.id), zap.String("user_id", s.user.UserID))
	logger.Info("stylist session started")

	if err := s.conn.WriteMessage(websocket.TextMessage, []byte(stylistGreeting)); err != nil {
		logger.Warn("greeting write failed", zap.Error(err))
		return
	}

ReadLoop:
	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("websocket read failed", zap.Error(err))
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			logger.Debug("ignoring non-text frame", zap.Int("type", messageType))
			continue
		}

		text := strings.TrimSpace(string(message))
		if text == "" {
			continue
		}

		reply, err := s.stylist.Reply(ctx, s.user, s.history, text)
		if err != nil {
			logger.Error("stylist reply failed", zap.Error(err))
			reply = stylistErrorMessage
		} else {
			s.remember(text, reply)
		}

		if err := s.conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			logger.Warn("websocket write failed", zap.Error(err))
			break ReadLoop
		}
	}
	logger.Info("stylist session ended", zap.Int("turns", len(s.history)/2))
}

func (s *stylistSession) remember(question, answer string) {
	s.history = append(s.history,
		llm.Message{Role: "user", Content: question},
		llm.Message{Role: "assistant", Content: answer},
	)
	if extra := len(s.history) - maxSessionHistory; extra > 0 {
		s.history = append([]llm.Message(nil), s.history[extra:]...)
	}
}
