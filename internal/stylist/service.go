// Package stylist answers styling questions with a chat model, grounded on
// the user's body type and matching outfits from the search index.
package stylist

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"stylelove/internal/llm"
	"stylelove/internal/models"
	"stylelove/internal/search"
)

const contextHits = 5

var ErrVoiceNotConfigured = errors.New("voice services not configured")

type ProfileReader interface {
	BodyTypeFor(ctx context.Context, userID string) (string, error)
}

type Searcher interface {
	CanSearch() bool
	Query(ctx context.Context, q search.Query) (*search.Result, error)
}

type Completer interface {
	Complete(ctx context.Context, system string, messages []llm.Message) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Service struct {
	profiles    ProfileReader
	searcher    Searcher
	completer   Completer
	transcriber Transcriber
	synthesizer Synthesizer
	logger      *zap.Logger
}

type Option func(*Service)

// WithVoice enables Converse. Either argument may be nil.
func WithVoice(t Transcriber, s Synthesizer) Option {
	return func(svc *Service) {
		svc.transcriber = t
		svc.synthesizer = s
	}
}

func NewService(profiles ProfileReader, searcher Searcher, completer Completer, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{profiles: profiles, searcher: searcher, completer: completer, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply produces the assistant's next message. history is the conversation
// so far as the client holds it; userMessage is the newest user turn and is
// appended when history does not already end with it.
func (s *Service) Reply(ctx context.Context, id models.Identity, history []llm.Message, userMessage string) (string, error) {
	if s.completer == nil {
		return "", llm.ErrNotConfigured
	}

	var bodyType string
	name := "friend"
	if id.UserID != "" {
		name = id.DisplayName()
		bt, err := s.profiles.BodyTypeFor(ctx, id.UserID)
		if err != nil {
			s.logger.Warn("body type lookup failed", zap.String("user_id", id.UserID), zap.Error(err))
		}
		bodyType = bt
	}

	system := SystemPrompt(name, bodyType, s.relatedOutfits(ctx, userMessage, bodyType))
	return s.completer.Complete(ctx, system, withUserMessage(history, userMessage))
}

// relatedOutfits never fails; a search problem only drops the outfit context.
func (s *Service) relatedOutfits(ctx context.Context, query, bodyType string) []search.Record {
	if s.searcher == nil || !s.searcher.CanSearch() {
		return nil
	}
	res, err := s.searcher.Query(ctx, search.Query{
		Text:        query,
		Filters:     search.BuildFilters("", bodyType),
		HitsPerPage: contextHits,
	})
	if err != nil {
		s.logger.Warn("stylist outfit search failed", zap.Error(err))
		return nil
	}
	if len(res.Hits) > contextHits {
		return res.Hits[:contextHits]
	}
	return res.Hits
}

func withUserMessage(history []llm.Message, userMessage string) []llm.Message {
	if userMessage == "" {
		return history
	}
	if n := len(history); n > 0 && history[n-1].Role == "user" && history[n-1].Content == userMessage {
		return history
	}
	out := make([]llm.Message, 0, len(history)+1)
	out = append(out, history...)
	return append(out, llm.Message{Role: "user", Content: userMessage})
}

type VoiceReply struct {
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
	Audio      []byte `json:"audio"`
}

// VoiceEnabled reports whether both speech directions are wired.
func (s *Service) VoiceEnabled() bool {
	return s.transcriber != nil && s.synthesizer != nil
}

// Converse transcribes a spoken question, answers it and speaks the answer.
func (s *Service) Converse(ctx context.Context, id models.Identity, history []llm.Message, audio []byte) (*VoiceReply, error) {
	if !s.VoiceEnabled() {
		return nil, ErrVoiceNotConfigured
	}
	transcript, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}
	if transcript == "" {
		return nil, errors.New("no speech recognized")
	}
	reply, err := s.Reply(ctx, id, history, transcript)
	if err != nil {
		return nil, err
	}
	speech, err := s.synthesizer.Synthesize(ctx, reply)
	if err != nil {
		return nil, err
	}
	return &VoiceReply{Transcript: transcript, Reply: reply, Audio: speech}, nil
}
