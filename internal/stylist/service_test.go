package stylist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stylelove/internal/llm"
	"stylelove/internal/models"
	"stylelove/internal/search"
)

type fakeProfiles map[string]string

func (f fakeProfiles) BodyTypeFor(_ context.Context, userID string) (string, error) {
	return f[userID], nil
}

type fakeSearcher struct {
	enabled bool
	hits    []search.Record
	err     error
	got     search.Query
}

func (f *fakeSearcher) CanSearch() bool { return f.enabled }

func (f *fakeSearcher) Query(_ context.Context, q search.Query) (*search.Result, error) {
	f.got = q
	if f.err != nil {
		return nil, f.err
	}
	return &search.Result{Hits: f.hits, NbHits: len(f.hits)}, nil
}

type fakeCompleter struct {
	system   string
	messages []llm.Message
	reply    string
}

func (f *fakeCompleter) Complete(_ context.Context, system string, messages []llm.Message) (string, error) {
	f.system = system
	f.messages = messages
	return f.reply, nil
}

func TestReplyForSignedInUser(t *testing.T) {
	searcher := &fakeSearcher{enabled: true, hits: []search.Record{
		{Title: "Wrap Dress", Category: "Dresses", Description: "Cinched waist"},
		{Title: "Wide Leg Trousers", Category: "Pants", Description: "High rise"},
	}}
	completer := &fakeCompleter{reply: "You'd look amazing in a wrap dress!"}
	svc := NewService(fakeProfiles{"u1": "Hourglass"}, searcher, completer, zap.NewNop())

	history := []llm.Message{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello!"}}
	reply, err := svc.Reply(context.Background(), models.Identity{UserID: "u1", Email: "ana@example.com"}, history, "what should I wear to a wedding?")
	require.NoError(t, err)
	assert.Equal(t, "You'd look amazing in a wrap dress!", reply)

	assert.Equal(t, `body_types:"Hourglass"`, searcher.got.Filters)
	assert.Equal(t, 5, searcher.got.HitsPerPage)
	assert.Equal(t, "what should I wear to a wedding?", searcher.got.Text)

	assert.Contains(t, completer.system, "- User's name: ana")
	assert.Contains(t, completer.system, "- Body type: Hourglass")
	assert.Contains(t, completer.system, "1. Wrap Dress (Dresses) - Cinched waist")
	assert.Contains(t, completer.system, "2. Wide Leg Trousers (Pants) - High rise")

	require.Len(t, completer.messages, 3)
	assert.Equal(t, llm.Message{Role: "user", Content: "what should I wear to a wedding?"}, completer.messages[2])
	assert.Len(t, history, 2)
}

func TestReplyGuestWithoutSearch(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewService(fakeProfiles{}, &fakeSearcher{}, completer, zap.NewNop())

	_, err := svc.Reply(context.Background(), models.Identity{}, nil, "jeans?")
	require.NoError(t, err)
	assert.Contains(t, completer.system, "- User's name: friend")
	assert.Contains(t, completer.system, unknownBodyType)
	assert.NotContains(t, completer.system, "Relevant outfit recommendations")
}

func TestReplySearchFailureDegrades(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	searcher := &fakeSearcher{enabled: true, err: errors.New("upstream down")}
	svc := NewService(fakeProfiles{}, searcher, completer, zap.NewNop())

	reply, err := svc.Reply(context.Background(), models.Identity{}, nil, "jeans?")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.NotContains(t, completer.system, "Relevant outfit recommendations")
	assert.Empty(t, searcher.got.Filters)
}

func TestReplyDoesNotDuplicateUserMessage(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := NewService(fakeProfiles{}, nil, completer, zap.NewNop())

	history := []llm.Message{{Role: "user", Content: "jeans?"}}
	_, err := svc.Reply(context.Background(), models.Identity{}, history, "jeans?")
	require.NoError(t, err)
	assert.Len(t, completer.messages, 1)
}

func TestReplyWithoutCompleter(t *testing.T) {
	svc := NewService(fakeProfiles{}, nil, nil, zap.NewNop())
	_, err := svc.Reply(context.Background(), models.Identity{}, nil, "hi")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

type fakeTranscriber string

func (f fakeTranscriber) Transcribe(context.Context, []byte) (string, error) { return string(f), nil }

type fakeSynthesizer struct{}

func (fakeSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	return []byte("pcm:" + text), nil
}

func TestConverse(t *testing.T) {
	completer := &fakeCompleter{reply: "Try a belted coat."}
	svc := NewService(fakeProfiles{}, nil, completer, zap.NewNop(),
		WithVoice(fakeTranscriber("what coat suits me"), fakeSynthesizer{}))

	require.True(t, svc.VoiceEnabled())
	out, err := svc.Converse(context.Background(), models.Identity{}, nil, []byte{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "what coat suits me", out.Transcript)
	assert.Equal(t, "Try a belted coat.", out.Reply)
	assert.Equal(t, []byte("pcm:Try a belted coat."), out.Audio)
}

func TestConverseNotConfigured(t *testing.T) {
	svc := NewService(fakeProfiles{}, nil, &fakeCompleter{}, zap.NewNop())
	_, err := svc.Converse(context.Background(), models.Identity{}, nil, nil)
	assert.ErrorIs(t, err, ErrVoiceNotConfigured)

	svc = NewService(fakeProfiles{}, nil, &fakeCompleter{}, zap.NewNop(), WithVoice(fakeTranscriber(""), fakeSynthesizer{}))
	_, err = svc.Converse(context.Background(), models.Identity{}, nil, nil)
	assert.Error(t, err)
}
