/**
* Name:         tts.go
* Description:  Text-to-speech for stylist replies
* Workflow:     reply text -> SynthesizeSpeech -> LINEAR16 16kHz audio
 */

package llm

import (
	"context"
	"errors"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

type Synthesizer struct {
	client   *texttospeech.Client
	language string
	voice    string
}

func NewSynthesizer(ctx context.Context, credentialsFile, language, voice string) (*Synthesizer, error) {
	if credentialsFile == "" {
		return nil, ErrNotConfigured
	}
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("NewSynthesizer(): failed to create TTS client: " + err.Error())
	}
	return &Synthesizer{client: client, language: language, voice: voice}, nil
}

// Synthesize returns the whole utterance at once; replies are a few short
// paragraphs so streaming synthesis is not used.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.language,
			Name:         s.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
			SampleRateHertz: 16000,
		},
	})
	if err != nil {
		return nil, err
	}
	return resp.AudioContent, nil
}

func (s *Synthesizer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
