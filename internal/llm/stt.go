/**
* Name:         stt.go
* Description:  Speech-to-text for voice questions to the stylist
* Workflow:     LINEAR16 16kHz mono audio -> Recognize -> joined transcript
 */

package llm

import (
	"context"
	"errors"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

type Transcriber struct {
	client   *speech.Client
	language string
}

func NewTranscriber(ctx context.Context, credentialsFile, language string) (*Transcriber, error) {
	if credentialsFile == "" {
		return nil, ErrNotConfigured
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("NewTranscriber(): failed to create speech client: " + err.Error())
	}
	return &Transcriber{client: client, language: language}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			AudioChannelCount: 1,
			LanguageCode:      t.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", err
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
		}
	}
	return strings.Join(parts, " "), nil
}

func (t *Transcriber) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
