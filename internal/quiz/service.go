package quiz

import (
	"context"

	"stylelove/internal/bodytype"
	"stylelove/internal/models"

	"go.uber.org/zap"
)

// ProfileStore is the part of the storage layer the quiz writes to.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, userID string, u models.ProfileUpdate) (*models.Profile, error)
}

// Answer is one raw quiz answer. It decodes like models.Field: a missing key
// is absent and null clears the column. Any other non-string JSON is kept as
// Unrecognized, which fails every rule and is never written.
type Answer struct {
	models.Field
	Unrecognized bool
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var f models.Field
	if err := f.UnmarshalJSON(data); err != nil {
		*a = Answer{Unrecognized: true}
		return nil
	}
	*a = Answer{Field: f}
	return nil
}

// String is the value the rules compare against.
func (a Answer) String() string {
	if a.Unrecognized || a.Value == nil {
		return ""
	}
	return *a.Value
}

func (a Answer) column() models.Field {
	if a.Unrecognized {
		return models.Field{}
	}
	return a.Field
}

// Submission is the raw quiz answer payload.
type Submission struct {
	ShoulderHipRatio Answer `json:"shoulder_hip_ratio" swaggertype:"string"`
	VolumeArea       Answer `json:"volume_area" swaggertype:"string"`
	PreferredFit     Answer `json:"preferred_fit" swaggertype:"string"`
	HeightRange      Answer `json:"height_range" swaggertype:"string"`
}

func (s Submission) Answers() bodytype.Answers {
	return bodytype.Answers{
		ShoulderHipRatio: s.ShoulderHipRatio.String(),
		VolumeArea:       s.VolumeArea.String(),
	}
}

// Update builds the profile write for a classified submission: the body type
// always, plus each raw field that was sent as a string or null.
func (s Submission) Update(bt bodytype.BodyType) models.ProfileUpdate {
	return models.ProfileUpdate{
		BodyType:         models.Value(string(bt)),
		ShoulderHipRatio: s.ShoulderHipRatio.column(),
		VolumeArea:       s.VolumeArea.column(),
		PreferredFit:     s.PreferredFit.column(),
		HeightRange:      s.HeightRange.column(),
	}
}

type Service struct {
	store  ProfileStore
	logger *zap.Logger
}

func NewService(store ProfileStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Submit classifies the answers and, for an identified user, persists the
// result. Guests (empty userID) get a classification and nothing is stored.
// On a storage error no body type is returned; the caller has to resubmit.
func (s *Service) Submit(ctx context.Context, userID string, sub Submission) (bodytype.BodyType, error) {
	bt, rule := bodytype.Explain(sub.Answers())
	if userID == "" {
		s.logger.Debug("quiz classified for guest", zap.String("body_type", string(bt)), zap.String("rule", rule))
		return bt, nil
	}

	if _, err := s.store.UpsertProfile(ctx, userID, sub.Update(bt)); err != nil {
		s.logger.Error("quiz profile upsert failed", zap.String("user_id", userID), zap.Error(err))
		return "", err
	}
	s.logger.Info("quiz saved",
		zap.String("user_id", userID),
		zap.String("body_type", string(bt)),
		zap.String("rule", rule),
	)
	return bt, nil
}
