package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"stylelove/internal/bodytype"
	"stylelove/internal/models"
	"stylelove/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingStore struct {
	calls []models.ProfileUpdate
	err   error
}

func (r *recordingStore) UpsertProfile(_ context.Context, _ string, u models.ProfileUpdate) (*models.Profile, error) {
	r.calls = append(r.calls, u)
	if r.err != nil {
		return nil, r.err
	}
	return &models.Profile{}, nil
}

func s(v string) Answer { return Answer{Field: models.Value(v)} }

func TestSubmitGuestSkipsPersistence(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(store, zap.NewNop())

	bt, err := svc.Submit(context.Background(), "", Submission{ShoulderHipRatio: s("hips_wider"), VolumeArea: s("middle")})
	require.NoError(t, err)
	assert.Equal(t, bodytype.Pear, bt)
	assert.Empty(t, store.calls)
}

func TestSubmitPersistsForUser(t *testing.T) {
	store := &recordingStore{}
	svc := NewService(store, zap.NewNop())

	bt, err := svc.Submit(context.Background(), "u1", Submission{
		ShoulderHipRatio: s("about_same"),
		VolumeArea:       s("balanced"),
		PreferredFit:     s("fitted"),
	})
	require.NoError(t, err)
	assert.Equal(t, bodytype.Hourglass, bt)

	require.Len(t, store.calls, 1)
	u := store.calls[0]
	assert.Equal(t, "Hourglass", *u.BodyType.Value)
	assert.Equal(t, "fitted", *u.PreferredFit.Value)
	assert.False(t, u.HeightRange.Set, "unsent optional field is left alone")
}

func TestSubmitStorageFailureReturnsNoBodyType(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	svc := NewService(store, zap.NewNop())

	bt, err := svc.Submit(context.Background(), "u1", Submission{ShoulderHipRatio: s("hips_wider")})
	assert.Error(t, err)
	assert.Empty(t, bt)
}

func TestSubmitMissingAnswersDefaults(t *testing.T) {
	svc := NewService(&recordingStore{}, zap.NewNop())
	bt, err := svc.Submit(context.Background(), "", Submission{})
	require.NoError(t, err)
	assert.Equal(t, bodytype.Rectangle, bt)
}

func TestSubmissionUpdateNullClears(t *testing.T) {
	u := Submission{HeightRange: Answer{Field: models.Null()}, PreferredFit: s("")}.Update(bodytype.Apple)
	assert.True(t, u.HeightRange.Set)
	assert.Nil(t, u.HeightRange.Value)
	require.NotNil(t, u.PreferredFit.Value)
	assert.Equal(t, "", *u.PreferredFit.Value, "empty string is stored as sent")
	assert.False(t, u.ShoulderHipRatio.Set)
}

func TestSubmissionDecode(t *testing.T) {
	var sub Submission
	require.NoError(t, json.Unmarshal([]byte(`{
		"shoulder_hip_ratio": 3,
		"volume_area": ["top"],
		"preferred_fit": null,
		"height_range": "160_170"
	}`), &sub))

	assert.True(t, sub.ShoulderHipRatio.Unrecognized)
	assert.True(t, sub.VolumeArea.Unrecognized)
	assert.Equal(t, bodytype.Answers{}, sub.Answers())

	u := sub.Update(bodytype.Rectangle)
	assert.False(t, u.ShoulderHipRatio.Set, "unrecognized answers are not written")
	assert.False(t, u.VolumeArea.Set)
	assert.True(t, u.PreferredFit.Set)
	assert.Nil(t, u.PreferredFit.Value)
	assert.Equal(t, "160_170", *u.HeightRange.Value)
}

func TestSubmitUnrecognizedAnswerFallsThrough(t *testing.T) {
	var sub Submission
	require.NoError(t, json.Unmarshal([]byte(`{"shoulder_hip_ratio":{"v":1},"volume_area":"top"}`), &sub))

	store := &recordingStore{}
	bt, err := NewService(store, zap.NewNop()).Submit(context.Background(), "u1", sub)
	require.NoError(t, err)
	assert.Equal(t, bodytype.InvertedTriangle, bt)
	require.Len(t, store.calls, 1)
	assert.False(t, store.calls[0].ShoulderHipRatio.Set)
	assert.Equal(t, "top", *store.calls[0].VolumeArea.Value)
}

func TestSubmitAgainstStore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.Open(ctx, storage.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer store.Close()
	svc := NewService(store, zap.NewNop())

	_, err = svc.Submit(ctx, "u1", Submission{
		ShoulderHipRatio: s("shoulders_wider"),
		VolumeArea:       s("bottom"),
		HeightRange:      s("170_180"),
	})
	require.NoError(t, err)

	bt, err := svc.Submit(ctx, "u1", Submission{ShoulderHipRatio: s("about_same"), VolumeArea: s("middle")})
	require.NoError(t, err)
	assert.Equal(t, bodytype.Apple, bt)

	p, err := store.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Apple", *p.BodyType)
	assert.Equal(t, "middle", *p.VolumeArea)
	assert.Equal(t, "170_180", *p.HeightRange)

	_, err = svc.Submit(ctx, "u1", Submission{
		ShoulderHipRatio: s("about_same"),
		VolumeArea:       s("middle"),
		HeightRange:      Answer{Field: models.Null()},
	})
	require.NoError(t, err)
	p, err = store.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p.HeightRange)

	_, err = svc.Submit(ctx, "", Submission{ShoulderHipRatio: s("hips_wider")})
	require.NoError(t, err)
	guest, err := store.GetProfile(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, guest)
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 4)
	assert.Equal(t, "shoulder_hip_ratio", qs[0].Key)
	assert.True(t, qs[0].Required)

	q, ok := GetQuestion("volume_area")
	require.True(t, ok)
	assert.Len(t, q.Options, 4)

	_, ok = GetQuestion("shoe_size")
	assert.False(t, ok)
}
