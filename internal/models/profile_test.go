package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateJSON(t *testing.T) {
	var u ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"preferred_fit":"relaxed","height_range":null}`), &u))

	assert.False(t, u.BodyType.Set)
	assert.False(t, u.ShoulderHipRatio.Set)
	assert.False(t, u.VolumeArea.Set)

	require.True(t, u.PreferredFit.Set)
	require.NotNil(t, u.PreferredFit.Value)
	assert.Equal(t, "relaxed", *u.PreferredFit.Value)

	assert.True(t, u.HeightRange.Set)
	assert.Nil(t, u.HeightRange.Value)

	cols := u.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, ColPreferredFit, cols[0].Column)
	assert.Equal(t, ColHeightRange, cols[1].Column)
	assert.False(t, u.Empty())
}

func TestProfileUpdateEmpty(t *testing.T) {
	var u ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"unknown":"x"}`), &u))
	assert.True(t, u.Empty())
	assert.Nil(t, u.Columns())
}

func TestProfileUpdateRejectsNonString(t *testing.T) {
	var u ProfileUpdate
	assert.Error(t, json.Unmarshal([]byte(`{"body_type":42}`), &u))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada", Identity{Name: "Ada", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "ada", Identity{Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "friend", Identity{}.DisplayName())
}
