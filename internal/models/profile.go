package models

import (
	"encoding/json"
	"time"
)

// Quiz result persisted per user. Every answer column is nullable because a
// profile can be created by a partial update before the quiz is taken.
type Profile struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	BodyType         *string   `json:"body_type"`
	ShoulderHipRatio *string   `json:"shoulder_hip_ratio"`
	VolumeArea       *string   `json:"volume_area"`
	PreferredFit     *string   `json:"preferred_fit"`
	HeightRange      *string   `json:"height_range"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Field is one column of a partial profile write. The zero value leaves the
// stored column unchanged; Set with a nil Value writes NULL.
type Field struct {
	Set   bool
	Value *string
}

// Value returns a present field holding s.
func Value(s string) Field { return Field{Set: true, Value: &s} }

// Null returns a present field that clears the column.
func Null() Field { return Field{Set: true} }

// UnmarshalJSON marks the field present. JSON null becomes the clear sentinel;
// a key missing from the document never reaches this method and stays absent.
func (f *Field) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	f.Value = &s
	return nil
}

// Profile column names. These are the only identifiers ever placed in SQL text.
const (
	ColBodyType         = "body_type"
	ColShoulderHipRatio = "shoulder_hip_ratio"
	ColVolumeArea       = "volume_area"
	ColPreferredFit     = "preferred_fit"
	ColHeightRange      = "height_range"
)

// ProfileUpdate is a partial write to a profile row.
type ProfileUpdate struct {
	BodyType         Field `json:"body_type"`
	ShoulderHipRatio Field `json:"shoulder_hip_ratio"`
	VolumeArea       Field `json:"volume_area"`
	PreferredFit     Field `json:"preferred_fit"`
	HeightRange      Field `json:"height_range"`
}

type ColumnValue struct {
	Column string
	Value  *string
}

// Columns returns the present fields in a fixed column order.
func (u ProfileUpdate) Columns() []ColumnValue {
	all := []struct {
		col string
		f   Field
	}{
		{ColBodyType, u.BodyType},
		{ColShoulderHipRatio, u.ShoulderHipRatio},
		{ColVolumeArea, u.VolumeArea},
		{ColPreferredFit, u.PreferredFit},
		{ColHeightRange, u.HeightRange},
	}
	var out []ColumnValue
	for _, c := range all {
		if c.f.Set {
			out = append(out, ColumnValue{Column: c.col, Value: c.f.Value})
		}
	}
	return out
}

func (u ProfileUpdate) Empty() bool {
	return len(u.Columns()) == 0
}
