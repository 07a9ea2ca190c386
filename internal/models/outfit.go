package models

import "time"

type Outfit struct {
	ID          int64     `json:"id" yaml:"-"`
	Category    string    `json:"category" yaml:"category"`
	ImageURL    string    `json:"image_url" yaml:"image_url"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	BodyTypes   []string  `json:"body_types" yaml:"body_types"`
	Source      string    `json:"source" yaml:"source"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	OutfitID  int64     `json:"outfit_id"`
	CreatedAt time.Time `json:"created_at"`
	Outfit    Outfit    `json:"outfit"`
}
