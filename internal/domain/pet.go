package domain

import "time"

type Pet struct {
	ID        int64
	Name      string
	Species   string
	Breed     string
	Age       int
	Weight    float64
	Gender    string
	Notes     string
	ImageURL  string
	CreatedAt time.Time
}

type PetInput struct {
	UserID   int64    `json:"userId"`
	Name     string   `json:"name" validate:"required"`
	Species  string   `json:"species" validate:"required"`
	Breed    string   `json:"breed"`
	Age      *int     `json:"age"`
	Weight   *float64 `json:"weight"`
	Gender   string   `json:"gender"`
	Notes    string   `json:"notes"`
	ImageURL string   `json:"imageUrl"`
}
