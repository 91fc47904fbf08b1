package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoggedExercise is one recorded training session. CaloriesBurned is fixed
// at record time from the MET factor and the profile weight at that moment.
type LoggedExercise struct {
	ID             uuid.UUID `json:"id"`
	TypeID         string    `json:"type_id"` // Identifier of the exercise reference entry, e.g. "running".
	Name           string    `json:"name"`
	DurationMin    float64   `json:"duration_minutes"`
	CaloriesBurned int       `json:"calories_burned"` // Rounded to the nearest kcal.
	CreatedAt      time.Time `json:"created_at"`
}
