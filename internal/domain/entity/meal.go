package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoggedMeal is one recorded food consumption event. Its calories and
// macros are fixed at record time from the reference entry and quantity,
// so later edits to the reference table never change history.
type LoggedMeal struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`     // Display name, e.g. "Pechuga de Pollo (150 g)".
	Calories  int       `json:"calories"` // Rounded to the nearest kcal.
	Protein   float64   `json:"protein"`  // Grams, rounded to one decimal.
	Carbs     float64   `json:"carbs"`    // Grams, rounded to one decimal.
	Fats      float64   `json:"fats"`     // Grams, rounded to one decimal.
	CreatedAt time.Time `json:"created_at"`
}
