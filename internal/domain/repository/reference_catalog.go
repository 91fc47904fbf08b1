package repository

import (
	"github.com/pkg/errors"

	"nutribalance/internal/domain/entity"
)

// Domain-specific errors for reference lookups.
var (
	// ErrFoodNotFound is returned when no food entry matches the name.
	ErrFoodNotFound = errors.New("food reference entry not found")
	// ErrExerciseNotFound is returned when no exercise entry matches the id.
	ErrExerciseNotFound = errors.New("exercise reference entry not found")
)

// ReferenceCatalog exposes the static lookup tables loaded once at startup:
// foods, exercise types and activity levels. The tables are read-only and
// not user-editable at runtime.
type ReferenceCatalog interface {
	// Foods returns every food reference entry.
	Foods() []*entity.FoodReferenceEntry

	// SearchFoods returns the entries whose name contains the query,
	// case-insensitively. An empty query returns everything.
	SearchFoods(query string) []*entity.FoodReferenceEntry

	// FindFood retrieves a food entry by exact name (case-insensitive).
	FindFood(name string) (*entity.FoodReferenceEntry, error)

	// Exercises returns every exercise reference entry.
	Exercises() []*entity.ExerciseReferenceEntry

	// FindExercise retrieves an exercise entry by its identifier.
	FindExercise(id string) (*entity.ExerciseReferenceEntry, error)

	// ActivityLevels returns the selectable TDEE multipliers.
	ActivityLevels() []*entity.ActivityLevel
}
