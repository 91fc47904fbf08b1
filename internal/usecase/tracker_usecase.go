// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nutribalance/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackerUsecase owns the session state: the profile and the two activity
// logs. Every successful mutation is persisted before the call returns;
// derived totals are recomputed from current state on every read.
type TrackerUsecase interface {
	Profile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error)

	Meals(ctx context.Context) ([]*entity.LoggedMeal, error)
	RecordMeal(ctx context.Context, input *RecordMealInput) (*entity.LoggedMeal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID) error

	Exercises(ctx context.Context) ([]*entity.LoggedExercise, error)
	RecordExercise(ctx context.Context, input *RecordExerciseInput) (*entity.LoggedExercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error

	// Summary recomputes the energy-balance totals from current state.
	Summary(ctx context.Context) (*entity.MacroTotals, error)

	// ContextSummary renders the one-line balance summary handed to the
	// coaching advisor.
	ContextSummary(ctx context.Context) (string, error)

	// Reference table reads, served from the static catalog.
	SearchFoods(ctx context.Context, query string) ([]*entity.FoodReferenceEntry, error)
	ExerciseTypes(ctx context.Context) ([]*entity.ExerciseReferenceEntry, error)
	ActivityLevels(ctx context.Context) ([]*entity.ActivityLevel, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update; nil fields are left
// untouched.
type UpdateProfileInput struct {
	WeightKg      *float64       `json:"weight_kg,omitempty"`
	HeightCm      *float64       `json:"height_cm,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Gender        *entity.Gender `json:"gender,omitempty"`
	ActivityLevel *float64       `json:"activity_level,omitempty"`
	Goal          *entity.Goal   `json:"goal,omitempty"`
}

// RecordMealInput defines the data required to record a consumed food.
// Quantity is a piece count for count-based foods and grams for mass-based
// ones.
type RecordMealInput struct {
	Food     string  `json:"food"`
	Quantity float64 `json:"quantity"`
}

// RecordExerciseInput defines the data required to record a training
// session.
type RecordExerciseInput struct {
	TypeID      string  `json:"type_id"`
	DurationMin float64 `json:"duration_minutes"`
}
