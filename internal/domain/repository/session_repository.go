// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nutribalance/internal/domain/entity"
)

// SessionRepository persists the three session records: the profile, the
// meal log and the exercise log. Each record is independent and keyed by a
// fixed name.
//
// Loads never fail on absent or malformed records: implementations recover
// silently by returning the built-in default profile or an empty log, so
// the service always starts interactive.
type SessionRepository interface {
	// LoadProfile retrieves the stored profile, or the default profile
	// when no record exists yet.
	LoadProfile(ctx context.Context) (*entity.Profile, error)

	// SaveProfile durably replaces the profile record.
	SaveProfile(ctx context.Context, profile *entity.Profile) error

	// LoadMeals retrieves the meal log, newest first. Absence yields an
	// empty log.
	LoadMeals(ctx context.Context) ([]*entity.LoggedMeal, error)

	// SaveMeals durably replaces the meal-log record.
	SaveMeals(ctx context.Context, meals []*entity.LoggedMeal) error

	// LoadExercises retrieves the exercise log, newest first.
	LoadExercises(ctx context.Context) ([]*entity.LoggedExercise, error)

	// SaveExercises durably replaces the exercise-log record.
	SaveExercises(ctx context.Context, exercises []*entity.LoggedExercise) error
}
