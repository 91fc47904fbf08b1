// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"sync"
	"time"

	"nutribalance/internal/domain/energy"
	"nutribalance/internal/domain/entity"
	domainerrors "nutribalance/internal/domain/errors"
	"nutribalance/internal/domain/repository"
	"nutribalance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// trackerService implements the TrackerUsecase interface. It loads the
// persisted state once at construction and owns it for the life of the
// process; every mutation runs to completion under one lock and is written
// back to the repository before the call returns.
type trackerService struct {
	repo    repository.SessionRepository
	catalog repository.ReferenceCatalog
	logger  *slog.Logger

	mu        sync.Mutex
	profile   *entity.Profile
	meals     []*entity.LoggedMeal
	exercises []*entity.LoggedExercise
}

// NewTrackerService is the constructor for trackerService. The initial
// load is synchronous: missing or malformed records have already been
// replaced by defaults at the repository layer.
func NewTrackerService(
	repo repository.SessionRepository,
	catalog repository.ReferenceCatalog,
	logger *slog.Logger,
) (usecase.TrackerUsecase, error) {
	ctx := context.Background()

	profile, err := repo.LoadProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	meals, err := repo.LoadMeals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load meal log")
	}
	exercises, err := repo.LoadExercises(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load exercise log")
	}

	logger.Info("session state loaded",
		"meals", len(meals),
		"exercises", len(exercises),
	)

	return &trackerService{
		repo:      repo,
		catalog:   catalog,
		logger:    logger,
		profile:   profile,
		meals:     meals,
		exercises: exercises,
	}, nil
}

// Profile returns a copy of the current profile.
func (srv *trackerService) Profile(ctx context.Context) (*entity.Profile, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	profile := *srv.profile

	return &profile, nil
}

// UpdateProfile applies a partial update and persists the profile record.
// Range checks live at the delivery layer; only the enums are validated
// here so library callers get the same guarantees.
func (srv *trackerService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if input.Gender != nil && !input.Gender.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown gender %q", *input.Gender)
	}
	if input.Goal != nil && !input.Goal.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown goal %q", *input.Goal)
	}

	if input.WeightKg != nil {
		srv.profile.WeightKg = *input.WeightKg
	}
	if input.HeightCm != nil {
		srv.profile.HeightCm = *input.HeightCm
	}
	if input.Age != nil {
		srv.profile.Age = *input.Age
	}
	if input.Gender != nil {
		srv.profile.Gender = *input.Gender
	}
	if input.ActivityLevel != nil {
		srv.profile.ActivityLevel = *input.ActivityLevel
	}
	if input.Goal != nil {
		srv.profile.Goal = *input.Goal
	}

	srv.persistProfile(ctx)

	profile := *srv.profile

	return &profile, nil
}

// Meals returns the meal log, newest first.
func (srv *trackerService) Meals(ctx context.Context) ([]*entity.LoggedMeal, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.meals), nil
}

// RecordMeal derives the fixed nutrition values from the reference entry
// and the quantity at this moment, then prepends the entry to the log.
func (srv *trackerService) RecordMeal(ctx context.Context, input *usecase.RecordMealInput) (*entity.LoggedMeal, error) {
	food, err := srv.catalog.FindFood(input.Food)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrFoodNotFound, "food %q", input.Food)
	}
	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	calories, protein, carbs, fats := energy.ScaleServing(food, input.Quantity)

	meal := &entity.LoggedMeal{
		ID:        uuid.New(),
		Name:      fmt.Sprintf("%s (%s %s)", food.Name, formatQuantity(input.Quantity), food.Unit),
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fats:      fats,
		CreatedAt: time.Now().UTC(),
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.meals = append([]*entity.LoggedMeal{meal}, srv.meals...)
	srv.persistMeals(ctx)

	srv.logger.Info("meal recorded", "name", meal.Name, "calories", meal.Calories)

	return meal, nil
}

// DeleteMeal removes the entry with the given id; an unknown id leaves the
// log unchanged and is not an error.
func (srv *trackerService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	remaining := slices.DeleteFunc(slices.Clone(srv.meals), func(m *entity.LoggedMeal) bool {
		return m.ID == id
	})
	if len(remaining) == len(srv.meals) {
		return nil
	}

	srv.meals = remaining
	srv.persistMeals(ctx)

	return nil
}

// Exercises returns the exercise log, newest first.
func (srv *trackerService) Exercises(ctx context.Context) ([]*entity.LoggedExercise, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.exercises), nil
}

// RecordExercise computes the session burn from the MET factor and the
// profile weight at this moment, then prepends the entry to the log.
func (srv *trackerService) RecordExercise(ctx context.Context, input *usecase.RecordExerciseInput) (*entity.LoggedExercise, error) {
	exerciseType, err := srv.catalog.FindExercise(input.TypeID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExerciseNotFound, "exercise %q", input.TypeID)
	}
	if input.DurationMin <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "duration must be positive")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	exercise := &entity.LoggedExercise{
		ID:             uuid.New(),
		TypeID:         exerciseType.ID,
		Name:           exerciseType.Name,
		DurationMin:    input.DurationMin,
		CaloriesBurned: energy.ExerciseBurn(exerciseType.MET, srv.profile.WeightKg, input.DurationMin),
		CreatedAt:      time.Now().UTC(),
	}

	srv.exercises = append([]*entity.LoggedExercise{exercise}, srv.exercises...)
	srv.persistExercises(ctx)

	srv.logger.Info("exercise recorded", "name", exercise.Name, "burned", exercise.CaloriesBurned)

	return exercise, nil
}

// DeleteExercise removes the entry with the given id; unknown ids are a
// no-op.
func (srv *trackerService) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	remaining := slices.DeleteFunc(slices.Clone(srv.exercises), func(e *entity.LoggedExercise) bool {
		return e.ID == id
	})
	if len(remaining) == len(srv.exercises) {
		return nil
	}

	srv.exercises = remaining
	srv.persistExercises(ctx)

	return nil
}

// Summary recomputes the energy-balance totals from current state. The
// totals are never cached, so they cannot go stale.
func (srv *trackerService) Summary(ctx context.Context) (*entity.MacroTotals, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return energy.Totals(srv.profile, srv.meals, srv.exercises), nil
}

// ContextSummary renders the one-line summary handed to the coaching
// advisor.
func (srv *trackerService) ContextSummary(ctx context.Context) (string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	totals := energy.Totals(srv.profile, srv.meals, srv.exercises)

	return fmt.Sprintf("Weight: %skg, Goal: %s, Consumed: %dkcal, Remaining: %dkcal.",
		formatQuantity(srv.profile.WeightKg),
		srv.profile.Goal,
		int(math.Round(totals.Consumed.Calories)),
		int(math.Round(totals.Remaining)),
	), nil
}

// SearchFoods serves the food table, optionally filtered by substring.
func (srv *trackerService) SearchFoods(ctx context.Context, query string) ([]*entity.FoodReferenceEntry, error) {
	return srv.catalog.SearchFoods(query), nil
}

// ExerciseTypes serves the exercise table.
func (srv *trackerService) ExerciseTypes(ctx context.Context) ([]*entity.ExerciseReferenceEntry, error) {
	return srv.catalog.Exercises(), nil
}

// ActivityLevels serves the activity multiplier table.
func (srv *trackerService) ActivityLevels(ctx context.Context) ([]*entity.ActivityLevel, error) {
	return srv.catalog.ActivityLevels(), nil
}

// persistProfile writes the profile record. Persistence failures are
// logged, never surfaced: the in-memory state is already mutated and the
// UI must stay interactive.
func (srv *trackerService) persistProfile(ctx context.Context) {
	if err := srv.repo.SaveProfile(ctx, srv.profile); err != nil {
		srv.logger.Warn("failed to persist profile", "error", err)
	}
}

func (srv *trackerService) persistMeals(ctx context.Context) {
	if err := srv.repo.SaveMeals(ctx, srv.meals); err != nil {
		srv.logger.Warn("failed to persist meal log", "error", err)
	}
}

func (srv *trackerService) persistExercises(ctx context.Context) {
	if err := srv.repo.SaveExercises(ctx, srv.exercises); err != nil {
		srv.logger.Warn("failed to persist exercise log", "error", err)
	}
}

// formatQuantity renders a quantity without trailing zeros (150, 1.5).
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
