package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nutribalance/config"
	"nutribalance/internal/domain/entity"
	domainerrors "nutribalance/internal/domain/errors"
	"nutribalance/internal/infra/localstore"
	"nutribalance/internal/infra/reference"
	mockRepo "nutribalance/internal/mocks/repository"
	"nutribalance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestTracker wires a tracker service against a real file store in a
// temp directory and the built-in reference tables.
func createTestTracker(t *testing.T) usecase.TrackerUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Store.Path = t.TempDir()
	logger := testLogger()

	repo, err := localstore.New(localstore.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	catalog, err := reference.New(reference.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	tracker, err := NewTrackerService(repo, catalog, logger)
	require.NoError(t, err)

	return tracker
}

func TestTrackerService_ProfileDefaultsOnFirstRun(t *testing.T) {
	tracker := createTestTracker(t)

	profile, err := tracker.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultProfile(), profile)
}

func TestTrackerService_UpdateProfile_PartialFields(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	weight := 82.0
	goal := entity.GoalLoss
	updated, err := tracker.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		WeightKg: &weight,
		Goal:     &goal,
	})

	require.NoError(t, err)
	assert.InDelta(t, 82.0, updated.WeightKg, 1e-9)
	assert.Equal(t, entity.GoalLoss, updated.Goal)
	// Untouched fields keep their defaults.
	assert.InDelta(t, 180.0, updated.HeightCm, 1e-9)
	assert.Equal(t, entity.GenderMale, updated.Gender)
}

func TestTrackerService_UpdateProfile_RejectsUnknownEnums(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	badGender := entity.Gender("other")
	_, err := tracker.UpdateProfile(ctx, &usecase.UpdateProfileInput{Gender: &badGender})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	badGoal := entity.Goal("bulk")
	_, err = tracker.UpdateProfile(ctx, &usecase.UpdateProfileInput{Goal: &badGoal})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTrackerService_RecordMeal_MassUnit(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	meal, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{
		Food:     "Pechuga de Pollo",
		Quantity: 150,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pechuga de Pollo (150 100g)", meal.Name)
	assert.Equal(t, 248, meal.Calories)
	assert.InDelta(t, 46.5, meal.Protein, 1e-9)
	assert.InDelta(t, 0.0, meal.Carbs, 1e-9)
	assert.InDelta(t, 5.4, meal.Fats, 1e-9)
	assert.NotEqual(t, uuid.Nil, meal.ID)
	assert.False(t, meal.CreatedAt.IsZero())
}

func TestTrackerService_RecordMeal_UnknownFood(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	_, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Sushi", Quantity: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrFoodNotFound))

	// Nothing was recorded.
	meals, err := tracker.Meals(ctx)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestTrackerService_RecordMeal_NewestFirstAndUniqueIDs(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	for range 50 {
		meal, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Manzana", Quantity: 100})
		require.NoError(t, err)
		assert.False(t, seen[meal.ID], "duplicate meal id under rapid insertion")
		seen[meal.ID] = true
	}

	last, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Avena", Quantity: 50})
	require.NoError(t, err)

	meals, err := tracker.Meals(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 51)
	assert.Equal(t, last.ID, meals[0].ID)
}

func TestTrackerService_AddThenDeleteMealRestoresTotals(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	before, err := tracker.Summary(ctx)
	require.NoError(t, err)

	meal, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Chorizo", Quantity: 100})
	require.NoError(t, err)

	during, err := tracker.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.Consumed.Calories+450, during.Consumed.Calories, 1e-9)

	require.NoError(t, tracker.DeleteMeal(ctx, meal.ID))

	after, err := tracker.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTrackerService_DeleteMeal_UnknownIDIsNoop(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	_, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Plátano", Quantity: 120})
	require.NoError(t, err)

	require.NoError(t, tracker.DeleteMeal(ctx, uuid.New()))

	meals, err := tracker.Meals(ctx)
	require.NoError(t, err)
	assert.Len(t, meals, 1)
}

func TestTrackerService_RecordExercise_BurnFromProfileWeight(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	// Default profile weighs 75 kg; 8.8 * 0.0175 * 75 * 30 = 346.5.
	exercise, err := tracker.RecordExercise(ctx, &usecase.RecordExerciseInput{
		TypeID:      "running",
		DurationMin: 30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Correr", exercise.Name)
	assert.Equal(t, 347, exercise.CaloriesBurned)
}

func TestTrackerService_RecordExercise_UnknownType(t *testing.T) {
	tracker := createTestTracker(t)

	_, err := tracker.RecordExercise(context.Background(), &usecase.RecordExerciseInput{
		TypeID:      "rowing",
		DurationMin: 30,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrExerciseNotFound))
}

func TestTrackerService_Summary_ExerciseRaisesRemaining(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	before, err := tracker.Summary(ctx)
	require.NoError(t, err)

	exercise, err := tracker.RecordExercise(ctx, &usecase.RecordExerciseInput{
		TypeID:      "walking",
		DurationMin: 60,
	})
	require.NoError(t, err)

	after, err := tracker.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, before.Remaining+float64(exercise.CaloriesBurned), after.Remaining, 1e-9)

	require.NoError(t, tracker.DeleteExercise(ctx, exercise.ID))

	restored, err := tracker.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, restored)
}

func TestTrackerService_Summary_RemainingGoesNegative(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	// 10 whole chorizos: 4500 kcal, far beyond the default target.
	for range 10 {
		_, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Chorizo", Quantity: 100})
		require.NoError(t, err)
	}

	totals, err := tracker.Summary(ctx)
	require.NoError(t, err)
	assert.Negative(t, totals.Remaining)
}

func TestTrackerService_ContextSummary(t *testing.T) {
	tracker := createTestTracker(t)

	summary, err := tracker.ContextSummary(context.Background())

	require.NoError(t, err)
	assert.Contains(t, summary, "Weight: 75kg")
	assert.Contains(t, summary, "Goal: maintenance")
	assert.Contains(t, summary, "Consumed: 0kcal")
	assert.Contains(t, summary, "Remaining:")
}

func TestTrackerService_ReferenceReads(t *testing.T) {
	tracker := createTestTracker(t)
	ctx := context.Background()

	foods, err := tracker.SearchFoods(ctx, "arroz")
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	types, err := tracker.ExerciseTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 8)

	levels, err := tracker.ActivityLevels(ctx)
	require.NoError(t, err)
	assert.Len(t, levels, 5)
}

func TestTrackerService_StateSurvivesRestart(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Path = t.TempDir()
	logger := testLogger()

	repo, err := localstore.New(localstore.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	catalog, err := reference.New(reference.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	tracker, err := NewTrackerService(repo, catalog, logger)
	require.NoError(t, err)

	ctx := context.Background()
	meal, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Avena", Quantity: 50})
	require.NoError(t, err)

	// A fresh service over the same store sees the persisted log.
	reborn, err := NewTrackerService(repo, catalog, logger)
	require.NoError(t, err)

	meals, err := reborn.Meals(ctx)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, meal.ID, meals[0].ID)
}

func TestTrackerService_EveryMutationPersists(t *testing.T) {
	logger := testLogger()
	cfg := &config.Config{}
	cfg.Store.Path = t.TempDir()

	catalog, err := reference.New(reference.Params{Config: cfg, Logger: logger})
	require.NoError(t, err)

	repo := new(mockRepo.MockSessionRepository)
	repo.On("LoadProfile", mock.Anything).Return(entity.DefaultProfile(), nil)
	repo.On("LoadMeals", mock.Anything).Return([]*entity.LoggedMeal{}, nil)
	repo.On("LoadExercises", mock.Anything).Return([]*entity.LoggedExercise{}, nil)
	repo.On("SaveProfile", mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveMeals", mock.Anything, mock.Anything).Return(nil)
	repo.On("SaveExercises", mock.Anything, mock.Anything).Return(nil)

	tracker, err := NewTrackerService(repo, catalog, logger)
	require.NoError(t, err)

	ctx := context.Background()
	age := 35
	_, err = tracker.UpdateProfile(ctx, &usecase.UpdateProfileInput{Age: &age})
	require.NoError(t, err)

	meal, err := tracker.RecordMeal(ctx, &usecase.RecordMealInput{Food: "Manzana", Quantity: 100})
	require.NoError(t, err)
	require.NoError(t, tracker.DeleteMeal(ctx, meal.ID))

	_, err = tracker.RecordExercise(ctx, &usecase.RecordExerciseInput{TypeID: "cycling", DurationMin: 45})
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "SaveProfile", 1)
	repo.AssertNumberOfCalls(t, "SaveMeals", 2)
	repo.AssertNumberOfCalls(t, "SaveExercises", 1)
}
