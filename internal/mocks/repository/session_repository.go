// Package repository provides testify mocks for the persistence
// interfaces.
package repository

import (
	"context"

	"nutribalance/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a testify mock of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) LoadProfile(ctx context.Context) (*entity.Profile, error) {
	args := m.Called(ctx)

	var profile *entity.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*entity.Profile)
	}

	return profile, args.Error(1)
}

func (m *MockSessionRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockSessionRepository) LoadMeals(ctx context.Context) ([]*entity.LoggedMeal, error) {
	args := m.Called(ctx)

	var meals []*entity.LoggedMeal
	if args.Get(0) != nil {
		meals = args.Get(0).([]*entity.LoggedMeal)
	}

	return meals, args.Error(1)
}

func (m *MockSessionRepository) SaveMeals(ctx context.Context, meals []*entity.LoggedMeal) error {
	return m.Called(ctx, meals).Error(0)
}

func (m *MockSessionRepository) LoadExercises(ctx context.Context) ([]*entity.LoggedExercise, error) {
	args := m.Called(ctx)

	var exercises []*entity.LoggedExercise
	if args.Get(0) != nil {
		exercises = args.Get(0).([]*entity.LoggedExercise)
	}

	return exercises, args.Error(1)
}

func (m *MockSessionRepository) SaveExercises(ctx context.Context, exercises []*entity.LoggedExercise) error {
	return m.Called(ctx, exercises).Error(0)
}
