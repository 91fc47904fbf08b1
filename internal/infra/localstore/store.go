// Package localstore persists the session state as three independent JSON
// records on local disk, one file per record, keyed by fixed names. There
// is no schema, no migration and no conflict handling: every save rewrites
// the whole record, and a missing or unreadable record silently falls back
// to its built-in default so the service always starts interactive.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"nutribalance/config"
	"nutribalance/internal/domain/entity"
	"nutribalance/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fixed record names, mirroring the three persisted entities.
const (
	profileRecord   = "profile.json"
	mealsRecord     = "meals.json"
	exercisesRecord = "exercises.json"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type store struct {
	dir    string
	logger *slog.Logger
}

// New creates the file-backed session repository, creating the state
// directory on first run.
func New(params Params) (repository.SessionRepository, error) {
	dir := params.Config.Store.Path
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	return &store{
		dir:    dir,
		logger: params.Logger,
	}, nil
}

// LoadProfile retrieves the stored profile, falling back to the default
// profile when the record is absent or malformed.
func (s *store) LoadProfile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if !s.readRecord(profileRecord, &profile) {
		return entity.DefaultProfile(), nil
	}

	return &profile, nil
}

// SaveProfile durably replaces the profile record.
func (s *store) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	return s.writeRecord(profileRecord, profile)
}

// LoadMeals retrieves the meal log, falling back to an empty log.
func (s *store) LoadMeals(ctx context.Context) ([]*entity.LoggedMeal, error) {
	var meals []*entity.LoggedMeal
	if !s.readRecord(mealsRecord, &meals) {
		return []*entity.LoggedMeal{}, nil
	}

	return meals, nil
}

// SaveMeals durably replaces the meal-log record.
func (s *store) SaveMeals(ctx context.Context, meals []*entity.LoggedMeal) error {
	return s.writeRecord(mealsRecord, meals)
}

// LoadExercises retrieves the exercise log, falling back to an empty log.
func (s *store) LoadExercises(ctx context.Context) ([]*entity.LoggedExercise, error) {
	var exercises []*entity.LoggedExercise
	if !s.readRecord(exercisesRecord, &exercises) {
		return []*entity.LoggedExercise{}, nil
	}

	return exercises, nil
}

// SaveExercises durably replaces the exercise-log record.
func (s *store) SaveExercises(ctx context.Context, exercises []*entity.LoggedExercise) error {
	return s.writeRecord(exercisesRecord, exercises)
}

// readRecord reports whether the record was present and decodable. A
// malformed record is logged and treated as absent.
func (s *store) readRecord(name string, out any) bool {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read state record", "record", name, "error", err)
		}

		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("state record is malformed, using defaults", "record", name, "error", err)

		return false
	}

	return true
}

// writeRecord replaces a record atomically: write to a temp file in the
// same directory, then rename over the target.
func (s *store) writeRecord(name string, in any) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode state record %s", name)
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp record file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to write state record %s", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to close state record %s", name)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to replace state record %s", name)
	}

	return nil
}
