// Package reference provides the static lookup tables: the food database,
// the exercise MET table and the selectable activity levels. The built-in
// tables can be replaced wholesale by a YAML file; either way they are
// loaded once at startup and never change at runtime.
package reference

import (
	"log/slog"
	"strings"

	"nutribalance/config"
	"nutribalance/internal/domain/entity"
	"nutribalance/internal/domain/repository"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type catalog struct {
	foods          []*entity.FoodReferenceEntry
	exercises      []*entity.ExerciseReferenceEntry
	activityLevels []*entity.ActivityLevel
}

// tableFile is the on-disk shape of a reference override file.
type tableFile struct {
	Foods          []*entity.FoodReferenceEntry     `koanf:"foods"`
	Exercises      []*entity.ExerciseReferenceEntry `koanf:"exercises"`
	ActivityLevels []*entity.ActivityLevel          `koanf:"activityLevels"`
}

// New builds the reference catalog from the built-in tables, or from the
// configured YAML file when one is set.
func New(params Params) (repository.ReferenceCatalog, error) {
	if params.Config.Reference == nil || strings.TrimSpace(params.Config.Reference.Path) == "" {
		return &catalog{
			foods:          defaultFoods(),
			exercises:      defaultExercises(),
			activityLevels: defaultActivityLevels(),
		}, nil
	}

	path := params.Config.Reference.Path
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read reference tables %s failed", path)
	}

	var tables tableFile
	if err := koanfInstance.Unmarshal("", &tables); err != nil {
		return nil, errors.Wrapf(err, "unmarshal reference tables %s failed", path)
	}
	if len(tables.Foods) == 0 || len(tables.Exercises) == 0 || len(tables.ActivityLevels) == 0 {
		return nil, errors.Errorf("reference tables %s must define foods, exercises and activityLevels", path)
	}

	params.Logger.Info("loaded reference tables",
		"path", path,
		"foods", len(tables.Foods),
		"exercises", len(tables.Exercises),
	)

	return &catalog{
		foods:          tables.Foods,
		exercises:      tables.Exercises,
		activityLevels: tables.ActivityLevels,
	}, nil
}

// Foods returns every food reference entry.
func (c *catalog) Foods() []*entity.FoodReferenceEntry {
	return c.foods
}

// SearchFoods returns the entries whose name contains the query,
// case-insensitively.
func (c *catalog) SearchFoods(query string) []*entity.FoodReferenceEntry {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return c.foods
	}

	matches := make([]*entity.FoodReferenceEntry, 0, len(c.foods))
	for _, food := range c.foods {
		if strings.Contains(strings.ToLower(food.Name), needle) {
			matches = append(matches, food)
		}
	}

	return matches
}

// FindFood retrieves a food entry by exact name, case-insensitively.
func (c *catalog) FindFood(name string) (*entity.FoodReferenceEntry, error) {
	for _, food := range c.foods {
		if strings.EqualFold(food.Name, name) {
			return food, nil
		}
	}

	return nil, errors.Wrapf(repository.ErrFoodNotFound, "food %q", name)
}

// Exercises returns every exercise reference entry.
func (c *catalog) Exercises() []*entity.ExerciseReferenceEntry {
	return c.exercises
}

// FindExercise retrieves an exercise entry by its identifier.
func (c *catalog) FindExercise(id string) (*entity.ExerciseReferenceEntry, error) {
	for _, ex := range c.exercises {
		if ex.ID == id {
			return ex, nil
		}
	}

	return nil, errors.Wrapf(repository.ErrExerciseNotFound, "exercise %q", id)
}

// ActivityLevels returns the selectable TDEE multipliers.
func (c *catalog) ActivityLevels() []*entity.ActivityLevel {
	return c.activityLevels
}
