// Package energy implements the energy-balance arithmetic: basal metabolic
// rate, daily calorie targets, serving scaling and MET-based exercise burn.
// Everything here is a pure function of its inputs; malformed numeric input
// (NaN) propagates rather than being rejected, callers constrain values
// upstream.
//
// All rounding uses math.Round, i.e. round half away from zero.
package energy

import (
	"math"

	"nutribalance/internal/domain/entity"
)

const (
	maleBMROffset   = 5
	femaleBMROffset = -161

	// goalAdjustment is the fixed daily kcal shift applied for a loss or
	// gain goal.
	goalAdjustment = 500

	// metKcalFactor converts MET * kg * minutes into kilocalories.
	// 1 MET*kg*min is roughly 1/60 kcal; 0.0175 = 1.05/60 absorbs the
	// standard calibration factor.
	metKcalFactor = 0.0175

	// massUnitGrams is the reference mass for FoodUnitPer100g entries.
	massUnitGrams = 100
)

// BMR estimates the basal metabolic rate with the Mifflin-St Jeor equation.
func BMR(profile *entity.Profile) float64 {
	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Gender == entity.GenderMale {
		return bmr + maleBMROffset
	}

	return bmr + femaleBMROffset
}

// TargetCalories is the BMR scaled by the activity multiplier and shifted
// by the goal: -500 for loss, +500 for gain, unchanged for maintenance.
func TargetCalories(profile *entity.Profile) float64 {
	target := BMR(profile) * profile.ActivityLevel

	switch profile.Goal {
	case entity.GoalLoss:
		target -= goalAdjustment
	case entity.GoalGain:
		target += goalAdjustment
	case entity.GoalMaintenance:
	}

	return target
}

// ServingFactor converts a user-entered quantity into a multiplier for the
// reference entry's per-unit values: the raw count for piece units, grams
// divided by 100 for mass units.
func ServingFactor(unit entity.FoodUnit, quantity float64) float64 {
	if unit == entity.FoodUnitPer100g {
		return quantity / massUnitGrams
	}

	return quantity
}

// ScaleServing derives the fixed nutrition values recorded on a meal entry:
// calories rounded to the nearest kcal, macros to one decimal gram.
func ScaleServing(food *entity.FoodReferenceEntry, quantity float64) (calories int, protein, carbs, fats float64) {
	factor := ServingFactor(food.Unit, quantity)

	calories = int(math.Round(food.Calories * factor))
	protein = round1(food.Protein * factor)
	carbs = round1(food.Carbs * factor)
	fats = round1(food.Fats * factor)

	return calories, protein, carbs, fats
}

// ExerciseBurn estimates the kilocalories burned by a session using the
// standard MET approximation.
func ExerciseBurn(met, weightKg, durationMin float64) int {
	return int(math.Round(met * metKcalFactor * weightKg * durationMin))
}

// Totals recomputes the full energy-balance snapshot. The folds are order
// independent and empty logs yield zeros, so a fresh install reports a
// remaining balance equal to the target.
func Totals(profile *entity.Profile, meals []*entity.LoggedMeal, exercises []*entity.LoggedExercise) *entity.MacroTotals {
	target := TargetCalories(profile)

	var consumed entity.ConsumedTotals
	for _, meal := range meals {
		consumed.Calories += float64(meal.Calories)
		consumed.Protein += meal.Protein
		consumed.Carbs += meal.Carbs
		consumed.Fats += meal.Fats
	}

	var burned float64
	for _, ex := range exercises {
		burned += float64(ex.CaloriesBurned)
	}

	return &entity.MacroTotals{
		TargetCalories: target,
		Consumed:       consumed,
		BurnedExtra:    burned,
		// Never clamped: a negative remainder signals a calorie deficit.
		Remaining: target + burned - consumed.Calories,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
