package entity

// ConsumedTotals is the fold of all logged meals.
type ConsumedTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MacroTotals is the derived energy-balance snapshot. It is never persisted:
// it is recomputed from (profile, meal log, exercise log) on every read, so
// it cannot go stale.
type MacroTotals struct {
	TargetCalories float64        `json:"target_calories"` // TDEE adjusted by goal.
	Consumed       ConsumedTotals `json:"consumed"`
	BurnedExtra    float64        `json:"burned_extra"` // Sum of exercise calories.
	Remaining      float64        `json:"remaining"`    // May be negative; a deficit is a display concern, not an error.
}
