package entity

// FoodUnit is the serving unit a food reference entry is expressed in.
type FoodUnit string

const (
	// FoodUnitPiece is a count-based unit: quantity means "number of pieces".
	FoodUnitPiece FoodUnit = "unidad"
	// FoodUnitPer100g is a mass-based unit: nutrition values are per 100 grams
	// and quantity means grams.
	FoodUnitPer100g FoodUnit = "100g"
)

// String returns the string representation of the FoodUnit.
func (u FoodUnit) String() string {
	return string(u)
}

// IsValid checks if the FoodUnit is a valid value.
func (u FoodUnit) IsValid() bool {
	switch u {
	case FoodUnitPiece, FoodUnitPer100g:
		return true
	default:
		return false
	}
}

// FoodReferenceEntry is one immutable row of the food table: nutrition
// content per serving unit.
type FoodReferenceEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Calories float64  `json:"calories" yaml:"calories"` // kcal per unit.
	Protein  float64  `json:"protein" yaml:"protein"`   // Grams per unit.
	Carbs    float64  `json:"carbs" yaml:"carbs"`       // Grams per unit.
	Fats     float64  `json:"fats" yaml:"fats"`         // Grams per unit.
	Unit     FoodUnit `json:"unit" yaml:"unit"`
}

// ExerciseReferenceEntry is one immutable row of the exercise table.
type ExerciseReferenceEntry struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	MET  float64 `json:"met" yaml:"met"` // Metabolic equivalent of task, relative to resting metabolism.
}

// ActivityLevel is one selectable TDEE multiplier with its display label.
type ActivityLevel struct {
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Label      string  `json:"label" yaml:"label"`
}
