// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Gender is the biological sex used by the Mifflin-St Jeor equation.
type Gender string

const (
	// GenderMale selects the male BMR offset (+5).
	GenderMale Gender = "male"
	// GenderFemale selects the female BMR offset (-161).
	GenderFemale Gender = "female"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// Goal represents the user's weight objective, which shifts the daily
// calorie target by a fixed amount.
type Goal string

const (
	// GoalLoss subtracts 500 kcal from the daily target.
	GoalLoss Goal = "loss"
	// GoalMaintenance leaves the daily target at TDEE.
	GoalMaintenance Goal = "maintenance"
	// GoalGain adds 500 kcal to the daily target.
	GoalGain Goal = "gain"
)

// String returns the string representation of the Goal.
func (g Goal) String() string {
	return string(g)
}

// IsValid checks if the Goal is a valid value.
func (g Goal) IsValid() bool {
	switch g {
	case GoalLoss, GoalMaintenance, GoalGain:
		return true
	default:
		return false
	}
}

// Profile is the single body-metrics record the whole system derives its
// energy targets from. Exactly one profile exists at any time; it is
// replaced field-by-field and never deleted.
type Profile struct {
	WeightKg      float64 `json:"weight_kg"`      // Body weight in kilograms.
	HeightCm      float64 `json:"height_cm"`      // Height in centimeters.
	Age           int     `json:"age"`            // Age in whole years.
	Gender        Gender  `json:"gender"`         // male or female.
	ActivityLevel float64 `json:"activity_level"` // TDEE multiplier, one of the configured activity factors.
	Goal          Goal    `json:"goal"`           // loss, maintenance or gain.
}

// DefaultProfile returns the profile used on first run, before the user has
// saved anything.
func DefaultProfile() *Profile {
	return &Profile{
		WeightKg:      75,
		HeightCm:      180,
		Age:           28,
		Gender:        GenderMale,
		ActivityLevel: 1.55,
		Goal:          GoalMaintenance,
	}
}
