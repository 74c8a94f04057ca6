package mealplan

import "fmt"

// Input domains accepted at the service boundary. The calculator itself
// assumes these have been enforced.
const (
	MinAgeYears = 3.0
	MaxAgeYears = 18.0
	MinWeightKg = 8.0
	MaxWeightKg = 120.0
	MinHeightCm = 50.0
	MaxHeightCm = 200.0
	MinCarbPct  = 40
	MaxCarbPct  = 60
)

// Validate checks every field against its accepted domain and reports the
// first violation, wrapped in ErrInvalidProfile. The range checks are
// written as negated conjunctions so NaN and ±Inf fail them.
func (p PatientProfile) Validate() error {
	if !(p.AgeYears >= MinAgeYears && p.AgeYears <= MaxAgeYears) {
		return fmt.Errorf("%w: age %.1f years is outside [%.0f, %.0f]", ErrInvalidProfile, p.AgeYears, MinAgeYears, MaxAgeYears)
	}
	if _, ok := basalBySex[p.Sex]; !ok {
		return fmt.Errorf("%w: unknown sex %q", ErrInvalidProfile, p.Sex)
	}
	if !(p.WeightKg >= MinWeightKg && p.WeightKg <= MaxWeightKg) {
		return fmt.Errorf("%w: weight %.1f kg is outside [%.0f, %.0f]", ErrInvalidProfile, p.WeightKg, MinWeightKg, MaxWeightKg)
	}
	if !(p.HeightCm >= MinHeightCm && p.HeightCm <= MaxHeightCm) {
		return fmt.Errorf("%w: height %.1f cm is outside [%.0f, %.0f]", ErrInvalidProfile, p.HeightCm, MinHeightCm, MaxHeightCm)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}
	if p.CarbPercent < MinCarbPct || p.CarbPercent > MaxCarbPct {
		return fmt.Errorf("%w: carbohydrate percent %d is outside [%d, %d]", ErrInvalidProfile, p.CarbPercent, MinCarbPct, MaxCarbPct)
	}
	return nil
}
