package mealplan

import "math"

const (
	// KcalPerGramCarb converts energy to carbohydrate mass.
	KcalPerGramCarb = 4.0
	// GramsPerExchange is the ADA exchange size.
	GramsPerExchange = 15.0
)

type basalFormula struct {
	Slope     float64
	Intercept float64
}

// Schofield weight-based basal equations for ages 3-10, kcal/day.
// The accepted age domain extends to 18 but the source clinical tool
// defines no adolescent equations; older patients intentionally use
// the same formula for their sex.
var basalBySex = map[Sex]basalFormula{
	SexFemale: {Slope: 22.5, Intercept: 499},
	SexMale:   {Slope: 22.7, Intercept: 495},
}

// Calculate derives the full daily meal plan from a validated profile.
// Pure and deterministic; the caller is responsible for validation and
// for stamping an id on the result.
func Calculate(profile PatientProfile) Plan {
	formula := basalBySex[profile.Sex]
	basal := formula.Slope*profile.WeightKg + formula.Intercept
	totalKcal := basal * profile.ActivityLevel.Multiplier()

	totalCarbGrams := totalKcal * float64(profile.CarbPercent) / 100 / KcalPerGramCarb
	totalExchanges := totalCarbGrams / GramsPerExchange

	meals := make([]MealAllocation, 0, len(mealSplit))
	for _, m := range mealSplit {
		grams := totalCarbGrams * m.Fraction
		meals = append(meals, MealAllocation{
			Meal:      m.Meal,
			Fraction:  m.Fraction,
			CarbGrams: grams,
			Exchanges: grams / GramsPerExchange,
		})
	}

	remaining := math.Max(totalCarbGrams-FixedFoodGroupGrams(), 0)

	return Plan{
		Profile: profile,
		Energy: EnergyEstimate{
			BasalKcal: basal,
			TotalKcal: totalKcal,
		},
		Targets: CarbTargets{
			TotalCarbGrams: totalCarbGrams,
			TotalExchanges: totalExchanges,
		},
		Meals:      meals,
		FoodGroups: FixedFoodGroups(),
		Starchy: StarchyAllowance{
			RemainingCarbGrams: remaining,
			Exchanges:          remaining / GramsPerExchange,
		},
	}
}

// Round1 rounds a derived value to the single decimal used for display
// and export. Stored plan values keep full precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round0 rounds to a whole number; total energy is displayed as whole kcal.
func Round0(v float64) float64 {
	return math.Round(v)
}
