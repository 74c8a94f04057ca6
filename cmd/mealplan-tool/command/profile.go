package command

import (
	"github.com/spf13/cobra"

	"github.com/tidepool-org/mealplan/mealplan"
)

var (
	ageYears      float64
	sex           string
	weightKg      float64
	heightCm      float64
	activityLevel string
	carbPercent   int
)

// profileFlags registers the patient profile flags on a command.
// Defaults match the documented demonstration preset.
func profileFlags(cmd *cobra.Command) {
	example := mealplan.ExampleProfile()
	cmd.Flags().Float64Var(&ageYears, "age", example.AgeYears, "Age in years")
	cmd.Flags().StringVar(&sex, "sex", string(example.Sex), "Sex (female|male)")
	cmd.Flags().Float64Var(&weightKg, "weight", example.WeightKg, "Weight in kilograms")
	cmd.Flags().Float64Var(&heightCm, "height", example.HeightCm, "Height in centimeters")
	cmd.Flags().StringVar(&activityLevel, "activity", string(example.ActivityLevel), "Activity level (sedentary|lowActive|active|veryActive)")
	cmd.Flags().IntVar(&carbPercent, "carb-percent", example.CarbPercent, "Percent of energy from carbohydrate")
}

func profileFromFlags() mealplan.PatientProfile {
	return mealplan.PatientProfile{
		AgeYears:      ageYears,
		Sex:           mealplan.Sex(sex),
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		ActivityLevel: mealplan.ActivityLevel(activityLevel),
		CarbPercent:   carbPercent,
	}
}
