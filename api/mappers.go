package api

import (
	"github.com/tidepool-org/mealplan/mealplan"
	"github.com/tidepool-org/mealplan/pointer"
)

// NewPatientProfile maps the request body to a domain profile, applying
// the documented default for every omitted field. Range validation is
// performed by the service, not here.
func NewPatientProfile(dto PatientProfile) mealplan.PatientProfile {
	example := mealplan.ExampleProfile()
	return mealplan.PatientProfile{
		AgeYears:      pointer.Or(dto.AgeYears, example.AgeYears),
		Sex:           mealplan.Sex(pointer.Or(dto.Sex, string(example.Sex))),
		WeightKg:      pointer.Or(dto.WeightKg, example.WeightKg),
		HeightCm:      pointer.Or(dto.HeightCm, example.HeightCm),
		ActivityLevel: mealplan.ActivityLevel(pointer.Or(dto.ActivityLevel, string(example.ActivityLevel))),
		CarbPercent:   pointer.Or(dto.CarbPercent, example.CarbPercent),
	}
}

func NewMealPlanDto(plan *mealplan.Plan) MealPlan {
	meals := make([]MealRow, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		meals = append(meals, MealRow{
			Meal:      meal.Meal,
			CarbGrams: mealplan.Round1(meal.CarbGrams),
			Exchanges: mealplan.Round1(meal.Exchanges),
		})
	}

	groups := make([]FoodGroup, 0, len(plan.FoodGroups))
	for _, group := range plan.FoodGroups {
		groups = append(groups, FoodGroup{
			Name:      group.Name,
			Servings:  group.Servings,
			Unit:      group.Unit,
			CarbGrams: group.CarbGrams,
		})
	}

	return MealPlan{
		Id: plan.Id,
		Profile: Profile{
			AgeYears:      plan.Profile.AgeYears,
			Sex:           string(plan.Profile.Sex),
			WeightKg:      plan.Profile.WeightKg,
			HeightCm:      plan.Profile.HeightCm,
			ActivityLevel: string(plan.Profile.ActivityLevel),
			CarbPercent:   plan.Profile.CarbPercent,
		},
		Summary: Summary{
			BasalEnergyKcal:  int(mealplan.Round0(plan.Energy.BasalKcal)),
			TotalEnergyKcal:  int(mealplan.Round0(plan.Energy.TotalKcal)),
			TotalCarbGrams:   mealplan.Round1(plan.Targets.TotalCarbGrams),
			TotalExchanges:   mealplan.Round1(plan.Targets.TotalExchanges),
			StarchyExchanges: mealplan.Round1(plan.Starchy.Exchanges),
		},
		Meals:      meals,
		FoodGroups: groups,
	}
}
