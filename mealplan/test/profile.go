package test

import (
	"github.com/tidepool-org/mealplan/mealplan"
	"github.com/tidepool-org/mealplan/test"
)

// RandomProfile returns a profile with every field inside its accepted domain.
func RandomProfile() mealplan.PatientProfile {
	return mealplan.PatientProfile{
		AgeYears:      test.Faker.Float64(1, int(mealplan.MinAgeYears), int(mealplan.MaxAgeYears)),
		Sex:           RandomSex(),
		WeightKg:      test.Faker.Float64(1, int(mealplan.MinWeightKg), int(mealplan.MaxWeightKg)),
		HeightCm:      test.Faker.Float64(1, int(mealplan.MinHeightCm), int(mealplan.MaxHeightCm)),
		ActivityLevel: RandomActivityLevel(),
		CarbPercent:   test.Faker.IntBetween(mealplan.MinCarbPct, mealplan.MaxCarbPct),
	}
}

func RandomSex() mealplan.Sex {
	sexes := mealplan.Sexes()
	return sexes[test.Rand.Intn(len(sexes))]
}

func RandomActivityLevel() mealplan.ActivityLevel {
	levels := mealplan.ActivityLevels()
	return levels[test.Rand.Intn(len(levels))]
}
