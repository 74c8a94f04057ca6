package api

// PatientProfile is the request body accepted by the calculation
// endpoints. Omitted fields take the documented defaults.
type PatientProfile struct {
	AgeYears      *float64 `json:"ageYears,omitempty"`
	Sex           *string  `json:"sex,omitempty"`
	WeightKg      *float64 `json:"weightKg,omitempty"`
	HeightCm      *float64 `json:"heightCm,omitempty"`
	ActivityLevel *string  `json:"activityLevel,omitempty"`
	CarbPercent   *int     `json:"carbPercent,omitempty"`
}

// MealPlan is the response body. All values are rounded to display
// precision; the exact values live only in the domain plan.
type MealPlan struct {
	Id         string      `json:"id"`
	Profile    Profile     `json:"profile"`
	Summary    Summary     `json:"summary"`
	Meals      []MealRow   `json:"meals"`
	FoodGroups []FoodGroup `json:"foodGroups"`
}

type Profile struct {
	AgeYears      float64 `json:"ageYears"`
	Sex           string  `json:"sex"`
	WeightKg      float64 `json:"weightKg"`
	HeightCm      float64 `json:"heightCm"`
	ActivityLevel string  `json:"activityLevel"`
	CarbPercent   int     `json:"carbPercent"`
}

type Summary struct {
	BasalEnergyKcal  int     `json:"basalEnergyKcal"`
	TotalEnergyKcal  int     `json:"totalEnergyKcal"`
	TotalCarbGrams   float64 `json:"totalCarbGrams"`
	TotalExchanges   float64 `json:"totalExchanges"`
	StarchyExchanges float64 `json:"starchyExchanges"`
}

type MealRow struct {
	Meal      string  `json:"meal"`
	CarbGrams float64 `json:"carbGrams"`
	Exchanges float64 `json:"exchanges"`
}

type FoodGroup struct {
	Name      string  `json:"name"`
	Servings  int     `json:"servings"`
	Unit      string  `json:"unit"`
	CarbGrams float64 `json:"carbGrams"`
}

type MealPlanBatch struct {
	Profiles []PatientProfile `json:"profiles"`
}
