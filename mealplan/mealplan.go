package mealplan

import (
	"context"
	"errors"
	"slices"
)

var ErrInvalidProfile = errors.New("invalid patient profile")

type Service interface {
	Calculate(ctx context.Context, profile PatientProfile) (*Plan, error)
	CalculateBatch(ctx context.Context, profiles []PatientProfile) ([]*Plan, error)
	ExamplePlan(ctx context.Context) (*Plan, error)
}

type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLowActive  ActivityLevel = "lowActive"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

// PAL multipliers applied to the basal estimate.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.4,
	ActivityLowActive:  1.6,
	ActivityActive:     1.8,
	ActivityVeryActive: 2.0,
}

func (l ActivityLevel) Multiplier() float64 {
	return activityMultipliers[l]
}

// PatientProfile is the input to a single calculation. Height is recorded
// for clinical record-keeping but no formula currently uses it.
type PatientProfile struct {
	AgeYears      float64       `json:"ageYears"`
	Sex           Sex           `json:"sex"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	CarbPercent   int           `json:"carbPercent"`
}

type EnergyEstimate struct {
	BasalKcal float64 `json:"basalKcal"`
	TotalKcal float64 `json:"totalKcal"`
}

type CarbTargets struct {
	TotalCarbGrams float64 `json:"totalCarbGrams"`
	TotalExchanges float64 `json:"totalExchanges"`
}

type MealAllocation struct {
	Meal      string  `json:"meal"`
	Fraction  float64 `json:"fraction"`
	CarbGrams float64 `json:"carbGrams"`
	Exchanges float64 `json:"exchanges"`
}

type FoodGroupServing struct {
	Name      string  `json:"name"`
	Servings  int     `json:"servings"`
	Unit      string  `json:"unit"`
	CarbGrams float64 `json:"carbGrams"`
}

type StarchyAllowance struct {
	RemainingCarbGrams float64 `json:"remainingCarbGrams"`
	Exchanges          float64 `json:"exchanges"`
}

// Plan holds every derived value at full float64 precision. Rounding to
// presentation precision happens at the DTO/export layer, never here, so
// the meal breakdown always sums back to the stored total.
type Plan struct {
	Id         string             `json:"id"`
	Profile    PatientProfile     `json:"profile"`
	Energy     EnergyEstimate     `json:"energy"`
	Targets    CarbTargets        `json:"targets"`
	Meals      []MealAllocation   `json:"meals"`
	FoodGroups []FoodGroupServing `json:"foodGroups"`
	Starchy    StarchyAllowance   `json:"starchy"`
}

// ExampleProfile is the fixed demonstration preset.
func ExampleProfile() PatientProfile {
	return PatientProfile{
		AgeYears:      7,
		Sex:           SexFemale,
		WeightKg:      22,
		HeightCm:      120,
		ActivityLevel: ActivityLowActive,
		CarbPercent:   50,
	}
}

func Sexes() []Sex {
	return []Sex{SexFemale, SexMale}
}

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityLowActive, ActivityActive, ActivityVeryActive}
}

type mealFraction struct {
	Meal     string
	Fraction float64
}

// Fixed six-meal split. Fractions sum to exactly 1.0.
var mealSplit = []mealFraction{
	{"Breakfast", 0.20},
	{"Mid-morning", 0.10},
	{"Lunch", 0.25},
	{"Mid-afternoon", 0.10},
	{"Dinner", 0.25},
	{"After-dinner", 0.10},
}

// Fixed food-group servings prescribed regardless of patient profile.
var foodGroups = []FoodGroupServing{
	{Name: "Fruit", Servings: 3, Unit: "exchanges", CarbGrams: 45},
	{Name: "Cooked vegetable", Servings: 2, Unit: "servings", CarbGrams: 10},
	{Name: "Dairy", Servings: 2, Unit: "servings", CarbGrams: 24},
}

// FixedFoodGroups returns a copy of the constant food-group table.
func FixedFoodGroups() []FoodGroupServing {
	return slices.Clone(foodGroups)
}

// FixedFoodGroupGrams is the carbohydrate contribution of the fixed
// food groups (79 g for the current table).
func FixedFoodGroupGrams() float64 {
	var total float64
	for _, g := range foodGroups {
		total += g.CarbGrams
	}
	return total
}
