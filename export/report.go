package export

import (
	"fmt"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/mealplan/mealplan"
)

const (
	ReportSheetNameSummary  = "Summary"
	ReportSheetNameMealPlan = "Meal Plan"
)

// Report renders a meal plan as a two-sheet xlsx workbook: a summary of
// the inputs and daily totals, and the per-meal table.
type Report struct {
	plan *mealplan.Plan
}

func NewReport(plan *mealplan.Plan) Report {
	return Report{plan: plan}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addMealPlanSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameSummary)
	if err != nil {
		return err
	}

	components := []func(sh *xlsx.Sheet){
		r.addProfileSummary,
		r.addEnergySummary,
		r.addFoodGroupSummary,
	}
	for _, fn := range components {
		fn(sh)
	}

	return nil
}

func (r Report) addProfileSummary(sh *xlsx.Sheet) {
	profile := r.plan.Profile

	sh.AddRow().AddCell().SetValue("PATIENT PROFILE")
	addKeyValue(sh, "Age (years)", strconv.FormatFloat(profile.AgeYears, 'f', 1, 64))
	addKeyValue(sh, "Sex", string(profile.Sex))
	addKeyValue(sh, "Weight (kg)", strconv.FormatFloat(profile.WeightKg, 'f', 1, 64))
	addKeyValue(sh, "Height (cm)", strconv.FormatFloat(profile.HeightCm, 'f', 1, 64))
	addKeyValue(sh, "Activity level", string(profile.ActivityLevel))
	addKeyValue(sh, "CHO percent of energy", strconv.Itoa(profile.CarbPercent))
	sh.AddRow()
}

func (r Report) addEnergySummary(sh *xlsx.Sheet) {
	sh.AddRow().AddCell().SetValue("DAILY TARGETS")
	addKeyValue(sh, "Total energy (kcal)", strconv.Itoa(int(mealplan.Round0(r.plan.Energy.TotalKcal))))
	addKeyValue(sh, "Total CHO (g)", Decimal1(r.plan.Targets.TotalCarbGrams))
	addKeyValue(sh, "Total exchanges", Decimal1(r.plan.Targets.TotalExchanges))
	addKeyValue(sh, "Starchy exchanges", Decimal1(r.plan.Starchy.Exchanges))
	sh.AddRow()
}

func (r Report) addFoodGroupSummary(sh *xlsx.Sheet) {
	sh.AddRow().AddCell().SetValue("FIXED FOOD GROUPS")
	for _, group := range r.plan.FoodGroups {
		currentRow := sh.AddRow()
		currentRow.AddCell().SetValue(group.Name)
		currentRow.AddCell().SetValue(fmt.Sprintf("%d %s", group.Servings, group.Unit))
		currentRow.AddCell().SetValue(Decimal1(group.CarbGrams) + " g CHO")
	}
}

func (r Report) addMealPlanSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameMealPlan)
	if err != nil {
		return err
	}

	currentRow := sh.AddRow()
	for _, header := range MealTableHeader {
		currentRow.AddCell().SetValue(header)
	}

	for _, meal := range r.plan.Meals {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(meal.Meal)
		currentRow.AddCell().SetValue(Decimal1(meal.CarbGrams))
		currentRow.AddCell().SetValue(Decimal1(meal.Exchanges))
	}

	return nil
}

func addKeyValue(sh *xlsx.Sheet, key, value string) {
	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue(key)
	currentRow.AddCell().SetValue(value)
}
