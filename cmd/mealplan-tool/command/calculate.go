package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/mealplan/export"
	"github.com/tidepool-org/mealplan/mealplan"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate a daily carbohydrate meal plan",
	Long:  "The calculate command computes the daily energy and carbohydrate targets for a patient profile and prints the meal breakdown",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(calculatePlan) },
}

func calculatePlan(service mealplan.Service) error {
	plan, err := service.Calculate(context.TODO(), profileFromFlags())
	if err != nil {
		return err
	}

	printPlan(plan)
	return nil
}

func printPlan(plan *mealplan.Plan) {
	fmt.Printf("Basal energy:      %v kcal\n", int(mealplan.Round0(plan.Energy.BasalKcal)))
	fmt.Printf("Total energy:      %v kcal\n", int(mealplan.Round0(plan.Energy.TotalKcal)))
	fmt.Printf("Total CHO:         %s g\n", export.Decimal1(plan.Targets.TotalCarbGrams))
	fmt.Printf("Total exchanges:   %s\n", export.Decimal1(plan.Targets.TotalExchanges))
	fmt.Printf("Starchy exchanges: %s\n", export.Decimal1(plan.Starchy.Exchanges))
	fmt.Println()

	fmt.Printf("%-14s %8s %10s\n", "Meal", "CHO (g)", "Exchanges")
	for _, meal := range plan.Meals {
		fmt.Printf("%-14s %8s %10s\n", meal.Meal, export.Decimal1(meal.CarbGrams), export.Decimal1(meal.Exchanges))
	}
	fmt.Println()

	fmt.Printf("%-18s %-12s %s\n", "Food group", "Servings", "CHO (g)")
	for _, group := range plan.FoodGroups {
		fmt.Printf("%-18s %-12s %s\n", group.Name, fmt.Sprintf("%d %s", group.Servings, group.Unit), export.Decimal1(group.CarbGrams))
	}
}

func init() {
	profileFlags(calculateCmd)
	rootCmd.AddCommand(calculateCmd)
}
