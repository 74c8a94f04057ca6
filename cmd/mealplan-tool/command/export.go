package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/mealplan/export"
	"github.com/tidepool-org/mealplan/mealplan"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the per-meal table as CSV",
	Long:  "The export command computes a meal plan and writes the per-meal carbohydrate table to a CSV file",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportPlan) },
}

func exportPlan(service mealplan.Service) error {
	plan, err := service.Calculate(context.TODO(), profileFromFlags())
	if err != nil {
		return err
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, plan); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", exportOutput)
	return nil
}

func init() {
	profileFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "mealplan.csv", "Output file")
	rootCmd.AddCommand(exportCmd)
}
