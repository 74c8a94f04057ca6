package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/mealplan/export"
	"github.com/tidepool-org/mealplan/mealplan"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the meal plan report workbook",
	Long:  "The report command computes a meal plan and writes the summary and meal table as an xlsx workbook",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(writeReport) },
}

func writeReport(service mealplan.Service) error {
	plan, err := service.Calculate(context.TODO(), profileFromFlags())
	if err != nil {
		return err
	}

	report, err := export.NewReport(plan).Generate()
	if err != nil {
		return err
	}

	if err := report.Save(reportOutput); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", reportOutput)
	return nil
}

func init() {
	profileFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "mealplan.xlsx", "Output file")
	rootCmd.AddCommand(reportCmd)
}
