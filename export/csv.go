package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tidepool-org/mealplan/mealplan"
)

// MealTableHeader is the header row of the exported per-meal table.
var MealTableHeader = []string{"Meal", "CHO (g)", "Exchanges"}

// WriteCSV serializes the per-meal table as one header row plus one row
// per meal, in the fixed meal order. Values are formatted with the same
// one-decimal rounding the display tables use, so the artifact round-trips
// exactly to what the client rendered.
func WriteCSV(w io.Writer, plan *mealplan.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MealTableHeader); err != nil {
		return errors.Wrap(err, "error writing meal table header")
	}
	for _, meal := range plan.Meals {
		row := []string{meal.Meal, Decimal1(meal.CarbGrams), Decimal1(meal.Exchanges)}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "error writing meal table row %q", meal.Meal)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "error flushing meal table")
}

// Decimal1 formats a derived value at display precision.
func Decimal1(v float64) string {
	return strconv.FormatFloat(mealplan.Round1(v), 'f', 1, 64)
}

// Filename produces a unique download name for an exported artifact.
// The plan id keys the name when present so repeated downloads of the
// same plan collide on disk instead of piling up.
func Filename(plan *mealplan.Plan, extension string) string {
	id := plan.Id
	if id == "" {
		id = uuid.NewString()
	}
	return fmt.Sprintf("mealplan-%s.%s", id, extension)
}
