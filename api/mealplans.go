package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/mealplan/export"
	"github.com/tidepool-org/mealplan/mealplan"
)

func (h *Handler) CreateMealPlan(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := PatientProfile{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	plan, err := h.mealPlans.Calculate(ctx, NewPatientProfile(dto))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewMealPlanDto(plan))
}

func (h *Handler) CreateMealPlanBatch(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := MealPlanBatch{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	profiles := make([]mealplan.PatientProfile, 0, len(dto.Profiles))
	for _, p := range dto.Profiles {
		profiles = append(profiles, NewPatientProfile(p))
	}

	plans, err := h.mealPlans.CalculateBatch(ctx, profiles)
	if err != nil {
		return err
	}

	dtos := make([]MealPlan, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, NewMealPlanDto(plan))
	}

	return ec.JSON(http.StatusOK, dtos)
}

func (h *Handler) GetExampleMealPlan(ec echo.Context) error {
	ctx := ec.Request().Context()
	plan, err := h.mealPlans.ExamplePlan(ctx)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewMealPlanDto(plan))
}

func (h *Handler) ExportMealPlanCSV(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := PatientProfile{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	plan, err := h.mealPlans.Calculate(ctx, NewPatientProfile(dto))
	if err != nil {
		return err
	}

	response := ec.Response()
	response.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	response.Header().Set(echo.HeaderContentDisposition, attachment(export.Filename(plan, "csv")))
	response.WriteHeader(http.StatusOK)

	return export.WriteCSV(response, plan)
}

func (h *Handler) ExportMealPlanReport(ec echo.Context) error {
	ctx := ec.Request().Context()
	dto := PatientProfile{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	plan, err := h.mealPlans.Calculate(ctx, NewPatientProfile(dto))
	if err != nil {
		return err
	}

	report, err := export.NewReport(plan).Generate()
	if err != nil {
		return err
	}

	response := ec.Response()
	response.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	response.Header().Set(echo.HeaderContentDisposition, attachment(export.Filename(plan, "xlsx")))
	response.WriteHeader(http.StatusOK)

	return report.Write(response)
}

func attachment(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, filename)
}
