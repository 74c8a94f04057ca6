package api

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/tidepool-org/mealplan/mealplan"
)

type Handler struct {
	mealPlans mealplan.Service
}

type Params struct {
	fx.In

	MealPlans mealplan.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		mealPlans: p.MealPlans,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.POST("/v1/mealplans", h.CreateMealPlan)
	e.POST("/v1/mealplans/batch", h.CreateMealPlanBatch)
	e.GET("/v1/mealplans/example", h.GetExampleMealPlan)
	e.POST("/v1/mealplans/export", h.ExportMealPlanCSV)
	e.POST("/v1/mealplans/report", h.ExportMealPlanReport)
}
