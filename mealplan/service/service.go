package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tidepool-org/mealplan/mealplan"
)

type service struct {
	logger *zap.SugaredLogger
}

var _ mealplan.Service = &service{}

func NewService(logger *zap.SugaredLogger) (mealplan.Service, error) {
	return &service{
		logger: logger,
	}, nil
}

func (s *service) Calculate(ctx context.Context, profile mealplan.PatientProfile) (*mealplan.Plan, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	plan := mealplan.Calculate(profile)
	plan.Id = uuid.NewString()

	s.logger.Infow("calculated meal plan",
		"planId", plan.Id,
		"sex", profile.Sex,
		"weightKg", profile.WeightKg,
		"activityLevel", profile.ActivityLevel,
		"carbPercent", profile.CarbPercent,
		"totalKcal", plan.Energy.TotalKcal,
		"totalCarbGrams", plan.Targets.TotalCarbGrams,
	)
	return &plan, nil
}

// CalculateBatch computes plans for independent profiles concurrently.
// Calculations share no state, so each profile gets its own goroutine
// with no coordination beyond the result slice slot it owns.
func (s *service) CalculateBatch(ctx context.Context, profiles []mealplan.PatientProfile) ([]*mealplan.Plan, error) {
	plans := make([]*mealplan.Plan, len(profiles))
	eg, ctx := errgroup.WithContext(ctx)
	for i, profile := range profiles {
		i, profile := i, profile
		eg.Go(func() error {
			plan, err := s.Calculate(ctx, profile)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *service) ExamplePlan(ctx context.Context) (*mealplan.Plan, error) {
	return s.Calculate(ctx, mealplan.ExampleProfile())
}
