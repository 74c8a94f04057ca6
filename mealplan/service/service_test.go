package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/tidepool-org/mealplan/mealplan"
	mealplanService "github.com/tidepool-org/mealplan/mealplan/service"
	mealplanTest "github.com/tidepool-org/mealplan/mealplan/test"
)

var _ = Describe("Meal Plan Service", func() {
	var service mealplan.Service

	BeforeEach(func() {
		var err error
		service, err = mealplanService.NewService(zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Calculate", func() {
		It("returns a plan with a unique id", func() {
			first, err := service.Calculate(context.Background(), mealplanTest.RandomProfile())
			Expect(err).ToNot(HaveOccurred())
			Expect(first.Id).ToNot(BeEmpty())

			second, err := service.Calculate(context.Background(), mealplanTest.RandomProfile())
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Id).ToNot(Equal(first.Id))
		})

		It("returns the same derived values as the calculator", func() {
			profile := mealplanTest.RandomProfile()
			expected := mealplan.Calculate(profile)

			plan, err := service.Calculate(context.Background(), profile)
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Energy).To(Equal(expected.Energy))
			Expect(plan.Targets).To(Equal(expected.Targets))
			Expect(plan.Meals).To(Equal(expected.Meals))
			Expect(plan.Starchy).To(Equal(expected.Starchy))
		})

		It("rejects an out-of-domain profile", func() {
			profile := mealplanTest.RandomProfile()
			profile.WeightKg = 500

			plan, err := service.Calculate(context.Background(), profile)
			Expect(err).To(MatchError(mealplan.ErrInvalidProfile))
			Expect(plan).To(BeNil())
		})
	})

	Describe("CalculateBatch", func() {
		It("returns one plan per profile in the input order", func() {
			profiles := make([]mealplan.PatientProfile, 10)
			for i := range profiles {
				profiles[i] = mealplanTest.RandomProfile()
			}

			plans, err := service.CalculateBatch(context.Background(), profiles)
			Expect(err).ToNot(HaveOccurred())
			Expect(plans).To(HaveLen(len(profiles)))
			for i, plan := range plans {
				expected := mealplan.Calculate(profiles[i])
				Expect(plan.Profile).To(Equal(profiles[i]))
				Expect(plan.Targets).To(Equal(expected.Targets))
			}
		})

		It("fails when any profile is out of domain", func() {
			profiles := []mealplan.PatientProfile{
				mealplanTest.RandomProfile(),
				{},
				mealplanTest.RandomProfile(),
			}

			plans, err := service.CalculateBatch(context.Background(), profiles)
			Expect(err).To(MatchError(mealplan.ErrInvalidProfile))
			Expect(plans).To(BeNil())
		})

		It("returns an empty result for an empty batch", func() {
			plans, err := service.CalculateBatch(context.Background(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(plans).To(BeEmpty())
		})
	})

	Describe("ExamplePlan", func() {
		It("calculates the plan for the demonstration preset", func() {
			plan, err := service.ExamplePlan(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Profile).To(Equal(mealplan.ExampleProfile()))
			Expect(plan.Energy.BasalKcal).To(BeNumerically("~", 994, 1e-9))
			Expect(plan.Targets.TotalCarbGrams).To(BeNumerically("~", 198.8, 1e-9))
		})
	})
})
