package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/mealplan/api"
	"github.com/tidepool-org/mealplan/errors"
	"github.com/tidepool-org/mealplan/mealplan"
	mealplanTest "github.com/tidepool-org/mealplan/mealplan/test"
	"github.com/tidepool-org/mealplan/pointer"
	"github.com/tidepool-org/mealplan/test"
)

var _ = Describe("Meal Plan API", func() {
	var server *echo.Echo
	var healthCheck *api.HealthCheck
	var mealPlans *mealplanTest.MockService
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mealPlans = mealplanTest.NewMockService(ctrl)
		healthCheck = api.NewHealthCheck()

		handler := api.NewHandler(api.Params{MealPlans: mealPlans})

		var err error
		server, err = api.NewServer(handler, healthCheck, zap.NewNop())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	calculatedPlan := func(profile mealplan.PatientProfile) *mealplan.Plan {
		plan := mealplan.Calculate(profile)
		plan.Id = test.Faker.UUID().V4()
		return &plan
	}

	Describe("POST /v1/mealplans", func() {
		It("returns the plan with presentation rounding applied", func() {
			profile := mealplan.ExampleProfile()
			plan := calculatedPlan(profile)
			mealPlans.EXPECT().Calculate(gomock.Any(), gomock.Eq(profile)).Return(plan, nil)

			body, err := json.Marshal(api.PatientProfile{
				AgeYears:      pointer.FromAny(7.0),
				Sex:           pointer.FromAny("female"),
				WeightKg:      pointer.FromAny(22.0),
				HeightCm:      pointer.FromAny(120.0),
				ActivityLevel: pointer.FromAny("lowActive"),
				CarbPercent:   pointer.FromAny(50),
			})
			Expect(err).ToNot(HaveOccurred())

			rec := request(server, http.MethodPost, "/v1/mealplans", string(body))

			Expect(rec.Code).To(Equal(http.StatusOK))

			dto := api.MealPlan{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &dto)).To(Succeed())
			Expect(dto.Id).To(Equal(plan.Id))
			Expect(dto.Summary.TotalEnergyKcal).To(Equal(1590))
			Expect(dto.Summary.TotalCarbGrams).To(Equal(198.8))
			Expect(dto.Summary.TotalExchanges).To(Equal(13.3))
			Expect(dto.Summary.StarchyExchanges).To(Equal(8.0))
			Expect(dto.Meals).To(HaveLen(6))
			Expect(dto.Meals[0].Meal).To(Equal("Breakfast"))
			Expect(dto.Meals[0].CarbGrams).To(Equal(39.8))
			Expect(dto.Meals[0].Exchanges).To(Equal(2.7))
			Expect(dto.FoodGroups).To(HaveLen(3))
		})

		It("applies the documented defaults for omitted fields", func() {
			plan := calculatedPlan(mealplan.ExampleProfile())
			mealPlans.EXPECT().
				Calculate(gomock.Any(), test.Match(func(p mealplan.PatientProfile) bool {
					return p == mealplan.ExampleProfile()
				})).
				Return(plan, nil)

			rec := request(server, http.MethodPost, "/v1/mealplans", `{}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("maps profile validation failures to bad request", func() {
			mealPlans.EXPECT().
				Calculate(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("%w: weight 500.0 kg is outside [8, 120]", mealplan.ErrInvalidProfile))

			rec := request(server, http.MethodPost, "/v1/mealplans", `{"weightKg":500}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps service HTTP errors to their status code", func() {
			mealPlans.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(nil, errors.BadRequest)

			rec := request(server, http.MethodPost, "/v1/mealplans", `{}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /v1/mealplans/batch", func() {
		It("returns one plan per profile in order", func() {
			first := mealplanTest.RandomProfile()
			second := mealplanTest.RandomProfile()
			plans := []*mealplan.Plan{calculatedPlan(first), calculatedPlan(second)}
			mealPlans.EXPECT().CalculateBatch(gomock.Any(), gomock.Len(2)).Return(plans, nil)

			body, err := json.Marshal(map[string]any{
				"profiles": []mealplan.PatientProfile{first, second},
			})
			Expect(err).ToNot(HaveOccurred())

			rec := request(server, http.MethodPost, "/v1/mealplans/batch", string(body))
			Expect(rec.Code).To(Equal(http.StatusOK))

			dtos := []api.MealPlan{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &dtos)).To(Succeed())
			Expect(dtos).To(HaveLen(2))
			Expect(dtos[0].Id).To(Equal(plans[0].Id))
			Expect(dtos[1].Id).To(Equal(plans[1].Id))
		})
	})

	Describe("GET /v1/mealplans/example", func() {
		It("returns the plan for the demonstration preset", func() {
			plan := calculatedPlan(mealplan.ExampleProfile())
			mealPlans.EXPECT().ExamplePlan(gomock.Any()).Return(plan, nil)

			rec := request(server, http.MethodGet, "/v1/mealplans/example", "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			dto := api.MealPlan{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &dto)).To(Succeed())
			Expect(dto.Profile.WeightKg).To(Equal(22.0))
			Expect(dto.Summary.TotalCarbGrams).To(Equal(198.8))
		})
	})

	Describe("POST /v1/mealplans/export", func() {
		It("returns the meal table as a CSV attachment", func() {
			plan := calculatedPlan(mealplan.ExampleProfile())
			mealPlans.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(plan, nil)

			rec := request(server, http.MethodPost, "/v1/mealplans/export", `{}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get(echo.HeaderContentType)).To(HavePrefix("text/csv"))
			Expect(rec.Header().Get(echo.HeaderContentDisposition)).
				To(Equal(fmt.Sprintf(`attachment; filename="mealplan-%s.csv"`, plan.Id)))

			lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(7))
			Expect(lines[0]).To(Equal("Meal,CHO (g),Exchanges"))
			Expect(lines[1]).To(Equal("Breakfast,39.8,2.7"))
		})
	})

	Describe("POST /v1/mealplans/report", func() {
		It("returns the report as an xlsx attachment", func() {
			plan := calculatedPlan(mealplan.ExampleProfile())
			mealPlans.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(plan, nil)

			rec := request(server, http.MethodPost, "/v1/mealplans/report", `{}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get(echo.HeaderContentType)).To(HavePrefix("application/vnd.openxmlformats"))
			Expect(rec.Body.Len()).ToNot(BeZero())
		})
	})

	Describe("GET /ready", func() {
		It("fails until the service is marked ready", func() {
			rec := request(server, http.MethodGet, "/ready", "")
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))

			healthCheck.SetReady(true)

			rec = request(server, http.MethodGet, "/ready", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})

func request(server *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}
