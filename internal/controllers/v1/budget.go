package v1

import (
	"net/http"
	"strconv"

	"github.com/centime-app/backend/internal/budget"
	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetDataResponse struct {
	Data budget.Data `json:"data"`
}

type BalancesResponse struct {
	Data BalancesObject `json:"data"`
}

// BalancesObject combines the per-account balance projection with the
// global treasury totals.
type BalancesObject struct {
	Balances budget.Balances `json:"balances"`
	Treasury budget.Treasury `json:"treasury"`
}

type ChartsResponse struct {
	Data ChartsObject `json:"data"`
}

// ChartsObject is the chart-shaped projection of the budget comparison and
// the balance projection for one period.
type ChartsObject struct {
	BalanceEvolution  ChartSeries     `json:"balanceEvolution"`
	BudgetRepartition RepartitionData `json:"budgetRepartition"`
	SavingsProgress   ChartSeries     `json:"savingsProgress"`
}

type ChartSeries struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

type RepartitionData struct {
	Labels     []string          `json:"labels"`
	Forecasted []decimal.Decimal `json:"forecasted"`
	Real       []decimal.Decimal `json:"real"`
}

// RegisterBudgetRoutes registers the routes for the budget engine with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/balances", OptionsBudgetBalances)
	r.GET("/balances", GetBudgetBalances)

	r.OPTIONS("/:month/:year", OptionsBudgetPeriod)
	r.GET("/:month/:year", GetBudgetPeriod)

	r.OPTIONS("/charts/:month/:year", OptionsBudgetCharts)
	r.GET("/charts/:month/:year", GetBudgetCharts)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Budget
// @Success     204
// @Router      /v1/budget/{month}/{year} [options]
func OptionsBudgetPeriod(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Budget
// @Success     204
// @Router      /v1/budget/balances [options]
func OptionsBudgetBalances(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Budget
// @Success     204
// @Router      /v1/budget/charts/{month}/{year} [options]
func OptionsBudgetCharts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary     Get budget for a period
// @Description Returns the forecast-vs-actual comparison for all categories in the budget month
// @Tags        Budget
// @Produce     json
// @Success     200 {object} BudgetDataResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       month path int true "Month number, 1-12"
// @Param       year  path int true "Year"
// @Router      /v1/budget/{month}/{year} [get]
func GetBudgetPeriod(c *gin.Context) {
	data, ok := aggregateForPeriod(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetDataResponse{Data: data})
}

// @Summary     Get balances
// @Description Returns the projected balances for all accounts and the treasury totals
// @Tags        Budget
// @Produce     json
// @Success     200 {object} BalancesResponse
// @Failure     500 {object} httperrors.HTTPError
// @Router      /v1/budget/balances [get]
func GetBudgetBalances(c *gin.Context) {
	balances, ok := projectBalances(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BalancesResponse{
		Data: BalancesObject{
			Balances: balances,
			Treasury: budget.Summarize(balances),
		},
	})
}

// @Summary     Get chart data
// @Description Returns the budget comparison and balance projection shaped for charting
// @Tags        Budget
// @Produce     json
// @Success     200 {object} ChartsResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       month path int true "Month number, 1-12"
// @Param       year  path int true "Year"
// @Router      /v1/budget/charts/{month}/{year} [get]
func GetBudgetCharts(c *gin.Context) {
	data, ok := aggregateForPeriod(c)
	if !ok {
		return
	}

	balances, ok := projectBalances(c)
	if !ok {
		return
	}

	treasury := budget.Summarize(balances)

	savings, ok := savingsProgress(c)
	if !ok {
		return
	}

	charts := ChartsObject{
		BalanceEvolution: ChartSeries{
			Labels: []string{"real", "upcoming", "pending"},
			Data:   []decimal.Decimal{treasury.TotalReal, treasury.TotalUpcoming, treasury.TotalPending},
		},
		BudgetRepartition: RepartitionData{
			Labels: []string{"revenue", "bills", "expenses", "savings"},
			Forecasted: []decimal.Decimal{
				data.Summary.Revenue.Forecasted,
				data.Summary.Bills.Forecasted,
				data.Summary.Expenses.Forecasted,
				data.Summary.Savings.Forecasted,
			},
			Real: []decimal.Decimal{
				data.Summary.Revenue.Real,
				data.Summary.Bills.Real,
				data.Summary.Expenses.Real,
				data.Summary.Savings.Real,
			},
		},
		SavingsProgress: savings,
	}

	c.JSON(http.StatusOK, ChartsResponse{Data: charts})
}

// aggregateForPeriod resolves the month and year parameters against the
// configured budget start date and runs the variance aggregation.
func aggregateForPeriod(c *gin.Context) (budget.Data, bool) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "the month must be a number")
		return budget.Data{}, false
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, "the year must be a number")
		return budget.Data{}, false
	}

	settings, err := models.GetSettings(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Data{}, false
	}

	period, err := budget.ResolvePeriod(month, year, settings.BudgetStartDate, settings.StartsBeforeMonth)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Data{}, false
	}

	snapshot, err := loadSnapshot(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Data{}, false
	}

	data, err := budget.Aggregate(snapshot, period)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Data{}, false
	}

	return data, true
}

func projectBalances(c *gin.Context) (budget.Balances, bool) {
	snapshot, err := loadSnapshot(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Balances{}, false
	}

	balances, err := budget.ProjectBalances(snapshot)
	if err != nil {
		httperrors.Handler(c, err)
		return budget.Balances{}, false
	}

	return balances, true
}

// savingsProgress computes the progress towards each savings goal as the
// percentage of the target amount covered by allocations.
func savingsProgress(c *gin.Context) (ChartSeries, bool) {
	series := ChartSeries{
		Labels: make([]string, 0),
		Data:   make([]decimal.Decimal, 0),
	}

	var goals []models.SavingsGoal
	err := models.DB.Preload("Category").Order("created_at ASC").Find(&goals).Error
	if err != nil {
		httperrors.Handler(c, err)
		return ChartSeries{}, false
	}

	hundred := decimal.NewFromInt(100)

	for _, goal := range goals {
		var allocations []models.SavingsAllocation
		err := models.DB.Where(&models.SavingsAllocation{
			SavingsAllocationCreate: models.SavingsAllocationCreate{CategoryID: goal.CategoryID},
		}, "CategoryID").Find(&allocations).Error
		if err != nil {
			httperrors.Handler(c, err)
			return ChartSeries{}, false
		}

		allocated := decimal.Zero
		for _, allocation := range allocations {
			allocated = allocated.Add(allocation.Amount)
		}

		progress := decimal.Zero
		if !goal.TargetAmount.IsZero() {
			progress = allocated.Div(goal.TargetAmount).Mul(hundred)
		}

		series.Labels = append(series.Labels, goal.Category.Name)
		series.Data = append(series.Data, progress)
	}

	return series, true
}
