package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BudgetForecastListResponse struct {
	Data []BudgetForecast `json:"data"`
}

type BudgetForecastResponse struct {
	Data BudgetForecast `json:"data"`
}

type BudgetForecast struct {
	models.BudgetForecast
	Links BudgetForecastLinks `json:"links"`
}

type BudgetForecastLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/forecasts/a7f5f30e-4826-4a03-a1c8-1b7b2e1f2e71"`
	Category string `json:"category" example:"https://example.com/api/v1/categories/1e777d24-3f5b-4c43-8000-580b58acbbba"`
}

type BudgetForecastQueryFilter struct {
	CategoryID  string `form:"category"`
	MonthNumber int    `form:"month"`
}

func (f BudgetForecastQueryFilter) ToCreate(c *gin.Context) (models.BudgetForecastCreate, bool) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.BudgetForecastCreate{}, false
	}

	return models.BudgetForecastCreate{
		CategoryID:  categoryID,
		MonthNumber: f.MonthNumber,
	}, true
}

// RegisterBudgetForecastRoutes registers the routes for forecasts with
// the RouterGroup that is passed.
func RegisterBudgetForecastRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetForecastList)
		r.GET("", GetBudgetForecasts)
		r.POST("", CreateBudgetForecast)
	}

	// Forecast with ID
	{
		r.OPTIONS("/:forecastId", OptionsBudgetForecastDetail)
		r.GET("/:forecastId", GetBudgetForecast)
		r.PATCH("/:forecastId", UpdateBudgetForecast)
		r.DELETE("/:forecastId", DeleteBudgetForecast)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Forecasts
// @Success     204
// @Router      /v1/forecasts [options]
func OptionsBudgetForecastList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Forecasts
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       forecastId path string true "ID formatted as string"
// @Router      /v1/forecasts/{forecastId} [options]
func OptionsBudgetForecastDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("forecastId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getBudgetForecastResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create forecast
// @Description Creates a new forecast. Only one forecast can exist per category and month.
// @Tags        Forecasts
// @Produce     json
// @Success     201 {object} BudgetForecastResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       forecast body models.BudgetForecastCreate true "Forecast"
// @Router      /v1/forecasts [post]
func CreateBudgetForecast(c *gin.Context) {
	var forecast models.BudgetForecast
	if err := httputil.BindData(c, &forecast); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&forecast).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, BudgetForecastResponse{Data: newBudgetForecastObject(c, forecast)})
}

// @Summary     List forecasts
// @Description Returns a list of forecasts
// @Tags        Forecasts
// @Produce     json
// @Success     200 {object} BudgetForecastListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       category query string false "Filter by category ID"
// @Param       month    query int    false "Filter by month number"
// @Router      /v1/forecasts [get]
func GetBudgetForecasts(c *gin.Context) {
	var filter BudgetForecastQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	create, ok := filter.ToCreate(c)
	if !ok {
		return
	}

	var forecasts []models.BudgetForecast
	err := models.DB.Where(&models.BudgetForecast{
		BudgetForecastCreate: create,
	}, queryFields...).Order("month_number ASC").Find(&forecasts).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]BudgetForecast, 0, len(forecasts))
	for _, forecast := range forecasts {
		objects = append(objects, newBudgetForecastObject(c, forecast))
	}

	c.JSON(http.StatusOK, BudgetForecastListResponse{Data: objects})
}

// @Summary     Get forecast
// @Description Returns a specific forecast
// @Tags        Forecasts
// @Produce     json
// @Success     200 {object} BudgetForecastResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       forecastId path string true "ID formatted as string"
// @Router      /v1/forecasts/{forecastId} [get]
func GetBudgetForecast(c *gin.Context) {
	id, err := uuid.Parse(c.Param("forecastId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	forecast, ok := getBudgetForecastResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BudgetForecastResponse{Data: newBudgetForecastObject(c, forecast)})
}

// @Summary     Update forecast
// @Description Updates a forecast. Only values to be updated need to be specified.
// @Tags        Forecasts
// @Produce     json
// @Success     200 {object} BudgetForecastResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       forecastId path string                       true "ID formatted as string"
// @Param       forecast   body models.BudgetForecastCreate true "Forecast"
// @Router      /v1/forecasts/{forecastId} [patch]
func UpdateBudgetForecast(c *gin.Context) {
	id, err := uuid.Parse(c.Param("forecastId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	forecast, ok := getBudgetForecastResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.BudgetForecastCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.BudgetForecast
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	// A partial update without the month must not fail month validation
	if data.MonthNumber == 0 {
		data.MonthNumber = forecast.MonthNumber
	}

	err = models.DB.Model(&forecast).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetForecastResponse{Data: newBudgetForecastObject(c, forecast)})
}

// @Summary     Delete forecast
// @Description Deletes a forecast
// @Tags        Forecasts
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       forecastId path string true "ID formatted as string"
// @Router      /v1/forecasts/{forecastId} [delete]
func DeleteBudgetForecast(c *gin.Context) {
	id, err := uuid.Parse(c.Param("forecastId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	forecast, ok := getBudgetForecastResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&forecast).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getBudgetForecastResource(c *gin.Context, id uuid.UUID) (models.BudgetForecast, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no forecast ID specified")
		return models.BudgetForecast{}, false
	}

	var forecast models.BudgetForecast
	err := models.DB.First(&forecast, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.BudgetForecast{}, false
	}

	return forecast, true
}

func newBudgetForecastObject(c *gin.Context, forecast models.BudgetForecast) BudgetForecast {
	url := httputil.RequestPathV1(c)

	return BudgetForecast{
		BudgetForecast: forecast,
		Links: BudgetForecastLinks{
			Self:     url + "/forecasts/" + forecast.ID.String(),
			Category: url + "/categories/" + forecast.CategoryID.String(),
		},
	}
}
