package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditDetailListResponse struct {
	Data []CreditDetail `json:"data"`
}

type CreditDetailResponse struct {
	Data CreditDetail `json:"data"`
}

// CreditDetail is a credit detail with the derived remaining amount.
type CreditDetail struct {
	models.CreditDetail
	RemainingAmount decimal.Decimal   `json:"remainingAmount" example:"10224"`
	Links           CreditDetailLinks `json:"links"`
}

type CreditDetailLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/credit-details/b3c4e9ab-47e6-4e21-8a75-0c6f5be41d6a"`
	Category string `json:"category" example:"https://example.com/api/v1/categories/1e777d24-3f5b-4c43-8000-580b58acbbba"`
}

// RegisterCreditDetailRoutes registers the routes for credit details with
// the RouterGroup that is passed.
func RegisterCreditDetailRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditDetailList)
		r.GET("", GetCreditDetails)
		r.POST("", CreateCreditDetail)
	}

	// Credit detail with ID
	{
		r.OPTIONS("/:creditId", OptionsCreditDetailDetail)
		r.GET("/:creditId", GetCreditDetail)
		r.PATCH("/:creditId", UpdateCreditDetail)
		r.DELETE("/:creditId", DeleteCreditDetail)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Credits
// @Success     204
// @Router      /v1/credit-details [options]
func OptionsCreditDetailList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Credits
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       creditId path string true "ID formatted as string"
// @Router      /v1/credit-details/{creditId} [options]
func OptionsCreditDetailDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("creditId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getCreditDetailResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create credit detail
// @Description Creates the loan details for a credit backed category. Only one credit detail can exist per category.
// @Tags        Credits
// @Produce     json
// @Success     201 {object} CreditDetailResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       credit body models.CreditDetailCreate true "Credit detail"
// @Router      /v1/credit-details [post]
func CreateCreditDetail(c *gin.Context) {
	var credit models.CreditDetail
	if err := httputil.BindData(c, &credit); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&credit).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreditDetailResponse{Data: newCreditDetailObject(c, credit)})
}

// @Summary     List credit details
// @Description Returns a list of credit details
// @Tags        Credits
// @Produce     json
// @Success     200 {object} CreditDetailListResponse
// @Failure     500 {object} httperrors.HTTPError
// @Router      /v1/credit-details [get]
func GetCreditDetails(c *gin.Context) {
	var credits []models.CreditDetail
	if err := models.DB.Find(&credits).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]CreditDetail, 0, len(credits))
	for _, credit := range credits {
		objects = append(objects, newCreditDetailObject(c, credit))
	}

	c.JSON(http.StatusOK, CreditDetailListResponse{Data: objects})
}

// @Summary     Get credit detail
// @Description Returns a specific credit detail
// @Tags        Credits
// @Produce     json
// @Success     200 {object} CreditDetailResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       creditId path string true "ID formatted as string"
// @Router      /v1/credit-details/{creditId} [get]
func GetCreditDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("creditId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	credit, ok := getCreditDetailResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CreditDetailResponse{Data: newCreditDetailObject(c, credit)})
}

// @Summary     Update credit detail
// @Description Updates a credit detail. Only values to be updated need to be specified.
// @Tags        Credits
// @Produce     json
// @Success     200 {object} CreditDetailResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       creditId path string                     true "ID formatted as string"
// @Param       credit   body models.CreditDetailCreate true "Credit detail"
// @Router      /v1/credit-details/{creditId} [patch]
func UpdateCreditDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("creditId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	credit, ok := getCreditDetailResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.CreditDetailCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.CreditDetail
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Model(&credit).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CreditDetailResponse{Data: newCreditDetailObject(c, credit)})
}

// @Summary     Delete credit detail
// @Description Deletes a credit detail
// @Tags        Credits
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       creditId path string true "ID formatted as string"
// @Router      /v1/credit-details/{creditId} [delete]
func DeleteCreditDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("creditId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	credit, ok := getCreditDetailResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&credit).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getCreditDetailResource(c *gin.Context, id uuid.UUID) (models.CreditDetail, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no credit detail ID specified")
		return models.CreditDetail{}, false
	}

	var credit models.CreditDetail
	err := models.DB.First(&credit, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.CreditDetail{}, false
	}

	return credit, true
}

func newCreditDetailObject(c *gin.Context, credit models.CreditDetail) CreditDetail {
	url := httputil.RequestPathV1(c)

	return CreditDetail{
		CreditDetail:    credit,
		RemainingAmount: credit.RemainingAmount(),
		Links: CreditDetailLinks{
			Self:     url + "/credit-details/" + credit.ID.String(),
			Category: url + "/categories/" + credit.CategoryID.String(),
		},
	}
}
