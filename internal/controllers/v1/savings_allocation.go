package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SavingsAllocationListResponse struct {
	Data []SavingsAllocation `json:"data"`
}

type SavingsAllocationResponse struct {
	Data SavingsAllocation `json:"data"`
}

type SavingsAllocation struct {
	models.SavingsAllocation
	Links SavingsAllocationLinks `json:"links"`
}

type SavingsAllocationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/savings-allocations/c9a461ab-e6c6-4bd2-bdc4-6f21b44e327c"`
	Category string `json:"category" example:"https://example.com/api/v1/categories/1e777d24-3f5b-4c43-8000-580b58acbbba"`
	Account  string `json:"account" example:"https://example.com/api/v1/accounts/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
}

type SavingsAllocationQueryFilter struct {
	CategoryID string `form:"category"`
	AccountID  string `form:"account"`
}

func (f SavingsAllocationQueryFilter) ToCreate(c *gin.Context) (models.SavingsAllocationCreate, bool) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.SavingsAllocationCreate{}, false
	}

	accountID, err := httputil.UUIDFromString(f.AccountID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.SavingsAllocationCreate{}, false
	}

	return models.SavingsAllocationCreate{
		CategoryID: categoryID,
		AccountID:  accountID,
	}, true
}

// RegisterSavingsAllocationRoutes registers the routes for savings
// allocations with the RouterGroup that is passed.
func RegisterSavingsAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsAllocationList)
		r.GET("", GetSavingsAllocations)
		r.POST("", CreateSavingsAllocation)
	}

	// Savings allocation with ID
	{
		r.OPTIONS("/:allocationId", OptionsSavingsAllocationDetail)
		r.GET("/:allocationId", GetSavingsAllocation)
		r.PATCH("/:allocationId", UpdateSavingsAllocation)
		r.DELETE("/:allocationId", DeleteSavingsAllocation)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Savings
// @Success     204
// @Router      /v1/savings-allocations [options]
func OptionsSavingsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Savings
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       allocationId path string true "ID formatted as string"
// @Router      /v1/savings-allocations/{allocationId} [options]
func OptionsSavingsAllocationDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("allocationId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getSavingsAllocationResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create savings allocation
// @Description Creates a new savings allocation
// @Tags        Savings
// @Produce     json
// @Success     201 {object} SavingsAllocationResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       allocation body models.SavingsAllocationCreate true "Savings allocation"
// @Router      /v1/savings-allocations [post]
func CreateSavingsAllocation(c *gin.Context) {
	var allocation models.SavingsAllocation
	if err := httputil.BindData(c, &allocation); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&allocation).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, SavingsAllocationResponse{Data: newSavingsAllocationObject(c, allocation)})
}

// @Summary     List savings allocations
// @Description Returns a list of savings allocations
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsAllocationListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       category query string false "Filter by category ID"
// @Param       account  query string false "Filter by account ID"
// @Router      /v1/savings-allocations [get]
func GetSavingsAllocations(c *gin.Context) {
	var filter SavingsAllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	create, ok := filter.ToCreate(c)
	if !ok {
		return
	}

	var allocations []models.SavingsAllocation
	err := models.DB.Where(&models.SavingsAllocation{
		SavingsAllocationCreate: create,
	}, queryFields...).Find(&allocations).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]SavingsAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		objects = append(objects, newSavingsAllocationObject(c, allocation))
	}

	c.JSON(http.StatusOK, SavingsAllocationListResponse{Data: objects})
}

// @Summary     Get savings allocation
// @Description Returns a specific savings allocation
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsAllocationResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       allocationId path string true "ID formatted as string"
// @Router      /v1/savings-allocations/{allocationId} [get]
func GetSavingsAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("allocationId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	allocation, ok := getSavingsAllocationResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SavingsAllocationResponse{Data: newSavingsAllocationObject(c, allocation)})
}

// @Summary     Update savings allocation
// @Description Updates a savings allocation. Only values to be updated need to be specified.
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsAllocationResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       allocationId path string                          true "ID formatted as string"
// @Param       allocation   body models.SavingsAllocationCreate true "Savings allocation"
// @Router      /v1/savings-allocations/{allocationId} [patch]
func UpdateSavingsAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("allocationId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	allocation, ok := getSavingsAllocationResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.SavingsAllocationCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.SavingsAllocation
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Model(&allocation).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SavingsAllocationResponse{Data: newSavingsAllocationObject(c, allocation)})
}

// @Summary     Delete savings allocation
// @Description Deletes a savings allocation
// @Tags        Savings
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       allocationId path string true "ID formatted as string"
// @Router      /v1/savings-allocations/{allocationId} [delete]
func DeleteSavingsAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("allocationId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	allocation, ok := getSavingsAllocationResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&allocation).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getSavingsAllocationResource(c *gin.Context, id uuid.UUID) (models.SavingsAllocation, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no savings allocation ID specified")
		return models.SavingsAllocation{}, false
	}

	var allocation models.SavingsAllocation
	err := models.DB.First(&allocation, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.SavingsAllocation{}, false
	}

	return allocation, true
}

func newSavingsAllocationObject(c *gin.Context, allocation models.SavingsAllocation) SavingsAllocation {
	url := httputil.RequestPathV1(c)

	return SavingsAllocation{
		SavingsAllocation: allocation,
		Links: SavingsAllocationLinks{
			Self:     url + "/savings-allocations/" + allocation.ID.String(),
			Category: url + "/categories/" + allocation.CategoryID.String(),
			Account:  url + "/accounts/" + allocation.AccountID.String(),
		},
	}
}
