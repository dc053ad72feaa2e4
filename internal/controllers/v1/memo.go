package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemoItemListResponse struct {
	Data []MemoItem `json:"data"`
}

type MemoItemResponse struct {
	Data MemoItem `json:"data"`
}

type MemoItem struct {
	models.MemoItem
	Links MemoItemLinks `json:"links"`
}

type MemoItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/memos/9a3b40fe-d361-4f8c-9c04-8f17cbdc071d"`
}

type MemoItemQueryFilter struct {
	MonthNumber int  `form:"month"`
	IsPaid      bool `form:"isPaid"`
}

func (f MemoItemQueryFilter) ToCreate() models.MemoItemCreate {
	return models.MemoItemCreate{
		MonthNumber: f.MonthNumber,
		IsPaid:      f.IsPaid,
	}
}

// RegisterMemoItemRoutes registers the routes for memo items with
// the RouterGroup that is passed.
func RegisterMemoItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMemoItemList)
		r.GET("", GetMemoItems)
		r.POST("", CreateMemoItem)
	}

	// Memo item with ID
	{
		r.OPTIONS("/:memoId", OptionsMemoItemDetail)
		r.GET("/:memoId", GetMemoItem)
		r.PATCH("/:memoId", UpdateMemoItem)
		r.DELETE("/:memoId", DeleteMemoItem)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Memos
// @Success     204
// @Router      /v1/memos [options]
func OptionsMemoItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Memos
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       memoId path string true "ID formatted as string"
// @Router      /v1/memos/{memoId} [options]
func OptionsMemoItemDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memoId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getMemoItemResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create memo
// @Description Creates a new memo item
// @Tags        Memos
// @Produce     json
// @Success     201 {object} MemoItemResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       memo body models.MemoItemCreate true "Memo item"
// @Router      /v1/memos [post]
func CreateMemoItem(c *gin.Context) {
	var memo models.MemoItem
	if err := httputil.BindData(c, &memo); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&memo).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, MemoItemResponse{Data: newMemoItemObject(c, memo)})
}

// @Summary     List memos
// @Description Returns a list of memo items
// @Tags        Memos
// @Produce     json
// @Success     200 {object} MemoItemListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       month  query int  false "Filter by month number"
// @Param       isPaid query bool false "Is the memo item paid?"
// @Router      /v1/memos [get]
func GetMemoItems(c *gin.Context) {
	var filter MemoItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	var memos []models.MemoItem
	err := models.DB.Where(&models.MemoItem{
		MemoItemCreate: filter.ToCreate(),
	}, queryFields...).Order("month_number ASC").Find(&memos).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]MemoItem, 0, len(memos))
	for _, memo := range memos {
		objects = append(objects, newMemoItemObject(c, memo))
	}

	c.JSON(http.StatusOK, MemoItemListResponse{Data: objects})
}

// @Summary     Get memo
// @Description Returns a specific memo item
// @Tags        Memos
// @Produce     json
// @Success     200 {object} MemoItemResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       memoId path string true "ID formatted as string"
// @Router      /v1/memos/{memoId} [get]
func GetMemoItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memoId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	memo, ok := getMemoItemResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, MemoItemResponse{Data: newMemoItemObject(c, memo)})
}

// @Summary     Update memo
// @Description Updates a memo item. Only values to be updated need to be specified.
// @Tags        Memos
// @Produce     json
// @Success     200 {object} MemoItemResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       memoId path string                 true "ID formatted as string"
// @Param       memo   body models.MemoItemCreate true "Memo item"
// @Router      /v1/memos/{memoId} [patch]
func UpdateMemoItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memoId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	memo, ok := getMemoItemResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.MemoItemCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.MemoItem
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	// A partial update without the month must not fail month validation
	if data.MonthNumber == 0 {
		data.MonthNumber = memo.MonthNumber
	}

	err = models.DB.Model(&memo).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MemoItemResponse{Data: newMemoItemObject(c, memo)})
}

// @Summary     Delete memo
// @Description Deletes a memo item
// @Tags        Memos
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       memoId path string true "ID formatted as string"
// @Router      /v1/memos/{memoId} [delete]
func DeleteMemoItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memoId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	memo, ok := getMemoItemResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&memo).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getMemoItemResource(c *gin.Context, id uuid.UUID) (models.MemoItem, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no memo ID specified")
		return models.MemoItem{}, false
	}

	var memo models.MemoItem
	err := models.DB.First(&memo, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.MemoItem{}, false
	}

	return memo, true
}

func newMemoItemObject(c *gin.Context, memo models.MemoItem) MemoItem {
	return MemoItem{
		MemoItem: memo,
		Links: MemoItemLinks{
			Self: httputil.RequestPathV1(c) + "/memos/" + memo.ID.String(),
		},
	}
}
