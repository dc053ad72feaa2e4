package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryListResponse struct {
	Data []Category `json:"data"`
}

type CategoryResponse struct {
	Data Category `json:"data"`
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/1e777d24-3f5b-4c43-8000-580b58acbbba"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=1e777d24-3f5b-4c43-8000-580b58acbbba"`
	Forecasts    string `json:"forecasts" example:"https://example.com/api/v1/forecasts?category=1e777d24-3f5b-4c43-8000-580b58acbbba"`
}

type CategoryQueryFilter struct {
	Name     string `form:"name"`
	Type     string `form:"type"`
	Note     string `form:"note"`
	IsCredit bool   `form:"isCredit"`
}

func (f CategoryQueryFilter) ToCreate() models.CategoryCreate {
	return models.CategoryCreate{
		Name:     f.Name,
		Type:     models.CategoryType(f.Type),
		Note:     f.Note,
		IsCredit: f.IsCredit,
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:categoryId", OptionsCategoryDetail)
		r.GET("/:categoryId", GetCategory)
		r.PATCH("/:categoryId", UpdateCategory)
		r.DELETE("/:categoryId", DeleteCategory)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Categories
// @Success     204
// @Router      /v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Categories
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       categoryId path string true "ID formatted as string"
// @Router      /v1/categories/{categoryId} [options]
func OptionsCategoryDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getCategoryResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create category
// @Description Creates a new category
// @Tags        Categories
// @Produce     json
// @Success     201 {object} CategoryResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       category body models.CategoryCreate true "Category"
// @Router      /v1/categories [post]
func CreateCategory(c *gin.Context) {
	var category models.Category
	if err := httputil.BindData(c, &category); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&category).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategoryObject(c, category)})
}

// @Summary     List categories
// @Description Returns a list of categories, ordered by their sort order
// @Tags        Categories
// @Produce     json
// @Success     200 {object} CategoryListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       name     query string false "Filter by name"
// @Param       type     query string false "Filter by category type"
// @Param       note     query string false "Filter by note"
// @Param       isCredit query bool   false "Is the category credit backed?"
// @Router      /v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	var categories []models.Category
	err := models.DB.Where(&models.Category{
		CategoryCreate: filter.ToCreate(),
	}, queryFields...).Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]Category, 0, len(categories))
	for _, category := range categories {
		objects = append(objects, newCategoryObject(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: objects})
}

// @Summary     Get category
// @Description Returns a specific category
// @Tags        Categories
// @Produce     json
// @Success     200 {object} CategoryResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       categoryId path string true "ID formatted as string"
// @Router      /v1/categories/{categoryId} [get]
func GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	category, ok := getCategoryResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategoryObject(c, category)})
}

// @Summary     Update category
// @Description Updates a category. Only values to be updated need to be specified. The type cannot be changed.
// @Tags        Categories
// @Produce     json
// @Success     200 {object} CategoryResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       categoryId path string                true "ID formatted as string"
// @Param       category   body models.CategoryCreate true "Category"
// @Router      /v1/categories/{categoryId} [patch]
func UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	category, ok := getCategoryResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.CategoryCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.Category
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	// A partial update without the type must not fail type validation
	if data.Type == "" {
		data.Type = category.Type
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategoryObject(c, category)})
}

// @Summary     Delete category
// @Description Deletes a category
// @Tags        Categories
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       categoryId path string true "ID formatted as string"
// @Router      /v1/categories/{categoryId} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	category, ok := getCategoryResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getCategoryResource(c *gin.Context, id uuid.UUID) (models.Category, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no category ID specified")
		return models.Category{}, false
	}

	var category models.Category
	err := models.DB.First(&category, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Category{}, false
	}

	return category, true
}

func newCategoryObject(c *gin.Context, category models.Category) Category {
	url := httputil.RequestPathV1(c)

	return Category{
		Category: category,
		Links: CategoryLinks{
			Self:         url + "/categories/" + category.ID.String(),
			Transactions: url + "/transactions?category=" + category.ID.String(),
			Forecasts:    url + "/forecasts?category=" + category.ID.String(),
		},
	}
}
