package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SavingsGoalListResponse struct {
	Data []SavingsGoal `json:"data"`
}

type SavingsGoalResponse struct {
	Data SavingsGoal `json:"data"`
}

type SavingsGoal struct {
	models.SavingsGoal
	Links SavingsGoalLinks `json:"links"`
}

type SavingsGoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/savings-goals/7e25bc3d-ab2b-4c06-bc3b-92a7e0c311c9"`
	Category string `json:"category" example:"https://example.com/api/v1/categories/1e777d24-3f5b-4c43-8000-580b58acbbba"`
}

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoalList)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoal)
	}

	// Savings goal with ID
	{
		r.OPTIONS("/:goalId", OptionsSavingsGoalDetail)
		r.GET("/:goalId", GetSavingsGoal)
		r.PATCH("/:goalId", UpdateSavingsGoal)
		r.DELETE("/:goalId", DeleteSavingsGoal)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Savings
// @Success     204
// @Router      /v1/savings-goals [options]
func OptionsSavingsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Savings
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       goalId path string true "ID formatted as string"
// @Router      /v1/savings-goals/{goalId} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getSavingsGoalResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create savings goal
// @Description Creates a new savings goal. Only one goal can exist per category.
// @Tags        Savings
// @Produce     json
// @Success     201 {object} SavingsGoalResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       goal body models.SavingsGoalCreate true "Savings goal"
// @Router      /v1/savings-goals [post]
func CreateSavingsGoal(c *gin.Context) {
	var goal models.SavingsGoal
	if err := httputil.BindData(c, &goal); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&goal).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, SavingsGoalResponse{Data: newSavingsGoalObject(c, goal)})
}

// @Summary     List savings goals
// @Description Returns a list of savings goals
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsGoalListResponse
// @Failure     500 {object} httperrors.HTTPError
// @Router      /v1/savings-goals [get]
func GetSavingsGoals(c *gin.Context) {
	var goals []models.SavingsGoal
	if err := models.DB.Find(&goals).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		objects = append(objects, newSavingsGoalObject(c, goal))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{Data: objects})
}

// @Summary     Get savings goal
// @Description Returns a specific savings goal
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsGoalResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       goalId path string true "ID formatted as string"
// @Router      /v1/savings-goals/{goalId} [get]
func GetSavingsGoal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	goal, ok := getSavingsGoalResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SavingsGoalResponse{Data: newSavingsGoalObject(c, goal)})
}

// @Summary     Update savings goal
// @Description Updates a savings goal. Only values to be updated need to be specified.
// @Tags        Savings
// @Produce     json
// @Success     200 {object} SavingsGoalResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       goalId path string                    true "ID formatted as string"
// @Param       goal   body models.SavingsGoalCreate true "Savings goal"
// @Router      /v1/savings-goals/{goalId} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	goal, ok := getSavingsGoalResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.SavingsGoalCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.SavingsGoal
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SavingsGoalResponse{Data: newSavingsGoalObject(c, goal)})
}

// @Summary     Delete savings goal
// @Description Deletes a savings goal
// @Tags        Savings
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       goalId path string true "ID formatted as string"
// @Router      /v1/savings-goals/{goalId} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	goal, ok := getSavingsGoalResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&goal).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getSavingsGoalResource(c *gin.Context, id uuid.UUID) (models.SavingsGoal, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no savings goal ID specified")
		return models.SavingsGoal{}, false
	}

	var goal models.SavingsGoal
	err := models.DB.First(&goal, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.SavingsGoal{}, false
	}

	return goal, true
}

func newSavingsGoalObject(c *gin.Context, goal models.SavingsGoal) SavingsGoal {
	url := httputil.RequestPathV1(c)

	return SavingsGoal{
		SavingsGoal: goal,
		Links: SavingsGoalLinks{
			Self:     url + "/savings-goals/" + goal.ID.String(),
			Category: url + "/categories/" + goal.CategoryID.String(),
		},
	}
}
