package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/budget"
	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountListResponse struct {
	Data []Account `json:"data"`
}

type AccountResponse struct {
	Data Account `json:"data"`
}

// Account is an account with its three computed balances. The balances are
// derived from the transaction history on every request, they are never
// stored.
type Account struct {
	models.Account
	Real     decimal.Decimal `json:"real" example:"800"`
	Upcoming decimal.Decimal `json:"upcoming" example:"750"`
	Pending  decimal.Decimal `json:"pending" example:"-50"`
	Links    AccountLinks    `json:"links"`
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
}

type AccountQueryFilter struct {
	Name             string `form:"name"`
	Note             string `form:"note"`
	IsSavingsAccount bool   `form:"isSavingsAccount"`
	IsMainAccount    bool   `form:"isMainAccount"`
	Archived         bool   `form:"archived"`
}

func (f AccountQueryFilter) ToCreate() models.AccountCreate {
	return models.AccountCreate{
		Name:             f.Name,
		Note:             f.Note,
		IsSavingsAccount: f.IsSavingsAccount,
		IsMainAccount:    f.IsMainAccount,
		Archived:         f.Archived,
	}
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountList)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:accountId", OptionsAccountDetail)
		r.GET("/:accountId", GetAccount)
		r.PATCH("/:accountId", UpdateAccount)
		r.DELETE("/:accountId", DeleteAccount)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Accounts
// @Success     204
// @Router      /v1/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Accounts
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       accountId path string true "ID formatted as string"
// @Router      /v1/accounts/{accountId} [options]
func OptionsAccountDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getAccountResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Create account
// @Description Creates a new account
// @Tags        Accounts
// @Produce     json
// @Success     201 {object} AccountResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       account body models.AccountCreate true "Account"
// @Router      /v1/accounts [post]
func CreateAccount(c *gin.Context) {
	var account models.Account
	if err := httputil.BindData(c, &account); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := models.DB.Create(&account).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	object, ok := newAccountObjects(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: object[0]})
}

// @Summary     List accounts
// @Description Returns a list of accounts
// @Tags        Accounts
// @Produce     json
// @Success     200 {object} AccountListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       name             query string false "Filter by name"
// @Param       note             query string false "Filter by note"
// @Param       isSavingsAccount query bool   false "Is this a savings account?"
// @Param       isMainAccount    query bool   false "Is this the main account?"
// @Param       archived         query bool   false "Is the account archived?"
// @Router      /v1/accounts [get]
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	var accounts []models.Account
	err := models.DB.Where(&models.Account{
		AccountCreate: filter.ToCreate(),
	}, queryFields...).Order("name ASC").Find(&accounts).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	objects, ok := newAccountObjects(c, accounts...)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: objects})
}

// @Summary     Get account
// @Description Returns a specific account with its computed balances
// @Tags        Accounts
// @Produce     json
// @Success     200 {object} AccountResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       accountId path string true "ID formatted as string"
// @Router      /v1/accounts/{accountId} [get]
func GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	account, ok := getAccountResource(c, id)
	if !ok {
		return
	}

	objects, ok := newAccountObjects(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: objects[0]})
}

// @Summary     Update account
// @Description Updates an account. Only values to be updated need to be specified.
// @Tags        Accounts
// @Produce     json
// @Success     200 {object} AccountResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       accountId path string               true "ID formatted as string"
// @Param       account   body models.AccountCreate true "Account"
// @Router      /v1/accounts/{accountId} [patch]
func UpdateAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	account, ok := getAccountResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.AccountCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.Account
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	objects, ok := newAccountObjects(c, account)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: objects[0]})
}

// @Summary     Delete account
// @Description Deletes an account
// @Tags        Accounts
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       accountId path string true "ID formatted as string"
// @Router      /v1/accounts/{accountId} [delete]
func DeleteAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	account, ok := getAccountResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getAccountResource(c *gin.Context, id uuid.UUID) (models.Account, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no account ID specified")
		return models.Account{}, false
	}

	var account models.Account
	err := models.DB.First(&account, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Account{}, false
	}

	return account, true
}

// newAccountObjects wraps accounts into API objects with their computed
// balances. The balance projection runs once for all accounts passed.
func newAccountObjects(c *gin.Context, accounts ...models.Account) ([]Account, bool) {
	snapshot, err := loadSnapshot(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return nil, false
	}

	balances, err := budget.ProjectBalances(snapshot)
	if err != nil {
		httperrors.Handler(c, err)
		return nil, false
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]Account, 0, len(accounts))

	for _, account := range accounts {
		url := httputil.RequestPathV1(c)

		object := Account{
			Account: account,
			Links: AccountLinks{
				Self:         url + "/accounts/" + account.ID.String(),
				Transactions: url + "/transactions?account=" + account.ID.String(),
			},
		}

		if balance, ok := balances.Balance(account.ID); ok {
			object.Real = balance.Real
			object.Upcoming = balance.Upcoming
			object.Pending = balance.Pending
		}

		objects = append(objects, object)
	}

	return objects, true
}
