package v1

import (
	"net/http"
	"time"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/centime-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type TransactionListResponse struct {
	Data []Transaction `json:"data"`
}

type TransactionResponse struct {
	Data Transaction `json:"data"`
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`
}

type TransactionQueryFilter struct {
	Type                 string `form:"type"`
	Processed            bool   `form:"processed"`
	CategoryID           string `form:"category"`
	SourceAccountID      string `form:"source"`
	DestinationAccountID string `form:"destination"`
	AccountID            string `form:"account" filterField:"false"`  // Matches either side of the transaction
	Month                string `form:"month" filterField:"false"`    // Calendar month as YYYY-MM
	FromDate             string `form:"fromDate" filterField:"false"` // RFC 3339, inclusive
	UntilDate            string `form:"untilDate" filterField:"false"`
}

func (f TransactionQueryFilter) ToCreate(c *gin.Context) (models.TransactionCreate, bool) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.TransactionCreate{}, false
	}

	sourceAccountID, err := httputil.UUIDFromString(f.SourceAccountID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.TransactionCreate{}, false
	}

	destinationAccountID, err := httputil.UUIDFromString(f.DestinationAccountID)
	if err != nil {
		httperrors.InvalidUUID(c)
		return models.TransactionCreate{}, false
	}

	create := models.TransactionCreate{
		Type:                 models.TransactionType(f.Type),
		Processed:            f.Processed,
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
	}

	if categoryID != uuid.Nil {
		create.CategoryID = &categoryID
	}

	return create, true
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:transactionId", OptionsTransactionDetail)
		r.GET("/:transactionId", GetTransaction)
		r.PATCH("/:transactionId", UpdateTransaction)
		r.DELETE("/:transactionId", DeleteTransaction)
	}

	// Cleared flag
	{
		r.OPTIONS("/:transactionId/processed", OptionsTransactionProcessed)
		r.PATCH("/:transactionId/processed", ToggleTransactionProcessed)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Transactions
// @Success     204
// @Router      /v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Transactions
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       transactionId path string true "ID formatted as string"
// @Router      /v1/transactions/{transactionId} [options]
func OptionsTransactionDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Transactions
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Param       transactionId path string true "ID formatted as string"
// @Router      /v1/transactions/{transactionId}/processed [options]
func OptionsTransactionProcessed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	_, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary     Create transaction
// @Description Creates a new transaction
// @Tags        Transactions
// @Produce     json
// @Success     201 {object} TransactionResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       transaction body models.TransactionCreate true "Transaction"
// @Router      /v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := httputil.BindData(c, &transaction); err != nil {
		httperrors.Handler(c, err)
		return
	}

	// The accounts must exist
	if _, ok := getAccountResource(c, transaction.SourceAccountID); !ok {
		return
	}

	if _, ok := getAccountResource(c, transaction.DestinationAccountID); !ok {
		return
	}

	if err := models.DB.Create(&transaction).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: newTransactionObject(c, transaction)})
}

// @Summary     List transactions
// @Description Returns a list of transactions
// @Tags        Transactions
// @Produce     json
// @Success     200 {object} TransactionListResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       type        query string false "Filter by transaction type"
// @Param       processed   query bool   false "Is the transaction cleared?"
// @Param       category    query string false "Filter by category ID"
// @Param       source      query string false "Filter by source account ID"
// @Param       destination query string false "Filter by destination account ID"
// @Param       account     query string false "Filter by account ID on either side"
// @Param       month       query string false "Filter to a calendar month, formatted as YYYY-MM"
// @Param       fromDate    query string false "Only transactions on or after this date, RFC 3339"
// @Param       untilDate   query string false "Only transactions before this date, RFC 3339"
// @Router      /v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		httperrors.InvalidQueryString(c)
		return
	}

	queryFields := httputil.GetURLFields(c.Request.URL, filter)

	create, ok := filter.ToCreate(c)
	if !ok {
		return
	}

	query := models.DB.Where(&models.Transaction{
		TransactionCreate: create,
	}, queryFields...)

	query, ok = filter.scope(c, query)
	if !ok {
		return
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC").Find(&transactions).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	// When there are no resources, we want an empty list, not null
	objects := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		objects = append(objects, newTransactionObject(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: objects})
}

// scope applies the filters that do not map to a single database column.
func (f TransactionQueryFilter) scope(c *gin.Context, query *gorm.DB) (*gorm.DB, bool) {
	if f.AccountID != "" {
		id, err := httputil.UUIDFromString(f.AccountID)
		if err != nil {
			httperrors.InvalidUUID(c)
			return nil, false
		}

		query = query.Where(
			models.DB.Where("source_account_id = ?", id).Or("destination_account_id = ?", id),
		)
	}

	if f.Month != "" {
		month, err := types.ParseMonth(f.Month)
		if err != nil {
			httperrors.New(c, http.StatusBadRequest, err.Error())
			return nil, false
		}

		query = query.Where(
			"date >= ? AND date < ?",
			time.Time(month),
			time.Time(month.AddDate(0, 1)),
		)
	}

	if f.FromDate != "" {
		from, err := time.Parse(time.RFC3339, f.FromDate)
		if err != nil {
			httperrors.InvalidQueryString(c)
			return nil, false
		}

		query = query.Where("date >= ?", from)
	}

	if f.UntilDate != "" {
		until, err := time.Parse(time.RFC3339, f.UntilDate)
		if err != nil {
			httperrors.InvalidQueryString(c)
			return nil, false
		}

		query = query.Where("date < ?", until)
	}

	return query, true
}

// @Summary     Get transaction
// @Description Returns a specific transaction
// @Tags        Transactions
// @Produce     json
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       transactionId path string true "ID formatted as string"
// @Router      /v1/transactions/{transactionId} [get]
func GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	transaction, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransactionObject(c, transaction)})
}

// @Summary     Update transaction
// @Description Updates a transaction. Only values to be updated need to be specified.
// @Tags        Transactions
// @Produce     json
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       transactionId path string                    true "ID formatted as string"
// @Param       transaction   body models.TransactionCreate true "Transaction"
// @Router      /v1/transactions/{transactionId} [patch]
func UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	transaction, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.TransactionCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var update models.TransactionCreate
	if err := httputil.BindData(c, &update); err != nil {
		httperrors.Handler(c, err)
		return
	}

	// Fields missing from a partial update are filled from the stored
	// transaction so that validation sees the full record
	if update.Amount.IsZero() {
		update.Amount = transaction.Amount
	}

	if update.Type == "" {
		update.Type = transaction.Type
	}

	if update.SourceAccountID == uuid.Nil {
		update.SourceAccountID = transaction.SourceAccountID
	}

	if update.DestinationAccountID == uuid.Nil {
		update.DestinationAccountID = transaction.DestinationAccountID
	}

	// An explicit null clears the category, an absent field keeps it
	if !slices.Contains(updateFields, any("CategoryID")) {
		update.CategoryID = transaction.CategoryID
	}

	data := models.Transaction{TransactionCreate: update}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransactionObject(c, transaction)})
}

// @Summary     Toggle cleared flag
// @Description Toggles whether the transaction is confirmed as cleared
// @Tags        Transactions
// @Produce     json
// @Success     200 {object} TransactionResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       transactionId path string true "ID formatted as string"
// @Router      /v1/transactions/{transactionId}/processed [patch]
func ToggleTransactionProcessed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	transaction, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	err = models.DB.Model(&transaction).Update("processed", !transaction.Processed).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: newTransactionObject(c, transaction)})
}

// @Summary     Delete transaction
// @Description Deletes a transaction
// @Tags        Transactions
// @Success     204
// @Failure     400 {object} httperrors.HTTPError
// @Failure     404 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       transactionId path string true "ID formatted as string"
// @Router      /v1/transactions/{transactionId} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		httperrors.InvalidUUID(c)
		return
	}

	transaction, ok := getTransactionResource(c, id)
	if !ok {
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

func getTransactionResource(c *gin.Context, id uuid.UUID) (models.Transaction, bool) {
	if id == uuid.Nil {
		httperrors.New(c, http.StatusBadRequest, "no transaction ID specified")
		return models.Transaction{}, false
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", id).Error
	if err != nil {
		httperrors.Handler(c, err)
		return models.Transaction{}, false
	}

	return transaction, true
}

func newTransactionObject(c *gin.Context, transaction models.Transaction) Transaction {
	return Transaction{
		Transaction: transaction,
		Links: TransactionLinks{
			Self: httputil.RequestPathV1(c) + "/transactions/" + transaction.ID.String(),
		},
	}
}
