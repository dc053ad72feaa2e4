package v1

import (
	"net/http"

	"github.com/centime-app/backend/internal/httperrors"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type SettingsResponse struct {
	Data models.Settings `json:"data"`
}

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Settings
// @Success     204
// @Router      /v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary     Get settings
// @Description Returns the budgeting configuration. The configuration is created on first use.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} SettingsResponse
// @Failure     500 {object} httperrors.HTTPError
// @Router      /v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.GetSettings(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}

// @Summary     Update settings
// @Description Updates the budgeting configuration. Only values to be updated need to be specified.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} SettingsResponse
// @Failure     400 {object} httperrors.HTTPError
// @Failure     500 {object} httperrors.HTTPError
// @Param       settings body models.SettingsCreate true "Settings"
// @Router      /v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.GetSettings(models.DB)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, models.SettingsCreate{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data models.Settings
	if err := httputil.BindData(c, &data); err != nil {
		httperrors.Handler(c, err)
		return
	}

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(data).Error
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}
