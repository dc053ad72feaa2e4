// Package router sets up the HTTP routes and middlewares.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/centime-app/backend/internal/controllers/healthz"
	v1 "github.com/centime-app/backend/internal/controllers/v1"
	"github.com/centime-app/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	healthz.RegisterRoutes(r.Group("/healthz"))

	// API v1 setup
	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
	}

	v1.RegisterBudgetRoutes(group.Group("/budget"))
	v1.RegisterAccountRoutes(group.Group("/accounts"))
	v1.RegisterCategoryRoutes(group.Group("/categories"))
	v1.RegisterTransactionRoutes(group.Group("/transactions"))
	v1.RegisterBudgetForecastRoutes(group.Group("/forecasts"))
	v1.RegisterSettingsRoutes(group.Group("/settings"))
	v1.RegisterMemoItemRoutes(group.Group("/memos"))
	v1.RegisterSavingsGoalRoutes(group.Group("/savings-goals"))
	v1.RegisterSavingsAllocationRoutes(group.Group("/savings-allocations"))
	v1.RegisterCreditDetailRoutes(group.Group("/credit-details"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary     API root
// @Description Entrypoint for the API, listing all endpoints
// @Tags        General
// @Success     200 {object} RootResponse
// @Router      / [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary     API version
// @Description Returns the software version of the API
// @Tags        General
// @Success     200 {object} VersionResponse
// @Router      /version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        General
// @Success     204
// @Router      / [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        General
// @Success     204
// @Router      /version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Budget             string `json:"budget" example:"https://example.com/api/v1/budget"`
	Accounts           string `json:"accounts" example:"https://example.com/api/v1/accounts"`
	Categories         string `json:"categories" example:"https://example.com/api/v1/categories"`
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions"`
	Forecasts          string `json:"forecasts" example:"https://example.com/api/v1/forecasts"`
	Settings           string `json:"settings" example:"https://example.com/api/v1/settings"`
	Memos              string `json:"memos" example:"https://example.com/api/v1/memos"`
	SavingsGoals       string `json:"savingsGoals" example:"https://example.com/api/v1/savings-goals"`
	SavingsAllocations string `json:"savingsAllocations" example:"https://example.com/api/v1/savings-allocations"`
	CreditDetails      string `json:"creditDetails" example:"https://example.com/api/v1/credit-details"`
}

// @Summary     v1 API
// @Description Returns general information about the v1 API
// @Tags        General
// @Success     200 {object} V1Response
// @Router      /v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Budget:             url + "/budget",
			Accounts:           url + "/accounts",
			Categories:         url + "/categories",
			Transactions:       url + "/transactions",
			Forecasts:          url + "/forecasts",
			Settings:           url + "/settings",
			Memos:              url + "/memos",
			SavingsGoals:       url + "/savings-goals",
			SavingsAllocations: url + "/savings-allocations",
			CreditDetails:      url + "/credit-details",
		},
	})
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        General
// @Success     204
// @Router      /v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
