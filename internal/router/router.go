// Package router sets up the gin engine with its middlewares and attaches
// the API routes.
package router

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	docs "github.com/smart-budget/backend/api"
	v1 "github.com/smart-budget/backend/internal/controllers/v1"
	"github.com/smart-budget/backend/internal/httputil"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

type options struct {
	allowOrigins []string
	pprof        bool
}

// Option configures optional parts of the router.
type Option func(*options)

// WithCORS enables CORS for the origins. Nothing is enabled for an empty list.
func WithCORS(origins []string) Option {
	return func(o *options) {
		o.allowOrigins = origins
	}
}

// WithPprof registers the pprof routes under /debug/pprof.
func WithPprof(enabled bool) Option {
	return func(o *options) {
		o.pprof = enabled
	}
}

// Config sets up the engine. The teardown function must be called when the
// engine is not used anymore.
func Config(url *url.URL, opts ...Option) (*gin.Engine, func(), error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	metrics := newRequestMetrics()
	err := metrics.register()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if err := metrics.unregister(); err != nil {
			log.Error().Err(err).Msg("Router")
		}
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(metrics.middleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "This HTTP method is not allowed for the endpoint you called"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "There is no endpoint at this path"})
	})
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

	if len(o.allowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", o.allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     o.allowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if o.pprof {
		pprof.Register(r, "debug/pprof")
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Smart Budget"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Smart Budget, a personal budgeting application with transactions, monthly category budgets and reports."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterHealthzRoutes(group.Group("/healthz"))

	// API v1 setup
	v1 := group.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	co.RegisterAuthRoutes(v1.Group("/auth"))

	authenticated := v1.Group("", co.Authenticate)
	co.RegisterUserRoutes(authenticated.Group("/users"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterDashboardRoutes(authenticated.Group("/dashboard"))
	co.RegisterMonthRoutes(authenticated.Group("/months"))
	co.RegisterReportRoutes(authenticated.Group("/reports"))
	co.RegisterPreferenceRoutes(authenticated.Group("/preferences"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(httputil.ContextURL)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Register     string `json:"register" example:"https://example.com/api/v1/auth/register"`    // Registration of new users
	Login        string `json:"login" example:"https://example.com/api/v1/auth/login"`          // Login
	Logout       string `json:"logout" example:"https://example.com/api/v1/auth/logout"`        // Logout
	Me           string `json:"me" example:"https://example.com/api/v1/users/me"`               // The authenticated user
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of budget list endpoint
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`       // Dashboard summary
	Months       string `json:"months" example:"https://example.com/api/v1/months/YYYY-MM"`     // Month overview
	Reports      string `json:"reports" example:"https://example.com/api/v1/reports/YYYY-MM"`   // Monthly report
	Theme        string `json:"theme" example:"https://example.com/api/v1/preferences/theme"`   // Theme preference
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(httputil.ContextURL) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Register:     url + "/auth/register",
			Login:        url + "/auth/login",
			Logout:       url + "/auth/logout",
			Me:           url + "/users/me",
			Categories:   url + "/categories",
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
			Dashboard:    url + "/dashboard",
			Months:       url + "/months/YYYY-MM",
			Reports:      url + "/reports/YYYY-MM",
			Theme:        url + "/preferences/theme",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
