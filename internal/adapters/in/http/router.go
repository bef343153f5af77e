package http

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"tracking/internal/generated/servers"
	"tracking/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig wires the pieces served by NewRouter.
type RouterConfig struct {
	Server   *Server
	Auth     *Auth
	Sessions sessions.Store
	Users    UserLookup
	Metrics  *metrics.Metrics
	OpenAPI  *openapi3.T
	// StaticDir holds index.html, admin_users.html, monitoreo_portales.html
	// and the static/ assets.
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter builds the echo instance with every route.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	validator, err := OpenAPIValidator(cfg.OpenAPI)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		RequestLogger(cfg.Logger),
		RequestMetrics(cfg.Metrics),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cfg.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.json")))

	e.GET("/login", cfg.Auth.Login)
	e.GET("/get_token", cfg.Auth.Callback)
	e.GET("/logout", cfg.Auth.Logout)

	requireUser := RequireUser(cfg.Sessions, cfg.Users, cfg.Logger)

	e.GET("/", page(cfg.StaticDir, "index.html"), requireUser)
	e.GET("/monitoreo-portales", page(cfg.StaticDir, "monitoreo_portales.html"), requireUser)
	e.GET("/admin/users", page(cfg.StaticDir, "admin_users.html"), requireUser, RequireSuper)
	e.Static("/static", filepath.Join(cfg.StaticDir, "static"))

	api := e.Group("/api", requireUser, validator)
	servers.RegisterHandlers(api, cfg.Server)

	return e, nil
}

func page(dir, name string) echo.HandlerFunc {
	path := filepath.Join(dir, name)
	return func(c echo.Context) error {
		return c.File(path)
	}
}
