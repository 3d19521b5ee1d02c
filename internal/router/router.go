package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weddingplanner/internal/config"
	"weddingplanner/internal/handler"
	"weddingplanner/internal/middleware"
	"weddingplanner/internal/model"
	"weddingplanner/internal/service"
)

// Handlers groups everything the route table dispatches to.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Budgets   *handler.RecordHandler[model.Budget]
	Guests    *handler.RecordHandler[model.Guest]
	Vendors   *handler.RecordHandler[model.Vendor]
	Tasks     *handler.RecordHandler[model.Task]
	Venues    *handler.RecordHandler[model.Venue]
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *slog.Logger, authService service.AuthService, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	// Secured routes
	secured := api.Group("", middleware.RequireUser(authService))

	secured.GET("/me", h.Auth.Me)
	secured.GET("/analytics/dashboard", h.Dashboard.Dashboard)

	h.Budgets.Mount(secured)
	h.Guests.Mount(secured)
	h.Vendors.Mount(secured)
	h.Tasks.Mount(secured)
	h.Venues.Mount(secured)
}

// NewHandlers builds every handler over the given services.
func NewHandlers(authService service.AuthService, records *service.RecordServices, dashboard service.DashboardService) Handlers {
	return Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(dashboard),
		Budgets:   handler.NewRecordHandler(records.Budgets),
		Guests:    handler.NewRecordHandler(records.Guests),
		Vendors:   handler.NewRecordHandler(records.Vendors),
		Tasks:     handler.NewRecordHandler(records.Tasks),
		Venues:    handler.NewRecordHandler(records.Venues),
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
