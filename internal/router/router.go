package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eventcraft/internal/auth"
	"eventcraft/internal/config"
	eerrors "eventcraft/internal/errors"
	"eventcraft/internal/handler"
	"eventcraft/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
	bookingHandler *handler.BookingHandler,
	ticketHandler *handler.TicketHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/events", eventHandler.List)

	// Secured routes (require JWT authentication). Tokens arrive as
	// "Authorization: Bearer <jwt>", the middleware's default lookup.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: jwtErrorHandler,
	}))

	// Profile routes
	secured.GET("/user/profile", userHandler.GetProfile)
	secured.PUT("/user/profile", userHandler.UpdateProfile)
	secured.PUT("/user/profile/password", userHandler.ChangePassword)

	// Event routes
	secured.POST("/events", eventHandler.Create, RequireRoles(model.RoleOrganizer))
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)
	secured.POST("/events/rsvp/:eventId", eventHandler.RSVP)
	secured.GET("/events/my-events", eventHandler.ListMine)
	secured.GET("/events/mine", eventHandler.ListMine)
	secured.GET("/events/my-rsvps", eventHandler.ListMyRSVPs)
	secured.GET("/events/dashboard-stats", eventHandler.DashboardStats, RequireRoles(model.RoleOrganizer))
	secured.GET("/events/export", eventHandler.ExportRSVPs, RequireRoles(model.RoleOrganizer))

	// Booking routes
	secured.POST("/bookings/book/:eventId", bookingHandler.Book)
	secured.GET("/bookings/my", bookingHandler.ListMy)
	secured.GET("/bookings/:id", bookingHandler.GetTicket)

	// Ticket routes
	secured.GET("/tickets/my", ticketHandler.ListMy)
	secured.GET("/tickets/event/:eventId", ticketHandler.ListForEvent)

	// Admin routes
	admin := secured.Group("/admin", RequireRoles(model.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users", adminHandler.DeleteUsers)
	admin.GET("/events", adminHandler.ListEvents)
	admin.GET("/stats", adminHandler.Stats)
}

// jwtErrorHandler puts auth middleware failures into the same error envelope
// the handlers use. Parse failures carry INVALID_TOKEN; a request with no
// usable token at all carries NO_TOKEN.
func jwtErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, echojwt.ErrJWTInvalid) {
		return echo.NewHTTPError(http.StatusUnauthorized, eerrors.ErrorResponse{
			Error:   "INVALID_TOKEN",
			Message: "invalid or expired token",
		})
	}
	return echo.NewHTTPError(http.StatusUnauthorized, eerrors.ErrorResponse{
		Error:   "NO_TOKEN",
		Message: "missing or malformed token",
	})
}

// RequireRoles rejects authenticated callers whose role is not in the allow
// list. It must run after the JWT middleware.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, eerrors.ErrorResponse{
					Error:   "INVALID_TOKEN",
					Message: "invalid or missing token",
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, eerrors.ErrorResponse{
					Error:   "INVALID_TOKEN",
					Message: "invalid token claims",
				})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, eerrors.ErrorResponse{
				Error:   "FORBIDDEN",
				Message: "insufficient role for this operation",
			})
		}
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
