package api

import (
	"log"
	stdhttp "net/http"

	intconfig "ebus/internal/config"
	h "ebus/internal/http/handlers"
	"ebus/internal/http/middleware"
	"ebus/internal/repositories"
	"ebus/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the store-backed collaborators the router wires into
// handlers. Everything is injected; no handler reaches a global.
type Deps struct {
	Routes   repositories.RouteRepo
	Bookings repositories.BookingRepo
	Users    repositories.UserRepo
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigin))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)
	requireAuth := middleware.RequireAuth(secret)

	system := &h.SystemHandler{Routes: deps.Routes}
	catalog := &h.CatalogHandler{Catalog: services.CatalogService{Routes: deps.Routes}}
	auth := &h.AuthHandler{Users: deps.Users, JWTSecret: secret}
	booking := &h.BookingHandler{
		Bookings: services.BookingService{Bookings: deps.Bookings, Routes: deps.Routes},
		Tickets:  services.TicketService{Bookings: deps.Bookings, Routes: deps.Routes, Users: deps.Users},
	}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)
		api.GET("/routes", catalog.ListRoutes)

		authGroup := api.Group("/auth")
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", requireAuth, auth.Me)

		bookings := api.Group("/bookings")
		bookings.POST("", requireAuth, booking.Create)
		bookings.GET("", requireAuth, booking.ListMine)
		bookings.GET("/:id", requireAuth, booking.Get)
		bookings.GET("/:id/ticket", requireAuth, booking.Ticket)

		// legacy paths from the first frontend revision
		bookings.GET("/routes", catalog.ListRoutes)
		bookings.POST("/book", booking.CreateLegacy)
	}

	return r
}
