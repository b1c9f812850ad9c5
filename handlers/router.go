package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travelplanner/config"
	"travelplanner/logger"
)

// NewRouter wires the middleware stack and every route onto a gin engine.
func NewRouter(cfg *config.Config, h *Handler, log *logger.Logger) *gin.Engine {
	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), gin.Recovery())

	// behind a proxy in production
	_ = r.SetTrustedProxies([]string{"0.0.0.0/0"})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", requestIDHeader, dataSourceHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Pages
	r.GET("/", h.page("index.html"))
	r.GET("/login", h.page("login.html"))
	r.GET("/signup", h.page("signup.html"))
	r.GET("/logout", h.Logout)
	if cfg.Server.StaticDir != "" {
		r.Static("/static", cfg.Server.StaticDir)
	}

	// Search
	r.POST("/search_cities", h.SearchCities)
	r.POST("/get_min_prices", h.GetMinPrices)
	r.POST("/search_flights", h.SearchFlights)
	r.POST("/search_hotels", h.SearchHotels)
	r.POST("/flight_status", h.FlightStatus)
	r.POST("/chatbot", h.Chatbot)

	// Itineraries
	r.POST("/itineraries", h.CreateItinerary)
	r.GET("/download/:id", h.Download)

	// Sample data
	sample := r.Group("/sample")
	{
		sample.GET("/flights", h.SampleFlights)
		sample.GET("/hotels", h.SampleHotels)
	}

	r.GET("/api/health", h.Health)

	return r
}
