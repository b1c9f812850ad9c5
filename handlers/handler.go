package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/config"
	"travelplanner/database"
	"travelplanner/logger"
	"travelplanner/services"
)

// TravelService is the upstream search surface the routes call into.
type TravelService interface {
	SearchLocations(ctx context.Context, keyword string) []services.LocationSuggestion
	SearchFlights(ctx context.Context, p services.FlightSearchParams) services.FlightSearchResult
	SearchHotels(ctx context.Context, p services.HotelSearchParams) services.HotelSearchResult
	FlightStatus(ctx context.Context, carrierCode, flightNumber, date string) (*services.FlightStatus, bool)
	MinHotelPrice(ctx context.Context, city string, from time.Time, days int) (float64, bool)
}

type Chatbot interface {
	Reply(ctx context.Context, req services.ChatRequest) string
}

// Store is the persisted state behind the sample, itinerary and health routes.
type Store interface {
	MinPrices(ctx context.Context, origin, destination string) (*database.MinPrice, error)
	SampleFlights(ctx context.Context, origin, destination string) ([]database.SampleFlight, error)
	SampleHotels(ctx context.Context, location string) ([]database.SampleHotel, error)
	SaveItinerary(ctx context.Context, i *database.Itinerary) error
	GetItinerary(ctx context.Context, id string) (*database.Itinerary, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	travel       TravelService
	bot          Chatbot
	store        Store
	minPriceDays int
	templatesDir string
	now          func() time.Time
	newID        func() string
	logger       *logger.Logger
}

func NewHandler(travel TravelService, bot Chatbot, store Store, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		travel:       travel,
		bot:          bot,
		store:        store,
		minPriceDays: cfg.Search.MinPriceDays,
		templatesDir: cfg.Server.TemplatesDir,
		now:          time.Now,
		newID:        newUUID,
		logger:       log.Named("handlers"),
	}
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func formValue(c *gin.Context, key string) string {
	return strings.TrimSpace(c.PostForm(key))
}

// formAdults reads the optional adults field. Blank or non-positive means 1.
func formAdults(c *gin.Context) (int, bool) {
	v := formValue(c, "adults")
	if v == "" {
		return 1, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	if n <= 0 {
		n = 1
	}
	return n, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// log returns the handler logger tagged with the request id.
func (h *Handler) log(c *gin.Context) *logger.Logger {
	return h.logger.WithRequestID(c.GetString(requestIDKey))
}

func (h *Handler) internalError(c *gin.Context, route string, err error) {
	h.log(c).Error("Request failed", logger.String("route", route), logger.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
