package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelplanner/database"
	"travelplanner/logger"
	"travelplanner/services"
)

// dataSourceHeader reports "live" or "estimated" next to offer lists. Each
// offer also carries its own estimated/synthetic flag.
const dataSourceHeader = "X-Data-Source"

type cityEntry struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	CityCode string `json:"city_code"`
}

// SearchCities lists the built-in cities for an empty query and asks the
// location API otherwise.
func (h *Handler) SearchCities(c *gin.Context) {
	query := formValue(c, "query")
	if query == "" {
		cities := services.AvailableCities()
		out := make([]cityEntry, 0, len(cities))
		for _, city := range cities {
			out = append(out, cityEntry{Name: city.Name, Country: city.Country, CityCode: city.CityCode})
		}
		c.JSON(http.StatusOK, gin.H{"available_cities": out})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": h.travel.SearchLocations(c.Request.Context(), query)})
}

// GetMinPrices answers from the sample min_prices table when the route is
// known there and otherwise scans live hotel prices for the coming days.
func (h *Handler) GetMinPrices(c *gin.Context) {
	origin := formValue(c, "startPoint")
	destination := formValue(c, "destination")
	if origin == "" || destination == "" {
		badRequest(c, "Origin and destination are required")
		return
	}

	ctx := c.Request.Context()
	row, err := h.store.MinPrices(ctx, services.NormalizeCityName(origin), services.NormalizeCityName(destination))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"min_flight_price": services.FormatPrice(row.MinFlightPrice, "USD"),
			"min_hotel_price":  services.FormatPrice(row.MinHotelPrice, "USD"),
			"currency":         "USD",
			"source":           "sample",
		})
		return
	case !errors.Is(err, database.ErrNotFound):
		h.log(c).Warn("Sample min price lookup failed", logger.Error(err))
	}

	city := services.CityPart(destination)
	price, ok := h.travel.MinHotelPrice(ctx, city, h.now(), h.minPriceDays)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"min_hotel_price": "N/A"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"min_hotel_price": services.FormatPrice(price, "INR")})
}

func (h *Handler) SearchFlights(c *gin.Context) {
	origin := strings.ToUpper(formValue(c, "startPointCode"))
	destination := strings.ToUpper(formValue(c, "destinationCode"))
	departure := formValue(c, "startDate")
	if origin == "" || destination == "" || departure == "" {
		badRequest(c, "Origin, destination, and departure date are required")
		return
	}

	adults, ok := formAdults(c)
	if !ok {
		badRequest(c, "adults must be a whole number")
		return
	}

	travelClass := formValue(c, "travelClass")
	if travelClass == "" {
		travelClass = "ECONOMY"
	}

	res := h.travel.SearchFlights(c.Request.Context(), services.FlightSearchParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		ReturnDate:    formValue(c, "endDate"),
		Adults:        adults,
		TravelClass:   travelClass,
		Currency:      "INR",
	})
	if len(res.Flights) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No flights found for the specified criteria"})
		return
	}

	flights := res.Flights
	if len(flights) > 3 {
		flights = flights[:3]
	}
	for i := range flights {
		if flights[i].Currency == "" {
			flights[i].Currency = "INR"
		}
	}

	c.Header(dataSourceHeader, res.Source)
	c.JSON(http.StatusOK, flights)
}

func (h *Handler) SearchHotels(c *gin.Context) {
	destination := formValue(c, "destination")
	if destination == "" {
		badRequest(c, "Destination is required")
		return
	}

	adults, ok := formAdults(c)
	if !ok {
		badRequest(c, "adults must be a whole number")
		return
	}

	res := h.travel.SearchHotels(c.Request.Context(), services.HotelSearchParams{
		City:     services.CityPart(destination),
		CheckIn:  formValue(c, "startDate"),
		CheckOut: formValue(c, "endDate"),
		Adults:   adults,
	})

	hotels := res.Hotels
	if hotels == nil {
		hotels = []services.HotelOffer{}
	}
	if len(hotels) > 3 {
		hotels = hotels[:3]
	}

	source := services.SourceLive
	if res.Degraded {
		source = services.SourceEstimated
	}
	c.Header(dataSourceHeader, source)
	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) FlightStatus(c *gin.Context) {
	carrier := strings.ToUpper(formValue(c, "carrierCode"))
	number := formValue(c, "flightNumber")
	date := formValue(c, "departureDate")
	if carrier == "" || number == "" || date == "" {
		badRequest(c, "carrierCode, flightNumber and departureDate are required")
		return
	}

	status, ok := h.travel.FlightStatus(c.Request.Context(), carrier, number, date)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight status not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}
