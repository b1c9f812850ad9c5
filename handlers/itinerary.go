package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/database"
	"travelplanner/logger"
	"travelplanner/services"
)

type ItineraryRequest struct {
	TravelerName string               `json:"traveler_name"`
	Origin       string               `json:"origin" binding:"required"`
	Destination  string               `json:"destination" binding:"required"`
	StartDate    string               `json:"start_date" binding:"required"`
	EndDate      string               `json:"end_date" binding:"required"`
	Flight       services.FlightOffer `json:"flight"`
	Hotel        services.HotelOffer  `json:"hotel"`
	Estimated    bool                 `json:"estimated"`
	Notes        string               `json:"notes"`
}

type ItineraryResponse struct {
	ItineraryID string  `json:"itinerary_id"`
	PDFURL      string  `json:"pdf_url"`
	Nights      int     `json:"nights"`
	Total       float64 `json:"total"`
	Message     string  `json:"message"`
}

// CreateItinerary renders the chosen flight and hotel into a PDF and stores
// it for download.
func (h *Handler) CreateItinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	start, err := time.Parse(services.DateLayout, req.StartDate)
	if err != nil {
		badRequest(c, "Invalid start date format. Use YYYY-MM-DD")
		return
	}
	end, err := time.Parse(services.DateLayout, req.EndDate)
	if err != nil {
		badRequest(c, "Invalid end date format. Use YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		badRequest(c, "End date must not be before start date")
		return
	}

	nights := services.TripNights(req.StartDate, req.EndDate)
	total := services.TripTotal(req.Flight, req.Hotel, nights)

	pdfBytes, err := services.GeneratePDFBytes(services.ItineraryPDF{
		TravelerName: req.TravelerName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Flight:       req.Flight,
		Hotel:        req.Hotel,
		Nights:       nights,
		Total:        total,
		Estimated:    req.Estimated || req.Flight.Estimated || req.Hotel.Synthetic,
		Notes:        req.Notes,
		GeneratedAt:  h.now(),
	})
	if err != nil {
		h.internalError(c, "itineraries", err)
		return
	}

	flightJSON, err := json.Marshal(req.Flight)
	if err != nil {
		h.internalError(c, "itineraries", err)
		return
	}
	hotelJSON, err := json.Marshal(req.Hotel)
	if err != nil {
		h.internalError(c, "itineraries", err)
		return
	}

	id := h.newID()
	if err := h.store.SaveItinerary(c.Request.Context(), &database.Itinerary{
		ID:           id,
		TravelerName: req.TravelerName,
		Origin:       req.Origin,
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		FlightJSON:   string(flightJSON),
		HotelJSON:    string(hotelJSON),
		PDFData:      pdfBytes,
		CreatedAt:    h.now(),
	}); err != nil {
		h.internalError(c, "itineraries", err)
		return
	}

	h.log(c).Info("Itinerary PDF generated",
		logger.String("itinerary_id", id),
		logger.Int("bytes", len(pdfBytes)))

	c.JSON(http.StatusOK, ItineraryResponse{
		ItineraryID: id,
		PDFURL:      "/download/" + id,
		Nights:      nights,
		Total:       total,
		Message:     "PDF generated successfully",
	})
}
