package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/services"
)

func (h *Handler) SampleFlights(c *gin.Context) {
	origin := c.Query("origin")
	if origin != "" {
		origin = services.NormalizeCityName(origin)
	}
	destination := c.Query("destination")
	if destination != "" {
		destination = services.NormalizeCityName(destination)
	}

	flights, err := h.store.SampleFlights(c.Request.Context(), origin, destination)
	if err != nil {
		h.internalError(c, "sample/flights", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

func (h *Handler) SampleHotels(c *gin.Context) {
	location := c.Query("location")
	if location != "" {
		location = services.NormalizeCityName(location)
	}

	hotels, err := h.store.SampleHotels(c.Request.Context(), location)
	if err != nil {
		h.internalError(c, "sample/hotels", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}
