package services

import (
	"context"
	"encoding/json"
	"net/url"

	"travelplanner/logger"
)

type FlightStatus struct {
	FlightNumber string          `json:"flightNumber"`
	Status       string          `json:"status"`
	Departure    json.RawMessage `json:"departure"`
	Arrival      json.RawMessage `json:"arrival"`
}

// FlightStatus looks up the schedule of one flight on one date. The
// upstream carries no live status, so every hit reports "Scheduled".
func (c *AmadeusClient) FlightStatus(ctx context.Context, carrierCode, flightNumber, date string) (*FlightStatus, bool) {
	log := c.logger.With(
		logger.String("carrier", carrierCode),
		logger.String("flight_number", flightNumber),
		logger.String("date", date),
	)

	token, err := c.Token(ctx)
	if err != nil {
		log.Warn("Flight status lookup skipped", logger.Error(err))
		return nil, false
	}

	params := url.Values{}
	params.Set("carrierCode", carrierCode)
	params.Set("flightNumber", flightNumber)
	params.Set("scheduledDepartureDate", date)

	body, err := c.get(ctx, token, "/v2/schedule/flights", params)
	if err != nil {
		log.Error("Flight status lookup failed", logger.Error(err))
		return nil, false
	}

	var resp struct {
		Data []struct {
			FlightPoints []json.RawMessage `json:"flightPoints"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Error("Failed to parse flight status", logger.Error(err))
		return nil, false
	}

	for _, d := range resp.Data {
		if len(d.FlightPoints) < 2 {
			continue
		}
		return &FlightStatus{
			FlightNumber: carrierCode + flightNumber,
			Status:       "Scheduled",
			Departure:    d.FlightPoints[0],
			Arrival:      d.FlightPoints[1],
		}, true
	}
	return nil, false
}
